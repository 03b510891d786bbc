/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package database

import (
	"context"

	"github.com/contaplus/cxc/model"
)

// IDataSource defines the interface for data source operations, grouping related functionalities.
type IDataSource interface {
	cliente         // Interface for client-related operations
	tipoDocumento   // Interface for document-type operations
	asientoContable // Interface for accounting-entry operations
	transaccion     // Interface for accounting-line operations
}

type cliente interface {
	CreateCliente(ctx context.Context, c model.Cliente) (model.Cliente, error)
	GetClienteByID(ctx context.Context, id int) (*model.Cliente, error)
	GetAllClientes(ctx context.Context) ([]model.Cliente, error)
	UpdateCliente(ctx context.Context, c *model.Cliente) error
	DeleteCliente(ctx context.Context, id int) error
}

type tipoDocumento interface {
	CreateTipoDocumento(ctx context.Context, t model.TipoDocumento) (model.TipoDocumento, error)
	GetTipoDocumentoByID(ctx context.Context, id int) (*model.TipoDocumento, error)
	GetAllTiposDocumentos(ctx context.Context) ([]model.TipoDocumento, error)
	UpdateTipoDocumento(ctx context.Context, t *model.TipoDocumento) error
	DeleteTipoDocumento(ctx context.Context, id int) error
}

type asientoContable interface {
	CreateAsientoContable(ctx context.Context, a model.AsientoContable) (model.AsientoContable, error)
	GetAsientoContableByID(ctx context.Context, id int) (*model.AsientoContable, error)
	GetAllAsientosContables(ctx context.Context) ([]model.AsientoContable, error)
	UpdateAsientoContable(ctx context.Context, a *model.AsientoContable) error
	DeleteAsientoContable(ctx context.Context, id int) error
}

type transaccion interface {
	CreateTransaccion(ctx context.Context, t model.TransaccionContable) (model.TransaccionContable, error)
	GetTransaccionByID(ctx context.Context, id int) (*model.TransaccionContable, error)
	GetAllTransacciones(ctx context.Context) ([]model.TransaccionContable, error)
	GetTransaccionesByAsiento(ctx context.Context, asientoID int) ([]model.TransaccionContable, error)
	UpdateTransaccion(ctx context.Context, t *model.TransaccionContable) error
	DeleteTransaccion(ctx context.Context, id int) error
}
