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
package mocks

import (
	"context"

	"github.com/contaplus/cxc/model"
	"github.com/stretchr/testify/mock"
)

// MockDataSource is a mock implementation of the IDataSource interface
type MockDataSource struct {
	mock.Mock
}

// Cliente methods

func (m *MockDataSource) CreateCliente(ctx context.Context, c model.Cliente) (model.Cliente, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(model.Cliente), args.Error(1)
}

func (m *MockDataSource) GetClienteByID(ctx context.Context, id int) (*model.Cliente, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cliente), args.Error(1)
}

func (m *MockDataSource) GetAllClientes(ctx context.Context) ([]model.Cliente, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Cliente), args.Error(1)
}

func (m *MockDataSource) UpdateCliente(ctx context.Context, c *model.Cliente) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockDataSource) DeleteCliente(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TipoDocumento methods

func (m *MockDataSource) CreateTipoDocumento(ctx context.Context, t model.TipoDocumento) (model.TipoDocumento, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(model.TipoDocumento), args.Error(1)
}

func (m *MockDataSource) GetTipoDocumentoByID(ctx context.Context, id int) (*model.TipoDocumento, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TipoDocumento), args.Error(1)
}

func (m *MockDataSource) GetAllTiposDocumentos(ctx context.Context) ([]model.TipoDocumento, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.TipoDocumento), args.Error(1)
}

func (m *MockDataSource) UpdateTipoDocumento(ctx context.Context, t *model.TipoDocumento) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockDataSource) DeleteTipoDocumento(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// AsientoContable methods

func (m *MockDataSource) CreateAsientoContable(ctx context.Context, a model.AsientoContable) (model.AsientoContable, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(model.AsientoContable), args.Error(1)
}

func (m *MockDataSource) GetAsientoContableByID(ctx context.Context, id int) (*model.AsientoContable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AsientoContable), args.Error(1)
}

func (m *MockDataSource) GetAllAsientosContables(ctx context.Context) ([]model.AsientoContable, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.AsientoContable), args.Error(1)
}

func (m *MockDataSource) UpdateAsientoContable(ctx context.Context, a *model.AsientoContable) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockDataSource) DeleteAsientoContable(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TransaccionContable methods

func (m *MockDataSource) CreateTransaccion(ctx context.Context, t model.TransaccionContable) (model.TransaccionContable, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(model.TransaccionContable), args.Error(1)
}

func (m *MockDataSource) GetTransaccionByID(ctx context.Context, id int) (*model.TransaccionContable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TransaccionContable), args.Error(1)
}

func (m *MockDataSource) GetAllTransacciones(ctx context.Context) ([]model.TransaccionContable, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.TransaccionContable), args.Error(1)
}

func (m *MockDataSource) GetTransaccionesByAsiento(ctx context.Context, asientoID int) ([]model.TransaccionContable, error) {
	args := m.Called(ctx, asientoID)
	return args.Get(0).([]model.TransaccionContable), args.Error(1)
}

func (m *MockDataSource) UpdateTransaccion(ctx context.Context, t *model.TransaccionContable) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockDataSource) DeleteTransaccion(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
