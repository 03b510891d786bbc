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

package cxc

import (
	"context"
	"errors"
	"strings"

	"github.com/contaplus/cxc/internal/apierror"
	"github.com/contaplus/cxc/internal/cedula"
	"github.com/contaplus/cxc/model"
)

const (
	EstadoClienteActivo   = "Activo"
	EstadoAsientoBorrador = "Borrador"
)

// notFoundAs rewrites a store not-found error with the message shown to users.
func notFoundAs(err error, message string) error {
	var apiErr apierror.APIError
	if errors.As(err, &apiErr) && apiErr.Code == apierror.ErrNotFound {
		return apierror.APIError{Code: apierror.ErrNotFound, Message: message}
	}
	return err
}

func (c *Cxc) CreateCliente(ctx context.Context, cliente model.Cliente) (model.Cliente, error) {
	if err := validateCliente(cliente); err != nil {
		return model.Cliente{}, err
	}
	if cliente.Estado == "" {
		cliente.Estado = EstadoClienteActivo
	}
	return c.datasource.CreateCliente(ctx, cliente)
}

func validateCliente(cliente model.Cliente) error {
	if strings.TrimSpace(cliente.Nombre) == "" {
		return apierror.NewValidationError("nombre", "nombre is required")
	}
	if !cedula.Valid(cliente.Cedula) {
		return apierror.NewValidationError("cedula", "cedula is not a valid Dominican ID")
	}
	if cliente.LimiteCredito < 0 {
		return apierror.NewValidationError("limiteCredito", "limiteCredito cannot be negative")
	}
	return nil
}

func (c *Cxc) GetCliente(ctx context.Context, id int) (*model.Cliente, error) {
	cliente, err := c.datasource.GetClienteByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Cliente no encontrado")
	}
	return cliente, nil
}

func (c *Cxc) GetAllClientes(ctx context.Context) ([]model.Cliente, error) {
	return c.datasource.GetAllClientes(ctx)
}

// UpdateCliente replaces a client. An empty estado keeps the stored one.
func (c *Cxc) UpdateCliente(ctx context.Context, cliente model.Cliente) (*model.Cliente, error) {
	existing, err := c.GetCliente(ctx, cliente.ID)
	if err != nil {
		return nil, err
	}
	if err := validateCliente(cliente); err != nil {
		return nil, err
	}
	if cliente.Estado == "" {
		cliente.Estado = existing.Estado
	}
	if err := c.datasource.UpdateCliente(ctx, &cliente); err != nil {
		return nil, notFoundAs(err, "Cliente no encontrado")
	}
	return &cliente, nil
}

func (c *Cxc) DeleteCliente(ctx context.Context, id int) error {
	return notFoundAs(c.datasource.DeleteCliente(ctx, id), "Cliente no encontrado")
}

func (c *Cxc) CreateTipoDocumento(ctx context.Context, tipo model.TipoDocumento) (model.TipoDocumento, error) {
	if strings.TrimSpace(tipo.Nombre) == "" {
		return model.TipoDocumento{}, apierror.NewValidationError("nombre", "nombre is required")
	}
	if tipo.SiguienteNumero <= 0 {
		tipo.SiguienteNumero = 1
	}
	return c.datasource.CreateTipoDocumento(ctx, tipo)
}

func (c *Cxc) GetTipoDocumento(ctx context.Context, id int) (*model.TipoDocumento, error) {
	tipo, err := c.datasource.GetTipoDocumentoByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Tipo de documento no encontrado")
	}
	return tipo, nil
}

func (c *Cxc) GetAllTiposDocumentos(ctx context.Context) ([]model.TipoDocumento, error) {
	return c.datasource.GetAllTiposDocumentos(ctx)
}

func (c *Cxc) UpdateTipoDocumento(ctx context.Context, tipo model.TipoDocumento) (*model.TipoDocumento, error) {
	if strings.TrimSpace(tipo.Nombre) == "" {
		return nil, apierror.NewValidationError("nombre", "nombre is required")
	}
	if tipo.SiguienteNumero <= 0 {
		tipo.SiguienteNumero = 1
	}
	if err := c.datasource.UpdateTipoDocumento(ctx, &tipo); err != nil {
		return nil, notFoundAs(err, "Tipo de documento no encontrado")
	}
	return &tipo, nil
}

func (c *Cxc) DeleteTipoDocumento(ctx context.Context, id int) error {
	return notFoundAs(c.datasource.DeleteTipoDocumento(ctx, id), "Tipo de documento no encontrado")
}

func (c *Cxc) CreateAsientoContable(ctx context.Context, asiento model.AsientoContable) (model.AsientoContable, error) {
	if err := validateAsiento(asiento); err != nil {
		return model.AsientoContable{}, err
	}
	if asiento.Estado == "" {
		asiento.Estado = EstadoAsientoBorrador
	}
	return c.datasource.CreateAsientoContable(ctx, asiento)
}

func validateAsiento(asiento model.AsientoContable) error {
	if strings.TrimSpace(asiento.Fecha) == "" {
		return apierror.NewValidationError("fecha", "fecha is required")
	}
	if strings.TrimSpace(asiento.Concepto) == "" {
		return apierror.NewValidationError("concepto", "concepto is required")
	}
	if asiento.TotalDebito < 0 || asiento.TotalCredito < 0 {
		return apierror.NewValidationError("totalDebito", "totals cannot be negative")
	}
	return nil
}

func (c *Cxc) GetAsientoContable(ctx context.Context, id int) (*model.AsientoContable, error) {
	asiento, err := c.datasource.GetAsientoContableByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Asiento contable no encontrado")
	}
	return asiento, nil
}

func (c *Cxc) GetAllAsientosContables(ctx context.Context) ([]model.AsientoContable, error) {
	return c.datasource.GetAllAsientosContables(ctx)
}

func (c *Cxc) UpdateAsientoContable(ctx context.Context, asiento model.AsientoContable) (*model.AsientoContable, error) {
	existing, err := c.GetAsientoContable(ctx, asiento.ID)
	if err != nil {
		return nil, err
	}
	if err := validateAsiento(asiento); err != nil {
		return nil, err
	}
	if asiento.Estado == "" {
		asiento.Estado = existing.Estado
	}
	if err := c.datasource.UpdateAsientoContable(ctx, &asiento); err != nil {
		return nil, notFoundAs(err, "Asiento contable no encontrado")
	}
	return &asiento, nil
}

// DeleteAsientoContable removes the entry together with its lines.
func (c *Cxc) DeleteAsientoContable(ctx context.Context, id int) error {
	return notFoundAs(c.datasource.DeleteAsientoContable(ctx, id), "Asiento contable no encontrado")
}

// CreateTransaccion adds a line to an existing asiento.
func (c *Cxc) CreateTransaccion(ctx context.Context, txn model.TransaccionContable) (model.TransaccionContable, error) {
	if err := c.validateTransaccion(ctx, txn); err != nil {
		return model.TransaccionContable{}, err
	}
	return c.datasource.CreateTransaccion(ctx, txn)
}

func (c *Cxc) validateTransaccion(ctx context.Context, txn model.TransaccionContable) error {
	if strings.TrimSpace(txn.CuentaContable) == "" {
		return apierror.NewValidationError("cuentaContable", "cuentaContable is required")
	}
	if txn.Debito < 0 || txn.Credito < 0 {
		return apierror.NewValidationError("debito", "debito and credito cannot be negative")
	}
	if _, err := c.GetAsientoContable(ctx, txn.AsientoContableID); err != nil {
		return err
	}
	return nil
}

func (c *Cxc) GetTransaccion(ctx context.Context, id int) (*model.TransaccionContable, error) {
	txn, err := c.datasource.GetTransaccionByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Transacción no encontrada")
	}
	return txn, nil
}

// GetTransacciones lists every line, or only those of one asiento when
// asientoID is positive.
func (c *Cxc) GetTransacciones(ctx context.Context, asientoID int) ([]model.TransaccionContable, error) {
	if asientoID > 0 {
		return c.datasource.GetTransaccionesByAsiento(ctx, asientoID)
	}
	return c.datasource.GetAllTransacciones(ctx)
}

func (c *Cxc) UpdateTransaccion(ctx context.Context, txn model.TransaccionContable) (*model.TransaccionContable, error) {
	if _, err := c.GetTransaccion(ctx, txn.ID); err != nil {
		return nil, err
	}
	if err := c.validateTransaccion(ctx, txn); err != nil {
		return nil, err
	}
	if err := c.datasource.UpdateTransaccion(ctx, &txn); err != nil {
		return nil, notFoundAs(err, "Transacción no encontrada")
	}
	return &txn, nil
}

func (c *Cxc) DeleteTransaccion(ctx context.Context, id int) error {
	return notFoundAs(c.datasource.DeleteTransaccion(ctx, id), "Transacción no encontrada")
}
