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
package model

import (
	"errors"

	"github.com/contaplus/cxc/internal/cedula"
	"github.com/contaplus/cxc/internal/dates"
	"github.com/contaplus/cxc/model"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateCliente struct {
	Nombre        string  `json:"nombre"`
	Cedula        string  `json:"cedula"`
	LimiteCredito float64 `json:"limiteCredito"`
	Estado        string  `json:"estado"`
}

type CreateTipoDocumento struct {
	Nombre          string `json:"nombre"`
	Descripcion     string `json:"descripcion"`
	Prefijo         string `json:"prefijo"`
	SiguienteNumero int    `json:"siguienteNumero"`
	Activo          *bool  `json:"activo"`
}

type CreateAsientoContable struct {
	Fecha             string  `json:"fecha"`
	NumeroComprobante string  `json:"numeroComprobante"`
	Concepto          string  `json:"concepto"`
	TipoDocumentoID   int     `json:"tipoDocumentoId"`
	ClienteID         *int    `json:"clienteId"`
	TotalDebito       float64 `json:"totalDebito"`
	TotalCredito      float64 `json:"totalCredito"`
	Estado            string  `json:"estado"`
}

type CreateTransaccion struct {
	AsientoContableID int     `json:"asientoContableId"`
	CuentaContable    string  `json:"cuentaContable"`
	Descripcion       string  `json:"descripcion"`
	Debito            float64 `json:"debito"`
	Credito           float64 `json:"credito"`
}

// MaxReconciliationPage bounds the page query parameter.
const MaxReconciliationPage = 100000

// ReconciliationQuery is read from the /asiento-cxc query string.
type ReconciliationQuery struct {
	Desde   string `form:"desde"`
	Hasta   string `form:"hasta"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Refresh bool   `form:"refresh"`
}

func cedulaRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !cedula.Valid(s) {
		return errors.New("must be a valid Dominican cédula")
	}
	return nil
}

func isoDateRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := dates.Parse(s); err != nil {
		return errors.New("please format the date as YYYY-MM-DD")
	}
	return nil
}

func (c *CreateCliente) ValidateCreateCliente() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Nombre, validation.Required),
		validation.Field(&c.Cedula, validation.Required, validation.By(cedulaRule)),
		validation.Field(&c.LimiteCredito, validation.Min(0.0)),
		validation.Field(&c.Estado, validation.In("Activo", "Inactivo")),
	)
}

func (t *CreateTipoDocumento) ValidateCreateTipoDocumento() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Nombre, validation.Required),
		validation.Field(&t.SiguienteNumero, validation.Min(0)),
	)
}

func (a *CreateAsientoContable) ValidateCreateAsientoContable() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Fecha, validation.Required, validation.By(isoDateRule)),
		validation.Field(&a.Concepto, validation.Required),
		validation.Field(&a.TipoDocumentoID, validation.Required),
		validation.Field(&a.TotalDebito, validation.Min(0.0)),
		validation.Field(&a.TotalCredito, validation.Min(0.0)),
	)
}

func (t *CreateTransaccion) ValidateCreateTransaccion() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.AsientoContableID, validation.Required),
		validation.Field(&t.CuentaContable, validation.Required),
		validation.Field(&t.Debito, validation.Min(0.0)),
		validation.Field(&t.Credito, validation.Min(0.0)),
	)
}

func (q *ReconciliationQuery) ValidateReconciliationQuery() error {
	return validation.ValidateStruct(q,
		validation.Field(&q.Desde, validation.By(isoDateRule)),
		validation.Field(&q.Hasta, validation.By(isoDateRule)),
		validation.Field(&q.Page, validation.Min(0), validation.Max(MaxReconciliationPage)),
		validation.Field(&q.PerPage, validation.Min(0), validation.Max(500)),
	)
}

func (c *CreateCliente) ToCliente() model.Cliente {
	return model.Cliente{Nombre: c.Nombre, Cedula: c.Cedula, LimiteCredito: c.LimiteCredito, Estado: c.Estado}
}

func (t *CreateTipoDocumento) ToTipoDocumento() model.TipoDocumento {
	activo := true
	if t.Activo != nil {
		activo = *t.Activo
	}
	return model.TipoDocumento{
		Nombre:          t.Nombre,
		Descripcion:     t.Descripcion,
		Prefijo:         t.Prefijo,
		SiguienteNumero: t.SiguienteNumero,
		Activo:          activo,
	}
}

func (a *CreateAsientoContable) ToAsientoContable() model.AsientoContable {
	return model.AsientoContable{
		Fecha:             a.Fecha,
		NumeroComprobante: a.NumeroComprobante,
		Concepto:          a.Concepto,
		TipoDocumentoID:   a.TipoDocumentoID,
		ClienteID:         a.ClienteID,
		TotalDebito:       a.TotalDebito,
		TotalCredito:      a.TotalCredito,
		Estado:            a.Estado,
	}
}

func (t *CreateTransaccion) ToTransaccion() model.TransaccionContable {
	return model.TransaccionContable{
		AsientoContableID: t.AsientoContableID,
		CuentaContable:    t.CuentaContable,
		Descripcion:       t.Descripcion,
		Debito:            t.Debito,
		Credito:           t.Credito,
	}
}
