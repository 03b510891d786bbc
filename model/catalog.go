package model

import "time"

type Cliente struct {
	ID            int       `json:"id"`
	Nombre        string    `json:"nombre"`
	Cedula        string    `json:"cedula"`
	LimiteCredito float64   `json:"limiteCredito"`
	Estado        string    `json:"estado"`
	FechaRegistro time.Time `json:"fechaRegistro"`
}

type TipoDocumento struct {
	ID              int       `json:"id"`
	Nombre          string    `json:"nombre"`
	Descripcion     string    `json:"descripcion"`
	Prefijo         string    `json:"prefijo"`
	SiguienteNumero int       `json:"siguienteNumero"`
	Activo          bool      `json:"activo"`
	FechaCreacion   time.Time `json:"fechaCreacion"`
}

type AsientoContable struct {
	ID                int       `json:"id"`
	Fecha             string    `json:"fecha"`
	NumeroComprobante string    `json:"numeroComprobante"`
	Concepto          string    `json:"concepto"`
	TipoDocumentoID   int       `json:"tipoDocumentoId"`
	ClienteID         *int      `json:"clienteId,omitempty"`
	TotalDebito       float64   `json:"totalDebito"`
	TotalCredito      float64   `json:"totalCredito"`
	Estado            string    `json:"estado"`
	FechaCreacion     time.Time `json:"fechaCreacion"`
}

// TransaccionContable is a single debit/credit line of an AsientoContable.
type TransaccionContable struct {
	ID                int       `json:"id"`
	AsientoContableID int       `json:"asientoContableId"`
	CuentaContable    string    `json:"cuentaContable"`
	Descripcion       string    `json:"descripcion"`
	Debito            float64   `json:"debito"`
	Credito           float64   `json:"credito"`
	FechaCreacion     time.Time `json:"fechaCreacion"`
}
