package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateCliente(t *testing.T) {
	tests := []struct {
		name    string
		cliente CreateCliente
		wantErr bool
	}{
		{
			name:    "Valid cliente",
			cliente: CreateCliente{Nombre: "Ana Pérez", Cedula: "001-0000001-7", LimiteCredito: 1000},
			wantErr: false,
		},
		{
			name:    "Missing nombre",
			cliente: CreateCliente{Cedula: "001-0000001-7"},
			wantErr: true,
		},
		{
			name:    "Bad checksum",
			cliente: CreateCliente{Nombre: "Ana", Cedula: "001-0000001-8"},
			wantErr: true,
		},
		{
			name:    "Negative credit limit",
			cliente: CreateCliente{Nombre: "Ana", Cedula: "001-0000001-7", LimiteCredito: -1},
			wantErr: true,
		},
		{
			name:    "Unknown estado",
			cliente: CreateCliente{Nombre: "Ana", Cedula: "001-0000001-7", Estado: "Borrado"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cliente.ValidateCreateCliente()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCreateAsientoContable(t *testing.T) {
	valid := CreateAsientoContable{Fecha: "2024-01-10", Concepto: "Venta", TipoDocumentoID: 1}
	assert.NoError(t, valid.ValidateCreateAsientoContable())

	badDate := valid
	badDate.Fecha = "10/01/2024"
	assert.Error(t, badDate.ValidateCreateAsientoContable())

	noTipo := valid
	noTipo.TipoDocumentoID = 0
	assert.Error(t, noTipo.ValidateCreateAsientoContable())
}

func TestValidateReconciliationQuery(t *testing.T) {
	assert.NoError(t, (&ReconciliationQuery{}).ValidateReconciliationQuery())
	assert.NoError(t, (&ReconciliationQuery{Desde: "2024-01-01", Hasta: "2024-12-31", Page: 2, PerPage: 10}).ValidateReconciliationQuery())
	assert.Error(t, (&ReconciliationQuery{Desde: "enero"}).ValidateReconciliationQuery())
	assert.Error(t, (&ReconciliationQuery{PerPage: -1}).ValidateReconciliationQuery())
	assert.Error(t, (&ReconciliationQuery{Page: MaxReconciliationPage + 1}).ValidateReconciliationQuery())
}

func TestToTipoDocumentoDefaultsActivo(t *testing.T) {
	assert.True(t, (&CreateTipoDocumento{Nombre: "Factura"}).ToTipoDocumento().Activo)
	off := false
	assert.False(t, (&CreateTipoDocumento{Nombre: "Factura", Activo: &off}).ToTipoDocumento().Activo)
}
