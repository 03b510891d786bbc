package database

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/contaplus/cxc/internal/apierror"
	"github.com/contaplus/cxc/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDBConnectionIsSingleton(t *testing.T) {
	a, err := GetDBConnection(nil)
	require.NoError(t, err)
	b, err := GetDBConnection(nil)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestClienteCRUD(t *testing.T) {
	ctx := context.Background()
	ds := NewMemoryDataSource()

	created, err := ds.CreateCliente(ctx, model.Cliente{
		Nombre:        gofakeit.Name(),
		Cedula:        "001-0000001-7",
		LimiteCredito: 5000,
		Estado:        "Activo",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.False(t, created.FechaRegistro.IsZero())

	second, err := ds.CreateCliente(ctx, model.Cliente{Nombre: gofakeit.Name()})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	fetched, err := ds.GetClienteByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, *fetched)

	fetched.Estado = "Inactivo"
	require.NoError(t, ds.UpdateCliente(ctx, fetched))
	updated, err := ds.GetClienteByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inactivo", updated.Estado)
	assert.Equal(t, created.FechaRegistro, updated.FechaRegistro)

	all, err := ds.GetAllClientes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 2, all[1].ID)

	require.NoError(t, ds.DeleteCliente(ctx, created.ID))
	_, err = ds.GetClienteByID(ctx, created.ID)
	var apiErr apierror.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierror.ErrNotFound, apiErr.Code)
}

func TestNotFoundOnMissingRows(t *testing.T) {
	ctx := context.Background()
	ds := NewMemoryDataSource()

	assert.Error(t, ds.UpdateCliente(ctx, &model.Cliente{ID: 99}))
	assert.Error(t, ds.DeleteCliente(ctx, 99))
	assert.Error(t, ds.UpdateTipoDocumento(ctx, &model.TipoDocumento{ID: 99}))
	assert.Error(t, ds.DeleteTipoDocumento(ctx, 99))
	assert.Error(t, ds.UpdateAsientoContable(ctx, &model.AsientoContable{ID: 99}))
	assert.Error(t, ds.DeleteAsientoContable(ctx, 99))
	assert.Error(t, ds.UpdateTransaccion(ctx, &model.TransaccionContable{ID: 99}))
	assert.Error(t, ds.DeleteTransaccion(ctx, 99))

	_, err := ds.GetTipoDocumentoByID(ctx, 1)
	assert.Error(t, err)
	_, err = ds.GetAsientoContableByID(ctx, 1)
	assert.Error(t, err)
	_, err = ds.GetTransaccionByID(ctx, 1)
	assert.Error(t, err)
}

func TestTipoDocumentoCRUD(t *testing.T) {
	ctx := context.Background()
	ds := NewMemoryDataSource()

	created, err := ds.CreateTipoDocumento(ctx, model.TipoDocumento{Nombre: "Factura", Prefijo: "FAC", SiguienteNumero: 1, Activo: true})
	require.NoError(t, err)

	created.SiguienteNumero = 2
	require.NoError(t, ds.UpdateTipoDocumento(ctx, &created))

	got, err := ds.GetTipoDocumentoByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.SiguienteNumero)

	all, err := ds.GetAllTiposDocumentos(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, ds.DeleteTipoDocumento(ctx, created.ID))
	all, err = ds.GetAllTiposDocumentos(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTransaccionesByAsientoAndCascade(t *testing.T) {
	ctx := context.Background()
	ds := NewMemoryDataSource()

	a1, err := ds.CreateAsientoContable(ctx, model.AsientoContable{Fecha: "2024-01-10", Concepto: "Venta", TotalDebito: 100, TotalCredito: 100})
	require.NoError(t, err)
	a2, err := ds.CreateAsientoContable(ctx, model.AsientoContable{Fecha: "2024-01-11", Concepto: "Cobro"})
	require.NoError(t, err)

	for _, line := range []model.TransaccionContable{
		{AsientoContableID: a1.ID, CuentaContable: "1101", Debito: 100},
		{AsientoContableID: a1.ID, CuentaContable: "4101", Credito: 100},
		{AsientoContableID: a2.ID, CuentaContable: "1101", Credito: 20},
	} {
		_, err := ds.CreateTransaccion(ctx, line)
		require.NoError(t, err)
	}

	lines, err := ds.GetTransaccionesByAsiento(ctx, a1.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 2)

	require.NoError(t, ds.DeleteAsientoContable(ctx, a1.ID))

	all, err := ds.GetAllTransacciones(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, a2.ID, all[0].AsientoContableID)
}

func TestConcurrentInsertsGetUniqueIDs(t *testing.T) {
	ctx := context.Background()
	ds := NewMemoryDataSource()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = ds.CreateCliente(ctx, model.Cliente{Nombre: gofakeit.Name()})
		}()
	}
	wg.Wait()

	all, err := ds.GetAllClientes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 50)
	seen := map[int]bool{}
	for _, c := range all {
		assert.False(t, seen[c.ID])
		seen[c.ID] = true
	}
}
