package database

import (
	"context"
	"time"

	"github.com/contaplus/cxc/model"
)

func (d *Datasource) CreateTransaccion(_ context.Context, t model.TransaccionContable) (model.TransaccionContable, error) {
	return d.transacciones.insert(func(id int) model.TransaccionContable {
		t.ID = id
		if t.FechaCreacion.IsZero() {
			t.FechaCreacion = time.Now().UTC()
		}
		return t
	}), nil
}

func (d *Datasource) GetTransaccionByID(_ context.Context, id int) (*model.TransaccionContable, error) {
	t, err := d.transacciones.get(id)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (d *Datasource) GetAllTransacciones(_ context.Context) ([]model.TransaccionContable, error) {
	return d.transacciones.all(nil), nil
}

func (d *Datasource) GetTransaccionesByAsiento(_ context.Context, asientoID int) ([]model.TransaccionContable, error) {
	return d.transacciones.all(func(t model.TransaccionContable) bool {
		return t.AsientoContableID == asientoID
	}), nil
}

func (d *Datasource) UpdateTransaccion(_ context.Context, t *model.TransaccionContable) error {
	existing, err := d.transacciones.get(t.ID)
	if err != nil {
		return err
	}
	t.FechaCreacion = existing.FechaCreacion
	return d.transacciones.update(t.ID, *t)
}

func (d *Datasource) DeleteTransaccion(_ context.Context, id int) error {
	return d.transacciones.delete(id)
}
