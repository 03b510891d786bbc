package database

import (
	"context"
	"time"

	"github.com/contaplus/cxc/model"
)

func (d *Datasource) CreateAsientoContable(_ context.Context, a model.AsientoContable) (model.AsientoContable, error) {
	return d.asientos.insert(func(id int) model.AsientoContable {
		a.ID = id
		if a.FechaCreacion.IsZero() {
			a.FechaCreacion = time.Now().UTC()
		}
		return a
	}), nil
}

func (d *Datasource) GetAsientoContableByID(_ context.Context, id int) (*model.AsientoContable, error) {
	a, err := d.asientos.get(id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (d *Datasource) GetAllAsientosContables(_ context.Context) ([]model.AsientoContable, error) {
	return d.asientos.all(nil), nil
}

func (d *Datasource) UpdateAsientoContable(_ context.Context, a *model.AsientoContable) error {
	existing, err := d.asientos.get(a.ID)
	if err != nil {
		return err
	}
	a.FechaCreacion = existing.FechaCreacion
	return d.asientos.update(a.ID, *a)
}

// DeleteAsientoContable removes the entry together with its lines.
func (d *Datasource) DeleteAsientoContable(_ context.Context, id int) error {
	if err := d.asientos.delete(id); err != nil {
		return err
	}
	for _, t := range d.transacciones.all(func(t model.TransaccionContable) bool { return t.AsientoContableID == id }) {
		_ = d.transacciones.delete(t.ID)
	}
	return nil
}
