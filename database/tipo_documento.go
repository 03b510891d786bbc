package database

import (
	"context"
	"time"

	"github.com/contaplus/cxc/model"
)

func (d *Datasource) CreateTipoDocumento(_ context.Context, t model.TipoDocumento) (model.TipoDocumento, error) {
	return d.tiposDocumentos.insert(func(id int) model.TipoDocumento {
		t.ID = id
		if t.FechaCreacion.IsZero() {
			t.FechaCreacion = time.Now().UTC()
		}
		return t
	}), nil
}

func (d *Datasource) GetTipoDocumentoByID(_ context.Context, id int) (*model.TipoDocumento, error) {
	t, err := d.tiposDocumentos.get(id)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (d *Datasource) GetAllTiposDocumentos(_ context.Context) ([]model.TipoDocumento, error) {
	return d.tiposDocumentos.all(nil), nil
}

func (d *Datasource) UpdateTipoDocumento(_ context.Context, t *model.TipoDocumento) error {
	existing, err := d.tiposDocumentos.get(t.ID)
	if err != nil {
		return err
	}
	t.FechaCreacion = existing.FechaCreacion
	return d.tiposDocumentos.update(t.ID, *t)
}

func (d *Datasource) DeleteTipoDocumento(_ context.Context, id int) error {
	return d.tiposDocumentos.delete(id)
}
