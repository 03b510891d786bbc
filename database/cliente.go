package database

import (
	"context"
	"time"

	"github.com/contaplus/cxc/model"
)

func (d *Datasource) CreateCliente(_ context.Context, c model.Cliente) (model.Cliente, error) {
	return d.clientes.insert(func(id int) model.Cliente {
		c.ID = id
		if c.FechaRegistro.IsZero() {
			c.FechaRegistro = time.Now().UTC()
		}
		return c
	}), nil
}

func (d *Datasource) GetClienteByID(_ context.Context, id int) (*model.Cliente, error) {
	c, err := d.clientes.get(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (d *Datasource) GetAllClientes(_ context.Context) ([]model.Cliente, error) {
	return d.clientes.all(nil), nil
}

// UpdateCliente replaces the stored client; the registration date is kept.
func (d *Datasource) UpdateCliente(_ context.Context, c *model.Cliente) error {
	existing, err := d.clientes.get(c.ID)
	if err != nil {
		return err
	}
	c.FechaRegistro = existing.FechaRegistro
	return d.clientes.update(c.ID, *c)
}

func (d *Datasource) DeleteCliente(_ context.Context, id int) error {
	return d.clientes.delete(id)
}
