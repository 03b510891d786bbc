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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/contaplus/cxc/internal/apierror"
	"github.com/contaplus/cxc/internal/dates"
	"github.com/contaplus/cxc/internal/request"
	"github.com/contaplus/cxc/ledger"
	"github.com/contaplus/cxc/model"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var errMissingEntriesKey = errors.New("CXC_API_KEY environment variable is required")

func (c *Cxc) entriesOptions(operation string) (request.Options, error) {
	cfg := c.cnf.EntriesAPI
	if cfg.APIKey == "" {
		return request.Options{}, errMissingEntriesKey
	}
	return request.Options{
		Operation: operation,
		Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
		Headers:   map[string]string{"x-api-key": cfg.APIKey},
	}, nil
}

// ListEntradas returns the entries held by the accounting-entries API. When
// both bounds are given only entries whose fecha, date or fechaCreacion falls
// within [from, to] are kept.
func (c *Cxc) ListEntradas(ctx context.Context, from, to string) ([]map[string]interface{}, error) {
	opts, err := c.entriesOptions("list entradas")
	if err != nil {
		return nil, err
	}

	raw, err := request.Send(ctx, http.MethodGet, c.cnf.EntriesAPI.BaseURL, nil, opts)
	if err != nil {
		return nil, err
	}

	items, err := entriesFromBody(raw)
	if err != nil {
		return nil, err
	}
	if from == "" || to == "" {
		return items, nil
	}

	filtered := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		d := model.ToString(firstNonEmpty(item, "fecha", "date", "fechaCreacion"))
		if d != "" && dates.InRange(d, from, to) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// entriesFromBody accepts a bare array or an object with an items list.
// Anything else reads as no entries.
func entriesFromBody(raw []byte) ([]map[string]interface{}, error) {
	var decoded interface{}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return []map[string]interface{}{}, nil
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &apierror.UnexpectedResponseShapeError{Reason: "body is not JSON", Body: string(raw)}
	}

	var list []interface{}
	switch v := decoded.(type) {
	case []interface{}:
		list = v
	case map[string]interface{}:
		list, _ = v["items"].([]interface{})
	}

	items := make([]map[string]interface{}, 0, len(list))
	for _, el := range list {
		if m, ok := el.(map[string]interface{}); ok {
			items = append(items, m)
		}
	}
	return items, nil
}

func firstNonEmpty(m map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil && v != "" {
			return v
		}
	}
	return nil
}

// BuildEntrada validates a CxC row and turns it into a balanced two-line
// entry: the receivables account is debited and the contra account credited
// for the same amount. The year of the Spanish date is the current one.
func BuildEntrada(fila model.FilaCxC, cxcAccount, contraAccount string, year int) (model.EntradaContable, error) {
	if isBlank(fila.IDTransaccion) || strings.TrimSpace(fila.Descripcion) == "" || strings.TrimSpace(fila.FechaTransaccion) == "" || fila.Monto == 0 {
		return model.EntradaContable{}, apierror.NewValidationError("", "Missing required fields: idTransaccion, descripcion, fechaTransaccion, monto")
	}
	if fila.Monto <= 0 {
		return model.EntradaContable{}, apierror.NewValidationError("monto", "Monto must be greater than 0")
	}

	fecha, err := dates.ToISOFromEs(fila.FechaTransaccion, year)
	if err != nil {
		return model.EntradaContable{}, apierror.NewValidationError("fechaTransaccion",
			fmt.Sprintf("Invalid date format: %s. Use \"DD de Mes\" format.", fila.FechaTransaccion))
	}

	monto := decimal.NewFromFloat(fila.Monto).Round(2).InexactFloat64()
	return model.EntradaContable{
		Fecha:       fecha,
		Descripcion: fmt.Sprintf("CxC Transaccion #%s - %s", model.ToString(fila.IDTransaccion), fila.Descripcion),
		Movimientos: []model.Movimiento{
			{Cuenta: cxcAccount, Debe: monto, Haber: 0},
			{Cuenta: contraAccount, Debe: 0, Haber: monto},
		},
	}, nil
}

func isBlank(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case bool:
		return !t
	}
	return model.ToFloat(v) == 0
}

// CreateEntrada books a single CxC transaction in the accounting-entries API.
// Validation failures never reach the network.
func (c *Cxc) CreateEntrada(ctx context.Context, fila model.FilaCxC) (model.EntradaCreada, error) {
	cfg := c.cnf.EntriesAPI
	opts, err := c.entriesOptions("create entrada")
	if err != nil {
		return model.EntradaCreada{}, err
	}

	entrada, err := BuildEntrada(fila, cfg.CxCAccount, cfg.ContraAccount, time.Now().Year())
	if err != nil {
		return model.EntradaCreada{}, err
	}

	raw, err := request.Send(ctx, http.MethodPost, cfg.BaseURL, entrada, opts)
	if err != nil {
		return model.EntradaCreada{}, err
	}

	data := map[string]interface{}{}
	if len(strings.TrimSpace(string(raw))) > 0 {
		if err := json.Unmarshal(raw, &data); err != nil {
			return model.EntradaCreada{}, &apierror.UnexpectedResponseShapeError{Reason: "body is not a JSON object", Body: string(raw)}
		}
	}

	created := model.EntradaCreada{IDAsiento: ledger.ExtractID(data), Raw: data}
	logrus.WithFields(logrus.Fields{
		"transaction": model.ToString(fila.IDTransaccion),
		"fecha":       entrada.Fecha,
		"monto":       entrada.Movimientos[0].Debe,
	}).Info("cxc entry created")
	return created, nil
}
