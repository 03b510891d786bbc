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
	"encoding/json"

	"github.com/wacul/ptr"
)

// LedgerEntry is an entry held by the external ledger service.
type LedgerEntry struct {
	ID           int     `json:"id"`
	Description  string  `json:"descripcion"`
	AuxiliaryID  *int    `json:"auxiliar_Id"`
	AccountID    int     `json:"cuenta_Id"`
	MovementType string  `json:"tipoMovimiento"`
	EntryDate    string  `json:"fechaAsiento"`
	Amount       float64 `json:"montoAsiento"`
	StatusID     int     `json:"estado_Id"`
}

// UnmarshalJSON accepts numbers sent as strings and tolerates missing fields.
func (e *LedgerEntry) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = LedgerEntry{
		ID:           ToInt(raw["id"]),
		Description:  ToString(raw["descripcion"]),
		AccountID:    ToInt(raw["cuenta_Id"]),
		MovementType: ToString(raw["tipoMovimiento"]),
		EntryDate:    ToString(raw["fechaAsiento"]),
		Amount:       ToFloat(raw["montoAsiento"]),
		StatusID:     ToInt(raw["estado_Id"]),
	}
	if aux := raw["auxiliar_Id"]; aux != nil {
		e.AuxiliaryID = ptr.Int(ToInt(aux))
	}
	return nil
}

// NewLedgerEntry is the body posted to the ledger to create a CR entry.
type NewLedgerEntry struct {
	Description  string  `json:"descripcion"`
	AccountID    int     `json:"cuenta_Id"`
	MovementType string  `json:"tipoMovimiento"`
	EntryDate    string  `json:"fechaAsiento"`
	Amount       float64 `json:"montoAsiento"`
	AuxiliaryID  *int    `json:"auxiliar_Id,omitempty"`
}

// PostResult is what the ledger answered to a create request. ID is nil when
// the response carried no recognisable identifier; Raw keeps the body.
type PostResult struct {
	ID  *string         `json:"id"`
	Raw json.RawMessage `json:"raw,omitempty"`
}
