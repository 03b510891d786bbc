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
	"time"

	"github.com/shopspring/decimal"
)

type ClientGroup struct {
	ClientID   int             `json:"clienteId"`
	Total      decimal.Decimal `json:"total"`
	LatestDate time.Time       `json:"fechaMax"`
}

// ConsolidatedRow is one line of the reconciled view. A nil LedgerEntryID
// marks the row as pending.
type ConsolidatedRow struct {
	LedgerEntryID     *int    `json:"id_asiento"`
	ClientID          int     `json:"clienteId"`
	Description       string  `json:"descripcion"`
	AuxiliaryID       int     `json:"auxiliar_Id"`
	AuxiliaryName     string  `json:"auxiliar_Nombre"`
	AccountID         int     `json:"cuenta_Id"`
	MovementType      string  `json:"tipoMovimiento"`
	EntryDate         string  `json:"fechaAsiento"`
	AccumulatedAmount float64 `json:"montoAcumulado"`
}

func (r ConsolidatedRow) IsPending() bool {
	return r.LedgerEntryID == nil
}

type PostOutcome struct {
	ClientID    int     `json:"clienteId"`
	Description string  `json:"descripcion"`
	Amount      float64 `json:"monto"`
	Success     bool    `json:"success"`
	EntryID     *string `json:"id_entrada,omitempty"`
	Error       string  `json:"error,omitempty"`
}

type PostSummary struct {
	BatchID   string        `json:"batch_id"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Message   string        `json:"message"`
	Results   []PostOutcome `json:"results"`
}

type ReconciledView struct {
	RunID        string            `json:"run_id"`
	DateFrom     string            `json:"fecha_desde"`
	DateTo       string            `json:"fecha_hasta"`
	Rows         []ConsolidatedRow `json:"rows"`
	Pending      []ConsolidatedRow `json:"pending"`
	TotalAmount  float64           `json:"total_amount"`
	PostedCount  int               `json:"posted_count"`
	PendingCount int               `json:"pending_count"`
	LoadedAt     time.Time         `json:"loaded_at"`
}

// Page returns the 1-based page of rows for the given page size.
func (v ReconciledView) Page(page, perPage int) []ConsolidatedRow {
	if perPage <= 0 {
		return v.Rows
	}
	if page < 1 {
		page = 1
	}
	// Compare before multiplying so huge page numbers cannot overflow.
	if len(v.Rows) == 0 || page-1 > (len(v.Rows)-1)/perPage {
		return []ConsolidatedRow{}
	}
	start := (page - 1) * perPage
	end := len(v.Rows)
	if perPage < end-start {
		end = start + perPage
	}
	return v.Rows[start:end]
}

func (v ReconciledView) TotalPages(perPage int) int {
	if perPage <= 0 || len(v.Rows) == 0 {
		return 1
	}
	return (len(v.Rows) + perPage - 1) / perPage
}
