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
	"fmt"
	"math"
	"regexp"
	"sort"
	"time"

	"github.com/contaplus/cxc/internal/dates"
	"github.com/contaplus/cxc/internal/notification"
	"github.com/contaplus/cxc/model"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// AmountTolerance is the largest difference, exclusive, at which two amounts
// are still considered equal when matching against the ledger.
const AmountTolerance = 0.01

var clientInDescription = regexp.MustCompile(`(?i)client(?:e)?\s+(\d+)`)

// ReconcileOptions fixes the ledger coordinates rows are matched and posted on.
type ReconcileOptions struct {
	AccountID        int
	MovementType     string
	AuxiliaryID      int
	AuxiliaryName    string
	IncludeAuxiliary bool
}

// PendingDescription is the description given to a group that has not been
// posted yet.
func PendingDescription(clientID int) string {
	return fmt.Sprintf("Consolidated CxC client %d", clientID)
}

// RoundCents rounds half away from zero at the second decimal. Totals are
// non-negative in practice, where this is plain half-up.
func RoundCents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// GroupByClient sums amounts and keeps the latest date per client. The sum is
// exact decimal arithmetic, so the result does not depend on input order.
// Dates that cannot be parsed never move LatestDate.
func GroupByClient(transactions []model.Transaction) map[int]model.ClientGroup {
	groups := make(map[int]model.ClientGroup)
	for _, txn := range transactions {
		group, ok := groups[txn.ClientID]
		if !ok {
			group = model.ClientGroup{ClientID: txn.ClientID, Total: decimal.Zero, LatestDate: time.Time{}}
		}

		group.Total = group.Total.Add(decimal.NewFromFloat(txn.Amount))
		if d, err := dates.Parse(txn.Date); err == nil {
			day := calendarDay(d)
			if day.After(group.LatestDate) {
				group.LatestDate = day
			}
		}
		groups[txn.ClientID] = group
	}
	return groups
}

// calendarDay drops the clock and zone, keeping the date the value names.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sortedGroups returns the groups ordered by client id.
func sortedGroups(groups map[int]model.ClientGroup) []model.ClientGroup {
	out := make([]model.ClientGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClientID < out[j].ClientID })
	return out
}

func amountsMatch(a, b float64) bool {
	return math.Abs(a-b) < AmountTolerance
}

// FindMatch returns the first entry, in the order given, on the target
// account and movement type whose amount is within AmountTolerance of the
// candidate's and whose calendar date equals the candidate's. A candidate or
// entry without a parseable date never matches.
func FindMatch(entries []model.LedgerEntry, candidate model.ConsolidatedRow, opts ReconcileOptions) *model.LedgerEntry {
	candidateDate, err := dates.Parse(candidate.EntryDate)
	if err != nil {
		return nil
	}
	want := candidateDate.Format(dates.ISOLayout)
	for i := range entries {
		e := entries[i]
		if e.AccountID != opts.AccountID || e.MovementType != opts.MovementType {
			continue
		}
		if !amountsMatch(e.Amount, candidate.AccumulatedAmount) {
			continue
		}
		entryDate, err := dates.Parse(e.EntryDate)
		if err != nil || entryDate.Format(dates.ISOLayout) != want {
			continue
		}
		return &entries[i]
	}
	return nil
}

func groupRow(g model.ClientGroup, opts ReconcileOptions) model.ConsolidatedRow {
	entryDate := ""
	if !g.LatestDate.IsZero() {
		entryDate = g.LatestDate.Format(dates.ISOLayout)
	}
	return model.ConsolidatedRow{
		ClientID:          g.ClientID,
		Description:       PendingDescription(g.ClientID),
		AuxiliaryID:       opts.AuxiliaryID,
		AuxiliaryName:     opts.AuxiliaryName,
		AccountID:         opts.AccountID,
		MovementType:      opts.MovementType,
		EntryDate:         entryDate,
		AccumulatedAmount: RoundCents(g.Total),
	}
}

// Classify emits one row per group, ordered by client id. A group with a
// matching ledger entry carries that entry's id and description; any other
// group is pending.
func Classify(groups map[int]model.ClientGroup, entries []model.LedgerEntry, opts ReconcileOptions) []model.ConsolidatedRow {
	rows := make([]model.ConsolidatedRow, 0, len(groups))
	for _, g := range sortedGroups(groups) {
		row := groupRow(g, opts)
		if match := FindMatch(entries, row, opts); match != nil {
			id := match.ID
			row.LedgerEntryID = &id
			row.Description = match.Description
		}
		rows = append(rows, row)
	}
	return rows
}

// ClientIDFromDescription recovers the client id embedded in a generated
// description, falling back to fallback.
func ClientIDFromDescription(description string, fallback int) int {
	m := clientInDescription.FindStringSubmatch(description)
	if m == nil {
		return fallback
	}
	var id int
	if _, err := fmt.Sscanf(m[1], "%d", &id); err != nil {
		return fallback
	}
	return id
}

func entryRow(e model.LedgerEntry, position int, opts ReconcileOptions) model.ConsolidatedRow {
	id := e.ID
	aux := opts.AuxiliaryID
	if e.AuxiliaryID != nil && *e.AuxiliaryID != 0 {
		aux = *e.AuxiliaryID
	}
	description := e.Description
	if description == "" {
		description = fmt.Sprintf("Entrada %d", e.ID)
	}
	return model.ConsolidatedRow{
		LedgerEntryID:     &id,
		ClientID:          ClientIDFromDescription(e.Description, position+1),
		Description:       description,
		AuxiliaryID:       aux,
		AuxiliaryName:     opts.AuxiliaryName,
		AccountID:         e.AccountID,
		MovementType:      e.MovementType,
		EntryDate:         dates.Canonical(e.EntryDate),
		AccumulatedAmount: e.Amount,
	}
}

// BuildView assembles the reconciled view: every existing entry on the
// account and movement type, in ledger order, followed by the groups that
// are still pending.
func BuildView(groups map[int]model.ClientGroup, entries []model.LedgerEntry, opts ReconcileOptions) model.ReconciledView {
	view := model.ReconciledView{Rows: []model.ConsolidatedRow{}, Pending: []model.ConsolidatedRow{}}

	position := 0
	for _, e := range entries {
		if e.AccountID != opts.AccountID || e.MovementType != opts.MovementType {
			continue
		}
		view.Rows = append(view.Rows, entryRow(e, position, opts))
		position++
	}

	for _, row := range Classify(groups, entries, opts) {
		if row.IsPending() {
			view.Pending = append(view.Pending, row)
		}
	}
	view.Rows = append(view.Rows, view.Pending...)

	total := decimal.Zero
	for _, row := range view.Rows {
		total = total.Add(decimal.NewFromFloat(row.AccumulatedAmount))
		if !row.IsPending() {
			view.PostedCount++
		}
	}
	view.TotalAmount = RoundCents(total)
	view.PendingCount = len(view.Pending)
	return view
}

// LoadView runs one reconciliation pass over [dateFrom, dateTo]. A ledger
// read failure aborts the pass; a transaction source failure only means no
// pending rows are shown.
func (c *Cxc) LoadView(ctx context.Context, dateFrom, dateTo string) (model.ReconciledView, error) {
	ctx, span := otel.Tracer("cxc.reconciliation").Start(ctx, "LoadView")
	defer span.End()

	if dateFrom == "" {
		dateFrom = c.cnf.Reconciliation.DateFrom
	}
	if dateTo == "" {
		dateTo = c.cnf.Reconciliation.DateTo
	}
	runID := model.GenerateUUIDWithSuffix("rec")
	opts := c.reconcileOptions()
	span.SetAttributes(attribute.String("cxc.run_id", runID), attribute.String("cxc.date_from", dateFrom), attribute.String("cxc.date_to", dateTo))

	entries, err := c.ledger.FetchEntries(ctx, dateFrom, dateTo, opts.AccountID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "ledger read failed")
		notification.NotifyError(fmt.Errorf("reconciliation %s: fetching ledger entries: %w", runID, err))
		return model.ReconciledView{}, fmt.Errorf("fetching ledger entries: %w", err)
	}

	raw, err := c.source.FetchAll(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"error":  err,
		}).Warn("transaction source unavailable, showing posted entries only")
		raw = nil
	}

	transactions := Normalize(raw)
	groups := GroupByClient(transactions)
	view := BuildView(groups, entries, opts)
	view.RunID = runID
	view.DateFrom = dateFrom
	view.DateTo = dateTo
	view.LoadedAt = time.Now().UTC()

	logrus.WithFields(logrus.Fields{
		"run_id":       runID,
		"entries":      len(entries),
		"transactions": len(transactions),
		"groups":       len(groups),
		"pending":      view.PendingCount,
	}).Info("reconciliation pass completed")
	span.SetAttributes(attribute.Int("cxc.pending", view.PendingCount), attribute.Int("cxc.posted", view.PostedCount))

	return view, nil
}
