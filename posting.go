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
	"sync"
	"time"

	"github.com/contaplus/cxc/internal/apierror"
	redlock "github.com/contaplus/cxc/internal/lock"
	"github.com/contaplus/cxc/internal/notification"
	"github.com/contaplus/cxc/model"
	"github.com/sirupsen/logrus"
	"github.com/wacul/ptr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const postedEvent = "cxc.posted"

const (
	msgNothingToPost = "No hay transacciones pendientes para contabilizar."
	msgAllPosted     = "%d transacciones contabilizadas exitosamente."
	msgPartial       = "%d exitosas, %d con errores."
	msgAllFailed     = "Error contabilizando todas las transacciones."
)

// PostPending posts every pending row to the ledger. All posts run at once
// and every outcome is collected; a failing row never stops its siblings.
// Rows that already carry a ledger entry id are skipped.
func (c *Cxc) PostPending(ctx context.Context, rows []model.ConsolidatedRow) model.PostSummary {
	return c.postPending(ctx, model.GenerateUUIDWithSuffix("batch"), rows)
}

func (c *Cxc) postPending(ctx context.Context, batchID string, rows []model.ConsolidatedRow) model.PostSummary {
	ctx, span := otel.Tracer("cxc.posting").Start(ctx, "PostPending")
	defer span.End()

	pending := make([]model.ConsolidatedRow, 0, len(rows))
	for _, row := range rows {
		if row.IsPending() {
			pending = append(pending, row)
		}
	}

	summary := model.PostSummary{BatchID: batchID, Results: make([]model.PostOutcome, len(pending))}
	if len(pending) == 0 {
		summary.Message = msgNothingToPost
		return summary
	}

	opts := c.reconcileOptions()
	var wg sync.WaitGroup
	for i, row := range pending {
		wg.Add(1)
		go func(i int, row model.ConsolidatedRow) {
			defer wg.Done()
			summary.Results[i] = c.postRow(ctx, row, opts)
		}(i, row)
	}
	wg.Wait()

	for _, outcome := range summary.Results {
		if outcome.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}
	summary.Message = summaryMessage(summary.Succeeded, summary.Failed)

	span.SetAttributes(attribute.String("cxc.batch_id", batchID), attribute.Int("cxc.succeeded", summary.Succeeded), attribute.Int("cxc.failed", summary.Failed))
	logrus.WithFields(logrus.Fields{
		"batch_id":  batchID,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
	}).Info("posting batch finished")

	if err := notification.NotifyEvent(postedEvent, summary); err != nil {
		logrus.WithField("batch_id", batchID).Errorf("failed to queue %s webhook: %v", postedEvent, err)
	}
	return summary
}

func (c *Cxc) postRow(ctx context.Context, row model.ConsolidatedRow, opts ReconcileOptions) model.PostOutcome {
	outcome := model.PostOutcome{
		ClientID:    row.ClientID,
		Description: row.Description,
		Amount:      row.AccumulatedAmount,
	}

	if row.EntryDate == "" {
		outcome.Error = apierror.NewValidationError("fechaAsiento", "group has no valid transaction date").Error()
		return outcome
	}

	entry := model.NewLedgerEntry{
		Description:  row.Description,
		AccountID:    row.AccountID,
		MovementType: row.MovementType,
		EntryDate:    row.EntryDate,
		Amount:       row.AccumulatedAmount,
	}
	if opts.IncludeAuxiliary {
		entry.AuxiliaryID = ptr.Int(row.AuxiliaryID)
	}

	result, err := c.ledger.PostEntry(ctx, entry)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"client_id": row.ClientID,
			"amount":    row.AccumulatedAmount,
			"error":     err,
		}).Warn("ledger post failed")
		outcome.Error = err.Error()
		return outcome
	}

	outcome.Success = true
	outcome.EntryID = result.ID
	return outcome
}

func summaryMessage(succeeded, failed int) string {
	switch {
	case failed == 0:
		return fmt.Sprintf(msgAllPosted, succeeded)
	case succeeded > 0:
		return fmt.Sprintf(msgPartial, succeeded, failed)
	default:
		return msgAllFailed
	}
}

// Load runs a reconciliation pass through the workflow, so the current view
// and state are what /asiento-cxc/estado reports.
func (c *Cxc) Load(ctx context.Context, dateFrom, dateTo string) (model.ReconciledView, error) {
	if err := c.workflow.beginLoad(dateFrom, dateTo); err != nil {
		return model.ReconciledView{}, err
	}
	view, err := c.LoadView(ctx, dateFrom, dateTo)
	c.workflow.finishLoad(view, err)
	return view, err
}

// Contabilizar posts the pending rows of the current view, waits for the
// ledger's read side to settle and reloads. The returned view is the reloaded
// one. A reload failure is returned alongside the posting summary.
func (c *Cxc) Contabilizar(ctx context.Context) (model.PostSummary, model.ReconciledView, error) {
	rows, dateFrom, dateTo, err := c.workflow.beginPost()
	if err != nil {
		return model.PostSummary{}, model.ReconciledView{}, err
	}

	batchID := model.GenerateUUIDWithSuffix("batch")
	var summary model.PostSummary
	post := func(ctx context.Context) error {
		summary = c.postPending(ctx, batchID, rows)
		return nil
	}

	if c.redis != nil {
		ttl := time.Duration(c.cnf.Reconciliation.LockTTLMs) * time.Millisecond
		locker := redlock.NewLocker(c.redis, c.cnf.Reconciliation.LockKey, batchID)
		err = locker.WithLock(ctx, ttl, post)
	} else {
		err = post(ctx)
	}
	if err != nil {
		c.workflow.abortPost()
		return model.PostSummary{}, model.ReconciledView{}, fmt.Errorf("posting batch %s: %w", batchID, err)
	}

	c.workflow.postDone(summary)

	delay := time.Duration(c.cnf.Reconciliation.ReloadDelayMs) * time.Millisecond
	if err := c.sleep(ctx, delay); err != nil {
		c.workflow.finishLoad(model.ReconciledView{}, err)
		return summary, model.ReconciledView{}, err
	}

	view, err := c.LoadView(ctx, dateFrom, dateTo)
	c.workflow.finishLoad(view, err)
	if err != nil {
		return summary, model.ReconciledView{}, fmt.Errorf("reloading after post: %w", err)
	}
	return summary, view, nil
}
