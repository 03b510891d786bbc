package cxc

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/contaplus/cxc/config"
	"github.com/contaplus/cxc/database"
	"github.com/contaplus/cxc/internal/apierror"
	"github.com/contaplus/cxc/model"
	"github.com/stretchr/testify/require"
	"github.com/wacul/ptr"
)

const testAccount = 8

// fakeLedger keeps posted entries in memory so a reload sees them.
type fakeLedger struct {
	mu       sync.Mutex
	entries  []model.LedgerEntry
	posted   []model.NewLedgerEntry
	nextID   int
	fetchErr error
	// failWhen makes PostEntry fail for matching entries.
	failWhen func(model.NewLedgerEntry) bool
}

func (f *fakeLedger) FetchEntries(_ context.Context, _, _ string, _ int) ([]model.LedgerEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]model.LedgerEntry, len(f.entries))
	copy(out, f.entries)
	return out, nil
}

func (f *fakeLedger) PostEntry(_ context.Context, entry model.NewLedgerEntry) (model.PostResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posted = append(f.posted, entry)
	if f.failWhen != nil && f.failWhen(entry) {
		return model.PostResult{}, &apierror.ExternalServiceError{Status: 500, Body: "boom"}
	}
	f.nextID++
	id := 1000 + f.nextID
	f.entries = append(f.entries, model.LedgerEntry{
		ID:           id,
		Description:  entry.Description,
		AuxiliaryID:  entry.AuxiliaryID,
		AccountID:    entry.AccountID,
		MovementType: entry.MovementType,
		EntryDate:    entry.EntryDate,
		Amount:       entry.Amount,
	})
	return model.PostResult{ID: ptr.String(strconv.Itoa(id))}, nil
}

func (f *fakeLedger) postedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.posted)
}

type fakeSource struct {
	records []interface{}
	err     error
}

func (f *fakeSource) FetchAll(_ context.Context) ([]interface{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

var errSourceDown = errors.New("source down")

func testConfig() *config.Configuration {
	return &config.Configuration{
		ProjectName: "CxC Test",
		Ledger: config.LedgerConfig{
			BaseURL:          "http://ledger.test",
			APIKey:           "key",
			TimeoutSeconds:   10,
			AccountID:        testAccount,
			MovementType:     "CR",
			AuxiliaryID:      7,
			AuxiliaryName:    "COMPRAS",
			IncludeAuxiliary: ptr.Bool(true),
		},
		EntriesAPI: config.EntriesAPIConfig{
			BaseURL:        "http://entries.test/entradas-contables",
			APIKey:         "entries-key",
			CxCAccount:     "1101",
			ContraAccount:  "4101",
			TimeoutSeconds: 10,
		},
		Reconciliation: config.ReconciliationConfig{
			DateFrom:  "2020-01-01",
			DateTo:    "2030-12-31",
			PageSize:  10,
			LockKey:   "cxc:posting",
			LockTTLMs: 60000,
		},
		Queue: config.QueueConfig{WebhookQueue: "cxc_webhooks"},
	}
}

func newTestCxc(t *testing.T, l LedgerClient, s TransactionSource) *Cxc {
	t.Helper()
	config.MockConfig(testConfig())
	c, err := NewCxc(database.NewMemoryDataSource(), WithLedgerClient(l), WithTransactionSource(s))
	require.NoError(t, err)
	return c
}

func txn(clientID int, amount interface{}, date string) map[string]interface{} {
	return map[string]interface{}{"clienteId": clientID, "monto": amount, "fecha": date}
}

func entry(id int, amount float64, date string) model.LedgerEntry {
	return model.LedgerEntry{
		ID:           id,
		Description:  fmt.Sprintf("Consolidated CxC client %d", id),
		AccountID:    testAccount,
		MovementType: "CR",
		EntryDate:    date,
		Amount:       amount,
	}
}
