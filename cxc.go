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
	"time"

	"github.com/contaplus/cxc/config"
	"github.com/contaplus/cxc/database"
	"github.com/contaplus/cxc/internal/cache"
	redis_db "github.com/contaplus/cxc/internal/redis-db"
	"github.com/contaplus/cxc/internal/source"
	"github.com/contaplus/cxc/ledger"
	"github.com/contaplus/cxc/model"
	"github.com/redis/go-redis/v9"
)

// LedgerClient reads and creates entries in the external ledger.
type LedgerClient interface {
	FetchEntries(ctx context.Context, dateFrom, dateTo string, accountID int) ([]model.LedgerEntry, error)
	PostEntry(ctx context.Context, entry model.NewLedgerEntry) (model.PostResult, error)
}

// TransactionSource returns raw, loosely typed transaction records.
type TransactionSource interface {
	FetchAll(ctx context.Context) ([]interface{}, error)
}

// Cxc is the accounts-receivable service: catalog CRUD, the reconciliation
// pipeline against the external ledger and the posting workflow.
type Cxc struct {
	datasource database.IDataSource
	ledger     LedgerClient
	source     TransactionSource
	redis      redis.UniversalClient
	cnf        *config.Configuration
	workflow   *Workflow
	sleep      func(ctx context.Context, d time.Duration) error
}

// Option configures a Cxc built by NewCxc.
type Option func(*Cxc)

// WithLedgerClient replaces the ledger client built from configuration.
func WithLedgerClient(l LedgerClient) Option {
	return func(c *Cxc) { c.ledger = l }
}

// WithTransactionSource replaces the transaction source built from
// configuration.
func WithTransactionSource(s TransactionSource) Option {
	return func(c *Cxc) { c.source = s }
}

// WithRedis enables the cross-instance posting lock.
func WithRedis(client redis.UniversalClient) Option {
	return func(c *Cxc) { c.redis = client }
}

// NewCxc builds the service from the loaded configuration. Ledger and
// transaction source clients are created from config unless supplied.
// A Redis connection is opened when redis.dns is configured; with Redis and
// transaction_source.cache_ttl_seconds set, source records are cached.
func NewCxc(db database.IDataSource, opts ...Option) (*Cxc, error) {
	configuration, err := config.Fetch()
	if err != nil {
		return nil, err
	}

	c := &Cxc{
		datasource: db,
		cnf:        configuration,
		sleep:      sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.ledger == nil {
		c.ledger = ledger.NewClientFromConfig(configuration.Ledger)
	}
	if c.source == nil {
		c.source = source.NewClientFromConfig(configuration.TransactionSource)
	}
	if c.redis == nil && configuration.Redis.Dns != "" {
		redisClient, err := redis_db.NewRedisClient(configuration.Redis.Dns, configuration.Redis.SkipTLSVerify)
		if err != nil {
			return nil, err
		}
		c.redis = redisClient.Client()
	}
	if c.redis != nil && configuration.TransactionSource.CacheTTLSeconds > 0 {
		ttl := time.Duration(configuration.TransactionSource.CacheTTLSeconds) * time.Second
		c.source = newCachedSource(c.source, cache.NewRedisCache(c.redis), ttl)
	}

	c.workflow = NewWorkflow()
	return c, nil
}

func (c *Cxc) Config() *config.Configuration {
	return c.cnf
}

func (c *Cxc) Workflow() *Workflow {
	return c.workflow
}

func (c *Cxc) reconcileOptions() ReconcileOptions {
	return ReconcileOptions{
		AccountID:        c.cnf.Ledger.AccountID,
		MovementType:     c.cnf.Ledger.MovementType,
		AuxiliaryID:      c.cnf.Ledger.AuxiliaryID,
		AuxiliaryName:    c.cnf.Ledger.AuxiliaryName,
		IncludeAuxiliary: c.cnf.Ledger.IncludeAuxiliary == nil || *c.cnf.Ledger.IncludeAuxiliary,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
