package cxc

import (
	"context"
	"time"

	"github.com/contaplus/cxc/internal/cache"
	"github.com/sirupsen/logrus"
)

const sourceCacheKey = "cxc:source:records"

// cachedSource serves FetchAll from Redis for ttl after a successful fetch.
// Cache failures fall through to the wrapped source.
type cachedSource struct {
	next  TransactionSource
	cache cache.Cache
	ttl   time.Duration
}

func newCachedSource(next TransactionSource, c cache.Cache, ttl time.Duration) *cachedSource {
	return &cachedSource{next: next, cache: c, ttl: ttl}
}

func (s *cachedSource) FetchAll(ctx context.Context) ([]interface{}, error) {
	var records []interface{}
	found, err := s.cache.Get(ctx, sourceCacheKey, &records)
	if err != nil {
		logrus.WithError(err).Warn("transaction source cache read failed")
	}
	if found {
		return records, nil
	}

	records, err = s.next.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, sourceCacheKey, records, s.ttl); err != nil {
		logrus.WithError(err).Warn("transaction source cache write failed")
	}
	return records, nil
}

// invalidate drops the cached records so the next load refetches.
func (s *cachedSource) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, sourceCacheKey); err != nil {
		logrus.WithError(err).Warn("transaction source cache delete failed")
	}
}

// RefreshSource discards cached transaction records, if any are cached.
func (c *Cxc) RefreshSource(ctx context.Context) {
	if cs, ok := c.source.(*cachedSource); ok {
		cs.invalidate(ctx)
	}
}
