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
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client), mr
}

func TestSetAndGet(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "clientes", map[string]string{"hello": "world"}, time.Minute))
	assert.True(t, mr.Exists("clientes"))

	var got map[string]string
	found, err := c.Get(ctx, "clientes", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "world", got["hello"])
}

func TestGetMiss(t *testing.T) {
	c, _ := newTestCache(t)

	var got []interface{}
	found, err := c.Get(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestDelete(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))
	assert.False(t, mr.Exists("k"))
	assert.NoError(t, c.Delete(ctx, "k"))
}
