package redis_db

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRedisURL(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		wantAddr     string
		wantPassword string
		wantErr      bool
	}{
		{name: "simple docker style", url: "redis:6379", wantAddr: "redis:6379"},
		{name: "redis url with password", url: "redis://:password123@localhost:6379", wantAddr: "localhost:6379", wantPassword: "password123"},
		{name: "password without colon", url: "redis://secret@localhost:6379", wantAddr: "localhost:6379", wantPassword: "secret"},
		{name: "tls url", url: "rediss://:pw@cache.example.com:6380", wantAddr: "cache.example.com:6380", wantPassword: "pw"},
		{name: "empty", url: "  ", wantErr: true},
		{name: "bad scheme", url: "http://localhost:6379", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRedisURL(tt.url, false)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, got.Addr)
			assert.Equal(t, tt.wantPassword, got.Password)
		})
	}
}

func TestParseRedisURL_SkipTLSVerify(t *testing.T) {
	got, err := ParseRedisURL("rediss://:pw@cache.example.com:6380", true)
	require.NoError(t, err)
	require.NotNil(t, got.TLSConfig)
	assert.True(t, got.TLSConfig.InsecureSkipVerify)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(mr.Addr(), false)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, client.Client().Set(ctx, "k", "v", time.Minute).Err())
	got, err := client.Client().Get(ctx, "k").Result()
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisClient(addr, false)
	assert.Error(t, err)
}
