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

package redis_db

import (
	"context"
	"crypto/tls"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis holds the client shared by the posting lock and the webhook queue.
type Redis struct {
	client redis.UniversalClient
}

// ParseRedisURL accepts either a bare "host:port" address or a redis:// or
// rediss:// URL. A URL carrying only a password before the "@" is accepted too.
func ParseRedisURL(rawURL string, skipTLSVerify bool) (*redis.Options, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	if !strings.Contains(rawURL, "//") {
		return &redis.Options{Addr: rawURL}, nil
	}

	for _, scheme := range []string{"redis://", "rediss://"} {
		if !strings.HasPrefix(rawURL, scheme) {
			continue
		}
		rest := strings.TrimPrefix(rawURL, scheme)
		if at := strings.LastIndex(rest, "@"); at > 0 && !strings.Contains(rest[:at], ":") {
			rawURL = scheme + ":" + rest
		}
	}

	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	if opts.TLSConfig != nil && skipTLSVerify {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}
	return opts, nil
}

// NewRedisClient connects to a single Redis instance and verifies it answers.
func NewRedisClient(address string, skipTLSVerify bool) (*Redis, error) {
	opts, err := ParseRedisURL(address, skipTLSVerify)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &Redis{client: client}, nil
}

// Client returns the Redis universal client.
func (r *Redis) Client() redis.UniversalClient {
	return r.client
}
