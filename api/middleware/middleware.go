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
package middleware

import (
	"time"

	"github.com/contaplus/cxc/config"
	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RateLimitMiddleware limits requests per client IP with tollbooth. It is a
// pass-through unless both rate_limit.requests_per_second and burst are set.
func RateLimitMiddleware(conf *config.Configuration) gin.HandlerFunc {
	if conf.RateLimit.RequestsPerSecond == nil || conf.RateLimit.Burst == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	opts := &limiter.ExpirableOptions{}
	if conf.RateLimit.CleanupIntervalSec != nil {
		opts.DefaultExpirationTTL = time.Duration(*conf.RateLimit.CleanupIntervalSec) * time.Second
	}
	lmt := tollbooth.NewLimiter(*conf.RateLimit.RequestsPerSecond, opts)
	lmt.SetBurst(*conf.RateLimit.Burst)

	return func(c *gin.Context) {
		if httpError := tollbooth.LimitByRequest(lmt, c.Writer, c.Request); httpError != nil {
			c.AbortWithStatusJSON(httpError.StatusCode, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

// RequestLogger writes one logrus line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry.Warn(c.Errors.String())
			return
		}
		entry.Info("request handled")
	}
}
