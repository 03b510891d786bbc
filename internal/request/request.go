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

package request

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/contaplus/cxc/internal/apierror"
	"github.com/sirupsen/logrus"
)

// ToJsonReq converts a Go object to a JSON-encoded HTTP request payload.
// It serializes the provided payload to JSON format and wraps it in a buffer for sending in HTTP requests.
//
// Parameters:
// - payload interface{}: The data structure to be serialized into JSON.
//
// Returns:
// - *bytes.Buffer: The JSON-encoded payload wrapped in a bytes buffer, ready to be sent in a request.
// - error: An error if the JSON marshalling process fails.
func ToJsonReq(payload interface{}) (*bytes.Buffer, error) {
	c, e := json.Marshal(payload)
	if e != nil {
		return nil, e
	}
	return bytes.NewBuffer(c), nil
}

// Call makes an HTTP request using the provided request object and decodes the response into the specified structure.
// It automatically sets the request Content-Type to application/json and decodes the JSON response body into the provided response interface.
//
// Parameters:
// - req *http.Request: The prepared HTTP request to send.
// - response interface{}: The target structure to hold the decoded JSON response.
//
// Returns:
// - *http.Response: The raw HTTP response object.
// - error: An error if the HTTP request or JSON decoding fails.
func Call(req *http.Request, response interface{}) (*http.Response, error) {
	req.Header.Set("Content-Type", "application/json")
	client := &http.Client{}

	resp, err := client.Do(req)
	if err != nil {
		return resp, err
	}
	defer resp.Body.Close()

	err = json.NewDecoder(resp.Body).Decode(&response)
	return resp, err
}

// Options describes a single outbound JSON call.
type Options struct {
	// Operation names the call in logs and timeout errors.
	Operation string
	Timeout   time.Duration
	Headers   map[string]string
}

// Send issues a JSON request bounded by opts.Timeout and returns the raw
// response body. A deadline expiry is reported as *apierror.TimeoutError and
// any non-2xx status as *apierror.ExternalServiceError, so callers can tell a
// slow service from a failing one. Nothing is retried.
func Send(ctx context.Context, method, url string, payload interface{}, opts Options) ([]byte, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var body io.Reader
	if payload != nil {
		buf, err := ToJsonReq(payload)
		if err != nil {
			return nil, err
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range opts.Headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, &apierror.TimeoutError{Operation: opts.Operation, Err: err}
		}
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, &apierror.TimeoutError{Operation: opts.Operation, Err: err}
		}
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logrus.WithFields(logrus.Fields{
			"operation": opts.Operation,
			"method":    method,
			"url":       url,
			"status":    resp.StatusCode,
		}).Warn("external service returned a non-success status")
		return nil, &apierror.ExternalServiceError{Status: resp.StatusCode, Body: string(raw)}
	}

	return raw, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
