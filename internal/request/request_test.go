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

package request_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/contaplus/cxc/internal/apierror"
	"github.com/contaplus/cxc/internal/request"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJsonReq_Success(t *testing.T) {
	payload := map[string]string{
		"key": "value",
	}

	reqBuffer, err := request.ToJsonReq(payload)
	assert.NoError(t, err)

	expectedJSON, _ := json.Marshal(payload)
	assert.Equal(t, expectedJSON, reqBuffer.Bytes())
}

func TestToJsonReq_Fail(t *testing.T) {
	payload := map[string]interface{}{
		"key": make(chan int), // invalid data type for JSON encoding
	}

	reqBuffer, err := request.ToJsonReq(payload)
	assert.Error(t, err)
	assert.Nil(t, reqBuffer)
}

func TestCall_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{"status":"success"}`))
		assert.NoError(t, err)
	}))
	defer server.Close()

	req, err := http.NewRequest("GET", server.URL, nil)
	assert.NoError(t, err)

	var response map[string]string
	resp, err := request.Call(req, &response)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", response["status"])
}

func TestCall_Fail_DecodeResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{malformed json response`))
		assert.NoError(t, err)
	}))
	defer server.Close()

	req, err := http.NewRequest("GET", server.URL, nil)
	assert.NoError(t, err)

	var response map[string]string
	resp, err := request.Call(req, &response)
	assert.Error(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSend_SuccessSetsHeadersAndBody(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", "http://ledger.test/entries",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "secret", req.Header.Get("X-API-Key"))
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			b, _ := io.ReadAll(req.Body)
			assert.JSONEq(t, `{"a":1}`, string(b))
			return httpmock.NewStringResponse(201, `{"id":9}`), nil
		})

	raw, err := request.Send(context.Background(), http.MethodPost, "http://ledger.test/entries",
		map[string]int{"a": 1}, request.Options{Operation: "post", Timeout: time.Second, Headers: map[string]string{"X-API-Key": "secret"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":9}`, string(raw))
}

func TestSend_NonSuccessStatus(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "http://ledger.test/entries",
		httpmock.NewStringResponder(500, `internal failure`))

	_, err := request.Send(context.Background(), http.MethodGet, "http://ledger.test/entries", nil, request.Options{Operation: "fetch"})

	var extErr *apierror.ExternalServiceError
	require.True(t, errors.As(err, &extErr))
	assert.Equal(t, 500, extErr.Status)
	assert.Equal(t, "internal failure", extErr.Body)
}

func TestSend_Timeout(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "http://ledger.test/slow",
		func(req *http.Request) (*http.Response, error) {
			<-req.Context().Done()
			return nil, req.Context().Err()
		})

	_, err := request.Send(context.Background(), http.MethodGet, "http://ledger.test/slow", nil,
		request.Options{Operation: "fetch", Timeout: 20 * time.Millisecond})

	var timeoutErr *apierror.TimeoutError
	require.True(t, errors.As(err, &timeoutErr))
	assert.Equal(t, "fetch", timeoutErr.Operation)
}

func TestSend_TransportError(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "http://ledger.test/down",
		httpmock.NewErrorResponder(errors.New("connection refused")))

	_, err := request.Send(context.Background(), http.MethodGet, "http://ledger.test/down", nil, request.Options{})
	assert.Error(t, err)

	var timeoutErr *apierror.TimeoutError
	assert.False(t, errors.As(err, &timeoutErr))
}
