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

// Package ledger talks to the external bookkeeping service that stores the
// consolidated CxC entries.
package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/contaplus/cxc/config"
	"github.com/contaplus/cxc/internal/apierror"
	"github.com/contaplus/cxc/internal/request"
	"github.com/contaplus/cxc/model"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/wacul/ptr"
)

const apiKeyHeader = "X-API-Key"

type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{baseURL: baseURL, apiKey: apiKey, timeout: timeout}
}

func NewClientFromConfig(cnf config.LedgerConfig) *Client {
	return NewClient(cnf.BaseURL, cnf.APIKey, time.Duration(cnf.TimeoutSeconds)*time.Second)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// FetchEntries lists the ledger entries of accountID between dateFrom and
// dateTo (YYYY-MM-DD, inclusive as the ledger defines it).
func (c *Client) FetchEntries(ctx context.Context, dateFrom, dateTo string, accountID int) ([]model.LedgerEntry, error) {
	q := url.Values{}
	q.Set("fechaInicio", dateFrom)
	q.Set("fechaFin", dateTo)
	q.Set("cuenta_Id", strconv.Itoa(accountID))

	body, err := request.Send(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil, request.Options{
		Operation: "fetch ledger entries",
		Timeout:   c.timeout,
		Headers:   map[string]string{apiKeyHeader: c.apiKey},
	})
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &apierror.UnexpectedResponseShapeError{Reason: "ledger response is not a JSON object", Body: string(body)}
	}
	if !env.Success {
		return nil, &apierror.UnexpectedResponseShapeError{Reason: "ledger response did not declare success", Body: string(body)}
	}

	var entries []model.LedgerEntry
	if len(env.Data) == 0 || env.Data[0] != '[' {
		return nil, &apierror.UnexpectedResponseShapeError{Reason: "ledger data is not a list", Body: string(body)}
	}
	if err := json.Unmarshal(env.Data, &entries); err != nil {
		return nil, &apierror.UnexpectedResponseShapeError{Reason: "ledger data contains invalid entries", Body: string(body)}
	}

	logrus.WithFields(logrus.Fields{
		"date_from": dateFrom,
		"date_to":   dateTo,
		"account":   accountID,
		"entries":   len(entries),
	}).Debug("fetched ledger entries")

	return entries, nil
}

// PostEntry creates an entry and returns the identifier the ledger assigned.
func (c *Client) PostEntry(ctx context.Context, entry model.NewLedgerEntry) (model.PostResult, error) {
	body, err := request.Send(ctx, http.MethodPost, c.baseURL, entry, request.Options{
		Operation: "post ledger entry",
		Timeout:   c.timeout,
		Headers:   map[string]string{apiKeyHeader: c.apiKey},
	})
	if err != nil {
		return model.PostResult{}, err
	}

	result := model.PostResult{}
	if json.Valid(body) {
		result.Raw = json.RawMessage(body)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(body, &decoded); err == nil {
		result.ID = ExtractID(decoded)
		if result.ID == nil {
			if data, ok := decoded["data"].(map[string]interface{}); ok {
				result.ID = ExtractID(data)
			}
		}
	}

	if result.ID == nil {
		logrus.WithField("body", string(body)).Warn("ledger accepted entry but returned no identifier")
	}
	return result, nil
}

// ExtractID returns the first identifier found under "id", "_id" or "uuid",
// in that order. Numeric identifiers are returned in their decimal form.
func ExtractID(obj map[string]interface{}) *string {
	for _, key := range []string{"id", "_id", "uuid"} {
		v, ok := obj[key]
		if !ok || v == nil {
			continue
		}
		s, err := cast.ToStringE(v)
		if err != nil || s == "" {
			continue
		}
		return ptr.String(s)
	}
	return nil
}
