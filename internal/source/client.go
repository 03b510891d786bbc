// Package source reads raw transaction records from the transaction backend.
package source

import (
	"context"
	"net/http"
	"time"

	"github.com/contaplus/cxc/config"
	"github.com/contaplus/cxc/internal/request"
	"github.com/sirupsen/logrus"
)

type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{baseURL: baseURL, apiKey: apiKey, timeout: timeout}
}

func NewClientFromConfig(cnf config.TransactionSourceConfig) *Client {
	return NewClient(cnf.BaseURL, cnf.APIKey, time.Duration(cnf.TimeoutSeconds)*time.Second)
}

// FetchAll returns the raw records exposed by the backend. The records are
// not interpreted here; see UnwrapList for the accepted envelopes.
func (c *Client) FetchAll(ctx context.Context) ([]interface{}, error) {
	if c.baseURL == "" {
		return []interface{}{}, nil
	}

	body, err := request.Send(ctx, http.MethodGet, c.baseURL, nil, request.Options{
		Operation: "fetch transactions",
		Timeout:   c.timeout,
		Headers:   map[string]string{"X-API-Key": c.apiKey},
	})
	if err != nil {
		return []interface{}{}, err
	}

	records, err := UnwrapList(body)
	logrus.WithFields(logrus.Fields{
		"url":     c.baseURL,
		"records": len(records),
	}).Debug("fetched transactions")
	return records, err
}
