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
	"encoding/json"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/contaplus/cxc/config"
	"github.com/contaplus/cxc/model"
	"github.com/hibiken/asynq"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func webhookConfig(redisAddr string) *config.Configuration {
	cnf := testConfig()
	cnf.Redis.Dns = redisAddr
	cnf.Notification.Webhook.Url = "http://hooks.test/cxc"
	cnf.Notification.Webhook.Headers = map[string]string{"X-Signature": "s3cret"}
	return cnf
}

func TestSendWebhook(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	config.MockConfig(webhookConfig(mr.Addr()))

	err = SendWebhook(NewWebhook{Event: "cxc.posted", Payload: model.PostSummary{Succeeded: 2, Failed: 1}})
	require.NoError(t, err)
	assert.NotEmpty(t, mr.Keys())
}

func TestSendWebhookWithoutURLQueuesNothing(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cnf := webhookConfig(mr.Addr())
	cnf.Notification.Webhook.Url = ""
	config.MockConfig(cnf)

	require.NoError(t, SendWebhook(NewWebhook{Event: "cxc.posted"}))
	assert.Empty(t, mr.Keys())
}

func TestProcessWebhook(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	config.MockConfig(webhookConfig("localhost:6379"))

	var got NewWebhook
	httpmock.RegisterResponder(http.MethodPost, "http://hooks.test/cxc", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "s3cret", req.Header.Get("X-Signature"))
		require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
		return httpmock.NewStringResponse(200, `{}`), nil
	})

	payload, err := json.Marshal(NewWebhook{Event: "cxc.posted", Payload: map[string]int{"succeeded": 3}})
	require.NoError(t, err)

	err = ProcessWebhook(context.Background(), asynq.NewTask("cxc_webhooks", payload))
	require.NoError(t, err)
	assert.Equal(t, "cxc.posted", got.Event)
}

func TestProcessWebhookReturnsDeliveryError(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	config.MockConfig(webhookConfig("localhost:6379"))
	httpmock.RegisterResponder(http.MethodPost, "http://hooks.test/cxc", httpmock.NewStringResponder(502, `bad gateway`))

	payload, _ := json.Marshal(NewWebhook{Event: "cxc.posted"})
	assert.Error(t, ProcessWebhook(context.Background(), asynq.NewTask("cxc_webhooks", payload)))
}

func TestWebhookRedisOpt(t *testing.T) {
	cnf := testConfig()
	cnf.Redis.Dns = "redis://:pw@cache.internal:6380/2"

	opt, err := WebhookRedisOpt(cnf)
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", opt.Addr)
	assert.Equal(t, "pw", opt.Password)
	assert.Equal(t, 2, opt.DB)
}
