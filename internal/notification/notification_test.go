package notification

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/contaplus/cxc/config"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterWebhookSender_CalledCorrectly(t *testing.T) {
	defer RegisterWebhookSender(nil)

	var capturedEvent string
	var capturedPayload interface{}

	RegisterWebhookSender(func(event string, payload interface{}) error {
		capturedEvent = event
		capturedPayload = payload
		return nil
	})

	testPayload := map[string]string{"key": "value"}
	err := NotifyEvent("cxc.posted", testPayload)

	assert.NoError(t, err)
	assert.Equal(t, "cxc.posted", capturedEvent)
	assert.Equal(t, testPayload, capturedPayload)
}

func TestRegisterWebhookSender_ReturnsError(t *testing.T) {
	defer RegisterWebhookSender(nil)

	expectedError := errors.New("webhook failed")
	RegisterWebhookSender(func(event string, payload interface{}) error {
		return expectedError
	})

	err := NotifyEvent("cxc.posted", nil)
	assert.Equal(t, expectedError, err)
}

func TestRegisterWebhookSender_ReplacesPrevious(t *testing.T) {
	defer RegisterWebhookSender(nil)

	callCount := 0
	RegisterWebhookSender(func(event string, payload interface{}) error {
		callCount = 1
		return nil
	})
	RegisterWebhookSender(func(event string, payload interface{}) error {
		callCount = 2
		return nil
	})

	_ = NotifyEvent("cxc.posted", nil)
	assert.Equal(t, 2, callCount)
}

func TestNotifyEvent_NoSender(t *testing.T) {
	RegisterWebhookSender(nil)
	assert.NoError(t, NotifyEvent("cxc.posted", nil))
}

func TestBuildSlackMessage(t *testing.T) {
	at := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	msg := buildSlackMessage("CxC Server", errors.New(`ledger said "no"`), at)

	b, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Contains(t, string(b), `Error From CxC Server`)
	assert.Contains(t, string(b), `ledger said \"no\"`)
	require.Len(t, msg.Blocks, 3)
	assert.Equal(t, "header", msg.Blocks[0].Type)
}

func TestSlackNotification(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	config.MockConfig(&config.Configuration{
		ProjectName:  "CxC Server",
		Notification: config.Notification{Slack: config.SlackWebhook{WebhookUrl: "http://slack.test/hook"}},
	})

	received := make(chan string, 1)
	httpmock.RegisterResponder("POST", "http://slack.test/hook",
		func(req *http.Request) (*http.Response, error) {
			b, _ := io.ReadAll(req.Body)
			received <- string(b)
			return httpmock.NewStringResponse(200, `ok`), nil
		})

	SlackNotification(errors.New("ledger unavailable"))

	select {
	case body := <-received:
		assert.Contains(t, body, "ledger unavailable")
	default:
		t.Fatal("expected slack webhook to be called")
	}
}
