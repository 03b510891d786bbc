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

package notification

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/contaplus/cxc/config"
	"github.com/contaplus/cxc/internal/request"
	"github.com/sirupsen/logrus"
)

// WebhookSender delivers a named event to the configured webhook.
type WebhookSender func(event string, payload interface{}) error

var (
	senderMu      sync.RWMutex
	webhookSender WebhookSender
)

// RegisterWebhookSender installs the function used by NotifyEvent. The root
// package registers its queue-backed sender at start-up; this indirection
// keeps internal packages from importing it.
func RegisterWebhookSender(sender WebhookSender) {
	senderMu.Lock()
	defer senderMu.Unlock()
	webhookSender = sender
}

// NotifyEvent forwards event to the registered webhook sender, if any.
func NotifyEvent(event string, payload interface{}) error {
	senderMu.RLock()
	sender := webhookSender
	senderMu.RUnlock()
	if sender == nil {
		return nil
	}
	return sender(event, payload)
}

type slackText struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

type slackBlock struct {
	Type   string      `json:"type"`
	Text   *slackText  `json:"text,omitempty"`
	Fields []slackText `json:"fields,omitempty"`
}

type slackMessage struct {
	Blocks []slackBlock `json:"blocks"`
}

func buildSlackMessage(projectName string, err error, at time.Time) slackMessage {
	return slackMessage{Blocks: []slackBlock{
		{Type: "header", Text: &slackText{Type: "plain_text", Text: fmt.Sprintf("Error From %s 🐞", projectName), Emoji: true}},
		{Type: "section", Fields: []slackText{{Type: "mrkdwn", Text: "*Error:*\n" + err.Error()}}},
		{Type: "section", Fields: []slackText{{Type: "mrkdwn", Text: "*Time:*\n" + at.Format(time.RFC822)}}},
	}}
}

// SlackNotification posts err to the configured Slack webhook.
func SlackNotification(err error) {
	conf, cerr := config.Fetch()
	if cerr != nil {
		log.Println(cerr)
		return
	}

	msg := buildSlackMessage(conf.ProjectName, err, time.Now())
	_, serr := request.Send(context.Background(), http.MethodPost, conf.Notification.Slack.WebhookUrl, msg, request.Options{
		Operation: "slack notification",
		Timeout:   10 * time.Second,
	})
	if serr != nil {
		log.Println(serr)
	}
}

// NotifyError logs systemError and, when Slack is configured, reports it
// there without blocking the caller.
func NotifyError(systemError error) {
	go func(systemError error) {
		logrus.Error(systemError)

		conf, err := config.Fetch()
		if err != nil {
			log.Println(err)
			return
		}

		if conf.Notification.Slack.WebhookUrl != "" {
			SlackNotification(systemError)
		}
	}(systemError)
}
