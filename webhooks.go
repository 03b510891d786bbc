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
	"time"

	"github.com/contaplus/cxc/config"
	"github.com/contaplus/cxc/internal/notification"
	redis_db "github.com/contaplus/cxc/internal/redis-db"
	"github.com/contaplus/cxc/internal/request"
	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
)

const webhookTimeout = 10 * time.Second

func init() {
	notification.RegisterWebhookSender(func(event string, payload interface{}) error {
		return SendWebhook(NewWebhook{Event: event, Payload: payload})
	})
}

// NewWebhook is the body delivered to the configured webhook URL.
type NewWebhook struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"data"`
}

// WebhookRedisOpt builds the asynq connection from the configured Redis address.
func WebhookRedisOpt(conf *config.Configuration) (asynq.RedisClientOpt, error) {
	opts, err := redis_db.ParseRedisURL(conf.Redis.Dns, conf.Redis.SkipTLSVerify)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}
	return asynq.RedisClientOpt{
		Addr:      opts.Addr,
		Username:  opts.Username,
		Password:  opts.Password,
		DB:        opts.DB,
		TLSConfig: opts.TLSConfig,
	}, nil
}

func processHTTP(ctx context.Context, conf *config.Configuration, data NewWebhook) error {
	_, err := request.Send(ctx, http.MethodPost, conf.Notification.Webhook.Url, data, request.Options{
		Operation: "webhook " + data.Event,
		Timeout:   webhookTimeout,
		Headers:   conf.Notification.Webhook.Headers,
	})
	if err != nil {
		return err
	}
	logrus.WithField("event", data.Event).Info("webhook notification sent")
	return nil
}

// SendWebhook queues a webhook delivery. Nothing is queued unless both a
// webhook URL and Redis are configured.
func SendWebhook(newWebhook NewWebhook) error {
	conf, err := config.Fetch()
	if err != nil {
		return err
	}
	if conf.Notification.Webhook.Url == "" || conf.Redis.Dns == "" {
		return nil
	}

	redisOpt, err := WebhookRedisOpt(conf)
	if err != nil {
		return err
	}
	client := asynq.NewClient(redisOpt)
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error(err)
		}
	}()

	payload, err := json.Marshal(newWebhook)
	if err != nil {
		return err
	}
	task := asynq.NewTask(conf.Queue.WebhookQueue, payload, asynq.Queue(conf.Queue.WebhookQueue))
	info, err := client.Enqueue(task)
	if err != nil {
		logrus.WithField("event", newWebhook.Event).Error(err)
		return err
	}
	logrus.WithFields(logrus.Fields{"event": newWebhook.Event, "task_id": info.ID}).Debug("webhook queued")
	return nil
}

// ProcessWebhook delivers a queued webhook. A delivery error is returned so
// asynq applies its own retry schedule.
func ProcessWebhook(ctx context.Context, task *asynq.Task) error {
	conf, err := config.Fetch()
	if err != nil {
		return err
	}
	if conf.Notification.Webhook.Url == "" {
		return nil
	}

	var payload NewWebhook
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logrus.Errorf("error unmarshaling webhook task payload: %v", err)
		return err
	}
	return processHTTP(ctx, conf, payload)
}
