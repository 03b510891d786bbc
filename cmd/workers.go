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

package main

import (
	"context"
	"errors"
	"log"

	"github.com/contaplus/cxc"
	"github.com/contaplus/cxc/config"
	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errNoRedis = errors.New("redis.dns must be configured to run workers")

func initializeWorkerServer(conf *config.Configuration) (*asynq.Server, error) {
	if conf.Redis.Dns == "" {
		return nil, errNoRedis
	}

	redisOption, err := cxc.WebhookRedisOpt(conf)
	if err != nil {
		return nil, err
	}

	return asynq.NewServer(redisOption, asynq.Config{
		Concurrency: 2,
		Queues:      map[string]int{conf.Queue.WebhookQueue: 1},
		Logger:      logrus.StandardLogger(),
	}), nil
}

func initializeTaskHandlers(conf *config.Configuration, mux *asynq.ServeMux) {
	mux.HandleFunc(conf.Queue.WebhookQueue, cxc.ProcessWebhook)
}

// workerCommands starts the webhook delivery worker.
func workerCommands(app *cxcInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workers",
		Short: "start the webhook delivery workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			shutdown, err := initializeObservability(ctx, app.cnf)
			if err != nil {
				log.Fatal(err)
			}
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error during shutdown: %v", err)
				}
			}()

			srv, err := initializeWorkerServer(app.cnf)
			if err != nil {
				log.Fatal(err)
			}

			mux := asynq.NewServeMux()
			initializeTaskHandlers(app.cnf, mux)

			if err := srv.Run(mux); err != nil {
				log.Fatalf("could not run server: %v", err)
			}
		},
	}

	return cmd
}
