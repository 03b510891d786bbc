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
	"fmt"
	"log"
	"os"

	"github.com/contaplus/cxc"
	"github.com/contaplus/cxc/config"
	"github.com/contaplus/cxc/database"
	"github.com/contaplus/cxc/internal/notification"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CLI wraps the root cobra command.
type CLI struct {
	cmd *cobra.Command
}

// cxcInstance is shared by every subcommand once preRun has loaded config.
type cxcInstance struct {
	cxc *cxc.Cxc
	cnf *config.Configuration
}

func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration file and builds the service before any
// subcommand runs.
func preRun(app *cxcInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := config.InitConfig(*configFile); err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		service, err := setupCxc(cnf)
		if err != nil {
			notification.NotifyError(err)
			log.Fatal(err)
		}

		app.cxc = service
		app.cnf = cnf
		return nil
	}
}

func setupCxc(cfg *config.Configuration) (*cxc.Cxc, error) {
	db, err := database.NewDataSource(cfg)
	if err != nil {
		return nil, fmt.Errorf("error getting datasource: %v", err)
	}

	service, err := cxc.NewCxc(db)
	if err != nil {
		return nil, fmt.Errorf("error creating cxc service: %v", err)
	}
	return service, nil
}

func NewCLI() *CLI {
	var configFile string
	app := &cxcInstance{}

	rootCmd := &cobra.Command{
		Use:   "cxc",
		Short: "Accounts receivable reconciliation service",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./cxc.json", "Configuration file")
	rootCmd.PersistentPreRunE = preRun(app, &configFile)

	rootCmd.AddCommand(serverCommands(app))
	rootCmd.AddCommand(workerCommands(app))
	rootCmd.AddCommand(reconcileCommands(app))
	rootCmd.AddCommand(postCommands(app))
	rootCmd.AddCommand(configCommands())

	return &CLI{cmd: rootCmd}
}

func (c CLI) executeCLI() {
	if err := c.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
