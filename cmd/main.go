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
	"os"

	"github.com/jerry-enebeli/txflow/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Txflow represents the CLI application, encapsulating the root Cobra command.
type Txflow struct {
	cmd *cobra.Command
}

// txflowInstance holds the configuration shared by the subcommands after
// the pre-run hook has loaded it.
type txflowInstance struct {
	cnf *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration before any subcommand executes and applies
// the configured log level. Logs go to stderr so stdout stays a clean report.
func preRun(app *txflowInstance) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig("txflow.json")
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		level, err := logrus.ParseLevel(cnf.LogLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		logrus.SetOutput(os.Stderr)

		app.cnf = cnf
		return nil
	}
}

// NewCLI creates the command-line interface for the txflow application.
func NewCLI() *Txflow {
	b := &txflowInstance{}

	var rootCmd = &cobra.Command{
		Use:   "txflow",
		Short: "CSV transaction clearing engine",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentPreRunE = preRun(b)

	rootCmd.AddCommand(processCommands(b))

	return &Txflow{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur during execution.
func (w Txflow) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
