// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/gorse-io/instances/base/log"
	"github.com/gorse-io/instances/cmd/version"
	"github.com/gorse-io/instances/config"
	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "instances",
		Short:         "Inspect, convert and merge tabular datasets in CSV and ARFF format.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// setup logger
			debug, _ := cmd.Flags().GetBool("debug")
			log.SetLogger(cmd.Flags(), debug)
		},
	}
	log.AddFlags(rootCommand.PersistentFlags())
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	rootCommand.PersistentFlags().Bool("quiet", false, "hide progress bars")
	rootCommand.PersistentFlags().StringP("config", "c", "", "configuration file path")
	rootCommand.PersistentFlags().String("sep", "", "field separator of CSV files (default from config)")
	rootCommand.PersistentFlags().StringSlice("nominal", nil, "columns of CSV files to load as nominal (default from config)")
	rootCommand.AddCommand(
		newSummaryCommand(),
		newStatsCommand(),
		newConvertCommand(),
		newMergeCommand(),
		newVersionCommand(),
	)
	return rootCommand
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version of instances",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), version.BuildInfo())
		},
	}
}

// loadConfig loads the configuration file and applies command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	conf, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, errors.Annotatef(err, "failed to load config %s", configPath)
	}
	if cmd.Flags().Changed("sep") {
		conf.Export.Separator, _ = cmd.Flags().GetString("sep")
	}
	if cmd.Flags().Changed("format") {
		conf.Export.Format, _ = cmd.Flags().GetString("format")
	}
	if err = conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	log.Logger().Debug("load config",
		zap.String("config", configPath),
		zap.String("format", conf.Export.Format),
		zap.String("separator", conf.Export.Separator),
		zap.String("storage", conf.Storage.Type))
	return conf, nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
