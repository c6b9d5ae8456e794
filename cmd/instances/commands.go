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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorse-io/instances/base/log"
	"github.com/gorse-io/instances/config"
	"github.com/gorse-io/instances/dataset"
	"github.com/gorse-io/instances/storage/blob"
	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <file>",
		Short: "Print columns and the number of rows of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return errors.Trace(err)
			}
			d, err := readDataset(cmd, conf, args[0])
			if err != nil {
				return errors.Trace(err)
			}
			return d.Summary(cmd.OutOrStdout())
		},
	}
}

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file> [column...]",
		Short: "Print statistics of numeric columns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return errors.Trace(err)
			}
			d, err := readDataset(cmd, conf, args[0])
			if err != nil {
				return errors.Trace(err)
			}
			names := args[1:]
			if len(names) == 0 {
				names = lo.FilterMap(d.Columns(), func(c dataset.Column, _ int) (string, bool) {
					return c.Name, c.IsNumeric()
				})
			}
			return printStats(cmd.OutOrStdout(), d, names)
		},
	}
}

func printStats(w io.Writer, d *dataset.Dataset, names []string) error {
	stats := []func(string) (float64, error){d.Mean, d.Variance, d.StdDev, d.Min, d.Max}
	table := tablewriter.NewWriter(w)
	table.Header("Name", "Mean", "Variance", "StdDev", "Min", "Max")
	for _, name := range names {
		row := []string{name}
		for _, stat := range stats {
			value, err := stat(name)
			if err != nil {
				return errors.Trace(err)
			}
			row = append(row, strconv.FormatFloat(value, 'g', 6, 64))
		}
		if err := table.Append(row); err != nil {
			return errors.Trace(err)
		}
	}
	return errors.Trace(table.Render())
}

func newConvertCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a dataset to another format and write it to storage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return errors.Trace(err)
			}
			d, err := readDataset(cmd, conf, args[0])
			if err != nil {
				return errors.Trace(err)
			}
			return writeDataset(cmd, conf, d, args[1])
		},
	}
	command.Flags().String("format", "", "output format: csv or arff (default from the output extension)")
	return command
}

func newMergeCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "merge <left> <right> <output>",
		Short: "Merge the columns of two datasets with the same number of rows",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return errors.Trace(err)
			}
			left, err := readDataset(cmd, conf, args[0])
			if err != nil {
				return errors.Trace(err)
			}
			right, err := readDataset(cmd, conf, args[1])
			if err != nil {
				return errors.Trace(err)
			}
			merged, err := left.MergeWith(right)
			if err != nil {
				return errors.Trace(err)
			}
			return writeDataset(cmd, conf, merged, args[2])
		},
	}
	command.Flags().String("format", "", "output format: csv or arff (default from the output extension)")
	return command
}

// readDataset loads a local CSV or ARFF file, optionally gzip compressed.
func readDataset(cmd *cobra.Command, conf *config.Config, path string) (*dataset.Dataset, error) {
	plain := strings.TrimSuffix(path, ".gz")
	format, ok := dataset.FormatOf(plain)
	if !ok {
		return nil, errors.NotSupportedf("file %s", path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return nil, errors.Trace(err)
	}

	description := fmt.Sprintf("Loading %s", filepath.Base(path))
	var bar *progressbar.ProgressBar
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		bar = progressbar.DefaultBytesSilent(info.Size(), description)
	} else {
		bar = progressbar.DefaultBytes(info.Size(), description)
	}
	pbReader := progressbar.NewReader(file, bar)
	var r io.Reader = &pbReader
	if plain != path {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Trace(err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var d *dataset.Dataset
	switch format {
	case dataset.FormatCSV:
		nominal := conf.Import.Nominal
		if cmd.Flags().Changed("nominal") {
			nominal, _ = cmd.Flags().GetStringSlice("nominal")
		}
		name := strings.TrimSuffix(filepath.Base(plain), filepath.Ext(plain))
		d, err = dataset.ReadCSV(r, name, conf.Export.Separator, nominal)
	case dataset.FormatARFF:
		d, err = dataset.ReadARFF(r)
	}
	if err != nil {
		return nil, errors.Annotatef(err, "failed to load %s", path)
	}
	_ = bar.Finish()
	log.Logger().Info("load dataset",
		zap.String("path", path),
		zap.String("relation", d.Name()),
		zap.Int("n_rows", d.NumRows()),
		zap.Int("n_columns", d.NumColumns()))
	return d, nil
}

// writeDataset exports a dataset to the configured storage. The format comes from the --format flag, then the
// output extension, then the configuration.
func writeDataset(cmd *cobra.Command, conf *config.Config, d *dataset.Dataset, name string) error {
	formatName := conf.Export.Format
	if !cmd.Flags().Changed("format") {
		if format, ok := dataset.FormatOf(name); ok {
			formatName = string(format)
		}
	}
	format, err := dataset.ParseFormat(formatName)
	if err != nil {
		return errors.Trace(err)
	}
	var writer dataset.TableWriter = dataset.ARFFWriter{}
	if format == dataset.FormatCSV {
		writer = dataset.CSVWriter{Separator: conf.Export.Separator}
	}

	store, err := blob.Open(conf.Storage)
	if err != nil {
		return errors.Trace(err)
	}
	logStorage(conf.Storage)
	if err = d.ExportToWith(store, writer, name); err != nil {
		return errors.Annotatef(err, "failed to export %s", name)
	}
	log.Logger().Info("export dataset",
		zap.String("name", name),
		zap.String("format", string(format)),
		zap.String("storage", conf.Storage.Type),
		zap.Int("n_rows", d.NumRows()),
		zap.Int("n_columns", d.NumColumns()))
	return nil
}

func logStorage(cfg config.StorageConfig) {
	switch cfg.Type {
	case config.StorageS3:
		log.Logger().Debug("open storage", zap.String("type", cfg.Type),
			zap.String("endpoint", log.RedactURL(cfg.S3.Endpoint)),
			zap.String("bucket", cfg.S3.Bucket), zap.String("prefix", cfg.S3.Prefix))
	case config.StorageGCS:
		log.Logger().Debug("open storage", zap.String("type", cfg.Type),
			zap.String("bucket", cfg.GCS.Bucket), zap.String("prefix", cfg.GCS.Prefix))
	case config.StorageAzure:
		log.Logger().Debug("open storage", zap.String("type", cfg.Type),
			zap.String("connection_string", log.RedactConnectionString(cfg.Azure.ConnectionString)),
			zap.String("endpoint", log.RedactURL(cfg.Azure.Endpoint)),
			zap.String("container", cfg.Azure.Container), zap.String("prefix", cfg.Azure.Prefix))
	default:
		log.Logger().Debug("open storage", zap.String("type", cfg.Type), zap.String("dir", cfg.Dir))
	}
}
