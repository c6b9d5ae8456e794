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

package dataset

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/juju/errors"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatARFF Format = "arff"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatCSV, FormatARFF:
		return f, nil
	default:
		return "", errors.NotSupportedf("format %s", s)
	}
}

// FormatOf guesses the format of a file from its extension.
func FormatOf(path string) (Format, bool) {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	return f, err == nil
}

// TableWriter serializes a dataset.
type TableWriter interface {
	Write(w io.Writer, d *Dataset) error
}

func NewTableWriter(format Format) (TableWriter, error) {
	switch format {
	case FormatCSV:
		return CSVWriter{Separator: ","}, nil
	case FormatARFF:
		return ARFFWriter{}, nil
	default:
		return nil, errors.NotSupportedf("format %s", format)
	}
}

// Creator opens named destinations for writing. The done channel is closed once the data is persisted.
type Creator interface {
	Create(name string) (io.WriteCloser, chan struct{}, error)
}

// Write serializes the dataset to w.
func (d *Dataset) Write(format Format, w io.Writer) error {
	writer, err := NewTableWriter(format)
	if err != nil {
		return errors.Trace(err)
	}
	return d.WriteWith(writer, w)
}

// WriteWith serializes the dataset to w using writer.
func (d *Dataset) WriteWith(writer TableWriter, w io.Writer) error {
	if err := d.checkComplete(); err != nil {
		return errors.Trace(err)
	}
	buf := bufio.NewWriter(w)
	if err := writer.Write(buf, d); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(buf.Flush())
}

// Export writes the dataset to a local file.
func (d *Dataset) Export(format Format, path string) error {
	writer, err := NewTableWriter(format)
	if err != nil {
		return errors.Trace(err)
	}
	if err = d.checkComplete(); err != nil {
		return errors.Trace(err)
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Trace(err)
	}
	if err = d.WriteWith(writer, file); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return errors.Trace(err)
	}
	return errors.Trace(file.Close())
}

// ExportTo writes the dataset to a named object of store and waits until it is persisted.
func (d *Dataset) ExportTo(store Creator, format Format, name string) error {
	writer, err := NewTableWriter(format)
	if err != nil {
		return errors.Trace(err)
	}
	return d.ExportToWith(store, writer, name)
}

func (d *Dataset) ExportToWith(store Creator, writer TableWriter, name string) error {
	if err := d.checkComplete(); err != nil {
		return errors.Trace(err)
	}
	w, done, err := store.Create(name)
	if err != nil {
		return errors.Trace(err)
	}
	err = d.WriteWith(writer, w)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	<-done
	return errors.Trace(err)
}
