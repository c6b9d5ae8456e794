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
	"fmt"
	"io"
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gorse-io/instances/base"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"modernc.org/strutil"
)

// CSVWriter writes a header line of column names followed by one line per row.
type CSVWriter struct {
	Separator string
}

func (c CSVWriter) Write(w io.Writer, d *Dataset) error {
	sep := c.Separator
	if sep == "" {
		sep = ","
	}
	header := lo.Map(d.columns, func(col Column, _ int) string { return col.Name })
	if _, err := fmt.Fprintln(w, base.JoinFields(header, sep)); err != nil {
		return errors.Trace(err)
	}
	for _, row := range d.rows {
		fields := lo.Map(row, func(v any, _ int) string { return formatValue(v) })
		if _, err := fmt.Fprintln(w, base.JoinFields(fields, sep)); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

func formatValue(v any) string {
	switch typed := v.(type) {
	case float64:
		return strconv.FormatFloat(typed, 'g', -1, 64)
	case string:
		return typed
	default:
		return fmt.Sprint(v)
	}
}

// ReadCSV loads a dataset from a csv file with a header line. Columns listed in nominal become
// nominal columns whose domain is their distinct values in order of first appearance. Every
// other column must contain numbers.
func ReadCSV(r io.Reader, name, sep string, nominal []string) (*Dataset, error) {
	if sep == "" {
		sep = ","
	}
	var (
		header  []string
		records [][]string
		readErr error
	)
	pool := strutil.NewPool()
	err := base.ReadLines(base.NewScanner(r), sep, func(i int, fields []string) bool {
		if i == 0 {
			header = fields
			return true
		}
		if len(header) > 1 && len(fields) == 1 && fields[0] == "" {
			// skip blank lines, which are empty values in a single column file
			return true
		}
		if len(fields) != len(header) {
			readErr = errors.Annotatef(&RowArityError{Expected: len(header), Actual: len(fields)}, "line %d", i+1)
			return false
		}
		records = append(records, lo.Map(fields, func(s string, _ int) string { return pool.Align(s) }))
		return true
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	if readErr != nil {
		return nil, readErr
	}
	if header == nil {
		return nil, errors.NotValidf("csv without header")
	}

	// declare columns
	isNominal := mapset.NewThreadUnsafeSet(nominal...)
	for _, n := range nominal {
		if !lo.Contains(header, n) {
			return nil, errors.Trace(&UnknownColumnError{Column: n})
		}
	}
	columns := make([]Column, len(header))
	for j, h := range header {
		if isNominal.Contains(h) {
			columns[j] = NominalColumn(h, lo.Uniq(lo.Map(records, func(record []string, _ int) string {
				return record[j]
			}))...)
		} else {
			columns[j] = NumericColumn(h)
		}
	}
	d, err := New(name, columns...)
	if err != nil {
		return nil, errors.Trace(err)
	}

	// parse rows
	rows := make([][]any, len(records))
	for i, record := range records {
		rows[i] = make([]any, len(record))
		for j, field := range record {
			if columns[j].IsNominal() {
				rows[i][j] = field
				continue
			}
			f, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Annotatef(&TypeMismatchError{Column: header[j], Value: field}, "line %d", i+2)
			}
			rows[i][j] = f
		}
	}
	if err = d.AddRows(rows); err != nil {
		return nil, errors.Trace(err)
	}
	return d, nil
}
