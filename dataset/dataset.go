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

// Package dataset implements an in-memory table of typed columns and rows.
//
// A Dataset is not safe for concurrent use. Callers must serialize mutations,
// and must not mutate a dataset while another goroutine reads or merges it.
package dataset

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gorse-io/instances/base/copier"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

type Dataset struct {
	name    string
	columns []Column
	index   map[string]int
	rows    [][]any
}

// New creates an empty dataset with columns in the given order.
func New(name string, columns ...Column) (*Dataset, error) {
	d := &Dataset{
		name:    name,
		columns: make([]Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	names := mapset.NewThreadUnsafeSet[string]()
	for i, c := range columns {
		if !names.Add(c.Name) {
			return nil, errors.Trace(&InvalidColumnSpecError{Column: c.Name, Reason: "duplicate column name"})
		}
		built, err := c.build(i)
		if err != nil {
			return nil, errors.Trace(err)
		}
		d.columns = append(d.columns, built)
		d.index[built.Name] = i
	}
	return d, nil
}

// FromRows creates a dataset and fills it with rows. Nothing is returned if any row is invalid.
func FromRows(name string, columns []Column, rows [][]any) (*Dataset, error) {
	d, err := New(name, columns...)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if err = d.AddRows(rows); err != nil {
		return nil, errors.Trace(err)
	}
	return d, nil
}

func (d *Dataset) Name() string {
	return d.name
}

func (d *Dataset) NumRows() int {
	return len(d.rows)
}

func (d *Dataset) NumColumns() int {
	return len(d.columns)
}

// Columns returns copies of the column declarations in canonical order.
func (d *Dataset) Columns() []Column {
	return lo.Map(d.columns, func(c Column, _ int) Column {
		return c.export()
	})
}

func (d *Dataset) Column(name string) (Column, error) {
	i, ok := d.index[name]
	if !ok {
		return Column{}, errors.Trace(&UnknownColumnError{Column: name})
	}
	return d.columns[i].export(), nil
}

func (d *Dataset) ColumnIndex(name string) (int, error) {
	i, ok := d.index[name]
	if !ok {
		return -1, errors.Trace(&UnknownColumnError{Column: name})
	}
	return i, nil
}

// AddNumericColumn appends a numeric column. Existing rows are not backfilled.
func (d *Dataset) AddNumericColumn(name string) error {
	return d.addColumn(NumericColumn(name))
}

// AddNominalColumn appends a nominal column with a fixed domain. Existing rows are not backfilled.
func (d *Dataset) AddNominalColumn(name string, values ...string) error {
	return d.addColumn(NominalColumn(name, values...))
}

func (d *Dataset) addColumn(c Column) error {
	if _, exist := d.index[c.Name]; exist {
		return errors.Trace(&InvalidColumnSpecError{Column: c.Name, Reason: "duplicate column name"})
	}
	built, err := c.build(len(d.columns))
	if err != nil {
		return errors.Trace(err)
	}
	d.columns = append(d.columns, built)
	d.index[built.Name] = built.index
	return nil
}

// AddRow validates values against the columns and appends a copy of them.
func (d *Dataset) AddRow(values ...any) error {
	row, err := d.convertRow(values)
	if err != nil {
		return errors.Trace(err)
	}
	d.rows = append(d.rows, row)
	return nil
}

// AddRows appends rows in order. Either every row is appended or none is.
func (d *Dataset) AddRows(rows [][]any) error {
	converted := make([][]any, 0, len(rows))
	for _, values := range rows {
		row, err := d.convertRow(values)
		if err != nil {
			return errors.Trace(err)
		}
		converted = append(converted, row)
	}
	d.rows = append(d.rows, converted...)
	return nil
}

func (d *Dataset) convertRow(values []any) ([]any, error) {
	if len(values) != len(d.columns) {
		return nil, &RowArityError{Expected: len(d.columns), Actual: len(values)}
	}
	row := make([]any, len(values))
	for i, c := range d.columns {
		v, ok := c.convert(values[i])
		if !ok {
			return nil, &TypeMismatchError{Column: c.Name, Value: values[i]}
		}
		row[i] = v
	}
	return row, nil
}

// ColumnValues returns the values of a column in row order. Rows that predate the column yield nil.
func (d *Dataset) ColumnValues(name string) ([]any, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, errors.Trace(&UnknownColumnError{Column: name})
	}
	return lo.Map(d.rows, func(row []any, _ int) any {
		return cell(row, i)
	}), nil
}

// ToRowMajor returns a snapshot with one entry per row.
func (d *Dataset) ToRowMajor() [][]any {
	return lo.Map(d.rows, func(row []any, _ int) []any {
		snapshot := make([]any, len(d.columns))
		copy(snapshot, row)
		return snapshot
	})
}

// ToColumnMajor returns a snapshot with one entry per column, the transpose of ToRowMajor.
func (d *Dataset) ToColumnMajor() [][]any {
	columns := make([][]any, len(d.columns))
	for j := range d.columns {
		columns[j] = make([]any, len(d.rows))
		for i, row := range d.rows {
			columns[j][i] = cell(row, j)
		}
	}
	return columns
}

// MergeWith concatenates two datasets column-wise into a new dataset. Neither input is modified.
func (d *Dataset) MergeWith(other *Dataset) (*Dataset, error) {
	if len(d.rows) != len(other.rows) {
		return nil, errors.Trace(&RowCountMismatchError{Left: len(d.rows), Right: len(other.rows)})
	}
	names := mapset.NewThreadUnsafeSet(lo.Map(d.columns, func(c Column, _ int) string { return c.Name })...)
	for _, c := range other.columns {
		if names.Contains(c.Name) {
			return nil, errors.Trace(&DuplicateColumnError{Column: c.Name})
		}
	}
	if err := d.checkComplete(); err != nil {
		return nil, errors.Trace(err)
	}
	if err := other.checkComplete(); err != nil {
		return nil, errors.Trace(err)
	}
	merged := &Dataset{
		name:    d.name + "_" + other.name,
		columns: make([]Column, 0, len(d.columns)+len(other.columns)),
		index:   make(map[string]int, len(d.columns)+len(other.columns)),
		rows:    make([][]any, len(d.rows)),
	}
	for _, c := range append(append([]Column(nil), d.columns...), other.columns...) {
		c = c.export()
		c.index = len(merged.columns)
		merged.columns = append(merged.columns, c)
		merged.index[c.Name] = c.index
	}
	for i := range d.rows {
		row := make([]any, 0, len(merged.columns))
		row = append(row, d.rows[i]...)
		row = append(row, other.rows[i]...)
		merged.rows[i] = row
	}
	return merged, nil
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() (*Dataset, error) {
	clone := &Dataset{
		name:    d.name,
		columns: lo.Map(d.columns, func(c Column, _ int) Column { return c.export() }),
		index:   make(map[string]int, len(d.index)),
	}
	for name, i := range d.index {
		clone.index[name] = i
	}
	if len(d.rows) > 0 {
		if err := copier.Copy(&clone.rows, d.rows); err != nil {
			return nil, errors.Trace(err)
		}
	}
	return clone, nil
}

// checkComplete returns an error for the first row that has fewer values than columns.
func (d *Dataset) checkComplete() error {
	for i, row := range d.rows {
		if len(row) < len(d.columns) {
			return &IncompleteRowError{Row: i, Columns: len(d.columns)}
		}
	}
	return nil
}

func cell(row []any, i int) any {
	if i < len(row) {
		return row[i]
	}
	return nil
}
