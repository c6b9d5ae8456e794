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
	"math"

	"github.com/juju/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of a numeric column.
func (d *Dataset) Mean(name string) (float64, error) {
	x, err := d.numericValues(name)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return stat.Mean(x, nil), nil
}

// Variance returns the population variance of a numeric column.
//
//	Var(x) = Σ(x_i - mean)² / n
func (d *Dataset) Variance(name string) (float64, error) {
	x, err := d.numericValues(name)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return stat.PopVariance(x, nil), nil
}

// StdDev returns the population standard deviation of a numeric column.
func (d *Dataset) StdDev(name string) (float64, error) {
	variance, err := d.Variance(name)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return math.Sqrt(variance), nil
}

func (d *Dataset) Min(name string) (float64, error) {
	x, err := d.numericValues(name)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return floats.Min(x), nil
}

func (d *Dataset) Max(name string) (float64, error) {
	x, err := d.numericValues(name)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return floats.Max(x), nil
}

// numericValues collects the values of a numeric column. It fails for unknown or nominal
// columns, for an empty dataset and for rows that predate the column.
func (d *Dataset) numericValues(name string) ([]float64, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, &UnknownColumnError{Column: name}
	}
	switch d.columns[i].Type {
	case Numeric:
	case Nominal:
		return nil, &NotNumericError{Column: name}
	}
	if len(d.rows) == 0 {
		return nil, &EmptyDatasetError{Dataset: d.name}
	}
	x := make([]float64, len(d.rows))
	for j, row := range d.rows {
		if i >= len(row) {
			return nil, &IncompleteRowError{Row: j, Columns: len(d.columns)}
		}
		x[j] = row[i].(float64)
	}
	return x, nil
}
