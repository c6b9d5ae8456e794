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
	"github.com/juju/errors"
	"gonum.org/v1/gonum/mat"
)

// DenseMatrixBuilder turns a rectangular row-major array into a matrix value.
type DenseMatrixBuilder interface {
	Build(rows, cols int, data [][]float64) any
}

// GonumBuilder builds *mat.Dense matrices.
type GonumBuilder struct{}

func (GonumBuilder) Build(rows, cols int, data [][]float64) any {
	if rows == 0 || cols == 0 {
		// mat.NewDense panics on zero dimensions
		return &mat.Dense{}
	}
	flat := make([]float64, 0, rows*cols)
	for _, row := range data {
		flat = append(flat, row...)
	}
	return mat.NewDense(rows, cols, flat)
}

// ToMatrix hands the rows of an all-numeric dataset to builder and returns its result unchanged.
func (d *Dataset) ToMatrix(builder DenseMatrixBuilder) (any, error) {
	for _, c := range d.columns {
		if !c.IsNumeric() {
			return nil, errors.Trace(&NotNumericError{Column: c.Name})
		}
	}
	if err := d.checkComplete(); err != nil {
		return nil, errors.Trace(err)
	}
	data := make([][]float64, len(d.rows))
	for i, row := range d.rows {
		data[i] = make([]float64, len(d.columns))
		for j := range d.columns {
			data[i][j] = row[j].(float64)
		}
	}
	return builder.Build(len(d.rows), len(d.columns), data), nil
}

// ToDense converts an all-numeric dataset to a gonum matrix.
func (d *Dataset) ToDense() (*mat.Dense, error) {
	m, err := d.ToMatrix(GonumBuilder{})
	if err != nil {
		return nil, errors.Trace(err)
	}
	return m.(*mat.Dense), nil
}
