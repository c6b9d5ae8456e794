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

import "fmt"

// InvalidColumnSpecError is returned when a column declaration is malformed.
type InvalidColumnSpecError struct {
	Column string
	Reason string
}

func (e *InvalidColumnSpecError) Error() string {
	return fmt.Sprintf("invalid column `%s`: %s", e.Column, e.Reason)
}

// RowArityError is returned when a row has a different number of values than the dataset has columns.
type RowArityError struct {
	Expected int
	Actual   int
}

func (e *RowArityError) Error() string {
	return fmt.Sprintf("row has %d values, but dataset has %d columns", e.Actual, e.Expected)
}

// TypeMismatchError is returned when a value doesn't conform to its column.
type TypeMismatchError struct {
	Column string
	Value  any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("value %#v doesn't match column `%s`", e.Value, e.Column)
}

type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column `%s`", e.Column)
}

// NotNumericError is returned when a numeric-only operation meets a nominal column.
type NotNumericError struct {
	Column string
}

func (e *NotNumericError) Error() string {
	return fmt.Sprintf("column `%s` is not numeric", e.Column)
}

type EmptyDatasetError struct {
	Dataset string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("dataset `%s` has no rows", e.Dataset)
}

type RowCountMismatchError struct {
	Left  int
	Right int
}

func (e *RowCountMismatchError) Error() string {
	return fmt.Sprintf("row counts differ: %d != %d", e.Left, e.Right)
}

type DuplicateColumnError struct {
	Column string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("column `%s` exists in both datasets", e.Column)
}

// IncompleteRowError is returned when a row was inserted before some column was appended
// and an operation needs a value for every cell.
type IncompleteRowError struct {
	Row     int
	Columns int
}

func (e *IncompleteRowError) Error() string {
	return fmt.Sprintf("row %d has fewer than %d values", e.Row, e.Columns)
}
