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
	"strings"
)

type ColumnType int

const (
	Numeric ColumnType = iota
	Nominal
)

func (t ColumnType) String() string {
	switch t {
	case Numeric:
		return "Numeric"
	case Nominal:
		return "Nominal"
	default:
		return "Unknown"
	}
}

// Column is a named, typed slot of a dataset. Values is the fixed domain of a nominal column
// and is empty for a numeric column.
type Column struct {
	Name   string
	Type   ColumnType
	Values []string

	index int
	dict  *ValueDict
}

func NumericColumn(name string) Column {
	return Column{Name: name, Type: Numeric}
}

func NominalColumn(name string, values ...string) Column {
	return Column{Name: name, Type: Nominal, Values: values}
}

// Index returns the position of the column in the dataset it was read from.
func (c Column) Index() int {
	return c.index
}

func (c Column) IsNumeric() bool {
	return c.Type == Numeric
}

func (c Column) IsNominal() bool {
	return c.Type == Nominal
}

// build validates a declaration and returns the owned copy stored by a dataset.
func (c Column) build(index int) (Column, error) {
	if strings.TrimSpace(c.Name) == "" {
		return Column{}, &InvalidColumnSpecError{Column: c.Name, Reason: "name cannot be empty"}
	}
	switch c.Type {
	case Numeric:
		return Column{Name: c.Name, Type: Numeric, index: index}, nil
	case Nominal:
		if len(c.Values) == 0 {
			return Column{}, &InvalidColumnSpecError{Column: c.Name, Reason: "nominal values cannot be empty"}
		}
		dict, dup, ok := NewValueDict(c.Values)
		if !ok {
			return Column{}, &InvalidColumnSpecError{Column: c.Name, Reason: "duplicate nominal value `" + dup + "`"}
		}
		return Column{Name: c.Name, Type: Nominal, Values: dict.Values(), index: index, dict: dict}, nil
	default:
		return Column{}, &InvalidColumnSpecError{Column: c.Name, Reason: "unknown column type"}
	}
}

// export returns a copy that shares nothing mutable with the dataset.
func (c Column) export() Column {
	c.Values = append([]string(nil), c.Values...)
	return c
}

// convert checks a value against the column and returns its stored form:
// float64 for numeric columns and string for nominal columns.
func (c Column) convert(value any) (any, bool) {
	switch c.Type {
	case Numeric:
		f, ok := toFloat(value)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		return f, true
	case Nominal:
		s, ok := value.(string)
		if !ok {
			return nil, false
		}
		if _, exist := c.dict.Id(s); !exist {
			return nil, false
		}
		return s, true
	default:
		return nil, false
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
