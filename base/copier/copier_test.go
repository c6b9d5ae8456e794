// Copyright 2022 gorse Project Authors
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

package copier

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestPrimitives(t *testing.T) {
	var a = 1.5
	var b float64
	err := Copy(&b, a)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
	// not a pointer
	err = Copy(b, a)
	assert.True(t, errors.IsNotValid(err))
	// test type mismatch
	var c string
	err = Copy(&c, a)
	assert.True(t, errors.IsNotValid(err))
	// copy to interface
	var d any
	err = Copy(&d, a)
	assert.NoError(t, err)
	assert.Equal(t, a, d)
}

func TestRows(t *testing.T) {
	a := [][]any{{1.0, "red"}, {2.0, "blue"}, {3.0}}
	var b [][]any
	err := Copy(&b, a)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
	// test deep copy
	a[0][1] = "blue"
	a[2] = append(a[2], "red")
	assert.Equal(t, "red", b[0][1])
	assert.Len(t, b[2], 1)
	// overwrite existing rows
	c := [][]any{{10.0}}
	err = Copy(&c, b)
	assert.NoError(t, err)
	assert.Equal(t, b, c)
	c[0][0] = 100.0
	assert.Equal(t, 1.0, b[0][0])
}

func TestNil(t *testing.T) {
	var a [][]any
	b := [][]any{{1.0}}
	err := Copy(&b, a)
	assert.NoError(t, err)
	assert.Nil(t, b)
	// nil cell
	c := []any{nil, 1.0}
	var d []any
	err = Copy(&d, c)
	assert.NoError(t, err)
	assert.Equal(t, c, d)
}

func TestMap(t *testing.T) {
	a := map[string][]string{"color": {"red", "blue"}}
	var b map[string][]string
	err := Copy(&b, a)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
	a["color"][0] = "green"
	assert.Equal(t, "red", b["color"][0])
}

type column struct {
	Name   string
	Values []string
	index  int
}

func TestStruct(t *testing.T) {
	a := column{Name: "color", Values: []string{"red"}, index: 3}
	var b column
	err := Copy(&b, a)
	assert.NoError(t, err)
	assert.Equal(t, "color", b.Name)
	assert.Equal(t, []string{"red"}, b.Values)
	// unexported fields are skipped
	assert.Zero(t, b.index)
	// pointer
	var c *column
	err = Copy(&c, &a)
	assert.NoError(t, err)
	assert.Equal(t, a.Values, c.Values)
	a.Values[0] = "blue"
	assert.Equal(t, "red", c.Values[0])
}
