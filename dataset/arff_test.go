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
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestARFFWriter(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, newLabelDataset(t).Write(FormatARFF, &buf))
	assert.Equal(t, "@relation labels\n\n"+
		"@attribute id numeric\n"+
		"@attribute label {a,b}\n\n"+
		"@data\n"+
		"1,a\n"+
		"2,b\n", buf.String())
}

func TestQuoteARFF(t *testing.T) {
	assert.Equal(t, "abc", quoteARFF("abc"))
	assert.Equal(t, "''", quoteARFF(""))
	assert.Equal(t, "'?'", quoteARFF("?"))
	assert.Equal(t, "'new york'", quoteARFF("new york"))
	assert.Equal(t, "'a,b'", quoteARFF("a,b"))
	assert.Equal(t, `'it\'s'`, quoteARFF("it's"))
	assert.Equal(t, `'a\nb'`, quoteARFF("a\nb"))
	assert.Equal(t, `'{x}'`, quoteARFF("{x}"))
}

func TestSplitARFF(t *testing.T) {
	fields, err := splitARFF("1, 'new york' ,\"a,b\",'it\\'s'")
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "new york", "a,b", "it's"}, fields)
	_, err = splitARFF("'open")
	assert.True(t, errors.IsNotValid(err))
}

func TestARFF_RoundTrip(t *testing.T) {
	d, err := FromRows("weather data",
		[]Column{
			NominalColumn("outlook", "sunny", "over cast", "it's raining"),
			NumericColumn("temperature"),
			NominalColumn("play?", "yes", "no"),
		},
		[][]any{{"sunny", 85, "no"}, {"over cast", 64.5, "yes"}, {"it's raining", -1e-3, "yes"}})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, d.Write(FormatARFF, &buf))
	loaded, err := ReadARFF(&buf)
	assert.NoError(t, err)
	assert.Equal(t, "weather data", loaded.Name())
	assert.Equal(t, d.Columns(), loaded.Columns())
	assert.Equal(t, d.ToRowMajor(), loaded.ToRowMajor())
}

func TestReadARFF(t *testing.T) {
	text := `% comment
@RELATION iris

@ATTRIBUTE sepallength REAL
@ATTRIBUTE petalwidth  integer
@ATTRIBUTE class {Iris-setosa, Iris-versicolor}

@DATA
5.1,1,Iris-setosa
% another comment
4.9, 2, Iris-versicolor
`
	d, err := ReadARFF(strings.NewReader(text))
	assert.NoError(t, err)
	assert.Equal(t, "iris", d.Name())
	assert.Equal(t, [][]any{{5.1, 1.0, "Iris-setosa"}, {4.9, 2.0, "Iris-versicolor"}}, d.ToRowMajor())
	c, err := d.Column("class")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Iris-setosa", "Iris-versicolor"}, c.Values)
}

func TestReadARFF_Errors(t *testing.T) {
	header := "@relation r\n@attribute a numeric\n@attribute b {x,y}\n@data\n"
	var mismatch *TypeMismatchError
	_, err := ReadARFF(strings.NewReader(header + "1,z\n"))
	assert.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "b", mismatch.Column)
	_, err = ReadARFF(strings.NewReader(header + "?,x\n"))
	assert.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "a", mismatch.Column)
	var arity *RowArityError
	_, err = ReadARFF(strings.NewReader(header + "1\n"))
	assert.ErrorAs(t, err, &arity)
	_, err = ReadARFF(strings.NewReader(header + "{0 1}\n"))
	assert.True(t, errors.IsNotSupported(err))
	_, err = ReadARFF(strings.NewReader("@relation r\n@attribute s string\n@data\n"))
	assert.True(t, errors.IsNotSupported(err))
	_, err = ReadARFF(strings.NewReader("@relation r\n@attribute a numeric\n"))
	assert.True(t, errors.IsNotValid(err))
	_, err = ReadARFF(strings.NewReader("@relation r\n@unknown\n@data\n"))
	assert.True(t, errors.IsNotValid(err))
	var spec *InvalidColumnSpecError
	_, err = ReadARFF(strings.NewReader("@relation r\n@attribute a {x,x}\n@data\n"))
	assert.ErrorAs(t, err, &spec)
}

func TestReadARFF_LargeDomain(t *testing.T) {
	values := make([]string, 20000)
	for i := range values {
		values[i] = "v" + strconv.Itoa(i)
	}
	text := "@relation r\n@attribute c {" + strings.Join(values, ",") + "}\n@data\nv19999\n"
	d, err := ReadARFF(strings.NewReader(text))
	assert.NoError(t, err)
	c, err := d.Column("c")
	assert.NoError(t, err)
	assert.Equal(t, values, c.Values)
	assert.Equal(t, [][]any{{"v19999"}}, d.ToRowMajor())
}
