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
	"strings"
	"unicode"

	"github.com/gorse-io/instances/base"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"modernc.org/strutil"
)

// ARFFWriter writes the attribute-relation file format:
//
//	@relation <name>
//
//	@attribute <name> numeric
//	@attribute <name> {v1,v2}
//
//	@data
//	1,v1
type ARFFWriter struct{}

func (ARFFWriter) Write(w io.Writer, d *Dataset) error {
	if _, err := fmt.Fprintf(w, "@relation %s\n\n", quoteARFF(d.name)); err != nil {
		return errors.Trace(err)
	}
	for _, c := range d.columns {
		var decl string
		switch c.Type {
		case Numeric:
			decl = "numeric"
		case Nominal:
			decl = "{" + strings.Join(lo.Map(c.Values, func(v string, _ int) string { return quoteARFF(v) }), ",") + "}"
		}
		if _, err := fmt.Fprintf(w, "@attribute %s %s\n", quoteARFF(c.Name), decl); err != nil {
			return errors.Trace(err)
		}
	}
	if _, err := fmt.Fprint(w, "\n@data\n"); err != nil {
		return errors.Trace(err)
	}
	for _, row := range d.rows {
		fields := lo.Map(row, func(v any, _ int) string { return quoteARFF(formatValue(v)) })
		if _, err := fmt.Fprintln(w, strings.Join(fields, ",")); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

// quoteARFF single-quotes a name or value if it would otherwise be misread.
func quoteARFF(s string) string {
	if s != "" && s != "?" && !strings.ContainsAny(s, " \t\n\r,{}'\"%\\") {
		return s
	}
	builder := strings.Builder{}
	builder.WriteRune('\'')
	for _, c := range s {
		switch c {
		case '\'', '\\':
			builder.WriteRune('\\')
			builder.WriteRune(c)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		case '\t':
			builder.WriteString(`\t`)
		default:
			builder.WriteRune(c)
		}
	}
	builder.WriteRune('\'')
	return builder.String()
}

// splitARFF splits s on commas outside quotes. Quoted fields are unescaped and
// whitespace outside quotes is dropped.
func splitARFF(s string) ([]string, error) {
	var (
		fields  []string
		builder strings.Builder
		quote   rune
		escaped bool
	)
	for _, c := range s {
		switch {
		case escaped:
			switch c {
			case 'n':
				builder.WriteRune('\n')
			case 'r':
				builder.WriteRune('\r')
			case 't':
				builder.WriteRune('\t')
			default:
				builder.WriteRune(c)
			}
			escaped = false
		case quote != 0 && c == '\\':
			escaped = true
		case quote != 0 && c == quote:
			quote = 0
		case quote != 0:
			builder.WriteRune(c)
		case c == '\'' || c == '"':
			quote = c
		case c == ',':
			fields = append(fields, builder.String())
			builder.Reset()
		case unicode.IsSpace(c):
		default:
			builder.WriteRune(c)
		}
	}
	if quote != 0 {
		return nil, errors.NotValidf("unterminated quote in `%s`", s)
	}
	return append(fields, builder.String()), nil
}

// cutToken reads a possibly quoted token from the start of s.
func cutToken(s string) (token, rest string, err error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if s == "" {
		return "", "", errors.NotValidf("missing token")
	}
	if s[0] == '\'' || s[0] == '"' {
		for i := 1; i < len(s); i++ {
			if s[i] == '\\' {
				i++
			} else if s[i] == s[0] {
				fields, err := splitARFF(s[:i+1])
				if err != nil {
					return "", "", err
				}
				return fields[0], s[i+1:], nil
			}
		}
		return "", "", errors.NotValidf("unterminated quote in `%s`", s)
	}
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, "", nil
	}
	return s[:i], s[i:], nil
}

func parseAttribute(decl string) (Column, error) {
	name, rest, err := cutToken(decl)
	if err != nil {
		return Column{}, errors.Trace(err)
	}
	rest = strings.TrimSpace(rest)
	switch {
	case strings.HasPrefix(rest, "{") && strings.HasSuffix(rest, "}"):
		values, err := splitARFF(rest[1 : len(rest)-1])
		if err != nil {
			return Column{}, errors.Trace(err)
		}
		return NominalColumn(name, values...), nil
	case lo.Contains([]string{"numeric", "real", "integer"}, strings.ToLower(rest)):
		return NumericColumn(name), nil
	default:
		return Column{}, errors.NotSupportedf("type `%s` of attribute `%s`", rest, name)
	}
}

// ReadARFF loads a dataset from a dense ARFF file. Missing values, sparse rows and
// string or date attributes are not supported.
func ReadARFF(r io.Reader) (*Dataset, error) {
	var (
		relation string
		columns  []Column
		d        *Dataset
		rows     [][]any
	)
	pool := strutil.NewPool()
	scanner := base.NewScanner(r)
	lineCount := 0
	for scanner.Scan() {
		lineCount++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if d == nil {
			// header section
			keyword, rest, err := cutToken(line)
			if err != nil {
				return nil, errors.Annotatef(err, "line %d", lineCount)
			}
			switch strings.ToLower(keyword) {
			case "@relation":
				if relation, _, err = cutToken(rest); err != nil {
					return nil, errors.Annotatef(err, "line %d", lineCount)
				}
			case "@attribute":
				c, err := parseAttribute(rest)
				if err != nil {
					return nil, errors.Annotatef(err, "line %d", lineCount)
				}
				columns = append(columns, c)
			case "@data":
				if d, err = New(relation, columns...); err != nil {
					return nil, errors.Trace(err)
				}
			default:
				return nil, errors.NotValidf("line %d: unexpected `%s`", lineCount, keyword)
			}
			continue
		}
		// data section
		if strings.HasPrefix(line, "{") {
			return nil, errors.NotSupportedf("line %d: sparse instance", lineCount)
		}
		fields, err := splitARFF(line)
		if err != nil {
			return nil, errors.Annotatef(err, "line %d", lineCount)
		}
		if len(fields) != len(columns) {
			return nil, errors.Annotatef(&RowArityError{Expected: len(columns), Actual: len(fields)}, "line %d", lineCount)
		}
		row := make([]any, len(fields))
		for j, field := range fields {
			if columns[j].IsNominal() {
				row[j] = pool.Align(field)
				continue
			}
			f, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Annotatef(&TypeMismatchError{Column: columns[j].Name, Value: field}, "line %d", lineCount)
			}
			row[j] = f
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Trace(err)
	}
	if d == nil {
		return nil, errors.NotValidf("arff without @data section")
	}
	if err := d.AddRows(rows); err != nil {
		return nil, errors.Trace(err)
	}
	return d, nil
}
