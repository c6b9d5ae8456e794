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

	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
)

// Summary prints the columns of the dataset as a table followed by the number of rows.
func (d *Dataset) Summary(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("Index", "Name", "Type", "Values")
	for _, c := range d.columns {
		var values string
		if c.IsNominal() {
			values = "{" + strings.Join(c.Values, ",") + "}"
		}
		if err := table.Append([]string{strconv.Itoa(c.index), c.Name, c.Type.String(), values}); err != nil {
			return errors.Trace(err)
		}
	}
	if err := table.Render(); err != nil {
		return errors.Trace(err)
	}
	_, err := fmt.Fprintf(w, "Number of rows: %d\n", len(d.rows))
	return errors.Trace(err)
}
