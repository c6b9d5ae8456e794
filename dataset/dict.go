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

// ValueDict maps the values of a nominal domain to their positions. It is immutable once built.
type ValueDict struct {
	si map[string]int
	is []string
}

// NewValueDict builds a dictionary from values in order. It returns the first duplicated value
// and false if values are not distinct.
func NewValueDict(values []string) (d *ValueDict, dup string, ok bool) {
	d = &ValueDict{si: make(map[string]int, len(values)), is: make([]string, 0, len(values))}
	for _, s := range values {
		if _, exist := d.si[s]; exist {
			return nil, s, false
		}
		d.si[s] = len(d.is)
		d.is = append(d.is, s)
	}
	return d, "", true
}

func (d *ValueDict) Count() int {
	return len(d.is)
}

func (d *ValueDict) Id(s string) (int, bool) {
	y, ok := d.si[s]
	return y, ok
}

func (d *ValueDict) String(id int) (s string, ok bool) {
	if id < 0 || id >= len(d.is) {
		return "", false
	}
	return d.is[id], true
}

// Values returns a copy of the domain in declaration order.
func (d *ValueDict) Values() []string {
	values := make([]string, len(d.is))
	copy(values, d.is)
	return values
}
