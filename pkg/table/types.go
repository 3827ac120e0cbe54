// Copyright 2024 The BenchExec authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package table

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ColumnType defines how the values of a column are interpreted
type ColumnType string

const (
	ColumnTypeStatus  ColumnType = "status"  // outcome classification of a result
	ColumnTypeText    ColumnType = "text"    // free-form text
	ColumnTypeNumeric ColumnType = "numeric" // measurements like cputime or memory
)

// ErrNoStatusColumn is returned when a tool's column list does not contain
// a status-type column; every tool is expected to have exactly one.
var ErrNoStatusColumn = errors.New("no status column")

type Column struct {
	Title        string     `json:"title"`
	Type         ColumnType `json:"type"`
	Unit         string     `json:"unit,omitempty"`
	DisplayTitle string     `json:"displayTitle,omitempty"`
}

type Tool struct {
	Name     string    `json:"name"`
	Date     string    `json:"date,omitempty"`
	NiceName string    `json:"niceName,omitempty"`
	Columns  []*Column `json:"columns"`
}

// StatusColumn returns the index of the first status-type column of the
// tool, or ErrNoStatusColumn if there is none.
func (t *Tool) StatusColumn() (int, error) {
	for i, col := range t.Columns {
		if col != nil && col.Type == ColumnTypeStatus {
			return i, nil
		}
	}
	return -1, fmt.Errorf("tool %q: %w", t.Name, ErrNoStatusColumn)
}

// Value is a single measurement; Raw is nil if the measurement is missing
type Value struct {
	Raw *string `json:"raw,omitempty"`
}

// IsMissing reports whether the value is absent, either because the value
// entry itself is missing or because it has no raw content.
func (v *Value) IsMissing() bool {
	return v == nil || v.Raw == nil
}

// Number coerces the raw value to a float64. Missing or non-numeric values
// yield NaN, which fails every range comparison.
func (v *Value) Number() float64 {
	if v.IsMissing() {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(*v.Raw), 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// Result holds the outcome of one tool on one row
type Result struct {
	Category string   `json:"category"`
	Values   []*Value `json:"values"`
}

// Value returns the value at column index col, or nil if the result itself
// is nil or the index is out of range.
func (r *Result) Value(col int) *Value {
	if r == nil || col < 0 || col >= len(r.Values) {
		return nil
	}
	return r.Values[col]
}

// Row is one benchmark instance, identified by its href
type Row struct {
	Href    string    `json:"href"`
	Results []*Result `json:"results"`
}

// Result returns the result for the tool at index tool, or nil if the row
// has no result at that index.
func (r *Row) Result(tool int) *Result {
	if r == nil || tool < 0 || tool >= len(r.Results) {
		return nil
	}
	return r.Results[tool]
}

// Table is a full benchmark result set
type Table struct {
	Tools []*Tool `json:"tools"`
	Rows  []*Row  `json:"rows"`
}

// ToolIndex returns the index of the first tool with the given name
func (t *Table) ToolIndex(name string) (int, bool) {
	for i, tool := range t.Tools {
		if tool != nil && tool.Name == name {
			return i, true
		}
	}
	return -1, false
}
