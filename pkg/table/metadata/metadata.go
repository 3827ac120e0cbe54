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

package metadata

import (
	"encoding/json"
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/sim642/benchexec/pkg/table"
)

// ToolMetadata describes the filterable facts of one tool; Columns is
// aligned with the tool's original column order.
type ToolMetadata struct {
	Name    string            `json:"name"`
	Columns []*ColumnMetadata `json:"columns"`
}

// ColumnMetadata holds the summary facts of one column. Which fields are
// populated depends on the column type: Categories and Statuses for status
// columns, Distincts for text columns, Min and Max for numeric columns.
type ColumnMetadata struct {
	Title string           `json:"title"`
	Type  table.ColumnType `json:"type"`

	Categories []string `json:"categories,omitempty"`
	Statuses   []string `json:"statuses,omitempty"`
	Distincts  []string `json:"distincts,omitempty"`

	// Min and Max are the observed bounds of a numeric column. They start
	// at +Inf/-Inf, so a column without any numeric value keeps an
	// explicitly invalid range that consumers must treat as "no data".
	Min float64 `json:"-"`
	Max float64 `json:"-"`
}

// MarshalJSON emits min and max only for numeric columns with at least one
// observed value; a non-finite bound is not representable in JSON anyway.
func (cm *ColumnMetadata) MarshalJSON() ([]byte, error) {
	type alias ColumnMetadata
	aux := struct {
		*alias
		Min *float64 `json:"min,omitempty"`
		Max *float64 `json:"max,omitempty"`
	}{alias: (*alias)(cm)}
	if cm.Type == table.ColumnTypeNumeric {
		if !math.IsInf(cm.Min, 0) && !math.IsNaN(cm.Min) {
			aux.Min = &cm.Min
		}
		if !math.IsInf(cm.Max, 0) && !math.IsNaN(cm.Max) {
			aux.Max = &cm.Max
		}
	}
	return json.Marshal(aux)
}

// Extract computes the filterable metadata for every tool of the table in
// a single pass over all rows. The returned list is aligned with the
// table's tool order; the slot of a nil tool or of a tool without a
// status column is nil. The order of the emitted Categories, Statuses and
// Distincts lists is sorted for determinism but carries no meaning.
func Extract(tbl *table.Table, opts ...Option) []*ToolMetadata {
	options := GetDefault()
	for _, o := range opts {
		o(options)
	}

	out := make([]*ToolMetadata, len(tbl.Tools))
	for ti, tool := range tbl.Tools {
		if tool == nil {
			continue
		}
		if _, err := tool.StatusColumn(); err != nil {
			options.Logger.Warnf("extracting filter metadata: %v", err)
			continue
		}
		out[ti] = extractTool(tbl.Rows, ti, tool)
	}
	return out
}

func extractTool(rows []*table.Row, ti int, tool *table.Tool) *ToolMetadata {
	tm := &ToolMetadata{
		Name:    tool.Name,
		Columns: make([]*ColumnMetadata, len(tool.Columns)),
	}

	categories := make(map[string]struct{})
	distincts := make([]map[string]struct{}, len(tool.Columns))

	for ci, col := range tool.Columns {
		if col == nil {
			// absent column definitions are passed through, never backfilled
			continue
		}
		cm := &ColumnMetadata{Title: col.Title, Type: col.Type}
		if col.Type == table.ColumnTypeNumeric {
			cm.Min = math.Inf(1)
			cm.Max = math.Inf(-1)
		} else {
			distincts[ci] = make(map[string]struct{})
		}
		tm.Columns[ci] = cm
	}

	for _, row := range rows {
		res := row.Result(ti)
		if res == nil {
			continue
		}
		categories[res.Category] = struct{}{}
		for ci, cm := range tm.Columns {
			if cm == nil {
				continue
			}
			v := res.Value(ci)
			if cm.Type == table.ColumnTypeNumeric {
				// NaN fails both comparisons and never moves the bounds
				if n := v.Number(); !math.IsNaN(n) {
					if n < cm.Min {
						cm.Min = n
					}
					if n > cm.Max {
						cm.Max = n
					}
				}
				continue
			}
			if v.IsMissing() {
				continue
			}
			distincts[ci][*v.Raw] = struct{}{}
		}
	}

	cats := sortedKeys(categories)
	for ci, cm := range tm.Columns {
		if cm == nil {
			continue
		}
		switch cm.Type {
		case table.ColumnTypeStatus:
			cm.Categories = cats
			cm.Statuses = sortedKeys(distincts[ci])
		case table.ColumnTypeText:
			cm.Distincts = sortedKeys(distincts[ci])
		}
	}
	return tm
}

func sortedKeys(set map[string]struct{}) []string {
	keys := maps.Keys(set)
	slices.Sort(keys)
	return keys
}
