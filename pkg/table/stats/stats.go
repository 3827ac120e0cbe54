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

package stats

import (
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/sim642/benchexec/pkg/table"
)

// ToolStats is the summary of one tool over a row set
type ToolStats struct {
	Name       string          `json:"name"`
	Total      int             `json:"total"`
	Categories []CategoryCount `json:"categories,omitempty"`
	Columns    []*ColumnStats  `json:"columns"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ColumnStats sums one numeric column; Count is the number of values that
// contributed to Sum, so consumers can tell a zero sum from no data
type ColumnStats struct {
	Title string  `json:"title"`
	Unit  string  `json:"unit,omitempty"`
	Sum   float64 `json:"sum"`
	Count int     `json:"count"`
}

// Compute aggregates rows per tool. The returned list is aligned with
// tools; nil tools keep a nil slot. Per tool, Columns is aligned with the
// tool's column list and only numeric columns get an entry. Categories is
// sorted by category name. Missing and non-numeric values contribute to
// neither Sum nor Count.
func Compute(tools []*table.Tool, rows []*table.Row) []*ToolStats {
	out := make([]*ToolStats, len(tools))
	for ti, tool := range tools {
		if tool == nil {
			continue
		}
		out[ti] = computeTool(rows, ti, tool)
	}
	return out
}

func computeTool(rows []*table.Row, ti int, tool *table.Tool) *ToolStats {
	ts := &ToolStats{
		Name:    tool.Name,
		Columns: make([]*ColumnStats, len(tool.Columns)),
	}
	for ci, col := range tool.Columns {
		if col == nil || col.Type != table.ColumnTypeNumeric {
			continue
		}
		ts.Columns[ci] = &ColumnStats{Title: col.Title, Unit: col.Unit}
	}

	categories := make(map[string]int)
	for _, row := range rows {
		res := row.Result(ti)
		if res == nil {
			continue
		}
		ts.Total++
		categories[res.Category]++
		for ci, cs := range ts.Columns {
			if cs == nil {
				continue
			}
			if n := res.Value(ci).Number(); !math.IsNaN(n) {
				cs.Sum += n
				cs.Count++
			}
		}
	}

	keys := maps.Keys(categories)
	slices.Sort(keys)
	for _, category := range keys {
		ts.Categories = append(ts.Categories, CategoryCount{Category: category, Count: categories[category]})
	}
	return ts
}
