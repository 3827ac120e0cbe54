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

package filter

import (
	"fmt"

	"github.com/sim642/benchexec/pkg/table"
)

// Apply evaluates the matcher against rows and returns the surviving rows
// as a new slice, preserving the input order. The input is never mutated;
// nil rows are skipped. tools is needed to resolve the matcher's tool
// names to result indexes.
func (m *Matcher) Apply(tools []*table.Tool, rows []*table.Row) []*table.Row {
	if rows == nil {
		return nil
	}

	toolIndex := make(map[string]int, len(tools))
	for i, tool := range tools {
		if tool == nil {
			continue
		}
		if _, ok := toolIndex[tool.Name]; !ok {
			toolIndex[tool.Name] = i
		}
	}

	out := make([]*table.Row, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			// Skip nil entries
			continue
		}
		if !m.matchDiffs(row) {
			continue
		}
		if m.id != nil && !m.id.matches(row.Href) {
			continue
		}
		if !m.matchColumns(toolIndex, row) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// matchDiffs checks every diff filter: a row passes if the tools do not
// agree on a single raw value at the filter's column. A missing value
// counts as its own observation, so one tool reporting and one missing is
// a disagreement.
func (m *Matcher) matchDiffs(row *table.Row) bool {
	for _, d := range m.diffs {
		distinct := make(map[string]struct{})
		missing := false
		for _, res := range row.Results {
			v := res.Value(d.col)
			if v.IsMissing() {
				missing = true
				continue
			}
			distinct[*v.Raw] = struct{}{}
		}
		observations := len(distinct)
		if missing {
			observations++
		}
		if observations == 1 {
			return false
		}
	}
	return true
}

// matchColumns checks the per-tool, per-column sub-filter lists: AND
// across all (tool, column) pairs present in the matcher, OR across the
// sub-filters of one column. Tools and columns absent from the matcher
// impose no constraint.
func (m *Matcher) matchColumns(toolIndex map[string]int, row *table.Row) bool {
	for tool, cols := range m.tools {
		var res *table.Result
		if ti, ok := toolIndex[tool]; ok {
			res = row.Result(ti)
		}
		for col, subs := range cols {
			columnPass := false
			for _, sub := range subs {
				pass, known := sub.matches(res, col)
				if known {
					columnPass = pass
				}
				// a missing value leaves the verdict untouched, so a later
				// branch of the OR list can still pass
				if columnPass {
					break
				}
			}
			if !columnPass {
				return false
			}
		}
	}
	return true
}

// FilterRows compiles specs and applies the resulting matcher to the
// table's rows in one step.
func FilterRows(tbl *table.Table, specs []Spec) ([]*table.Row, error) {
	m, err := Compile(specs)
	if err != nil {
		return nil, fmt.Errorf("compiling filters: %w", err)
	}
	return m.Apply(tbl.Tools, tbl.Rows), nil
}
