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

package sort

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/sim642/benchexec/pkg/table"
)

// Order defines the sorting direction
type Order bool

const (
	OrderAsc  Order = true
	OrderDesc Order = false
)

// SortRows sorts rows in place by applying the sortBy keys from right to
// left (the first key has the highest priority). Every key uses a stable
// sort. Empty and unknown keys are skipped.
func SortRows(tools []*table.Tool, rows []*table.Row, sortBy []string) {
	if rows == nil {
		return
	}

	for i := len(sortBy) - 1; i >= 0; i-- {
		key := sortBy[i]
		if len(key) == 0 {
			continue
		}

		// Handle ordering
		order := OrderAsc
		if key[0] == '-' {
			key = key[1:]
			order = OrderDesc
		}

		less := lessFunc(tools, rows, key, order)
		if less == nil {
			continue
		}
		sort.SliceStable(rows, less)
	}
}

func lessFunc(tools []*table.Tool, rows []*table.Row, key string, order Order) func(i, j int) bool {
	if key == "id" {
		return func(i, j int) bool {
			r1, r2 := rows[i], rows[j]
			if r1 == nil {
				return false
			}
			if r2 == nil {
				return true
			}
			return less(r1.Href, r2.Href, order)
		}
	}

	toolName, colStr, ok := strings.Cut(key, "/")
	if !ok {
		return nil
	}
	col, err := strconv.Atoi(colStr)
	if err != nil || col < 0 {
		return nil
	}

	ti := -1
	var tool *table.Tool
	for i, t := range tools {
		if t != nil && t.Name == toolName {
			ti = i
			tool = t
			break
		}
	}
	if ti < 0 || col >= len(tool.Columns) || tool.Columns[col] == nil {
		return nil
	}

	if tool.Columns[col].Type == table.ColumnTypeNumeric {
		return func(i, j int) bool {
			n1, ok1 := number(rows[i], ti, col)
			n2, ok2 := number(rows[j], ti, col)
			// missing and non-numeric values sort last
			if !ok1 {
				return false
			}
			if !ok2 {
				return true
			}
			return less(n1, n2, order)
		}
	}

	return func(i, j int) bool {
		v1 := rows[i].Result(ti).Value(col)
		v2 := rows[j].Result(ti).Value(col)
		if v1.IsMissing() {
			return false
		}
		if v2.IsMissing() {
			return true
		}
		return less(*v1.Raw, *v2.Raw, order)
	}
}

func number(row *table.Row, ti, col int) (float64, bool) {
	n := row.Result(ti).Value(col).Number()
	return n, !math.IsNaN(n)
}

func less[O constraints.Ordered](a, b O, order Order) bool {
	if order == OrderAsc {
		return a < b
	}
	return b < a
}
