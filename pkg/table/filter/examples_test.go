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

package filter_test

import (
	"fmt"

	"github.com/sim642/benchexec/pkg/table"
	"github.com/sim642/benchexec/pkg/table/filter"
)

func exampleTable() *table.Table {
	raw := func(s string) *table.Value { return table.NewValue(s) }
	return &table.Table{
		Tools: []*table.Tool{
			{
				Name: "cpachecker",
				Columns: []*table.Column{
					{Title: "status", Type: table.ColumnTypeStatus},
					{Title: "cputime", Type: table.ColumnTypeNumeric, Unit: "s"},
				},
			},
		},
		Rows: []*table.Row{
			{Href: "tasks/loops/task17.yml", Results: []*table.Result{
				{Category: "correct", Values: []*table.Value{raw("true"), raw("8.5")}},
			}},
			{Href: "tasks/loops/task18.yml", Results: []*table.Result{
				{Category: "timeout", Values: []*table.Value{raw("TIMEOUT"), raw("900")}},
			}},
			{Href: "tasks/arrays/task01.yml", Results: []*table.Result{
				{Category: "correct", Values: []*table.Value{raw("true"), raw("120")}},
			}},
		},
	}
}

func ExampleFilterRows() {
	tbl := exampleTable()

	// Keep rows where cpachecker needed at most 500s and the href
	// contains "loops"
	rows, err := filter.FilterRows(tbl, []filter.Spec{
		{ID: "cpachecker_cputime_1", Value: ":500"},
		{ID: "id", Value: "loops"},
	})
	if err != nil {
		panic(err)
	}

	for _, row := range rows {
		fmt.Println(row.Href)
	}

	// Output:
	// tasks/loops/task17.yml
}

func ExampleCompile() {
	tbl := exampleTable()

	// A compiled matcher can be applied to several row sets
	m, err := filter.Compile([]filter.Spec{
		{ID: "cpachecker_status_0", Value: filter.CategoryValue("correct")},
	})
	if err != nil {
		panic(err)
	}

	for _, row := range m.Apply(tbl.Tools, tbl.Rows) {
		fmt.Println(row.Href)
	}

	// Output:
	// tasks/loops/task17.yml
	// tasks/arrays/task01.yml
}
