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

/*
Package filter compiles user-supplied filter specs into a matcher and
applies it to the rows of a result table.

A spec is an id/value pair, usually taken straight from URL query
parameters or form controls. The id is either the literal "id" (a row-id
filter on the href) or "<tool>_<label>_<columnIndex>", where the middle
label only disambiguates controls upstream and is ignored here.

The value encodes the filter kind:

	"all"        - sentinel for "no constraint"; the spec is skipped
	"diff"       - keep only rows on which the tools disagree at the column
	"5:10"       - numeric range; an empty side is unbounded (":10", "5:")
	"timeout "   - trailing space: match the result category "timeout"
	"apollo3"    - anything else: exact or substring match on the raw value

Sub-filters of the same column are OR-combined; everything else (columns,
tools, diff filters, the id filter) is AND-combined. A missing raw value
never satisfies any filter.

Compile and apply in one step with FilterRows:

	rows, err := filter.FilterRows(tbl, []filter.Spec{
		{ID: "cpachecker_cputime_1", Value: "5:10"},
		{ID: "id", Value: "task17"},
	})

or keep the compiled matcher around and apply it to several row sets:

	m, err := filter.Compile(specs)
	rows := m.Apply(tbl.Tools, tbl.Rows)
*/
package filter
