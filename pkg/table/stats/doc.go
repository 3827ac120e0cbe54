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
Package stats aggregates the rows of a result table into the per-tool
summary that result tables show below the body: how many results fall
into each category and the sums of the numeric columns.

The aggregation works on any row slice, so it can summarize a filtered
subset just as well as the full table:

	rows, _ := filter.FilterRows(tbl, specs)
	summary := stats.Compute(tbl.Tools, rows)
*/
package stats
