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
Package sort sorts the rows of a result table.

Sort keys are strings: "id" sorts by the row href, "<tool>/<columnIndex>"
by the given column of the given tool. A "-" prefix switches to descending
order. Keys are applied right to left with stable sorts, so the first key
has the highest priority:

	sort.SortRows(tbl.Tools, rows, []string{"-cpachecker/1", "id"})

Numeric columns compare the coerced numbers; rows with a missing or
non-numeric value sort last regardless of direction, like status and text
columns do with missing raw values.
*/
package sort
