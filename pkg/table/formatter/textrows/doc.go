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
Package textrows turns the rows of a result table into tables that can be
shown on terminals or other frontends using fixed-width characters.

The output has one leading id column (the row href) followed by one column
per tool column, in table order. Overflowing content is shortened with an
ellipsis; the id column shortens in the middle since hrefs are paths whose
start and end both matter.

	f := textrows.New(tbl.Tools, textrows.WithMaxWidth(120))
	f.WriteTable(os.Stdout, rows)
*/
package textrows
