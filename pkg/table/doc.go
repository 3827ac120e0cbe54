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
Package table holds the data model for benchmark result tables: a matrix of
rows (benchmark instances) times tools (competing analyzers), where every
tool contributes an ordered list of result columns.

Column index alignment is load-bearing throughout this module: the Nth entry
of a tool's column list corresponds to the Nth entry of every result's value
list for that tool, and a row's results are ordered like the table's tools.
The subpackages (metadata, filter, sort, stats and the formatters) all rely
on this invariant and never reorder the underlying slices.

A value's raw content may be absent (a missing measurement); absence is
represented by a nil Raw pointer and never matches any filter.

Tables can be constructed directly or decoded from YAML or JSON documents
using Load or Parse:

	tools:
	  - name: cpachecker
	    columns:
	      - title: status
	        type: status
	      - title: cputime
	        type: numeric
	        unit: s
	rows:
	  - href: ../sv-benchmarks/c/task17.yml
	    results:
	      - category: correct
	        values: [{raw: "true"}, {raw: "8.5"}]
*/
package table
