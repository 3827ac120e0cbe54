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
Package metadata derives, per tool and column, the summary facts a user
interface needs to present filter controls: the observed numeric bounds of
numeric columns, the distinct raw values of text columns and the known
categories and status values of the status column.

Extraction is a single pass over all rows; the result is derived and
read-only, so it has to be recomputed whenever the underlying table
changes (there is no incremental update).

A tool without a status-type column is a structural anomaly: it is
reported through the injected logger, its slot in the output becomes nil
and extraction continues with the remaining tools.
*/
package metadata
