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

package table

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Parse decodes a result table from a YAML or JSON document. Unknown keys
// are ignored; structural problems inside the table (like a tool without a
// status column) are left to the consuming packages, which degrade per tool
// instead of aborting.
func Parse(data []byte) (*Table, error) {
	tbl := &Table{}
	if err := yaml.Unmarshal(data, tbl); err != nil {
		return nil, fmt.Errorf("parsing result table: %w", err)
	}
	return tbl, nil
}

// Load reads and decodes the result table at path
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result table: %w", err)
	}
	return Parse(data)
}
