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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	sigyaml "sigs.k8s.io/yaml"

	"github.com/sim642/benchexec/pkg/table/filter"
)

const (
	outputModeTable = "table"
	outputModeJSON  = "json"
	outputModeYAML  = "yaml"
)

// parseSpecs converts id=value strings, as given on the command line or
// carried in result-table URLs, into filter specs
func parseSpecs(values []string) ([]filter.Spec, error) {
	specs := make([]filter.Spec, 0, len(values))
	for _, v := range values {
		id, value, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("invalid filter %q: expected id=value", v)
		}
		specs = append(specs, filter.Spec{ID: id, Value: value})
	}
	return specs, nil
}

func printEncoded(w io.Writer, mode string, v any) error {
	switch mode {
	case outputModeJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputModeYAML:
		out, err := sigyaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("invalid output format %q", mode)
	}
}
