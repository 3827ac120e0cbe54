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
	"os"

	"github.com/spf13/cobra"

	"github.com/sim642/benchexec/pkg/table"
	"github.com/sim642/benchexec/pkg/table/metadata"
)

func newMetadataCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "metadata FILE",
		Short: "Extract the filterable values of every tool and column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := table.Load(args[0])
			if err != nil {
				return err
			}
			return printEncoded(os.Stdout, output, metadata.Extract(tbl))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputModeYAML, "output format, one of json, yaml")

	return cmd
}
