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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sim642/benchexec/pkg/table"
	"github.com/sim642/benchexec/pkg/table/filter"
	"github.com/sim642/benchexec/pkg/table/stats"
)

func newStatsCmd() *cobra.Command {
	var (
		filterFlags []string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Summarize a result table, optionally after filtering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := table.Load(args[0])
			if err != nil {
				return err
			}

			specs, err := parseSpecs(filterFlags)
			if err != nil {
				return err
			}

			rows, err := filter.FilterRows(tbl, specs)
			if err != nil {
				return err
			}
			log.Debugf("summarizing %d rows", len(rows))

			return printEncoded(os.Stdout, output, stats.Compute(tbl.Tools, rows))
		},
	}

	cmd.Flags().StringArrayVarP(&filterFlags, "filter", "f", nil, "filter in id=value form, may be given multiple times")
	cmd.Flags().StringVarP(&output, "output", "o", outputModeYAML, "output format, one of json, yaml")

	return cmd
}
