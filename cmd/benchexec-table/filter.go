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
	"github.com/sim642/benchexec/pkg/table/formatter/textrows"
	tablesort "github.com/sim642/benchexec/pkg/table/sort"
)

func newFilterCmd() *cobra.Command {
	var (
		filterFlags []string
		sortBy      []string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "filter FILE [id=value ...]",
		Short: "Apply filters to a result table and print the remaining rows",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := table.Load(args[0])
			if err != nil {
				return err
			}

			specs, err := parseSpecs(append(append([]string{}, filterFlags...), args[1:]...))
			if err != nil {
				return err
			}

			rows, err := filter.FilterRows(tbl, specs)
			if err != nil {
				return err
			}
			log.Debugf("%d of %d rows left after filtering", len(rows), len(tbl.Rows))

			tablesort.SortRows(tbl.Tools, rows, sortBy)

			if output == outputModeTable {
				textrows.New(tbl.Tools).WriteTable(os.Stdout, rows)
				return nil
			}
			return printEncoded(os.Stdout, output, rows)
		},
	}

	cmd.Flags().StringArrayVarP(&filterFlags, "filter", "f", nil, "filter in id=value form, may be given multiple times")
	cmd.Flags().StringSliceVarP(&sortBy, "sort", "s", nil, "sort keys: id or tool/columnIndex, prefix with - for descending")
	cmd.Flags().StringVarP(&output, "output", "o", outputModeTable, "output format, one of table, json, yaml")

	return cmd
}
