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

package textrows

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sim642/benchexec/pkg/table"
)

func testTools() []*table.Tool {
	return []*table.Tool{
		{
			Name: "cpa",
			Columns: []*table.Column{
				{Title: "status", Type: table.ColumnTypeStatus},
				{Title: "cputime", Type: table.ColumnTypeNumeric, Unit: "s"},
			},
		},
		nil,
	}
}

func testRow() *table.Row {
	return &table.Row{
		Href: "task17.yml",
		Results: []*table.Result{
			{Category: "correct", Values: []*table.Value{table.NewValue("true"), table.NewValue("8.5")}},
		},
	}
}

func TestFormatHeader(t *testing.T) {
	f := New(testTools(), WithRowIDWidth(10), WithColumnWidth(12))
	header := f.FormatHeader()
	assert.Equal(t, "id         cpa/status   cpa/cputime…", header)

	f = New(testTools(), WithRowIDWidth(10), WithColumnWidth(12), WithHeaderStyle(HeaderStyleUppercase))
	assert.Contains(t, f.FormatHeader(), "CPA/STATUS")
}

func TestFormatRow(t *testing.T) {
	f := New(testTools(), WithRowIDWidth(10), WithColumnWidth(12))

	// numeric columns are right-aligned, missing values are empty cells
	assert.Equal(t, "task17.yml true                  8.5", f.FormatRow(testRow()))

	missing := &table.Row{
		Href:    "task18.yml",
		Results: []*table.Result{{Category: "error", Values: []*table.Value{table.MissingValue(), nil}}},
	}
	assert.Equal(t, "task18.yml"+strings.Repeat(" ", 26), f.FormatRow(missing))

	assert.Equal(t, "", f.FormatRow(nil))
}

func TestShortening(t *testing.T) {
	f := New(testTools(), WithRowIDWidth(9), WithColumnWidth(6))

	long := &table.Row{
		Href: "very/long/path/task17.yml",
		Results: []*table.Result{
			{Category: "correct", Values: []*table.Value{table.NewValue("OUT OF MEMORY"), table.NewValue("900")}},
		},
	}
	line := f.FormatRow(long)
	cells := strings.Split(line, " ")
	assert.Equal(t, "very….yml", cells[0], "id cells shorten in the middle")
	assert.Contains(t, line, "OUT O…", "value cells shorten at the end")
}

func TestWriteTable(t *testing.T) {
	f := New(testTools(), WithRowIDWidth(10), WithColumnWidth(12), WithRowDivider(DividerDash))

	var out strings.Builder
	f.WriteTable(&out, []*table.Row{testRow(), nil})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3, "header, divider and one row; nil rows are skipped")
	assert.Equal(t, strings.Repeat("-", 10+1+12+1+12), lines[1])
}

func TestMaxWidthScaling(t *testing.T) {
	f := New(testTools(), WithRowIDWidth(10), WithColumnWidth(20), WithMaxWidth(30))

	// 30 total - 10 id - 2 dividers leaves 9 per result column
	for _, col := range f.columns[1:] {
		assert.Equal(t, 9, col.width)
	}

	// narrow limits never shrink below the readable minimum
	f = New(testTools(), WithRowIDWidth(10), WithColumnWidth(20), WithMaxWidth(12))
	for _, col := range f.columns[1:] {
		assert.Equal(t, 4, col.width)
	}
}
