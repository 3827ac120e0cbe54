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

package metadata

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sim642/benchexec/pkg/logger"
	"github.com/sim642/benchexec/pkg/table"
)

type mockLogger struct {
	level    logger.Level
	warnings []string
}

func (m *mockLogger) Error(params ...any)              {}
func (m *mockLogger) Errorf(format string, p ...any)   {}
func (m *mockLogger) Warn(params ...any)               {}
func (m *mockLogger) Warnf(format string, p ...any)    { m.warnings = append(m.warnings, fmt.Sprintf(format, p...)) }
func (m *mockLogger) Info(params ...any)               {}
func (m *mockLogger) Infof(format string, p ...any)    {}
func (m *mockLogger) Debug(params ...any)              {}
func (m *mockLogger) Debugf(format string, p ...any)   {}
func (m *mockLogger) SetLevel(l logger.Level)          { m.level = l }
func (m *mockLogger) GetLevel() logger.Level           { return m.level }

func testTable() *table.Table {
	return &table.Table{
		Tools: []*table.Tool{
			{
				Name: "cpachecker",
				Columns: []*table.Column{
					{Title: "status", Type: table.ColumnTypeStatus},
					{Title: "cputime", Type: table.ColumnTypeNumeric, Unit: "s"},
					{Title: "host", Type: table.ColumnTypeText},
					nil,
				},
			},
			{
				// no status column: reported and excluded from the output
				Name: "broken",
				Columns: []*table.Column{
					{Title: "cputime", Type: table.ColumnTypeNumeric},
				},
			},
		},
		Rows: []*table.Row{
			{
				Href: "tasks/task17.yml",
				Results: []*table.Result{
					{Category: "correct", Values: []*table.Value{
						table.NewValue("true"), table.NewValue("8.5"), table.NewValue("apollo3"), nil,
					}},
					{Category: "correct", Values: []*table.Value{table.NewValue("2.0")}},
				},
			},
			{
				Href: "tasks/task18.yml",
				Results: []*table.Result{
					{Category: "wrong", Values: []*table.Value{
						table.NewValue("false"), table.NewValue("1.25"), table.NewValue("apollo1"), nil,
					}},
					nil,
				},
			},
			{
				Href: "tasks/task19.yml",
				Results: []*table.Result{
					{Category: "error", Values: []*table.Value{
						table.NewValue("true"), table.MissingValue(), table.NewValue("apollo3"), nil,
					}},
					nil,
				},
			},
		},
	}
}

func TestExtract(t *testing.T) {
	log := &mockLogger{}
	out := Extract(testTable(), WithLogger(log))

	require.Len(t, out, 2)
	require.NotNil(t, out[0])
	assert.Nil(t, out[1], "tool without status column is excluded")
	require.Len(t, log.warnings, 1)
	assert.Contains(t, log.warnings[0], "broken")

	tm := out[0]
	assert.Equal(t, "cpachecker", tm.Name)
	require.Len(t, tm.Columns, 4)
	assert.Nil(t, tm.Columns[3], "nil column definitions are passed through")

	status := tm.Columns[0]
	assert.Equal(t, table.ColumnTypeStatus, status.Type)
	assert.Equal(t, []string{"correct", "error", "wrong"}, status.Categories)
	assert.Equal(t, []string{"false", "true"}, status.Statuses)

	cputime := tm.Columns[1]
	assert.Equal(t, 1.25, cputime.Min)
	assert.Equal(t, 8.5, cputime.Max)

	host := tm.Columns[2]
	assert.Equal(t, []string{"apollo1", "apollo3"}, host.Distincts)
}

func TestExtractNoRows(t *testing.T) {
	tbl := testTable()
	tbl.Rows = nil

	out := Extract(tbl, WithLogger(&mockLogger{}))
	require.NotNil(t, out[0])

	cputime := out[0].Columns[1]
	assert.True(t, math.IsInf(cputime.Min, 1), "empty numeric column keeps +Inf min")
	assert.True(t, math.IsInf(cputime.Max, -1), "empty numeric column keeps -Inf max")
	assert.Empty(t, out[0].Columns[0].Categories)
	assert.Empty(t, out[0].Columns[2].Distincts)
}

func TestExtractNilTool(t *testing.T) {
	tbl := &table.Table{Tools: []*table.Tool{nil}}
	out := Extract(tbl, WithLogger(&mockLogger{}))
	require.Len(t, out, 1)
	assert.Nil(t, out[0])
}

func TestExtractAllMissingColumn(t *testing.T) {
	tbl := &table.Table{
		Tools: []*table.Tool{{
			Name: "t",
			Columns: []*table.Column{
				{Title: "status", Type: table.ColumnTypeStatus},
				{Title: "memory", Type: table.ColumnTypeNumeric},
			},
		}},
		Rows: []*table.Row{
			{Href: "a", Results: []*table.Result{{Category: "correct", Values: []*table.Value{table.NewValue("true"), table.MissingValue()}}}},
			{Href: "b", Results: []*table.Result{{Category: "correct", Values: []*table.Value{table.NewValue("true"), table.NewValue("not a number")}}}},
		},
	}

	out := Extract(tbl, WithLogger(&mockLogger{}))
	memory := out[0].Columns[1]
	assert.True(t, math.IsInf(memory.Min, 1), "non-numeric raw values never move the bounds")
	assert.True(t, math.IsInf(memory.Max, -1))
}

func TestColumnMetadataJSON(t *testing.T) {
	empty := &ColumnMetadata{Title: "cputime", Type: table.ColumnTypeNumeric, Min: math.Inf(1), Max: math.Inf(-1)}
	data, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "min", "invalid range is omitted")

	filled := &ColumnMetadata{Title: "cputime", Type: table.ColumnTypeNumeric, Min: 0, Max: 8.5}
	data, err = json.Marshal(filled)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"min":0`)
	assert.Contains(t, string(data), `"max":8.5`)

	status := &ColumnMetadata{Title: "status", Type: table.ColumnTypeStatus, Categories: []string{"correct"}}
	data, err = json.Marshal(status)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "min")
	assert.Contains(t, string(data), `"categories":["correct"]`)
}
