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
	"io"
	"strings"

	"github.com/sim642/benchexec/pkg/table"
)

// FormatHeader returns the formatted header line with all column names,
// separated by ColumnDivider
func (f *Formatter) FormatHeader() string {
	var row strings.Builder
	for i, col := range f.columns {
		if i > 0 {
			row.WriteString(f.options.ColumnDivider)
		}
		title := col.title
		switch f.options.HeaderStyle {
		case HeaderStyleUppercase:
			title = strings.ToUpper(title)
		case HeaderStyleLowercase:
			title = strings.ToLower(title)
		}
		row.WriteString(f.buildFixedString(title, col.width, false, col.alignRight))
	}
	return row.String()
}

// FormatRow returns one row as a formatted line; missing values render as
// empty cells
func (f *Formatter) FormatRow(r *table.Row) string {
	if r == nil {
		return ""
	}

	var row strings.Builder
	for i, col := range f.columns {
		if i > 0 {
			row.WriteString(f.options.ColumnDivider)
		}
		content := ""
		if col.tool == idColumn {
			content = r.Href
		} else if v := r.Result(col.tool).Value(col.col); !v.IsMissing() {
			content = *v.Raw
		}
		row.WriteString(f.buildFixedString(content, col.width, col.middle, col.alignRight))
	}
	return row.String()
}

// FormatRowDivider returns a string that repeats RowDivider until the
// total width of a row is reached
func (f *Formatter) FormatRowDivider() string {
	if f.options.RowDivider == DividerNone {
		return ""
	}

	width := 0
	for i, col := range f.columns {
		if i > 0 {
			width += len([]rune(f.options.ColumnDivider))
		}
		width += col.width
	}

	var row strings.Builder
	length := 0
	for length < width {
		row.WriteString(f.options.RowDivider)
		length += len([]rune(f.options.RowDivider))
	}
	return string([]rune(row.String())[:width])
}

// WriteTable writes header, divider and body for the given rows
func (f *Formatter) WriteTable(writer io.Writer, rows []*table.Row) {
	io.WriteString(writer, f.FormatHeader())
	io.WriteString(writer, "\n")
	if f.options.RowDivider != DividerNone {
		io.WriteString(writer, f.FormatRowDivider())
		io.WriteString(writer, "\n")
	}
	for _, row := range rows {
		if row == nil {
			continue
		}
		io.WriteString(writer, f.FormatRow(row))
		io.WriteString(writer, "\n")
	}
}

// buildFixedString shortens or pads s to exactly width characters
func (f *Formatter) buildFixedString(s string, width int, middle bool, alignRight bool) string {
	if width <= 0 {
		return ""
	}

	rs := []rune(s)
	if len(rs) > width {
		rs = shorten(rs, width, middle)
	}
	if len(rs) == width {
		return string(rs)
	}
	fill := f.fillString[:width-len(rs)]
	if alignRight {
		return fill + string(rs)
	}
	return string(rs) + fill
}

func shorten(rs []rune, width int, middle bool) []rune {
	if width <= 1 {
		return []rune("…")[:width]
	}
	if !middle {
		return append(append([]rune{}, rs[:width-1]...), '…')
	}
	head := (width - 1) / 2
	tail := width - 1 - head
	out := append([]rune{}, rs[:head]...)
	out = append(out, '…')
	return append(out, rs[len(rs)-tail:]...)
}
