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
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/sim642/benchexec/pkg/table"
)

// idColumn marks the leading href column in outputColumn.tool
const idColumn = -1

type outputColumn struct {
	title      string
	tool       int // result index into a row; idColumn for the href column
	col        int // value index into a result
	width      int
	alignRight bool
	middle     bool // shorten in the middle instead of at the end
}

// Formatter renders rows of a result table as fixed-width text
type Formatter struct {
	options    *Options
	columns    []*outputColumn
	fillString string
}

// New returns a Formatter for tables with the given tool list. The column
// layout is fixed at construction: one id column followed by the columns
// of every tool in table order; nil tools and nil columns are skipped.
func New(tools []*table.Tool, options ...Option) *Formatter {
	opts := DefaultOptions()
	for _, o := range options {
		o(opts)
	}

	f := &Formatter{options: opts}
	f.columns = append(f.columns, &outputColumn{
		title:  "id",
		tool:   idColumn,
		width:  opts.RowIDWidth,
		middle: true,
	})
	for ti, tool := range tools {
		if tool == nil {
			continue
		}
		for ci, col := range tool.Columns {
			if col == nil {
				continue
			}
			title := col.Title
			if col.DisplayTitle != "" {
				title = col.DisplayTitle
			}
			if col.Unit != "" {
				title += " (" + col.Unit + ")"
			}
			f.columns = append(f.columns, &outputColumn{
				title:      tool.Name + "/" + title,
				tool:       ti,
				col:        ci,
				width:      opts.ColumnWidth,
				alignRight: col.Type == table.ColumnTypeNumeric,
			})
		}
	}

	f.adjustWidths()
	f.buildFillString()
	return f
}

// adjustWidths scales the result columns down when the total width would
// exceed the configured or detected limit; the id column keeps its width
func (f *Formatter) adjustWidths() {
	maxWidth := f.options.MaxWidth
	if maxWidth == 0 {
		fd := int(os.Stdout.Fd())
		if term.IsTerminal(fd) {
			if w, _, err := term.GetSize(fd); err == nil {
				maxWidth = w
			}
		}
	}
	if maxWidth <= 0 || len(f.columns) <= 1 {
		return
	}

	dividerWidth := len([]rune(f.options.ColumnDivider))
	total := f.columns[0].width + (len(f.columns)-1)*dividerWidth
	for _, col := range f.columns[1:] {
		total += col.width
	}
	if total <= maxWidth {
		return
	}

	available := maxWidth - f.columns[0].width - (len(f.columns)-1)*dividerWidth
	width := available / (len(f.columns) - 1)
	if width < 4 {
		width = 4
	}
	for _, col := range f.columns[1:] {
		col.width = width
	}
}

// buildFillString builds a string that has the length of the widest
// column; whitespace is copied from it instead of being generated
// character by character all the time
func (f *Formatter) buildFillString() {
	maxLength := 0
	for _, col := range f.columns {
		if col.width > maxLength {
			maxLength = col.width
		}
	}
	f.fillString = strings.Repeat(" ", maxLength)
}
