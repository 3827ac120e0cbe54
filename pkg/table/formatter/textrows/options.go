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

type HeaderStyle int

const (
	HeaderStyleNormal HeaderStyle = iota
	HeaderStyleUppercase
	HeaderStyleLowercase
)

// DividerNone disables the divider line between header and body
const DividerNone = ""

// DividerDash is a simple dash divider between header and body
const DividerDash = "-"

type Option func(*Options)

type Options struct {
	RowIDWidth    int         // width of the leading id column; default: 32
	ColumnWidth   int         // width of every result column; default: 14
	ColumnDivider string      // string between columns; default: " "
	RowDivider    string      // repeated between header and body; default: DividerNone
	HeaderStyle   HeaderStyle // defines how column names are printed in the header
	MaxWidth      int         // total width limit; 0 means use the terminal width of stdout, if any
}

func DefaultOptions() *Options {
	return &Options{
		RowIDWidth:    32,
		ColumnWidth:   14,
		ColumnDivider: " ",
		RowDivider:    DividerNone,
		HeaderStyle:   HeaderStyleNormal,
	}
}

// WithRowIDWidth sets the width of the leading id column
func WithRowIDWidth(width int) Option {
	return func(opts *Options) {
		opts.RowIDWidth = width
	}
}

// WithColumnWidth sets the width of the result columns
func WithColumnWidth(width int) Option {
	return func(opts *Options) {
		opts.ColumnWidth = width
	}
}

// WithColumnDivider sets the string written between columns
func WithColumnDivider(divider string) Option {
	return func(opts *Options) {
		opts.ColumnDivider = divider
	}
}

// WithRowDivider sets the divider written between header and body
func WithRowDivider(divider string) Option {
	return func(opts *Options) {
		opts.RowDivider = divider
	}
}

// WithHeaderStyle sets how column names are printed in the header
func WithHeaderStyle(style HeaderStyle) Option {
	return func(opts *Options) {
		opts.HeaderStyle = style
	}
}

// WithMaxWidth limits the total width of the output, scaling the result
// columns down if necessary
func WithMaxWidth(width int) Option {
	return func(opts *Options) {
		opts.MaxWidth = width
	}
}
