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

package filter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sim642/benchexec/pkg/table"
)

const (
	// idKey is the spec id of the row-id filter
	idKey = "id"
	// sentinelAll marks a control without constraint; such specs are skipped
	sentinelAll = "all"
	// valueDiff requests the disagreement filter for the spec's column
	valueDiff = "diff"
)

// ErrInvalidFilterID is returned for spec ids that are neither "id" nor of
// the form "<tool>_<label>_<columnIndex>".
var ErrInvalidFilterID = errors.New("invalid filter id")

// Spec is one user-supplied filter. An absent value is represented by the
// empty string; such specs impose no constraint.
type Spec struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// CategoryValue returns the filter value that selects rows whose result
// category equals category. The filter grammar tags categories with a
// single trailing space to keep them apart from plain status values.
func CategoryValue(category string) string {
	return category + " "
}

// Matcher is the compiled, ready-to-apply representation of a filter spec
// list. It is immutable after compilation; rebuild it whenever the spec
// list changes.
type Matcher struct {
	id    *idFilter
	diffs []diffFilter
	tools map[string]map[int][]subFilter
}

// idFilter keeps rows whose href equals or contains value
type idFilter struct {
	value string
}

func (f *idFilter) matches(href string) bool {
	return strings.Contains(href, f.value)
}

// diffFilter keeps rows on which the tools disagree at column col; it is
// global, not tool-scoped
type diffFilter struct {
	col int
}

// subFilter is one OR-branch of a column's filter list: exactly one of a
// numeric range, a category or a plain value filter.
//
// matches returns known == false when the underlying value is missing; the
// caller must then leave its running column verdict untouched, so a later
// branch of the same OR list can still pass.
type subFilter interface {
	matches(res *table.Result, col int) (pass bool, known bool)
}

type rangeFilter struct {
	min, max float64
}

func (f rangeFilter) matches(res *table.Result, col int) (bool, bool) {
	v := res.Value(col)
	if v.IsMissing() {
		return false, false
	}
	n := v.Number()
	// a NaN on either side fails both comparisons
	return n >= f.min && n <= f.max, true
}

type categoryFilter struct {
	category string
}

func (f categoryFilter) matches(res *table.Result, col int) (bool, bool) {
	if res == nil {
		return false, false
	}
	return res.Category == f.category, true
}

type valueFilter struct {
	value string
}

func (f valueFilter) matches(res *table.Result, col int) (bool, bool) {
	v := res.Value(col)
	if v.IsMissing() {
		return false, false
	}
	return strings.Contains(*v.Raw, f.value), true
}

// Compile turns a list of filter specs into a Matcher. Specs without a
// value and specs with the "all" sentinel are skipped; a malformed id is
// rejected with ErrInvalidFilterID. Spec order is irrelevant since the
// sub-filters of one column are OR-combined.
func Compile(specs []Spec) (*Matcher, error) {
	m := &Matcher{
		tools: make(map[string]map[int][]subFilter),
	}

	for _, spec := range specs {
		value := spec.Value
		if value == "" || strings.TrimSpace(value) == sentinelAll {
			continue
		}

		if spec.ID == idKey {
			m.id = &idFilter{value: value}
			continue
		}

		tool, col, err := parseFilterID(spec.ID)
		if err != nil {
			return nil, err
		}

		if value == valueDiff {
			m.diffs = append(m.diffs, diffFilter{col: col})
			continue
		}

		cols := m.tools[tool]
		if cols == nil {
			cols = make(map[int][]subFilter)
			m.tools[tool] = cols
		}
		cols[col] = append(cols[col], parseSubFilter(value))
	}

	return m, nil
}

// parseFilterID splits an id of the form "<tool>_<label>_<columnIndex>".
// The label may itself contain underscores, so the column index is taken
// from the last segment.
func parseFilterID(id string) (tool string, col int, err error) {
	parts := strings.Split(id, "_")
	if len(parts) < 3 {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidFilterID, id)
	}
	col, err = strconv.Atoi(parts[len(parts)-1])
	if err != nil || col < 0 {
		return "", 0, fmt.Errorf("%w: %q: bad column index %q", ErrInvalidFilterID, id, parts[len(parts)-1])
	}
	return parts[0], col, nil
}

func parseSubFilter(value string) subFilter {
	if strings.Contains(value, ":") {
		minStr, maxStr, _ := strings.Cut(value, ":")
		return rangeFilter{
			min: parseBound(minStr, math.Inf(-1)),
			max: parseBound(maxStr, math.Inf(1)),
		}
	}
	if strings.HasSuffix(value, " ") {
		return categoryFilter{category: strings.TrimSuffix(value, " ")}
	}
	return valueFilter{value: value}
}

// parseBound coerces one side of a numeric range; an empty side is
// unbounded, unparseable text becomes NaN and thereby never matches
func parseBound(s string, unbounded float64) float64 {
	if s == "" {
		return unbounded
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}
