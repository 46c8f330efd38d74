// Package collection implements the reusable sort/filter model every
// resource screen presents: an ordered list of records with client-side
// sort-by-field and text/category filtering, independent of what the
// records represent.
package collection

import (
	"fmt"
	"sort"
	"strings"
)

// Direction is a sort direction
type Direction int

const (
	// Ascending sorts smallest first
	Ascending Direction = iota
	// Descending sorts largest first
	Descending
)

// String returns "asc" or "desc"
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Predicate is a category filter over record fields, ANDed with the text
// filter
type Predicate func(Record) bool

// View presents a fetched record sequence with derived sort and filter
// state. The underlying slice is never mutated; Rows recomputes the
// derived output on demand. State is transient and rebuilt from each
// fresh fetch.
type View struct {
	records []Record

	sortField string
	direction Direction

	filterText   string
	searchFields []string

	categories map[string]Predicate
	category   string
}

// Option configures a View
type Option func(*View)

// WithCategories registers named category predicates
func WithCategories(categories map[string]Predicate) Option {
	return func(v *View) {
		v.categories = categories
	}
}

// WithDefaultSort sets the initial sort field and direction
func WithDefaultSort(field string, direction Direction) Option {
	return func(v *View) {
		v.sortField = field
		v.direction = direction
	}
}

// NewView creates a view. searchFields are the string fields matched by
// the text filter.
func NewView(searchFields []string, opts ...Option) *View {
	v := &View{
		searchFields: searchFields,
		sortField:    "id",
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetRecords replaces the view's records. Overlapping refreshes are
// last-write-wins; the most recently completing fetch overwrites state.
func (v *View) SetRecords(records []Record) {
	v.records = records
}

// Len returns the number of underlying records, before filtering
func (v *View) Len() int {
	return len(v.records)
}

// SortBy selects the sort field. Selecting the current field toggles the
// direction; selecting a new field resets it to ascending.
func (v *View) SortBy(field string) {
	if v.sortField == field {
		if v.direction == Ascending {
			v.direction = Descending
		} else {
			v.direction = Ascending
		}
		return
	}
	v.sortField = field
	v.direction = Ascending
}

// SortField returns the current sort field
func (v *View) SortField() string {
	return v.sortField
}

// Direction returns the current sort direction
func (v *View) Direction() Direction {
	return v.direction
}

// SetFilter sets the text filter. Empty text passes everything.
func (v *View) SetFilter(text string) {
	v.filterText = text
}

// Filter returns the current text filter
func (v *View) Filter() string {
	return v.filterText
}

// SetCategory selects a named category predicate; unknown names clear it
func (v *View) SetCategory(name string) {
	if _, ok := v.categories[name]; ok {
		v.category = name
		return
	}
	v.category = ""
}

// Category returns the active category name
func (v *View) Category() string {
	return v.category
}

// CategoryNames returns the registered category names in sorted order
func (v *View) CategoryNames() []string {
	names := make([]string, 0, len(v.categories))
	for name := range v.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rows returns the filtered, sorted records. The sort is stable: records
// with equal keys keep the relative order of the underlying fetch.
func (v *View) Rows() []Record {
	rows := make([]Record, 0, len(v.records))
	for _, record := range v.records {
		if v.matches(record) {
			rows = append(rows, record)
		}
	}

	if v.sortField != "" {
		field := v.sortField
		sort.SliceStable(rows, func(i, j int) bool {
			cmp := compareValues(rows[i][field], rows[j][field])
			if v.direction == Descending {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	return rows
}

// matches applies the text filter ANDed with the category predicate
func (v *View) matches(record Record) bool {
	if v.category != "" {
		if pred := v.categories[v.category]; pred != nil && !pred(record) {
			return false
		}
	}

	if v.filterText == "" {
		return true
	}

	needle := strings.ToLower(v.filterText)
	for _, field := range v.searchFields {
		if strings.Contains(strings.ToLower(record.String(field)), needle) {
			return true
		}
	}
	return false
}

// compareValues orders two field values: textual values compare
// case-insensitively, numerics natively, bools false before true. Mixed
// or unknown types fall back to their string form. Nil sorts first.
func compareValues(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			return strings.Compare(strings.ToLower(as), strings.ToLower(bs))
		}
	}

	if an, aok := toFloat(a); aok {
		if bn, bok := toFloat(b); bok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			default:
				return 0
			}
		}
	}

	if ab, aok := a.(bool); aok {
		if bb, bok := b.(bool); bok {
			switch {
			case ab == bb:
				return 0
			case bb:
				return -1
			default:
				return 1
			}
		}
	}

	return strings.Compare(strings.ToLower(fmt.Sprint(a)), strings.ToLower(fmt.Sprint(b)))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
