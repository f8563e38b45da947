// Package grid holds the client-side view over a fetched result set:
// column filters, sort order, pagination and row selection. It knows
// nothing about terminals; the ui package paints what it exposes.
package grid

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jdlms/gcz-explorer/internal/columns"
	"github.com/jdlms/gcz-explorer/internal/render"
	"github.com/jdlms/gcz-explorer/internal/types"
)

// PageSizes are the selectable page sizes.
var PageSizes = []int{20, 50, 100}

// DefaultPageSize is the initial page size.
const DefaultPageSize = 50

// ErrPageSize is returned for a size outside PageSizes.
var ErrPageSize = errors.New("unsupported page size")

// Direction is a column sort direction.
type Direction int

const (
	Unsorted Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return ""
	}
}

// Model is the grid state for one module. It is not safe for concurrent
// use; the ui mutates it from the draw goroutine only.
type Model struct {
	rows []types.Row
	defs []columns.Descriptor // all columns, config order
	cols []columns.Descriptor // visible, pinned first

	filters  map[string]string
	sortBy   string
	sortDir  Direction
	pageSize int
	page     int

	selected  map[int]struct{} // indices into rows
	displayed []int            // indices into rows after filter and sort
}

// New creates an empty model with the default page size.
func New() *Model {
	return &Model{
		filters:  map[string]string{},
		pageSize: DefaultPageSize,
		selected: map[int]struct{}{},
	}
}

// SetRows replaces the result set. Selection and paging restart; filters
// and sort carry over.
func (m *Model) SetRows(rows []types.Row) {
	m.rows = rows
	m.selected = map[int]struct{}{}
	m.page = 0
	m.refresh()
}

// Rows is the unfiltered result set.
func (m *Model) Rows() []types.Row { return m.rows }

// SetColumns installs the column descriptors, hidden ones included.
func (m *Model) SetColumns(defs []columns.Descriptor) {
	m.defs = defs
	m.cols = columns.VisibleDescriptors(defs)
	m.refresh()
}

// Columns are the visible columns in display order.
func (m *Model) Columns() []columns.Descriptor { return m.cols }

// SortBy orders the rows by field. Unsorted restores fetch order.
func (m *Model) SortBy(field string, dir Direction) {
	if dir == Unsorted {
		field = ""
	}
	m.sortBy, m.sortDir = field, dir
	m.refresh()
}

// CycleSort steps field through ascending, descending and unsorted.
func (m *Model) CycleSort(field string) Direction {
	next := Ascending
	if m.sortBy == field {
		switch m.sortDir {
		case Ascending:
			next = Descending
		case Descending:
			next = Unsorted
		}
	}
	m.SortBy(field, next)
	return next
}

// Sort reports the current sort field and direction.
func (m *Model) Sort() (string, Direction) { return m.sortBy, m.sortDir }

// SetFilter keeps only rows whose field contains text, case-insensitively.
// An empty text removes the filter.
func (m *Model) SetFilter(field, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		delete(m.filters, field)
	} else {
		m.filters[field] = strings.ToLower(text)
	}
	m.page = 0
	m.refresh()
}

// Filter is the active filter text for field.
func (m *Model) Filter(field string) string { return m.filters[field] }

// ClearFilters removes every column filter.
func (m *Model) ClearFilters() {
	m.filters = map[string]string{}
	m.page = 0
	m.refresh()
}

// Displayed is every row that passes the filters, in sort order, across
// all pages.
func (m *Model) Displayed() []types.Row {
	out := make([]types.Row, len(m.displayed))
	for i, idx := range m.displayed {
		out[i] = m.rows[idx]
	}
	return out
}

// DisplayedCount is len(Displayed()) without the copy.
func (m *Model) DisplayedCount() int { return len(m.displayed) }

// Page is the rows of the current page.
func (m *Model) Page() []types.Row {
	lo, hi := m.bounds()
	out := make([]types.Row, 0, hi-lo)
	for _, idx := range m.displayed[lo:hi] {
		out = append(out, m.rows[idx])
	}
	return out
}

// PageIndex is the zero-based current page.
func (m *Model) PageIndex() int { return m.page }

// PageSize is the current page size.
func (m *Model) PageSize() int { return m.pageSize }

// SetPageSize changes the page size and returns to the first page.
func (m *Model) SetPageSize(n int) error {
	if !slices.Contains(PageSizes, n) {
		return fmt.Errorf("%w: %d", ErrPageSize, n)
	}
	m.pageSize = n
	m.page = 0
	return nil
}

// CyclePageSize moves to the next entry of PageSizes.
func (m *Model) CyclePageSize() int {
	i := slices.Index(PageSizes, m.pageSize)
	m.pageSize = PageSizes[(i+1)%len(PageSizes)]
	m.page = 0
	return m.pageSize
}

// PageCount is at least 1, even with no rows.
func (m *Model) PageCount() int {
	if len(m.displayed) == 0 {
		return 1
	}
	return (len(m.displayed) + m.pageSize - 1) / m.pageSize
}

// NextPage advances unless on the last page.
func (m *Model) NextPage() bool {
	if m.page+1 >= m.PageCount() {
		return false
	}
	m.page++
	return true
}

// PrevPage goes back unless on the first page.
func (m *Model) PrevPage() bool {
	if m.page == 0 {
		return false
	}
	m.page--
	return true
}

// ToggleSelect flips the selection of the i-th row of the current page.
func (m *Model) ToggleSelect(i int) bool {
	idx, ok := m.pageRow(i)
	if !ok {
		return false
	}
	if _, sel := m.selected[idx]; sel {
		delete(m.selected, idx)
		return false
	}
	m.selected[idx] = struct{}{}
	return true
}

// IsSelected reports whether the i-th row of the current page is selected.
func (m *Model) IsSelected(i int) bool {
	idx, ok := m.pageRow(i)
	if !ok {
		return false
	}
	_, sel := m.selected[idx]
	return sel
}

// SelectAllPage selects every row of the current page, or clears them if
// they were all selected already.
func (m *Model) SelectAllPage() {
	lo, hi := m.bounds()
	page := m.displayed[lo:hi]
	all := len(page) > 0
	for _, idx := range page {
		if _, ok := m.selected[idx]; !ok {
			all = false
			break
		}
	}
	for _, idx := range page {
		if all {
			delete(m.selected, idx)
		} else {
			m.selected[idx] = struct{}{}
		}
	}
}

// ClearSelection deselects everything.
func (m *Model) ClearSelection() {
	m.selected = map[int]struct{}{}
}

// SelectedCount is the number of selected rows.
func (m *Model) SelectedCount() int { return len(m.selected) }

// SelectedRows returns the selected rows in fetch order. Rows hidden by a
// filter stay selected.
func (m *Model) SelectedRows() []types.Row {
	idxs := make([]int, 0, len(m.selected))
	for idx := range m.selected {
		idxs = append(idxs, idx)
	}
	slices.Sort(idxs)
	out := make([]types.Row, len(idxs))
	for i, idx := range idxs {
		out[i] = m.rows[idx]
	}
	return out
}

func (m *Model) pageRow(i int) (int, bool) {
	lo, hi := m.bounds()
	if i < 0 || lo+i >= hi {
		return 0, false
	}
	return m.displayed[lo+i], true
}

func (m *Model) bounds() (int, int) {
	lo := m.page * m.pageSize
	if lo > len(m.displayed) {
		lo = len(m.displayed)
	}
	hi := min(lo+m.pageSize, len(m.displayed))
	return lo, hi
}

func (m *Model) refresh() {
	m.displayed = m.displayed[:0]
	for i, row := range m.rows {
		if m.matches(row) {
			m.displayed = append(m.displayed, i)
		}
	}
	if m.sortDir != Unsorted && m.sortBy != "" {
		variant := m.variantOf(m.sortBy)
		slices.SortStableFunc(m.displayed, func(a, b int) int {
			c := compareValues(m.rows[a][m.sortBy], m.rows[b][m.sortBy], variant)
			if m.sortDir == Descending {
				return -c
			}
			return c
		})
	}
	if m.page >= m.PageCount() {
		m.page = m.PageCount() - 1
	}
}

func (m *Model) matches(row types.Row) bool {
	for field, text := range m.filters {
		if !strings.Contains(strings.ToLower(render.ToString(row[field])), text) {
			return false
		}
	}
	return true
}

func (m *Model) variantOf(field string) render.Variant {
	for _, d := range m.defs {
		if d.Field == field {
			return d.Variant
		}
	}
	return render.Plain
}

// compareValues orders blanks first, then by the column's natural type:
// instants for dates, numbers for amounts and numeric-looking values,
// folded text otherwise.
func compareValues(a, b any, variant render.Variant) int {
	ab, bb := render.ToString(a) == "", render.ToString(b) == ""
	switch {
	case ab && bb:
		return 0
	case ab:
		return -1
	case bb:
		return 1
	}
	if variant == render.Date {
		ta, okA := render.ToTime(a)
		tb, okB := render.ToTime(b)
		if okA && okB {
			return ta.Compare(tb)
		}
	}
	da, okA := render.ToDecimal(a)
	db, okB := render.ToDecimal(b)
	if okA && okB {
		return da.Cmp(db)
	}
	return cmp.Compare(strings.ToLower(render.ToString(a)), strings.ToLower(render.ToString(b)))
}
