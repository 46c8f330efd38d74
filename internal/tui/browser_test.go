package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedicvision/vvadmin/internal/collection"
)

func planColumns() []Column {
	return []Column{
		{Title: "ID", Field: "id", Width: 6},
		{Title: "Name", Field: "name", Width: 20},
		{Title: "Price", Field: "price", Width: 10},
	}
}

func planRecords() []collection.Record {
	return []collection.Record{
		{"id": 1, "name": "Premium", "price": 499.0, "is_active": true},
		{"id": 2, "name": "basic", "price": 199.0, "is_active": true},
		{"id": 3, "name": "Archive", "price": 99.0, "is_active": false},
	}
}

func newTestBrowser(t *testing.T, opts ...BrowserOption) *Browser {
	t.Helper()

	view := collection.NewView([]string{"name"}, collection.WithCategories(map[string]collection.Predicate{
		"all":      func(collection.Record) bool { return true },
		"active":   func(r collection.Record) bool { return r.Bool("is_active") },
		"inactive": func(r collection.Record) bool { return !r.Bool("is_active") },
	}))

	load := func(ctx context.Context) ([]collection.Record, error) {
		return planRecords(), nil
	}

	return NewBrowser(context.Background(), "Plans", view, planColumns(), load, opts...)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestBrowserLoadsRecords(t *testing.T) {
	b := newTestBrowser(t)

	msg := b.Init()()
	records, ok := msg.(recordsMsg)
	require.True(t, ok)

	model, _ := b.Update(records)
	b = model.(*Browser)

	assert.False(t, b.loading)
	assert.Equal(t, 3, len(b.table.Rows()))
}

func TestBrowserSortKeyTogglesColumn(t *testing.T) {
	b := newTestBrowser(t)
	model, _ := b.Update(recordsMsg{records: planRecords()})
	b = model.(*Browser)

	model, _ = b.Update(keyRune('2'))
	b = model.(*Browser)
	assert.Equal(t, "name", b.view.SortField())
	assert.Equal(t, collection.Ascending, b.view.Direction())

	// First row is "Archive" under case-insensitive ascending name sort
	assert.Equal(t, "Archive", b.table.Rows()[0][1])

	model, _ = b.Update(keyRune('2'))
	b = model.(*Browser)
	assert.Equal(t, collection.Descending, b.view.Direction())
	assert.Equal(t, "Premium", b.table.Rows()[0][1])
}

func TestBrowserSortKeyOutOfRangeIgnored(t *testing.T) {
	b := newTestBrowser(t)
	model, _ := b.Update(recordsMsg{records: planRecords()})
	b = model.(*Browser)

	model, _ = b.Update(keyRune('9'))
	b = model.(*Browser)
	assert.Equal(t, "id", b.view.SortField())
}

func TestBrowserFiltering(t *testing.T) {
	b := newTestBrowser(t)
	model, _ := b.Update(recordsMsg{records: planRecords()})
	b = model.(*Browser)

	model, _ = b.Update(keyRune('/'))
	b = model.(*Browser)
	require.True(t, b.filtering)

	model, _ = b.Update(keyRune('p'))
	b = model.(*Browser)
	assert.Equal(t, 1, len(b.table.Rows()))
	assert.Equal(t, "Premium", b.table.Rows()[0][1])

	// Esc clears the filter and leaves filtering mode
	model, _ = b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	b = model.(*Browser)
	assert.False(t, b.filtering)
	assert.Equal(t, 3, len(b.table.Rows()))
}

func TestBrowserCategoryCycling(t *testing.T) {
	b := newTestBrowser(t)
	model, _ := b.Update(recordsMsg{records: planRecords()})
	b = model.(*Browser)

	// Categories cycle in sorted name order: active, all, inactive
	model, _ = b.Update(tea.KeyMsg{Type: tea.KeyTab})
	b = model.(*Browser)
	assert.Equal(t, "active", b.view.Category())
	assert.Equal(t, 2, len(b.table.Rows()))

	model, _ = b.Update(tea.KeyMsg{Type: tea.KeyTab})
	b = model.(*Browser)
	assert.Equal(t, "all", b.view.Category())
	assert.Equal(t, 3, len(b.table.Rows()))
}

func TestBrowserDetailView(t *testing.T) {
	b := newTestBrowser(t, WithDetail(func(r collection.Record) string {
		return "Plan: " + r.String("name")
	}))
	model, _ := b.Update(recordsMsg{records: planRecords()})
	b = model.(*Browser)

	model, _ = b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	b = model.(*Browser)
	require.True(t, b.detailOpen)
	assert.Contains(t, b.View(), "Plan: Premium")

	model, _ = b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	b = model.(*Browser)
	assert.False(t, b.detailOpen)
}

func TestBrowserCustomCellRenderer(t *testing.T) {
	columns := planColumns()
	columns[2].Render = func(r collection.Record) string {
		return "₹" + r.String("price")
	}

	view := collection.NewView([]string{"name"})
	b := NewBrowser(context.Background(), "Plans", view, columns, func(ctx context.Context) ([]collection.Record, error) {
		return planRecords(), nil
	})

	model, _ := b.Update(recordsMsg{records: planRecords()})
	b = model.(*Browser)
	assert.Equal(t, "₹499", b.table.Rows()[0][2])
}

func TestBrowserQuitKeys(t *testing.T) {
	b := newTestBrowser(t)
	model, cmd := b.Update(keyRune('q'))
	b = model.(*Browser)

	assert.True(t, b.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBrowserLoadError(t *testing.T) {
	view := collection.NewView([]string{"name"})
	b := NewBrowser(context.Background(), "Plans", view, planColumns(), func(ctx context.Context) ([]collection.Record, error) {
		return planRecords(), nil
	})

	model, _ := b.Update(errMsg{err: assert.AnError})
	b = model.(*Browser)

	assert.False(t, b.loading)
	assert.Contains(t, b.View(), "Error:")
}
