package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vedicvision/vvadmin/internal/collection"
)

// Column maps one record field to a browser table column
type Column struct {
	Title string
	Field string
	Width int

	// Render overrides the default string conversion for the cell
	Render func(collection.Record) string
}

// Loader fetches a fresh copy of the collection from the backend
type Loader func(ctx context.Context) ([]collection.Record, error)

// recordsMsg carries freshly loaded records into the browser
type recordsMsg struct {
	records []collection.Record
}

// errMsg carries a load failure into the browser
type errMsg struct {
	err error
}

// Browser is the interactive collection screen. Every admin collection
// (users, plans, forms, submissions) runs through the same model: number
// keys sort by column, "/" filters, tab cycles categories, r reloads.
type Browser struct {
	title   string
	view    *collection.View
	columns []Column
	load    Loader

	table     table.Model
	filter    textinput.Model
	filtering bool

	detail     func(collection.Record) string
	detailOpen bool

	ctx      context.Context
	loading  bool
	err      error
	quitting bool
	width    int
	height   int

	styles Styles
}

// BrowserOption configures a Browser
type BrowserOption func(*Browser)

// WithDetail sets the renderer used when a row is opened with enter
func WithDetail(render func(collection.Record) string) BrowserOption {
	return func(b *Browser) {
		b.detail = render
	}
}

// NewBrowser creates a collection browser over the given view
func NewBrowser(ctx context.Context, title string, view *collection.View, columns []Column, load Loader, opts ...BrowserOption) *Browser {
	tableColumns := make([]table.Column, len(columns))
	for i, col := range columns {
		tableColumns[i] = table.Column{Title: col.Title, Width: col.Width}
	}

	t := table.New(
		table.WithColumns(tableColumns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	tableStyles.Selected = tableStyles.Selected.
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("208")).
		Bold(false)
	t.SetStyles(tableStyles)

	filter := textinput.New()
	filter.Placeholder = "type to filter..."
	filter.CharLimit = 80

	b := &Browser{
		title:   title,
		view:    view,
		columns: columns,
		load:    load,
		table:   t,
		filter:  filter,
		ctx:     ctx,
		loading: true,
		styles:  DefaultStyles(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Init starts the first load (required by Bubble Tea)
func (b *Browser) Init() tea.Cmd {
	return b.loadCmd()
}

func (b *Browser) loadCmd() tea.Cmd {
	return func() tea.Msg {
		records, err := b.load(b.ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return recordsMsg{records: records}
	}
}

// Update handles messages and updates the model state (required by Bubble Tea)
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return b.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		if msg.Height > 10 {
			b.table.SetHeight(msg.Height - 8)
		}
		return b, nil

	case recordsMsg:
		b.loading = false
		b.err = nil
		b.view.SetRecords(msg.records)
		b.refreshRows()
		return b, nil

	case errMsg:
		b.loading = false
		b.err = msg.err
		return b, nil
	}

	return b, nil
}

func (b *Browser) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		b.quitting = true
		return b, tea.Quit
	}

	if b.filtering {
		switch msg.String() {
		case "enter":
			b.filtering = false
			b.filter.Blur()
		case "esc":
			b.filtering = false
			b.filter.Blur()
			b.filter.SetValue("")
			b.view.SetFilter("")
			b.refreshRows()
		default:
			var cmd tea.Cmd
			b.filter, cmd = b.filter.Update(msg)
			b.view.SetFilter(b.filter.Value())
			b.refreshRows()
			return b, cmd
		}
		return b, nil
	}

	if b.detailOpen {
		switch msg.String() {
		case "esc", "enter", "q":
			b.detailOpen = false
		}
		return b, nil
	}

	switch key := msg.String(); key {
	case "q", "esc":
		b.quitting = true
		return b, tea.Quit

	case "/":
		b.filtering = true
		return b, b.filter.Focus()

	case "r":
		b.loading = true
		return b, b.loadCmd()

	case "tab":
		b.cycleCategory()
		b.refreshRows()
		return b, nil

	case "enter":
		if b.detail != nil && len(b.view.Rows()) > 0 {
			b.detailOpen = true
		}
		return b, nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index, _ := strconv.Atoi(key)
		if index <= len(b.columns) {
			b.view.SortBy(b.columns[index-1].Field)
			b.refreshRows()
		}
		return b, nil
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

// cycleCategory advances to the next category, wrapping back to the first
func (b *Browser) cycleCategory() {
	names := b.view.CategoryNames()
	if len(names) == 0 {
		return
	}
	current := b.view.Category()
	for i, name := range names {
		if name == current {
			b.view.SetCategory(names[(i+1)%len(names)])
			return
		}
	}
	b.view.SetCategory(names[0])
}

// refreshRows re-runs the view pipeline and pushes the result into the table
func (b *Browser) refreshRows() {
	records := b.view.Rows()
	rows := make([]table.Row, len(records))
	for i, record := range records {
		row := make(table.Row, len(b.columns))
		for j, col := range b.columns {
			if col.Render != nil {
				row[j] = col.Render(record)
			} else {
				row[j] = record.String(col.Field)
			}
		}
		rows[i] = row
	}
	b.table.SetRows(rows)
	if b.table.Cursor() >= len(rows) && len(rows) > 0 {
		b.table.SetCursor(len(rows) - 1)
	}
}

// Selected returns the record under the cursor, or nil when the view is empty
func (b *Browser) Selected() collection.Record {
	rows := b.view.Rows()
	cursor := b.table.Cursor()
	if cursor < 0 || cursor >= len(rows) {
		return nil
	}
	return rows[cursor]
}

// View renders the browser (required by Bubble Tea)
func (b *Browser) View() string {
	if b.quitting {
		return ""
	}

	var out strings.Builder
	out.WriteString(b.styles.Title.Render(b.title))
	out.WriteString("\n")

	if b.detailOpen {
		if selected := b.Selected(); selected != nil {
			out.WriteString(b.styles.Border.Render(b.detail(selected)))
			out.WriteString("\n")
			out.WriteString(b.styles.Help.Render("esc back"))
			return out.String()
		}
		b.detailOpen = false
	}

	out.WriteString(b.renderStatusLine())
	out.WriteString("\n")

	if b.err != nil {
		out.WriteString(b.styles.Error.Render("Error: " + b.err.Error()))
		out.WriteString("\n")
	} else if b.loading {
		out.WriteString(b.styles.Muted.Render("Loading..."))
		out.WriteString("\n")
	} else {
		out.WriteString(b.table.View())
		out.WriteString("\n")
	}

	if b.filtering {
		out.WriteString(b.filter.View())
		out.WriteString("\n")
	}

	out.WriteString(b.renderHelpLine())
	return out.String()
}

func (b *Browser) renderStatusLine() string {
	parts := []string{
		fmt.Sprintf("%d of %d", len(b.view.Rows()), b.view.Len()),
		fmt.Sprintf("sort: %s %s", b.view.SortField(), b.view.Direction()),
	}
	if category := b.view.Category(); category != "" {
		parts = append(parts, "category: "+category)
	}
	if filter := b.view.Filter(); filter != "" {
		parts = append(parts, "filter: "+filter)
	}
	return b.styles.Muted.Render(strings.Join(parts, "  |  "))
}

func (b *Browser) renderHelpLine() string {
	var keys []string
	for i, col := range b.columns {
		if i >= 9 {
			break
		}
		keys = append(keys, fmt.Sprintf("%d %s", i+1, strings.ToLower(col.Title)))
	}
	help := strings.Join(keys, " · ")
	help += " · / filter · r reload"
	if len(b.view.CategoryNames()) > 0 {
		help += " · tab category"
	}
	if b.detail != nil {
		help += " · enter detail"
	}
	help += " · q quit"
	return b.styles.Help.Render(help)
}
