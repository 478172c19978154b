package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shopbook/bookdesk/internal/catalog"
	"github.com/shopbook/bookdesk/internal/state"
)

// browseState is the read-only catalog listing. It shows the whole filtered
// sequence at once, scrolling a cursor window instead of paging.
type browseState struct {
	view        state.ViewState
	search      textinput.Model
	searchFocus bool
	cursor      int
}

func newBrowseState() browseState {
	search := textinput.New()
	search.Placeholder = "book title"
	search.CharLimit = 80
	return browseState{
		view:   state.NewViewState(0),
		search: search,
	}
}

func (s *browseState) clampCursor() {
	n := len(s.view.Visible())
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// cycleOption advances current within options, wrapping. With reverse set it
// steps backwards.
func cycleOption(options []string, current string, reverse bool) string {
	if len(options) == 0 {
		return current
	}
	idx := 0
	for i, opt := range options {
		if opt == current {
			idx = i
			break
		}
	}
	if reverse {
		idx = (idx - 1 + len(options)) % len(options)
	} else {
		idx = (idx + 1) % len(options)
	}
	return options[idx]
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.browse.searchFocus {
		switch keyMsg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.browse.searchFocus = false
			m.browse.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.browse.search, cmd = m.browse.search.Update(msg)
		m.browse.view.SetSearch(m.browse.search.Value())
		m.browse.clampCursor()
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		m.screen = screenHome
		return m, nil

	case key.Matches(keyMsg, m.keys.Search):
		m.browse.searchFocus = true
		m.browse.search.Focus()
		return m, textinput.Blink

	case key.Matches(keyMsg, m.keys.Up):
		if m.browse.cursor > 0 {
			m.browse.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.browse.cursor < len(m.browse.view.Visible())-1 {
			m.browse.cursor++
		}

	case key.Matches(keyMsg, m.keys.Category):
		options := state.CategoryOptions(m.browse.view.Books)
		m.browse.view.Category = cycleOption(options, m.browse.view.Category, false)
		m.browse.view.Page = 1
		m.browse.clampCursor()

	case key.Matches(keyMsg, m.keys.Author):
		options := state.AuthorOptions(m.browse.view.Books)
		m.browse.view.Author = cycleOption(options, m.browse.view.Author, false)
		m.browse.view.Page = 1
		m.browse.clampCursor()

	case key.Matches(keyMsg, m.keys.SortPrice):
		switch m.browse.view.Sort {
		case state.SortNone:
			m.browse.view.Sort = state.SortPriceAsc
		case state.SortPriceAsc:
			m.browse.view.Sort = state.SortPriceDesc
		default:
			m.browse.view.Sort = state.SortNone
		}

	case key.Matches(keyMsg, m.keys.ClearFlt):
		m.browse.view.ResetFilters()
		m.browse.search.SetValue("")
		m.browse.cursor = 0

	case key.Matches(keyMsg, m.keys.Refresh):
		m.loading = true
		return m, m.fetchBooksCmd()

	case key.Matches(keyMsg, m.keys.Enter):
		visible := m.browse.view.Visible()
		if m.browse.cursor < len(visible) {
			m.screen = screenDetail
			m.detail = detailState{}
			m.loading = true
			return m, m.fetchDetailCmd(visible[m.browse.cursor].ID)
		}
	}
	return m, nil
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Browse books"))
	b.WriteString("\n")
	b.WriteString(m.browseFilterLine())
	b.WriteString("\n\n")

	visible := m.browse.view.Visible()
	if len(visible) == 0 {
		b.WriteString(m.styles.Muted.Render("No books match the current filters."))
		return m.pad().Render(b.String())
	}

	// Scroll a window of rows around the cursor.
	rows := m.height - 9
	if rows < 3 {
		rows = 3
	}
	start := 0
	if m.browse.cursor >= rows {
		start = m.browse.cursor - rows + 1
	}
	end := start + rows
	if end > len(visible) {
		end = len(visible)
	}

	nameWidth := m.width/2 - 6
	if nameWidth < 16 {
		nameWidth = 16
	}
	for i := start; i < end; i++ {
		b.WriteString(m.browseRow(visible[i], i == m.browse.cursor, nameWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Faint.Render(
		fmt.Sprintf("%d of %d books shown", len(visible), len(m.browse.view.Books))))

	return m.pad().Render(b.String())
}

func (m Model) browseRow(book catalog.Book, selected bool, nameWidth int) string {
	name := truncate(book.Name, nameWidth)
	if selected {
		name = m.styles.Selected.Render("> " + name)
	} else {
		name = m.styles.Text.Render("  " + name)
	}
	pad := nameWidth + 4 - lipgloss.Width(name)
	if pad > 0 {
		name += strings.Repeat(" ", pad)
	}
	author := m.styles.Muted.Render(truncate(book.Author, 20))
	return name + author + "  " + m.priceCell(book)
}

func (m Model) browseFilterLine() string {
	category := m.browse.view.Category
	if category != state.FilterAll {
		category = catalog.CategoryLabel(category)
	}

	var sortLabel string
	switch m.browse.view.Sort {
	case state.SortPriceAsc:
		sortLabel = "price ↑"
	case state.SortPriceDesc:
		sortLabel = "price ↓"
	default:
		sortLabel = "none"
	}

	parts := []string{
		m.styles.Muted.Render("category: ") + m.styles.Text.Render(category),
		m.styles.Muted.Render("author: ") + m.styles.Text.Render(m.browse.view.Author),
		m.styles.Muted.Render("sort: ") + m.styles.Text.Render(sortLabel),
	}
	line := strings.Join(parts, "   ")

	if m.browse.searchFocus || m.browse.search.Value() != "" {
		line += "\n" + m.styles.Muted.Render("search: ") + m.browse.search.View()
	}
	return line
}
