package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shopbook/bookdesk/internal/mutate"
	"github.com/shopbook/bookdesk/internal/state"
)

// deleteState is the removal screen: a paged, searchable list where enter
// arms the delete flow on the selected row.
type deleteState struct {
	view        state.ViewState
	search      textinput.Model
	searchFocus bool
	cursor      int
	flow        *mutate.Flow
}

func newDeleteState() deleteState {
	search := textinput.New()
	search.Placeholder = "book title"
	search.CharLimit = 80
	return deleteState{
		view:   state.NewViewState(deletePageSize),
		search: search,
		flow:   mutate.NewFlow(mutate.OpDelete),
	}
}

func (s *deleteState) clampCursor() {
	n := len(s.view.Visible())
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (m Model) updateDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.del.searchFocus {
		switch keyMsg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.del.searchFocus = false
			m.del.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.del.search, cmd = m.del.search.Update(msg)
		m.del.view.SetSearch(m.del.search.Value())
		m.del.clampCursor()
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		m.screen = screenHome
		return m, nil

	case key.Matches(keyMsg, m.keys.Search):
		m.del.searchFocus = true
		m.del.search.Focus()
		return m, textinput.Blink

	case key.Matches(keyMsg, m.keys.Up):
		if m.del.cursor > 0 {
			m.del.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.del.cursor < len(m.del.view.Visible())-1 {
			m.del.cursor++
		}

	case key.Matches(keyMsg, m.keys.NextPage):
		m.del.view.NextPage()
		m.del.clampCursor()

	case key.Matches(keyMsg, m.keys.PrevPage):
		m.del.view.PrevPage()
		m.del.clampCursor()

	case key.Matches(keyMsg, m.keys.Refresh):
		m.loading = true
		return m, m.fetchBooksCmd()

	case key.Matches(keyMsg, m.keys.Enter):
		visible := m.del.view.Visible()
		if m.del.cursor < len(visible) {
			book := visible[m.del.cursor]
			if err := m.del.flow.ArmDelete(book.StoreID, book.Name); err != nil {
				cmd := m.setToast(err.Error(), true)
				return m, cmd
			}
			if err := m.del.flow.RequestConfirm(); err != nil {
				cmd := m.setToast(err.Error(), true)
				return m, cmd
			}
			m.confirm = &confirmState{
				prompt: m.del.flow.ConfirmPrompt(),
				flow:   m.del.flow,
			}
		}
	}
	return m, nil
}

func (m Model) viewDelete() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Delete books"))
	b.WriteString("\n")
	if m.del.searchFocus || m.del.search.Value() != "" {
		b.WriteString(m.styles.Muted.Render("search: "))
		b.WriteString(m.del.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visible := m.del.view.Visible()
	if len(visible) == 0 {
		b.WriteString(m.styles.Muted.Render("No books match."))
	}
	nameWidth := m.width/2 - 6
	if nameWidth < 16 {
		nameWidth = 16
	}
	for i, book := range visible {
		b.WriteString(m.browseRow(book, i == m.del.cursor, nameWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Danger.Render("enter deletes the selected book"))
	b.WriteString("  ")
	b.WriteString(m.styles.Faint.Render(
		fmt.Sprintf("page %d/%d", m.del.view.Page, m.del.view.PageCount())))
	return m.pad().Render(b.String())
}
