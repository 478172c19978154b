package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shopbook/bookdesk/internal/catalog"
)

// detailState shows a single fetched book with its description in a
// scrollable viewport and a strip of same-category titles below.
type detailState struct {
	book     *catalog.Book
	related  []catalog.Book
	viewport viewport.Model
	ready    bool
}

func (s *detailState) initViewport(width, height int) {
	w := width - 8
	if w < 20 {
		w = 20
	}
	h := height - 14
	if h < 3 {
		h = 3
	}
	s.viewport = viewport.New(w, h)
	if s.book != nil {
		s.viewport.SetContent(lipgloss.NewStyle().Width(w).Render(s.book.Description))
	}
	s.ready = true
}

func (s *detailState) resize(width, height int) {
	if s.ready {
		s.initViewport(width, height)
	}
}

func (m Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Back) {
			m.screen = screenBrowse
			m.detail = detailState{}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.detail.viewport, cmd = m.detail.viewport.Update(msg)
	return m, cmd
}

func (m Model) viewDetail() string {
	if m.detail.book == nil {
		return m.pad().Render(
			m.styles.Muted.Render("Fetching book…"))
	}
	book := m.detail.book

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(book.Name))
	b.WriteString("\n")
	b.WriteString(m.styles.Badge.Render(catalog.CategoryLabel(book.Category)))
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render("#" + book.ID))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Label.Render("Author"))
	b.WriteString(m.styles.Text.Render(book.Author))
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Publisher"))
	b.WriteString(m.styles.Text.Render(book.Publisher))
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Price"))
	b.WriteString(m.priceCell(*book))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Box.Render(m.detail.viewport.View()))

	if len(m.detail.related) > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render("More in this category"))
		b.WriteString("\n")
		limit := len(m.detail.related)
		if limit > 4 {
			limit = 4
		}
		for _, rel := range m.detail.related[:limit] {
			b.WriteString("  " + m.styles.Text.Render(truncate(rel.Name, 40)))
			b.WriteString("  " + m.styles.Price.Render(formatVND(rel.FinalPrice())))
			b.WriteString("\n")
		}
	}

	return m.pad().Render(b.String())
}
