package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shopbook/bookdesk/internal/prefs"
)

type menuEntry struct {
	label     string
	target    screen
	adminOnly bool
}

// menuEntries returns the home menu for the current session. Catalog
// mutations only appear for an authenticated admin.
func (m Model) menuEntries() []menuEntry {
	entries := []menuEntry{
		{label: "Browse books", target: screenBrowse},
	}
	if m.opts.Session.IsAdmin() {
		entries = append(entries,
			menuEntry{label: "Add a book", target: screenAdd, adminOnly: true},
			menuEntry{label: "Update books", target: screenUpdate, adminOnly: true},
			menuEntry{label: "Delete books", target: screenDelete, adminOnly: true},
		)
	}
	if !m.opts.Session.Authenticated() {
		entries = append(entries, menuEntry{label: "Log in", target: screenLogin})
	}
	return entries
}

func (m Model) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	entries := m.menuEntries()
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.menuCursor < len(entries)-1 {
			m.menuCursor++
		}
	case key.Matches(keyMsg, m.keys.Enter):
		if m.menuCursor < len(entries) {
			return m.goTo(entries[m.menuCursor].target)
		}
	case key.Matches(keyMsg, m.keys.Logout):
		if m.opts.Session.Authenticated() {
			return m.armLogout()
		}
	case keyMsg.String() == "t":
		return m.toggleTheme()
	}
	return m, nil
}

// toggleTheme flips between the two bundled palettes and persists the choice.
func (m Model) toggleTheme() (Model, tea.Cmd) {
	name := "paper"
	if m.theme.Name == "paper" {
		name = "ink"
	}
	m.theme = ThemeByName(name)
	m.styles = m.theme.Styles()

	p := prefs.Prefs{Theme: name, Compact: m.opts.Compact}
	if err := prefs.Save(m.opts.PrefsPath, p); err != nil {
		cmd := m.setToast("Could not save preferences: "+err.Error(), true)
		return m, cmd
	}
	return m, nil
}

// armLogout raises the sign-out confirmation modal.
func (m Model) armLogout() (Model, tea.Cmd) {
	m.confirm = &confirmState{
		prompt: "Sign out of " + m.opts.Session.Identity().Username + "?",
		logout: true,
	}
	return m, nil
}

func (m Model) viewHome() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("SHOP BOOK"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Catalog administration"))
	b.WriteString("\n\n")

	entries := m.menuEntries()
	cursor := m.menuCursor
	if cursor >= len(entries) {
		cursor = len(entries) - 1
	}
	for i, entry := range entries {
		label := entry.label
		if entry.adminOnly {
			label += "  " + m.styles.Badge.Render("admin")
		}
		if i == cursor {
			b.WriteString(m.styles.MenuFocus.Render("> " + label))
		} else {
			b.WriteString(m.styles.MenuItem.Render("  " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hints := []string{"t switches theme"}
	if m.opts.Session.Authenticated() {
		hints = append(hints, "L signs out")
	}
	b.WriteString(m.styles.Faint.Render(strings.Join(hints, "   ")))

	return m.pad().Render(b.String())
}
