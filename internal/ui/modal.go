package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/shopbook/bookdesk/internal/mutate"
)

// confirmState is a modal prompt awaiting y/n. It either guards a mutation
// flow or, when logout is set, a session sign-out.
type confirmState struct {
	prompt string
	flow   *mutate.Flow
	logout bool
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "y", key.Matches(msg, m.keys.Enter):
		return m.confirmAccepted()
	case msg.String() == "n", key.Matches(msg, m.keys.Back):
		return m.confirmDismissed()
	}
	return m, nil
}

func (m Model) confirmAccepted() (tea.Model, tea.Cmd) {
	confirm := m.confirm
	m.confirm = nil

	if confirm.logout {
		username := m.opts.Session.Identity().Username
		if err := m.opts.Session.Clear(); err != nil {
			cmd := m.setToast("Sign out failed: "+err.Error(), true)
			return m, cmd
		}
		m.screen = screenHome
		m.menuCursor = 0
		m.opts.Logger.Info("logged out", zap.String("username", username))
		cmd := m.setToast("Signed out", false)
		return m, cmd
	}

	if err := confirm.flow.Confirm(); err != nil {
		m.opts.Logger.Warn("flow confirm transition", zap.Error(err))
		return m, nil
	}
	m.loading = true
	return m, m.submitCmd(confirm.flow)
}

func (m Model) confirmDismissed() (tea.Model, tea.Cmd) {
	confirm := m.confirm
	m.confirm = nil

	if confirm.logout {
		return m, nil
	}
	if err := confirm.flow.Cancel(); err != nil {
		m.opts.Logger.Warn("flow cancel transition", zap.Error(err))
		return m, nil
	}
	cmd := m.setToast(confirm.flow.Notice(), false)
	return m, cmd
}

// submitCmd dispatches the armed mutation once its modal is confirmed.
func (m *Model) submitCmd(flow *mutate.Flow) tea.Cmd {
	switch flow.Op() {
	case mutate.OpCreate:
		return m.createBookCmd(flow.Draft().Form())
	case mutate.OpUpdate:
		return m.updateBookCmd(flow.Target(), flow.Draft().Form())
	case mutate.OpDelete:
		return m.deleteBookCmd(flow.Target())
	}
	return nil
}

// overlayModal centers the confirmation box over a dimmed backdrop.
func (m Model) overlayModal() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Text.Render(m.confirm.prompt),
		"",
		m.styles.HelpKey.Render("y/enter")+m.styles.HelpDesc.Render(" confirm")+
			"   "+
			m.styles.HelpKey.Render("n/esc")+m.styles.HelpDesc.Render(" cancel"),
	)
	box := m.styles.ModalBox.Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
