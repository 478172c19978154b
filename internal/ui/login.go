package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginState drives the sign-in screen. With registering set, a third
// password-confirmation field appears and submission registers instead.
type loginState struct {
	username    textinput.Model
	password    textinput.Model
	confirmPass textinput.Model
	registering bool
	focus       int
}

func newLoginState() loginState {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword

	confirmPass := textinput.New()
	confirmPass.Placeholder = "confirm password"
	confirmPass.CharLimit = 64
	confirmPass.EchoMode = textinput.EchoPassword

	return loginState{
		username:    username,
		password:    password,
		confirmPass: confirmPass,
	}
}

func (s *loginState) fieldCount() int {
	if s.registering {
		return 3
	}
	return 2
}

func (s *loginState) applyFocus() {
	inputs := []*textinput.Model{&s.username, &s.password, &s.confirmPass}
	for i, input := range inputs {
		if i == s.focus {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.passToLoginInput(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		m.screen = screenHome
		m.menuCursor = 0
		return m, nil

	case key.Matches(keyMsg, m.keys.ToggleAuth):
		m.login.registering = !m.login.registering
		if m.login.focus >= m.login.fieldCount() {
			m.login.focus = 0
		}
		m.login.applyFocus()
		return m, nil

	case keyMsg.Type == tea.KeyTab, keyMsg.Type == tea.KeyDown:
		m.login.focus = (m.login.focus + 1) % m.login.fieldCount()
		m.login.applyFocus()
		return m, nil

	case keyMsg.Type == tea.KeyShiftTab, keyMsg.Type == tea.KeyUp:
		m.login.focus--
		if m.login.focus < 0 {
			m.login.focus = m.login.fieldCount() - 1
		}
		m.login.applyFocus()
		return m, nil

	case keyMsg.Type == tea.KeyEnter:
		if m.login.focus < m.login.fieldCount()-1 {
			m.login.focus++
			m.login.applyFocus()
			return m, nil
		}
		return m.submitLogin()
	}

	return m.passToLoginInput(msg)
}

func (m Model) passToLoginInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.login.focus {
	case 0:
		m.login.username, cmd = m.login.username.Update(msg)
	case 1:
		m.login.password, cmd = m.login.password.Update(msg)
	case 2:
		m.login.confirmPass, cmd = m.login.confirmPass.Update(msg)
	}
	return m, cmd
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	username := strings.TrimSpace(m.login.username.Value())
	password := m.login.password.Value()
	if username == "" || password == "" {
		cmd := m.setToast("Username and password are required", true)
		return m, cmd
	}

	if m.login.registering {
		// Mismatch is caught locally; the server never sees the attempt.
		if password != m.login.confirmPass.Value() {
			cmd := m.setToast("Passwords do not match", true)
			return m, cmd
		}
		m.loading = true
		return m, m.registerCmd(username, password)
	}

	m.loading = true
	return m, m.loginCmd(username, password)
}

func (m Model) viewLogin() string {
	var b strings.Builder

	title := "Sign in"
	if m.login.registering {
		title = "Create account"
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Label.Render("Username"))
	b.WriteString(m.login.username.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Password"))
	b.WriteString(m.login.password.View())
	b.WriteString("\n")
	if m.login.registering {
		b.WriteString(m.styles.Label.Render("Confirm"))
		b.WriteString(m.login.confirmPass.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hint := "ctrl+t to create an account instead"
	if m.login.registering {
		hint = "ctrl+t to sign in instead"
	}
	b.WriteString(m.styles.Faint.Render(hint))

	box := m.styles.Box.Render(b.String())
	return m.pad().Render(box)
}
