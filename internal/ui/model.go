package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/shopbook/bookdesk/internal/mutate"
)

type screen int

const (
	screenHome screen = iota
	screenLogin
	screenBrowse
	screenDetail
	screenAdd
	screenUpdate
	screenDelete
)

const (
	updatePageSize = 6
	deletePageSize = 5
	toastDuration  = 4 * time.Second
)

// Model is the root bubbletea model. One screen is active at a time; each
// screen owns its view state and re-fetches on entry.
type Model struct {
	opts   Options
	keys   keyMap
	theme  Theme
	styles Styles

	width  int
	height int

	screen     screen
	menuCursor int
	loading    bool

	toast    string
	toastErr bool
	toastSeq uint64

	confirm *confirmState

	login  loginState
	browse browseState
	detail detailState
	form   formState
	del    deleteState
}

// NewModel builds the root model in the home screen.
func NewModel(opts Options) Model {
	theme := ThemeByName(opts.ThemeName)
	return Model{
		opts:   opts,
		keys:   newKeyMap(),
		theme:  theme,
		styles: theme.Styles(),
		screen: screenHome,
	}
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.resize(msg.Width, msg.Height)
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case booksLoadedMsg:
		return m.handleBooksLoaded(msg)

	case bookLoadedMsg:
		return m.handleBookLoaded(msg)

	case generatedIDMsg:
		return m.handleGeneratedID(msg)

	case mutationDoneMsg:
		return m.handleMutationDone(msg)

	case loginDoneMsg:
		return m.handleLoginDone(msg)

	case registerDoneMsg:
		return m.handleRegisterDone(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Quit) && !m.typing() {
			return m, tea.Quit
		}
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
	}

	if m.confirm != nil {
		return m, nil
	}

	switch m.screen {
	case screenHome:
		return m.updateHome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenBrowse:
		return m.updateBrowse(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenAdd, screenUpdate:
		return m.updateForm(msg)
	case screenDelete:
		return m.updateDelete(msg)
	}
	return m, nil
}

// View satisfies tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var body string
	switch m.screen {
	case screenHome:
		body = m.viewHome()
	case screenLogin:
		body = m.viewLogin()
	case screenBrowse:
		body = m.viewBrowse()
	case screenDetail:
		body = m.viewDetail()
	case screenAdd, screenUpdate:
		body = m.viewForm()
	case screenDelete:
		body = m.viewDelete()
	}

	out := lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(), body, m.viewFooter())
	if m.confirm != nil {
		return m.overlayModal()
	}
	return out
}

// typing reports whether a text input currently captures plain keystrokes, in
// which case single-letter bindings must not fire.
func (m Model) typing() bool {
	switch m.screen {
	case screenLogin:
		return true
	case screenBrowse:
		return m.browse.searchFocus
	case screenDelete:
		return m.del.searchFocus
	case screenAdd:
		return true
	case screenUpdate:
		return m.form.editing || m.form.searchFocus
	}
	return false
}

// goTo switches screens. List-backed screens get a fresh view state seeded
// from the last snapshot so rows render immediately, then a full re-fetch
// replaces them.
func (m Model) goTo(target screen) (Model, tea.Cmd) {
	m.screen = target
	snap := m.opts.Store.Snapshot()
	switch target {
	case screenBrowse:
		m.browse = newBrowseState()
		if snap.HasData {
			m.browse.view.SetBooks(snap.Books)
		}
		m.loading = true
		return m, m.fetchBooksCmd()
	case screenAdd:
		m.form = newFormState(mutate.OpCreate)
		return m, tea.Batch(textinput.Blink, m.resetCreateForm())
	case screenUpdate:
		m.form = newFormState(mutate.OpUpdate)
		if snap.HasData {
			m.form.picker.SetBooks(snap.Books)
		}
		m.loading = true
		return m, m.fetchBooksCmd()
	case screenDelete:
		m.del = newDeleteState()
		if snap.HasData {
			m.del.view.SetBooks(snap.Books)
		}
		m.loading = true
		return m, m.fetchBooksCmd()
	case screenLogin:
		m.login = newLoginState()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) handleBooksLoaded(msg booksLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.opts.Store.Update(msg.books, msg.err)
	if msg.err != nil {
		m.opts.Logger.Warn("catalog fetch failed", zap.Error(msg.err))
		cmd := m.setToast("Could not load books: "+msg.err.Error(), true)
		return m, cmd
	}

	switch m.screen {
	case screenBrowse:
		m.browse.view.SetBooks(msg.books)
		m.browse.clampCursor()
	case screenUpdate:
		m.form.picker.SetBooks(msg.books)
		m.form.clampCursor()
	case screenDelete:
		m.del.view.SetBooks(msg.books)
		m.del.clampCursor()
	}
	return m, nil
}

func (m Model) handleBookLoaded(msg bookLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.opts.Logger.Warn("detail fetch failed", zap.Error(msg.err))
		m.screen = screenBrowse
		cmd := m.setToast("Could not load book: "+msg.err.Error(), true)
		return m, cmd
	}
	m.detail.book = msg.book
	m.detail.related = msg.related
	m.detail.initViewport(m.width, m.height)
	return m, nil
}

func (m Model) handleGeneratedID(msg generatedIDMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// The form keeps its prior id; this is a silent, logged failure.
		m.opts.Logger.Warn("generate id failed", zap.Error(msg.err))
		return m, nil
	}
	if m.form.flow != nil && m.form.flow.ApplyGeneratedID(msg.seq, msg.id) {
		m.opts.Logger.Debug("generated id applied", zap.String("id", msg.id))
	}
	return m, nil
}

func (m Model) handleMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	flow := m.flowFor(msg.op)
	if flow == nil {
		return m, nil
	}

	if msg.err != nil {
		if err := flow.Fail(msg.err); err != nil {
			m.opts.Logger.Warn("flow fail transition", zap.Error(err))
		}
		notice := flow.Notice()
		flow.Acknowledge()
		m.opts.Logger.Warn("mutation failed",
			zap.String("op", msg.op.String()), zap.Error(msg.err))
		cmd := m.setToast(notice, true)
		return m, cmd
	}

	if err := flow.Complete(); err != nil {
		m.opts.Logger.Warn("flow complete transition", zap.Error(err))
	}
	notice := flow.Notice()
	flow.Acknowledge()
	m.opts.Logger.Info("mutation succeeded", zap.String("op", msg.op.String()))

	cmds := []tea.Cmd{m.setToast(notice, false)}
	switch msg.op {
	case mutate.OpCreate:
		if cmd := m.resetCreateForm(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case mutate.OpUpdate:
		m.form.closeEditor()
		m.loading = true
		cmds = append(cmds, m.fetchBooksCmd())
	case mutate.OpDelete:
		// Re-list so the removed row disappears and the page clamps.
		m.loading = true
		cmds = append(cmds, m.fetchBooksCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) flowFor(op mutate.Op) *mutate.Flow {
	if op == mutate.OpDelete {
		return m.del.flow
	}
	if m.form.flow != nil && m.form.flow.Op() == op {
		return m.form.flow
	}
	return nil
}

func (m Model) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		// No token is persisted; the session stays anonymous.
		cmd := m.setToast("Login failed: "+msg.err.Error(), true)
		return m, cmd
	}
	if err := m.opts.Session.SetToken(msg.token); err != nil {
		cmd := m.setToast("Login failed: "+err.Error(), true)
		return m, cmd
	}
	m.screen = screenHome
	m.menuCursor = 0
	identity := m.opts.Session.Identity()
	m.opts.Logger.Info("logged in", zap.String("username", identity.Username))
	cmd := m.setToast("Welcome back, "+identity.Username, false)
	return m, cmd
}

func (m Model) handleRegisterDone(msg registerDoneMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		cmd := m.setToast("Registration failed: "+msg.err.Error(), true)
		return m, cmd
	}
	m.login.registering = false
	m.login.focus = 0
	m.login.applyFocus()
	cmd := m.setToast("Account created, you can log in now", false)
	return m, cmd
}

// setToast shows a transient status line and schedules its expiry.
func (m *Model) setToast(text string, isErr bool) tea.Cmd {
	m.toast = text
	m.toastErr = isErr
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}
