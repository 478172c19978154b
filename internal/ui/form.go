package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shopbook/bookdesk/internal/catalog"
	"github.com/shopbook/bookdesk/internal/mutate"
	"github.com/shopbook/bookdesk/internal/state"
)

const (
	fieldName = iota
	fieldCategory
	fieldPrice
	fieldDiscount
	fieldAuthor
	fieldPublisher
	fieldImage
	fieldSubmit
	fieldCount
)

// formState backs both the add screen and the update screen. For updates the
// picker is shown first; selecting a row opens the editor over its draft.
type formState struct {
	flow *mutate.Flow

	picker      state.ViewState
	search      textinput.Model
	searchFocus bool
	cursor      int

	editing bool
	focus   int
	catIdx  int
	inputs  [fieldCount]textinput.Model
}

func newFormState(op mutate.Op) formState {
	search := textinput.New()
	search.Placeholder = "book title"
	search.CharLimit = 80

	s := formState{
		flow:    mutate.NewFlow(op),
		picker:  state.NewViewState(updatePageSize),
		search:  search,
		editing: op == mutate.OpCreate,
	}

	placeholders := map[int]string{
		fieldName:      "title",
		fieldPrice:     "list price in đồng",
		fieldDiscount:  "percent off, 0 to 100",
		fieldAuthor:    "author",
		fieldPublisher: "publisher",
		fieldImage:     "path to a cover image, optional",
	}
	for i := range s.inputs {
		if i == fieldCategory || i == fieldSubmit {
			continue
		}
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 200
		s.inputs[i] = input
	}
	s.applyFocus()
	return s
}

func (s *formState) clampCursor() {
	n := len(s.picker.Visible())
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *formState) applyFocus() {
	for i := range s.inputs {
		if i == fieldCategory || i == fieldSubmit {
			continue
		}
		if i == s.focus {
			s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
}

func (s *formState) clearInputs() {
	for i := range s.inputs {
		s.inputs[i].SetValue("")
	}
	s.focus = fieldName
	s.catIdx = 0
	s.applyFocus()
}

// loadDraft fills the editor inputs from a draft.
func (s *formState) loadDraft(d mutate.Draft) {
	s.inputs[fieldName].SetValue(d.Name)
	if d.Price > 0 {
		s.inputs[fieldPrice].SetValue(strconv.FormatFloat(d.Price, 'f', -1, 64))
	} else {
		s.inputs[fieldPrice].SetValue("")
	}
	s.inputs[fieldDiscount].SetValue(strconv.Itoa(d.Discount))
	s.inputs[fieldAuthor].SetValue(d.Author)
	s.inputs[fieldPublisher].SetValue(d.Publisher)
	s.inputs[fieldImage].SetValue(d.NewImagePath)
	for i, code := range catalog.CategoryCodes() {
		if code == d.Category {
			s.catIdx = i
		}
	}
	s.focus = fieldName
	s.applyFocus()
}

func (s *formState) closeEditor() {
	s.editing = false
	s.clearInputs()
}

// buildDraft assembles a draft from the editor inputs. Unparseable numbers
// surface as field validation errors before the flow ever sees the draft.
func (s *formState) buildDraft() (mutate.Draft, error) {
	d := s.flow.Draft()
	d.Name = s.inputs[fieldName].Value()
	d.Author = s.inputs[fieldAuthor].Value()
	d.Publisher = s.inputs[fieldPublisher].Value()
	d.NewImagePath = strings.TrimSpace(s.inputs[fieldImage].Value())
	d.Category = catalog.CategoryCodes()[s.catIdx]

	priceText := strings.TrimSpace(s.inputs[fieldPrice].Value())
	if priceText == "" {
		d.Price = 0
	} else {
		price, err := strconv.ParseFloat(priceText, 64)
		if err != nil {
			return d, &catalog.ValidationError{Field: "price", Message: "must be a number"}
		}
		d.Price = price
	}

	discountText := strings.TrimSpace(s.inputs[fieldDiscount].Value())
	if discountText == "" {
		d.Discount = 0
	} else {
		discount, err := strconv.Atoi(discountText)
		if err != nil {
			return d, &catalog.ValidationError{Field: "discount", Message: "must be a whole number"}
		}
		d.Discount = discount
	}

	return d, nil
}

// resetCreateForm restarts the add flow on a blank draft and kicks off id
// generation for the default category.
func (m *Model) resetCreateForm() tea.Cmd {
	m.form.clearInputs()
	code := catalog.CategoryCodes()[0]
	if err := m.form.flow.StartEditing(mutate.Draft{Category: code}, "", ""); err != nil {
		return nil
	}
	return m.generateIDCmd(m.form.flow.NextIDSeq(), code)
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.screen == screenUpdate && !m.form.editing {
		return m.updatePicker(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.passToFormInput(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		if m.screen == screenUpdate {
			m.form.closeEditor()
			return m, nil
		}
		m.screen = screenHome
		return m, nil

	case key.Matches(keyMsg, m.keys.NextField):
		m.form.focus = (m.form.focus + 1) % fieldCount
		m.form.applyFocus()
		return m, nil

	case key.Matches(keyMsg, m.keys.PrevField):
		m.form.focus--
		if m.form.focus < 0 {
			m.form.focus = fieldCount - 1
		}
		m.form.applyFocus()
		return m, nil

	case key.Matches(keyMsg, m.keys.Left), key.Matches(keyMsg, m.keys.Right):
		if m.form.focus == fieldCategory {
			return m.cycleCategory(key.Matches(keyMsg, m.keys.Left))
		}
		return m.passToFormInput(msg)

	case keyMsg.Type == tea.KeyEnter:
		if m.form.focus == fieldSubmit {
			return m.submitForm()
		}
		m.form.focus = (m.form.focus + 1) % fieldCount
		m.form.applyFocus()
		return m, nil
	}

	return m.passToFormInput(msg)
}

// cycleCategory moves the category selector and requests a fresh id for it.
// The sequence token makes a late response for the previous category inert.
func (m Model) cycleCategory(reverse bool) (tea.Model, tea.Cmd) {
	codes := catalog.CategoryCodes()
	if reverse {
		m.form.catIdx = (m.form.catIdx - 1 + len(codes)) % len(codes)
	} else {
		m.form.catIdx = (m.form.catIdx + 1) % len(codes)
	}
	code := codes[m.form.catIdx]

	draft := m.form.flow.Draft()
	draft.Category = code
	draft.ID = ""
	if err := m.form.flow.Edit(draft); err != nil {
		return m, nil
	}
	return m, m.generateIDCmd(m.form.flow.NextIDSeq(), code)
}

func (m Model) passToFormInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	focus := m.form.focus
	if focus == fieldCategory || focus == fieldSubmit {
		return m, nil
	}
	var cmd tea.Cmd
	m.form.inputs[focus], cmd = m.form.inputs[focus].Update(msg)
	return m, cmd
}

// submitForm validates the draft and, when it passes, raises the
// confirmation modal. Validation failures keep the editor open.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	draft, err := m.form.buildDraft()
	if err != nil {
		cmd := m.setToast(err.Error(), true)
		return m, cmd
	}
	if err := m.form.flow.Edit(draft); err != nil {
		cmd := m.setToast(err.Error(), true)
		return m, cmd
	}
	if err := m.form.flow.RequestConfirm(); err != nil {
		cmd := m.setToast(err.Error(), true)
		return m, cmd
	}
	m.confirm = &confirmState{
		prompt: m.form.flow.ConfirmPrompt(),
		flow:   m.form.flow,
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.form.searchFocus {
		switch keyMsg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.form.searchFocus = false
			m.form.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.form.search, cmd = m.form.search.Update(msg)
		m.form.picker.SetSearch(m.form.search.Value())
		m.form.clampCursor()
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		m.screen = screenHome
		return m, nil

	case key.Matches(keyMsg, m.keys.Search):
		m.form.searchFocus = true
		m.form.search.Focus()
		return m, textinput.Blink

	case key.Matches(keyMsg, m.keys.Up):
		if m.form.cursor > 0 {
			m.form.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.form.cursor < len(m.form.picker.Visible())-1 {
			m.form.cursor++
		}

	case key.Matches(keyMsg, m.keys.NextPage):
		m.form.picker.NextPage()
		m.form.clampCursor()

	case key.Matches(keyMsg, m.keys.PrevPage):
		m.form.picker.PrevPage()
		m.form.clampCursor()

	case key.Matches(keyMsg, m.keys.Refresh):
		m.loading = true
		return m, m.fetchBooksCmd()

	case key.Matches(keyMsg, m.keys.Enter):
		visible := m.form.picker.Visible()
		if m.form.cursor < len(visible) {
			return m.openEditor(visible[m.form.cursor])
		}
	}
	return m, nil
}

func (m Model) openEditor(book catalog.Book) (tea.Model, tea.Cmd) {
	draft := mutate.DraftFromBook(book)
	if err := m.form.flow.StartEditing(draft, book.StoreID, book.Name); err != nil {
		cmd := m.setToast(err.Error(), true)
		return m, cmd
	}
	m.form.editing = true
	m.form.loadDraft(draft)
	return m, textinput.Blink
}

func (m Model) viewForm() string {
	if m.screen == screenUpdate && !m.form.editing {
		return m.viewPicker()
	}

	var b strings.Builder
	title := "Add a book"
	if m.form.flow.Op() == mutate.OpUpdate {
		title = "Edit " + truncate(m.form.flow.Draft().Name, 40)
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.formRow(fieldName, "Name"))
	b.WriteString(m.categoryRow())
	b.WriteString(m.idRow())
	b.WriteString(m.formRow(fieldPrice, "Price"))
	b.WriteString(m.formRow(fieldDiscount, "Discount %"))
	b.WriteString(m.formRow(fieldAuthor, "Author"))
	b.WriteString(m.formRow(fieldPublisher, "Publisher"))
	b.WriteString(m.formRow(fieldImage, "Cover image"))

	b.WriteString("\n")
	submit := "[ Save ]"
	if m.form.flow.Op() == mutate.OpCreate {
		submit = "[ Add book ]"
	}
	if m.form.focus == fieldSubmit {
		b.WriteString(m.styles.MenuFocus.Render(submit))
	} else {
		b.WriteString(m.styles.MenuItem.Render(submit))
	}

	box := m.styles.FocusBox.Render(b.String())
	return m.pad().Render(box)
}

func (m Model) formRow(field int, label string) string {
	return m.styles.Label.Render(label) + m.form.inputs[field].View() + "\n"
}

func (m Model) categoryRow() string {
	label := catalog.CategoryLabel(catalog.CategoryCodes()[m.form.catIdx])

	var cell string
	if m.form.focus == fieldCategory {
		cell = m.styles.Selected.Render("◀ " + label + " ▶")
	} else {
		cell = m.styles.Text.Render(label)
	}
	return m.styles.Label.Render("Category") + cell + "\n"
}

func (m Model) idRow() string {
	id := m.form.flow.Draft().ID
	if id == "" {
		id = "…"
	}
	return m.styles.Label.Render("ID") + m.styles.Muted.Render(id) + "\n"
}

func (m Model) viewPicker() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Update books"))
	b.WriteString("\n")
	if m.form.searchFocus || m.form.search.Value() != "" {
		b.WriteString(m.styles.Muted.Render("search: "))
		b.WriteString(m.form.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visible := m.form.picker.Visible()
	if len(visible) == 0 {
		b.WriteString(m.styles.Muted.Render("No books match."))
	}
	nameWidth := m.width/2 - 6
	if nameWidth < 16 {
		nameWidth = 16
	}
	for i, book := range visible {
		b.WriteString(m.browseRow(book, i == m.form.cursor, nameWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Faint.Render(
		fmt.Sprintf("page %d/%d", m.form.picker.Page, m.form.picker.PageCount())))
	return m.pad().Render(b.String())
}
