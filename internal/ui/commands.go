package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shopbook/bookdesk/internal/catalog"
	"github.com/shopbook/bookdesk/internal/mutate"
)

// fetchBooksCmd re-lists the full catalog. Every screen entry and every
// completed mutation goes through here; there is no incremental cache.
func (m *Model) fetchBooksCmd() tea.Cmd {
	client := m.opts.Client
	ctx := m.opts.Context
	return func() tea.Msg {
		books, err := client.ListBooks(ctx)
		return booksLoadedMsg{books: books, err: err}
	}
}

func (m *Model) fetchDetailCmd(id string) tea.Cmd {
	client := m.opts.Client
	ctx := m.opts.Context
	return func() tea.Msg {
		book, err := client.GetBook(ctx, id)
		if err != nil {
			return bookLoadedMsg{err: err}
		}
		related, err := client.RelatedBooks(ctx, book.Category, book.StoreID)
		if err != nil {
			// The detail page still renders without its related strip.
			related = nil
		}
		return bookLoadedMsg{book: book, related: related}
	}
}

func (m *Model) generateIDCmd(seq uint64, category string) tea.Cmd {
	client := m.opts.Client
	ctx := m.opts.Context
	return func() tea.Msg {
		id, err := client.GenerateID(ctx, category)
		return generatedIDMsg{seq: seq, id: id, err: err}
	}
}

func (m *Model) createBookCmd(form catalog.BookForm) tea.Cmd {
	client := m.opts.Client
	ctx := m.opts.Context
	return func() tea.Msg {
		_, err := client.CreateBook(ctx, form)
		return mutationDoneMsg{op: mutate.OpCreate, err: err}
	}
}

func (m *Model) updateBookCmd(storeID string, form catalog.BookForm) tea.Cmd {
	client := m.opts.Client
	ctx := m.opts.Context
	return func() tea.Msg {
		_, err := client.UpdateBook(ctx, storeID, form)
		return mutationDoneMsg{op: mutate.OpUpdate, err: err}
	}
}

func (m *Model) deleteBookCmd(storeID string) tea.Cmd {
	client := m.opts.Client
	ctx := m.opts.Context
	return func() tea.Msg {
		err := client.DeleteBook(ctx, storeID)
		return mutationDoneMsg{op: mutate.OpDelete, err: err}
	}
}

func (m *Model) loginCmd(username, password string) tea.Cmd {
	client := m.opts.Client
	ctx := m.opts.Context
	return func() tea.Msg {
		token, err := client.Login(ctx, username, password)
		return loginDoneMsg{token: token, err: err}
	}
}

func (m *Model) registerCmd(username, password string) tea.Cmd {
	client := m.opts.Client
	ctx := m.opts.Context
	return func() tea.Msg {
		err := client.Register(ctx, username, password)
		return registerDoneMsg{err: err}
	}
}
