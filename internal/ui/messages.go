package ui

import (
	"github.com/shopbook/bookdesk/internal/catalog"
	"github.com/shopbook/bookdesk/internal/mutate"
)

// booksLoadedMsg carries the result of a full catalog fetch.
type booksLoadedMsg struct {
	books []catalog.Book
	err   error
}

// bookLoadedMsg carries a detail fetch plus its related-books strip.
type bookLoadedMsg struct {
	book    *catalog.Book
	related []catalog.Book
	err     error
}

// generatedIDMsg carries a generate-id response tagged with the request
// sequence issued by the owning flow.
type generatedIDMsg struct {
	seq uint64
	id  string
	err error
}

// mutationDoneMsg reports the outcome of a create, update, or delete call.
type mutationDoneMsg struct {
	op  mutate.Op
	err error
}

// loginDoneMsg carries the token from a login attempt.
type loginDoneMsg struct {
	token string
	err   error
}

// registerDoneMsg reports a registration attempt.
type registerDoneMsg struct {
	err error
}

// toastExpiredMsg clears a transient status line. The sequence guards
// against an old timer clearing a newer toast.
type toastExpiredMsg struct {
	seq uint64
}
