// Package ui implements the bookdesk terminal interface on bubbletea.
//
// # Screens
//
// A single root Model owns one active screen at a time: the home menu,
// sign-in, the read-only browse list, a book detail page, and the three
// admin screens for adding, updating, and deleting books. List-backed
// screens each own a state.ViewState and re-fetch the catalog on entry;
// nothing is cached across navigations.
//
// # Mutations
//
// The admin screens drive mutate.Flow state machines. Submissions always
// pass through a confirmation modal, and every completed mutation triggers
// a full re-list so the visible rows match the server.
//
// # Session
//
// The home menu is gated by the session role: catalog mutations only
// appear for an authenticated admin. Signing in persists the issued token
// through the session store; signing out clears it after confirmation.
package ui
