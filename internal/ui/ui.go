package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/shopbook/bookdesk/internal/catalog"
	"github.com/shopbook/bookdesk/internal/session"
	"github.com/shopbook/bookdesk/internal/state"
)

// Options configure the UI runtime.
type Options struct {
	Context   context.Context
	Client    catalog.BookAPI
	Session   *session.Store
	Store     *state.Store
	Logger    *zap.Logger
	ThemeName string
	Compact   bool
	PrefsPath string
}

// Run starts the bubbletea program and blocks until the context is cancelled
// or the user quits.
func Run(opts Options) error {
	if opts.Client == nil {
		return fmt.Errorf("ui requires a catalog client")
	}
	if opts.Session == nil {
		return fmt.Errorf("ui requires a session store")
	}
	if opts.Store == nil {
		opts.Store = &state.Store{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	program := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithContext(opts.Context),
	)
	_, err := program.Run()
	if err == tea.ErrProgramKilled {
		// Context cancellation (SIGINT/SIGTERM) is a normal exit.
		return nil
	}
	return err
}
