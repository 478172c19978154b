package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shopbook/bookdesk/internal/catalog"
	"github.com/shopbook/bookdesk/internal/config"
	"github.com/shopbook/bookdesk/internal/logging"
	"github.com/shopbook/bookdesk/internal/prefs"
	"github.com/shopbook/bookdesk/internal/session"
	"github.com/shopbook/bookdesk/internal/state"
	"github.com/shopbook/bookdesk/internal/ui"
)

// Options configure the bookdesk application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/bookdesk/prefs.toml
	APIBase    string // overrides the configured API base when set
}

// Run boots the bookdesk TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIBase != "" {
		cfg.APIBase = opts.APIBase
	}

	logger := logging.New(cfg.LogFile, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := catalog.NewClient(cfg.APIBase, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	sess, err := session.NewStore("")
	if err != nil {
		return fmt.Errorf("init session store: %w", err)
	}
	if err := sess.Load(); err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	logger.Info("session loaded",
		zap.Bool("authenticated", sess.Authenticated()),
		zap.Bool("admin", sess.IsAdmin()))

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Session:   sess,
		Store:     &state.Store{},
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		Compact:   userPrefs.Compact,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
