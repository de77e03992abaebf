package app

import (
	"context"
	"fmt"

	"github.com/memoria-app/memoria-tui/internal/config"
	"github.com/memoria-app/memoria-tui/internal/ipc"
	"github.com/memoria-app/memoria-tui/internal/prefs"
	"github.com/memoria-app/memoria-tui/internal/state"
	"github.com/memoria-app/memoria-tui/internal/ui"
)

// Options configure the memoria TUI.
type Options struct {
	ConfigPath string // empty uses default ~/.config/memoria-tui/config.toml
	PrefsPath  string // empty uses default ~/.config/memoria-tui/prefs.toml
	SocketPath string // empty uses config, then the runtime-dir default
}

// Run boots the TUI until the user quits, the daemon asks us to close,
// or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	socketPath := opts.SocketPath
	if socketPath == "" {
		socketPath = cfg.SocketPath
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client := ipc.New(socketPath)
	store := &state.Store{}

	// Connect in the background; the UI reports progress and errors as
	// events arrive.
	client.Connect()
	defer client.Disconnect()

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Limit:     cfg.ListLimit,
		ThemeName: userPrefs.Theme,
		StartView: userPrefs.View,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
