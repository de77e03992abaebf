package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/memoria-app/memoria-tui/internal/ipc"
	"github.com/memoria-app/memoria-tui/internal/prefs"
	"github.com/memoria-app/memoria-tui/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewList View = iota
	ViewSearch
	ViewGallery
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *ipc.Client
	Store     *state.Store
	Limit     int // items per fetch; zero uses the client default
	ThemeName string
	StartView string // "list", "search", or "gallery"
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	client    *ipc.Client
	store     *state.Store
	limit     int
	prefsPath string

	theme  Theme
	styles Styles
	keys   keyMap

	view        View
	cursor      int
	starredOnly bool

	searchInput textinput.Model
	searching   bool
	lastQuery   string

	spin     spinner.Model
	fetching bool

	notice string

	width  int
	height int
	ready  bool

	showHelp bool

	snap state.Snapshot
}

// daemonEventMsg wraps one IPC event for the Bubble Tea loop.
type daemonEventMsg struct {
	ev ipc.Event
}

// waitForEvent blocks on the client's event stream and resolves to the next
// event. Re-armed after every delivery so the stream drains one message at a
// time through the update loop.
func waitForEvent(events <-chan ipc.Event) tea.Cmd {
	return func() tea.Msg {
		return daemonEventMsg{ev: <-events}
	}
}

// New creates the root model.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Load(opts.PrefsPath).Theme
	}
	theme := GetTheme(themeName)

	input := textinput.New()
	input.Placeholder = "search clipboard history"
	input.CharLimit = 256

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		client:      opts.Client,
		store:       opts.Store,
		limit:       opts.Limit,
		prefsPath:   prefsPath,
		theme:       theme,
		styles:      theme.Styles(),
		keys:        defaultKeyMap(),
		searchInput: input,
		spin:        spin,
	}

	switch opts.StartView {
	case "search":
		m.view = ViewSearch
	case "gallery":
		m.view = ViewGallery
	default:
		m.view = ViewList
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		waitForEvent(m.client.Events()),
	)
}

// Run starts the TUI and blocks until the user quits, the daemon requests a
// close, or the context cancels.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	program := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
