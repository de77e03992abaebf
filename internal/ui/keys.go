package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// View switching
	ViewList    key.Binding
	ViewSearch  key.Binding
	ViewGallery key.Binding
	NextView    key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Item actions
	Copy           key.Binding
	Star           key.Binding
	Delete         key.Binding
	PurgeUnstarred key.Binding

	// Fetching
	Refresh       key.Binding
	ToggleStarred key.Binding
	Search        key.Binding

	// Search input
	Confirm key.Binding
	Cancel  key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "theme"),
		),

		ViewList: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "list"),
		),
		ViewSearch: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "search"),
		),
		ViewGallery: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "gallery"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/↓", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),

		Copy: key.NewBinding(
			key.WithKeys("enter", "c"),
			key.WithHelp("enter", "copy"),
		),
		Star: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "star/unstar"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		PurgeUnstarred: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "purge unstarred"),
		),

		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		ToggleStarred: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "starred only"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run search"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
