package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Background    string
	Surface       string
	Text          string
	Muted         string
	Accent        string
	Success       string
	Warning       string
	Danger        string
	Border        string
	SelectionBg   string
	SelectionText string
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Footer    lipgloss.Style

	Text       lipgloss.Style
	MutedText  lipgloss.Style
	AccentText lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Danger     lipgloss.Style

	Selected lipgloss.Style
	Star     lipgloss.Style
	Image    lipgloss.Style
}

// Styles builds the lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		AccentText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Danger:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
		Star:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Image: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
	}
}

var themes = []Theme{
	{
		Name:          "Dusk",
		Background:    "#1e1e2e",
		Surface:       "#313244",
		Text:          "#cdd6f4",
		Muted:         "#7f849c",
		Accent:        "#89b4fa",
		Success:       "#a6e3a1",
		Warning:       "#f9e2af",
		Danger:        "#f38ba8",
		Border:        "#45475a",
		SelectionBg:   "#45475a",
		SelectionText: "#f5f5f5",
	},
	{
		Name:          "Paper",
		Background:    "#fafafa",
		Surface:       "#e4e4e7",
		Text:          "#27272a",
		Muted:         "#71717a",
		Accent:        "#2563eb",
		Success:       "#15803d",
		Warning:       "#b45309",
		Danger:        "#b91c1c",
		Border:        "#d4d4d8",
		SelectionBg:   "#bfdbfe",
		SelectionText: "#1e3a8a",
	},
	{
		Name:          "Ember",
		Background:    "#1c1917",
		Surface:       "#292524",
		Text:          "#e7e5e4",
		Muted:         "#78716c",
		Accent:        "#fb923c",
		Success:       "#84cc16",
		Warning:       "#facc15",
		Danger:        "#ef4444",
		Border:        "#44403c",
		SelectionBg:   "#44403c",
		SelectionText: "#fef3c7",
	},
}

// GetTheme returns the named theme, falling back to the first palette when
// the name is unknown.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
