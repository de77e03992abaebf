package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "starting up..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')

	if m.view == ViewSearch {
		b.WriteString(m.renderSearchLine())
		b.WriteByte('\n')
	}

	b.WriteString(m.renderItems())
	b.WriteByte('\n')
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	tabs := []struct {
		view  View
		label string
	}{
		{ViewList, "1 list"},
		{ViewSearch, "2 search"},
		{ViewGallery, "3 gallery"},
	}

	parts := make([]string, 0, len(tabs)+1)
	parts = append(parts, m.styles.AccentText.Bold(true).Render("memoria"))
	for _, tab := range tabs {
		style := m.styles.Tab
		if tab.view == m.view {
			style = m.styles.ActiveTab
		}
		parts = append(parts, style.Render(tab.label))
	}

	if m.fetching {
		parts = append(parts, m.spin.View())
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return m.styles.Header.Width(m.width).Render(line)
}

func (m Model) renderSearchLine() string {
	if m.searching {
		return " " + m.searchInput.View()
	}
	if m.lastQuery != "" {
		return " " + m.styles.MutedText.Render("query: ") + m.styles.Text.Render(m.lastQuery)
	}
	return " " + m.styles.MutedText.Render("press / to search")
}

func (m Model) renderItems() string {
	items := m.currentItems()
	if len(items) == 0 {
		return " " + m.styles.MutedText.Render(m.emptyMessage())
	}

	// Rows available between header, optional search line, and footer.
	visible := m.height - 3
	if m.view == ViewSearch {
		visible--
	}
	if visible < 1 {
		visible = 1
	}

	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(items) {
		end = len(items)
	}

	now := time.Now()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		item := items[i]

		mark := "  "
		if item.Starred {
			mark = m.styles.Star.Render("★ ")
		}

		tag := ""
		if item.HasImage {
			tag = m.styles.Image.Render("[IMG] ")
		}

		when := relativeTime(item.UpdatedAt, now)
		label := truncate(itemLabel(item), maxLabelWidth(m.width, when))

		row := fmt.Sprintf(" %s%s%s", mark, tag, label)
		if when != "" {
			row += "  " + m.styles.MutedText.Render(when)
		}

		if i == m.cursor {
			row = m.styles.Selected.Width(m.width).Render(row)
		}
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

func maxLabelWidth(width int, when string) int {
	w := width - len(when) - 12
	if w < 10 {
		w = 10
	}
	return w
}

func (m Model) emptyMessage() string {
	if !m.snap.Connected {
		return "not connected"
	}
	switch m.view {
	case ViewSearch:
		if m.lastQuery == "" {
			return "type a query to search"
		}
		return "no matches"
	case ViewGallery:
		return "no images"
	default:
		return "clipboard history is empty"
	}
}

func (m Model) renderFooter() string {
	var status string
	switch {
	case m.snap.LastError != "":
		status = m.styles.Danger.Render("● ") + m.snap.LastError
	case m.snap.Connected:
		status = m.styles.Success.Render("● ") + "connected"
	default:
		status = m.styles.MutedText.Render("● connecting")
	}

	if m.notice != "" {
		status += "  " + m.styles.AccentText.Render(m.notice)
	}

	count := fmt.Sprintf("%d item(s)", len(m.currentItems()))
	hints := "?: help  q: quit"

	left := status
	right := count + "  " + hints
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return m.styles.Footer.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderHelp() string {
	rows := [][2]string{
		{"1 / 2 / 3", "list, search, gallery"},
		{"tab", "next view"},
		{"j / k", "move selection"},
		{"g / G", "jump to top / bottom"},
		{"enter, c", "copy item to clipboard"},
		{"s", "star / unstar item"},
		{"d", "delete item"},
		{"D", "delete all unstarred items"},
		{"f", "toggle starred-only filter"},
		{"/", "search clipboard history"},
		{"r", "refresh"},
		{"T", "cycle theme"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.AccentText.Bold(true).Render("memoria — keys"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			m.styles.Text.Width(12).Render(row[0]),
			m.styles.MutedText.Render(row[1])))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("  press any key to close"))
	return b.String()
}
