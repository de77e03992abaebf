package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/memoria-app/memoria-tui/internal/state"
)

// itemLabel returns the display text for an item row: the title when the
// daemon provided one, otherwise the first line of the body.
func itemLabel(item state.Item) string {
	if title := strings.TrimSpace(item.Title); title != "" {
		return title
	}
	if line := firstLine(item.Body); line != "" {
		return line
	}
	if item.HasImage {
		return "(image)"
	}
	return "(empty)"
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// truncate shortens s to max runes, ending with an ellipsis when cut.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// relativeTime formats a unix timestamp relative to now, matching the
// coarse buckets users expect from a clipboard history.
func relativeTime(unix int64, now time.Time) string {
	if unix <= 0 {
		return ""
	}
	d := now.Sub(time.Unix(unix, 0))
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return time.Unix(unix, 0).Format("2006-01-02")
	}
}
