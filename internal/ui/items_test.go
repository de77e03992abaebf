package ui

import (
	"testing"
	"time"

	"github.com/memoria-app/memoria-tui/internal/state"
)

func TestItemLabel(t *testing.T) {
	tests := []struct {
		name string
		item state.Item
		want string
	}{
		{"title wins", state.Item{Title: "a title", Body: "body text"}, "a title"},
		{"body first line", state.Item{Body: "first\nsecond"}, "first"},
		{"body trimmed", state.Item{Body: "  padded  \nrest"}, "padded"},
		{"image placeholder", state.Item{HasImage: true}, "(image)"},
		{"empty placeholder", state.Item{}, "(empty)"},
		{"whitespace title falls through", state.Item{Title: "   ", Body: "body"}, "body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := itemLabel(tt.item); got != tt.want {
				t.Fatalf("itemLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 5, "hell…"},
		{"héllo wörld", 6, "héllo…"},
		{"x", 0, ""},
		{"xy", 1, "…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		unix int64
		want string
	}{
		{"zero timestamp", 0, ""},
		{"seconds ago", now.Add(-30 * time.Second).Unix(), "just now"},
		{"minutes ago", now.Add(-5 * time.Minute).Unix(), "5m ago"},
		{"hours ago", now.Add(-3 * time.Hour).Unix(), "3h ago"},
		{"days ago", now.Add(-48 * time.Hour).Unix(), "2d ago"},
		{"old gets a date", now.Add(-90 * 24 * time.Hour).Unix(), "2025-12-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativeTime(tt.unix, now); got != tt.want {
				t.Fatalf("relativeTime = %q, want %q", got, tt.want)
			}
		})
	}
}
