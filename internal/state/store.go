package state

import (
	"sync"

	"github.com/memoria-app/memoria-tui/internal/ipc"
)

// Item is the typed view of one clipboard record as the daemon reports it.
type Item struct {
	ID            int64
	Title         string
	Body          string
	CreatedAt     int64
	UpdatedAt     int64
	LastUsed      int64
	Starred       bool
	Hash          string
	HasImage      bool
	ThumbnailPath string
}

// Settings is the typed view of the daemon's get_settings payload.
type Settings struct {
	UIWidth     int64
	UIHeight    int64
	Anchor      string
	Opacity     float64
	Blur        float64
	ThumbSize   int64
	GridColumns int64
	Dedupe      bool
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Connected bool

	ListItems    []Item
	SearchItems  []Item
	GalleryItems []Item

	Settings    Settings
	HasSettings bool

	// LastError is the most recent user-visible error, cleared on the next
	// successful connect.
	LastError string

	// Result counters from the most recent destructive operations.
	LastDeleted  int64
	PurgedItems  int64
	PurgedImages int64

	// CloseRequested is set when the daemon confirms a copy; the UI should
	// dismiss itself.
	CloseRequested bool
}

// Store coordinates event application and snapshot reads.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Apply folds one client event into the snapshot.
func (s *Store) Apply(ev ipc.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev := ev.(type) {
	case ipc.Connected:
		s.snapshot.Connected = true
		s.snapshot.LastError = ""
	case ipc.Disconnected:
		s.snapshot.Connected = false
	case ipc.Error:
		s.snapshot.LastError = ev.Message
	case ipc.ListResponse:
		s.snapshot.ListItems = decodeItems(ev.Items)
	case ipc.SearchResponse:
		s.snapshot.SearchItems = decodeItems(ev.Items)
	case ipc.GalleryResponse:
		s.snapshot.GalleryItems = decodeItems(ev.Items)
	case ipc.DeleteResponse:
		s.snapshot.LastDeleted = ev.Count
	case ipc.DeleteAllExceptStarredResponse:
		s.snapshot.PurgedItems = ev.Items
		s.snapshot.PurgedImages = ev.Images
	case ipc.SettingsReceived:
		s.snapshot.Settings = decodeSettings(ev.Settings)
		s.snapshot.HasSettings = true
	case ipc.RequestClose:
		s.snapshot.CloseRequested = true
	}
}

// Snapshot returns a copy of the current snapshot. Slices are cloned so the
// caller can hold it across later Applies.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.ListItems = cloneItems(s.snapshot.ListItems)
	snap.SearchItems = cloneItems(s.snapshot.SearchItems)
	snap.GalleryItems = cloneItems(s.snapshot.GalleryItems)
	return snap
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

// decodeItems narrows the wire items into typed records. Elements that are
// not objects are skipped; the daemon never produces them, but the protocol
// does not forbid them either.
func decodeItems(raw []any) []Item {
	items := make([]Item, 0, len(raw))
	for _, el := range raw {
		obj, ok := el.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, Item{
			ID:            intValue(obj["itemId"]),
			Title:         stringValue(obj["title"]),
			Body:          stringValue(obj["body"]),
			CreatedAt:     intValue(obj["created_at"]),
			UpdatedAt:     intValue(obj["updated_at"]),
			LastUsed:      intValue(obj["last_used"]),
			Starred:       boolValue(obj["starred"]),
			Hash:          stringValue(obj["hash"]),
			HasImage:      boolValue(obj["has_image"]),
			ThumbnailPath: stringValue(obj["thumbnail_path"]),
		})
	}
	return items
}

func decodeSettings(raw map[string]any) Settings {
	var s Settings
	if ui, ok := raw["ui"].(map[string]any); ok {
		s.UIWidth = intValue(ui["width"])
		s.UIHeight = intValue(ui["height"])
		s.Anchor = stringValue(ui["anchor"])
		s.Opacity = floatValue(ui["opacity"])
		s.Blur = floatValue(ui["blur"])
	}
	if grid, ok := raw["grid"].(map[string]any); ok {
		s.ThumbSize = intValue(grid["thumb_size"])
		s.GridColumns = intValue(grid["columns"])
	}
	if behavior, ok := raw["behavior"].(map[string]any); ok {
		s.Dedupe = boolValue(behavior["dedupe"])
	}
	return s
}

// JSON numbers decode as float64; narrow on read.
func intValue(v any) int64 {
	f, _ := v.(float64)
	return int64(f)
}

func floatValue(v any) float64 {
	f, _ := v.(float64)
	return f
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func boolValue(v any) bool {
	b, _ := v.(bool)
	return b
}
