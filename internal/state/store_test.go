package state

import (
	"reflect"
	"testing"

	"github.com/memoria-app/memoria-tui/internal/ipc"
)

func TestStore_ConnectionLifecycle(t *testing.T) {
	store := &Store{}

	store.Apply(ipc.Error{Message: "Connection refused. Is memoria-daemon running?"})
	if snap := store.Snapshot(); snap.LastError == "" || snap.Connected {
		t.Fatalf("snapshot = %+v, want disconnected with error", snap)
	}

	store.Apply(ipc.Connected{})
	snap := store.Snapshot()
	if !snap.Connected {
		t.Fatalf("Connected = false, want true")
	}
	if snap.LastError != "" {
		t.Fatalf("LastError = %q, want cleared on connect", snap.LastError)
	}

	store.Apply(ipc.Disconnected{})
	if snap := store.Snapshot(); snap.Connected {
		t.Fatalf("Connected = true after Disconnected event")
	}
}

func TestStore_DecodesListItems(t *testing.T) {
	store := &Store{}
	store.Apply(ipc.ListResponse{Items: []any{
		map[string]any{
			"itemId":     float64(7),
			"title":      "a title",
			"body":       "hello",
			"created_at": float64(1700000000),
			"updated_at": float64(1700000100),
			"last_used":  float64(1700000200),
			"starred":    true,
			"hash":       "abc123",
			"has_image":  false,
		},
		"stray element",
	}})

	snap := store.Snapshot()
	want := []Item{{
		ID:        7,
		Title:     "a title",
		Body:      "hello",
		CreatedAt: 1700000000,
		UpdatedAt: 1700000100,
		LastUsed:  1700000200,
		Starred:   true,
		Hash:      "abc123",
	}}
	if !reflect.DeepEqual(snap.ListItems, want) {
		t.Fatalf("ListItems = %#v, want %#v", snap.ListItems, want)
	}
}

func TestStore_ViewsAreIndependent(t *testing.T) {
	store := &Store{}
	store.Apply(ipc.ListResponse{Items: []any{map[string]any{"itemId": float64(1)}}})
	store.Apply(ipc.SearchResponse{Items: []any{map[string]any{"itemId": float64(2)}}})
	store.Apply(ipc.GalleryResponse{Items: []any{map[string]any{"itemId": float64(3), "has_image": true}}})

	snap := store.Snapshot()
	if len(snap.ListItems) != 1 || snap.ListItems[0].ID != 1 {
		t.Fatalf("ListItems = %#v, want one item id=1", snap.ListItems)
	}
	if len(snap.SearchItems) != 1 || snap.SearchItems[0].ID != 2 {
		t.Fatalf("SearchItems = %#v, want one item id=2", snap.SearchItems)
	}
	if len(snap.GalleryItems) != 1 || snap.GalleryItems[0].ID != 3 {
		t.Fatalf("GalleryItems = %#v, want one item id=3", snap.GalleryItems)
	}
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	store := &Store{}
	store.Apply(ipc.ListResponse{Items: []any{map[string]any{"itemId": float64(1), "title": "x"}}})

	snap := store.Snapshot()
	snap.ListItems[0].Title = "mutated"

	if got := store.Snapshot().ListItems[0].Title; got != "x" {
		t.Fatalf("store title = %q, want %q (snapshot leaked)", got, "x")
	}
}

func TestStore_DeleteCounters(t *testing.T) {
	store := &Store{}

	store.Apply(ipc.DeleteResponse{Count: 3})
	if got := store.Snapshot().LastDeleted; got != 3 {
		t.Fatalf("LastDeleted = %d, want 3", got)
	}

	store.Apply(ipc.DeleteAllExceptStarredResponse{Items: 12, Images: 4})
	snap := store.Snapshot()
	if snap.PurgedItems != 12 || snap.PurgedImages != 4 {
		t.Fatalf("purged = %d/%d, want 12/4", snap.PurgedItems, snap.PurgedImages)
	}
}

func TestStore_DecodesSettings(t *testing.T) {
	store := &Store{}
	store.Apply(ipc.SettingsReceived{Settings: map[string]any{
		"ui": map[string]any{
			"width":   float64(480),
			"height":  float64(640),
			"anchor":  "top-right",
			"opacity": 0.92,
			"blur":    12.0,
		},
		"grid": map[string]any{
			"thumb_size": float64(128),
			"columns":    float64(4),
		},
		"behavior": map[string]any{
			"dedupe": true,
		},
	}})

	snap := store.Snapshot()
	if !snap.HasSettings {
		t.Fatalf("HasSettings = false, want true")
	}
	want := Settings{
		UIWidth:     480,
		UIHeight:    640,
		Anchor:      "top-right",
		Opacity:     0.92,
		Blur:        12.0,
		ThumbSize:   128,
		GridColumns: 4,
		Dedupe:      true,
	}
	if snap.Settings != want {
		t.Fatalf("Settings = %+v, want %+v", snap.Settings, want)
	}
}

func TestStore_RequestClose(t *testing.T) {
	store := &Store{}
	store.Apply(ipc.CopyResponse{Success: true})
	store.Apply(ipc.RequestClose{})
	if !store.Snapshot().CloseRequested {
		t.Fatalf("CloseRequested = false, want true")
	}
}
