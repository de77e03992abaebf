package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/memoria-app/memoria-tui/internal/ipc"
	"github.com/memoria-app/memoria-tui/internal/prefs"
	"github.com/memoria-app/memoria-tui/internal/state"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case daemonEventMsg:
		return m.handleEvent(msg.ev)

	case tea.KeyMsg:
		if m.showHelp {
			// Any key dismisses the overlay; quit still quits.
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			m.showHelp = false
			return m, nil
		}
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleEvent folds one daemon event into the model and re-arms the stream.
func (m Model) handleEvent(ev ipc.Event) (tea.Model, tea.Cmd) {
	m.store.Apply(ev)
	m.snap = m.store.Snapshot()

	switch ev := ev.(type) {
	case ipc.Connected:
		m.notice = ""
		// Settings first, then the visible view. The settings reply is
		// object-shaped, so the later fetch owns the pending slot.
		m.client.GetSettings()
		m.refetch()

	case ipc.Disconnected:
		m.fetching = false

	case ipc.Error:
		m.fetching = false
		m.notice = ""

	case ipc.ListResponse, ipc.SearchResponse, ipc.GalleryResponse:
		m.fetching = false
		m.clampCursor()

	case ipc.StarResponse:
		m.refetch()

	case ipc.CopyResponse:
		m.notice = "copied to clipboard"

	case ipc.DeleteResponse:
		m.notice = fmt.Sprintf("deleted %d item(s)", ev.Count)
		m.refetch()

	case ipc.DeleteAllExceptStarredResponse:
		m.notice = fmt.Sprintf("purged %d item(s), %d image(s)", ev.Items, ev.Images)
		m.refetch()

	case ipc.SettingsReceived:
		// Already folded into the snapshot; nothing to trigger.

	case ipc.RequestClose:
		return m, tea.Quit
	}

	return m, waitForEvent(m.client.Events())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = true

	case key.Matches(msg, keys.CycleTheme):
		m.theme = NextTheme(m.theme.Name)
		m.styles = m.theme.Styles()
		m.savePrefs()

	case key.Matches(msg, keys.ViewList):
		m.setView(ViewList)

	case key.Matches(msg, keys.ViewGallery):
		m.setView(ViewGallery)

	case key.Matches(msg, keys.ViewSearch):
		m.setView(ViewSearch)
		if strings.TrimSpace(m.lastQuery) == "" {
			return m.startSearch()
		}

	case key.Matches(msg, keys.NextView):
		m.setView((m.view + 1) % 3)

	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, keys.Top):
		m.cursor = 0

	case key.Matches(msg, keys.Bottom):
		if n := len(m.currentItems()); n > 0 {
			m.cursor = n - 1
		}

	case key.Matches(msg, keys.Copy):
		if item, ok := m.selectedItem(); ok {
			m.client.Copy(item.ID)
		}

	case key.Matches(msg, keys.Star):
		if item, ok := m.selectedItem(); ok {
			m.client.Star(item.ID, !item.Starred)
		}

	case key.Matches(msg, keys.Delete):
		if item, ok := m.selectedItem(); ok {
			m.client.DeleteItems([]int64{item.ID})
		}

	case key.Matches(msg, keys.PurgeUnstarred):
		m.client.DeleteAllExceptStarred()

	case key.Matches(msg, keys.Refresh):
		m.refetch()

	case key.Matches(msg, keys.ToggleStarred):
		if m.view == ViewList {
			m.starredOnly = !m.starredOnly
			m.refetch()
		}

	case key.Matches(msg, keys.Search):
		m.setView(ViewSearch)
		return m.startSearch()
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		query := strings.TrimSpace(m.searchInput.Value())
		m.searching = false
		m.searchInput.Blur()
		if query != "" {
			m.lastQuery = query
			m.refetch()
		}
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) startSearch() (tea.Model, tea.Cmd) {
	m.searching = true
	m.searchInput.SetValue(m.lastQuery)
	m.searchInput.CursorEnd()
	return *m, tea.Batch(m.searchInput.Focus(), textinput.Blink)
}

func (m *Model) setView(v View) {
	if m.view != v {
		m.view = v
		m.cursor = 0
	}
	switch v {
	case ViewList, ViewGallery:
		m.refetch()
	case ViewSearch:
		if strings.TrimSpace(m.lastQuery) != "" {
			m.refetch()
		}
	}
}

// refetch re-issues the request backing the current view.
func (m *Model) refetch() {
	switch m.view {
	case ViewList:
		m.fetching = true
		m.client.List(m.limit, m.starredOnly)
	case ViewSearch:
		if strings.TrimSpace(m.lastQuery) == "" {
			return
		}
		m.fetching = true
		m.client.Search(m.lastQuery, m.limit)
	case ViewGallery:
		m.fetching = true
		m.client.Gallery(m.limit)
	}
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.currentItems())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

func (m Model) currentItems() []state.Item {
	switch m.view {
	case ViewSearch:
		return m.snap.SearchItems
	case ViewGallery:
		return m.snap.GalleryItems
	default:
		return m.snap.ListItems
	}
}

func (m Model) selectedItem() (state.Item, bool) {
	items := m.currentItems()
	if len(items) == 0 || m.cursor < 0 || m.cursor >= len(items) {
		return state.Item{}, false
	}
	return items[m.cursor], true
}

func (m Model) savePrefs() {
	// Best effort; a read-only config dir should not break the session.
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme: m.theme.Name,
		View:  viewName(m.view),
	})
}

func viewName(v View) string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewGallery:
		return "gallery"
	default:
		return "list"
	}
}
