package ipc

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultLimit is applied when a caller passes a non-positive result limit.
const DefaultLimit = 50

const (
	dialTimeout   = 5 * time.Second
	readChunkSize = 4096
	eventBuffer   = 64
)

// ConnState reports where the connection is in its lifecycle.
type ConnState int

const (
	StateDisconnected ConnState = iota
	StateConnecting
	StateConnected
)

// pendingKind records which array-shaped request is outstanding. The daemon
// answers list, search, and gallery with bare arrays that are
// indistinguishable on the wire; the slot supplies the attribution. A couple
// of object-shaped replies are tagged the same way.
type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingList
	pendingSearch
	pendingGallery
	pendingDeleteAllExceptStarred
	pendingGetSettings
)

// request is the wire envelope for daemon commands.
type request struct {
	Cmd  string         `json:"cmd"`
	Args map[string]any `json:"args,omitempty"`
}

// Client owns one stream connection to the memoria daemon. Request methods
// are non-blocking apart from the socket write itself; all results, errors,
// and lifecycle changes arrive on the Events channel.
type Client struct {
	socketPath string // optional override; empty resolves from the environment at connect time

	mu      sync.Mutex
	conn    net.Conn
	state   ConnState
	pending pendingKind

	events chan Event
}

// New creates a disconnected client. socketPath overrides the default socket
// resolution when non-empty; pass "" to resolve from the environment on each
// connect.
func New(socketPath string) *Client {
	return &Client{
		socketPath: socketPath,
		events:     make(chan Event, eventBuffer),
	}
}

// Events returns the client's event stream. The channel is never closed; the
// client lives as long as the process.
func (c *Client) Events() <-chan Event {
	return c.events
}

// State reports the current connection state.
func (c *Client) State() ConnState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Connect resolves the socket path and dials the daemon in the background.
// It returns immediately; completion arrives as a Connected or Error event.
// Calling Connect while connecting or connected is a no-op.
func (c *Client) Connect() {
	c.mu.Lock()
	if c.state != StateDisconnected {
		c.mu.Unlock()
		return
	}
	c.state = StateConnecting
	c.mu.Unlock()

	go func() {
		path := c.socketPath
		if path == "" {
			path = SocketPath()
		}
		conn, err := net.DialTimeout("unix", path, dialTimeout)
		if err != nil {
			c.mu.Lock()
			c.state = StateDisconnected
			c.mu.Unlock()
			log.Printf("ipc: connect %s: %v", path, err)
			c.emit(Error{Message: classifyError(err)})
			return
		}

		c.mu.Lock()
		c.conn = conn
		c.state = StateConnected
		c.mu.Unlock()
		c.emit(Connected{})
		go c.readLoop(conn)
	}()
}

// Disconnect closes the connection if one is open. Idempotent. The read
// loop notices the close and emits Disconnected.
func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.state = StateDisconnected
	c.pending = pendingNone
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
}

// List requests recent items, newest first, optionally restricted to starred
// ones.
func (c *Client) List(limit int, starredOnly bool) {
	c.setPending(pendingList)
	c.send(request{Cmd: "list", Args: map[string]any{
		"limit":        normalizeLimit(limit),
		"starred_only": starredOnly,
	}})
}

// Search requests a full-text search over stored items.
func (c *Client) Search(query string, limit int) {
	c.setPending(pendingSearch)
	c.send(request{Cmd: "search", Args: map[string]any{
		"query": query,
		"limit": normalizeLimit(limit),
	}})
}

// Gallery requests image-bearing items only.
func (c *Client) Gallery(limit int) {
	c.setPending(pendingGallery)
	c.send(request{Cmd: "gallery", Args: map[string]any{
		"limit": normalizeLimit(limit),
	}})
}

// Star sets or clears the star flag on an item. Fire-and-forget: the reply
// is correlated by shape, not by the pending slot.
func (c *Client) Star(id int64, value bool) {
	c.send(request{Cmd: "star", Args: map[string]any{
		"id":    id,
		"value": value,
	}})
}

// Copy asks the daemon to restore an item to the clipboard.
func (c *Client) Copy(id int64) {
	c.send(request{Cmd: "copy", Args: map[string]any{
		"id": id,
	}})
}

// DeleteItems requests deletion of the given items. The daemon silently
// skips starred ids.
func (c *Client) DeleteItems(ids []int64) {
	c.send(request{Cmd: "delete_items", Args: map[string]any{
		"ids": ids,
	}})
}

// DeleteAllExceptStarred purges every non-starred item and its images.
func (c *Client) DeleteAllExceptStarred() {
	c.setPending(pendingDeleteAllExceptStarred)
	c.send(request{Cmd: "delete_all_except_starred"})
}

// GetSettings fetches the daemon's ui, grid, and behavior settings.
func (c *Client) GetSettings() {
	c.setPending(pendingGetSettings)
	c.send(request{Cmd: "get_settings"})
}

// CoerceIDs narrows a heterogeneous id list, as produced by decoded JSON or
// a generic UI layer, to int64 element-wise. Elements that cannot be
// interpreted as integers coerce to 0.
func CoerceIDs(values []any) []int64 {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		ids = append(ids, coerceID(v))
	}
	return ids
}

func coerceID(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return i
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

func (c *Client) setPending(kind pendingKind) {
	c.mu.Lock()
	c.pending = kind
	c.mu.Unlock()
}

// takePending returns the slot value and clears it.
func (c *Client) takePending() pendingKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	kind := c.pending
	c.pending = pendingNone
	return kind
}

// send serializes the request as one compact JSON line and writes it.
// Precondition: connected. Violations and write failures surface as Error
// events; nothing touches the wire on a violation and nothing is retried.
func (c *Client) send(req request) {
	c.mu.Lock()
	conn := c.conn
	connected := c.state == StateConnected
	c.mu.Unlock()

	if !connected || conn == nil {
		c.emit(Error{Message: errNotConnected})
		return
	}

	payload, err := json.Marshal(req)
	if err != nil {
		c.emit(Error{Message: errSendFailed})
		return
	}
	if _, err := conn.Write(append(payload, '\n')); err != nil {
		log.Printf("ipc: send %s: %v", req.Cmd, err)
		c.emit(Error{Message: errSendFailed})
	}
}

// readLoop drains the socket until it closes, framing chunks into lines and
// dispatching each one. It owns the transition back to disconnected.
func (c *Client) readLoop(conn net.Conn) {
	framer := &lineFramer{}
	buf := make([]byte, readChunkSize)

	for {
		n, err := conn.Read(buf)
		if n > 0 {
			for _, line := range framer.Push(buf[:n]) {
				c.dispatch(line)
			}
		}
		if err != nil {
			c.mu.Lock()
			if c.conn == conn {
				c.conn = nil
				c.state = StateDisconnected
				c.pending = pendingNone
			}
			c.mu.Unlock()

			// A close, whether ours or the daemon's, is not an error.
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				log.Printf("ipc: read: %v", err)
				c.emit(Error{Message: classifyError(err)})
			}
			c.emit(Disconnected{})
			return
		}
	}
}

// dispatch parses one framed line and emits the matching event. A bad line
// is reported and skipped; it neither closes the connection nor clears the
// pending slot.
func (c *Client) dispatch(line []byte) {
	var resp map[string]any
	if err := json.Unmarshal(line, &resp); err != nil || resp == nil {
		log.Printf("ipc: invalid response line: %s", line)
		c.emit(Error{Message: errMalformed})
		return
	}

	ok, _ := resp["ok"].(bool)
	if !ok {
		msg, _ := resp["error"].(string)
		if msg == "" {
			msg = errUnknownDaemon
		}
		log.Printf("ipc: daemon error: %s", msg)
		c.emit(Error{Message: msg})
		return
	}

	switch data := resp["data"].(type) {
	case []any:
		items := normalizeItems(data)
		// Clearing happens even when the slot named a non-array request;
		// the stray array is dropped on the floor.
		switch c.takePending() {
		case pendingList:
			c.emit(ListResponse{Items: items})
		case pendingSearch:
			c.emit(SearchResponse{Items: items})
		case pendingGallery:
			c.emit(GalleryResponse{Items: items})
		}
	case map[string]any:
		c.dispatchObject(data)
	}
}

// dispatchObject classifies a success object by marker-key presence. The
// order is load-bearing: a payload carrying several markers resolves to the
// first match.
func (c *Client) dispatchObject(data map[string]any) {
	has := func(key string) bool {
		_, ok := data[key]
		return ok
	}

	switch {
	case has("updated"):
		c.emit(StarResponse{Success: true})
	case has("copied"):
		c.emit(CopyResponse{Success: true})
		c.emit(RequestClose{})
	case has("deleted"):
		c.emit(DeleteResponse{Count: intField(data, "deleted")})
		c.takePending()
	case has("deleted_items") || has("deleted_images"):
		c.emit(DeleteAllExceptStarredResponse{
			Items:  intField(data, "deleted_items"),
			Images: intField(data, "deleted_images"),
		})
	case has("deleted_count"):
		c.emit(DeleteResponse{Count: intField(data, "deleted_count")})
	case has("ui") || has("grid"):
		c.emit(SettingsReceived{Settings: data})
	}
}

// normalizeItems rewrites "id" to "itemId" on every object element; the UI
// layer reserves "id" for itself. Non-object elements pass through untouched.
func normalizeItems(data []any) []any {
	items := make([]any, len(data))
	for i, el := range data {
		obj, ok := el.(map[string]any)
		if !ok {
			items[i] = el
			continue
		}
		if id, present := obj["id"]; present {
			obj["itemId"] = id
			delete(obj, "id")
		}
		items[i] = obj
	}
	return items
}

// intField reads a numeric field as the wire's float64 and narrows it to
// int64. Missing or non-numeric fields read as 0.
func intField(data map[string]any, key string) int64 {
	f, _ := data[key].(float64)
	return int64(f)
}

func (c *Client) emit(ev Event) {
	c.events <- ev
}
