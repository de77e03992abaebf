package ipc

// Event is one element of the client's tagged-variant event stream. The
// concrete types below mirror the daemon's response kinds one to one, plus
// connection lifecycle notifications.
type Event interface {
	isEvent()
}

// Connected reports that the socket connection to the daemon is established
// and requests may be sent.
type Connected struct{}

// Disconnected reports that the connection is gone, whether closed locally
// or dropped by the daemon. It always follows any Error describing the cause.
type Disconnected struct{}

// Error carries a user-visible failure description: a transport failure, a
// local precondition violation, a malformed response line, or a failure
// string reported by the daemon itself.
type Error struct {
	Message string
}

// ListResponse carries the results of a list request. Items are decoded JSON
// objects with "id" rewritten to "itemId"; non-object elements pass through
// untouched.
type ListResponse struct {
	Items []any
}

// SearchResponse carries the results of a search request, normalized the
// same way as ListResponse.
type SearchResponse struct {
	Items []any
}

// GalleryResponse carries the results of a gallery request, normalized the
// same way as ListResponse.
type GalleryResponse struct {
	Items []any
}

// StarResponse acknowledges a star or unstar operation.
type StarResponse struct {
	Success bool
}

// CopyResponse acknowledges that the daemon restored an item to the
// clipboard. It is always followed by RequestClose.
type CopyResponse struct {
	Success bool
}

// DeleteResponse reports how many items a delete operation removed.
type DeleteResponse struct {
	Count int64
}

// DeleteAllExceptStarredResponse reports the result of purging all
// non-starred content.
type DeleteAllExceptStarredResponse struct {
	Items  int64
	Images int64
}

// SettingsReceived carries the daemon's settings object (ui, grid, and
// behavior sections) exactly as received.
type SettingsReceived struct {
	Settings map[string]any
}

// RequestClose asks the UI to dismiss itself, emitted after a successful
// copy so the picker can get out of the way of the paste.
type RequestClose struct{}

func (Connected) isEvent()                      {}
func (Disconnected) isEvent()                   {}
func (Error) isEvent()                          {}
func (ListResponse) isEvent()                   {}
func (SearchResponse) isEvent()                 {}
func (GalleryResponse) isEvent()                {}
func (StarResponse) isEvent()                   {}
func (CopyResponse) isEvent()                   {}
func (DeleteResponse) isEvent()                 {}
func (DeleteAllExceptStarredResponse) isEvent() {}
func (SettingsReceived) isEvent()               {}
func (RequestClose) isEvent()                   {}
