// Package ipc implements the client side of the memoria daemon protocol.
//
// # Overview
//
// The memoria daemon listens on a unix stream socket and speaks
// newline-delimited JSON: one compact document per line in both directions.
// This package owns that socket for the lifetime of the process and converts
// the daemon's responses into a stream of typed events that the UI consumes.
//
// # Architecture
//
// The package composes three small pieces, leaves first:
//
//   - transport.go: socket path resolution, dialing, and the mapping from
//     OS-level socket failures to fixed user-visible error strings
//   - framer.go: accumulates raw read chunks and yields whole lines
//   - client.go: request construction, the pending-request slot, response
//     classification, and event emission
//
// # Wire Protocol
//
// Requests are envelopes of the form:
//
//	{"cmd":"list","args":{"limit":50,"starred_only":false}}
//
// Responses carry an ok flag plus either data or an error string:
//
//	{"ok":true,"data":[{"id":7,"title":"..."}]}
//	{"ok":false,"error":"db locked"}
//
// Array-shaped data (list, search, gallery results) is indistinguishable on
// the wire, so the client records which of those requests is outstanding in a
// single pending slot and routes the next array accordingly. Object-shaped
// data is classified by marker keys (updated, copied, deleted, deleted_items,
// deleted_images, deleted_count, ui, grid) without any slot.
//
// # Item Normalization
//
// Every object inside an array response has its "id" field rewritten to
// "itemId" before emission. The UI layer reserves "id" for its own use.
//
// # Events
//
// All delivery happens through one tagged-variant channel, Events. Request
// methods never block on the daemon; they write the request and return.
// Responses, connection lifecycle changes, and every error arrive as events
// in wire order.
//
// # Pending Slot Caveat
//
// The slot holds exactly one value. Issuing a second list, search, or gallery
// request before the first response arrives overwrites it and mis-routes the
// earlier reply. The client does not guard against this; callers are expected
// to serialize those requests. The slot is also deliberately left set when the
// daemon reports a failure, matching the established protocol behavior.
//
// # Error Handling
//
// There is no retry, reconnect, or request queueing at this layer. Transport
// failures surface as Error events with one of the fixed messages in
// transport.go, after which the connection is unusable until Connect is
// called again. Malformed response lines and daemon-reported failures are
// surfaced as Error events without tearing down the connection.
package ipc
