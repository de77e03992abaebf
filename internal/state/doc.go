// Package state holds the UI-facing snapshot of daemon data.
//
// # Overview
//
// The IPC client emits a stream of typed events; the UI wants a coherent
// picture it can render at any moment. Store sits between the two: Apply
// folds one event into the snapshot, Snapshot hands out an isolated copy.
//
// # Data Flow
//
//	ipc.Client ──events──> Store.Apply ──> Snapshot ──> ui render
//
// The store performs the only typed decoding in the program: wire items
// arrive as generic JSON objects (with "id" already rewritten to "itemId" by
// the IPC layer) and are narrowed here into Item structs; the settings
// payload is narrowed into Settings.
//
// # Concurrency
//
// Apply and Snapshot are safe to call from different goroutines, though the
// TUI drives both from its single update loop. Snapshots are value copies;
// mutating one never affects the store.
package state
