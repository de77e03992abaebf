// Package ui renders the terminal interface with Bubble Tea.
//
// The Model is a thin presentation layer: all daemon communication goes
// through ipc.Client and all durable state lives in state.Store. Daemon
// events arrive through a re-armed tea.Cmd (waitForEvent) so the Bubble
// Tea loop stays the single writer of UI state.
//
// Three views share one item cursor: the rolling history list, full-text
// search, and an image gallery. Key bindings live in keys.go, color
// palettes in theme.go.
package ui
