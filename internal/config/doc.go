// Package config loads the memoria-tui configuration file.
//
// # Overview
//
// memoria-tui needs almost nothing configured: where the daemon socket lives
// (normally resolved from XDG_RUNTIME_DIR and not configured at all) and how
// many items to fetch per request. Both live in a small TOML file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/memoria-tui/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # Fields
//
//   - socket_path: explicit daemon socket path. Empty means "resolve from
//     the environment at connect time", which is the normal case.
//   - list_limit: items per list/search/gallery request (default 50).
//
// Example config.toml:
//
//	socket_path = "/run/user/1000/memoria.sock"
//	list_limit = 100
//
// Tilde paths are expanded. A missing config file is not an error; parse
// errors are.
package config
