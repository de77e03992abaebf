// Package app wires configuration, the daemon client, the state store,
// and the terminal UI into a running application.
package app
