package ipc

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"syscall"
)

const socketName = "memoria.sock"

// User-visible error strings. The UI shows these verbatim, so they name the
// daemon binary the way its packaging does.
const (
	errNotConnected  = "Not connected to daemon. Is memoria-daemon running?"
	errSendFailed    = "Failed to send request to daemon"
	errMalformed     = "Received malformed response from daemon"
	errUnknownDaemon = "Unknown daemon error"

	errSocketMissing = "Daemon socket not found. Start memoria-daemon first."
	errRefused       = "Connection refused. Is memoria-daemon running?"
	errPermission    = "Permission denied accessing daemon socket"
	errResource      = "System resource error communicating with daemon"
	errTimeout       = "Daemon connection timeout"
)

// SocketPath resolves the daemon socket location: $XDG_RUNTIME_DIR/memoria.sock,
// falling back to /run/user/<euid>/memoria.sock when the variable is unset or
// empty. Resolution happens per call, not at construction, so an environment
// change takes effect on the next connect.
func SocketPath() string {
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		runtimeDir = fmt.Sprintf("/run/user/%d", os.Geteuid())
	}
	return filepath.Join(runtimeDir, socketName)
}

// classifyError maps an OS-level socket failure onto its fixed user-visible
// message. The match order mirrors the severity the messages imply: a missing
// socket file beats a refused connection beats a generic fallback.
func classifyError(err error) string {
	var netErr net.Error
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return errSocketMissing
	case errors.Is(err, syscall.ECONNREFUSED):
		return errRefused
	case errors.Is(err, fs.ErrPermission):
		return errPermission
	case errors.Is(err, syscall.EMFILE),
		errors.Is(err, syscall.ENFILE),
		errors.Is(err, syscall.ENOBUFS),
		errors.Is(err, syscall.ENOMEM):
		return errResource
	case errors.Is(err, os.ErrDeadlineExceeded):
		return errTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return errTimeout
	default:
		return "Socket error: " + err.Error()
	}
}
