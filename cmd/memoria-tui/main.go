package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/memoria-app/memoria-tui/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	socketPath := flag.String("socket", "", "override daemon socket path (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		SocketPath: *socketPath,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "memoria-tui: %v\n", err)
		return 1
	}
	return 0
}
