package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/1broseidon/wmctl/internal/config"
	"github.com/1broseidon/wmctl/internal/platform"
	"github.com/1broseidon/wmctl/internal/wmctrl"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "list":
		os.Exit(runList(os.Args[2:]))
	case "find":
		os.Exit(runFind(os.Args[2:]))
	case "desktops":
		os.Exit(runDesktops(os.Args[2:]))
	case "info":
		os.Exit(runInfo(os.Args[2:]))
	case "move":
		os.Exit(runMove(os.Args[2:]))
	case "activate":
		os.Exit(runActivate(os.Args[2:]))
	case "raise":
		os.Exit(runRaise(os.Args[2:]))
	case "close":
		os.Exit(runClose(os.Args[2:]))
	case "rename":
		os.Exit(runRename(os.Args[2:]))
	case "state":
		os.Exit(runState(os.Args[2:]))
	case "to-desktop":
		os.Exit(runToDesktop(os.Args[2:]))
	case "switch":
		os.Exit(runSwitch(os.Args[2:]))
	case "viewport":
		os.Exit(runViewport(os.Args[2:]))
	case "show-desktop":
		os.Exit(runShowDesktop(os.Args[2:]))
	case "desktop-count":
		os.Exit(runDesktopCount(os.Args[2:]))
	case "layout":
		os.Exit(runLayout(os.Args[2:]))
	case "pick":
		os.Exit(runPick(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wmctl <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list                List managed windows")
	fmt.Fprintln(w, "  find                Find windows by class or title substring")
	fmt.Fprintln(w, "  desktops            List virtual desktops")
	fmt.Fprintln(w, "  info                Show window manager information")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  move                Move/resize a window")
	fmt.Fprintln(w, "  activate            Bring a window to the current desktop and focus it")
	fmt.Fprintln(w, "  raise               Switch to a window's desktop and focus it")
	fmt.Fprintln(w, "  close               Close a window gracefully")
	fmt.Fprintln(w, "  rename              Set a window's title")
	fmt.Fprintln(w, "  state               Add/remove/toggle window state properties")
	fmt.Fprintln(w, "  to-desktop          Move a window to a desktop (-1 = sticky)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  switch              Switch the current desktop")
	fmt.Fprintln(w, "  viewport            Move the desktop viewport")
	fmt.Fprintln(w, "  show-desktop        Toggle the window manager's show-desktop mode")
	fmt.Fprintln(w, "  desktop-count       Change the number of desktops")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  layout list         List available tiling layouts")
	fmt.Fprintln(w, "  layout apply        Tile windows into a layout")
	fmt.Fprintln(w, "  pick                Interactive window picker")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'wmctl <command> --help' for command-specific options.")
}

// loadEnv loads the config, builds the wmctrl client and backend, and
// installs the default logger. Every subcommand starts here.
func loadEnv() (*config.Config, *wmctrl.Client, *platform.WmctrlBackend, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Logging.Level),
	})))

	var opts []wmctrl.Option
	if cfg.Wmctrl.Binary != "" {
		opts = append(opts, wmctrl.WithBinary(cfg.Wmctrl.Binary))
	}
	client := wmctrl.New(opts...)
	backend := platform.NewWmctrlBackend(client)
	if !backend.Available() {
		return nil, nil, nil, fmt.Errorf("%s not found in PATH; install wmctrl first", client.Binary())
	}
	return cfg, client, backend, nil
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func fail(err error) int {
	fmt.Fprintln(os.Stderr, err)
	return 1
}
