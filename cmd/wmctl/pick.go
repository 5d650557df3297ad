package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/1broseidon/wmctl/internal/tui"
)

func runPick(args []string) int {
	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl pick")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Interactive window picker.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Keybindings:")
		fmt.Fprintln(os.Stderr, "  j/k, ↑/↓  Navigate windows")
		fmt.Fprintln(os.Stderr, "  Enter     Activate selected window and quit")
		fmt.Fprintln(os.Stderr, "  x         Close selected window")
		fmt.Fprintln(os.Stderr, "  f         Toggle fullscreen")
		fmt.Fprintln(os.Stderr, "  m         Toggle maximize")
		fmt.Fprintln(os.Stderr, "  r         Refresh window list")
		fmt.Fprintln(os.Stderr, "  /         Filter by title or class")
		fmt.Fprintln(os.Stderr, "  q         Quit")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "pick takes no arguments")
		fs.Usage()
		return 2
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fail(fmt.Errorf("pick requires an interactive terminal (stdin/stdout must be TTYs)"))
	}

	_, _, backend, err := loadEnv()
	if err != nil {
		return fail(err)
	}
	if err := tui.Run(backend); err != nil {
		return fail(err)
	}
	return 0
}
