// Package wmctrl wraps the wmctrl(1) command-line tool. Every operation
// formats an argument list, runs the tool as a subprocess, and parses its
// textual output. Nothing talks to the display server directly.
//
// wmctrl fails silently for many requests the window manager chooses to
// ignore, so a successful return only means the subprocess ran; it is no
// guarantee the window actually changed.
package wmctrl

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultBinary is the wmctrl executable looked up on PATH.
const DefaultBinary = "wmctrl"

// ErrWmctrlNotAvailable is returned when wmctrl is not installed.
var ErrWmctrlNotAvailable = errors.New("wmctrl is not available in PATH")

// Client invokes wmctrl. The zero value is not usable; create one with New.
type Client struct {
	binary string
}

// Option customizes a Client.
type Option func(*Client)

// WithBinary overrides the wmctrl executable path.
func WithBinary(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.binary = path
		}
	}
}

// New creates a wmctrl client.
func New(opts ...Option) *Client {
	c := &Client{binary: DefaultBinary}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Binary returns the executable the client invokes.
func (c *Client) Binary() string {
	return c.binary
}

// Available returns true if the wmctrl executable can be found.
func (c *Client) Available() bool {
	_, err := exec.LookPath(c.binary)
	return err == nil
}

// run executes wmctrl with the given arguments, discarding stdout.
// Stderr is folded into the returned error.
func (c *Client) run(args ...string) error {
	if !c.Available() {
		return ErrWmctrlNotAvailable
	}
	cmd := exec.Command(c.binary, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("wmctrl %s failed: %w (%s)", args[0], err, msg)
		}
		return fmt.Errorf("wmctrl %s failed: %w", args[0], err)
	}
	return nil
}

// output executes wmctrl with the given arguments and returns its stdout.
func (c *Client) output(args ...string) (string, error) {
	if !c.Available() {
		return "", ErrWmctrlNotAvailable
	}
	cmd := exec.Command(c.binary, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("wmctrl %s failed: %w (%s)", args[0], err, msg)
		}
		return "", fmt.Errorf("wmctrl %s failed: %w", args[0], err)
	}
	return stdout.String(), nil
}
