// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/host.go
// Summary: Runs a child process on a PTY and feeds its output to a terminal.
// Usage: h, _ := host.Start("bash", 80, 24); defer h.Close()
// Notes: The terminal is single-threaded; all access goes through h.mu.

package host

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"sync"

	"github.com/creack/pty"

	"github.com/framegrace/gridterm/vt"
)

// Host wires a child process running on a pseudo-terminal to an
// emulated terminal. Output read from the PTY is fed to the emulator;
// input written through the emulator's input sink goes to the PTY.
type Host struct {
	command string
	args    []string
	cmd     *exec.Cmd
	pty     *os.File
	term    *vt.Terminal

	mu       sync.Mutex
	stop     chan struct{}
	done     chan struct{}
	onUpdate func()
}

// Option configures a Host before the child process starts.
type Option func(*Host)

// WithUpdateHandler registers a callback invoked after each chunk of
// PTY output has been applied, for render scheduling.
func WithUpdateHandler(fn func()) Option {
	return func(h *Host) { h.onUpdate = fn }
}

// WithArgs sets the arguments passed to the child command.
func WithArgs(args ...string) Option {
	return func(h *Host) { h.args = args }
}

// Start launches command on a PTY sized cols x rows and begins feeding
// its output into a fresh terminal.
func Start(command string, cols, rows int, opts ...Option) (*Host, error) {
	h := &Host{
		command: command,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}

	h.term = vt.NewTerminal(cols, rows, vt.WithInputWriter(func(b []byte) {
		h.mu.Lock()
		p := h.pty
		h.mu.Unlock()
		if p != nil {
			if _, err := p.Write(b); err != nil {
				log.Printf("[host] pty write failed: %v", err)
			}
		}
	}))

	cmd := exec.Command(command, h.args...)
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"COLUMNS="+strconv.Itoa(cols),
		"LINES="+strconv.Itoa(rows),
	)
	h.cmd = cmd

	p, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start pty for %q: %w", command, err)
	}
	h.pty = p

	go h.readLoop()

	return h, nil
}

// readLoop pumps PTY output into the emulator until the PTY closes.
func (h *Host) readLoop() {
	defer close(h.done)

	buf := make([]byte, 4096)
	for {
		select {
		case <-h.stop:
			return
		default:
		}

		n, err := h.pty.Read(buf)
		if n > 0 {
			h.mu.Lock()
			h.term.Feed(buf[:n])
			h.mu.Unlock()
			if h.onUpdate != nil {
				h.onUpdate()
			}
		}
		if err != nil {
			return
		}
	}
}

// Terminal returns the hosted terminal. Callers must hold no other
// Host locks; reads race with the feed goroutine unless done through
// Snapshot or while the host is stopped.
func (h *Host) Terminal() *vt.Terminal {
	return h.term
}

// Snapshot runs fn with the host lock held so it sees a consistent
// terminal state.
func (h *Host) Snapshot(fn func(*vt.Terminal)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn(h.term)
}

// Input sends bytes typed by the user to the child process.
func (h *Host) Input(b []byte) {
	h.mu.Lock()
	term := h.term
	h.mu.Unlock()
	term.Input(b)
}

// Resize resizes both the emulated grid and the PTY.
func (h *Host) Resize(cols, rows int) error {
	h.mu.Lock()
	h.term.Resize(cols, rows)
	p := h.pty
	h.mu.Unlock()

	if p == nil {
		return nil
	}
	return pty.Setsize(p, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
}

// Wait blocks until the child process exits and the read loop drains.
func (h *Host) Wait() error {
	<-h.done
	return h.cmd.Wait()
}

// Close stops the read loop, closes the PTY and kills the child if it
// is still running.
func (h *Host) Close() error {
	select {
	case <-h.stop:
	default:
		close(h.stop)
	}

	var err error
	if h.pty != nil {
		err = h.pty.Close()
	}
	if h.cmd != nil && h.cmd.Process != nil {
		h.cmd.Process.Kill()
	}
	<-h.done
	return err
}
