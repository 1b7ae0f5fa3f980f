// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/app/app.go
// Summary: Interactive terminal session: tcell UI in front of a PTY host.
// Usage: err := app.Run(app.Options{Command: "bash"})
// Notes: Shift+PgUp/PgDn pan history; plain PgUp/PgDn go to the child.

package app

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/gridterm/host"
	"github.com/framegrace/gridterm/search"
	"github.com/framegrace/gridterm/tcellview"
	"github.com/framegrace/gridterm/vt"
)

// Options configures an interactive session.
type Options struct {
	// Command is the child process to run. Defaults to $SHELL or sh.
	Command string

	// IndexPath, when non-empty, enables full-text indexing of history
	// into a SQLite database at this path.
	IndexPath string
}

// Run starts the child process and drives the UI until it exits.
func Run(opts Options) error {
	command := opts.Command
	if command == "" {
		command = os.Getenv("SHELL")
	}
	if command == "" {
		command = "sh"
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	cols, rows := screen.Size()

	var hostOpts []host.Option
	updates := make(chan struct{}, 1)
	hostOpts = append(hostOpts, host.WithUpdateHandler(func() {
		select {
		case updates <- struct{}{}:
		default:
		}
	}))

	h, err := host.Start(command, cols, rows, hostOpts...)
	if err != nil {
		return err
	}
	defer h.Close()

	if opts.IndexPath != "" {
		idx, err := search.NewIndex(opts.IndexPath)
		if err != nil {
			return fmt.Errorf("open history index: %w", err)
		}
		defer idx.Close()
		rec := search.NewRecorder(idx)
		// Installed after Start; eviction only happens on the feed
		// path, which holds the host lock.
		h.Snapshot(func(term *vt.Terminal) {
			vt.WithEvictionHook(rec.Hook())(term)
		})
	}

	view := tcellview.New(h.Terminal())

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	exited := make(chan struct{})
	go func() {
		h.Wait()
		close(exited)
	}()

	redraw := func() {
		h.Snapshot(func(*vt.Terminal) {
			view.Draw(screen)
		})
		screen.Show()
	}
	redraw()

	for {
		select {
		case <-exited:
			close(quit)
			return nil

		case <-updates:
			redraw()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, hgt := ev.Size()
				if err := h.Resize(w, hgt); err != nil {
					log.Printf("[app] resize failed: %v", err)
				}
				screen.Sync()
				redraw()

			case *tcell.EventKey:
				if handlePanning(h, ev) {
					redraw()
					continue
				}
				if b := encodeKey(ev); b != nil {
					h.Input(b)
				}
			}
		}
	}
}

// handlePanning consumes Shift+PgUp/PgDn/Home/End as history controls.
// Any other key snaps the view back to the live grid.
func handlePanning(h *host.Host, ev *tcell.EventKey) bool {
	if ev.Modifiers()&tcell.ModShift != 0 {
		var handled bool
		h.Snapshot(func(term *vt.Terminal) {
			switch ev.Key() {
			case tcell.KeyPgUp:
				term.ScrollUp(term.Height() / 2)
				handled = true
			case tcell.KeyPgDn:
				term.ScrollDown(term.Height() / 2)
				handled = true
			case tcell.KeyHome:
				term.ScrollToTop()
				handled = true
			case tcell.KeyEnd:
				term.ScrollToBottom()
				handled = true
			}
		})
		return handled
	}

	h.Snapshot(func(term *vt.Terminal) {
		if term.ScrollOffset() != 0 {
			term.ScrollToBottom()
		}
	})
	return false
}
