// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vt/terminal.go
// Summary: Terminal facade tying the parser to the screen buffer.
// Usage: Feed raw bytes in; read snapshots out. All mutation is
//        synchronous within the Feed call; callers serialize access.

package vt

import "unicode/utf8"

// Terminal is one emulator instance: a parser whose actions drive a
// screen buffer. Output from an attached process goes into Feed;
// keyboard input flows the other way through Input, which forwards to
// the configured input writer (typically the PTY).
type Terminal struct {
	screen *Screen
	parser *Parser

	// partial carries an incomplete trailing UTF-8 sequence between
	// Feed calls, so runes split across chunk boundaries decode whole.
	partial []byte

	input func([]byte)
}

// NewTerminal creates a terminal with the given grid size. Defaults:
// 80x24 when dimensions are non-positive, scrollback capacity 2000.
func NewTerminal(width, height int, opts ...Option) *Terminal {
	if width < 1 {
		width = 80
	}
	if height < 1 {
		height = 24
	}
	t := &Terminal{
		screen: NewScreen(width, height),
		parser: NewParser(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Feed ingests raw bytes, parsing embedded control sequences inline.
// Chunks may split escape sequences and UTF-8 runes at any byte
// boundary; parser state and the trailing partial rune persist until
// the next call.
func (t *Terminal) Feed(data []byte) {
	if len(data) == 0 {
		return
	}
	buf := data
	if len(t.partial) > 0 {
		buf = append(t.partial, data...)
		t.partial = nil
	}
	for len(buf) > 0 {
		r, size := utf8.DecodeRune(buf)
		if r == utf8.RuneError && size == 1 && !utf8.FullRune(buf) {
			// Incomplete trailing sequence: stash and wait for more.
			if len(buf) < utf8.UTFMax {
				t.partial = append(t.partial[:0], buf...)
				return
			}
			// Cannot be completed; fall through and consume one byte.
		}
		t.parser.Parse(r, t.screen.Apply)
		buf = buf[size:]
	}
}

// FeedString is Feed over the bytes of a string.
func (t *Terminal) FeedString(s string) {
	t.Feed([]byte(s))
}

// WriteLine feeds text followed by a newline.
func (t *Terminal) WriteLine(text string) {
	t.FeedString(text + "\n")
}

// Input forwards bytes to the configured input writer. Without one it
// is a no-op; the terminal never blocks waiting for the other side.
func (t *Terminal) Input(data []byte) {
	if t.input != nil {
		t.input(data)
	}
}

// Resize changes the grid dimensions, preserving top-left-anchored
// content and clamping the cursor.
func (t *Terminal) Resize(width, height int) {
	t.screen.Resize(width, height)
}

// Clear erases the whole grid and homes the cursor (ED 2 plus home).
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Reset performs a full reset: default attributes, cursor home and
// visible, cleared grid and scrollback, parser back to ground state.
func (t *Terminal) Reset() {
	t.parser.Reset()
	t.partial = nil
	t.screen.Reset()
}

// SetCursor moves the cursor, clamped to the grid.
func (t *Terminal) SetCursor(x, y int) {
	t.screen.SetCursorPos(y, x)
}

// ShowCursor makes the cursor visible.
func (t *Terminal) ShowCursor() {
	t.screen.cursorVisible = true
}

// HideCursor hides the cursor.
func (t *Terminal) HideCursor() {
	t.screen.cursorVisible = false
}

// ScrollUp pans the display n rows into history.
func (t *Terminal) ScrollUp(n int) { t.screen.ScrollViewUp(n) }

// ScrollDown pans the display n rows back toward the live grid.
func (t *Terminal) ScrollDown(n int) { t.screen.ScrollViewDown(n) }

// ScrollToTop pans the display to the oldest retained row.
func (t *Terminal) ScrollToTop() { t.screen.ScrollViewToTop() }

// ScrollToBottom returns the display to the live grid.
func (t *Terminal) ScrollToBottom() { t.screen.ScrollViewToBottom() }

// --- Snapshot accessors ---

// Width returns the grid width.
func (t *Terminal) Width() int { return t.screen.Width() }

// Height returns the grid height.
func (t *Terminal) Height() int { return t.screen.Height() }

// Cursor returns the cursor position (0-indexed column, row).
func (t *Terminal) Cursor() (x, y int) { return t.screen.Cursor() }

// CursorVisible reports whether the cursor is shown.
func (t *Terminal) CursorVisible() bool { return t.screen.CursorVisible() }

// ScrollOffset returns the view offset into scrollback.
func (t *Terminal) ScrollOffset() int { return t.screen.ScrollOffset() }

// Pen returns the live attribute state.
func (t *Terminal) Pen() Pen { return t.screen.Pen() }

// Cells returns a copy of the live grid in row-major order.
func (t *Terminal) Cells() []Cell { return t.screen.Cells() }

// CellAt returns the cell at a grid position.
func (t *Terminal) CellAt(x, y int) Cell { return t.screen.CellAt(x, y) }

// Viewport returns the visible window over scrollback plus live grid.
func (t *Terminal) Viewport() [][]Cell { return t.screen.Viewport() }

// Scrollback returns the scrollback store.
func (t *Terminal) Scrollback() *Scrollback { return t.screen.Scrollback() }
