// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vt/testharness.go
// Summary: Test harness for control sequence testing.
// Usage: Used by test files to send sequences and verify buffer state.

package vt

import "strings"

// TestHarness provides utilities for testing terminal control sequences.
type TestHarness struct {
	term *Terminal
}

// NewTestHarness creates a harness with the specified terminal size.
func NewTestHarness(width, height int, opts ...Option) *TestHarness {
	return &TestHarness{term: NewTerminal(width, height, opts...)}
}

// Terminal returns the wrapped terminal.
func (h *TestHarness) Terminal() *Terminal {
	return h.term
}

// SendSeq sends a string to the parser, control sequences included.
// Example: h.SendSeq("\x1b[5A") sends "cursor up 5".
func (h *TestHarness) SendSeq(seq string) {
	h.term.FeedString(seq)
}

// SendBytes feeds one byte at a time, exercising chunk boundaries.
func (h *TestHarness) SendBytes(seq string) {
	for i := 0; i < len(seq); i++ {
		h.term.Feed([]byte{seq[i]})
	}
}

// GetCell returns the cell at the given grid position (0-based).
func (h *TestHarness) GetCell(x, y int) Cell {
	return h.term.CellAt(x, y)
}

// GetCursor returns the current cursor position (0-based).
func (h *TestHarness) GetCursor() (x, y int) {
	return h.term.Cursor()
}

// GetPen returns the live attribute state.
func (h *TestHarness) GetPen() Pen {
	return h.term.Pen()
}

// RowText returns the trimmed text content of a grid row.
func (h *TestHarness) RowText(y int) string {
	var sb strings.Builder
	for x := 0; x < h.term.Width(); x++ {
		c := h.term.CellAt(x, y)
		if c.Rune == 0 {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(c.Rune)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// RowString renders a slice of cells as text, trailing spaces trimmed.
func RowString(row []Cell) string {
	var sb strings.Builder
	for _, c := range row {
		if c.Rune == 0 {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(c.Rune)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}
