// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: capture/replay.go
// Summary: Replays recordings into a fresh emulated terminal.

package capture

import (
	"github.com/framegrace/gridterm/vt"
)

// Replay feeds the recording's sequences into a fresh terminal sized
// from the recording metadata and returns the terminal for inspection.
func Replay(rec *Recording, opts ...vt.Option) *vt.Terminal {
	term := vt.NewTerminal(rec.Metadata.Width, rec.Metadata.Height, opts...)
	term.Feed(rec.Sequences)
	return term
}

// ReplayChunked feeds the recording in fixed-size chunks, exercising
// sequence splits at chunk boundaries. A chunkSize below 1 is treated
// as 1.
func ReplayChunked(rec *Recording, chunkSize int, opts ...vt.Option) *vt.Terminal {
	if chunkSize < 1 {
		chunkSize = 1
	}
	term := vt.NewTerminal(rec.Metadata.Width, rec.Metadata.Height, opts...)
	data := rec.Sequences
	for len(data) > 0 {
		n := chunkSize
		if n > len(data) {
			n = len(data)
		}
		term.Feed(data[:n])
		data = data[n:]
	}
	return term
}

// Screens compares two terminals cell by cell and returns true when
// their grids, cursors and visibility match.
func Screens(a, b *vt.Terminal) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	ax, ay := a.Cursor()
	bx, by := b.Cursor()
	if ax != bx || ay != by || a.CursorVisible() != b.CursorVisible() {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.CellAt(x, y) != b.CellAt(x, y) {
				return false
			}
		}
	}
	return true
}
