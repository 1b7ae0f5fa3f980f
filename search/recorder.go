// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: search/recorder.go
// Summary: Bridges screen eviction to the history index.

package search

import (
	"time"

	"github.com/framegrace/gridterm/vt"
)

// Recorder assigns monotonically increasing line numbers to rows
// evicted into scrollback and feeds their text to an Index. Install
// its Hook on the terminal with vt.WithEvictionHook.
type Recorder struct {
	index *Index
	next  int64
	now   func() time.Time
}

// NewRecorder creates a recorder writing to the given index.
func NewRecorder(index *Index) *Recorder {
	return &Recorder{index: index, now: time.Now}
}

// Hook returns the eviction callback to install on a terminal.
func (r *Recorder) Hook() func([]vt.Cell) {
	return func(row []vt.Cell) {
		text := vt.RowString(row)
		idx := r.next
		r.next++
		r.index.IndexLine(idx, r.now(), text)
	}
}

// Lines returns the number of rows recorded so far.
func (r *Recorder) Lines() int64 {
	return r.next
}
