// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vt/scrollback.go
// Summary: Bounded FIFO of rows evicted from the top of the grid.

package vt

const defaultScrollbackCapacity = 2000

// Scrollback stores rows that scrolled off the top of the visible grid.
// Rows are appended only by the screen buffer's vertical-overflow path;
// when capacity is exceeded the oldest row is discarded.
//
// Row 0 is the oldest retained row, Len()-1 the most recent.
type Scrollback struct {
	rows [][]Cell
	max  int
}

// NewScrollback creates a scrollback store with the given capacity.
// Non-positive capacities fall back to the default.
func NewScrollback(capacity int) *Scrollback {
	if capacity <= 0 {
		capacity = defaultScrollbackCapacity
	}
	return &Scrollback{
		rows: make([][]Cell, 0, min(capacity, 1024)),
		max:  capacity,
	}
}

// Len returns the number of retained rows.
func (s *Scrollback) Len() int {
	return len(s.rows)
}

// Capacity returns the maximum number of rows retained.
func (s *Scrollback) Capacity() int {
	return s.max
}

// Append adds a row to the end of the store, discarding the oldest
// row when over capacity. The store takes ownership of the slice.
func (s *Scrollback) Append(row []Cell) {
	s.rows = append(s.rows, row)
	if len(s.rows) > s.max {
		excess := len(s.rows) - s.max
		for i := 0; i < excess; i++ {
			s.rows[i] = nil // Help GC
		}
		s.rows = s.rows[excess:]
	}
}

// Row returns a copy of the row at the given index, oldest first.
// Returns nil when the index is out of bounds.
func (s *Scrollback) Row(index int) []Cell {
	if index < 0 || index >= len(s.rows) {
		return nil
	}
	row := make([]Cell, len(s.rows[index]))
	copy(row, s.rows[index])
	return row
}

// row returns the stored slice without copying. Internal read path
// for viewport assembly; callers must not retain or mutate it.
func (s *Scrollback) row(index int) []Cell {
	if index < 0 || index >= len(s.rows) {
		return nil
	}
	return s.rows[index]
}

// Clear removes all retained rows.
func (s *Scrollback) Clear() {
	for i := range s.rows {
		s.rows[i] = nil
	}
	s.rows = s.rows[:0]
}
