// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vt/options.go
// Summary: Functional options for Terminal construction.

package vt

// Option configures a Terminal at construction time.
type Option func(*Terminal)

// WithScrollbackCapacity bounds the number of rows retained after they
// scroll off the top of the grid.
func WithScrollbackCapacity(capacity int) Option {
	return func(t *Terminal) {
		t.screen.scrollbk = NewScrollback(capacity)
	}
}

// WithInputWriter sets the sink Input forwards to, typically the write
// side of the attached PTY.
func WithInputWriter(w func([]byte)) Option {
	return func(t *Terminal) {
		t.input = w
	}
}

// WithEvictionHook registers an observer for rows moving from the grid
// into scrollback. The hook receives the evicted row by value semantics
// (the slice is owned by the scrollback store afterwards; hooks must
// copy if they retain it). Used to drive the history search index.
func WithEvictionHook(hook func(row []Cell)) Option {
	return func(t *Terminal) {
		t.screen.onEvict = hook
	}
}
