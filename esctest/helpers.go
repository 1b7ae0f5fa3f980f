// Package esctest provides a Go-native test framework for terminal emulation compliance.
//
// This package is derived from esctest2 by George Nachman and Thomas E. Dickey.
// Original project: https://github.com/ThomasDickey/esctest2
// License: GPL v2
//
// The tests have been converted from Python to Go to enable offline, deterministic
// testing of the gridterm terminal emulator without requiring Python or PTY interaction.
package esctest

import (
	"fmt"
	"testing"
)

// ESC is the escape character.
const ESC = "\x1b"

// --- Assertion Functions ---

// AssertEQ asserts that two values are equal.
func AssertEQ(t *testing.T, actual, expected interface{}) {
	t.Helper()
	if actual != expected {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}

// AssertTrue asserts that a value is true.
func AssertTrue(t *testing.T, value bool, message string) {
	t.Helper()
	if !value {
		if message != "" {
			t.Errorf("Assertion failed: %s", message)
		} else {
			t.Error("Assertion failed")
		}
	}
}

// AssertScreenCharsInRectEqual asserts that the characters in a
// rectangle match the expected strings.
func AssertScreenCharsInRectEqual(t *testing.T, d *Driver, rect Rect, expected []string) {
	t.Helper()
	actual := d.GetScreenCharsInRect(rect)
	if len(actual) != len(expected) {
		t.Errorf("Line count mismatch: expected %d lines, got %d lines", len(expected), len(actual))
		return
	}
	for i, expectedLine := range expected {
		if actual[i] != expectedLine {
			t.Errorf("Line %d: expected %q, got %q", i+1, expectedLine, actual[i])
		}
	}
}

// --- Escape Sequence Commands ---

// CUP (Cursor Position) - Move cursor to specified position.
func CUP(d *Driver, p Point) {
	d.Write(fmt.Sprintf("%s[%d;%dH", ESC, p.Y, p.X))
}

// CUU (Cursor Up) - Move cursor up by n lines.
func CUU(d *Driver, n ...int) {
	writeCount(d, 'A', n)
}

// CUD (Cursor Down) - Move cursor down by n lines.
func CUD(d *Driver, n ...int) {
	writeCount(d, 'B', n)
}

// CUF (Cursor Forward) - Move cursor forward by n columns.
func CUF(d *Driver, n ...int) {
	writeCount(d, 'C', n)
}

// CUB (Cursor Back) - Move cursor backward by n columns.
func CUB(d *Driver, n ...int) {
	writeCount(d, 'D', n)
}

// CHA (Cursor Horizontal Absolute) - Move cursor to column n on the current line.
func CHA(d *Driver, n ...int) {
	if len(n) == 0 {
		d.Write(fmt.Sprintf("%s[G", ESC))
	} else {
		d.Write(fmt.Sprintf("%s[%dG", ESC, n[0]))
	}
}

// ED (Erase in Display) - Erase part or all of the display.
func ED(d *Driver, mode ...int) {
	if len(mode) == 0 {
		d.Write(fmt.Sprintf("%s[J", ESC))
	} else {
		d.Write(fmt.Sprintf("%s[%dJ", ESC, mode[0]))
	}
}

// EL (Erase in Line) - Erase part or all of the cursor's line.
func EL(d *Driver, mode ...int) {
	if len(mode) == 0 {
		d.Write(fmt.Sprintf("%s[K", ESC))
	} else {
		d.Write(fmt.Sprintf("%s[%dK", ESC, mode[0]))
	}
}

// SGR (Select Graphic Rendition) - Set text attributes and colors.
func SGR(d *Driver, codes ...int) {
	seq := ESC + "["
	for i, c := range codes {
		if i > 0 {
			seq += ";"
		}
		seq += fmt.Sprintf("%d", c)
	}
	d.Write(seq + "m")
}

// SCOSC - Save cursor position.
func SCOSC(d *Driver) {
	d.Write(ESC + "[s")
}

// SCORC - Restore cursor position.
func SCORC(d *Driver) {
	d.Write(ESC + "[u")
}

// DECSET - Set a DEC private mode.
func DECSET(d *Driver, mode int) {
	d.Write(fmt.Sprintf("%s[?%dh", ESC, mode))
}

// DECRESET - Reset a DEC private mode.
func DECRESET(d *Driver, mode int) {
	d.Write(fmt.Sprintf("%s[?%dl", ESC, mode))
}

func writeCount(d *Driver, final rune, n []int) {
	if len(n) == 0 {
		d.Write(fmt.Sprintf("%s[%c", ESC, final))
	} else {
		d.Write(fmt.Sprintf("%s[%d%c", ESC, n[0], final))
	}
}
