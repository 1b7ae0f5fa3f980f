// Package esctest provides a Go-native test framework for terminal emulation compliance.
//
// This file contains tests for the CR (Carriage Return) control character.
//
// Original esctest2 source:
//   - Project: https://github.com/ThomasDickey/esctest2
//   - File: esctest/tests/cr.py
//   - Authors: George Nachman, Thomas E. Dickey
//   - License: GPL v2
//
// These tests have been converted from Python to Go for offline testing
// of the gridterm terminal emulator without requiring Python or PTY interaction.
package esctest

import "testing"

// Test_CR_Basic tests that carriage return moves the cursor to the first column.
func Test_CR_Basic(t *testing.T) {
	d := NewDriver(80, 24)
	CUP(d, NewPoint(10, 3))
	d.Write("\r")
	position := d.GetCursorPosition()
	AssertEQ(t, position.X, 1)
	AssertEQ(t, position.Y, 3)
}

// Test_CR_Overwrite tests that text after CR overwrites the start of the line.
func Test_CR_Overwrite(t *testing.T) {
	d := NewDriver(80, 24)
	d.Write("Hello\rWorld")
	AssertScreenCharsInRectEqual(t, d, NewRect(1, 1, 5, 1), []string{"World"})
}

// Test_CR_AtFirstColumn tests that CR at column 1 is a no-op.
func Test_CR_AtFirstColumn(t *testing.T) {
	d := NewDriver(80, 24)
	CUP(d, NewPoint(1, 4))
	d.Write("\r")
	position := d.GetCursorPosition()
	AssertEQ(t, position.X, 1)
	AssertEQ(t, position.Y, 4)
}
