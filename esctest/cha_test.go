// Package esctest provides a Go-native test framework for terminal emulation compliance.
//
// This file contains tests for the CHA (Cursor Horizontal Absolute) escape sequence.
//
// Original esctest2 source:
//   - Project: https://github.com/ThomasDickey/esctest2
//   - File: esctest/tests/cha.py
//   - Authors: George Nachman, Thomas E. Dickey
//   - License: GPL v2
//
// These tests have been converted from Python to Go for offline testing
// of the gridterm terminal emulator without requiring Python or PTY interaction.
package esctest

import "testing"

// Test_CHA_DefaultParam tests that CHA moves to column 1 with no parameter given.
func Test_CHA_DefaultParam(t *testing.T) {
	d := NewDriver(80, 24)
	CUP(d, NewPoint(5, 3))
	CHA(d)
	position := d.GetCursorPosition()
	AssertEQ(t, position.X, 1)
	AssertEQ(t, position.Y, 3)
}

// Test_CHA_ExplicitParam tests that CHA moves to the specified column.
func Test_CHA_ExplicitParam(t *testing.T) {
	d := NewDriver(80, 24)
	CUP(d, NewPoint(5, 3))
	CHA(d, 10)
	position := d.GetCursorPosition()
	AssertEQ(t, position.X, 10)
	AssertEQ(t, position.Y, 3)
}

// Test_CHA_ZeroIsTreatedAsOne tests that a zero parameter moves to column 1.
func Test_CHA_ZeroIsTreatedAsOne(t *testing.T) {
	d := NewDriver(80, 24)
	CUP(d, NewPoint(5, 3))
	CHA(d, 0)
	AssertEQ(t, d.GetCursorPosition().X, 1)
}

// Test_CHA_OutOfBoundsLarge tests that overly large parameters clamp to the last column.
func Test_CHA_OutOfBoundsLarge(t *testing.T) {
	d := NewDriver(80, 24)
	CUP(d, NewPoint(5, 3))
	CHA(d, 9999)
	position := d.GetCursorPosition()
	AssertEQ(t, position.X, d.GetScreenSize().Width)
	AssertEQ(t, position.Y, 3)
}
