// Package esctest provides a Go-native test framework for terminal emulation compliance.
//
// This file contains tests for the HT (Horizontal Tab) control character.
//
// Original esctest2 source:
//   - Project: https://github.com/ThomasDickey/esctest2
//   - File: esctest/tests/cht.py
//   - Authors: George Nachman, Thomas E. Dickey
//   - License: GPL v2
//
// These tests have been converted from Python to Go for offline testing
// of the gridterm terminal emulator without requiring Python or PTY interaction.
package esctest

import "testing"

// Test_HT_Basic tests that a tab from column 1 moves to column 9.
func Test_HT_Basic(t *testing.T) {
	d := NewDriver(80, 24)
	d.Write("\t")
	AssertEQ(t, d.GetCursorPosition().X, 9)
}

// Test_HT_FromMidStop tests that a tab moves to the next stop, not a fixed distance.
func Test_HT_FromMidStop(t *testing.T) {
	d := NewDriver(80, 24)
	CUP(d, NewPoint(4, 1))
	d.Write("\t")
	AssertEQ(t, d.GetCursorPosition().X, 9)
}

// Test_HT_AtStopAdvancesToNext tests that a tab on a stop moves to the following stop.
func Test_HT_AtStopAdvancesToNext(t *testing.T) {
	d := NewDriver(80, 24)
	CUP(d, NewPoint(9, 1))
	d.Write("\t")
	AssertEQ(t, d.GetCursorPosition().X, 17)
}

// Test_HT_ClampsAtRightEdge tests that tabbing past the last column clamps.
func Test_HT_ClampsAtRightEdge(t *testing.T) {
	d := NewDriver(80, 24)
	CUP(d, NewPoint(78, 1))
	d.Write("\t")
	position := d.GetCursorPosition()
	AssertEQ(t, position.X, 80)
	AssertEQ(t, position.Y, 1)
}

// Test_HT_DoesNotErase tests that tab moves over existing text without clearing it.
func Test_HT_DoesNotErase(t *testing.T) {
	d := NewDriver(80, 24)
	d.Write("abcdefghij")
	CUP(d, NewPoint(1, 1))
	d.Write("\t")
	AssertScreenCharsInRectEqual(t, d, NewRect(1, 1, 10, 1), []string{"abcdefghij"})
}
