// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vt/action.go
// Summary: The closed set of structural actions the parser can emit.
// Usage: Produced by Parser.Parse, consumed by Screen.Apply.

package vt

// ActionType discriminates the Action variants. The set is closed: the
// screen buffer switches over it exhaustively, which keeps the dispatch
// table testable in isolation from buffer mutation.
type ActionType int

const (
	ActionPrint ActionType = iota
	ActionLineFeed
	ActionCarriageReturn
	ActionBackspace
	ActionTab
	ActionCursorUp
	ActionCursorDown
	ActionCursorForward
	ActionCursorBack
	ActionCursorColumn
	ActionCursorPosition
	ActionEraseDisplay
	ActionEraseLine
	ActionSetGraphics
	ActionSaveCursor
	ActionRestoreCursor
	ActionShowCursor
	ActionHideCursor
)

// String returns the mnemonic for the action type.
func (t ActionType) String() string {
	switch t {
	case ActionPrint:
		return "print"
	case ActionLineFeed:
		return "linefeed"
	case ActionCarriageReturn:
		return "carriage-return"
	case ActionBackspace:
		return "backspace"
	case ActionTab:
		return "tab"
	case ActionCursorUp:
		return "cursor-up"
	case ActionCursorDown:
		return "cursor-down"
	case ActionCursorForward:
		return "cursor-forward"
	case ActionCursorBack:
		return "cursor-back"
	case ActionCursorColumn:
		return "cursor-column"
	case ActionCursorPosition:
		return "cursor-position"
	case ActionEraseDisplay:
		return "erase-display"
	case ActionEraseLine:
		return "erase-line"
	case ActionSetGraphics:
		return "set-graphics"
	case ActionSaveCursor:
		return "save-cursor"
	case ActionRestoreCursor:
		return "restore-cursor"
	case ActionShowCursor:
		return "show-cursor"
	case ActionHideCursor:
		return "hide-cursor"
	}
	return "unknown"
}

// Action is one structural mutation against the screen buffer.
//
// Field use by variant:
//   - Print: Rune
//   - CursorUp/Down/Forward/Back: N (count, >= 1)
//   - CursorColumn: N (0-indexed column)
//   - CursorPosition: N (0-indexed row), Col (0-indexed column)
//   - EraseDisplay/EraseLine: Mode (0, 1 or 2)
//   - SetGraphics: Params (SGR codes, in order)
//
// The remaining variants carry no arguments.
type Action struct {
	Type   ActionType
	Rune   rune
	N      int
	Col    int
	Mode   int
	Params []int
}
