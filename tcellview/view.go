// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tcellview/view.go
// Summary: Renders an emulated terminal onto a tcell screen.
// Usage: v := tcellview.New(term); v.Draw(screen)
// Notes: Rendering reads the viewport, so history panning comes for free.

package tcellview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/gridterm/vt"
)

// View draws a terminal's viewport onto a tcell.Screen.
type View struct {
	term    *vt.Terminal
	palette [258]tcell.Color
}

// New creates a view for the given terminal.
func New(term *vt.Terminal) *View {
	return &View{
		term:    term,
		palette: newDefaultPalette(),
	}
}

// mapColor translates an emulator color to a tcell color through the
// local palette.
func (v *View) mapColor(c vt.Color, defaultSlot int) tcell.Color {
	switch c.Mode {
	case vt.ColorModeDefault:
		return v.palette[defaultSlot]
	case vt.ColorModeStandard, vt.ColorMode256:
		return v.palette[c.Value]
	case vt.ColorModeRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorDefault
	}
}

// CellStyle translates a cell's colors and attributes into a tcell style.
func (v *View) CellStyle(c vt.Cell) tcell.Style {
	style := tcell.StyleDefault
	style = style.Foreground(v.mapColor(c.FG, slotDefaultFG))
	style = style.Background(v.mapColor(c.BG, slotDefaultBG))
	style = style.Bold(c.Attr&vt.AttrBold != 0)
	style = style.Italic(c.Attr&vt.AttrItalic != 0)
	style = style.Underline(c.Attr&vt.AttrUnderline != 0)
	return style
}

// Draw renders the terminal's viewport onto the screen at origin.
// The cursor cell is drawn reversed when visible and not panned away.
func (v *View) Draw(s tcell.Screen) {
	viewport := v.term.Viewport()
	cursorX, cursorY := v.term.Cursor()
	showCursor := v.term.CursorVisible() && v.term.ScrollOffset() == 0

	for y, row := range viewport {
		for x, cell := range row {
			r := cell.Rune
			// Combining marks and other zero-width runes would corrupt
			// the grid alignment; render them as spaces.
			if r == 0 || runewidth.RuneWidth(r) == 0 {
				r = ' '
			}
			style := v.CellStyle(cell)
			if showCursor && x == cursorX && y == cursorY {
				style = style.Reverse(true)
			}
			s.SetContent(x, y, r, nil, style)
		}
	}
}
