// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vt/pen.go
// Summary: SGR (Select Graphic Rendition) - the live attribute state.
// Usage: Part of the terminal emulator core.

package vt

// Pen is the current attribute state: every cell written while it is
// active picks up its foreground, background and style mask. The zero
// value is the fully reset state (default colors, no styles).
type Pen struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// ResetPen returns the fully reset attribute state.
func ResetPen() Pen {
	return Pen{FG: DefaultFG, BG: DefaultBG}
}

// Apply consumes a list of SGR codes left to right and returns the
// resulting pen. Compound sequences such as "1;31" and the extended
// color forms 38;5;N, 48;5;N, 38;2;R;G;B and 48;2;R;G;B are handled;
// the extended forms consume their trailing parameters as a unit.
// Unrecognized codes are skipped without error.
func (p Pen) Apply(codes []int) Pen {
	if len(codes) == 0 {
		codes = []int{0}
	}
	i := 0
	for i < len(codes) {
		c := codes[i]
		switch {
		case c == 0:
			p = ResetPen()
		case c == 1:
			p.Attr |= AttrBold
		case c == 3:
			p.Attr |= AttrItalic
		case c == 4:
			p.Attr |= AttrUnderline
		case c >= 30 && c <= 37:
			p.FG = StandardColor(uint8(c - 30))
		case c >= 40 && c <= 47:
			p.BG = StandardColor(uint8(c - 40))
		case c == 38: // Set extended foreground color
			if i+2 < len(codes) && codes[i+1] == 5 { // 256-color palette
				p.FG = Color256(clampChannel(codes[i+2]))
				i += 2
			} else if i+4 < len(codes) && codes[i+1] == 2 { // RGB true-color
				p.FG = RGBColor(clampChannel(codes[i+2]), clampChannel(codes[i+3]), clampChannel(codes[i+4]))
				i += 4
			}
		case c == 48: // Set extended background color
			if i+2 < len(codes) && codes[i+1] == 5 {
				p.BG = Color256(clampChannel(codes[i+2]))
				i += 2
			} else if i+4 < len(codes) && codes[i+1] == 2 {
				p.BG = RGBColor(clampChannel(codes[i+2]), clampChannel(codes[i+3]), clampChannel(codes[i+4]))
				i += 4
			}
		case c >= 90 && c <= 97: // Bright foreground
			p.FG = StandardColor(uint8(c - 90 + 8))
		case c >= 100 && c <= 107: // Bright background
			p.BG = StandardColor(uint8(c - 100 + 8))
		}
		i++
	}
	return p
}

// clampChannel bounds an SGR color argument into the 0-255 range.
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
