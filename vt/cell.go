// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vt/cell.go
// Summary: Cell, color and attribute types for the terminal emulator core.
// Usage: Shared by the parser, the screen buffer and the render adapters.
// Notes: Keeps emulation concerns isolated from rendering.

package vt

// Attribute is a bitmask of text styles applied to a cell.
//
// Bit 1 is reserved and carries no meaning; the gap between bold and
// italic is part of the mask layout and must not be reassigned.
type Attribute uint16

const (
	AttrBold Attribute = 1 << iota
	_                  // bit 1 reserved
	AttrItalic
	AttrUnderline
)

// String returns a human-readable representation of the attribute flags.
func (a Attribute) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	if a&AttrBold != 0 {
		parts = append(parts, "bold")
	}
	if a&AttrItalic != 0 {
		parts = append(parts, "italic")
	}
	if a&AttrUnderline != 0 {
		parts = append(parts, "underline")
	}
	if len(parts) == 0 {
		return "unknown"
	}
	result := parts[0]
	for i := 1; i < len(parts); i++ {
		result += "|" + parts[i]
	}
	return result
}

// ColorMode defines the type of color stored.
type ColorMode int

const (
	ColorModeDefault  ColorMode = iota // Default terminal color
	ColorModeStandard                  // The basic 16 ANSI colors
	ColorMode256                       // 256-color palette
	ColorModeRGB                       // 24-bit "true" color
)

// Color represents a color in potentially different modes.
type Color struct {
	Mode    ColorMode
	Value   uint8 // Holds the color code for Standard (0-15) and 256-mode (0-255)
	R, G, B uint8 // Holds the channel values for RGB mode
}

// StandardColor returns one of the basic 16 ANSI colors.
func StandardColor(index uint8) Color {
	return Color{Mode: ColorModeStandard, Value: index & 0x0f}
}

// Color256 returns a color from the 256-color palette.
func Color256(index uint8) Color {
	return Color{Mode: ColorMode256, Value: index}
}

// RGBColor returns a 24-bit color.
func RGBColor(r, g, b uint8) Color {
	return Color{Mode: ColorModeRGB, R: r, G: g, B: b}
}

// Packed returns the canonical numeric encoding of the color: the palette
// index for standard/256-color modes, (r<<16)|(g<<8)|b for RGB mode, and
// zero for the default color.
func (c Color) Packed() uint32 {
	switch c.Mode {
	case ColorModeStandard, ColorMode256:
		return uint32(c.Value)
	case ColorModeRGB:
		return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	default:
		return 0
	}
}

// Cell represents a single character cell on the screen.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
	Attr Attribute
}

// --- Predefined default colors for convenience ---
var (
	DefaultFG = Color{Mode: ColorModeDefault}
	DefaultBG = Color{Mode: ColorModeDefault}
)

// blankCell is what erase operations and fresh rows are filled with.
// Erasing always uses default attributes, not the live pen.
func blankCell() Cell {
	return Cell{Rune: ' ', FG: DefaultFG, BG: DefaultBG}
}
