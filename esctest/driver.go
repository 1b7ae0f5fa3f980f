package esctest

import (
	"github.com/framegrace/gridterm/vt"
)

// Driver provides a headless interface to a gridterm terminal for
// testing. It sends escape sequences and text, and queries buffer state
// in 1-indexed VT coordinates.
type Driver struct {
	term   *vt.Terminal
	width  int
	height int
}

// NewDriver creates a new headless terminal driver with the given dimensions.
func NewDriver(width, height int) *Driver {
	return &Driver{
		term:   vt.NewTerminal(width, height),
		width:  width,
		height: height,
	}
}

// Terminal returns the driven terminal.
func (d *Driver) Terminal() *vt.Terminal {
	return d.term
}

// Write sends a string to the terminal, escape sequences included.
func (d *Driver) Write(text string) {
	d.term.FeedString(text)
}

// WriteBytewise sends the string one byte at a time, exercising chunk
// boundaries inside sequences.
func (d *Driver) WriteBytewise(text string) {
	for i := 0; i < len(text); i++ {
		d.term.Feed([]byte{text[i]})
	}
}

// GetCursorPosition returns the current cursor position (1-indexed).
func (d *Driver) GetCursorPosition() Point {
	x, y := d.term.Cursor()
	return NewPoint(x+1, y+1)
}

// GetScreenSize returns the terminal dimensions in cells.
func (d *Driver) GetScreenSize() Size {
	return NewSize(d.width, d.height)
}

// GetScreenCharsInRect returns the characters in the specified
// rectangle, 1-indexed to match VT conventions.
func (d *Driver) GetScreenCharsInRect(rect Rect) []string {
	lines := make([]string, 0, rect.Height())
	for y := rect.Top; y <= rect.Bottom; y++ {
		if y < 1 || y > d.height {
			lines = append(lines, "")
			continue
		}
		line := ""
		for x := rect.Left; x <= rect.Right; x++ {
			if x < 1 || x > d.width {
				line += " "
				continue
			}
			cell := d.term.CellAt(x-1, y-1)
			if cell.Rune == 0 {
				line += " "
			} else {
				line += string(cell.Rune)
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// GetScreenChar returns the character at the specified position (1-indexed).
func (d *Driver) GetScreenChar(p Point) rune {
	if p.X < 1 || p.X > d.width || p.Y < 1 || p.Y > d.height {
		return ' '
	}
	cell := d.term.CellAt(p.X-1, p.Y-1)
	if cell.Rune == 0 {
		return ' '
	}
	return cell.Rune
}

// GetCellAt returns the cell at the specified position (1-indexed).
func (d *Driver) GetCellAt(p Point) vt.Cell {
	return d.term.CellAt(p.X-1, p.Y-1)
}

// Reset resets the terminal to its initial state.
func (d *Driver) Reset() {
	d.term.Reset()
}
