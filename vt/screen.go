// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vt/screen.go
// Summary: The cell grid: cursor, line wrap, scroll-on-overflow, erase, resize.
// Usage: Mutated exclusively through Apply; read through snapshot accessors.

package vt

// Screen owns the fixed-size cell grid, the cursor and the live pen.
// Rows evicted by scroll-on-overflow land in the scrollback store.
// The view offset pans reads over history; it never affects where
// writes go.
type Screen struct {
	width, height    int
	cells            []Cell // row-major, len == width*height
	cursorX, cursorY int
	cursorVisible    bool
	pen              Pen

	saved    *savedCursor
	scrollbk *Scrollback

	// viewOffset is the number of scrollback rows the display is panned
	// up by. Always within [0, scrollbk.Len()].
	viewOffset int

	// onEvict observes rows as they move from the grid into scrollback.
	onEvict func(row []Cell)
}

type savedCursor struct {
	x, y int
}

// NewScreen creates a cleared screen of the given size. Dimensions are
// clamped to a minimum of 1x1.
func NewScreen(width, height int) *Screen {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s := &Screen{
		width:         width,
		height:        height,
		cells:         make([]Cell, width*height),
		cursorVisible: true,
		pen:           ResetPen(),
		scrollbk:      NewScrollback(defaultScrollbackCapacity),
	}
	s.clearAll()
	return s
}

// Apply executes a single parser action against the grid. The switch is
// exhaustive over the closed action set.
func (s *Screen) Apply(a Action) {
	switch a.Type {
	case ActionPrint:
		s.placeRune(a.Rune)
	case ActionLineFeed:
		s.LineFeed()
	case ActionCarriageReturn:
		s.CarriageReturn()
	case ActionBackspace:
		s.Backspace()
	case ActionTab:
		s.Tab()
	case ActionCursorUp:
		s.MoveCursorUp(a.N)
	case ActionCursorDown:
		s.MoveCursorDown(a.N)
	case ActionCursorForward:
		s.MoveCursorForward(a.N)
	case ActionCursorBack:
		s.MoveCursorBackward(a.N)
	case ActionCursorColumn:
		s.SetCursorColumn(a.N)
	case ActionCursorPosition:
		s.SetCursorPos(a.N, a.Col)
	case ActionEraseDisplay:
		s.EraseDisplay(a.Mode)
	case ActionEraseLine:
		s.EraseLine(a.Mode)
	case ActionSetGraphics:
		s.pen = s.pen.Apply(a.Params)
	case ActionSaveCursor:
		s.SaveCursor()
	case ActionRestoreCursor:
		s.RestoreCursor()
	case ActionShowCursor:
		s.cursorVisible = true
	case ActionHideCursor:
		s.cursorVisible = false
	}
}

// cellIndex maps grid coordinates onto the row-major cell slice.
func (s *Screen) cellIndex(x, y int) int {
	return y*s.width + x
}

// placeRune writes a rune at the cursor with the live pen and advances
// the cursor, wrapping to the next row (and scrolling on overflow) when
// the write filled the last column.
func (s *Screen) placeRune(r rune) {
	s.cells[s.cellIndex(s.cursorX, s.cursorY)] = Cell{Rune: r, FG: s.pen.FG, BG: s.pen.BG, Attr: s.pen.Attr}
	if s.cursorX == s.width-1 {
		s.cursorX = 0
		s.cursorDownOrScroll()
	} else {
		s.cursorX++
	}
}

// cursorDownOrScroll moves the cursor one row down, scrolling the grid
// when the cursor is already on the bottom row.
func (s *Screen) cursorDownOrScroll() {
	if s.cursorY == s.height-1 {
		s.scrollUpOne()
	} else {
		s.cursorY++
	}
}

// scrollUpOne evicts row 0 into scrollback, shifts the remaining rows
// up and clears the new bottom row. The cursor row is unchanged (it is
// already clamped at height-1 on this path).
func (s *Screen) scrollUpOne() {
	evicted := make([]Cell, s.width)
	copy(evicted, s.cells[:s.width])
	s.scrollbk.Append(evicted)
	if s.onEvict != nil {
		s.onEvict(evicted)
	}

	copy(s.cells, s.cells[s.width:])
	bottom := s.cells[(s.height-1)*s.width:]
	for i := range bottom {
		bottom[i] = blankCell()
	}
}

// --- Control characters ---

// LineFeed moves the cursor to column 0 of the next row, scrolling on
// overflow.
func (s *Screen) LineFeed() {
	s.cursorX = 0
	s.cursorDownOrScroll()
}

// CarriageReturn moves the cursor to column 0.
func (s *Screen) CarriageReturn() {
	s.cursorX = 0
}

// Backspace moves the cursor one column left, clamped at 0.
func (s *Screen) Backspace() {
	if s.cursorX > 0 {
		s.cursorX--
	}
}

// Tab advances the cursor to the next multiple of 8, clamped to the
// last column.
func (s *Screen) Tab() {
	next := (s.cursorX/8 + 1) * 8
	if next > s.width-1 {
		next = s.width - 1
	}
	s.cursorX = next
}

// --- Cursor movement ---

// SetCursorPos moves the cursor to a position, clamping to the grid.
func (s *Screen) SetCursorPos(y, x int) {
	if x < 0 {
		x = 0
	}
	if x >= s.width {
		x = s.width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= s.height {
		y = s.height - 1
	}
	s.cursorX, s.cursorY = x, y
}

// SetCursorColumn moves the cursor to a column on the current row.
func (s *Screen) SetCursorColumn(col int) {
	if col < 0 {
		col = 0
	}
	if col >= s.width {
		col = s.width - 1
	}
	s.cursorX = col
}

// MoveCursorUp moves the cursor n rows up, clamped at row 0.
func (s *Screen) MoveCursorUp(n int) {
	s.SetCursorPos(s.cursorY-n, s.cursorX)
}

// MoveCursorDown moves the cursor n rows down, clamped at the bottom row.
func (s *Screen) MoveCursorDown(n int) {
	s.SetCursorPos(s.cursorY+n, s.cursorX)
}

// MoveCursorForward moves the cursor n columns right, clamped.
func (s *Screen) MoveCursorForward(n int) {
	s.SetCursorPos(s.cursorY, s.cursorX+n)
}

// MoveCursorBackward moves the cursor n columns left, clamped.
func (s *Screen) MoveCursorBackward(n int) {
	s.SetCursorPos(s.cursorY, s.cursorX-n)
}

// SaveCursor snapshots the cursor position into the single save slot.
func (s *Screen) SaveCursor() {
	s.saved = &savedCursor{x: s.cursorX, y: s.cursorY}
}

// RestoreCursor moves the cursor back to the saved position. Without a
// prior save it is a no-op. The slot is left in place so repeated
// restores return to the same position.
func (s *Screen) RestoreCursor() {
	if s.saved == nil {
		return
	}
	s.SetCursorPos(s.saved.y, s.saved.x)
}

// --- Erase operations ---
// Erased cells are reset to spaces with default attributes, not the
// live pen.

// EraseDisplay implements ED. Mode 0 erases from the cursor to the end
// of the screen, mode 1 from the start to the cursor, mode 2 the whole
// grid. Other modes are ignored.
func (s *Screen) EraseDisplay(mode int) {
	switch mode {
	case 0:
		s.eraseRange(s.cellIndex(s.cursorX, s.cursorY), len(s.cells))
	case 1:
		s.eraseRange(0, s.cellIndex(s.cursorX, s.cursorY)+1)
	case 2:
		s.clearAll()
	}
}

// EraseLine implements EL with the same mode semantics restricted to
// the cursor's row.
func (s *Screen) EraseLine(mode int) {
	rowStart := s.cursorY * s.width
	switch mode {
	case 0:
		s.eraseRange(s.cellIndex(s.cursorX, s.cursorY), rowStart+s.width)
	case 1:
		s.eraseRange(rowStart, s.cellIndex(s.cursorX, s.cursorY)+1)
	case 2:
		s.eraseRange(rowStart, rowStart+s.width)
	}
}

func (s *Screen) eraseRange(from, to int) {
	if from < 0 {
		from = 0
	}
	if to > len(s.cells) {
		to = len(s.cells)
	}
	for i := from; i < to; i++ {
		s.cells[i] = blankCell()
	}
}

func (s *Screen) clearAll() {
	for i := range s.cells {
		s.cells[i] = blankCell()
	}
}

// Clear erases the entire grid and homes the cursor. Scrollback and
// the live pen are untouched.
func (s *Screen) Clear() {
	s.clearAll()
	s.cursorX, s.cursorY = 0, 0
}

// Reset restores the screen to its initial state: default pen, cursor
// home and visible, cleared grid and scrollback, view offset zero.
func (s *Screen) Reset() {
	s.pen = ResetPen()
	s.cursorVisible = true
	s.saved = nil
	s.viewOffset = 0
	s.scrollbk.Clear()
	s.Clear()
}

// --- Resize ---

// Resize reallocates the grid top-left-anchored, preserving as much
// content as fits. Non-positive dimensions are clamped to 1. The cursor
// is clamped into the new bounds. Scrollback rows keep their original
// width; the viewport pads or truncates them on read.
func (s *Screen) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == s.width && height == s.height {
		return
	}

	next := make([]Cell, width*height)
	for i := range next {
		next[i] = blankCell()
	}
	rows := min(s.height, height)
	cols := min(s.width, width)
	for y := 0; y < rows; y++ {
		copy(next[y*width:y*width+cols], s.cells[y*s.width:y*s.width+cols])
	}

	s.cells = next
	s.width = width
	s.height = height
	s.SetCursorPos(s.cursorY, s.cursorX)
}

// --- View panning ---
// These adjust only where reads look; writes always land on the live grid.

// ScrollViewUp pans the display n rows into history.
func (s *Screen) ScrollViewUp(n int) {
	if n < 0 {
		n = 0
	}
	s.viewOffset += n
	if s.viewOffset > s.scrollbk.Len() {
		s.viewOffset = s.scrollbk.Len()
	}
}

// ScrollViewDown pans the display n rows back toward the live grid.
func (s *Screen) ScrollViewDown(n int) {
	if n < 0 {
		n = 0
	}
	s.viewOffset -= n
	if s.viewOffset < 0 {
		s.viewOffset = 0
	}
}

// ScrollViewToTop pans to the oldest retained row.
func (s *Screen) ScrollViewToTop() {
	s.viewOffset = s.scrollbk.Len()
}

// ScrollViewToBottom returns the display to the live grid.
func (s *Screen) ScrollViewToBottom() {
	s.viewOffset = 0
}

// --- Snapshot accessors ---

// Width returns the grid width.
func (s *Screen) Width() int { return s.width }

// Height returns the grid height.
func (s *Screen) Height() int { return s.height }

// Cursor returns the cursor position (0-indexed column, row).
func (s *Screen) Cursor() (x, y int) { return s.cursorX, s.cursorY }

// CursorVisible reports whether the cursor is shown.
func (s *Screen) CursorVisible() bool { return s.cursorVisible }

// ScrollOffset returns the current view offset into scrollback.
func (s *Screen) ScrollOffset() int { return s.viewOffset }

// Pen returns the live attribute state.
func (s *Screen) Pen() Pen { return s.pen }

// Scrollback returns the scrollback store.
func (s *Screen) Scrollback() *Scrollback { return s.scrollbk }

// Cells returns a copy of the live grid in row-major order.
func (s *Screen) Cells() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

// CellAt returns the cell at the given grid position, or a blank cell
// when out of bounds.
func (s *Screen) CellAt(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell()
	}
	return s.cells[s.cellIndex(x, y)]
}

// Viewport materializes the visible window: when the view offset is
// zero this is the live grid; otherwise the top of the window reaches
// viewOffset rows into scrollback. Rows are padded or truncated to the
// current width. The returned rows are copies.
func (s *Screen) Viewport() [][]Cell {
	out := make([][]Cell, s.height)
	histLen := s.scrollbk.Len()
	top := histLen - s.viewOffset
	for i := 0; i < s.height; i++ {
		row := make([]Cell, s.width)
		idx := top + i
		var src []Cell
		if idx < histLen {
			src = s.scrollbk.row(idx)
		} else if live := idx - histLen; live < s.height {
			src = s.cells[live*s.width : (live+1)*s.width]
		}
		for x := 0; x < s.width; x++ {
			if x < len(src) {
				row[x] = src[x]
			} else {
				row[x] = blankCell()
			}
		}
		out[i] = row
	}
	return out
}
