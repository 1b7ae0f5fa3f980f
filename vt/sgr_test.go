package vt

import (
	"testing"
)

// TestBasicAttributes tests SGR text attributes against written cells.
func TestBasicAttributes(t *testing.T) {
	tests := []struct {
		name   string
		seq    string
		verify func(*testing.T, *TestHarness)
	}{
		{
			name: "SGR 0 - reset all",
			seq:  "\x1b[1;4m\x1b[31m\x1b[44mX\x1b[0mY",
			verify: func(t *testing.T, h *TestHarness) {
				cellX := h.GetCell(0, 0)
				if cellX.Attr&AttrBold == 0 {
					t.Error("X should be bold")
				}
				if cellX.Attr&AttrUnderline == 0 {
					t.Error("X should be underlined")
				}
				cellY := h.GetCell(1, 0)
				if cellY.Attr != 0 {
					t.Errorf("Y should have no attributes, got %v", cellY.Attr)
				}
				if cellY.FG.Mode != ColorModeDefault {
					t.Errorf("Y FG should be default, got mode %v", cellY.FG.Mode)
				}
				if cellY.BG.Mode != ColorModeDefault {
					t.Errorf("Y BG should be default, got mode %v", cellY.BG.Mode)
				}
			},
		},
		{
			name: "SGR 1 - bold",
			seq:  "\x1b[1mX",
			verify: func(t *testing.T, h *TestHarness) {
				if h.GetCell(0, 0).Attr&AttrBold == 0 {
					t.Error("should be bold")
				}
			},
		},
		{
			name: "SGR 3 - italic",
			seq:  "\x1b[3mX",
			verify: func(t *testing.T, h *TestHarness) {
				if h.GetCell(0, 0).Attr&AttrItalic == 0 {
					t.Error("should be italic")
				}
			},
		},
		{
			name: "SGR 4 - underline",
			seq:  "\x1b[4mX",
			verify: func(t *testing.T, h *TestHarness) {
				if h.GetCell(0, 0).Attr&AttrUnderline == 0 {
					t.Error("should be underlined")
				}
			},
		},
		{
			name: "SGR 1;3;4 - combined mask",
			seq:  "\x1b[1;3;4mX",
			verify: func(t *testing.T, h *TestHarness) {
				// bold=bit0, italic=bit2, underline=bit3
				if got := h.GetCell(0, 0).Attr; got != 1|4|8 {
					t.Errorf("attr mask = %d, want 13", got)
				}
			},
		},
		{
			name: "unknown codes are skipped",
			seq:  "\x1b[2;5;9;31mX",
			verify: func(t *testing.T, h *TestHarness) {
				cell := h.GetCell(0, 0)
				if cell.Attr != 0 {
					t.Errorf("unknown codes must not set attributes, got %v", cell.Attr)
				}
				if cell.FG != StandardColor(1) {
					t.Errorf("FG = %+v, want standard red", cell.FG)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTestHarness(20, 5)
			h.SendSeq(tt.seq)
			tt.verify(t, h)
		})
	}
}

// TestColors tests the 16-color, 256-color and RGB SGR forms.
func TestColors(t *testing.T) {
	tests := []struct {
		name   string
		seq    string
		wantFG Color
		wantBG Color
	}{
		{"standard red fg", "\x1b[31mX", StandardColor(1), DefaultBG},
		{"standard blue bg", "\x1b[44mX", DefaultFG, StandardColor(4)},
		{"compound bold red", "\x1b[1;31mX", StandardColor(1), DefaultBG},
		{"bright fg", "\x1b[91mX", StandardColor(9), DefaultBG},
		{"bright bg", "\x1b[103mX", DefaultFG, StandardColor(11)},
		{"256 fg", "\x1b[38;5;196mX", Color256(196), DefaultBG},
		{"256 bg", "\x1b[48;5;17mX", DefaultFG, Color256(17)},
		{"rgb fg", "\x1b[38;2;255;128;64mX", RGBColor(255, 128, 64), DefaultBG},
		{"rgb bg", "\x1b[48;2;10;20;30mX", DefaultFG, RGBColor(10, 20, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTestHarness(20, 5)
			h.SendSeq(tt.seq)
			cell := h.GetCell(0, 0)
			if cell.FG != tt.wantFG {
				t.Errorf("FG = %+v, want %+v", cell.FG, tt.wantFG)
			}
			if cell.BG != tt.wantBG {
				t.Errorf("BG = %+v, want %+v", cell.BG, tt.wantBG)
			}
		})
	}
}

func TestColorPacking(t *testing.T) {
	if got := Color256(196).Packed(); got != 196 {
		t.Errorf("256-color packed = %d, want 196", got)
	}
	want := uint32(255)<<16 | uint32(128)<<8 | 64
	if got := RGBColor(255, 128, 64).Packed(); got != want {
		t.Errorf("rgb packed = %d, want %d", got, want)
	}
	if got := DefaultFG.Packed(); got != 0 {
		t.Errorf("default packed = %d, want 0", got)
	}
}

func TestExtendedColorConsumesArguments(t *testing.T) {
	// The 38;5;N triple is consumed as a unit: the 196 must not be
	// interpreted as a free-standing SGR code.
	h := NewTestHarness(20, 5)
	h.SendSeq("\x1b[38;5;196;1mX")
	cell := h.GetCell(0, 0)
	if cell.FG != Color256(196) {
		t.Errorf("FG = %+v, want 256-color 196", cell.FG)
	}
	if cell.Attr&AttrBold == 0 {
		t.Error("trailing SGR 1 should still apply bold")
	}
}

func TestSGRNeverRewritesExistingCells(t *testing.T) {
	h := NewTestHarness(20, 5)
	h.SendSeq("A\x1b[31mB")
	if got := h.GetCell(0, 0).FG; got != DefaultFG {
		t.Errorf("cell written before SGR changed color: %+v", got)
	}
	if got := h.GetCell(1, 0).FG; got != StandardColor(1) {
		t.Errorf("cell written after SGR = %+v, want red", got)
	}
}

func TestPenStateAfterReset(t *testing.T) {
	h := NewTestHarness(20, 5)
	h.SendSeq("\x1b[1;31mRed\x1b[0m")
	pen := h.GetPen()
	if pen.FG.Mode != ColorModeDefault {
		t.Errorf("pen FG after reset = %+v, want default", pen.FG)
	}
	if pen.Attr != 0 {
		t.Errorf("pen styles after reset = %v, want 0", pen.Attr)
	}
}

func TestPenApplyIsPure(t *testing.T) {
	base := ResetPen()
	derived := base.Apply([]int{1, 31})
	if base.Attr != 0 || base.FG != DefaultFG {
		t.Error("Apply must not mutate the receiver")
	}
	if derived.Attr&AttrBold == 0 || derived.FG != StandardColor(1) {
		t.Errorf("derived pen = %+v", derived)
	}
}

func TestRGBChannelClamping(t *testing.T) {
	p := ResetPen().Apply([]int{38, 2, 300, 128, 64})
	if p.FG != RGBColor(255, 128, 64) {
		t.Errorf("out-of-range channel should clamp, got %+v", p.FG)
	}
}
