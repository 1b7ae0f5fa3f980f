package vt

import (
	"strings"
	"testing"
)

// collect feeds a string through a fresh parser and returns the emitted
// actions, so the dispatch table can be tested without a screen.
func collect(t *testing.T, input string) []Action {
	t.Helper()
	p := NewParser()
	var out []Action
	for _, r := range input {
		p.Parse(r, func(a Action) { out = append(out, a) })
	}
	return out
}

func TestCSIDispatch(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want Action
	}{
		{"cursor up default", "\x1b[A", Action{Type: ActionCursorUp, N: 1}},
		{"cursor up count", "\x1b[5A", Action{Type: ActionCursorUp, N: 5}},
		{"cursor up zero defaults to one", "\x1b[0A", Action{Type: ActionCursorUp, N: 1}},
		{"cursor down", "\x1b[3B", Action{Type: ActionCursorDown, N: 3}},
		{"cursor forward", "\x1b[7C", Action{Type: ActionCursorForward, N: 7}},
		{"cursor back", "\x1b[2D", Action{Type: ActionCursorBack, N: 2}},
		{"cursor column", "\x1b[10G", Action{Type: ActionCursorColumn, N: 9}},
		{"cursor position", "\x1b[5;9H", Action{Type: ActionCursorPosition, N: 4, Col: 8}},
		{"cursor position default", "\x1b[H", Action{Type: ActionCursorPosition, N: 0, Col: 0}},
		{"cursor position row only", "\x1b[3H", Action{Type: ActionCursorPosition, N: 2, Col: 0}},
		{"HVP alias", "\x1b[5;9f", Action{Type: ActionCursorPosition, N: 4, Col: 8}},
		{"erase display default", "\x1b[J", Action{Type: ActionEraseDisplay, Mode: 0}},
		{"erase display full", "\x1b[2J", Action{Type: ActionEraseDisplay, Mode: 2}},
		{"erase line start to cursor", "\x1b[1K", Action{Type: ActionEraseLine, Mode: 1}},
		{"save cursor", "\x1b[s", Action{Type: ActionSaveCursor}},
		{"restore cursor", "\x1b[u", Action{Type: ActionRestoreCursor}},
		{"show cursor", "\x1b[?25h", Action{Type: ActionShowCursor}},
		{"hide cursor", "\x1b[?25l", Action{Type: ActionHideCursor}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, tt.seq)
			if len(got) != 1 {
				t.Fatalf("expected 1 action, got %d (%v)", len(got), got)
			}
			a := got[0]
			if a.Type != tt.want.Type || a.N != tt.want.N || a.Col != tt.want.Col || a.Mode != tt.want.Mode {
				t.Errorf("got %+v, want %+v", a, tt.want)
			}
		})
	}
}

func TestSGRParamsArePassedThrough(t *testing.T) {
	got := collect(t, "\x1b[1;31;48;5;17m")
	if len(got) != 1 || got[0].Type != ActionSetGraphics {
		t.Fatalf("expected one set-graphics action, got %v", got)
	}
	want := []int{1, 31, 48, 5, 17}
	if len(got[0].Params) != len(want) {
		t.Fatalf("params = %v, want %v", got[0].Params, want)
	}
	for i := range want {
		if got[0].Params[i] != want[i] {
			t.Fatalf("params = %v, want %v", got[0].Params, want)
		}
	}
}

func TestControlCharacters(t *testing.T) {
	got := collect(t, "a\n\r\b\t")
	wantTypes := []ActionType{ActionPrint, ActionLineFeed, ActionCarriageReturn, ActionBackspace, ActionTab}
	if len(got) != len(wantTypes) {
		t.Fatalf("expected %d actions, got %d", len(wantTypes), len(got))
	}
	for i, w := range wantTypes {
		if got[i].Type != w {
			t.Errorf("action %d: got %v, want %v", i, got[i].Type, w)
		}
	}
	if got[0].Rune != 'a' {
		t.Errorf("print rune = %q, want 'a'", got[0].Rune)
	}
}

func TestUnknownFinalIsSilent(t *testing.T) {
	// 'q', 'n', 'r', 't' are not in the dispatch table.
	for _, seq := range []string{"\x1b[q", "\x1b[6n", "\x1b[1;24r", "\x1b[22t"} {
		if got := collect(t, seq); len(got) != 0 {
			t.Errorf("sequence %q should be consumed silently, emitted %v", seq, got)
		}
	}
}

func TestUnknownEscapeReturnsToGround(t *testing.T) {
	got := collect(t, "\x1b=X")
	if len(got) != 1 || got[0].Type != ActionPrint || got[0].Rune != 'X' {
		t.Fatalf("expected only the print of X, got %v", got)
	}
}

func TestPrivateModeOtherThan25Ignored(t *testing.T) {
	for _, seq := range []string{"\x1b[?1049h", "\x1b[?2004l", "\x1b[?7h"} {
		if got := collect(t, seq); len(got) != 0 {
			t.Errorf("sequence %q should be ignored, emitted %v", seq, got)
		}
	}
}

func TestOSCPayloadIsSwallowed(t *testing.T) {
	tests := []struct {
		name string
		seq  string
	}{
		{"BEL terminated", "\x1b]0;window title\x07"},
		{"ST terminated", "\x1b]8;;http://example.com\x1b\\"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, tt.seq+"X")
			if len(got) != 1 || got[0].Type != ActionPrint || got[0].Rune != 'X' {
				t.Fatalf("OSC payload leaked into output: %v", got)
			}
		})
	}
}

func TestDCSPayloadIsSwallowed(t *testing.T) {
	got := collect(t, "\x1bPtmux;hidden\x1b\\Y")
	if len(got) != 1 || got[0].Type != ActionPrint || got[0].Rune != 'Y' {
		t.Fatalf("DCS payload leaked into output: %v", got)
	}
}

func TestSplitSequenceAcrossParseCalls(t *testing.T) {
	// Every prefix boundary of the sequence must be safe.
	seq := "\x1b[38;5;196m"
	p := NewParser()
	var out []Action
	for _, r := range seq {
		p.Parse(r, func(a Action) { out = append(out, a) })
	}
	if len(out) != 1 || out[0].Type != ActionSetGraphics {
		t.Fatalf("split sequence did not dispatch: %v", out)
	}
}

func TestParamOverflowAbandonsSequence(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("\x1b[")
	for i := 0; i < maxParams+8; i++ {
		sb.WriteString("1;")
	}
	sb.WriteString("mZ")
	got := collect(t, sb.String())
	// The sequence is abandoned; only the trailing printable survives.
	// The stray 'm' after abandoning also prints (the parser is back in
	// ground state), so look for the final Z.
	foundZ := false
	for _, a := range got {
		if a.Type == ActionSetGraphics {
			t.Fatalf("overflowing sequence must not dispatch")
		}
		if a.Type == ActionPrint && a.Rune == 'Z' {
			foundZ = true
		}
	}
	if !foundZ {
		t.Fatal("parser did not recover to ground state")
	}
}

func TestParamValueClamped(t *testing.T) {
	got := collect(t, "\x1b[999999999999A")
	if len(got) != 1 || got[0].Type != ActionCursorUp {
		t.Fatalf("expected cursor-up, got %v", got)
	}
	if got[0].N != maxParamValue {
		t.Errorf("param = %d, want clamp at %d", got[0].N, maxParamValue)
	}
}

func TestMisplacedPrivateMarkerAbandons(t *testing.T) {
	got := collect(t, "\x1b[5?25h")
	for _, a := range got {
		if a.Type == ActionShowCursor {
			t.Fatal("misplaced '?' must abandon the sequence")
		}
	}
}

func TestIntermediateBytesIgnored(t *testing.T) {
	// CSI with an intermediate byte: DECSTR "CSI ! p" is unsupported and
	// must be consumed without effect.
	if got := collect(t, "\x1b[!p"); len(got) != 0 {
		t.Errorf("expected no actions, got %v", got)
	}
}
