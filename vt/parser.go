// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vt/parser.go
// Summary: VT100/ANSI control-sequence parser state machine.
// Usage: Fed one rune at a time; emits Actions against the screen buffer.
// Notes: State persists between Parse calls so sequences split across
//        arbitrary chunk boundaries still parse correctly.

package vt

type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateCSI
	stateOSC
	stateOSCEscape
	stateDCS
	stateDCSEscape
)

// maxParams bounds the CSI parameter list. Pathological input that
// exceeds it abandons the sequence instead of growing memory.
const maxParams = 32

// maxParamValue bounds a single accumulated parameter.
const maxParamValue = 65535

// Parser is a VT100/ANSI stream parser. It recognizes the C0 controls,
// CSI sequences and the DEC private cursor-visibility modes; OSC and DCS
// strings are swallowed without being parsed. Anything else is consumed
// silently so unsupported sequences never disturb the buffer.
type Parser struct {
	state        parserState
	params       []int
	currentParam int
	private      bool
	sawData      bool
}

// NewParser creates a parser in the ground state.
func NewParser() *Parser {
	return &Parser{
		state:  stateGround,
		params: make([]int, 0, 16),
	}
}

// Reset returns the parser to the ground state, dropping any
// partially accumulated sequence.
func (p *Parser) Reset() {
	p.state = stateGround
	p.params = p.params[:0]
	p.currentParam = 0
	p.private = false
	p.sawData = false
}

// Parse processes a single rune and emits zero or more actions.
func (p *Parser) Parse(r rune, emit func(Action)) {
	switch p.state {
	case stateGround:
		p.parseGround(r, emit)
	case stateEscape:
		p.parseEscape(r)
	case stateCSI:
		p.parseCSI(r, emit)
	case stateOSC:
		// Swallow the payload until BEL or ST; it is never parsed.
		if r == '\x07' {
			p.state = stateGround
		} else if r == '\x1b' {
			p.state = stateOSCEscape
		}
	case stateOSCEscape:
		// ESC \ is ST. Any other byte is still part of the ignored payload.
		if r == '\\' || r == '\x07' {
			p.state = stateGround
		} else {
			p.state = stateOSC
		}
	case stateDCS:
		if r == '\x1b' {
			p.state = stateDCSEscape
		}
	case stateDCSEscape:
		if r == '\\' {
			p.state = stateGround
		} else {
			p.state = stateDCS
		}
	}
}

func (p *Parser) parseGround(r rune, emit func(Action)) {
	switch r {
	case '\x1b':
		p.state = stateEscape
	case '\n':
		emit(Action{Type: ActionLineFeed})
	case '\r':
		emit(Action{Type: ActionCarriageReturn})
	case '\b':
		emit(Action{Type: ActionBackspace})
	case '\t':
		emit(Action{Type: ActionTab})
	default:
		if r >= ' ' {
			emit(Action{Type: ActionPrint, Rune: r})
		}
	}
}

func (p *Parser) parseEscape(r rune) {
	switch r {
	case '[':
		p.state = stateCSI
		p.params = p.params[:0]
		p.currentParam = 0
		p.private = false
		p.sawData = false
	case ']':
		p.state = stateOSC
	case 'P':
		p.state = stateDCS
	default:
		// Unsupported escape: swallowed with no side effects.
		p.state = stateGround
	}
}

func (p *Parser) parseCSI(r rune, emit func(Action)) {
	switch {
	case r >= '0' && r <= '9':
		p.sawData = true
		p.currentParam = p.currentParam*10 + int(r-'0')
		if p.currentParam > maxParamValue {
			p.currentParam = maxParamValue
		}
	case r == ';':
		p.sawData = true
		if len(p.params) >= maxParams {
			p.Reset()
			return
		}
		p.params = append(p.params, p.currentParam)
		p.currentParam = 0
	case r == '?':
		// DEC private prefix, only valid before any parameter data.
		if p.sawData || p.private {
			p.Reset()
			return
		}
		p.private = true
	case r >= ' ' && r <= '/':
		// Intermediate bytes are accepted and ignored.
	case r >= '@' && r <= '~':
		if len(p.params) >= maxParams {
			p.Reset()
			return
		}
		p.params = append(p.params, p.currentParam)
		p.dispatchCSI(r, emit)
		p.state = stateGround
	default:
		// Anything else is malformed: abandon the sequence.
		p.Reset()
	}
}

// dispatchCSI maps a finished CSI sequence onto an action. Missing or
// zero parameters default to 1 except where noted. Final bytes without
// an entry here are consumed silently.
func (p *Parser) dispatchCSI(final rune, emit func(Action)) {
	param := func(i, def int) int {
		if i < len(p.params) && p.params[i] != 0 {
			return p.params[i]
		}
		return def
	}

	if p.private {
		// DEC private modes: only cursor visibility (?25h / ?25l) is
		// implemented; everything else is ignored.
		if final == 'h' || final == 'l' {
			for _, mode := range p.params {
				if mode != 25 {
					continue
				}
				if final == 'h' {
					emit(Action{Type: ActionShowCursor})
				} else {
					emit(Action{Type: ActionHideCursor})
				}
			}
		}
		return
	}

	switch final {
	case 'A':
		emit(Action{Type: ActionCursorUp, N: param(0, 1)})
	case 'B':
		emit(Action{Type: ActionCursorDown, N: param(0, 1)})
	case 'C':
		emit(Action{Type: ActionCursorForward, N: param(0, 1)})
	case 'D':
		emit(Action{Type: ActionCursorBack, N: param(0, 1)})
	case 'G':
		emit(Action{Type: ActionCursorColumn, N: param(0, 1) - 1})
	case 'H', 'f':
		emit(Action{Type: ActionCursorPosition, N: param(0, 1) - 1, Col: param(1, 1) - 1})
	case 'J':
		emit(Action{Type: ActionEraseDisplay, Mode: param(0, 0)})
	case 'K':
		emit(Action{Type: ActionEraseLine, Mode: param(0, 0)})
	case 'm':
		codes := make([]int, len(p.params))
		copy(codes, p.params)
		emit(Action{Type: ActionSetGraphics, Params: codes})
	case 's':
		emit(Action{Type: ActionSaveCursor})
	case 'u':
		emit(Action{Type: ActionRestoreCursor})
	}
}
