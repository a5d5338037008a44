// HomeHub - Household Kiosk Dashboard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package keyboard

import (
	"unicode"
	"unicode/utf8"
)

// Key is a key token. Control keys use the names below; any other token is
// typed as text.
type Key string

// Control key tokens.
const (
	KeyBackspace Key = "backspace"
	KeyCaps      Key = "caps"
	KeySymbols   Key = "symbols"
	KeySpace     Key = "space"
	KeyEnter     Key = "enter"
	KeyClose     Key = "close"
	KeyClear     Key = "clear"
)

// Cue receives a notification on every key press. Implementations must not
// block.
type Cue interface {
	Play()
}

// Options binds a session to its host.
type Options struct {
	Kind         Kind
	InitialValue string
	MaxLength    int // <= 0 means unbounded

	// OnCommit receives the text when the session is closed with Enter.
	OnCommit func(value string)
	// OnCancel is called when the session is closed without a value.
	OnCancel func()
	// OnKey is called after every key event handled while open.
	OnKey func(key Key, value string)

	Cue Cue
}

// Session is one open-to-close lifecycle of the keyboard. The zero value is
// not usable; create one with New.
type Session struct {
	opts    Options
	open    bool
	text    []rune
	caps    bool
	symbols bool
}

// New returns a closed session bound to opts.
func New(opts Options) *Session {
	return &Session{opts: opts}
}

// Open starts a fresh session: the text is reset to the initial value and
// both flags are cleared. Opening an open session restarts it.
func (s *Session) Open() {
	s.open = true
	s.caps = false
	s.symbols = false
	s.text = s.text[:0]
	for _, r := range s.opts.InitialValue {
		s.appendRune(r)
	}
}

// IsOpen reports whether the session accepts key events.
func (s *Session) IsOpen() bool { return s.open }

// Kind returns the session's input kind.
func (s *Session) Kind() Kind { return s.opts.Kind }

// MaxLength returns the configured limit, 0 when unbounded.
func (s *Session) MaxLength() int {
	if s.opts.MaxLength < 0 {
		return 0
	}
	return s.opts.MaxLength
}

// Value returns the accumulated text.
func (s *Session) Value() string { return string(s.text) }

// Caps reports the caps-lock flag.
func (s *Session) Caps() bool { return s.caps }

// SymbolsVisible reports whether the password symbol rows are shown.
func (s *Session) SymbolsVisible() bool { return s.symbols }

// Layout returns the rows currently shown.
func (s *Session) Layout() Layout {
	return Visible(s.opts.Kind, s.symbols)
}

// Press handles one key token. Events on a closed session are ignored.
func (s *Session) Press(k Key) {
	if !s.open {
		return
	}
	if s.opts.Cue != nil {
		s.opts.Cue.Play()
	}

	switch k {
	case KeyBackspace:
		s.backspace()
	case KeyCaps:
		s.caps = !s.caps
	case KeySymbols:
		if s.opts.Kind == KindPassword {
			s.symbols = !s.symbols
		}
	case KeySpace:
		s.appendRune(' ')
	case KeyClear:
		s.text = s.text[:0]
	case KeyEnter:
		s.commit()
		return
	case KeyClose:
		s.cancel()
		return
	default:
		s.typeKey(string(k))
	}

	if s.opts.OnKey != nil {
		s.opts.OnKey(k, s.Value())
	}
}

// Type presses a single character key.
func (s *Session) Type(r rune) { s.Press(Key(string(r))) }

// Backspace presses the backspace key.
func (s *Session) Backspace() { s.Press(KeyBackspace) }

// ToggleCaps presses the caps key.
func (s *Session) ToggleCaps() { s.Press(KeyCaps) }

// ToggleSymbols presses the symbol panel key.
func (s *Session) ToggleSymbols() { s.Press(KeySymbols) }

// Space presses the space bar.
func (s *Session) Space() { s.Press(KeySpace) }

// Enter commits the text to the host and closes the session.
func (s *Session) Enter() { s.Press(KeyEnter) }

// Clear empties the text. The session stays open.
func (s *Session) Clear() { s.Press(KeyClear) }

// Close discards the session without delivering a value.
func (s *Session) Close() { s.Press(KeyClose) }

func (s *Session) typeKey(token string) {
	r, size := utf8.DecodeRuneInString(token)
	if size == 0 || r == utf8.RuneError {
		return
	}
	// Multi-character tokens are typed literally and never case-shifted.
	if size != len(token) {
		runes := []rune(token)
		if limit := s.MaxLength(); limit > 0 && len(s.text)+len(runes) > limit {
			return
		}
		for _, c := range runes {
			if s.opts.Kind == KindNumber && !isDigit(c) {
				return
			}
		}
		s.text = append(s.text, runes...)
		return
	}
	if s.caps && unicode.IsLetter(r) {
		r = unicode.ToUpper(r)
	}
	s.appendRune(r)
}

// accepts reports whether r may be appended right now.
func (s *Session) accepts(r rune) bool {
	if limit := s.MaxLength(); limit > 0 && len(s.text) >= limit {
		return false
	}
	if s.opts.Kind == KindNumber && !isDigit(r) {
		return false
	}
	return true
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func (s *Session) appendRune(r rune) {
	if s.accepts(r) {
		s.text = append(s.text, r)
	}
}

func (s *Session) backspace() {
	if len(s.text) > 0 {
		s.text = s.text[:len(s.text)-1]
	}
}

func (s *Session) commit() {
	value := s.Value()
	s.reset()
	if s.opts.OnCommit != nil {
		s.opts.OnCommit(value)
	}
}

func (s *Session) cancel() {
	s.reset()
	if s.opts.OnCancel != nil {
		s.opts.OnCancel()
	}
}

func (s *Session) reset() {
	s.open = false
	s.caps = false
	s.symbols = false
	s.text = nil
}
