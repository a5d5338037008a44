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
	"regexp"
	"testing"
	"testing/quick"
	"unicode/utf8"
)

// keyUniverse covers every control key plus characters from all layouts and
// a few that appear on none.
var keyUniverse = []Key{
	KeyBackspace, KeyCaps, KeySymbols, KeySpace, KeyClear,
	"a", "q", "z", "m", "0", "1", "5", "9", "!", "#", "\\", "-", ".", "é", "ab", "12",
}

func keysFrom(seq []uint8) []Key {
	out := make([]Key, len(seq))
	for i, b := range seq {
		out[i] = keyUniverse[int(b)%len(keyUniverse)]
	}
	return out
}

func openSession(opts Options) *Session {
	s := New(opts)
	s.Open()
	return s
}

func pressAll(s *Session, keys ...Key) {
	for _, k := range keys {
		s.Press(k)
	}
}

type countingCue struct{ n int }

func (c *countingCue) Play() { c.n++ }

var digitsOnly = regexp.MustCompile(`^[0-9]*$`)

func TestProperty_NumberKindDigitsOnly(t *testing.T) {
	f := func(seq []uint8) bool {
		s := openSession(Options{Kind: KindNumber})
		pressAll(s, keysFrom(seq)...)
		return digitsOnly.MatchString(s.Value())
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestProperty_MaxLengthNeverExceeded(t *testing.T) {
	f := func(seq []uint8, n uint8) bool {
		limit := int(n%12) + 1
		for _, kind := range []Kind{KindText, KindNumber, KindPassword} {
			s := openSession(Options{Kind: kind, MaxLength: limit})
			for _, k := range keysFrom(seq) {
				s.Press(k)
				if utf8.RuneCountInString(s.Value()) > limit {
					return false
				}
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestProperty_SymbolsOnlyForPassword(t *testing.T) {
	f := func(seq []uint8) bool {
		for _, kind := range []Kind{KindText, KindNumber} {
			s := openSession(Options{Kind: kind})
			pressAll(s, keysFrom(seq)...)
			if s.SymbolsVisible() {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestProperty_CapsTwiceIsIdentity(t *testing.T) {
	f := func(seq []uint8) bool {
		s := openSession(Options{Kind: KindText})
		pressAll(s, keysFrom(seq)...)
		caps, value := s.Caps(), s.Value()
		s.ToggleCaps()
		s.ToggleCaps()
		return s.Caps() == caps && s.Value() == value
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestBackspaceOnEmpty(t *testing.T) {
	s := openSession(Options{Kind: KindText})
	s.Backspace()
	if s.Value() != "" {
		t.Errorf("Value after backspace on empty = %q, want empty", s.Value())
	}
	s.Type('x')
	s.Backspace()
	s.Backspace()
	if s.Value() != "" {
		t.Errorf("Value = %q, want empty", s.Value())
	}
}

func TestScenario_TextHello(t *testing.T) {
	s := openSession(Options{Kind: KindText})
	pressAll(s, "h", "e", "l", "l", "o")
	if s.Value() != "hello" {
		t.Fatalf("Value = %q, want hello", s.Value())
	}
	s.ToggleCaps()
	s.Press("!")
	if s.Value() != "hello!" {
		t.Errorf("Value = %q, want hello!", s.Value())
	}

	n := openSession(Options{Kind: KindNumber})
	n.Press("!")
	if n.Value() != "" {
		t.Errorf("number kind accepted %q", n.Value())
	}
}

func TestCapsUppercasesLettersOnly(t *testing.T) {
	s := openSession(Options{Kind: KindText})
	s.Type('a')
	s.ToggleCaps()
	pressAll(s, "b", "1", "ab")
	s.ToggleCaps()
	s.Type('c')
	if s.Value() != "aB1abc" {
		t.Errorf("Value = %q, want aB1abc", s.Value())
	}
}

func TestScenario_PasswordSymbols(t *testing.T) {
	s := openSession(Options{Kind: KindPassword})
	if s.SymbolsVisible() {
		t.Fatal("symbol panel should start hidden")
	}
	if len(s.Layout()) != 3 {
		t.Errorf("layout rows = %d, want 3", len(s.Layout()))
	}
	s.ToggleSymbols()
	if !s.SymbolsVisible() {
		t.Fatal("symbol panel should be visible after toggle")
	}
	if len(s.Layout()) != 5 {
		t.Errorf("layout rows = %d, want 5", len(s.Layout()))
	}
	s.Press("#")
	s.ToggleSymbols()
	if s.SymbolsVisible() {
		t.Error("symbol panel should be hidden after second toggle")
	}
	if s.Value() != "#" {
		t.Errorf("Value = %q, want #", s.Value())
	}
}

func TestScenario_NumberMaxLength(t *testing.T) {
	s := openSession(Options{Kind: KindNumber, MaxLength: 4})
	pressAll(s, "1", "2", "3", "4", "5")
	if s.Value() != "1234" {
		t.Errorf("Value = %q, want 1234", s.Value())
	}
}

func TestScenario_InitialValueCommit(t *testing.T) {
	var committed []string
	s := New(Options{
		Kind:         KindText,
		InitialValue: "abc",
		OnCommit:     func(v string) { committed = append(committed, v) },
	})
	s.Open()
	if s.Value() != "abc" {
		t.Fatalf("Value = %q, want abc", s.Value())
	}
	s.Enter()
	if len(committed) != 1 || committed[0] != "abc" {
		t.Errorf("committed = %v, want [abc]", committed)
	}
	if s.IsOpen() {
		t.Error("session should be closed after Enter")
	}
}

func TestInitialValueSanitized(t *testing.T) {
	s := openSession(Options{Kind: KindNumber, InitialValue: "1a2b345", MaxLength: 3})
	if s.Value() != "123" {
		t.Errorf("Value = %q, want 123", s.Value())
	}
}

func TestCloseDiscards(t *testing.T) {
	var commits, cancels int
	s := New(Options{
		Kind:     KindText,
		OnCommit: func(string) { commits++ },
		OnCancel: func() { cancels++ },
	})
	s.Open()
	pressAll(s, "x", "y")
	s.ToggleCaps()
	s.Close()
	if commits != 0 || cancels != 1 {
		t.Errorf("commits=%d cancels=%d, want 0 and 1", commits, cancels)
	}
	if s.IsOpen() {
		t.Error("session should be closed")
	}

	s.Open()
	if s.Value() != "" || s.Caps() {
		t.Errorf("reopened session has value %q caps %v, want fresh state", s.Value(), s.Caps())
	}
}

func TestClosedSessionIgnoresKeys(t *testing.T) {
	cue := &countingCue{}
	var commits int
	s := New(Options{Kind: KindText, Cue: cue, OnCommit: func(string) { commits++ }})
	pressAll(s, "a", KeySpace, KeyEnter)
	if s.Value() != "" || commits != 0 || cue.n != 0 {
		t.Errorf("closed session reacted: value=%q commits=%d cues=%d", s.Value(), commits, cue.n)
	}
}

func TestCommitOncePerSession(t *testing.T) {
	var commits int
	s := New(Options{Kind: KindText, OnCommit: func(string) { commits++ }})
	s.Open()
	s.Enter()
	s.Enter()
	if commits != 1 {
		t.Errorf("commits = %d, want 1", commits)
	}
}

func TestSpaceFiltered(t *testing.T) {
	s := openSession(Options{Kind: KindText, MaxLength: 2})
	pressAll(s, KeySpace, "a", KeySpace)
	if s.Value() != " a" {
		t.Errorf("Value = %q, want %q", s.Value(), " a")
	}
	n := openSession(Options{Kind: KindNumber})
	n.Space()
	if n.Value() != "" {
		t.Errorf("number kind accepted space: %q", n.Value())
	}
}

func TestOnKeyMirrorsValue(t *testing.T) {
	var mirrored []string
	var tokens []Key
	s := New(Options{
		Kind: KindText,
		OnKey: func(k Key, v string) {
			tokens = append(tokens, k)
			mirrored = append(mirrored, v)
		},
	})
	s.Open()
	pressAll(s, "o", "k", KeyBackspace)
	if len(tokens) != 3 || tokens[2] != KeyBackspace {
		t.Fatalf("tokens = %v", tokens)
	}
	want := []string{"o", "ok", "o"}
	for i := range want {
		if mirrored[i] != want[i] {
			t.Errorf("mirrored[%d] = %q, want %q", i, mirrored[i], want[i])
		}
	}
}

func TestCuePlayedPerKeyPress(t *testing.T) {
	cue := &countingCue{}
	s := New(Options{Kind: KindPassword, Cue: cue})
	s.Open()
	pressAll(s, "a", KeyCaps, KeySymbols, KeyBackspace, KeySpace, KeyEnter)
	if cue.n != 6 {
		t.Errorf("cue played %d times, want 6", cue.n)
	}
}

func TestClearEmptiesText(t *testing.T) {
	cue := &countingCue{}
	var mirrored []string
	s := New(Options{
		Kind:         KindPassword,
		InitialValue: "abc",
		Cue:          cue,
		OnKey:        func(_ Key, v string) { mirrored = append(mirrored, v) },
	})
	s.Open()
	s.Press(KeyCaps)
	s.Clear()
	if !s.IsOpen() || s.Value() != "" {
		t.Fatalf("after clear: open=%v value=%q", s.IsOpen(), s.Value())
	}
	if !s.Caps() {
		t.Error("clear reset the caps flag")
	}
	if cue.n != 2 || len(mirrored) != 2 || mirrored[1] != "" {
		t.Errorf("cue=%d mirrored=%q", cue.n, mirrored)
	}
	s.Clear()
	pressAll(s, "x", KeyEnter)
	if s.IsOpen() {
		t.Error("session still open after enter")
	}
}

func TestNegativeMaxLengthUnbounded(t *testing.T) {
	s := openSession(Options{Kind: KindText, MaxLength: -1})
	pressAll(s, "a", "b", "c")
	if s.Value() != "abc" {
		t.Errorf("Value = %q, want abc", s.Value())
	}
	if s.MaxLength() != 0 {
		t.Errorf("MaxLength = %d, want 0", s.MaxLength())
	}
}
