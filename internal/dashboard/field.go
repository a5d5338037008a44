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

package dashboard

import (
	"strings"

	"github.com/cloud-exit/homehub/internal/cue"
	"github.com/cloud-exit/homehub/internal/keyboard"
)

// field is a form input edited through the on-screen keyboard. It shows its
// committed value, opens a session pre-filled with it, mirrors keystrokes
// while open and falls back to the committed value on cancel.
type field struct {
	label   string
	kind    keyboard.Kind
	maxLen  int
	player  cue.Player
	value   string
	display string
	session *keyboard.Session

	// commits counts delivered values; hosts compare it to react once.
	commits int
}

func newField(label string, kind keyboard.Kind, maxLen int, player cue.Player) *field {
	return &field{label: label, kind: kind, maxLen: maxLen, player: player}
}

// Open starts a keyboard session for the field.
func (f *field) Open() *keyboard.Session {
	f.session = keyboard.New(keyboard.Options{
		Kind:         f.kind,
		InitialValue: f.value,
		MaxLength:    f.maxLen,
		Cue:          f.player,
		OnCommit: func(v string) {
			f.value = v
			f.display = v
			f.commits++
		},
		OnCancel: func() { f.display = f.value },
		OnKey:    func(_ keyboard.Key, v string) { f.display = v },
	})
	f.session.Open()
	f.display = f.session.Value()
	return f.session
}

// Editing reports whether a session is open on the field.
func (f *field) Editing() bool {
	return f.session != nil && f.session.IsOpen()
}

// Value returns the committed value.
func (f *field) Value() string { return f.value }

// Set replaces the committed value without a session.
func (f *field) Set(v string) {
	f.value = v
	f.display = v
}

// Reset clears the field.
func (f *field) Reset() { f.Set("") }

// Text returns what the field shows, masked for passwords.
func (f *field) Text() string {
	if f.kind == keyboard.KindPassword {
		return strings.Repeat("•", len([]rune(f.display)))
	}
	return f.display
}
