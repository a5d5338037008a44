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

// Package keyboard implements the on-screen keyboard: key layouts per input
// kind and the input session that accumulates text from key events.
package keyboard

import (
	"fmt"
	"strings"
)

// Kind selects the key layout and the character filter of a session.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindPassword
)

var kindNames = map[Kind]string{
	KindText:     "text",
	KindNumber:   "number",
	KindPassword: "password",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a host-supplied tag to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return k, nil
		}
	}
	return KindText, fmt.Errorf("unknown input kind %q (want text, number or password)", s)
}

// Layout is an ordered list of key rows.
type Layout [][]string

// Keys returns the number of keys across all rows.
func (l Layout) Keys() int {
	n := 0
	for _, row := range l {
		n += len(row)
	}
	return n
}

func (l Layout) clone() Layout {
	out := make(Layout, len(l))
	for i, row := range l {
		out[i] = append([]string(nil), row...)
	}
	return out
}

var (
	letterRows = Layout{
		{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p"},
		{"a", "s", "d", "f", "g", "h", "j", "k", "l"},
		{"z", "x", "c", "v", "b", "n", "m"},
	}

	// Calculator order, not row-major digit order.
	digitRows = Layout{
		{"7", "8", "9"},
		{"4", "5", "6"},
		{"1", "2", "3"},
		{"0"},
	}

	symbolRows = Layout{
		{"!", "@", "#", "$", "%", "^", "&", "*", "(", ")"},
		{"-", "_", "+", "=", "{", "}", "[", "]", "|", "\\"},
	}
)

// Rows returns the primary layout for kind. Password uses the letter layout.
func Rows(kind Kind) Layout {
	if kind == KindNumber {
		return digitRows.clone()
	}
	return letterRows.clone()
}

// SpecialRows returns the secondary symbol layout. It is nil for every kind
// except password.
func SpecialRows(kind Kind) Layout {
	if kind != KindPassword {
		return nil
	}
	return symbolRows.clone()
}

// Visible returns the rows shown for kind, with the symbol rows appended
// below the primary rows when showSpecial is set on a password keyboard.
func Visible(kind Kind, showSpecial bool) Layout {
	rows := Rows(kind)
	if showSpecial {
		rows = append(rows, SpecialRows(kind)...)
	}
	return rows
}
