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
	"strings"
	"testing"
)

func TestRows_Text(t *testing.T) {
	rows := Rows(KindText)
	want := []int{10, 9, 7}
	if len(rows) != len(want) {
		t.Fatalf("Rows(text) has %d rows, want %d", len(rows), len(want))
	}
	seen := make(map[string]bool)
	for i, row := range rows {
		if len(row) != want[i] {
			t.Errorf("row %d has %d keys, want %d", i, len(row), want[i])
		}
		for _, k := range row {
			seen[k] = true
		}
	}
	for c := 'a'; c <= 'z'; c++ {
		if !seen[string(c)] {
			t.Errorf("letter %q missing from text layout", c)
		}
	}
	if got := strings.Join(rows[0], ""); got != "qwertyuiop" {
		t.Errorf("first row = %q, want qwertyuiop", got)
	}
}

func TestRows_Number(t *testing.T) {
	rows := Rows(KindNumber)
	want := [][]string{{"7", "8", "9"}, {"4", "5", "6"}, {"1", "2", "3"}, {"0"}}
	if len(rows) != len(want) {
		t.Fatalf("Rows(number) = %v, want %v", rows, want)
	}
	for i := range want {
		if strings.Join(rows[i], ",") != strings.Join(want[i], ",") {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}
}

func TestRows_PasswordUsesLetters(t *testing.T) {
	if Rows(KindPassword).Keys() != 26 {
		t.Errorf("Rows(password) has %d keys, want 26", Rows(KindPassword).Keys())
	}
}

func TestSpecialRows(t *testing.T) {
	if SpecialRows(KindText) != nil {
		t.Error("SpecialRows(text) should be nil")
	}
	if SpecialRows(KindNumber) != nil {
		t.Error("SpecialRows(number) should be nil")
	}
	rows := SpecialRows(KindPassword)
	if len(rows) != 2 {
		t.Fatalf("SpecialRows(password) has %d rows, want 2", len(rows))
	}
	if !strings.Contains(strings.Join(rows[0], ""), "#") {
		t.Errorf("first symbol row %v should contain #", rows[0])
	}
	if rows[1][len(rows[1])-1] != "\\" {
		t.Errorf("last symbol = %q, want backslash", rows[1][len(rows[1])-1])
	}
}

func TestVisible(t *testing.T) {
	tests := []struct {
		kind    Kind
		special bool
		rows    int
	}{
		{KindText, false, 3},
		{KindText, true, 3},
		{KindNumber, true, 4},
		{KindPassword, false, 3},
		{KindPassword, true, 5},
	}
	for _, tc := range tests {
		if got := len(Visible(tc.kind, tc.special)); got != tc.rows {
			t.Errorf("Visible(%s, %v) has %d rows, want %d", tc.kind, tc.special, got, tc.rows)
		}
	}
}

func TestRows_ReturnsCopy(t *testing.T) {
	rows := Rows(KindText)
	rows[0][0] = "X"
	if Rows(KindText)[0][0] != "q" {
		t.Error("mutating a returned layout changed the package table")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"text", KindText, false},
		{"NUMBER", KindNumber, false},
		{" password ", KindPassword, false},
		{"email", KindText, true},
		{"", KindText, true},
	}
	for _, tc := range tests {
		got, err := ParseKind(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseKind(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindPassword.String() != "password" {
		t.Errorf("KindPassword.String() = %q", KindPassword.String())
	}
	if Kind(9).String() != "Kind(9)" {
		t.Errorf("Kind(9).String() = %q", Kind(9).String())
	}
}
