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

package household

import (
	"errors"
	"testing"

	"github.com/cloud-exit/homehub/internal/api"
)

func TestMemberFormValidate(t *testing.T) {
	tests := []struct {
		name string
		form MemberForm
		want FieldErrors
	}{
		{"valid", MemberForm{Name: "Ada", Age: "36", Sex: "female"}, nil},
		{"upper-case sex", MemberForm{Name: "Ada", Age: "0", Sex: "Female"}, nil},
		{"oldest", MemberForm{Name: "Ada", Age: "120", Sex: "other"}, nil},
		{"empty", MemberForm{}, FieldErrors{
			"name": "Name is required",
			"age":  "Age is required",
			"sex":  "Sex is required",
		}},
		{"too old", MemberForm{Name: "Ada", Age: "121", Sex: "female"}, FieldErrors{
			"age": "Age must be between 0 and 120",
		}},
		{"negative", MemberForm{Name: "Ada", Age: "-1", Sex: "female"}, FieldErrors{
			"age": "Age must be between 0 and 120",
		}},
		{"not a number", MemberForm{Name: "Ada", Age: "ten", Sex: "female"}, FieldErrors{
			"age": "Age must be between 0 and 120",
		}},
		{"blank name", MemberForm{Name: "   ", Age: "5", Sex: "male"}, FieldErrors{
			"name": "Name is required",
		}},
		{"unknown sex", MemberForm{Name: "Ada", Age: "5", Sex: "robot"}, FieldErrors{
			"sex": "Sex must be one of male, female, other",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.form.Validate()
			checkFieldErrors(t, err, tt.want)
		})
	}
}

func TestGuestFormValidate(t *testing.T) {
	tests := []struct {
		name string
		form GuestForm
		want FieldErrors
	}{
		{"valid", GuestForm{Age: "100", Sex: "male"}, nil},
		{"too old", GuestForm{Age: "101", Sex: "male"}, FieldErrors{"age": "Age must be between 0 and 100"}},
		{"missing", GuestForm{}, FieldErrors{"age": "Age is required", "sex": "Sex is required"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := tt.form.Validate()
			checkFieldErrors(t, err, tt.want)
			if tt.want == nil && g.Age != 100 {
				t.Errorf("Age = %d, want 100", g.Age)
			}
		})
	}
}

func checkFieldErrors(t *testing.T, err error, want FieldErrors) {
	t.Helper()
	if want == nil {
		if err != nil {
			t.Fatalf("Validate() = %v, want nil", err)
		}
		return
	}
	var got FieldErrors
	if !errors.As(err, &got) {
		t.Fatalf("Validate() = %v, want FieldErrors", err)
	}
	if len(got) != len(want) {
		t.Fatalf("FieldErrors = %v, want %v", got, want)
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("%s: %q, want %q", field, got[field], msg)
		}
	}
}

func TestFormFromMember(t *testing.T) {
	f := FormFromMember(api.Member{Name: "Ada", Age: 36, Sex: api.Female})
	if f.Name != "Ada" || f.Age != "36" || f.Sex != "female" {
		t.Errorf("FormFromMember = %+v", f)
	}
}

func TestSlots(t *testing.T) {
	members := []api.Member{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}

	view := Slots(members, 7, false)
	if len(view) != 2 {
		t.Errorf("view mode slots = %d, want 2", len(view))
	}

	edit := Slots(members, 7, true)
	if len(edit) != 7 {
		t.Fatalf("edit mode slots = %d, want 7", len(edit))
	}
	if edit[0].Member.ID != "1" || edit[1].Member.ID != "2" {
		t.Error("members out of order")
	}
	for i := 2; i < 7; i++ {
		if !edit[i].Empty() {
			t.Errorf("slot %d should be empty", i)
		}
	}

	many := make([]api.Member, 9)
	if got := len(Slots(many, 7, true)); got != 9 {
		t.Errorf("oversized household slots = %d, want 9", got)
	}
}

func TestSlotsCopyMembers(t *testing.T) {
	members := []api.Member{{ID: "1", Name: "A"}}
	slots := Slots(members, 7, false)
	members[0].Name = "changed"
	if slots[0].Member.Name != "A" {
		t.Error("slot aliases the caller's slice")
	}
}

func TestLifeStage(t *testing.T) {
	tests := []struct {
		age  int
		want Stage
	}{
		{0, Child}, {12, Child}, {13, Teen}, {19, Teen},
		{20, Adult}, {59, Adult}, {60, Senior}, {120, Senior},
	}
	for _, tt := range tests {
		if got := LifeStage(tt.age); got != tt.want {
			t.Errorf("LifeStage(%d) = %s, want %s", tt.age, got, tt.want)
		}
	}
}
