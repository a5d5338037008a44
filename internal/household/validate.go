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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cloud-exit/homehub/internal/api"
)

// Age bounds accepted by the forms.
const (
	MaxMemberAge = 120
	MaxGuestAge  = 100
)

// FieldErrors maps a form field to its message. A nil or empty map means the
// form is valid.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, e[f])
	}
	return strings.Join(msgs, "; ")
}

// MemberForm is the raw input of the add/edit member dialog.
type MemberForm struct {
	Name string
	Age  string
	Sex  string
}

// FormFromMember pre-fills a form for editing m.
func FormFromMember(m api.Member) MemberForm {
	return MemberForm{Name: m.Name, Age: strconv.Itoa(m.Age), Sex: string(m.Sex)}
}

// Validate checks the form and returns the member it describes.
func (f MemberForm) Validate() (api.Member, error) {
	errs := FieldErrors{}
	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs["name"] = "Name is required"
	}
	age, ok := parseAge(f.Age, MaxMemberAge)
	switch {
	case strings.TrimSpace(f.Age) == "":
		errs["age"] = "Age is required"
	case !ok:
		errs["age"] = ageRange(MaxMemberAge)
	}
	sex := api.Sex(strings.ToLower(strings.TrimSpace(f.Sex)))
	switch {
	case sex == "":
		errs["sex"] = "Sex is required"
	case !sex.Valid():
		errs["sex"] = fmt.Sprintf("Sex must be one of %s", sexList())
	}
	if len(errs) > 0 {
		return api.Member{}, errs
	}
	return api.Member{Name: name, Age: age, Sex: sex}, nil
}

// GuestForm is the raw input of the guest dialog.
type GuestForm struct {
	Age string
	Sex string
}

// Validate checks the form and returns the guest it describes.
func (f GuestForm) Validate() (api.Guest, error) {
	errs := FieldErrors{}
	age, ok := parseAge(f.Age, MaxGuestAge)
	switch {
	case strings.TrimSpace(f.Age) == "":
		errs["age"] = "Age is required"
	case !ok:
		errs["age"] = ageRange(MaxGuestAge)
	}
	sex := api.Sex(strings.ToLower(strings.TrimSpace(f.Sex)))
	switch {
	case sex == "":
		errs["sex"] = "Sex is required"
	case !sex.Valid():
		errs["sex"] = fmt.Sprintf("Sex must be one of %s", sexList())
	}
	if len(errs) > 0 {
		return api.Guest{}, errs
	}
	return api.Guest{Age: age, Sex: sex}, nil
}

func parseAge(s string, limit int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > limit {
		return 0, false
	}
	return n, true
}

func ageRange(limit int) string {
	return fmt.Sprintf("Age must be between 0 and %d", limit)
}

func sexList() string {
	names := make([]string, len(api.Sexes))
	for i, s := range api.Sexes {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
