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
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cloud-exit/homehub/internal/api"
	"github.com/cloud-exit/homehub/internal/household"
	"github.com/cloud-exit/homehub/internal/keyboard"
)

const (
	memberFocusName = iota
	memberFocusAge
	memberFocusSex
	memberFocusSave
	memberFocusCancel
	memberFocusCount
)

const maxNameLength = 40

type memberDialog struct {
	editID api.ID
	name   *field
	age    *field
	sex    int // index into api.Sexes, -1 when unset
	focus  int
	errs   household.FieldErrors
	saving bool
}

func (m Model) openMemberDialog(existing *api.Member) (tea.Model, tea.Cmd) {
	d := &memberDialog{
		name: newField("Name", keyboard.KindText, maxNameLength, m.deps.Cue),
		age:  newField("Age", keyboard.KindNumber, 3, m.deps.Cue),
		sex:  -1,
	}
	if existing != nil {
		form := household.FormFromMember(*existing)
		d.editID = existing.ID
		d.name.Set(form.Name)
		d.age.Set(form.Age)
		d.sex = sexIndex(existing.Sex)
	}
	m.member = d
	m.dialog = dialogMember
	return m, nil
}

func sexIndex(s api.Sex) int {
	for i, v := range api.Sexes {
		if v == s {
			return i
		}
	}
	return -1
}

func sexName(i int) string {
	if i < 0 || i >= len(api.Sexes) {
		return ""
	}
	return string(api.Sexes[i])
}

func cycleSex(i, delta int) int {
	n := len(api.Sexes)
	if i < 0 {
		if delta < 0 {
			return n - 1
		}
		return 0
	}
	return ((i+delta)%n + n) % n
}

func (d *memberDialog) form() household.MemberForm {
	return household.MemberForm{Name: d.name.Value(), Age: d.age.Value(), Sex: sexName(d.sex)}
}

func (m Model) updateMemberDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.member
	switch msg.String() {
	case "esc":
		m.member = nil
		m.dialog = dialogNone
	case "up", "shift+tab", "k":
		d.focus = (d.focus + memberFocusCount - 1) % memberFocusCount
	case "down", "tab", "j":
		d.focus = (d.focus + 1) % memberFocusCount
	case "left", "h":
		if d.focus == memberFocusSex {
			d.sex = cycleSex(d.sex, -1)
		}
	case "right", "l":
		if d.focus == memberFocusSex {
			d.sex = cycleSex(d.sex, 1)
		}
	case "enter", " ":
		switch d.focus {
		case memberFocusName:
			m.kb = openKeyboard(d.name)
		case memberFocusAge:
			m.kb = openKeyboard(d.age)
		case memberFocusSex:
			d.sex = cycleSex(d.sex, 1)
		case memberFocusSave:
			return m.submitMember()
		case memberFocusCancel:
			m.member = nil
			m.dialog = dialogNone
		}
	}
	return m, nil
}

func (m Model) submitMember() (tea.Model, tea.Cmd) {
	d := m.member
	if d.saving {
		return m, nil
	}
	form := d.form()
	if _, err := form.Validate(); err != nil {
		var fe household.FieldErrors
		if errors.As(err, &fe) {
			d.errs = fe
		}
		return m, nil
	}
	d.errs = nil
	d.saving = true
	return m, saveMember(m.deps.Members, d.editID, form)
}

func (m Model) memberSaved(msg memberSavedMsg) (tea.Model, tea.Cmd) {
	if m.member != nil {
		m.member.saving = false
	}
	if msg.err != nil {
		var fe household.FieldErrors
		if errors.As(msg.err, &fe) && m.member != nil {
			m.member.errs = fe
			return m, nil
		}
		fallback := "Failed to add member"
		if msg.edited {
			fallback = "Failed to update member"
		}
		return m, m.notifyErr(msg.err, fallback)
	}
	m.member = nil
	if m.dialog == dialogMember {
		m.dialog = dialogNone
	}
	verb := "Added "
	if msg.edited {
		verb = "Updated "
	}
	return m, m.notify(verb + msg.member.Name)
}

func (m Model) viewMemberDialog() string {
	d := m.member
	st := m.st
	var b strings.Builder

	title := "Add Family Member"
	if d.editID != "" {
		title = "Edit Family Member"
	}
	b.WriteString(st.title.Render(title) + "\n\n")

	b.WriteString(m.fieldLine(d.name, d.focus == memberFocusName, d.errs["name"]))
	b.WriteString(m.fieldLine(d.age, d.focus == memberFocusAge, d.errs["age"]))
	b.WriteString(m.sexLine(d.sex, d.focus == memberFocusSex, d.errs["sex"]))
	b.WriteString("\n")

	save := "Save"
	if d.saving {
		save = m.spin.View() + " Saving"
	}
	b.WriteString(m.button(save, d.focus == memberFocusSave) + "  " + m.button("Cancel", d.focus == memberFocusCancel))
	b.WriteString("\n")
	b.WriteString(st.help.Render("↑/↓ move · enter edit/select · ←/→ sex · esc close"))
	return st.dialog.Render(b.String())
}

func (m Model) fieldLine(f *field, focused bool, errMsg string) string {
	st := m.st
	prefix := "  "
	if focused {
		prefix = st.cursor.Render("> ")
	}
	value := f.Text()
	if value == "" && !f.Editing() {
		value = st.dim.Render("(tap to type)")
	}
	line := prefix + st.subtitle.Render(padRight(f.label+":", 10)) + value + "\n"
	if errMsg != "" {
		line += "    " + st.errText.Render(errMsg) + "\n"
	}
	return line
}

func (m Model) sexLine(sex int, focused bool, errMsg string) string {
	st := m.st
	prefix := "  "
	if focused {
		prefix = st.cursor.Render("> ")
	}
	var opts []string
	for i, s := range api.Sexes {
		label := string(s)
		if i == sex {
			opts = append(opts, st.selected.Render("● "+label))
		} else {
			opts = append(opts, st.dim.Render("○ "+label))
		}
	}
	line := prefix + st.subtitle.Render(padRight("Sex:", 10)) + strings.Join(opts, "  ") + "\n"
	if errMsg != "" {
		line += "    " + st.errText.Render(errMsg) + "\n"
	}
	return line
}

func (m Model) button(label string, focused bool) string {
	if focused {
		return m.st.keyFocused.Render(label)
	}
	return m.st.key.Render(label)
}

func padRight(s string, n int) string {
	if w := len([]rune(s)); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
