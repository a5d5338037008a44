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
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cloud-exit/homehub/internal/household"
	"github.com/cloud-exit/homehub/internal/keyboard"
)

const (
	guestFocusAge = iota
	guestFocusSex
	guestFocusAdd
	guestFocusList
)

type guestDialog struct {
	age   *field
	sex   int
	focus int
	list  int
	errs  household.FieldErrors
}

func (m Model) openGuests() (tea.Model, tea.Cmd) {
	m.guests = &guestDialog{
		age: newField("Age", keyboard.KindNumber, 3, m.deps.Cue),
		sex: -1,
	}
	m.dialog = dialogGuests
	return m, fetchGuests(m.deps.Guests)
}

func (m Model) updateGuestDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.guests
	gs := m.deps.Guests
	count := len(gs.List())
	focusCount := guestFocusList
	if count > 0 {
		focusCount = guestFocusList + 1
	}

	switch msg.String() {
	case "esc":
		m.guests = nil
		m.dialog = dialogNone
	case "tab":
		d.focus = (d.focus + 1) % focusCount
	case "shift+tab":
		d.focus = (d.focus + focusCount - 1) % focusCount
	case "up", "k":
		if d.focus == guestFocusList && d.list > 0 {
			d.list--
		} else if d.focus > 0 {
			d.focus--
		}
	case "down", "j":
		if d.focus == guestFocusList {
			d.list = clamp(d.list+1, 0, count-1)
		} else if d.focus < focusCount-1 {
			d.focus++
		}
	case "left", "h":
		if d.focus == guestFocusSex {
			d.sex = cycleSex(d.sex, -1)
		}
	case "right", "l":
		if d.focus == guestFocusSex {
			d.sex = cycleSex(d.sex, 1)
		}
	case "d", "x", "delete":
		if d.focus == guestFocusList && count > 0 {
			d.list = clamp(d.list, 0, count-1)
			id := gs.List()[d.list].ID
			if !gs.Loading().Delete[id] {
				return m, deleteGuest(gs, id)
			}
		}
	case "enter", " ":
		if gs.Full() && d.focus != guestFocusList {
			return m, nil
		}
		switch d.focus {
		case guestFocusAge:
			m.kb = openKeyboard(d.age)
		case guestFocusSex:
			d.sex = cycleSex(d.sex, 1)
		case guestFocusAdd:
			return m.submitGuest()
		}
	}
	return m, nil
}

func (m Model) submitGuest() (tea.Model, tea.Cmd) {
	d := m.guests
	gs := m.deps.Guests
	if gs.Full() || gs.Loading().Add {
		return m, nil
	}
	form := household.GuestForm{Age: d.age.Value(), Sex: sexName(d.sex)}
	if _, err := form.Validate(); err != nil {
		var fe household.FieldErrors
		if errors.As(err, &fe) {
			d.errs = fe
		}
		return m, nil
	}
	d.errs = nil
	return m, addGuest(gs, form)
}

func (m Model) guestAdded(msg guestAddedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		var fe household.FieldErrors
		if errors.As(msg.err, &fe) && m.guests != nil {
			m.guests.errs = fe
			return m, nil
		}
		return m, m.notifyErr(msg.err, "Failed to add guest")
	}
	if m.guests != nil {
		m.guests.age.Reset()
		m.guests.sex = -1
	}
	return m, m.notify("Guest added")
}

func (m Model) viewGuestDialog() string {
	d := m.guests
	st := m.st
	gs := m.deps.Guests
	list := gs.List()
	loading := gs.Loading()
	var b strings.Builder

	b.WriteString(st.title.Render(fmt.Sprintf("Guests (%d/%d)", len(list), gs.Limit())) + "\n\n")

	if gs.Full() {
		b.WriteString(st.warning.Render(fmt.Sprintf("! Maximum of %d guests reached", gs.Limit())) + "\n\n")
	} else {
		b.WriteString(m.fieldLine(d.age, d.focus == guestFocusAge, d.errs["age"]))
		b.WriteString(m.sexLine(d.sex, d.focus == guestFocusSex, d.errs["sex"]))
		add := "Add Guest"
		if loading.Add {
			add = m.spin.View() + " Adding"
		}
		b.WriteString("  " + m.button(add, d.focus == guestFocusAdd) + "\n")
	}
	b.WriteString("\n")

	switch {
	case loading.Fetch && len(list) == 0:
		b.WriteString(m.spin.View() + " Loading guests\n")
	case len(list) == 0:
		b.WriteString(st.dim.Render("No guests") + "\n")
	}
	for i, g := range list {
		prefix := "  "
		if d.focus == guestFocusList && i == d.list {
			prefix = st.cursor.Render("> ")
		}
		line := fmt.Sprintf("Guest %d · %d years · %s", i+1, g.Age, g.Sex)
		if loading.Delete[g.ID] {
			line += " " + m.spin.View()
		}
		b.WriteString(prefix + line + "\n")
	}
	b.WriteString(st.help.Render("tab move · enter edit/add · d remove guest · esc close"))
	return st.dialog.Render(b.String())
}
