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
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cloud-exit/homehub/internal/household"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	top := m.viewTopbar()
	bottom := m.viewFooter()
	if m.kb != nil {
		bottom = m.kb.view(m.st, max(m.width, 40)) + "\n" + bottom
	}
	bodyHeight := m.height - lipgloss.Height(top) - lipgloss.Height(bottom)

	var body string
	switch m.dialog {
	case dialogMember:
		body = m.place(m.viewMemberDialog(), bodyHeight)
	case dialogGuests:
		body = m.place(m.viewGuestDialog(), bodyHeight)
	case dialogSettings:
		body = m.place(m.viewSettings(), bodyHeight)
	case dialogConnect:
		body = m.place(m.viewConnect(), bodyHeight)
	case dialogConfirm:
		body = m.place(m.viewConfirm(), bodyHeight)
	default:
		body = m.place(m.viewGrid(), bodyHeight)
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, body, bottom)
}

func (m Model) viewTopbar() string {
	st := m.st
	layout := "3:04 PM"
	if m.deps.Config.Clock.Use24h {
		layout = "15:04"
	}
	clock := st.title.Render(m.now.Format(layout)) + "  " + st.subtitle.Render(m.now.Format("Monday, January 2, 2006"))

	wifi := st.dim.Render("WiFi: off")
	if m.wifi.Connected {
		wifi = st.success.Render("WiFi: " + m.wifi.SSID)
	}
	if m.editMode {
		wifi = st.warning.Render("EDIT MODE") + "  " + wifi
	}

	title := st.title.Render("HomeHub")
	width := max(m.width, 60)
	gap := width - lipgloss.Width(title) - lipgloss.Width(clock) - lipgloss.Width(wifi) - 4
	left := max(gap/2, 1)
	line := title + strings.Repeat(" ", left) + clock + strings.Repeat(" ", max(gap-left, 1)) + wifi
	return st.topbar.Width(width).Render(line)
}

func (m Model) viewGrid() string {
	st := m.st
	members := m.deps.Members
	if !members.Fetched() && members.Loading().Fetch {
		return m.spin.View() + " Loading family members"
	}

	slots := m.slots()
	toggling := members.Loading().Toggle
	cells := make([]string, 0, len(slots)+1)
	for i, slot := range slots {
		focused := i == m.cursor
		if slot.Empty() {
			style := st.cardEmpty
			if focused {
				style = st.cardFocused
			}
			cells = append(cells, style.Render("\n+\nAdd member"))
			continue
		}
		mem := slot.Member
		status := "away"
		style := st.card
		if mem.IsActive {
			status = "home"
			style = st.cardActive
		}
		if toggling[mem.ID] {
			status = m.spin.View()
		}
		if focused {
			style = st.cardFocused
		}
		text := fmt.Sprintf("%s\n%d · %s\n%s", mem.Name, mem.Age, household.LifeStage(mem.Age), status)
		cells = append(cells, style.Render(text))
	}

	guestCount := fmt.Sprintf("Guests (%d/%d)", len(m.deps.Guests.List()), m.deps.Guests.Limit())
	if m.deps.Guests.Loading().Fetch {
		guestCount = m.spin.View() + " Guests"
	}
	style := st.card
	if m.cursor == len(slots) {
		style = st.cardFocused
	}
	cells = append(cells, style.Render("\n"+guestCount))

	var rows []string
	for i := 0; i < len(cells); i += gridColumns {
		end := min(i+gridColumns, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:end]...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if len(slots) == 0 {
		grid = st.dim.Render("No family members yet. Turn on edit mode in settings to add one.") + "\n\n" + grid
	}
	return grid
}

func (m Model) viewConfirm() string {
	c := m.confirm
	st := m.st
	var b strings.Builder
	b.WriteString(st.danger.Render(c.title) + "\n\n")
	b.WriteString(c.body + "\n\n")
	b.WriteString(m.button("Cancel", !c.yes) + "  " + m.button("Confirm", c.yes))
	b.WriteString("\n")
	b.WriteString(st.help.Render("←/→ choose · enter confirm · y/n"))
	return st.dialog.Render(b.String())
}

func (m Model) viewFooter() string {
	st := m.st
	var lines []string
	for _, t := range m.toasts {
		if t.isErr {
			lines = append(lines, st.toastError.Render("✕ "+t.text))
		} else {
			lines = append(lines, st.toast.Render("✓ "+t.text))
		}
	}
	if m.dialog == dialogNone && m.kb == nil {
		k := keys
		k.Edit.SetEnabled(m.editMode)
		k.Delete.SetEnabled(m.editMode)
		lines = append(lines, st.help.Render(helpLine(k.Select, k.Edit, k.Delete, k.Guests, k.Settings, k.Refresh, k.Quit)))
	}
	return strings.Join(lines, "\n")
}
