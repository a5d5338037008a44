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

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cloud-exit/homehub/internal/keyboard"
)

// osk is the on-screen keyboard overlay bound to one field. The highlighted
// key starts on Enter so a physical Enter commits unless the user moved.
type osk struct {
	field   *field
	session *keyboard.Session
	row     int
	col     int
}

func openKeyboard(f *field) *osk {
	o := &osk{field: f, session: f.Open()}
	o.focusEnter()
	return o
}

// controls returns the bottom row of control keys for the session's kind.
func (o *osk) controls() []keyboard.Key {
	switch o.session.Kind() {
	case keyboard.KindNumber:
		return []keyboard.Key{keyboard.KeyBackspace, keyboard.KeyEnter, keyboard.KeyClose}
	case keyboard.KindPassword:
		return []keyboard.Key{keyboard.KeyCaps, keyboard.KeySymbols, keyboard.KeySpace,
			keyboard.KeyBackspace, keyboard.KeyEnter, keyboard.KeyClose}
	default:
		return []keyboard.Key{keyboard.KeyCaps, keyboard.KeySpace,
			keyboard.KeyBackspace, keyboard.KeyEnter, keyboard.KeyClose}
	}
}

// grid is the navigable key matrix: layout rows, then the control row.
func (o *osk) grid() [][]keyboard.Key {
	var out [][]keyboard.Key
	for _, row := range o.session.Layout() {
		keys := make([]keyboard.Key, len(row))
		for i, k := range row {
			keys[i] = keyboard.Key(k)
		}
		out = append(out, keys)
	}
	return append(out, o.controls())
}

func (o *osk) focusEnter() {
	g := o.grid()
	o.row = len(g) - 1
	for i, k := range g[o.row] {
		if k == keyboard.KeyEnter {
			o.col = i
		}
	}
}

func (o *osk) move(dr, dc int) {
	g := o.grid()
	o.row = clamp(o.row+dr, 0, len(g)-1)
	o.col = clamp(o.col+dc, 0, len(g[o.row])-1)
}

func (o *osk) highlighted() keyboard.Key {
	g := o.grid()
	o.row = clamp(o.row, 0, len(g)-1)
	o.col = clamp(o.col, 0, len(g[o.row])-1)
	return g[o.row][o.col]
}

// press sends k to the session and keeps the cursor on the control row when
// the number of rows changes.
func (o *osk) press(k keyboard.Key) {
	before := len(o.grid())
	onControls := o.row == before-1
	o.session.Press(k)
	if !o.session.IsOpen() {
		return
	}
	if after := len(o.grid()); after != before {
		if onControls {
			o.row = after - 1
		}
		o.move(0, 0)
	}
}

// handleKey feeds a physical key press into the session. It reports whether
// the session has closed.
func (o *osk) handleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEsc:
		o.press(keyboard.KeyClose)
	case tea.KeyTab:
		o.press(keyboard.KeyCaps)
	case tea.KeyCtrlS:
		o.press(keyboard.KeySymbols)
	case tea.KeyBackspace:
		o.press(keyboard.KeyBackspace)
	case tea.KeyCtrlU:
		o.press(keyboard.KeyClear)
	case tea.KeySpace:
		o.press(keyboard.KeySpace)
	case tea.KeyEnter:
		o.press(o.highlighted())
	case tea.KeyUp:
		o.move(-1, 0)
	case tea.KeyDown:
		o.move(1, 0)
	case tea.KeyLeft:
		o.move(0, -1)
	case tea.KeyRight:
		o.move(0, 1)
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			o.session.Type(r)
		}
	}
	return !o.session.IsOpen()
}

var controlLabels = map[keyboard.Key]string{
	keyboard.KeyCaps:      "⇧ caps",
	keyboard.KeySymbols:   "#+=",
	keyboard.KeySpace:     "   space   ",
	keyboard.KeyBackspace: "⌫",
	keyboard.KeyEnter:     "enter ✓",
	keyboard.KeyClose:     "close ✕",
}

func (o *osk) view(st styles, width int) string {
	var b strings.Builder
	b.WriteString(st.subtitle.Render(o.field.label+": ") + o.field.Text() + st.cursor.Render("▏"))
	if limit := o.session.MaxLength(); limit > 0 {
		b.WriteString(st.dim.Render(" (" + itoa(len([]rune(o.session.Value()))) + "/" + itoa(limit) + ")"))
	}
	b.WriteString("\n\n")

	g := o.grid()
	for r, row := range g {
		cells := make([]string, len(row))
		for c, k := range row {
			label, isControl := controlLabels[k]
			if !isControl {
				label = string(k)
				if o.session.Caps() {
					label = strings.ToUpper(label)
				}
			}
			style := st.key
			switch {
			case r == o.row && c == o.col:
				style = st.keyFocused
			case k == keyboard.KeyCaps && o.session.Caps(),
				k == keyboard.KeySymbols && o.session.SymbolsVisible():
				style = st.key.Foreground(st.selected.GetForeground())
			}
			cells[c] = style.Render(label)
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		if r < len(g)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(st.help.Render("type or use arrows+enter · tab caps · ctrl+s symbols · ctrl+u clear · esc cancel"))
	return st.keyboardPane.Width(width).Render(b.String())
}
