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

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cloud-exit/homehub/internal/cue"
	"github.com/cloud-exit/homehub/internal/keyboard"
	"github.com/cloud-exit/homehub/internal/theme"
)

// KeyboardOptions configures a standalone keyboard session.
type KeyboardOptions struct {
	Label          string
	Kind           keyboard.Kind
	Initial        string
	MaxLength      int
	Cue            cue.Player
	Theme          theme.Theme
	DarkBackground bool
	Output         *Terminal
}

// keyboardModel runs a single field's session on its own screen.
type keyboardModel struct {
	field *field
	kb    *osk
	st    styles
	width int
}

func newKeyboardModel(opts KeyboardOptions) keyboardModel {
	label := opts.Label
	if label == "" {
		label = "Input"
	}
	f := newField(label, opts.Kind, opts.MaxLength, opts.Cue)
	f.Set(opts.Initial)
	return keyboardModel{
		field: f,
		kb:    openKeyboard(f),
		st:    newStyles(theme.PaletteFor(opts.Theme, opts.DarkBackground)),
	}
}

func (m keyboardModel) Init() tea.Cmd { return nil }

func (m keyboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.kb.session.Close()
			return m, tea.Quit
		}
		if m.kb.handleKey(msg) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m keyboardModel) View() string {
	if !m.kb.session.IsOpen() {
		return ""
	}
	return m.kb.view(m.st, max(m.width, 60))
}

// committed reports the delivered value, if any.
func (m keyboardModel) committed() (string, bool) {
	return m.field.Value(), m.field.commits > 0
}

// RunKeyboard shows the on-screen keyboard until the session is committed
// or cancelled. ok is false when it was cancelled.
func RunKeyboard(opts KeyboardOptions) (value string, ok bool, err error) {
	var progOpts []tea.ProgramOption
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	p := tea.NewProgram(newKeyboardModel(opts), progOpts...)
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("keyboard error: %w", err)
	}
	value, ok = final.(keyboardModel).committed()
	return value, ok, nil
}
