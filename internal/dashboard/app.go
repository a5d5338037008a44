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
	"github.com/cloud-exit/homehub/internal/ui"
)

// Run shows the dashboard until the user quits. While the UI owns the
// terminal, log output goes to logFile when it is set.
func Run(deps Deps, logFile string) error {
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "homehub")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		ui.SetOutput(f)
		defer ui.ResetOutput()
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if deps.Output != nil {
		opts = append(opts, tea.WithOutput(deps.Output))
	}
	p := tea.NewProgram(New(deps), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
