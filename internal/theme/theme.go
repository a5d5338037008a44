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

// Package theme resolves the light/dark/system appearance setting into a
// colour palette for the dashboard.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the user's appearance choice.
type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system"
)

// All lists the themes in the order the settings panel shows them.
var All = []Theme{Light, Dark, System}

// Parse validates a stored or user-supplied theme name.
func Parse(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range All {
		if t == known {
			return t, nil
		}
	}
	return System, fmt.Errorf("unknown theme %q (want light, dark or system)", s)
}

// Effective resolves System against the terminal background.
func Effective(t Theme, darkBackground bool) Theme {
	if t != System {
		return t
	}
	if darkBackground {
		return Dark
	}
	return Light
}

// Palette holds the colours the dashboard draws with.
type Palette struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Active     lipgloss.Color
	Inactive   lipgloss.Color
	Danger     lipgloss.Color
	Warning    lipgloss.Color
	Success    lipgloss.Color
	Border     lipgloss.Color
	KeyFace    lipgloss.Color
}

var (
	darkPalette = Palette{
		Foreground: lipgloss.Color("252"),
		Muted:      lipgloss.Color("244"),
		Accent:     lipgloss.Color("6"),
		Active:     lipgloss.Color("2"),
		Inactive:   lipgloss.Color("240"),
		Danger:     lipgloss.Color("1"),
		Warning:    lipgloss.Color("3"),
		Success:    lipgloss.Color("2"),
		Border:     lipgloss.Color("238"),
		KeyFace:    lipgloss.Color("236"),
	}
	lightPalette = Palette{
		Foreground: lipgloss.Color("235"),
		Muted:      lipgloss.Color("243"),
		Accent:     lipgloss.Color("25"),
		Active:     lipgloss.Color("28"),
		Inactive:   lipgloss.Color("249"),
		Danger:     lipgloss.Color("160"),
		Warning:    lipgloss.Color("136"),
		Success:    lipgloss.Color("28"),
		Border:     lipgloss.Color("250"),
		KeyFace:    lipgloss.Color("254"),
	}
)

// PaletteFor returns the palette for t, resolving System first.
func PaletteFor(t Theme, darkBackground bool) Palette {
	if Effective(t, darkBackground) == Light {
		return lightPalette
	}
	return darkPalette
}

// DetectDarkBackground asks the terminal for its background colour.
func DetectDarkBackground() bool {
	return lipgloss.HasDarkBackground()
}
