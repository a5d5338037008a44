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
	"github.com/charmbracelet/lipgloss"
	"github.com/cloud-exit/homehub/internal/theme"
)

// styles is the set of lipgloss styles derived from one palette.
type styles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	dim      lipgloss.Style
	help     lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	danger   lipgloss.Style
	warning  lipgloss.Style
	success  lipgloss.Style
	errText  lipgloss.Style

	topbar lipgloss.Style
	dialog lipgloss.Style

	card         lipgloss.Style
	cardActive   lipgloss.Style
	cardFocused  lipgloss.Style
	cardEmpty    lipgloss.Style
	tab          lipgloss.Style
	tabActive    lipgloss.Style
	key          lipgloss.Style
	keyFocused   lipgloss.Style
	keyboardPane lipgloss.Style
	toast        lipgloss.Style
	toastError   lipgloss.Style
}

const cardWidth = 16

func newStyles(p theme.Palette) styles {
	base := lipgloss.NewStyle().Foreground(p.Foreground)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Width(cardWidth).
		Height(4).
		Align(lipgloss.Center)
	key := lipgloss.NewStyle().
		Background(p.KeyFace).
		Foreground(p.Foreground).
		Padding(0, 1).
		MarginRight(1)

	return styles{
		title:    base.Bold(true).Foreground(p.Accent),
		subtitle: base.Foreground(p.Muted),
		dim:      base.Foreground(p.Inactive),
		help:     base.Foreground(p.Muted).MarginTop(1),
		cursor:   base.Foreground(p.Accent).Bold(true),
		selected: base.Foreground(p.Active),
		danger:   base.Foreground(p.Danger).Bold(true),
		warning:  base.Foreground(p.Warning),
		success:  base.Foreground(p.Success).Bold(true),
		errText:  base.Foreground(p.Danger),

		topbar: base.
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.Border).
			Padding(0, 1),
		dialog: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),

		card:        card.Foreground(p.Inactive),
		cardActive:  card.Foreground(p.Active).BorderForeground(p.Active),
		cardFocused: card.Foreground(p.Foreground).BorderForeground(p.Accent).Bold(true),
		cardEmpty:   card.Foreground(p.Muted).BorderStyle(lipgloss.HiddenBorder()),

		tab:       base.Foreground(p.Muted).Padding(0, 2),
		tabActive: base.Foreground(p.Accent).Bold(true).Underline(true).Padding(0, 2),

		key:        key,
		keyFocused: key.Background(p.Accent).Bold(true),
		keyboardPane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(p.Border).
			PaddingTop(1),

		toast:      base.Foreground(p.Success).Bold(true),
		toastError: base.Foreground(p.Danger).Bold(true),
	}
}
