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

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cloud-exit/homehub/internal/api"
	"github.com/cloud-exit/homehub/internal/keyboard"
	"github.com/cloud-exit/homehub/internal/theme"
)

const (
	tabNetwork = iota
	tabAppearance
	tabSystem
)

var tabNames = []string{"Network", "Appearance", "System"}

type settingsDialog struct {
	tab      int
	cursor   int
	wifiOn   bool
	networks []api.Network
	loading  bool
	netErr   string
	busy     string // in-flight wifi action
}

// netItem is one selectable row of the network tab.
type netItem struct {
	kind    string // "radio", "refresh", "disconnect" or "network"
	network api.Network
}

func (m Model) openSettings() (tea.Model, tea.Cmd) {
	m.settings = &settingsDialog{wifiOn: true, loading: true}
	m.dialog = dialogSettings
	return m, tea.Batch(fetchNetworks(m.deps.Device), fetchWiFiStatus(m.deps.Device))
}

func (m Model) networkItems() []netItem {
	s := m.settings
	items := []netItem{{kind: "radio"}}
	if !s.wifiOn {
		return items
	}
	items = append(items, netItem{kind: "refresh"})
	if m.wifi.Connected {
		items = append(items, netItem{kind: "disconnect"})
	}
	for _, n := range s.networks {
		items = append(items, netItem{kind: "network", network: n})
	}
	return items
}

func (m Model) settingsItemCount() int {
	switch m.settings.tab {
	case tabNetwork:
		return len(m.networkItems())
	case tabAppearance:
		return len(theme.All)
	default:
		return 3
	}
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.settings
	switch msg.String() {
	case "esc", "s":
		m.settings = nil
		m.dialog = dialogNone
		return m, nil
	case "tab", "]":
		s.tab = (s.tab + 1) % len(tabNames)
		s.cursor = 0
	case "shift+tab", "[":
		s.tab = (s.tab + len(tabNames) - 1) % len(tabNames)
		s.cursor = 0
	case "1", "2", "3":
		s.tab = int(msg.Runes[0] - '1')
		s.cursor = 0
	case "up", "k":
		s.cursor = clamp(s.cursor-1, 0, m.settingsItemCount()-1)
	case "down", "j":
		s.cursor = clamp(s.cursor+1, 0, m.settingsItemCount()-1)
	case "enter", " ":
		switch s.tab {
		case tabNetwork:
			return m.selectNetworkItem()
		case tabAppearance:
			return m, saveTheme(m.deps.Prefs, theme.All[clamp(s.cursor, 0, len(theme.All)-1)])
		case tabSystem:
			return m.selectSystemItem()
		}
	}
	return m, nil
}

func (m Model) selectNetworkItem() (tea.Model, tea.Cmd) {
	s := m.settings
	items := m.networkItems()
	if s.busy != "" || len(items) == 0 {
		return m, nil
	}
	item := items[clamp(s.cursor, 0, len(items)-1)]
	switch item.kind {
	case "radio":
		s.busy = wifiEnable
		if s.wifiOn {
			s.busy = wifiDisable
		}
		return m, setWiFi(m.deps.Device, !s.wifiOn)
	case "refresh":
		s.loading = true
		return m, tea.Batch(fetchNetworks(m.deps.Device), fetchWiFiStatus(m.deps.Device))
	case "disconnect":
		s.busy = wifiDisconnect
		return m, disconnectWiFi(m.deps.Device)
	case "network":
		if item.network.Connected {
			return m, nil
		}
		if isOpenNetwork(item.network) {
			s.busy = wifiConnect
			return m, connectWiFi(m.deps.Device, item.network.SSID, "")
		}
		return m.openConnect(item.network)
	}
	return m, nil
}

func isOpenNetwork(n api.Network) bool {
	sec := strings.TrimSpace(strings.ToLower(n.Security))
	return sec == "" || sec == "open" || sec == "none" || sec == "--"
}

func (m Model) selectSystemItem() (tea.Model, tea.Cmd) {
	switch m.settings.cursor {
	case 0:
		return m, toggleEditMode
	case 1:
		return m.ask("Shut down?", "The kiosk will power off.",
			systemAction(m.deps.Device, api.Shutdown), dialogSettings), nil
	case 2:
		return m.ask("Restart?", "The kiosk will reboot.",
			systemAction(m.deps.Device, api.Reboot), dialogSettings), nil
	}
	return m, nil
}

func (m Model) wifiActionDone(msg wifiActionMsg) (tea.Model, tea.Cmd) {
	if m.settings != nil {
		m.settings.busy = ""
	}
	if m.connect != nil && msg.action == wifiConnect {
		m.connect.busy = false
	}
	if msg.err != nil {
		return m, m.notifyErr(msg.err, "Failed to "+msg.action)
	}

	var text string
	switch msg.action {
	case wifiConnect:
		text = "Connected to " + msg.ssid
		if m.dialog == dialogConnect {
			m.connect = nil
			m.dialog = dialogSettings
		}
	case wifiDisconnect:
		text = "Disconnected"
	case wifiEnable:
		text = "WiFi enabled"
		if m.settings != nil {
			m.settings.wifiOn = true
		}
	case wifiDisable:
		text = "WiFi disabled"
		if m.settings != nil {
			m.settings.wifiOn = false
			m.settings.networks = nil
			m.settings.cursor = 0
		}
	}
	cmds := []tea.Cmd{m.notify(text), fetchWiFiStatus(m.deps.Device)}
	if m.settings != nil && m.settings.wifiOn {
		m.settings.loading = true
		cmds = append(cmds, fetchNetworks(m.deps.Device))
	}
	return m, tea.Batch(cmds...)
}

func signalBars(signal int) string {
	bars := (clamp(signal, 0, 100) + 24) / 25
	return strings.Repeat("▮", bars) + strings.Repeat("▯", 4-bars)
}

func (m Model) viewSettings() string {
	s := m.settings
	st := m.st
	var b strings.Builder

	b.WriteString(st.title.Render("Settings") + "\n")
	var tabs []string
	for i, name := range tabNames {
		if i == s.tab {
			tabs = append(tabs, st.tabActive.Render(name))
		} else {
			tabs = append(tabs, st.tab.Render(name))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n")

	switch s.tab {
	case tabNetwork:
		b.WriteString(m.viewNetworkTab())
	case tabAppearance:
		b.WriteString(m.viewAppearanceTab())
	case tabSystem:
		b.WriteString(m.viewSystemTab())
	}
	b.WriteString(st.help.Render("tab/1-3 switch tab · ↑/↓ move · enter select · esc close"))
	return st.dialog.Render(b.String())
}

func (m Model) row(i int, text string) string {
	prefix := "  "
	if m.settings.cursor == i {
		prefix = m.st.cursor.Render("> ")
	}
	return prefix + text + "\n"
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func (m Model) viewNetworkTab() string {
	s := m.settings
	st := m.st
	var b strings.Builder

	status := st.dim.Render("Not connected")
	if m.wifi.Connected {
		status = st.success.Render("Connected to " + m.wifi.SSID)
		if m.wifi.Device != "" {
			status += st.dim.Render(" (" + m.wifi.Device + ")")
		}
	}
	b.WriteString(st.subtitle.Render("Status: ") + status + "\n\n")

	for i, item := range m.networkItems() {
		var text string
		switch item.kind {
		case "radio":
			text = "WiFi: " + onOff(s.wifiOn)
			if s.busy == wifiEnable || s.busy == wifiDisable {
				text += " " + m.spin.View()
			}
		case "refresh":
			text = "Refresh networks"
			if s.loading {
				text += " " + m.spin.View()
			}
		case "disconnect":
			text = "Disconnect"
			if s.busy == wifiDisconnect {
				text += " " + m.spin.View()
			}
		case "network":
			n := item.network
			text = fmt.Sprintf("%s %-24s %s", signalBars(n.Signal), n.SSID, st.dim.Render(n.Security))
			if n.Connected {
				text = st.selected.Render(text + " ✓")
			}
		}
		b.WriteString(m.row(i, text))
	}
	if s.netErr != "" {
		b.WriteString(st.errText.Render(s.netErr) + "\n")
	}
	if s.wifiOn && !s.loading && len(s.networks) == 0 && s.netErr == "" {
		b.WriteString(st.dim.Render("  No networks found") + "\n")
	}
	return b.String()
}

func (m Model) viewAppearanceTab() string {
	var b strings.Builder
	for i, t := range theme.All {
		mark := "○ "
		if t == m.themeName {
			mark = "● "
		}
		b.WriteString(m.row(i, mark+strings.ToUpper(string(t[:1]))+string(t[1:])))
	}
	return b.String()
}

func (m Model) viewSystemTab() string {
	st := m.st
	var b strings.Builder
	b.WriteString(m.row(0, "Edit mode: "+onOff(m.editMode)))
	b.WriteString(m.row(1, st.danger.Render("Shut down")))
	b.WriteString(m.row(2, st.warning.Render("Restart")))
	return b.String()
}

// --- Connect ---

const (
	connectFocusPassword = iota
	connectFocusConnect
	connectFocusCancel
)

type connectDialog struct {
	network  api.Network
	password *field
	focus    int
	busy     bool
}

func (m Model) openConnect(n api.Network) (tea.Model, tea.Cmd) {
	d := &connectDialog{
		network:  n,
		password: newField("Password", keyboard.KindPassword, 63, m.deps.Cue),
	}
	m.connect = d
	m.dialog = dialogConnect
	m.kb = openKeyboard(d.password)
	return m, nil
}

func (m Model) updateConnect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.connect
	switch msg.String() {
	case "esc":
		m.connect = nil
		m.dialog = dialogSettings
	case "up", "shift+tab", "k":
		d.focus = (d.focus + 2) % 3
	case "down", "tab", "j":
		d.focus = (d.focus + 1) % 3
	case "enter", " ":
		switch d.focus {
		case connectFocusPassword:
			m.kb = openKeyboard(d.password)
		case connectFocusConnect:
			if d.busy {
				return m, nil
			}
			d.busy = true
			return m, connectWiFi(m.deps.Device, d.network.SSID, d.password.Value())
		case connectFocusCancel:
			m.connect = nil
			m.dialog = dialogSettings
		}
	}
	return m, nil
}

func (m Model) viewConnect() string {
	d := m.connect
	st := m.st
	var b strings.Builder
	b.WriteString(st.title.Render("Connect to "+d.network.SSID) + "\n")
	b.WriteString(st.dim.Render(d.network.Security+" · signal "+itoa(d.network.Signal)+"%") + "\n\n")
	b.WriteString(m.fieldLine(d.password, d.focus == connectFocusPassword, ""))
	b.WriteString("\n")
	label := "Connect"
	if d.busy {
		label = m.spin.View() + " Connecting"
	}
	b.WriteString(m.button(label, d.focus == connectFocusConnect) + "  " + m.button("Cancel", d.focus == connectFocusCancel))
	return st.dialog.Render(b.String())
}
