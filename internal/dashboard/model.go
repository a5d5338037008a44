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

// Package dashboard is the kiosk's terminal UI: the household grid, its
// dialogs and the on-screen keyboard that every input field goes through.
package dashboard

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cloud-exit/homehub/internal/api"
	"github.com/cloud-exit/homehub/internal/config"
	"github.com/cloud-exit/homehub/internal/cue"
	"github.com/cloud-exit/homehub/internal/editmode"
	"github.com/cloud-exit/homehub/internal/household"
	"github.com/cloud-exit/homehub/internal/theme"
	"github.com/cloud-exit/homehub/internal/ui"
)

// Device is the part of the REST client that controls the kiosk itself.
type Device interface {
	WiFiStatus(ctx context.Context) (api.WiFiStatus, error)
	Networks(ctx context.Context) ([]api.Network, error)
	Connect(ctx context.Context, ssid, password string) error
	Disconnect(ctx context.Context) error
	SetWiFi(ctx context.Context, on bool) error
	System(ctx context.Context, action api.SystemAction) error
}

// Preferences stores the selected theme.
type Preferences interface {
	Theme() (theme.Theme, error)
	SetTheme(t theme.Theme) error
}

// Deps are the collaborators the dashboard drives.
type Deps struct {
	Config  *config.Config
	Members *household.Members
	Guests  *household.Guests
	Device  Device
	Prefs   Preferences
	Cue     cue.Player
	// Output is the terminal the program draws on, os.Stdout when nil.
	Output *Terminal
	// DarkBackground resolves the system theme.
	DarkBackground bool
	Now            func() time.Time
}

type dialog int

const (
	dialogNone dialog = iota
	dialogMember
	dialogGuests
	dialogSettings
	dialogConnect
	dialogConfirm
)

const (
	gridColumns = 5
	toastTTL    = 4 * time.Second
	maxToasts   = 3
)

type toast struct {
	id    int
	text  string
	isErr bool
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	deps   Deps
	st     styles
	spin   spinner.Model
	width  int
	height int

	now       time.Time
	wifi      api.WiFiStatus
	editMode  bool
	themeName theme.Theme

	cursor int
	dialog dialog

	member   *memberDialog
	guests   *guestDialog
	settings *settingsDialog
	connect  *connectDialog
	confirm  *confirmDialog
	kb       *osk

	toasts   []toast
	toastSeq int
	quitting bool

	tick func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
}

// New builds the dashboard. editmode must be initialised by the caller.
func New(deps Deps) Model {
	if deps.Config == nil {
		deps.Config = config.DefaultConfig()
	}
	if deps.Cue == nil {
		deps.Cue = cue.Nop{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	t := theme.System
	if deps.Prefs != nil {
		if saved, err := deps.Prefs.Theme(); err == nil {
			t = saved
		} else {
			ui.Debugf("loading theme: %v", err)
		}
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := Model{
		deps:      deps,
		spin:      sp,
		now:       deps.Now(),
		editMode:  editmode.Enabled(),
		themeName: t,
		tick:      tea.Tick,
	}
	m.applyTheme(t)
	return m
}

func (m *Model) applyTheme(t theme.Theme) {
	m.themeName = t
	m.st = newStyles(theme.PaletteFor(t, m.deps.DarkBackground))
	m.spin.Style = m.st.cursor
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchMembers(m.deps.Members),
		fetchGuests(m.deps.Guests),
		fetchWiFiStatus(m.deps.Device),
		m.scheduleClock(),
		m.scheduleWiFiPoll(),
		m.spin.Tick,
	)
}

func (m Model) scheduleClock() tea.Cmd {
	return m.tick(untilNextMinute(m.deps.Now()), func(t time.Time) tea.Msg { return clockMsg(t) })
}

func (m Model) scheduleWiFiPoll() tea.Cmd {
	return m.tick(m.deps.Config.WiFi.PollInterval, func(time.Time) tea.Msg { return wifiTickMsg{} })
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool { return m.quitting }

// EditMode reports the edit-mode flag the views are drawn with.
func (m Model) EditMode() bool { return m.editMode }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case clockMsg:
		m.now = time.Time(msg)
		return m, m.scheduleClock()

	case wifiTickMsg:
		return m, tea.Batch(fetchWiFiStatus(m.deps.Device), m.scheduleWiFiPoll())

	case wifiStatusMsg:
		if msg.err != nil {
			ui.Debugf("wifi status: %v", msg.err)
			m.wifi = api.WiFiStatus{}
		} else {
			m.wifi = msg.status
		}
		return m, nil

	case toastExpiredMsg:
		for i, t := range m.toasts {
			if t.id == msg.id {
				m.toasts = append(m.toasts[:i:i], m.toasts[i+1:]...)
				break
			}
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.kb != nil {
			if m.kb.handleKey(msg) {
				m.kb = nil
			}
			return m, nil
		}
		switch m.dialog {
		case dialogMember:
			return m.updateMemberDialog(msg)
		case dialogGuests:
			return m.updateGuestDialog(msg)
		case dialogSettings:
			return m.updateSettings(msg)
		case dialogConnect:
			return m.updateConnect(msg)
		case dialogConfirm:
			return m.updateConfirm(msg)
		}
		return m.updateHome(msg)
	}

	return m.handleResult(msg)
}

// handleResult applies the outcome of a backend call.
func (m Model) handleResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case membersLoadedMsg:
		if msg.err != nil && !errors.Is(msg.err, household.ErrBusy) {
			return m, m.notifyErr(msg.err, "Failed to load family members")
		}
		m.cursor = clamp(m.cursor, 0, m.cellCount()-1)

	case guestsLoadedMsg:
		if msg.err != nil && !errors.Is(msg.err, household.ErrBusy) {
			return m, m.notifyErr(msg.err, "Failed to load guests")
		}

	case memberSavedMsg:
		return m.memberSaved(msg)

	case memberToggledMsg:
		if msg.err != nil {
			return m, m.notifyErr(msg.err, "Failed to update "+msg.member.Name)
		}
		state := "away"
		if msg.member.IsActive {
			state = "home"
		}
		return m, m.notify(msg.member.Name + " is " + state)

	case memberDeletedMsg:
		if msg.err != nil {
			return m, m.notifyErr(msg.err, "Failed to delete member")
		}
		m.cursor = clamp(m.cursor, 0, m.cellCount()-1)
		return m, m.notify("Removed " + msg.name)

	case guestAddedMsg:
		return m.guestAdded(msg)

	case guestDeletedMsg:
		if msg.err != nil {
			return m, m.notifyErr(msg.err, "Failed to remove guest")
		}
		if m.guests != nil {
			m.guests.list = clamp(m.guests.list, 0, len(m.deps.Guests.List())-1)
		}
		return m, m.notify("Guest removed")

	case networksMsg:
		if m.settings != nil {
			m.settings.loading = false
			if msg.err != nil {
				m.settings.netErr = api.Message(msg.err, "Failed to scan networks")
			} else {
				m.settings.networks = msg.networks
				m.settings.netErr = ""
			}
		}

	case wifiActionMsg:
		return m.wifiActionDone(msg)

	case systemMsg:
		if msg.err != nil {
			return m, m.notifyErr(msg.err, "Failed to "+string(msg.action))
		}
		return m, m.notify("System will " + string(msg.action) + " now")

	case editModeMsg:
		if msg.err != nil {
			return m, m.notifyErr(msg.err, "Failed to change edit mode")
		}
		m.editMode = msg.on
		m.cursor = clamp(m.cursor, 0, m.cellCount()-1)

	case themeMsg:
		if msg.err != nil {
			return m, m.notifyErr(msg.err, "Failed to save theme")
		}
		m.applyTheme(msg.theme)
	}
	return m, nil
}

func (m *Model) notify(text string) tea.Cmd {
	return m.pushToast(text, false)
}

func (m *Model) notifyErr(err error, fallback string) tea.Cmd {
	ui.Debugf("%s: %v", fallback, err)
	return m.pushToast(api.Message(err, fallback), true)
}

func (m *Model) pushToast(text string, isErr bool) tea.Cmd {
	m.toastSeq++
	id := m.toastSeq
	m.toasts = append(m.toasts, toast{id: id, text: text, isErr: isErr})
	if len(m.toasts) > maxToasts {
		m.toasts = m.toasts[len(m.toasts)-maxToasts:]
	}
	return m.tick(toastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

// --- Home ---

// slots returns the member cells of the grid; the guest card follows them.
func (m Model) slots() []household.Slot {
	return household.Slots(m.deps.Members.List(), m.deps.Config.Household.MaxMembers, m.editMode)
}

func (m Model) cellCount() int { return len(m.slots()) + 1 }

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	slots := m.slots()
	last := len(slots)
	m.cursor = clamp(m.cursor, 0, last)

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Left):
		m.cursor = clamp(m.cursor-1, 0, last)
	case key.Matches(msg, keys.Right):
		m.cursor = clamp(m.cursor+1, 0, last)
	case key.Matches(msg, keys.Up):
		if m.cursor-gridColumns >= 0 {
			m.cursor -= gridColumns
		}
	case key.Matches(msg, keys.Down):
		m.cursor = clamp(m.cursor+gridColumns, 0, last)
	case key.Matches(msg, keys.Guests):
		return m.openGuests()
	case key.Matches(msg, keys.Settings):
		return m.openSettings()
	case key.Matches(msg, keys.Refresh):
		return m, tea.Batch(fetchMembers(m.deps.Members), fetchGuests(m.deps.Guests), fetchWiFiStatus(m.deps.Device))
	case key.Matches(msg, keys.Select):
		if m.cursor == last {
			return m.openGuests()
		}
		slot := slots[m.cursor]
		if slot.Empty() {
			return m.openMemberDialog(nil)
		}
		if m.deps.Members.Loading().Toggle[slot.Member.ID] {
			return m, nil
		}
		return m, toggleMember(m.deps.Members, *slot.Member)
	case key.Matches(msg, keys.Edit):
		if m.editMode && m.cursor < last && !slots[m.cursor].Empty() {
			return m.openMemberDialog(slots[m.cursor].Member)
		}
	case key.Matches(msg, keys.Delete):
		if m.editMode && m.cursor < last && !slots[m.cursor].Empty() {
			member := *slots[m.cursor].Member
			return m.ask("Delete "+member.Name+"?",
				"This removes the member from the household.",
				deleteMember(m.deps.Members, member), dialogNone), nil
		}
	}
	return m, nil
}

// --- Confirm ---

type confirmDialog struct {
	title string
	body  string
	yes   bool
	run   tea.Cmd
	back  dialog
}

func (m Model) ask(title, body string, run tea.Cmd, back dialog) Model {
	m.confirm = &confirmDialog{title: title, body: body, run: run, back: back}
	m.dialog = dialogConfirm
	return m
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.confirm
	switch msg.String() {
	case "left", "right", "tab", "h", "l":
		c.yes = !c.yes
	case "y":
		c.yes = true
		fallthrough
	case "enter":
		m.dialog = c.back
		m.confirm = nil
		if c.yes {
			return m, c.run
		}
	case "n", "esc":
		m.dialog = c.back
		m.confirm = nil
	}
	return m, nil
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func itoa(n int) string { return strconv.Itoa(n) }

// place centres a dialog in the body area.
func (m Model) place(body string, height int) string {
	if m.width == 0 {
		return body
	}
	return lipgloss.Place(m.width, max(height, lipgloss.Height(body)), lipgloss.Center, lipgloss.Center, body)
}
