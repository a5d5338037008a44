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
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cloud-exit/homehub/internal/api"
	"github.com/cloud-exit/homehub/internal/editmode"
	"github.com/cloud-exit/homehub/internal/household"
	"github.com/cloud-exit/homehub/internal/theme"
)

type (
	membersLoadedMsg struct{ err error }
	guestsLoadedMsg  struct{ err error }

	memberSavedMsg struct {
		member api.Member
		edited bool
		err    error
	}
	memberToggledMsg struct {
		member api.Member
		err    error
	}
	memberDeletedMsg struct {
		name string
		err  error
	}
	guestAddedMsg   struct{ err error }
	guestDeletedMsg struct{ err error }

	clockMsg    time.Time
	wifiTickMsg struct{}
	wifiStatusMsg struct {
		status api.WiFiStatus
		err    error
	}
	networksMsg struct {
		networks []api.Network
		err      error
	}
	// wifiActionMsg reports connect, disconnect, enable or disable.
	wifiActionMsg struct {
		action string
		ssid   string
		err    error
	}
	systemMsg struct {
		action api.SystemAction
		err    error
	}
	editModeMsg struct {
		on  bool
		err error
	}
	themeMsg struct {
		theme theme.Theme
		err   error
	}
	toastExpiredMsg struct{ id int }
)

const (
	wifiConnect    = "connect"
	wifiDisconnect = "disconnect"
	wifiEnable     = "enable"
	wifiDisable    = "disable"
)

func fetchMembers(ms *household.Members) tea.Cmd {
	return func() tea.Msg {
		return membersLoadedMsg{err: ms.Fetch(context.Background())}
	}
}

func fetchGuests(gs *household.Guests) tea.Cmd {
	return func() tea.Msg {
		return guestsLoadedMsg{err: gs.Fetch(context.Background())}
	}
}

func saveMember(ms *household.Members, id api.ID, form household.MemberForm) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if id == "" {
			m, err := ms.Add(ctx, form)
			return memberSavedMsg{member: m, err: err}
		}
		m, err := ms.Edit(ctx, id, form)
		return memberSavedMsg{member: m, edited: true, err: err}
	}
}

func toggleMember(ms *household.Members, member api.Member) tea.Cmd {
	return func() tea.Msg {
		m, err := ms.ToggleActive(context.Background(), member)
		if err != nil {
			m = member
		}
		return memberToggledMsg{member: m, err: err}
	}
}

func deleteMember(ms *household.Members, member api.Member) tea.Cmd {
	return func() tea.Msg {
		return memberDeletedMsg{name: member.Name, err: ms.Delete(context.Background(), member.ID)}
	}
}

func addGuest(gs *household.Guests, form household.GuestForm) tea.Cmd {
	return func() tea.Msg {
		_, err := gs.Add(context.Background(), form)
		return guestAddedMsg{err: err}
	}
}

func deleteGuest(gs *household.Guests, id api.ID) tea.Cmd {
	return func() tea.Msg {
		return guestDeletedMsg{err: gs.Delete(context.Background(), id)}
	}
}

func fetchWiFiStatus(d Device) tea.Cmd {
	return func() tea.Msg {
		st, err := d.WiFiStatus(context.Background())
		return wifiStatusMsg{status: st, err: err}
	}
}

func fetchNetworks(d Device) tea.Cmd {
	return func() tea.Msg {
		list, err := d.Networks(context.Background())
		return networksMsg{networks: list, err: err}
	}
}

func connectWiFi(d Device, ssid, password string) tea.Cmd {
	return func() tea.Msg {
		err := d.Connect(context.Background(), ssid, password)
		return wifiActionMsg{action: wifiConnect, ssid: ssid, err: err}
	}
}

func disconnectWiFi(d Device) tea.Cmd {
	return func() tea.Msg {
		return wifiActionMsg{action: wifiDisconnect, err: d.Disconnect(context.Background())}
	}
}

func setWiFi(d Device, on bool) tea.Cmd {
	return func() tea.Msg {
		action := wifiDisable
		if on {
			action = wifiEnable
		}
		return wifiActionMsg{action: action, err: d.SetWiFi(context.Background(), on)}
	}
}

func systemAction(d Device, action api.SystemAction) tea.Cmd {
	return func() tea.Msg {
		return systemMsg{action: action, err: d.System(context.Background(), action)}
	}
}

func toggleEditMode() tea.Msg {
	on, err := editmode.Toggle()
	return editModeMsg{on: on, err: err}
}

// saveTheme persists t. Without a preference store the theme applies for
// this run only.
func saveTheme(p Preferences, t theme.Theme) tea.Cmd {
	return func() tea.Msg {
		if p == nil {
			return themeMsg{theme: t}
		}
		return themeMsg{theme: t, err: p.SetTheme(t)}
	}
}

// untilNextMinute returns the delay to the next wall-clock minute.
func untilNextMinute(now time.Time) time.Duration {
	return now.Truncate(time.Minute).Add(time.Minute).Sub(now)
}
