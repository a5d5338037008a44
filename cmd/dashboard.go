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

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cloud-exit/homehub/internal/api"
	"github.com/cloud-exit/homehub/internal/config"
	"github.com/cloud-exit/homehub/internal/cue"
	"github.com/cloud-exit/homehub/internal/dashboard"
	"github.com/cloud-exit/homehub/internal/editmode"
	"github.com/cloud-exit/homehub/internal/household"
	"github.com/cloud-exit/homehub/internal/prefs"
	"github.com/cloud-exit/homehub/internal/theme"
	"github.com/cloud-exit/homehub/internal/ui"
)

func runDashboard() error {
	if !ui.IsInteractive() {
		return fmt.Errorf("the dashboard needs an interactive terminal")
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	store, err := openPrefs()
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			ui.Warnf("Failed to close preference store: %v", err)
		}
	}()
	if err := editmode.Init(store); err != nil {
		return fmt.Errorf("loading edit mode: %w", err)
	}

	out := dashboard.NewTerminal(os.Stdout)
	player, stop := newCuePlayer(cfg.Sound, out)
	defer stop()

	return dashboard.Run(dashboard.Deps{
		Config:         cfg,
		Members:        household.NewMembers(client),
		Guests:         household.NewGuests(client, cfg.Household.MaxGuests),
		Device:         client,
		Prefs:          store,
		Cue:            player,
		Output:         out,
		DarkBackground: theme.DetectDarkBackground(),
	}, config.LogFile())
}

func newClient() (*api.Client, error) {
	return api.New(cfg.API.URL, api.WithTimeout(cfg.API.Timeout))
}

// openPrefs opens the on-disk preference store.
func openPrefs() (*prefs.Store, error) {
	store, err := prefs.Open(config.PrefsDir())
	if err != nil {
		if strings.Contains(err.Error(), "Cannot acquire directory lock") {
			return nil, fmt.Errorf("preferences are locked by a running dashboard; quit it first")
		}
		return nil, err
	}
	return store, nil
}

// newCuePlayer builds the key-press cue from the sound settings. The bell is
// written to term, which must be the writer the program draws with. The
// returned function stops the player.
func newCuePlayer(sc config.SoundConfig, term io.Writer) (cue.Player, func()) {
	var sink cue.Sink
	switch sc.Mode {
	case config.SoundBell:
		sink = cue.Bell(term)
	case config.SoundCommand:
		if len(sc.Command) == 0 {
			return cue.Nop{}, func() {}
		}
		sink = cue.Command(sc.Command[0], sc.Command[1:]...)
	default:
		return cue.Nop{}, func() {}
	}
	d := cue.NewDispatcher(sink, cue.WithErrorHandler(func(err error) {
		ui.Debugf("key cue: %v", err)
	}))
	return d, d.Close
}
