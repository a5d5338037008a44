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
	"sort"
	"strconv"

	"github.com/cloud-exit/homehub/internal/prefs"
	"github.com/cloud-exit/homehub/internal/theme"
	"github.com/cloud-exit/homehub/internal/ui"
	"github.com/spf13/cobra"
)

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change local preferences",
		Long:  "Preferences are the theme and edit mode the dashboard remembers between runs.",
	}
	cmd.AddCommand(newPrefsListCmd())
	cmd.AddCommand(newPrefsThemeCmd())
	cmd.AddCommand(newPrefsEditModeCmd())
	cmd.AddCommand(newPrefsResetCmd())
	return cmd
}

func newPrefsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "reset [theme|edit_mode]",
		Short:     "Forget saved preferences so defaults apply",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: prefs.Names,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openPrefs()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Reset(args...); err != nil {
				return err
			}
			if len(args) == 0 {
				ui.Success("All preferences reset")
			} else {
				ui.Successf("Preference %s reset", args[0])
			}
			return nil
		},
	}
}

func newPrefsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List saved preferences",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openPrefs()
			if err != nil {
				return err
			}
			defer store.Close()

			all, err := store.All()
			if err != nil {
				return err
			}
			if len(all) == 0 {
				ui.Info("No preferences saved; defaults apply")
				return nil
			}
			keys := make([]string, 0, len(all))
			for k := range all {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", k, all[k])
			}
			return nil
		},
	}
}

func newPrefsThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|system]",
		Short:     "Show or set the theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark), string(theme.System)},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openPrefs()
			if err != nil {
				return err
			}
			defer store.Close()

			if len(args) == 0 {
				t, err := store.Theme()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), t)
				return nil
			}
			t, err := theme.Parse(args[0])
			if err != nil {
				return err
			}
			if err := store.SetTheme(t); err != nil {
				return err
			}
			ui.Successf("Theme set to %s", t)
			return nil
		},
	}
}

func newPrefsEditModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit-mode [on|off|toggle]",
		Short: "Show or set edit mode",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openPrefs()
			if err != nil {
				return err
			}
			defer store.Close()

			if len(args) == 0 {
				on, err := store.EditMode()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), onOffWord(on))
				return nil
			}

			var on bool
			switch args[0] {
			case "toggle":
				if on, err = store.ToggleEditMode(); err != nil {
					return err
				}
			case "on", "off":
				on = args[0] == "on"
				if err := store.SetEditMode(on); err != nil {
					return err
				}
			default:
				b, perr := strconv.ParseBool(args[0])
				if perr != nil {
					return fmt.Errorf("edit mode must be on, off or toggle, got %q", args[0])
				}
				on = b
				if err := store.SetEditMode(on); err != nil {
					return err
				}
			}
			ui.Successf("Edit mode %s", onOffWord(on))
			return nil
		},
	}
}

func onOffWord(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
