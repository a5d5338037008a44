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
	"os"

	"github.com/cloud-exit/homehub/internal/dashboard"
	"github.com/cloud-exit/homehub/internal/keyboard"
	"github.com/cloud-exit/homehub/internal/theme"
	"github.com/cloud-exit/homehub/internal/ui"
	"github.com/spf13/cobra"
)

func newKeyboardCmd() *cobra.Command {
	var kindName, initial, label string
	var maxLength int
	cmd := &cobra.Command{
		Use:   "keyboard",
		Short: "Open the on-screen keyboard and print the entered text",
		Long: `Open a single on-screen keyboard session. The committed text is printed
to stdout; cancelling exits with status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := keyboard.ParseKind(kindName)
			if err != nil {
				return err
			}
			if !ui.IsInteractive() {
				return fmt.Errorf("the keyboard needs an interactive terminal")
			}
			out := dashboard.NewTerminal(os.Stdout)
			player, stop := newCuePlayer(cfg.Sound, out)
			defer stop()

			value, ok, err := dashboard.RunKeyboard(dashboard.KeyboardOptions{
				Label:          label,
				Kind:           kind,
				Initial:        initial,
				MaxLength:      maxLength,
				Cue:            player,
				Theme:          theme.System,
				DarkBackground: theme.DetectDarkBackground(),
				Output:         out,
			})
			if err != nil {
				return err
			}
			if !ok {
				stop()
				os.Exit(1)
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kindName, "kind", "k", "text", "Input kind: text, number or password")
	cmd.Flags().StringVar(&initial, "initial", "", "Initial value")
	cmd.Flags().IntVarP(&maxLength, "max", "m", 0, "Maximum length (0 for none)")
	cmd.Flags().StringVar(&label, "label", "", "Label shown above the keys")
	return cmd
}
