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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cloud-exit/homehub/internal/api"
	"github.com/cloud-exit/homehub/internal/ui"
	"github.com/spf13/cobra"
)

func newSystemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Shut down or restart the kiosk",
	}
	cmd.AddCommand(newSystemActionCmd(api.Shutdown, "Power off the kiosk"))
	cmd.AddCommand(newSystemActionCmd(api.Reboot, "Restart the kiosk"))
	return cmd
}

func newSystemActionCmd(action api.SystemAction, short string) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   string(action),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(fmt.Sprintf("Really %s the kiosk? [y/N] ", action)) {
				ui.Info("Cancelled")
				return nil
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := c.System(cmd.Context(), action); err != nil {
				return fmt.Errorf("%s: %s", action, api.Message(err, err.Error()))
			}
			ui.Successf("System will %s now", action)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

var confirmInput = bufio.NewReader(os.Stdin)

func confirm(prompt string) bool {
	fmt.Fprint(os.Stderr, prompt)
	line, _ := confirmInput.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
