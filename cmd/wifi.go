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
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cloud-exit/homehub/internal/api"
	"github.com/cloud-exit/homehub/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newWiFiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wifi",
		Short: "Inspect and control the kiosk's WiFi",
	}
	cmd.AddCommand(newWiFiStatusCmd())
	cmd.AddCommand(newWiFiScanCmd())
	cmd.AddCommand(newWiFiConnectCmd())
	cmd.AddCommand(newWiFiSimpleCmd("disconnect", "Disconnect from the current network", "Disconnected",
		func(ctx context.Context, c *api.Client) error { return c.Disconnect(ctx) }))
	cmd.AddCommand(newWiFiSimpleCmd("on", "Turn the WiFi radio on", "WiFi enabled",
		func(ctx context.Context, c *api.Client) error { return c.SetWiFi(ctx, true) }))
	cmd.AddCommand(newWiFiSimpleCmd("off", "Turn the WiFi radio off", "WiFi disabled",
		func(ctx context.Context, c *api.Client) error { return c.SetWiFi(ctx, false) }))
	return cmd
}

func newWiFiStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current connection",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			st, err := c.WiFiStatus(cmd.Context())
			if err != nil {
				return fmt.Errorf("wifi status: %w", err)
			}
			if !st.Connected {
				fmt.Fprintln(cmd.OutOrStdout(), "Not connected")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Connected to %s", st.SSID)
			if st.Device != "" {
				fmt.Fprintf(cmd.OutOrStdout(), " on %s", st.Device)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

func newWiFiScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "scan",
		Short:   "List networks in range",
		Aliases: []string{"list", "ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			networks, err := ui.While("Scanning networks", func() ([]api.Network, error) {
				return c.Networks(cmd.Context())
			})
			if err != nil {
				return fmt.Errorf("wifi scan: %w", err)
			}
			if len(networks) == 0 {
				ui.Info("No networks found")
				return nil
			}
			for _, n := range networks {
				mark := " "
				if n.Connected {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-28s %3d%%  %s\n", mark, n.SSID, n.Signal, n.Security)
			}
			return nil
		},
	}
}

func newWiFiConnectCmd() *cobra.Command {
	var password string
	var askPassword bool
	cmd := &cobra.Command{
		Use:   "connect <ssid>",
		Short: "Connect to a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if askPassword {
				pw, err := readPassword(fmt.Sprintf("Password for %s: ", args[0]))
				if err != nil {
					return err
				}
				password = pw
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := c.Connect(cmd.Context(), args[0], password); err != nil {
				return fmt.Errorf("connecting to %s: %s", args[0], api.Message(err, err.Error()))
			}
			ui.Successf("Connected to %s", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "Network password")
	cmd.Flags().BoolVarP(&askPassword, "ask", "p", false, "Prompt for the password")
	return cmd
}

func newWiFiSimpleCmd(use, short, done string, fn func(context.Context, *api.Client) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := fn(cmd.Context(), c); err != nil {
				return fmt.Errorf("wifi %s: %s", use, api.Message(err, err.Error()))
			}
			ui.Success(done)
			return nil
		},
	}
}

// readPassword prompts on stderr and reads without echo.
func readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("--ask needs an interactive terminal")
	}
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
