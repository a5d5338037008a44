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

	"github.com/cloud-exit/homehub/internal/config"
	"github.com/cloud-exit/homehub/internal/ui"
	"github.com/cloud-exit/homehub/internal/update"
	"github.com/spf13/cobra"
)

// Version is set by ldflags at build time.
var Version = "0.4.0"

// cfg is the loaded configuration, set before any command runs.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "homehub",
	Short: "Household kiosk dashboard",
	Long:  "HomeHub – a touch-friendly household dashboard: who is home, guests, WiFi and system controls",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, _ := cmd.Flags().GetBool("verbose")
		ui.Verbose = v

		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		if url, _ := cmd.Flags().GetString("api"); url != "" {
			loaded.API.URL = url
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "homehub version %s\n", Version)
		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}
		res, err := ui.While("Checking for updates", func() (update.Result, error) {
			return update.Checker{URL: releaseURL}.Check(cmd.Context(), Version)
		})
		if err != nil {
			return fmt.Errorf("update check: %w", err)
		}
		if res.Available {
			fmt.Fprintf(cmd.OutOrStdout(), "homehub %s is available\n", res.Latest)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "homehub is up to date")
		}
		return nil
	},
}

// releaseURL is where version --check looks for the latest release.
var releaseURL = update.DefaultURL

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("api", "", "Backend URL (overrides api.url)")

	versionCmd.Flags().Bool("check", false, "Check for a newer release")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newPrefsCmd())
	rootCmd.AddCommand(newWiFiCmd())
	rootCmd.AddCommand(newSystemCmd())
	rootCmd.AddCommand(newFakeBackendCmd())
	rootCmd.AddCommand(newKeyboardCmd())

	rootCmd.SetVersionTemplate("homehub version {{.Version}}\n")
	rootCmd.Version = Version
}

// loadConfig reads config.yaml, falling back to defaults when it is absent.
func loadConfig() (*config.Config, error) {
	if !config.ConfigExists() {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig()
}

// Execute runs the root command.
func Execute() {
	if err := config.EnsureDirs(); err != nil {
		ui.Warnf("Failed to create directories: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		ui.Errorf("%v", err)
	}
}
