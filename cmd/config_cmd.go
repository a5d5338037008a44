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
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage config.yaml",
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print where homehub keeps its files",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-14s %s\n", "Config:", config.ConfigFile())
			fmt.Fprintf(cmd.OutOrStdout(), "  %-14s %s\n", "Preferences:", config.PrefsDir())
			fmt.Fprintf(cmd.OutOrStdout(), "  %-14s %s\n", "Log:", config.LogFile())
		},
	})
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.ConfigExists() && !force {
				ui.Infof("Config already exists at %s (use --force to overwrite)", config.ConfigFile())
				return nil
			}
			write := config.WriteDefaults
			if force {
				write = func() error { return config.SaveConfig(config.DefaultConfig()) }
			}
			if err := write(); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			ui.Logo(Version)
			ui.Successf("Wrote %s", config.ConfigFile())
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
