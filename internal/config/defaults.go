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

package config

import (
	"fmt"
	"net/url"
	"time"
)

// Defaults used when config.yaml leaves a field empty.
const (
	DefaultAPIURL       = "http://localhost:5000"
	DefaultAPITimeout   = 5 * time.Second
	DefaultPollInterval = 30 * time.Second
	DefaultMaxMembers   = 7
	DefaultMaxGuests    = 5
)

// DefaultConfig returns the configuration of a fresh kiosk.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APIConfig{
			URL:     DefaultAPIURL,
			Timeout: DefaultAPITimeout,
		},
		Sound: SoundConfig{Mode: SoundBell},
		WiFi:  WiFiConfig{PollInterval: DefaultPollInterval},
		Clock: ClockConfig{Use24h: true},
		Household: HouseholdConfig{
			MaxMembers: DefaultMaxMembers,
			MaxGuests:  DefaultMaxGuests,
		},
	}
}

// applyDefaults fills zero values left by a partial config file.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Version == 0 {
		cfg.Version = def.Version
	}
	if cfg.API.URL == "" {
		cfg.API.URL = def.API.URL
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = def.API.Timeout
	}
	if cfg.Sound.Mode == "" {
		cfg.Sound.Mode = def.Sound.Mode
	}
	if cfg.WiFi.PollInterval <= 0 {
		cfg.WiFi.PollInterval = def.WiFi.PollInterval
	}
	if cfg.Household.MaxMembers <= 0 {
		cfg.Household.MaxMembers = def.Household.MaxMembers
	}
	if cfg.Household.MaxGuests <= 0 {
		cfg.Household.MaxGuests = def.Household.MaxGuests
	}
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.url %q is not an http(s) URL", c.API.URL)
	}
	switch c.Sound.Mode {
	case SoundOff, SoundBell:
	case SoundCommand:
		if len(c.Sound.Command) == 0 {
			return fmt.Errorf("sound.mode is %q but sound.command is empty", SoundCommand)
		}
	default:
		return fmt.Errorf("sound.mode %q must be off, bell or command", c.Sound.Mode)
	}
	if c.WiFi.PollInterval < time.Second {
		return fmt.Errorf("wifi.poll_interval %s is below one second", c.WiFi.PollInterval)
	}
	return nil
}
