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

// Package config loads and saves the kiosk configuration (config.yaml) and
// knows where homehub keeps its files.
package config

import "time"

// Config is the top-level homehub configuration (config.yaml).
type Config struct {
	Version   int             `yaml:"version"`
	API       APIConfig       `yaml:"api"`
	Sound     SoundConfig     `yaml:"sound"`
	WiFi      WiFiConfig      `yaml:"wifi"`
	Clock     ClockConfig     `yaml:"clock"`
	Household HouseholdConfig `yaml:"household"`
}

// APIConfig points at the household backend.
type APIConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Sound modes for the key-press cue.
const (
	SoundOff     = "off"
	SoundBell    = "bell"
	SoundCommand = "command"
)

// SoundConfig selects how key presses are made audible.
type SoundConfig struct {
	Mode    string   `yaml:"mode"`
	Command []string `yaml:"command,omitempty"` // argv, e.g. [aplay, -q, key.wav]
}

// WiFiConfig controls the top bar's connection indicator.
type WiFiConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
}

// ClockConfig controls the top bar clock.
type ClockConfig struct {
	Use24h bool `yaml:"24h"`
}

// HouseholdConfig sizes the home grid and guest list.
type HouseholdConfig struct {
	MaxMembers int `yaml:"max_members"`
	MaxGuests  int `yaml:"max_guests"`
}
