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

// Package prefs persists the kiosk's local preferences (theme and edit mode)
// in the embedded key-value store.
package prefs

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/cloud-exit/homehub/internal/kvstore"
	"github.com/cloud-exit/homehub/internal/theme"
)

const (
	prefix      = "pref:"
	keyTheme    = prefix + "theme"
	keyEditMode = prefix + "edit_mode"
)

// Names lists the preferences Reset accepts.
var Names = []string{"theme", "edit_mode"}

// Store reads and writes preferences.
type Store struct {
	kv *kvstore.Store
}

// Open opens the preference store in dir. An empty dir keeps everything in
// memory.
func Open(dir string) (*Store, error) {
	kv, err := kvstore.Open(kvstore.Options{Dir: dir, InMemory: dir == ""})
	if err != nil {
		return nil, fmt.Errorf("opening preference store: %w", err)
	}
	return &Store{kv: kv}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.kv.Close()
}

// Theme returns the saved theme, System when none is saved. A corrupt value
// also falls back to System.
func (s *Store) Theme() (theme.Theme, error) {
	raw, err := s.kv.Get([]byte(keyTheme))
	if errors.Is(err, kvstore.ErrNotFound) {
		return theme.System, nil
	}
	if err != nil {
		return theme.System, fmt.Errorf("reading theme: %w", err)
	}
	t, err := theme.Parse(string(raw))
	if err != nil {
		return theme.System, nil
	}
	return t, nil
}

// SetTheme saves the theme.
func (s *Store) SetTheme(t theme.Theme) error {
	if _, err := theme.Parse(string(t)); err != nil {
		return err
	}
	if err := s.kv.Set([]byte(keyTheme), []byte(t)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

// EditMode returns the saved edit-mode flag, false when none is saved.
func (s *Store) EditMode() (bool, error) {
	raw, err := s.kv.Get([]byte(keyEditMode))
	if errors.Is(err, kvstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading edit mode: %w", err)
	}
	on, _ := strconv.ParseBool(string(raw))
	return on, nil
}

// SetEditMode saves the edit-mode flag.
func (s *Store) SetEditMode(on bool) error {
	if err := s.kv.Set([]byte(keyEditMode), []byte(strconv.FormatBool(on))); err != nil {
		return fmt.Errorf("saving edit mode: %w", err)
	}
	return nil
}

// ToggleEditMode flips the saved flag in one transaction and returns the
// new value.
func (s *Store) ToggleEditMode() (bool, error) {
	out, err := s.kv.Update([]byte(keyEditMode), func(old []byte) ([]byte, error) {
		on, _ := strconv.ParseBool(string(old))
		return []byte(strconv.FormatBool(!on)), nil
	})
	if err != nil {
		return false, fmt.Errorf("toggling edit mode: %w", err)
	}
	return strconv.ParseBool(string(out))
}

// All returns every saved preference keyed by its short name.
func (s *Store) All() (map[string]string, error) {
	out := make(map[string]string)
	err := s.kv.Iterate([]byte(prefix), func(key, value []byte) error {
		out[string(key[len(prefix):])] = string(value)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing preferences: %w", err)
	}
	return out, nil
}

// Reset deletes the named preferences so their defaults apply again. With no
// names every preference is reset.
func (s *Store) Reset(names ...string) error {
	if len(names) == 0 {
		names = Names
	}
	for _, name := range names {
		known := false
		for _, n := range Names {
			known = known || n == name
		}
		if !known {
			return fmt.Errorf("unknown preference %q (want theme or edit_mode)", name)
		}
	}
	for _, name := range names {
		if err := s.kv.Delete([]byte(prefix + name)); err != nil {
			return fmt.Errorf("resetting %s: %w", name, err)
		}
	}
	return nil
}
