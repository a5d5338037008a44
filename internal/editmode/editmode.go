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

// Package editmode holds the kiosk-wide edit-mode flag. It is initialised
// once at start-up; views receive the current value as a parameter rather
// than reading this package.
package editmode

import (
	"errors"
	"sync"
)

// ErrNotInitialized is returned when the flag is changed before Init.
var ErrNotInitialized = errors.New("edit mode not initialized")

// Persister saves the flag between runs.
type Persister interface {
	EditMode() (bool, error)
	SetEditMode(on bool) error
}

var (
	mu          sync.Mutex
	persister   Persister
	enabled     bool
	initialized bool
)

// Init loads the saved flag. A nil Persister keeps the flag in memory only.
// Calling Init again reloads from the new Persister.
func Init(p Persister) error {
	mu.Lock()
	defer mu.Unlock()

	on := false
	if p != nil {
		var err error
		if on, err = p.EditMode(); err != nil {
			return err
		}
	}
	persister = p
	enabled = on
	initialized = true
	return nil
}

// Enabled reports the current flag. It is false before Init.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Set changes the flag. When saving fails the flag keeps its old value.
func Set(on bool) error {
	mu.Lock()
	defer mu.Unlock()
	return setLocked(on)
}

// Toggle flips the flag and returns the new value.
func Toggle() (bool, error) {
	mu.Lock()
	defer mu.Unlock()
	if err := setLocked(!enabled); err != nil {
		return enabled, err
	}
	return enabled, nil
}

func setLocked(on bool) error {
	if !initialized {
		return ErrNotInitialized
	}
	if persister != nil {
		if err := persister.SetEditMode(on); err != nil {
			return err
		}
	}
	enabled = on
	return nil
}

// reset returns the package to its pre-Init state.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	persister = nil
	enabled = false
	initialized = false
}
