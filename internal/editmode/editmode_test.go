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

package editmode

import (
	"errors"
	"testing"
)

type memPersister struct {
	on      bool
	failSet bool
	saves   int
}

func (m *memPersister) EditMode() (bool, error) { return m.on, nil }

func (m *memPersister) SetEditMode(on bool) error {
	if m.failSet {
		return errors.New("disk full")
	}
	m.on = on
	m.saves++
	return nil
}

func TestToggleBeforeInit(t *testing.T) {
	reset()
	t.Cleanup(reset)

	if _, err := Toggle(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Toggle before Init error = %v, want ErrNotInitialized", err)
	}
	if err := Set(true); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Set before Init error = %v, want ErrNotInitialized", err)
	}
	if Enabled() {
		t.Error("Enabled should be false before Init")
	}
}

func TestInitLoadsSavedValue(t *testing.T) {
	reset()
	t.Cleanup(reset)

	p := &memPersister{on: true}
	if err := Init(p); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !Enabled() {
		t.Error("Enabled should reflect the saved value")
	}
}

func TestTogglePersists(t *testing.T) {
	reset()
	t.Cleanup(reset)

	p := &memPersister{}
	if err := Init(p); err != nil {
		t.Fatalf("Init: %v", err)
	}
	on, err := Toggle()
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !on || !Enabled() || !p.on {
		t.Errorf("after Toggle: returned %v, Enabled %v, saved %v; want all true", on, Enabled(), p.on)
	}
	on, _ = Toggle()
	if on || p.on {
		t.Error("second Toggle should switch the flag off")
	}
	if p.saves != 2 {
		t.Errorf("saves = %d, want 2", p.saves)
	}
}

func TestSetFailureKeepsOldValue(t *testing.T) {
	reset()
	t.Cleanup(reset)

	p := &memPersister{failSet: true}
	if err := Init(p); err != nil {
		t.Fatalf("Init: %v", err)
	}
	on, err := Toggle()
	if err == nil {
		t.Fatal("Toggle should report the save error")
	}
	if on || Enabled() {
		t.Error("flag should stay off when saving fails")
	}
}

func TestInitWithoutPersister(t *testing.T) {
	reset()
	t.Cleanup(reset)

	if err := Init(nil); err != nil {
		t.Fatalf("Init(nil): %v", err)
	}
	if err := Set(true); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !Enabled() {
		t.Error("in-memory flag should be on")
	}
}
