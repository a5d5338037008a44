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

package household

import "github.com/cloud-exit/homehub/internal/api"

// Slot is one cell of the home grid. Member is nil for an empty add slot.
type Slot struct {
	Member *api.Member
}

// Empty reports whether the slot invites adding a member.
func (s Slot) Empty() bool { return s.Member == nil }

// Slots lays members out over capacity grid cells. Members keep list order.
// Empty cells are only produced in edit mode; a household larger than
// capacity is shown in full.
func Slots(members []api.Member, capacity int, editMode bool) []Slot {
	out := make([]Slot, 0, max(len(members), capacity))
	for i := range members {
		m := members[i]
		out = append(out, Slot{Member: &m})
	}
	if editMode {
		for len(out) < capacity {
			out = append(out, Slot{})
		}
	}
	return out
}

// Stage is a member's life stage derived from age.
type Stage string

const (
	Child  Stage = "child"
	Teen   Stage = "teen"
	Adult  Stage = "adult"
	Senior Stage = "senior"
)

// LifeStage classifies an age.
func LifeStage(age int) Stage {
	switch {
	case age < 13:
		return Child
	case age < 20:
		return Teen
	case age < 60:
		return Adult
	default:
		return Senior
	}
}
