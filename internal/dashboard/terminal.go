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

package dashboard

import (
	"os"
	"sync"
)

// Terminal is the program's output file with serialised writes. Handing the
// same Terminal to the key bell keeps a bell from landing inside a frame.
type Terminal struct {
	*os.File
	mu sync.Mutex
}

// NewTerminal wraps f, usually os.Stdout.
func NewTerminal(f *os.File) *Terminal {
	return &Terminal{File: f}
}

// Write writes p in one piece.
func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.File.Write(p)
}
