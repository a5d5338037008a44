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

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cloud-exit/homehub/internal/api"
)

// GuestBackend is the part of the REST client the guest list needs.
type GuestBackend interface {
	ListGuests(ctx context.Context) ([]api.Guest, error)
	AddGuest(ctx context.Context, g api.Guest) (api.Guest, error)
	DeleteGuest(ctx context.Context, id api.ID) error
}

// ErrGuestLimit is returned when the guest list is full.
var ErrGuestLimit = errors.New("guest limit reached")

// Guests is the guest list. It is safe for concurrent use.
type Guests struct {
	backend GuestBackend
	limit   int

	mu       sync.Mutex
	list     []api.Guest
	fetching bool
	adding   bool
	deleting map[api.ID]bool
}

// NewGuests returns an empty list backed by b holding at most limit guests.
func NewGuests(b GuestBackend, limit int) *Guests {
	return &Guests{backend: b, limit: limit, deleting: map[api.ID]bool{}}
}

// Limit returns the maximum number of guests.
func (g *Guests) Limit() int { return g.limit }

// List returns a copy of the current guests.
func (g *Guests) List() []api.Guest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]api.Guest(nil), g.list...)
}

// Full reports whether no more guests may be added.
func (g *Guests) Full() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.list) >= g.limit
}

// Loading returns a snapshot of the in-flight operations.
func (g *Guests) Loading() Loading {
	g.mu.Lock()
	defer g.mu.Unlock()
	l := Loading{Fetch: g.fetching, Add: g.adding, Delete: map[api.ID]bool{}}
	for id := range g.deleting {
		l.Delete[id] = true
	}
	return l
}

// Fetch replaces the list with the backend's. On failure the list is kept.
func (g *Guests) Fetch(ctx context.Context) error {
	if err := begin(&g.mu, &g.fetching, nil); err != nil {
		return err
	}
	defer end(&g.mu, &g.fetching)

	list, err := g.backend.ListGuests(ctx)
	if err != nil {
		return fmt.Errorf("fetch guests: %w", err)
	}
	g.mu.Lock()
	g.list = list
	g.mu.Unlock()
	return nil
}

// Add validates form and adds the guest unless the list is full.
func (g *Guests) Add(ctx context.Context, form GuestForm) (api.Guest, error) {
	guest, err := form.Validate()
	if err != nil {
		return api.Guest{}, err
	}
	full := func() error {
		if len(g.list) >= g.limit {
			return fmt.Errorf("%w: at most %d guests", ErrGuestLimit, g.limit)
		}
		return nil
	}
	if err := begin(&g.mu, &g.adding, full); err != nil {
		return api.Guest{}, err
	}
	defer end(&g.mu, &g.adding)

	created, err := g.backend.AddGuest(ctx, guest)
	if err != nil {
		return api.Guest{}, fmt.Errorf("add guest: %w", err)
	}
	g.mu.Lock()
	g.list = append(g.list, created)
	g.mu.Unlock()
	return created, nil
}

// Delete removes the guest with id.
func (g *Guests) Delete(ctx context.Context, id api.ID) error {
	if err := beginID(&g.mu, g.deleting, id); err != nil {
		return err
	}
	defer endID(&g.mu, g.deleting, id)

	if err := g.backend.DeleteGuest(ctx, id); err != nil {
		return fmt.Errorf("delete guest: %w", err)
	}
	g.mu.Lock()
	for i := range g.list {
		if g.list[i].ID == id {
			g.list = append(g.list[:i:i], g.list[i+1:]...)
			break
		}
	}
	g.mu.Unlock()
	return nil
}
