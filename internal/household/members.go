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

// Package household keeps the dashboard's view of the family members and
// guests in step with the backend.
package household

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cloud-exit/homehub/internal/api"
)

// MemberBackend is the part of the REST client the member list needs.
type MemberBackend interface {
	ListMembers(ctx context.Context) ([]api.Member, error)
	AddMember(ctx context.Context, m api.Member) (api.Member, error)
	UpdateMember(ctx context.Context, id api.ID, patch api.MemberPatch) (api.Member, error)
	DeleteMember(ctx context.Context, id api.ID) error
}

// ErrBusy is returned when the same operation is already in flight.
var ErrBusy = errors.New("operation already in progress")

// Loading reports which operations are in flight.
type Loading struct {
	Fetch  bool
	Add    bool
	Update bool
	Delete map[api.ID]bool
	Toggle map[api.ID]bool
}

// Members is the household member list. It is safe for concurrent use.
type Members struct {
	backend MemberBackend

	mu      sync.Mutex
	list    []api.Member
	fetched bool
	loading Loading
	editing bool
	updates int // edits and toggles in flight
}

// NewMembers returns an empty list backed by b.
func NewMembers(b MemberBackend) *Members {
	return &Members{
		backend: b,
		loading: Loading{Delete: map[api.ID]bool{}, Toggle: map[api.ID]bool{}},
	}
}

// List returns a copy of the current members.
func (m *Members) List() []api.Member {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]api.Member(nil), m.list...)
}

// Fetched reports whether at least one fetch succeeded.
func (m *Members) Fetched() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetched
}

// Loading returns a snapshot of the in-flight operations.
func (m *Members) Loading() Loading {
	m.mu.Lock()
	defer m.mu.Unlock()
	l := cloneLoading(m.loading)
	l.Update = m.updates > 0
	return l
}

// Find returns the member with id.
func (m *Members) Find(id api.ID) (api.Member, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.index(id); i >= 0 {
		return m.list[i], true
	}
	return api.Member{}, false
}

// Fetch replaces the list with the backend's. On failure the list is kept.
func (m *Members) Fetch(ctx context.Context) error {
	if err := begin(&m.mu, &m.loading.Fetch, nil); err != nil {
		return err
	}
	defer end(&m.mu, &m.loading.Fetch)

	list, err := m.backend.ListMembers(ctx)
	if err != nil {
		return fmt.Errorf("fetch members: %w", err)
	}
	m.mu.Lock()
	m.list = list
	m.fetched = true
	m.mu.Unlock()
	return nil
}

// Add validates form, creates the member and appends it.
func (m *Members) Add(ctx context.Context, form MemberForm) (api.Member, error) {
	member, err := form.Validate()
	if err != nil {
		return api.Member{}, err
	}
	if err := begin(&m.mu, &m.loading.Add, nil); err != nil {
		return api.Member{}, err
	}
	defer end(&m.mu, &m.loading.Add)

	created, err := m.backend.AddMember(ctx, member)
	if err != nil {
		return api.Member{}, fmt.Errorf("add member: %w", err)
	}
	m.mu.Lock()
	m.list = append(m.list, created)
	m.mu.Unlock()
	return created, nil
}

// Edit validates form and replaces the member's name, age and sex.
func (m *Members) Edit(ctx context.Context, id api.ID, form MemberForm) (api.Member, error) {
	member, err := form.Validate()
	if err != nil {
		return api.Member{}, err
	}
	return m.Update(ctx, id, api.MemberPatch{Name: &member.Name, Age: &member.Age, Sex: &member.Sex})
}

// Update sends patch for id and stores the backend's copy.
func (m *Members) Update(ctx context.Context, id api.ID, patch api.MemberPatch) (api.Member, error) {
	if err := begin(&m.mu, &m.editing, nil); err != nil {
		return api.Member{}, err
	}
	defer end(&m.mu, &m.editing)
	return m.update(ctx, id, patch)
}

// ToggleActive flips a member's presence. It counts as an update in
// Loading as well as a toggle of that member.
func (m *Members) ToggleActive(ctx context.Context, member api.Member) (api.Member, error) {
	if err := beginID(&m.mu, m.loading.Toggle, member.ID); err != nil {
		return api.Member{}, err
	}
	defer endID(&m.mu, m.loading.Toggle, member.ID)

	active := !member.IsActive
	return m.update(ctx, member.ID, api.MemberPatch{IsActive: &active})
}

// Delete removes the member with id.
func (m *Members) Delete(ctx context.Context, id api.ID) error {
	if err := beginID(&m.mu, m.loading.Delete, id); err != nil {
		return err
	}
	defer endID(&m.mu, m.loading.Delete, id)

	if err := m.backend.DeleteMember(ctx, id); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	m.mu.Lock()
	if i := m.index(id); i >= 0 {
		m.list = append(m.list[:i:i], m.list[i+1:]...)
	}
	m.mu.Unlock()
	return nil
}

func (m *Members) update(ctx context.Context, id api.ID, patch api.MemberPatch) (api.Member, error) {
	m.mu.Lock()
	m.updates++
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.updates--
		m.mu.Unlock()
	}()

	updated, err := m.backend.UpdateMember(ctx, id, patch)
	if err != nil {
		return api.Member{}, fmt.Errorf("update member: %w", err)
	}
	if updated.ID == "" {
		updated.ID = id
	}
	m.mu.Lock()
	if i := m.index(id); i >= 0 {
		m.list[i] = updated
	}
	m.mu.Unlock()
	return updated, nil
}

// index must be called with mu held.
func (m *Members) index(id api.ID) int {
	for i := range m.list {
		if m.list[i].ID == id {
			return i
		}
	}
	return -1
}

// begin marks flag under mu. guard, when set, runs under the same lock and
// can refuse the operation.
func begin(mu *sync.Mutex, flag *bool, guard func() error) error {
	mu.Lock()
	defer mu.Unlock()
	if *flag {
		return ErrBusy
	}
	if guard != nil {
		if err := guard(); err != nil {
			return err
		}
	}
	*flag = true
	return nil
}

func end(mu *sync.Mutex, flag *bool) {
	mu.Lock()
	*flag = false
	mu.Unlock()
}

func beginID(mu *sync.Mutex, set map[api.ID]bool, id api.ID) error {
	mu.Lock()
	defer mu.Unlock()
	if set[id] {
		return ErrBusy
	}
	set[id] = true
	return nil
}

func endID(mu *sync.Mutex, set map[api.ID]bool, id api.ID) {
	mu.Lock()
	delete(set, id)
	mu.Unlock()
}

func cloneLoading(l Loading) Loading {
	out := l
	out.Delete = make(map[api.ID]bool, len(l.Delete))
	for id := range l.Delete {
		out.Delete[id] = true
	}
	out.Toggle = make(map[api.ID]bool, len(l.Toggle))
	for id := range l.Toggle {
		out.Toggle[id] = true
	}
	return out
}
