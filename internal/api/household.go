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

package api

import (
	"context"
	"net/http"
)

// ListMembers returns every family member.
func (c *Client) ListMembers(ctx context.Context) ([]Member, error) {
	var out []Member
	if err := c.do(ctx, http.MethodGet, "/family-members", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddMember creates a member and returns it with its assigned id.
func (c *Client) AddMember(ctx context.Context, m Member) (Member, error) {
	m.ID = ""
	var out Member
	err := c.do(ctx, http.MethodPost, "/family-members", m, &out)
	return out, err
}

// UpdateMember applies a partial update and returns the stored member.
func (c *Client) UpdateMember(ctx context.Context, id ID, patch MemberPatch) (Member, error) {
	var out Member
	err := c.do(ctx, http.MethodPut, idPath("/family-members", id), patch, &out)
	return out, err
}

// DeleteMember removes a member.
func (c *Client) DeleteMember(ctx context.Context, id ID) error {
	return c.do(ctx, http.MethodDelete, idPath("/family-members", id), nil, nil)
}

// ListGuests returns the guest list.
func (c *Client) ListGuests(ctx context.Context) ([]Guest, error) {
	var out []Guest
	if err := c.do(ctx, http.MethodGet, "/guests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddGuest adds a guest and returns it with its assigned id.
func (c *Client) AddGuest(ctx context.Context, g Guest) (Guest, error) {
	g.ID = ""
	var out Guest
	err := c.do(ctx, http.MethodPost, "/guests", g, &out)
	return out, err
}

// DeleteGuest removes a guest.
func (c *Client) DeleteGuest(ctx context.Context, id ID) error {
	return c.do(ctx, http.MethodDelete, idPath("/guests", id), nil, nil)
}
