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
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// ID identifies a member or guest. Backends hand out either integers or
// strings; both decode into an ID.
type ID string

// UnmarshalJSON accepts a JSON number or string.
func (id *ID) UnmarshalJSON(data []byte) error {
	v := gjson.ParseBytes(data)
	switch v.Type {
	case gjson.Number:
		*id = ID(v.Raw)
	case gjson.String:
		*id = ID(v.Str)
	case gjson.Null:
		*id = ""
	default:
		return fmt.Errorf("invalid id %s", data)
	}
	return nil
}

// MarshalJSON writes canonical integers ("12", "-3") as JSON numbers for
// integer-keyed backends. Anything else, including "007" and "+5", is
// written as a string.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return []byte(strconv.Quote(string(id))), nil
}

// Sex is the value set shared by members and guests.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
	Other  Sex = "other"
)

// Sexes lists the accepted values in display order.
var Sexes = []Sex{Male, Female, Other}

// Valid reports whether s is one of Sexes.
func (s Sex) Valid() bool {
	for _, v := range Sexes {
		if s == v {
			return true
		}
	}
	return false
}

// Member is a household member.
type Member struct {
	ID       ID     `json:"id,omitempty"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Sex      Sex    `json:"sex"`
	IsActive bool   `json:"is_active"`
}

// MemberPatch is a partial member update. Nil fields are left unchanged.
type MemberPatch struct {
	Name     *string `json:"name,omitempty"`
	Age      *int    `json:"age,omitempty"`
	Sex      *Sex    `json:"sex,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// Guest is a visitor counted on the guest list.
type Guest struct {
	ID  ID  `json:"id,omitempty"`
	Age int `json:"age"`
	Sex Sex `json:"sex"`
}

// Network is one WiFi network seen by the device.
type Network struct {
	SSID      string `json:"ssid"`
	Signal    int    `json:"signal"`
	Security  string `json:"security"`
	Connected bool   `json:"connected"`
}

// WiFiStatus describes the current connection.
type WiFiStatus struct {
	Connected bool   `json:"connected"`
	SSID      string `json:"ssid,omitempty"`
	Device    string `json:"device,omitempty"`
}

// SystemAction is a power action the backend can perform.
type SystemAction string

const (
	Shutdown SystemAction = "shutdown"
	Reboot   SystemAction = "reboot"
)
