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

	"github.com/cloud-exit/homehub/internal/ui"
)

// Networks lists the WiFi networks in range.
func (c *Client) Networks(ctx context.Context) ([]Network, error) {
	var out []Network
	if err := c.do(ctx, http.MethodGet, "/wifi/networks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WiFiStatus returns the current connection.
func (c *Client) WiFiStatus(ctx context.Context) (WiFiStatus, error) {
	var out WiFiStatus
	err := c.do(ctx, http.MethodGet, "/wifi/status", nil, &out)
	return out, err
}

// Connect joins ssid. The password is registered with the log redactor
// before the request is built. A rejected password that was not already
// registered is dropped from the redactor again.
func (c *Client) Connect(ctx context.Context, ssid, password string) error {
	known := ui.IsSecret(password)
	ui.RedactSecret(password, "wifi password")
	body := struct {
		SSID     string `json:"ssid"`
		Password string `json:"password"`
	}{ssid, password}
	err := c.do(ctx, http.MethodPost, "/wifi/connect", body, nil)
	if err != nil && !known {
		ui.ForgetSecret(password)
	}
	return err
}

// Disconnect drops the current connection.
func (c *Client) Disconnect(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/wifi/disconnect", nil, nil)
}

// SetWiFi turns the radio on or off.
func (c *Client) SetWiFi(ctx context.Context, on bool) error {
	path := "/wifi/disable"
	if on {
		path = "/wifi/enable"
	}
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

// System asks the backend to shut down or reboot the device.
func (c *Client) System(ctx context.Context, action SystemAction) error {
	return c.do(ctx, http.MethodPost, "/system/"+string(action), nil, nil)
}
