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

package fakeapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloud-exit/homehub/internal/api"
	"github.com/tidwall/gjson"
)

func serve(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestAddMemberAssignsUUID(t *testing.T) {
	s := New()
	rec := serve(t, s, http.MethodPost, "/family-members", `{"name":"Ada","age":36,"sex":"female"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	id := gjson.Get(rec.Body.String(), "id").String()
	if len(id) != 36 {
		t.Errorf("id = %q, want a UUID", id)
	}

	rec = serve(t, s, http.MethodGet, "/family-members", "")
	if n := gjson.Get(rec.Body.String(), "#").Int(); n != 1 {
		t.Errorf("listed %d members, want 1", n)
	}
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name, path, body, want string
		status                 int
	}{
		{"member age", "/family-members", `{"name":"Old","age":121,"sex":"male"}`, "Age must be between 0 and 120", 400},
		{"member name", "/family-members", `{"name":"","age":1,"sex":"male"}`, "Name is required", 400},
		{"member sex", "/family-members", `{"name":"X","age":1,"sex":"x"}`, "Sex must be male, female or other", 400},
		{"guest age", "/guests", `{"age":101,"sex":"male"}`, "Age must be between 0 and 100", 400},
		{"bad json", "/guests", `{`, "Invalid JSON body", 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, New(), http.MethodPost, tt.path, tt.body)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if got := gjson.Get(rec.Body.String(), "error").String(); got != tt.want {
				t.Errorf("error = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGuestLimit(t *testing.T) {
	s := New()
	for i := 0; i < MaxGuests; i++ {
		if rec := serve(t, s, http.MethodPost, "/guests", `{"age":20,"sex":"other"}`); rec.Code != http.StatusCreated {
			t.Fatalf("guest %d: status %d", i+1, rec.Code)
		}
	}
	rec := serve(t, s, http.MethodPost, "/guests", `{"age":20,"sex":"other"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if got := gjson.Get(rec.Body.String(), "error").String(); got != "Maximum guest limit reached" {
		t.Errorf("error = %q", got)
	}
}

func TestWiFiFlow(t *testing.T) {
	s := New()
	s.SetPassword("Home WiFi", "hunter22")

	rec := serve(t, s, http.MethodPost, "/wifi/connect", `{"ssid":"Home WiFi","password":"nope"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", rec.Code)
	}
	rec = serve(t, s, http.MethodPost, "/wifi/connect", `{"ssid":"Home WiFi","password":"hunter22"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("connect status = %d, body %s", rec.Code, rec.Body)
	}

	body := serve(t, s, http.MethodGet, "/wifi/status", "").Body.String()
	if !gjson.Get(body, "connected").Bool() || gjson.Get(body, "ssid").String() != "Home WiFi" {
		t.Errorf("status = %s", body)
	}

	serve(t, s, http.MethodPost, "/wifi/disable", "")
	if n := gjson.Get(serve(t, s, http.MethodGet, "/wifi/networks", "").Body.String(), "#").Int(); n != 0 {
		t.Errorf("networks with radio off = %d, want 0", n)
	}
	if rec := serve(t, s, http.MethodPost, "/wifi/disconnect", ""); rec.Code != http.StatusConflict {
		t.Errorf("disconnect while off = %d, want 409", rec.Code)
	}
}

func TestSystemActions(t *testing.T) {
	s := New()
	if rec := serve(t, s, http.MethodPost, "/system/reboot", ""); rec.Code != http.StatusAccepted {
		t.Errorf("reboot status = %d", rec.Code)
	}
	if rec := serve(t, s, http.MethodPost, "/system/selfdestruct", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown action status = %d", rec.Code)
	}
	got := s.Actions()
	if len(got) != 1 || got[0] != api.Reboot {
		t.Errorf("Actions() = %v, want [reboot]", got)
	}
}
