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

package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cloud-exit/homehub/internal/api"
	"github.com/cloud-exit/homehub/internal/fakeapi"
	"github.com/cloud-exit/homehub/internal/ui"
)

func newTestClient(t *testing.T) (*api.Client, *fakeapi.Server) {
	t.Helper()
	backend := fakeapi.New()
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)
	c, err := api.New(srv.URL, api.WithTimeout(2*time.Second))
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}
	return c, backend
}

func TestMemberLifecycle(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	added, err := c.AddMember(ctx, api.Member{Name: "Ada", Age: 36, Sex: api.Female})
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if added.ID == "" {
		t.Fatal("AddMember returned no id")
	}

	active := true
	updated, err := c.UpdateMember(ctx, added.ID, api.MemberPatch{IsActive: &active})
	if err != nil {
		t.Fatalf("UpdateMember: %v", err)
	}
	if !updated.IsActive || updated.Name != "Ada" {
		t.Errorf("UpdateMember = %+v, want active Ada", updated)
	}

	members, err := c.ListMembers(ctx)
	if err != nil {
		t.Fatalf("ListMembers: %v", err)
	}
	if len(members) != 1 || members[0].ID != added.ID {
		t.Fatalf("ListMembers = %+v", members)
	}

	if err := c.DeleteMember(ctx, added.ID); err != nil {
		t.Fatalf("DeleteMember: %v", err)
	}
	members, _ = c.ListMembers(ctx)
	if len(members) != 0 {
		t.Errorf("ListMembers after delete = %+v", members)
	}
}

func TestAddMemberValidationError(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.AddMember(context.Background(), api.Member{Name: "Old", Age: 130, Sex: api.Male})
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("AddMember error = %v, want *api.Error", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", apiErr.Status)
	}
	if got := api.Message(err, "fallback"); got != "Age must be between 0 and 120" {
		t.Errorf("Message = %q", got)
	}
}

func TestDeleteMissingMember(t *testing.T) {
	c, _ := newTestClient(t)

	err := c.DeleteMember(context.Background(), "nope")
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Errorf("DeleteMember(nope) = %v, want 404", err)
	}
}

func TestGuestLimit(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	for i := 0; i < fakeapi.MaxGuests; i++ {
		if _, err := c.AddGuest(ctx, api.Guest{Age: 30 + i, Sex: api.Other}); err != nil {
			t.Fatalf("AddGuest %d: %v", i, err)
		}
	}
	_, err := c.AddGuest(ctx, api.Guest{Age: 20, Sex: api.Male})
	if got := api.Message(err, ""); got != "Maximum guest limit reached" {
		t.Errorf("sixth AddGuest message = %q (err %v)", got, err)
	}

	guests, err := c.ListGuests(ctx)
	if err != nil {
		t.Fatalf("ListGuests: %v", err)
	}
	if len(guests) != fakeapi.MaxGuests {
		t.Fatalf("ListGuests = %d guests, want %d", len(guests), fakeapi.MaxGuests)
	}
	if err := c.DeleteGuest(ctx, guests[0].ID); err != nil {
		t.Fatalf("DeleteGuest: %v", err)
	}
	if _, err := c.AddGuest(ctx, api.Guest{Age: 20, Sex: api.Male}); err != nil {
		t.Errorf("AddGuest after delete: %v", err)
	}
}

func TestWiFiFlow(t *testing.T) {
	c, backend := newTestClient(t)
	backend.SetPassword("Home WiFi", "hunter22")
	ctx := context.Background()

	st, err := c.WiFiStatus(ctx)
	if err != nil {
		t.Fatalf("WiFiStatus: %v", err)
	}
	if st.Connected {
		t.Fatal("should start disconnected")
	}

	if err := c.Connect(ctx, "Home WiFi", "wrong"); api.Message(err, "") != "Invalid password" {
		t.Errorf("Connect with wrong password = %v", err)
	}
	if err := c.Connect(ctx, "Home WiFi", "hunter22"); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	st, _ = c.WiFiStatus(ctx)
	if !st.Connected || st.SSID != "Home WiFi" || st.Device != "wlan0" {
		t.Errorf("status after connect = %+v", st)
	}

	nets, err := c.Networks(ctx)
	if err != nil {
		t.Fatalf("Networks: %v", err)
	}
	connected := 0
	for _, n := range nets {
		if n.Connected {
			connected++
		}
	}
	if len(nets) != 3 || connected != 1 {
		t.Errorf("Networks = %+v", nets)
	}

	if err := c.Disconnect(ctx); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	if err := c.SetWiFi(ctx, false); err != nil {
		t.Fatalf("SetWiFi(false): %v", err)
	}
	nets, _ = c.Networks(ctx)
	if len(nets) != 0 {
		t.Errorf("Networks with radio off = %+v", nets)
	}
	if err := c.SetWiFi(ctx, true); err != nil {
		t.Fatalf("SetWiFi(true): %v", err)
	}
}

func TestConnectLogsRedactedBody(t *testing.T) {
	c, backend := newTestClient(t)
	backend.SetPassword("Cafe Network", "espresso-42")
	ctx := context.Background()

	var logs bytes.Buffer
	ui.SetOutput(&logs)
	ui.Verbose = true
	t.Cleanup(func() {
		ui.ResetOutput()
		ui.Verbose = false
	})

	if err := c.Connect(ctx, "Cafe Network", "latte-17"); err == nil {
		t.Fatal("wrong password accepted")
	}
	if ui.IsSecret("latte-17") {
		t.Error("rejected password still registered")
	}
	if err := c.Connect(ctx, "Cafe Network", "espresso-42"); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if !ui.IsSecret("espresso-42") {
		t.Error("accepted password not registered")
	}

	out := logs.String()
	if !strings.Contains(out, "POST /wifi/connect") {
		t.Fatalf("request not logged:\n%s", out)
	}
	for _, pw := range []string{"latte-17", "espresso-42"} {
		if strings.Contains(out, pw) {
			t.Errorf("password %q leaked into log:\n%s", pw, out)
		}
	}
	if strings.Count(out, `"password":"<redacted>"`) != 2 {
		t.Errorf("want both request bodies redacted:\n%s", out)
	}
}

func TestSystemActions(t *testing.T) {
	c, backend := newTestClient(t)
	ctx := context.Background()

	if err := c.System(ctx, api.Reboot); err != nil {
		t.Fatalf("System(reboot): %v", err)
	}
	if err := c.System(ctx, api.Shutdown); err != nil {
		t.Fatalf("System(shutdown): %v", err)
	}
	if err := c.System(ctx, api.SystemAction("hibernate")); err == nil {
		t.Error("unknown action should fail")
	}
	got := backend.Actions()
	if len(got) != 2 || got[0] != api.Reboot || got[1] != api.Shutdown {
		t.Errorf("Actions = %v", got)
	}
}

func TestContextCancelled(t *testing.T) {
	c, _ := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.ListMembers(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("ListMembers with cancelled ctx = %v, want context.Canceled", err)
	}
}

func TestNumericIDsFromBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 3, "name": "Bo", "age": 9, "sex": "male", "is_active": true}]`))
	}))
	defer srv.Close()

	c, err := api.New(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	members, err := c.ListMembers(context.Background())
	if err != nil {
		t.Fatalf("ListMembers: %v", err)
	}
	if len(members) != 1 || members[0].ID != "3" || !members[0].IsActive {
		t.Errorf("ListMembers = %+v", members)
	}
}

func TestPlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, _ := api.New(srv.URL)
	err := c.Disconnect(context.Background())
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *api.Error", err)
	}
	if apiErr.Message != "backend exploded" || apiErr.Status != 500 {
		t.Errorf("apiErr = %+v", apiErr)
	}
	if apiErr.Error() != "POST /wifi/disconnect: backend exploded" {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}
