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

// Package fakeapi is an in-memory stand-in for the household backend. It
// serves the same REST contract as the real service and is used for demos
// and tests.
package fakeapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/cloud-exit/homehub/internal/api"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Limits enforced by the backend.
const (
	MaxMemberAge = 120
	MaxGuestAge  = 100
	MaxGuests    = 5
)

// Server holds the fake backend state. It is safe for concurrent use.
type Server struct {
	mu        sync.Mutex
	members   []api.Member
	guests    []api.Guest
	networks  []api.Network
	passwords map[string]string
	wifiOn    bool
	device    string
	actions   []api.SystemAction
}

// New returns a server with WiFi on, three networks in range and no
// household data.
func New() *Server {
	return &Server{
		networks: []api.Network{
			{SSID: "Home WiFi", Signal: 80, Security: "WPA2"},
			{SSID: "Cafe Network", Signal: 60, Security: "WPA2"},
			{SSID: "Public WiFi", Signal: 40, Security: "Open"},
		},
		passwords: map[string]string{},
		wifiOn:    true,
		device:    "wlan0",
	}
}

// SetPassword makes Connect to ssid require password.
func (s *Server) SetPassword(ssid, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passwords[ssid] = password
}

// SeedMembers replaces the member list. Members without an id get one.
func (s *Server) SeedMembers(members ...api.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = nil
	for _, m := range members {
		if m.ID == "" {
			m.ID = newID()
		}
		s.members = append(s.members, m)
	}
}

// Actions returns the power actions requested so far.
func (s *Server) Actions() []api.SystemAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]api.SystemAction(nil), s.actions...)
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/family-members", s.listMembers).Methods(http.MethodGet)
	r.HandleFunc("/family-members", s.addMember).Methods(http.MethodPost)
	r.HandleFunc("/family-members/{id}", s.updateMember).Methods(http.MethodPut)
	r.HandleFunc("/family-members/{id}", s.deleteMember).Methods(http.MethodDelete)
	r.HandleFunc("/guests", s.listGuests).Methods(http.MethodGet)
	r.HandleFunc("/guests", s.addGuest).Methods(http.MethodPost)
	r.HandleFunc("/guests/{id}", s.deleteGuest).Methods(http.MethodDelete)
	r.HandleFunc("/wifi/networks", s.listNetworks).Methods(http.MethodGet)
	r.HandleFunc("/wifi/status", s.status).Methods(http.MethodGet)
	r.HandleFunc("/wifi/connect", s.connect).Methods(http.MethodPost)
	r.HandleFunc("/wifi/disconnect", s.disconnect).Methods(http.MethodPost)
	r.HandleFunc("/wifi/enable", s.setRadio(true)).Methods(http.MethodPost)
	r.HandleFunc("/wifi/disable", s.setRadio(false)).Methods(http.MethodPost)
	r.HandleFunc("/system/{action}", s.system).Methods(http.MethodPost)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	return r
}

func newID() api.ID {
	return api.ID(uuid.New().String())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

func validMember(m api.Member) string {
	switch {
	case strings.TrimSpace(m.Name) == "":
		return "Name is required"
	case m.Age < 0 || m.Age > MaxMemberAge:
		return "Age must be between 0 and 120"
	case !m.Sex.Valid():
		return "Sex must be male, female or other"
	}
	return ""
}
