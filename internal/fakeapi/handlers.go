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

	"github.com/cloud-exit/homehub/internal/api"
	"github.com/gorilla/mux"
)

func (s *Server) listMembers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := append([]api.Member{}, s.members...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) addMember(w http.ResponseWriter, r *http.Request) {
	var m api.Member
	if !decode(w, r, &m) {
		return
	}
	if msg := validMember(m); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	m.ID = newID()

	s.mu.Lock()
	s.members = append(s.members, m)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) updateMember(w http.ResponseWriter, r *http.Request) {
	id := api.ID(mux.Vars(r)["id"])
	var patch api.MemberPatch
	if !decode(w, r, &patch) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID != id {
			continue
		}
		m := s.members[i]
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Age != nil {
			m.Age = *patch.Age
		}
		if patch.Sex != nil {
			m.Sex = *patch.Sex
		}
		if patch.IsActive != nil {
			m.IsActive = *patch.IsActive
		}
		if msg := validMember(m); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
		s.members[i] = m
		writeJSON(w, http.StatusOK, m)
		return
	}
	writeError(w, http.StatusNotFound, "Family member not found")
}

func (s *Server) deleteMember(w http.ResponseWriter, r *http.Request) {
	id := api.ID(mux.Vars(r)["id"])

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Family member deleted"})
			return
		}
	}
	writeError(w, http.StatusNotFound, "Family member not found")
}

func (s *Server) listGuests(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := append([]api.Guest{}, s.guests...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) addGuest(w http.ResponseWriter, r *http.Request) {
	var g api.Guest
	if !decode(w, r, &g) {
		return
	}
	if g.Age < 0 || g.Age > MaxGuestAge {
		writeError(w, http.StatusBadRequest, "Age must be between 0 and 100")
		return
	}
	if !g.Sex.Valid() {
		writeError(w, http.StatusBadRequest, "Sex must be male, female or other")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.guests) >= MaxGuests {
		writeError(w, http.StatusBadRequest, "Maximum guest limit reached")
		return
	}
	g.ID = newID()
	s.guests = append(s.guests, g)
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) deleteGuest(w http.ResponseWriter, r *http.Request) {
	id := api.ID(mux.Vars(r)["id"])

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.guests {
		if s.guests[i].ID == id {
			s.guests = append(s.guests[:i], s.guests[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Guest deleted"})
			return
		}
	}
	writeError(w, http.StatusNotFound, "Guest not found")
}

func (s *Server) listNetworks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.wifiOn {
		writeJSON(w, http.StatusOK, []api.Network{})
		return
	}
	writeJSON(w, http.StatusOK, s.networks)
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.statusLocked())
}

func (s *Server) statusLocked() api.WiFiStatus {
	for _, n := range s.networks {
		if n.Connected && s.wifiOn {
			return api.WiFiStatus{Connected: true, SSID: n.SSID, Device: s.device}
		}
	}
	return api.WiFiStatus{}
}

func (s *Server) connect(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SSID     string `json:"ssid"`
		Password string `json:"password"`
	}
	if !decode(w, r, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.wifiOn {
		writeError(w, http.StatusConflict, "WiFi is disabled")
		return
	}
	idx := -1
	for i, n := range s.networks {
		if n.SSID == body.SSID {
			idx = i
		}
	}
	if idx < 0 {
		writeError(w, http.StatusNotFound, "Network not found")
		return
	}
	if want, ok := s.passwords[body.SSID]; ok && want != body.Password {
		writeError(w, http.StatusUnauthorized, "Invalid password")
		return
	}
	for i := range s.networks {
		s.networks[i].Connected = i == idx
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Connected to " + body.SSID})
}

func (s *Server) disconnect(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.statusLocked().Connected {
		writeError(w, http.StatusConflict, "Not connected")
		return
	}
	for i := range s.networks {
		s.networks[i].Connected = false
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Disconnected"})
}

func (s *Server) setRadio(on bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.wifiOn = on
		if !on {
			for i := range s.networks {
				s.networks[i].Connected = false
			}
		}
		writeJSON(w, http.StatusOK, map[string]bool{"enabled": on})
	}
}

func (s *Server) system(w http.ResponseWriter, r *http.Request) {
	action := api.SystemAction(mux.Vars(r)["action"])
	if action != api.Shutdown && action != api.Reboot {
		writeError(w, http.StatusNotFound, "Unknown action")
		return
	}
	s.mu.Lock()
	s.actions = append(s.actions, action)
	s.mu.Unlock()
	writeJSON(w, http.StatusAccepted, map[string]string{"message": "System will " + string(action)})
}
