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

// Package redactor masks registered secrets, such as WiFi passwords, in
// text before it is written to a log.
package redactor

import (
	"bytes"
	"encoding/json"
	"sort"
	"sync"
)

// Marker replaces every secret occurrence.
const Marker = "<redacted>"

// Redactor filters output to replace known secret values with Marker. It is
// safe for concurrent use.
type Redactor struct {
	mu      sync.RWMutex
	secrets map[string]string // value -> name
	ordered [][]byte          // longest first
}

// New creates an empty Redactor.
func New() *Redactor {
	return &Redactor{
		secrets: make(map[string]string),
	}
}

// AddSecret registers value under name. The JSON escaped form of value is
// registered under the same name, since request bodies are logged as JSON.
func (r *Redactor) AddSecret(value, name string) {
	if value == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.secrets[value] = name
	if quoted, err := json.Marshal(value); err == nil {
		escaped := string(quoted[1 : len(quoted)-1])
		if escaped != value {
			r.secrets[escaped] = name
		}
	}
	r.rebuild()
}

// Remove forgets value.
func (r *Redactor) Remove(value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.secrets[value]
	if !ok {
		return
	}
	for v, n := range r.secrets {
		if n == name && (v == value || isEscapedForm(v, value)) {
			delete(r.secrets, v)
		}
	}
	r.rebuild()
}

func isEscapedForm(candidate, value string) bool {
	quoted, err := json.Marshal(value)
	return err == nil && candidate == string(quoted[1:len(quoted)-1])
}

// rebuild orders secrets longest first so a secret that contains another
// is masked whole. Callers hold mu.
func (r *Redactor) rebuild() {
	r.ordered = r.ordered[:0]
	for v := range r.secrets {
		r.ordered = append(r.ordered, []byte(v))
	}
	sort.Slice(r.ordered, func(i, j int) bool {
		if len(r.ordered[i]) != len(r.ordered[j]) {
			return len(r.ordered[i]) > len(r.ordered[j])
		}
		return bytes.Compare(r.ordered[i], r.ordered[j]) < 0
	})
}

// Filter replaces all known secrets in the input with Marker.
func (r *Redactor) Filter(input []byte) []byte {
	r.mu.RLock()
	defer r.mu.RUnlock()

	output := input
	for _, secret := range r.ordered {
		output = bytes.ReplaceAll(output, secret, []byte(Marker))
	}
	return output
}

// Contains reports whether value is currently masked.
func (r *Redactor) Contains(value string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.secrets[value]
	return ok
}
