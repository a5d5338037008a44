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

package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cloud-exit/homehub/internal/api"
	"github.com/cloud-exit/homehub/internal/config"
	"github.com/cloud-exit/homehub/internal/cue"
	"github.com/cloud-exit/homehub/internal/fakeapi"
)

func useTempHome(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	config.ResolvePaths()
	t.Cleanup(config.ResolvePaths)
	if err := config.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs: %v", err)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func fakeServer(t *testing.T) (*fakeapi.Server, string) {
	t.Helper()
	backend := fakeapi.New()
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)
	return backend, srv.URL
}

func TestVersion(t *testing.T) {
	useTempHome(t)
	out, err := execute(t, "version", "--api", "")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "homehub version "+Version) {
		t.Errorf("output = %q", out)
	}
}

func TestVersionCheck(t *testing.T) {
	useTempHome(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name":"v99.0.0"}`))
	}))
	defer srv.Close()
	old := releaseURL
	releaseURL = srv.URL
	defer func() { releaseURL = old }()

	out, err := execute(t, "version", "--check", "--api", "")
	if err != nil {
		t.Fatalf("version --check: %v", err)
	}
	if !strings.Contains(out, "homehub 99.0.0 is available") {
		t.Errorf("output = %q", out)
	}
	if _, err := execute(t, "version", "--check=false", "--api", ""); err != nil {
		t.Fatal(err)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	useTempHome(t)
	if _, err := execute(t, "config", "init", "--api", ""); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !config.ConfigExists() {
		t.Fatal("config.yaml not written")
	}
	out, err := execute(t, "config", "show", "--api", "http://10.1.1.1:5000")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "url: http://10.1.1.1:5000") || !strings.Contains(out, "max_guests: 5") {
		t.Errorf("config show output:\n%s", out)
	}
}

func TestConfigInitForce(t *testing.T) {
	useTempHome(t)
	if err := os.WriteFile(config.ConfigFile(), []byte("household:\n  max_guests: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "config", "init", "--force=false", "--api", ""); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if cfg, _ := config.LoadConfig(); cfg.Household.MaxGuests != 2 {
		t.Fatalf("config init without --force overwrote the file")
	}
	if _, err := execute(t, "config", "init", "--force", "--api", ""); err != nil {
		t.Fatalf("config init --force: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !reflect.DeepEqual(cfg, config.DefaultConfig()) {
		t.Errorf("config after --force = %+v, want defaults", cfg)
	}
}

func TestInvalidAPIFlag(t *testing.T) {
	useTempHome(t)
	if _, err := execute(t, "config", "show", "--api", "ftp://nope"); err == nil {
		t.Error("ftp URL accepted")
	}
}

func TestPrefsCommands(t *testing.T) {
	useTempHome(t)
	if _, err := execute(t, "prefs", "theme", "dark", "--api", ""); err != nil {
		t.Fatalf("prefs theme dark: %v", err)
	}
	out, err := execute(t, "prefs", "theme", "--api", "")
	if err != nil || strings.TrimSpace(out) != "dark" {
		t.Errorf("prefs theme = %q, %v", out, err)
	}
	if _, err := execute(t, "prefs", "theme", "sepia", "--api", ""); err == nil {
		t.Error("unknown theme accepted")
	}

	if _, err := execute(t, "prefs", "edit-mode", "toggle", "--api", ""); err != nil {
		t.Fatalf("edit-mode toggle: %v", err)
	}
	out, _ = execute(t, "prefs", "edit-mode", "--api", "")
	if strings.TrimSpace(out) != "on" {
		t.Errorf("edit-mode = %q, want on", out)
	}

	out, err = execute(t, "prefs", "list", "--api", "")
	if err != nil {
		t.Fatalf("prefs list: %v", err)
	}
	if !strings.Contains(out, "theme = dark") || !strings.Contains(out, "edit_mode = true") {
		t.Errorf("prefs list:\n%s", out)
	}

	if _, err := execute(t, "prefs", "reset", "theme", "--api", ""); err != nil {
		t.Fatalf("prefs reset theme: %v", err)
	}
	out, _ = execute(t, "prefs", "theme", "--api", "")
	if strings.TrimSpace(out) != "system" {
		t.Errorf("theme after reset = %q, want system", out)
	}
	if _, err := execute(t, "prefs", "reset", "volume", "--api", ""); err == nil {
		t.Error("unknown preference reset accepted")
	}
	if _, err := execute(t, "prefs", "reset", "--api", ""); err != nil {
		t.Fatalf("prefs reset: %v", err)
	}
	out, _ = execute(t, "prefs", "edit-mode", "--api", "")
	if strings.TrimSpace(out) != "off" {
		t.Errorf("edit-mode after reset = %q, want off", out)
	}
}

func TestWiFiCommands(t *testing.T) {
	useTempHome(t)
	backend, url := fakeServer(t)
	backend.SetPassword("Home WiFi", "hunter22")

	out, err := execute(t, "wifi", "scan", "--api", url)
	if err != nil {
		t.Fatalf("wifi scan: %v", err)
	}
	if !strings.Contains(out, "Cafe Network") {
		t.Errorf("scan output:\n%s", out)
	}

	_, err = execute(t, "wifi", "connect", "Home WiFi", "--password", "nope", "--api", url)
	if err == nil || !strings.Contains(err.Error(), "Invalid password") {
		t.Errorf("wrong password error = %v", err)
	}
	if _, err := execute(t, "wifi", "connect", "Home WiFi", "--password", "hunter22", "--api", url); err != nil {
		t.Fatalf("wifi connect: %v", err)
	}
	out, _ = execute(t, "wifi", "status", "--api", url)
	if !strings.Contains(out, "Connected to Home WiFi on wlan0") {
		t.Errorf("status output = %q", out)
	}
	if _, err := execute(t, "wifi", "off", "--api", url); err != nil {
		t.Fatalf("wifi off: %v", err)
	}
	out, _ = execute(t, "wifi", "status", "--api", url)
	if !strings.Contains(out, "Not connected") {
		t.Errorf("status after off = %q", out)
	}
}

func TestSystemReboot(t *testing.T) {
	useTempHome(t)
	backend, url := fakeServer(t)
	if _, err := execute(t, "system", "reboot", "--yes", "--api", url); err != nil {
		t.Fatalf("system reboot: %v", err)
	}
	if got := backend.Actions(); len(got) != 1 || got[0] != api.Reboot {
		t.Errorf("actions = %v", got)
	}
}

func TestParsePassword(t *testing.T) {
	ssid, pw, err := parsePassword("Home WiFi=a=b")
	if err != nil || ssid != "Home WiFi" || pw != "a=b" {
		t.Errorf("parsePassword = %q, %q, %v", ssid, pw, err)
	}
	if _, _, err := parsePassword("nopassword"); err == nil {
		t.Error("missing '=' accepted")
	}
	if _, _, err := parsePassword("=x"); err == nil {
		t.Error("empty ssid accepted")
	}
}

func TestNewCuePlayer(t *testing.T) {
	tests := []struct {
		name  string
		sound config.SoundConfig
		nop   bool
	}{
		{"off", config.SoundConfig{Mode: config.SoundOff}, true},
		{"command without argv", config.SoundConfig{Mode: config.SoundCommand}, true},
		{"command", config.SoundConfig{Mode: config.SoundCommand, Command: []string{"true"}}, false},
		{"bell", config.SoundConfig{Mode: config.SoundBell}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, stop := newCuePlayer(tt.sound, io.Discard)
			defer stop()
			_, isNop := p.(cue.Nop)
			if isNop != tt.nop {
				t.Errorf("player %T, want nop=%v", p, tt.nop)
			}
		})
	}
}

func TestDemoFamilyIsValid(t *testing.T) {
	for _, m := range demoFamily() {
		if m.Name == "" || m.Age < 0 || m.Age > fakeapi.MaxMemberAge || !m.Sex.Valid() {
			t.Errorf("invalid demo member %+v", m)
		}
	}
}
