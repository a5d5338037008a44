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
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cloud-exit/homehub/internal/api"
	"github.com/cloud-exit/homehub/internal/fakeapi"
	"github.com/cloud-exit/homehub/internal/ui"
	"github.com/spf13/cobra"
)

func newFakeBackendCmd() *cobra.Command {
	var addr string
	var passwords []string
	var demo bool
	cmd := &cobra.Command{
		Use:   "fake-backend",
		Short: "Serve an in-memory backend for demos and development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := fakeapi.New()
			for _, p := range passwords {
				ssid, pw, err := parsePassword(p)
				if err != nil {
					return err
				}
				backend.SetPassword(ssid, pw)
			}
			if demo {
				backend.SeedMembers(demoFamily()...)
			}
			return serveBackend(addr, backend.Handler())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:5000", "Listen address")
	cmd.Flags().StringArrayVar(&passwords, "password", nil, "Require a password for a network (ssid=password, repeatable)")
	cmd.Flags().BoolVar(&demo, "demo", false, "Start with a sample family")
	return cmd
}

func parsePassword(s string) (ssid, password string, err error) {
	ssid, password, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(ssid) == "" {
		return "", "", fmt.Errorf("invalid --password %q (want ssid=password)", s)
	}
	return ssid, password, nil
}

func demoFamily() []api.Member {
	return []api.Member{
		{Name: "Maria", Age: 41, Sex: api.Female, IsActive: true},
		{Name: "Tom", Age: 43, Sex: api.Male},
		{Name: "Lena", Age: 15, Sex: api.Female, IsActive: true},
		{Name: "Max", Age: 8, Sex: api.Male, IsActive: true},
		{Name: "Oma", Age: 72, Sex: api.Female},
	}
}

func serveBackend(addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		ui.Infof("Fake backend listening on http://%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("fake backend: %w", err)
	case <-ctx.Done():
	}

	ui.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
