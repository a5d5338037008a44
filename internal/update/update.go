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

// Package update checks whether a newer homehub release has been published.
package update

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultURL is the releases endpoint queried when Checker.URL is empty.
const DefaultURL = "https://api.github.com/repos/cloud-exit/homehub/releases/latest"

// Checker asks a GitHub-style releases endpoint for the latest tag.
type Checker struct {
	URL    string
	Client *http.Client
}

// Latest returns the newest published version without a leading "v".
func (c Checker) Latest(ctx context.Context) (string, error) {
	url := c.URL
	if url == "" {
		url = DefaultURL
	}
	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release endpoint returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading release: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("release response is not JSON")
	}
	version := strings.TrimPrefix(gjson.GetBytes(body, "tag_name").String(), "v")
	if version == "" {
		return "", fmt.Errorf("empty tag_name in release")
	}
	return version, nil
}

// Result is the outcome of Check.
type Result struct {
	Available bool
	Latest    string
}

// Check compares current against the latest release. A current version that
// is not semver (e.g. "dev") never reports an update.
func (c Checker) Check(ctx context.Context, current string) (Result, error) {
	latest, err := c.Latest(ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{Available: IsNewer(current, latest), Latest: latest}, nil
}

// IsNewer reports whether latest is a newer semver than current.
// It is false when either version is unparseable.
func IsNewer(current, latest string) bool {
	cur, curOK := parseSemver(current)
	lat, latOK := parseSemver(latest)
	if !curOK || !latOK {
		return false
	}
	for i := range cur {
		if lat[i] != cur[i] {
			return lat[i] > cur[i]
		}
	}
	return false
}

// parseSemver splits "0.4.1" into [0 4 1].
func parseSemver(v string) ([3]int, bool) {
	parts := strings.SplitN(strings.TrimPrefix(v, "v"), ".", 3)
	if len(parts) != 3 {
		return [3]int{}, false
	}
	var out [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return [3]int{}, false
		}
		out[i] = n
	}
	return out, true
}
