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

package ui

import "fmt"

// LogoSmall prints the HomeHub ASCII logo.
func LogoSmall() {
	Cecho(` _   _                      _   _       _     `, Cyan)
	Cecho(`| | | | ___  _ __ ___   ___| | | |_   _| |__  `, Cyan)
	Cecho(`| |_| |/ _ \| '_ ' _ \ / _ \ |_| | | | | '_ \ `, Cyan)
	Cecho(`|  _  | (_) | | | | | |  __/  _  | |_| | |_) |`, Cyan)
	Cecho(`|_| |_|\___/|_| |_| |_|\___|_| |_|\__,_|_.__/ `, Cyan)
}

// Logo prints the logo with the version line.
func Logo(version string) {
	LogoSmall()
	write(false, fmt.Sprintf("%sHousehold kiosk dashboard %s%s\n", Dim, version, NC))
}
