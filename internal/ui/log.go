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

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cloud-exit/homehub/internal/redactor"
)

// Verbose controls whether debug messages are printed.
var Verbose bool

var osExit = os.Exit

var (
	outMu  sync.Mutex
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	secrets = redactor.New()
	exitFn  = osExit
)

// SetOutput sends all log lines to w. The dashboard uses this to move
// logging into a file while it draws on the terminal.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	stdout = w
	stderr = w
}

// ResetOutput restores stdout and stderr.
func ResetOutput() {
	outMu.Lock()
	defer outMu.Unlock()
	stdout = os.Stdout
	stderr = os.Stderr
}

// RedactSecret hides value from every later log line.
func RedactSecret(value, name string) {
	secrets.AddSecret(value, name)
}

// IsSecret reports whether value is being hidden.
func IsSecret(value string) bool {
	return secrets.Contains(value)
}

// ForgetSecret stops hiding value.
func ForgetSecret(value string) {
	secrets.Remove(value)
}

func write(toErr bool, line string) {
	outMu.Lock()
	defer outMu.Unlock()
	w := stdout
	if toErr {
		w = stderr
	}
	_, _ = w.Write(secrets.Filter([]byte(line)))
}

// Info prints an informational message to stdout.
func Info(msg string) {
	write(false, fmt.Sprintf("%s[INFO]%s %s\n", Cyan, NC, msg))
}

// Infof prints a formatted informational message to stdout.
func Infof(format string, a ...any) {
	Info(fmt.Sprintf(format, a...))
}

// Success prints a success message to stdout.
func Success(msg string) {
	write(false, fmt.Sprintf("%s[OK]%s %s\n", Green, NC, msg))
}

// Successf prints a formatted success message to stdout.
func Successf(format string, a ...any) {
	Success(fmt.Sprintf(format, a...))
}

// Warn prints a warning message to stderr.
func Warn(msg string) {
	write(true, fmt.Sprintf("%s[WARN]%s %s\n", Yellow, NC, msg))
}

// Warnf prints a formatted warning message to stderr.
func Warnf(format string, a ...any) {
	Warn(fmt.Sprintf(format, a...))
}

// Error prints an error message to stderr and exits with code 1.
func Error(msg string) {
	ErrorNoExit(msg)
	exitFn(1)
}

// Errorf prints a formatted error message to stderr and exits with code 1.
func Errorf(format string, a ...any) {
	Error(fmt.Sprintf(format, a...))
}

// ErrorNoExit prints an error message to stderr without exiting.
func ErrorNoExit(msg string) {
	write(true, fmt.Sprintf("%s[ERROR]%s %s\n", Red, NC, msg))
}

// Debug prints a debug message to stderr (only when Verbose is true).
func Debug(msg string) {
	if Verbose {
		write(true, fmt.Sprintf("%s[DEBUG]%s %s\n", Dim, NC, msg))
	}
}

// Debugf prints a formatted debug message to stderr.
func Debugf(format string, a ...any) {
	if Verbose {
		Debug(fmt.Sprintf(format, a...))
	}
}

// Cecho prints colored text to stdout.
func Cecho(msg, color string) {
	write(false, fmt.Sprintf("%s%s%s\n", color, msg, NC))
}
