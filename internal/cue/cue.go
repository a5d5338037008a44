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

// Package cue plays short audible feedback for key presses without ever
// blocking the caller.
package cue

import (
	"context"
	"io"
	"os/exec"
	"sync"
	"time"
)

// Player is anything that can be asked to play a cue.
type Player interface {
	Play()
}

// Sink performs the actual playback.
type Sink func(ctx context.Context) error

// Nop is a Player that does nothing.
type Nop struct{}

// Play implements Player.
func (Nop) Play() {}

// Bell returns a sink that writes the terminal bell to w.
func Bell(w io.Writer) Sink {
	return func(context.Context) error {
		_, err := w.Write([]byte{'\a'})
		return err
	}
}

// Command returns a sink that runs an external player, for example
// "aplay -q key.wav". The process is killed when ctx expires.
func Command(name string, args ...string) Sink {
	return func(ctx context.Context) error {
		return exec.CommandContext(ctx, name, args...).Run()
	}
}

// Dispatcher feeds a sink from a single worker goroutine. A Play issued
// while a cue is still pending is dropped.
type Dispatcher struct {
	sink    Sink
	timeout time.Duration
	onError func(error)

	pending chan struct{}
	stop    chan struct{}
	done    sync.WaitGroup
	once    sync.Once
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithTimeout bounds a single playback. The default is one second.
func WithTimeout(d time.Duration) Option {
	return func(dp *Dispatcher) { dp.timeout = d }
}

// WithErrorHandler receives playback errors. They are discarded otherwise.
func WithErrorHandler(fn func(error)) Option {
	return func(dp *Dispatcher) { dp.onError = fn }
}

// NewDispatcher starts the worker. Call Close to stop it.
func NewDispatcher(sink Sink, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sink:    sink,
		timeout: time.Second,
		pending: make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.done.Add(1)
	go d.run()
	return d
}

// Play queues a cue and returns immediately.
func (d *Dispatcher) Play() {
	select {
	case <-d.stop:
		return
	default:
	}
	select {
	case d.pending <- struct{}{}:
	default:
	}
}

// Close stops the worker and waits for an in-flight cue to finish.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.stop) })
	d.done.Wait()
}

func (d *Dispatcher) run() {
	defer d.done.Done()
	for {
		select {
		case <-d.stop:
			return
		case <-d.pending:
			d.playOne()
		}
	}
}

func (d *Dispatcher) playOne() {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	defer func() {
		// Sink panics are reported like errors.
		if r := recover(); r != nil && d.onError != nil {
			d.onError(panicError{r})
		}
	}()
	if err := d.sink(ctx); err != nil && d.onError != nil {
		d.onError(err)
	}
}

type panicError struct{ v any }

func (p panicError) Error() string { return "cue sink panicked" }
