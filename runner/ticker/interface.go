/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package ticker runs a function on a fixed interval until stopped or its
// context is cancelled. It backs the daemon's periodic tasks: the process
// supervisor's per-child memory sampler and the session registry's reaper.
package ticker

import (
	"context"
	"errors"
	"time"
)

// defaultDuration is used whenever the caller supplies a non-positive
// duration, since time.NewTicker panics on one.
const defaultDuration = time.Second

// Func is the work performed on every tick. The *time.Ticker is handed back
// so a long-running function may reset/stop it; a returned error is
// collected but never stops the ticker.
type Func func(ctx context.Context, tck *time.Ticker) error

// Ticker runs Func on a fixed interval in its own goroutine.
type Ticker interface {
	// Start launches the ticker loop bound to ctx. If already running, the
	// previous run is stopped first. Returns an error only if ctx is nil.
	Start(ctx context.Context) error

	// Stop halts the ticker loop and waits for it to exit. Idempotent: it
	// never errors because the loop is not running.
	Stop(ctx context.Context) error

	// Restart stops any running loop then starts a fresh one.
	Restart(ctx context.Context) error

	// IsRunning reports whether the loop is currently active.
	IsRunning() bool

	// Uptime returns the time elapsed since Start, or 0 if not running.
	Uptime() time.Duration

	// ErrorsLast returns the most recently collected error from Func, or nil.
	ErrorsLast() error

	// ErrorsList returns every error collected from Func since the last
	// Start/Restart.
	ErrorsList() []error
}

// New returns a Ticker that will invoke fn every d. A nil fn is replaced by
// a function that returns an "invalid function" error on every tick. A
// non-positive d falls back to defaultDuration.
func New(d time.Duration, fn Func) Ticker {
	if d <= 0 {
		d = defaultDuration
	}

	if fn == nil {
		fn = func(_ context.Context, _ *time.Ticker) error {
			return errors.New("invalid function")
		}
	}

	return &tck{
		d: d,
		f: fn,
	}
}
