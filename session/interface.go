/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
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

// Package session implements the daemon's session registry: opaque sid
// issuance, TTL-based expiry, per-session focus and a pending-line queue fed
// by the output pipeline (spec.md §4.5).
package session

import (
	"context"
	"time"

	libctx "github.com/sabouaram/minestormd/context"
)

// DefaultUser is the fixed user bound to every session until credential
// authentication is implemented (spec.md §9 Design Notes).
const DefaultUser = "minestorm"

// ServerExists is called by ChangeFocus to validate a focus target against
// the process supervisor's registry, without session importing server.
type ServerExists func(name string) bool

// Registry is the session store: creation, validation/touch, focus and
// pending-line management, and reaping of expired sessions. Every method is
// safe for concurrent use; spec.md §5 requires a single registry-wide
// mutex guarding all reads and writes, including reaper sweeps.
type Registry interface {
	// New creates a fresh session, stamps last_packet to now, and returns its sid.
	New() (sid string, err error)

	// Remove deletes a session. Idempotent: removing an unknown sid is a no-op.
	Remove(sid string)

	// Valid reports whether sid is present and within TTL, without touching it.
	Valid(sid string) bool

	// Touch validates sid and, if valid, updates its last_packet to now. It
	// returns whether the session was valid.
	Touch(sid string) bool

	// ChangeFocus validates name via exists, then sets sid's focus and clears
	// its pending_lines. Returns ErrorSidInvalid or ErrorUnknownServer on failure.
	ChangeFocus(sid, name string, exists ServerExists) error

	// Focus returns sid's current focus and whether sid is known.
	Focus(sid string) (name string, ok bool)

	// AppendLine appends line to the pending_lines of every session currently
	// focused on server. Called by the output pipeline on each completed line.
	AppendLine(server, line string)

	// DrainPending atomically returns and clears sid's pending_lines. Returns
	// ok=false if sid is unknown.
	DrainPending(sid string) (lines []string, ok bool)

	// Len returns the number of sessions currently registered.
	Len() int

	// Reap removes every session that fails the validity check and returns
	// how many were removed. Idempotent and safe to call repeatedly.
	Reap() int
}

// New returns a Registry whose sessions expire after ttl of inactivity
// (spec.md's sessions.expiration.time).
func New(ctx context.Context, ttl time.Duration) Registry {
	if ctx == nil {
		ctx = context.Background()
	}

	return &reg{
		ttl: ttl,
		cfg: libctx.New[string](ctx),
	}
}
