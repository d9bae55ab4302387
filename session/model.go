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

package session

import (
	"sync"
	"time"

	uuid "github.com/hashicorp/go-uuid"

	libctx "github.com/sabouaram/minestormd/context"
)

// entry is the mutable state of one session. All access goes through reg's
// mutex; entry itself has no locking of its own.
type entry struct {
	user       string
	focus      string
	lastPacket time.Time
	pending    []string
}

type reg struct {
	mu  sync.Mutex
	ttl time.Duration
	cfg libctx.Config[string]
}

func (r *reg) New() (string, error) {
	sid, err := uuid.GenerateUUID()
	if err != nil {
		return "", ErrorUUID.Error(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.cfg.Store(sid, &entry{
		user:       DefaultUser,
		lastPacket: time.Now(),
	})

	return sid, nil
}

func (r *reg) Remove(sid string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cfg.Delete(sid)
}

// get must be called with r.mu held.
func (r *reg) get(sid string) *entry {
	v, ok := r.cfg.Load(sid)
	if !ok {
		return nil
	}

	e, _ := v.(*entry)
	return e
}

func (r *reg) valid(e *entry) bool {
	if e == nil {
		return false
	}

	return time.Since(e.lastPacket) < r.ttl
}

func (r *reg) Valid(sid string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.valid(r.get(sid))
}

func (r *reg) Touch(sid string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.get(sid)
	if !r.valid(e) {
		return false
	}

	e.lastPacket = time.Now()
	return true
}

func (r *reg) ChangeFocus(sid, name string, exists ServerExists) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.get(sid)
	if !r.valid(e) {
		return ErrorSidInvalid.Error()
	}

	if exists != nil && !exists(name) {
		return ErrorUnknownServer.Errorf(name)
	}

	e.focus = name
	e.pending = nil

	return nil
}

func (r *reg) Focus(sid string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.get(sid)
	if e == nil {
		return "", false
	}

	return e.focus, true
}

func (r *reg) AppendLine(server, line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cfg.Walk(func(_ string, val interface{}) bool {
		e, _ := val.(*entry)
		if e != nil && e.focus == server {
			e.pending = append(e.pending, line)
		}
		return true
	})
}

func (r *reg) DrainPending(sid string) ([]string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.get(sid)
	if e == nil {
		return nil, false
	}

	lines := e.pending
	e.pending = nil

	return lines, true
}

func (r *reg) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	r.cfg.Walk(func(_ string, _ interface{}) bool {
		n++
		return true
	})

	return n
}

func (r *reg) Reap() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	stale := make([]string, 0)

	r.cfg.Walk(func(sid string, val interface{}) bool {
		e, _ := val.(*entry)
		if !r.valid(e) {
			stale = append(stale, sid)
		}
		return true
	})

	for _, sid := range stale {
		r.cfg.Delete(sid)
	}

	return len(stale)
}
