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

package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/sabouaram/minestormd/config"
)

// Supervisor owns every configured ManagedServer: their lifecycle state
// machines, bulk operations, and history retrieval (spec.md §4.3-§4.4).
type Supervisor interface {
	// Exists reports whether name is a registered server. Satisfies
	// session.ServerExists.
	Exists(name string) bool

	// Names returns every registered server name, in registry-insertion order.
	Names() []string

	// Start starts the named server. Unknown name or illegal current state fails.
	Start(name string) error

	// Stop stops the named server, writing message (or its configured default
	// if empty) as the shutdown message. Unknown name or illegal state fails.
	Stop(name, message string) error

	// Command resolves the target server as: the explicit name if non-empty
	// and known, else fallbackFocus if non-empty and known. It fails if no
	// server resolves, or if the resolved server is not STARTED.
	Command(name, fallbackFocus, text string) error

	// StartAll starts every STOPPED or CRASHED server, in registry order. It
	// continues past per-server failures and returns ErrorBatchFailed only
	// if every attempt failed.
	StartAll() error

	// StopAll stops every STARTED server, in registry order, using message
	// as the shutdown message override. Same aggregate semantics as StartAll.
	StopAll(message string) error

	// Status returns a snapshot of the named server.
	Status(name string) (StatusView, bool)

	// StatusAll returns a snapshot of every registered server.
	StatusAll() map[string]StatusView

	// RetrieveLines returns the [start, stop] inclusive slice of name's
	// output history. Unknown name fails.
	RetrieveLines(name string, start, stop int) (map[uint64]string, error)

	// Shutdown writes the shutdown command to every STARTED server. It returns
	// without waiting for the children to exit or for their output and
	// sampler tasks to end; STARTING and STOPPING servers are left as they are.
	Shutdown()
}

type sup struct {
	mu      sync.Mutex
	order   []string
	servers map[string]*managedServer
}

// New builds a Supervisor from descs, registering each in order. onLine is
// invoked once per completed output line (spec.md §4.4's fan-out); sample
// every is the memory-sampler interval (spec.md's
// servers.update_usage_informations_every).
func New(descs []config.ServerDescriptor, sampleEvery time.Duration, onLine LineHandler) (Supervisor, error) {
	s := &sup{
		servers: make(map[string]*managedServer, len(descs)),
	}

	for _, d := range descs {
		if _, exists := s.servers[d.Name]; exists {
			return nil, ErrorDuplicateName.Errorf(d.Name)
		}

		s.servers[d.Name] = newManagedServer(d, sampleEvery, onLine)
		s.order = append(s.order, d.Name)
	}

	return s, nil
}

func (s *sup) lookup(name string) (*managedServer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.servers[name]
	return m, ok
}

func (s *sup) Exists(name string) bool {
	_, ok := s.lookup(name)
	return ok
}

func (s *sup) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}

func (s *sup) Start(name string) error {
	m, ok := s.lookup(name)
	if !ok {
		return ErrorUnknownServer.Errorf(name)
	}

	return m.Start()
}

func (s *sup) Stop(name, message string) error {
	m, ok := s.lookup(name)
	if !ok {
		return ErrorUnknownServer.Errorf(name)
	}

	return m.Stop(message)
}

func (s *sup) Command(name, fallbackFocus, text string) error {
	target := name
	if target == "" || !s.Exists(target) {
		target = fallbackFocus
	}

	if target == "" {
		return ErrorNoFocus.Error()
	}

	m, ok := s.lookup(target)
	if !ok {
		return ErrorNoFocus.Error()
	}

	if !m.IsStarted() {
		return ErrorNotStarted.Errorf(target)
	}

	return m.Command(text)
}

func (s *sup) StartAll() error {
	var (
		attempted int
		failures  = map[string]string{}
	)

	for _, name := range s.Names() {
		m, ok := s.lookup(name)
		if !ok {
			continue
		}

		st := m.Status()
		if st.Status != StateStopped.String() && st.Status != StateCrashed.String() {
			continue
		}

		attempted++
		if err := m.Start(); err != nil {
			failures[name] = err.Error()
		}
	}

	if attempted > 0 && len(failures) == attempted {
		return ErrorBatchFailed.Error(fmt.Errorf("%v", failures))
	}

	return nil
}

func (s *sup) StopAll(message string) error {
	var (
		attempted int
		failures  = map[string]string{}
	)

	for _, name := range s.Names() {
		m, ok := s.lookup(name)
		if !ok {
			continue
		}

		if m.Status().Status != StateStarted.String() {
			continue
		}

		attempted++
		if err := m.Stop(message); err != nil {
			failures[name] = err.Error()
		}
	}

	if attempted > 0 && len(failures) == attempted {
		return ErrorBatchFailed.Error(fmt.Errorf("%v", failures))
	}

	return nil
}

func (s *sup) Status(name string) (StatusView, bool) {
	m, ok := s.lookup(name)
	if !ok {
		return StatusView{}, false
	}

	return m.Status(), true
}

func (s *sup) StatusAll() map[string]StatusView {
	out := map[string]StatusView{}

	for _, name := range s.Names() {
		if m, ok := s.lookup(name); ok {
			out[name] = m.Status()
		}
	}

	return out
}

func (s *sup) RetrieveLines(name string, start, stop int) (map[uint64]string, error) {
	m, ok := s.lookup(name)
	if !ok {
		return nil, ErrorUnknownServer.Errorf(name)
	}

	return m.retrieveLines(start, stop), nil
}

func (s *sup) Shutdown() {
	for _, name := range s.Names() {
		m, ok := s.lookup(name)
		if !ok {
			continue
		}

		if m.Status().Status == StateStarted.String() {
			_ = m.Stop("")
		}
	}
}
