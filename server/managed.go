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

// Package server implements the process supervisor (spec.md §4.3-§4.4):
// the per-server lifecycle state machine, child process spawning, the
// output pipeline, and the memory sampler.
package server

import (
	"context"
	"io"
	"os/exec"
	"sync"
	"time"

	"github.com/sabouaram/minestormd/config"
	"github.com/sabouaram/minestormd/runner/ticker"
)

// StatusView is a read-only snapshot of one managed server, shaped for the
// dispatcher's status/update replies (spec.md §4.6).
type StatusView struct {
	Status    string
	Online    bool
	StartedAt int64
	Uptime    int64
	RAMUsed   float64
}

// managedServer is one configured entry (spec.md §3's ManagedServer). All
// mutable fields are guarded by mu. Start holds mu while spawning the child,
// and Stop and Command hold it while writing to the child's stdin; the
// output pipeline reads stdout without holding it.
type managedServer struct {
	mu sync.Mutex

	name string
	desc config.ServerDescriptor

	status     State
	pid        int32
	stdin      io.WriteCloser
	startedAt  time.Time
	ramPercent float64

	history []historyLine
	nextID  uint64

	sampler     ticker.Ticker
	sampleEvery time.Duration
	onLine      LineHandler
}

func newManagedServer(desc config.ServerDescriptor, sampleEvery time.Duration, onLine LineHandler) *managedServer {
	return &managedServer{
		name:        desc.Name,
		desc:        desc,
		status:      StateStopped,
		sampleEvery: sampleEvery,
		onLine:      onLine,
	}
}

func (m *managedServer) Status() StatusView {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := StatusView{
		Status: m.status.String(),
		Online: m.status.Running(),
	}

	if m.status.Running() {
		v.StartedAt = m.startedAt.Unix()
		v.Uptime = int64(time.Since(m.startedAt).Seconds())
		v.RAMUsed = m.ramPercent
	}

	return v
}

// Start spawns the child process. Legal only from STOPPED or CRASHED.
func (m *managedServer) Start() error {
	m.mu.Lock()

	if m.status != StateStopped && m.status != StateCrashed {
		m.mu.Unlock()
		return ErrorIllegalState.Errorf(m.name)
	}

	m.status = StateStarting

	args, dir := buildCommandLine(m.desc)
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir

	stdin, err := cmd.StdinPipe()
	if err != nil {
		m.status = StateCrashed
		m.mu.Unlock()
		return ErrorSpawn.Error(err)
	}

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err = cmd.Start(); err != nil {
		m.status = StateCrashed
		m.mu.Unlock()
		return ErrorSpawn.Error(err)
	}

	m.status = StateStarted
	m.pid = int32(cmd.Process.Pid)
	m.stdin = stdin
	m.startedAt = time.Now()
	m.ramPercent = 0
	m.history = nil
	m.nextID = 0
	m.sampler = newSampler(m, m.pid, m.sampleEvery)
	sampler := m.sampler

	m.mu.Unlock()

	go waitAndClose(cmd, pw)
	go m.pumpOutput(pr)

	_ = sampler.Start(context.Background())

	return nil
}

// waitAndClose reaps cmd and closes pw once it exits, unblocking the
// output pipeline's reader with EOF regardless of the exit error.
func waitAndClose(cmd *exec.Cmd, pw *io.PipeWriter) {
	_ = cmd.Wait()
	_ = pw.Close()
}

// Stop writes the configured shutdown command to the child's stdin.
// Legal only from STARTED.
func (m *managedServer) Stop(message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StateStarted {
		return ErrorIllegalState.Errorf(m.name)
	}

	if message == "" {
		message = m.desc.StopMessage
	}

	line := stopCommand(m.desc.Type)
	if message != "" {
		line += " " + message
	}

	m.status = StateStopping

	return writeLine(m.stdin, line)
}

// Command writes text to the child's stdin. Legal in STARTING, STARTED or
// STOPPING.
func (m *managedServer) Command(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.status.Running() {
		return ErrorNotRunning.Error()
	}

	return writeLine(m.stdin, text)
}

// IsStarted reports whether the server is in STATE_STARTED. Unlike
// Running(), which also admits STARTING and STOPPING, this backs the
// wire-level command request, which spec.md §4.6 allows only once a
// server has finished booting and before it begins shutting down.
func (m *managedServer) IsStarted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.status == StateStarted
}

func writeLine(w io.Writer, text string) error {
	_, err := io.WriteString(w, text+"\n")
	return err
}

// handleChildExited is invoked by the output pipeline on EOF. It always
// transitions the server to STOPPED, clearing every field scoped to a run.
func (m *managedServer) handleChildExited() {
	m.mu.Lock()
	sampler := m.sampler

	m.status = StateStopped
	m.pid = 0
	m.stdin = nil
	m.startedAt = time.Time{}
	m.ramPercent = 0
	m.history = nil
	m.sampler = nil
	m.mu.Unlock()

	if sampler != nil {
		_ = sampler.Stop(context.Background())
	}
}
