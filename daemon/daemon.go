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

// Package daemon is the composition root: it wires config, the session
// registry, the process supervisor and the request dispatcher into one
// running TCP service, and implements the ordered boot and shutdown
// sequence of spec.md §4.7.
package daemon

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sabouaram/minestormd/config"
	"github.com/sabouaram/minestormd/dispatch"
	"github.com/sabouaram/minestormd/logger"
	"github.com/sabouaram/minestormd/runner/ticker"
	"github.com/sabouaram/minestormd/server"
	"github.com/sabouaram/minestormd/session"
	"github.com/sabouaram/minestormd/wire"
)

const (
	defaultPort        = 45342
	defaultSessionTTL  = 5 * time.Minute
	defaultReaperEvery = 30 * time.Second
	defaultSampleEvery = 5 * time.Second
)

// Daemon owns every long-lived component of a running minestormd process.
type Daemon struct {
	log logger.Logger

	listener   net.Listener
	sessions   session.Registry
	reaper     ticker.Ticker
	supervisor server.Supervisor
	dispatcher dispatch.Dispatcher

	mu       sync.Mutex
	shutdown bool
}

// New builds a Daemon from cfg: it resolves networking.port, sessions.*,
// and servers.update_usage_informations_every, constructs the session
// registry, registers every configured server with the process supervisor
// (spec.md §4.7's "supervisor registers configured servers" step), builds
// the dispatcher, and binds the listening socket.
func New(ctx context.Context, cfg config.Config, log logger.Logger) (*Daemon, error) {
	descs, err := cfg.GetServers()
	if err != nil {
		return nil, ErrorRegisterServers.Error(err)
	}

	ttl := cfg.GetDuration("sessions.expiration.time", defaultSessionTTL)
	checkEvery := cfg.GetDuration("sessions.expiration.check_every", defaultReaperEvery)
	sampleEvery := cfg.GetDuration("servers.update_usage_informations_every", defaultSampleEvery)
	port := cfg.GetInt("networking.port", defaultPort)

	sessions := session.New(ctx, ttl)
	log.Info("session registry online", ttl)

	sup, err := server.New(descs, sampleEvery, func(name, line string) {
		sessions.AppendLine(name, line)
	})
	if err != nil {
		return nil, ErrorRegisterServers.Error(err)
	}
	log.Info("supervisor registered configured servers", len(sup.Names()))

	d := dispatch.New(sessions, sup)
	log.Info("dispatcher ready", nil)

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, ErrorListen.Error(err)
	}
	log.Info("listening", ln.Addr().String())

	return &Daemon{
		log:        log,
		listener:   ln,
		sessions:   sessions,
		reaper:     session.NewReaper(sessions, checkEvery),
		supervisor: sup,
		dispatcher: d,
	}, nil
}

// Run starts the session reaper and the accept loop, and installs a signal
// handler for SIGINT/SIGTERM that triggers Shutdown. It blocks until the
// accept loop exits (normally, on Shutdown, or on a listener error) and
// returns the first error from any of its tasks.
func (d *Daemon) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return d.reaper.Start(gctx)
	})

	g.Go(func() error {
		return d.acceptLoop()
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	g.Go(func() error {
		select {
		case <-sigCh:
			d.log.Info("signal received, shutting down", nil)
		case <-gctx.Done():
			return nil
		}

		d.Shutdown()
		return nil
	})

	return g.Wait()
}

// acceptLoop accepts connections until the listener is closed by Shutdown,
// dispatching each on its own goroutine (spec.md §5: one short-lived
// request-handler task per accepted connection).
func (d *Daemon) acceptLoop() error {
	for {
		conn, err := d.listener.Accept()
		if err != nil {
			if d.isShuttingDown() {
				return nil
			}

			return err
		}

		go d.handleConn(conn)
	}
}

// handleConn reads exactly one framed request, dispatches it, and writes
// exactly one framed reply (spec.md §6: one request and one response per
// connection, then close).
func (d *Daemon) handleConn(conn net.Conn) {
	defer conn.Close()

	var req wire.Request
	if err := wire.ReadMessage(conn, &req); err != nil {
		d.log.Warning("failed to read request", err)
		_ = wire.WriteMessage(conn, wire.InvalidRequest(err.Error()))
		return
	}

	reply := d.dispatcher.Handle(req)

	if err := wire.WriteMessage(conn, reply); err != nil {
		d.log.Warning("failed to write reply", err)
	}
}

// Addr returns the address the daemon's listener is bound to.
func (d *Daemon) Addr() string {
	return d.listener.Addr().String()
}

func (d *Daemon) isShuttingDown() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.shutdown
}

// Shutdown performs the ordered shutdown of spec.md §4.7: stop accepting,
// stop every running child, reap the session registry's background
// watchers, close the listening socket. Idempotent and safe to call more
// than once.
func (d *Daemon) Shutdown() {
	d.mu.Lock()
	if d.shutdown {
		d.mu.Unlock()
		return
	}
	d.shutdown = true
	d.mu.Unlock()

	_ = d.listener.Close()
	d.supervisor.Shutdown()
	_ = d.reaper.Stop(context.Background())
}
