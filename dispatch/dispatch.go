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

// Package dispatch routes one decoded wire.Request to the session registry
// and process supervisor, and produces the single reply every request is
// guaranteed to receive (spec.md §4.6).
package dispatch

import (
	liberr "github.com/sabouaram/minestormd/errors"
	"github.com/sabouaram/minestormd/server"
	"github.com/sabouaram/minestormd/session"
	"github.com/sabouaram/minestormd/wire"
)

// Dispatcher routes a single request to its handler and returns the reply
// body to be framed back to the client.
type Dispatcher interface {
	Handle(req wire.Request) map[string]interface{}
}

type dispatcher struct {
	sessions   session.Registry
	supervisor server.Supervisor
}

// New builds a Dispatcher bound to sessions and supervisor.
func New(sessions session.Registry, supervisor server.Supervisor) Dispatcher {
	return &dispatcher{sessions: sessions, supervisor: supervisor}
}

// Handle routes req by its status field. ping, new_session and
// invalid_request-producing unknown codes need no sid; every other status
// requires a valid sid, which is touched before the handler runs (spec.md
// §4.5's touch-before-handler rule).
func (d *dispatcher) Handle(req wire.Request) map[string]interface{} {
	switch req.Status {
	case wire.StatusPing:
		return map[string]interface{}{"status": wire.StatusPong}
	case wire.StatusNewSession:
		return d.newSession()
	case "":
		return wire.InvalidRequest("Status code not found")
	case wire.StatusRemoveSession, wire.StatusChangeFocus, wire.StatusStartServer,
		wire.StatusStopServer, wire.StatusStartAllServers, wire.StatusStopAllServers,
		wire.StatusCommand, wire.StatusStatus, wire.StatusUpdate, wire.StatusRetrieveLines:
	default:
		return wire.InvalidRequest(ErrorUnknownStatus.Message())
	}

	sid := req.String("sid")
	if sid == "" {
		return wire.Failed(session.ErrorSidMissing.Message())
	}

	if !d.sessions.Touch(sid) {
		return wire.Failed(session.ErrorSidInvalid.Message())
	}

	switch req.Status {
	case wire.StatusRemoveSession:
		d.sessions.Remove(sid)
		return wire.OK()
	case wire.StatusChangeFocus:
		return d.changeFocus(sid, req)
	case wire.StatusStartServer:
		return d.startServer(req)
	case wire.StatusStopServer:
		return d.stopServer(req)
	case wire.StatusStartAllServers:
		return d.toggle(d.supervisor.StartAll())
	case wire.StatusStopAllServers:
		return d.toggle(d.supervisor.StopAll(req.String("message")))
	case wire.StatusCommand:
		return d.command(sid, req)
	case wire.StatusStatus:
		return d.status()
	case wire.StatusUpdate:
		return d.update(sid)
	case wire.StatusRetrieveLines:
		return d.retrieveLines(req)
	default:
		return wire.InvalidRequest(ErrorUnknownStatus.Message())
	}
}

func (d *dispatcher) newSession() map[string]interface{} {
	sid, err := d.sessions.New()
	if err != nil {
		return wire.Failed(reason(err))
	}

	return map[string]interface{}{"status": wire.StatusSessionCreated, "sid": sid}
}

func (d *dispatcher) changeFocus(sid string, req wire.Request) map[string]interface{} {
	if err := d.sessions.ChangeFocus(sid, req.String("server"), d.supervisor.Exists); err != nil {
		return wire.Failed(reason(err))
	}

	return wire.OK()
}

func (d *dispatcher) startServer(req wire.Request) map[string]interface{} {
	if err := d.supervisor.Start(req.String("server")); err != nil {
		return wire.Failed(reason(err))
	}

	return wire.OK()
}

func (d *dispatcher) stopServer(req wire.Request) map[string]interface{} {
	if err := d.supervisor.Stop(req.String("server"), req.String("message")); err != nil {
		return wire.Failed(reason(err))
	}

	return wire.OK()
}

func (d *dispatcher) toggle(err error) map[string]interface{} {
	if err != nil {
		return wire.Failed(reason(err))
	}

	return wire.OK()
}

func (d *dispatcher) command(sid string, req wire.Request) map[string]interface{} {
	focus, _ := d.sessions.Focus(sid)

	if err := d.supervisor.Command(req.String("server"), focus, req.String("command")); err != nil {
		return wire.Failed(reason(err))
	}

	return wire.OK()
}

func (d *dispatcher) status() map[string]interface{} {
	servers := map[string]interface{}{}

	for name, v := range d.supervisor.StatusAll() {
		entry := map[string]interface{}{"status": v.Status}

		if v.Online {
			entry["started_at"] = v.StartedAt
			entry["uptime"] = v.Uptime
			entry["ram_used"] = v.RAMUsed
		}

		servers[name] = entry
	}

	return map[string]interface{}{"status": wire.StatusStatusResponse, "servers": servers}
}

func (d *dispatcher) update(sid string) map[string]interface{} {
	lines, _ := d.sessions.DrainPending(sid)
	if lines == nil {
		lines = []string{}
	}

	servers := make([]map[string]interface{}, 0, len(d.supervisor.Names()))
	for _, name := range d.supervisor.Names() {
		v, ok := d.supervisor.Status(name)
		if !ok {
			continue
		}
		servers = append(servers, map[string]interface{}{"name": name, "online": v.Online})
	}

	focus, _ := d.sessions.Focus(sid)

	var ramUsed float64
	if focus != "" {
		if v, ok := d.supervisor.Status(focus); ok {
			ramUsed = v.RAMUsed
		}
	}

	return map[string]interface{}{
		"status":    wire.StatusUpdates,
		"new_lines": lines,
		"servers":   servers,
		"focus":     focus,
		"ram_used":  ramUsed,
	}
}

func (d *dispatcher) retrieveLines(req wire.Request) map[string]interface{} {
	name := req.String("server")
	start := int(req.Float64("start"))
	stop := int(req.Float64("stop"))

	lines, err := d.supervisor.RetrieveLines(name, start, stop)
	if err != nil {
		return wire.Failed(reason(err))
	}

	return map[string]interface{}{"status": wire.StatusRetrieveLinesRsp, "lines": lines}
}

// reason extracts the clean, wire-facing message from err, preferring the
// registered errors.CodeError message over the error's own full string form.
func reason(err error) string {
	if le, ok := err.(liberr.Error); ok {
		return le.StringError()
	}

	return err.Error()
}
