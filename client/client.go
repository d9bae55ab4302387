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

// Package client is the command-line front-end's transport: it speaks the
// same length-prefixed JSON framing as the daemon (see wire), dialing a
// fresh connection for every request since the protocol is one request,
// one response, then close (spec.md §6) — there is no keep-alive to hold
// a persistent socket open across commands.
package client

import (
	"net"
	"time"

	"github.com/sabouaram/minestormd/wire"
)

// Config names the daemon to dial.
type Config struct {
	Address string
	Timeout time.Duration
}

// Client sends requests to a running minestormd and returns its replies.
type Client interface {
	// Send dials the daemon, writes req, reads exactly one reply, and
	// closes the connection.
	Send(req wire.Request) (map[string]interface{}, error)

	// Close releases any resources held by the client. It is safe to call
	// more than once.
	Close() error
}

type client struct {
	cfg Config
}

// New returns a Client bound to cfg. Dialing happens lazily, once per
// Send call, so New never fails on an unreachable daemon.
func New(cfg Config) (Client, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	return &client{cfg: cfg}, nil
}

func (c *client) Send(req wire.Request) (map[string]interface{}, error) {
	conn, err := net.DialTimeout("tcp", c.cfg.Address, c.cfg.Timeout)
	if err != nil {
		return nil, ErrorDial.Error(err)
	}
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(c.cfg.Timeout))

	if err = wire.WriteMessage(conn, req); err != nil {
		return nil, ErrorDial.Error(err)
	}

	var reply map[string]interface{}
	if err = wire.ReadMessage(conn, &reply); err != nil {
		return nil, ErrorDial.Error(err)
	}

	return reply, nil
}

func (c *client) Close() error {
	return nil
}

// Failed reports whether reply carries a failed or invalid_request status,
// and the reason string the daemon attached to it.
func Failed(reply map[string]interface{}) (string, bool) {
	switch reply["status"] {
	case wire.StatusFailed, wire.StatusInvalidRequest:
		reason, _ := reply["reason"].(string)
		return reason, true
	default:
		return "", false
	}
}
