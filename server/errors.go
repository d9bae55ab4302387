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
	liberr "github.com/sabouaram/minestormd/errors"
)

const (
	// ErrorUnknownServer indicates an operation named a server not in the registry.
	ErrorUnknownServer liberr.CodeError = iota + liberr.MinPkgServer

	// ErrorIllegalState indicates a start/stop/command was attempted from a
	// state that does not permit it.
	ErrorIllegalState

	// ErrorSpawn indicates the child process could not be started.
	ErrorSpawn

	// ErrorNotRunning indicates the internal Command primitive was called
	// from a state where it is illegal (outside STARTING/STARTED/STOPPING).
	ErrorNotRunning

	// ErrorNoFocus indicates command() had neither an explicit server nor a session focus.
	ErrorNoFocus

	// ErrorNotStarted indicates a wire-level command request resolved a
	// server that is not STARTED.
	ErrorNotStarted

	// ErrorBatchFailed indicates every server in a start_all/stop_all batch failed.
	ErrorBatchFailed

	// ErrorDuplicateName indicates two configured servers share the same name.
	ErrorDuplicateName
)

func init() {
	liberr.RegisterIdFctMessage(ErrorUnknownServer, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorUnknownServer:
		return "Server %s does not exist"
	case ErrorIllegalState:
		return "server %s is not in a state that allows this operation"
	case ErrorSpawn:
		return "failed to spawn child process"
	case ErrorNotRunning:
		return "server is not running"
	case ErrorNoFocus:
		return "Please specify a valid server"
	case ErrorNotStarted:
		return "Server %s is not running"
	case ErrorBatchFailed:
		return "all servers in the batch failed"
	case ErrorDuplicateName:
		return "duplicate server name %s"
	}

	return ""
}
