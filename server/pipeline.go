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
	"bytes"
	"io"

	"github.com/sabouaram/minestormd/ioutils/delim"
)

// LineHandler is called once per completed output line, after it has been
// appended to the server's own history. The daemon wires this to the
// session registry's fan-out (spec.md §4.4).
type LineHandler func(server, line string)

// historyLine is one entry of a server's output history.
type historyLine struct {
	id   uint64
	text string
}

// pumpOutput reads r one line at a time via a buffered '\n'-delimited
// reader (spec.md §9: buffer while preserving byte-at-a-time fan-out
// semantics), publishing each completed line and finally driving the
// child-exited transition on EOF.
func (m *managedServer) pumpOutput(r io.ReadCloser) {
	bd := delim.New(r, '\n', 0)
	defer bd.Close()

	for {
		raw, err := bd.ReadBytes()

		if len(raw) > 0 {
			m.publishLine(decodeLine(raw))
		}

		if err != nil {
			break
		}
	}

	m.handleChildExited()
}

// decodeLine strips the trailing newline (and a preceding carriage return)
// and replaces any non-UTF-8 bytes.
func decodeLine(raw []byte) string {
	raw = bytes.TrimSuffix(raw, []byte("\n"))
	raw = bytes.TrimSuffix(raw, []byte("\r"))
	raw = bytes.ToValidUTF8(raw, []byte("�"))

	return string(raw)
}

func (m *managedServer) publishLine(line string) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.history = append(m.history, historyLine{id: id, text: line})
	name := m.name
	handler := m.onLine
	m.mu.Unlock()

	if handler != nil {
		handler(name, line)
	}
}

// retrieveLines returns the inclusive [start, stop] slice of history,
// clipped to bounds, as an id->text map. Negative indices count from the
// end; stop = -1 means through the latest line.
func (m *managedServer) retrieveLines(start, stop int) map[uint64]string {
	m.mu.Lock()
	hist := m.history
	m.mu.Unlock()

	n := len(hist)
	out := map[uint64]string{}

	if n == 0 {
		return out
	}

	s := resolveIndex(start, n)
	e := resolveIndex(stop, n)

	if s < 0 {
		s = 0
	}
	if e > n-1 {
		e = n - 1
	}

	if s > e {
		return out
	}

	for _, l := range hist[s : e+1] {
		out[l.id] = l.text
	}

	return out
}

// resolveIndex turns a possibly-negative index (counting from the end,
// Python-slice style) into a 0-based index. It is not clipped to [0, n);
// callers clip after resolving both ends.
func resolveIndex(i, n int) int {
	if i < 0 {
		return n + i
	}

	return i
}
