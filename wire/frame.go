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

// Package wire implements the daemon's framing codec: every message on every
// stream socket is a 4-byte little-endian length header followed by exactly
// that many bytes of UTF-8 JSON payload.
package wire

import (
	"encoding/binary"
	"encoding/json"
	"io"
)

// HeaderSize is the width, in bytes, of the little-endian length header
// preceding every frame's payload.
const HeaderSize = 4

// MaxPayloadSize is the defensible ceiling on a single frame's payload. The
// protocol itself does not bound payload size; implementations are expected
// to reject anything larger.
const MaxPayloadSize = 1 << 20 // 1 MiB

// ReadFrame reads one length-prefixed frame from r and returns its raw
// payload bytes. It retries short reads on both the header and the payload,
// and fails with ErrorOversizeFrame if the declared length exceeds
// MaxPayloadSize.
func ReadFrame(r io.Reader) ([]byte, error) {
	var header [HeaderSize]byte

	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, ErrorHeaderRead.Error(err)
	}

	n := binary.LittleEndian.Uint32(header[:])
	if n > MaxPayloadSize {
		return nil, ErrorOversizeFrame.Errorf(n)
	}

	payload := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, ErrorPayloadRead.Error(err)
		}
	}

	return payload, nil
}

// WriteFrame writes payload to w as one length-prefixed frame: a 4-byte
// little-endian length header followed by the payload bytes. Both the
// header and payload writes are retried against short writes; a write that
// transfers zero bytes is treated as a broken peer and fails the frame.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > MaxPayloadSize {
		return ErrorOversizeFrame.Errorf(len(payload))
	}

	var header [HeaderSize]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(payload)))

	if err := writeAll(w, header[:]); err != nil {
		return ErrorFrameWrite.Error(err)
	}

	if err := writeAll(w, payload); err != nil {
		return ErrorFrameWrite.Error(err)
	}

	return nil
}

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}

		if n == 0 {
			return io.ErrShortWrite
		}

		b = b[n:]
	}

	return nil
}

// ReadMessage reads one frame from r and unmarshals its JSON payload into v.
func ReadMessage(r io.Reader, v interface{}) error {
	payload, err := ReadFrame(r)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(payload, v); err != nil {
		return ErrorDecode.Error(err)
	}

	return nil
}

// WriteMessage marshals v as JSON and writes it to w as one frame.
func WriteMessage(w io.Writer, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return ErrorEncode.Error(err)
	}

	return WriteFrame(w, payload)
}
