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

package wire

import (
	liberr "github.com/sabouaram/minestormd/errors"
)

const (
	// ErrorHeaderRead indicates the 4-byte length header could not be read in full.
	ErrorHeaderRead liberr.CodeError = iota + liberr.MinPkgWire

	// ErrorPayloadRead indicates the frame's payload could not be read in full.
	ErrorPayloadRead

	// ErrorFrameWrite indicates a header or payload write failed or transferred zero bytes.
	ErrorFrameWrite

	// ErrorOversizeFrame indicates a frame's declared or actual length exceeds MaxPayloadSize.
	ErrorOversizeFrame

	// ErrorDecode indicates a frame payload is not valid JSON for the requested type.
	ErrorDecode

	// ErrorEncode indicates a value could not be marshalled to JSON before framing.
	ErrorEncode
)

func init() {
	liberr.RegisterIdFctMessage(ErrorHeaderRead, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorHeaderRead:
		return "unable to read frame length header"
	case ErrorPayloadRead:
		return "unable to read frame payload"
	case ErrorFrameWrite:
		return "unable to write frame to connection"
	case ErrorOversizeFrame:
		return "frame exceeds maximum payload size"
	case ErrorDecode:
		return "frame payload is not valid JSON"
	case ErrorEncode:
		return "unable to encode value as JSON"
	}

	return ""
}
