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
	liberr "github.com/sabouaram/minestormd/errors"
)

const (
	// ErrorSidMissing indicates a request required a sid but none was given.
	ErrorSidMissing liberr.CodeError = iota + liberr.MinPkgSession

	// ErrorSidInvalid indicates a request's sid is unknown or expired.
	ErrorSidInvalid

	// ErrorUnknownServer indicates change_focus named a server not in the registry.
	ErrorUnknownServer

	// ErrorUUID indicates sid generation failed.
	ErrorUUID
)

func init() {
	liberr.RegisterIdFctMessage(ErrorSidMissing, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorSidMissing:
		return "SID not provided"
	case ErrorSidInvalid:
		return "Invalid SID"
	case ErrorUnknownServer:
		return "unknown server"
	case ErrorUUID:
		return "unable to generate session id"
	}

	return ""
}
