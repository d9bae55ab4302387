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

package config

import (
	liberr "github.com/sabouaram/minestormd/errors"
)

const (
	// ErrorFileRead indicates a configuration file could not be opened or read.
	ErrorFileRead liberr.CodeError = iota + liberr.MinPkgConfig

	// ErrorFileDecode indicates a configuration file's content is not valid JSON.
	ErrorFileDecode

	// ErrorInclude indicates a file named by an `include` key could not be merged.
	ErrorInclude
)

func init() {
	liberr.RegisterIdFctMessage(ErrorFileRead, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorFileRead:
		return "unable to read configuration file"
	case ErrorFileDecode:
		return "configuration file is not valid JSON"
	case ErrorInclude:
		return "unable to merge included configuration file"
	}

	return ""
}
