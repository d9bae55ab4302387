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

/*
Package logger provides a structured logging facade built on top of logrus,
extending io.WriteCloser so it can be handed to anything expecting a standard
writer (including a child process's stdout pipe).

# Overview

  - Level-based filtering with six standard levels (Debug, Info, Warn, Error, Fatal, Panic)
  - Structured logging with custom fields, merged from the logger and from each entry
  - Automatic caller tracking (file, line, function, stack)
  - Thread-safe concurrent logging
  - A separate filtering level and pattern list for the io.Writer side, so raw
    child-process output can be dropped or demoted independently of structured calls

# Architecture

	Logger Interface (interface.go)
	  - main logging methods (Debug, Info, Warn, Error, Fatal, Panic)
	  - configuration (SetOptions, SetLevel, SetFields)
	  - advanced (Clone, Entry, CheckError, Access)

	Implementation (impl.go, model.go)
	  - entry creation with automatic caller/stack context
	  - logrus.Logger construction from config.Options
	  - thread-safe state held in a libctx.Config[uint8]

	Sub-packages:
	  - config: Options/OptionsStd structures and validation
	  - entry: log entry creation, manipulation, and lifecycle
	  - fields: structured field management with clone and merge operations
	  - level: log level definitions, conversions, and comparisons
	  - types: core hook interface and field name constants
	  - hookstdout, hookstderr, hookwriter: logrus hooks for stdout/stderr/custom writers

# Basic Usage

	log := logger.New(context.Background())
	log.SetLevel(level.InfoLevel)

	err := log.SetOptions(&config.Options{
	    Stdout: &config.OptionsStd{EnableTrace: true},
	})
	if err != nil {
	    panic(err)
	}
	defer log.Close()

	log.Info("supervisor started", nil)
	log.Debug("dispatch routed", map[string]interface{}{"status": "start"})

# Advanced Error Tracking

	err := performOperation()
	if log.CheckError(level.ErrorLevel, level.InfoLevel, "operation result", err) {
	    return err
	}

	entry := log.Entry(level.ErrorLevel, "child process failed")
	entry.FieldAdd("pid", pid)
	entry.ErrorAdd(true, err)
	entry.Log()

# Thread Safety

All Logger methods are safe for concurrent use; internal state is protected by
a sync.RWMutex and the libctx-backed key/value store.
*/
package logger
