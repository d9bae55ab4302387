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

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	logcfg "github.com/sabouaram/minestormd/logger/config"
	logent "github.com/sabouaram/minestormd/logger/entry"
	logfld "github.com/sabouaram/minestormd/logger/fields"
	loglvl "github.com/sabouaram/minestormd/logger/level"
)

// Write implements io.Writer so the logger itself can be handed to a standard
// log.Logger, an exec.Cmd.Stdout, or any other component expecting a writer.
// Each call is treated as a single raw log line at the IO writer level.
func (o *lgr) Write(p []byte) (n int, err error) {
	n = len(p)

	if o.IOWriterFilter(p) == nil {
		return n, nil
	}

	lvl := o.GetIOWriterLevel()
	if lvl == loglvl.NilLevel {
		return n, nil
	}

	o.newEntryClean(strings.TrimRight(string(p), "\r\n")).Log()
	return n, nil
}

// Close releases the registered output sink, if any.
func (o *lgr) Close() error {
	if c, ok := o.c.Load().(io.Closer); ok && c != nil {
		return c.Close()
	}
	return nil
}

func (o *lgr) SetLevel(lvl loglvl.Level) {
	o.m.Lock()
	defer o.m.Unlock()
	o.x.Store(keyLevel, lvl)
	o.setLogrusLevel(lvl)
}

func (o *lgr) GetLevel() loglvl.Level {
	o.m.RLock()
	defer o.m.RUnlock()

	if i, l := o.x.Load(keyLevel); !l {
		return loglvl.InfoLevel
	} else if v, k := i.(loglvl.Level); !k {
		return loglvl.InfoLevel
	} else {
		return v
	}
}

func (o *lgr) SetIOWriterLevel(lvl loglvl.Level) {
	o.x.Store(keyWriter, lvl)
}

func (o *lgr) GetIOWriterLevel() loglvl.Level {
	if i, l := o.x.Load(keyWriter); !l {
		return o.GetLevel()
	} else if v, k := i.(loglvl.Level); !k {
		return o.GetLevel()
	} else {
		return v
	}
}

func (o *lgr) SetIOWriterFilter(pattern ...string) {
	o.x.Store(keyFilter, pattern)
}

func (o *lgr) AddIOWriterFilter(pattern ...string) {
	var cur []string

	if i, l := o.x.Load(keyFilter); l {
		if v, k := i.([]string); k {
			cur = v
		}
	}

	o.x.Store(keyFilter, append(cur, pattern...))
}

// IOWriterFilter returns p unchanged, or nil if p matches a registered drop pattern.
func (o *lgr) IOWriterFilter(p []byte) []byte {
	i, l := o.x.Load(keyFilter)
	if !l {
		return p
	}

	pattern, k := i.([]string)
	if !k {
		return p
	}

	s := string(p)
	for _, pat := range pattern {
		if pat == "" {
			continue
		}
		if strings.Contains(s, pat) {
			return nil
		}
	}

	return p
}

func (o *lgr) SetOptions(opt *logcfg.Options) error {
	if opt == nil {
		return nil
	}

	o.m.Lock()
	defer o.m.Unlock()

	o.optionsMerge(opt)
	o.x.Store(keyOptions, opt)

	log := logrus.New()
	log.SetLevel(o.GetLevel().Logrus())
	log.SetOutput(os.Stdout)

	if opt.Stdout != nil {
		if opt.Stdout.DisableColor {
			log.SetFormatter(o.defaultFormatterNoColor())
		} else {
			log.SetFormatter(o.defaultFormatter(opt.Stdout))
		}
		if opt.Stdout.DisableStandard {
			log.SetOutput(io.Discard)
		}
	} else {
		log.SetFormatter(o.defaultFormatterNoColor())
	}

	o.x.Store(keyLogrus, log)

	o.runFuncUpdateLogger()
	o.runFuncUpdateLevel()

	return nil
}

func (o *lgr) GetOptions() *logcfg.Options {
	o.m.RLock()
	defer o.m.RUnlock()

	if i, l := o.x.Load(keyOptions); !l {
		return nil
	} else if v, k := i.(*logcfg.Options); !k {
		return nil
	} else {
		return v
	}
}

func (o *lgr) SetFields(field logfld.Fields) {
	o.m.Lock()
	defer o.m.Unlock()
	o.f = field
}

func (o *lgr) GetFields() logfld.Fields {
	o.m.RLock()
	defer o.m.RUnlock()
	return o.f
}

func (o *lgr) Clone() (Logger, error) {
	o.m.RLock()
	defer o.m.RUnlock()

	n := &lgr{
		x: o.x,
		f: o.f.Clone(),
		c: new(atomic.Value),
	}

	return n, nil
}

func (o *lgr) runFuncUpdateLogger() {
	if i, l := o.x.Load(keyFctUpdLog); l {
		if fct, k := i.(func(log Logger)); k && fct != nil {
			fct(o)
		}
	}
}

func (o *lgr) runFuncUpdateLevel() {
	if i, l := o.x.Load(keyFctUpdLvl); l {
		if fct, k := i.(func(log Logger)); k && fct != nil {
			fct(o)
		}
	}
}

func (o *lgr) newEntry(lvl loglvl.Level, message string, err []error, fields logfld.Fields, data interface{}) logent.Entry {
	stack := o.getStack()
	frame := o.getCaller()

	e := logent.New(lvl).
		SetLogger(o.getLogrus).
		SetEntryContext(time.Now(), stack, frame.Function, frame.File, uint64(frame.Line), message).
		DataSet(data).
		ErrorSet(err)

	if fields != nil {
		e = e.FieldMerge(fields)
	}
	if o.f != nil {
		e = e.FieldMerge(o.f)
	}

	return e
}

func (o *lgr) newEntryClean(message string) logent.Entry {
	return logent.New(o.GetIOWriterLevel()).
		SetLogger(o.getLogrus).
		SetMessageOnly(true).
		SetEntryContext(time.Now(), 0, "", "", 0, message)
}

func (o *lgr) Debug(message string, data interface{}, args ...interface{}) {
	o.logArgs(loglvl.DebugLevel, message, data, nil, args...)
}

func (o *lgr) Info(message string, data interface{}, args ...interface{}) {
	o.logArgs(loglvl.InfoLevel, message, data, nil, args...)
}

func (o *lgr) Warning(message string, data interface{}, args ...interface{}) {
	o.logArgs(loglvl.WarnLevel, message, data, nil, args...)
}

func (o *lgr) Error(message string, data interface{}, args ...interface{}) {
	o.logArgs(loglvl.ErrorLevel, message, data, nil, args...)
}

func (o *lgr) Fatal(message string, data interface{}, args ...interface{}) {
	o.logArgs(loglvl.FatalLevel, message, data, nil, args...)
}

func (o *lgr) Panic(message string, data interface{}, args ...interface{}) {
	o.logArgs(loglvl.PanicLevel, message, data, nil, args...)
}

func (o *lgr) logArgs(lvl loglvl.Level, message string, data interface{}, err []error, args ...interface{}) {
	if lvl > o.GetLevel() {
		return
	}

	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}

	o.newEntry(lvl, message, err, nil, data).Log()
}

func (o *lgr) LogDetails(lvl loglvl.Level, message string, data interface{}, err []error, fields logfld.Fields, args ...interface{}) {
	if lvl > o.GetLevel() {
		return
	}

	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}

	o.newEntry(lvl, message, err, fields, data).Log()
}

func (o *lgr) CheckError(lvlKO, lvlOK loglvl.Level, message string, err ...error) bool {
	var found bool

	for _, e := range err {
		if e != nil {
			found = true
			break
		}
	}

	if found {
		o.LogDetails(lvlKO, message, nil, err, nil)
	} else if lvlOK != loglvl.NilLevel {
		o.LogDetails(lvlOK, message, nil, nil, nil)
	}

	return found
}

func (o *lgr) Entry(lvl loglvl.Level, message string, args ...interface{}) logent.Entry {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	return o.newEntry(lvl, message, nil, nil, nil)
}

// Access builds a structured entry describing one inbound connection/request, in the
// style of an HTTP access log line, for use by components serving the wire protocol.
func (o *lgr) Access(remoteAddr, remoteUser string, localtime time.Time, latency time.Duration, method, request, proto string, status int, size int64) logent.Entry {
	f := logfld.New(o.x).
		Add("remote-addr", remoteAddr).
		Add("remote-user", remoteUser).
		Add("method", method).
		Add("request", request).
		Add("proto", proto).
		Add("status", status).
		Add("size", size).
		Add("latency", latency.String())

	return o.newEntry(loglvl.InfoLevel, fmt.Sprintf("%s %s %s", method, request, proto), nil, f, nil).
		SetEntryContext(localtime, 0, "", "", 0, fmt.Sprintf("%s %s %s", method, request, proto))
}
