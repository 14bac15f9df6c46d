/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

	"github.com/sirupsen/logrus"

	loglvl "github.com/nabbar/vdms/logger/level"
)

// Entry is a single log record under construction. Fields and errors can be
// added before Log() commits it to the underlying logrus logger.
type Entry struct {
	lvl loglvl.Level
	msg string
	ent *logrus.Entry
}

// FieldAdd attaches a key/value pair to the entry.
func (e *Entry) FieldAdd(key string, value interface{}) *Entry {
	if e == nil {
		return e
	}

	e.ent = e.ent.WithField(key, value)
	return e
}

// ErrorAdd attaches one or more errors to the entry. When joined is true,
// the errors are merged under a single "error" field; otherwise each gets
// its own indexed field.
func (e *Entry) ErrorAdd(joined bool, errs ...error) *Entry {
	if e == nil {
		return e
	}

	if joined {
		var msg string
		for i, er := range errs {
			if er == nil {
				continue
			}
			if i > 0 {
				msg += "; "
			}
			msg += er.Error()
		}
		if msg != "" {
			e.ent = e.ent.WithField("error", msg)
		}
		return e
	}

	for i, er := range errs {
		if er == nil {
			continue
		}
		e.ent = e.ent.WithField(fmt.Sprintf("error_%d", i), er.Error())
	}

	return e
}

// Log commits the entry to the underlying logger at its configured level.
func (e *Entry) Log() {
	if e == nil || e.ent == nil {
		return
	}

	switch e.lvl {
	case loglvl.DebugLevel:
		e.ent.Debug(e.msg)
	case loglvl.InfoLevel:
		e.ent.Info(e.msg)
	case loglvl.WarnLevel:
		e.ent.Warn(e.msg)
	case loglvl.ErrorLevel:
		e.ent.Error(e.msg)
	case loglvl.FatalLevel:
		e.ent.Fatal(e.msg)
	case loglvl.PanicLevel:
		e.ent.Panic(e.msg)
	}
}
