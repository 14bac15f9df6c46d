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
	"sync"

	"github.com/sirupsen/logrus"

	loglvl "github.com/nabbar/vdms/logger/level"
)

type lgr struct {
	m sync.RWMutex
	r *logrus.Logger
	f map[string]interface{}
}

func (l *lgr) SetLevel(lvl loglvl.Level) {
	l.m.Lock()
	defer l.m.Unlock()

	l.r.SetLevel(lvl.Logrus())
}

func (l *lgr) GetLevel() loglvl.Level {
	l.m.RLock()
	defer l.m.RUnlock()

	switch l.r.GetLevel() {
	case logrus.DebugLevel:
		return loglvl.DebugLevel
	case logrus.InfoLevel:
		return loglvl.InfoLevel
	case logrus.WarnLevel:
		return loglvl.WarnLevel
	case logrus.ErrorLevel:
		return loglvl.ErrorLevel
	case logrus.FatalLevel:
		return loglvl.FatalLevel
	case logrus.PanicLevel:
		return loglvl.PanicLevel
	default:
		return loglvl.NilLevel
	}
}

func (l *lgr) SetFields(fields map[string]interface{}) {
	l.m.Lock()
	defer l.m.Unlock()

	f := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		f[k] = v
	}
	l.f = f
}

func (l *lgr) GetFields() map[string]interface{} {
	l.m.RLock()
	defer l.m.RUnlock()

	f := make(map[string]interface{}, len(l.f))
	for k, v := range l.f {
		f[k] = v
	}
	return f
}

func (l *lgr) Clone() Logger {
	l.m.RLock()
	defer l.m.RUnlock()

	n := &lgr{
		m: sync.RWMutex{},
		r: l.r,
		f: make(map[string]interface{}, len(l.f)),
	}

	for k, v := range l.f {
		n.f[k] = v
	}

	return n
}

func (l *lgr) Write(p []byte) (n int, err error) {
	l.Entry(loglvl.InfoLevel, string(p)).Log()
	return len(p), nil
}

func (l *lgr) Close() error {
	return nil
}

func (l *lgr) entryFields() *logrus.Entry {
	l.m.RLock()
	defer l.m.RUnlock()

	return l.r.WithFields(l.f)
}

func (l *lgr) Entry(lvl loglvl.Level, message string, args ...interface{}) *Entry {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}

	return &Entry{
		lvl: lvl,
		msg: message,
		ent: l.entryFields(),
	}
}

func (l *lgr) Debug(message string, args ...interface{}) {
	l.Entry(loglvl.DebugLevel, message, args...).Log()
}

func (l *lgr) Info(message string, args ...interface{}) {
	l.Entry(loglvl.InfoLevel, message, args...).Log()
}

func (l *lgr) Warning(message string, args ...interface{}) {
	l.Entry(loglvl.WarnLevel, message, args...).Log()
}

func (l *lgr) Error(message string, args ...interface{}) {
	l.Entry(loglvl.ErrorLevel, message, args...).Log()
}

func (l *lgr) Fatal(message string, args ...interface{}) {
	l.Entry(loglvl.FatalLevel, message, args...).Log()
}

func (l *lgr) Panic(message string, args ...interface{}) {
	l.Entry(loglvl.PanicLevel, message, args...).Log()
}
