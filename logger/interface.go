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
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	loglvl "github.com/nabbar/vdms/logger/level"
)

// FuncLog is used for dependency injection and lazy initialization of loggers.
type FuncLog func() Logger

// Logger is the structured, leveled logger shared across the server.
// It extends io.WriteCloser so it can be plugged wherever a Go writer is
// expected (net/http ErrorLog, gorm, etc.).
type Logger interface {
	io.WriteCloser

	// SetLevel changes the minimal level of log message.
	SetLevel(lvl loglvl.Level)

	// GetLevel returns the minimal level of log message.
	GetLevel() loglvl.Level

	// SetFields sets the default fields attached to every entry.
	SetFields(fields map[string]interface{})

	// GetFields returns the default fields attached to every entry.
	GetFields() map[string]interface{}

	// Clone duplicates the logger's fields. The clone shares the underlying
	// logrus logger, so a level change on either one applies to both.
	Clone() Logger

	// Debug adds an entry at DebugLevel.
	Debug(message string, args ...interface{})

	// Info adds an entry at InfoLevel.
	Info(message string, args ...interface{})

	// Warning adds an entry at WarnLevel.
	Warning(message string, args ...interface{})

	// Error adds an entry at ErrorLevel.
	Error(message string, args ...interface{})

	// Fatal adds an entry at FatalLevel then terminates the process.
	Fatal(message string, args ...interface{})

	// Panic adds an entry at PanicLevel then panics.
	Panic(message string, args ...interface{})

	// Entry returns a detached entry the caller can enrich before logging.
	Entry(lvl loglvl.Level, message string, args ...interface{}) *Entry
}

// New returns a new Logger with InfoLevel as its default level.
func New(ctx context.Context) Logger {
	_ = ctx

	l := &lgr{
		m: sync.RWMutex{},
		r: logrus.New(),
		f: make(map[string]interface{}),
	}

	l.SetLevel(loglvl.InfoLevel)

	return l
}
