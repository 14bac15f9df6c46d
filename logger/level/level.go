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

// Package level defines the severity scale shared by every logger instance.
package level

import (
	"math"
	"strings"

	"github.com/sirupsen/logrus"
)

// Level is a logging severity, ordered from most severe (PanicLevel) to
// least severe (DebugLevel). NilLevel disables logging entirely.
type Level uint8

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	NilLevel
)

func (l Level) Uint8() uint8 {
	return uint8(l)
}

func (l Level) Int() int {
	return int(l)
}

func (l Level) String() string {
	//nolint exhaustive
	switch l {
	case DebugLevel:
		return "Debug"
	case InfoLevel:
		return "Info"
	case WarnLevel:
		return "Warning"
	case ErrorLevel:
		return "Error"
	case FatalLevel:
		return "Fatal"
	case PanicLevel:
		return "Critical"
	case NilLevel:
		return ""
	}

	return "unknown"
}

func (l Level) Code() string {
	//nolint exhaustive
	switch l {
	case DebugLevel:
		return "Debug"
	case InfoLevel:
		return "Info"
	case WarnLevel:
		return "Warn"
	case ErrorLevel:
		return "Err"
	case FatalLevel:
		return "Fatal"
	case PanicLevel:
		return "Crit"
	case NilLevel:
		return ""
	}

	return "unknown"
}

// Logrus maps the level to its logrus equivalent. NilLevel and unknown
// values map to math.MaxInt32, which disables logging on the wrapped logger.
func (l Level) Logrus() logrus.Level {
	switch l {
	case DebugLevel:
		return logrus.DebugLevel
	case InfoLevel:
		return logrus.InfoLevel
	case WarnLevel:
		return logrus.WarnLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case FatalLevel:
		return logrus.FatalLevel
	case PanicLevel:
		return logrus.PanicLevel
	default:
		return math.MaxInt32
	}
}

// ListLevels returns the lowercase names of every parseable level.
func ListLevels() []string {
	return []string{
		strings.ToLower(PanicLevel.String()),
		strings.ToLower(FatalLevel.String()),
		strings.ToLower(ErrorLevel.String()),
		strings.ToLower(WarnLevel.String()),
		strings.ToLower(InfoLevel.String()),
		strings.ToLower(DebugLevel.String()),
	}
}

// Parse is case-insensitive and accepts either the full name or the short
// code. Unrecognized input falls back to InfoLevel.
func Parse(l string) Level {
	switch {
	case strings.EqualFold(PanicLevel.String(), l), strings.EqualFold(PanicLevel.Code(), l):
		return PanicLevel
	case strings.EqualFold(FatalLevel.String(), l), strings.EqualFold(FatalLevel.Code(), l):
		return FatalLevel
	case strings.EqualFold(ErrorLevel.String(), l), strings.EqualFold(ErrorLevel.Code(), l):
		return ErrorLevel
	case strings.EqualFold(WarnLevel.String(), l), strings.EqualFold(WarnLevel.Code(), l):
		return WarnLevel
	case strings.EqualFold(InfoLevel.String(), l), strings.EqualFold(InfoLevel.Code(), l):
		return InfoLevel
	case strings.EqualFold(DebugLevel.String(), l), strings.EqualFold(DebugLevel.Code(), l):
		return DebugLevel
	}

	return InfoLevel
}
