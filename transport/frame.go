/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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

// Package transport implements the length-prefixed wire framing and the
// TCP/TLS connection objects (ConnServer, ConnClient) that carry envelopes
// between clients and this server.
package transport

import (
	"encoding/binary"
	"errors"
	"io"

	liberr "github.com/nabbar/vdms/errors"
)

const (
	// DefaultMaxFrameSize is the buffer ceiling applied when a Connection is
	// not given an explicit one.
	DefaultMaxFrameSize uint32 = 32 << 20

	// HardMaxFrameSize is the largest ceiling a caller may configure.
	HardMaxFrameSize uint32 = 1 << 30

	lengthPrefixSize = 4
)

// writeFrame writes the length-prefixed frame described by spec: a
// little-endian uint32 length followed by exactly that many payload bytes.
// A short write or any I/O error fails ErrorWriteFail.
func writeFrame(w io.Writer, payload []byte) liberr.Error {
	if len(payload) == 0 {
		return ErrorInvalidMessageSize.Error(nil)
	}

	var hdr [lengthPrefixSize]byte
	binary.LittleEndian.PutUint32(hdr[:], uint32(len(payload)))

	if n, err := w.Write(hdr[:]); err != nil || n != lengthPrefixSize {
		return ErrorWriteFail.Error(err)
	}

	total := 0
	for total < len(payload) {
		n, err := w.Write(payload[total:])
		if err != nil {
			return ErrorWriteFail.Error(err)
		}
		if n == 0 {
			return ErrorWriteFail.Error(nil)
		}
		total += n
	}

	return nil
}

// readFrame reads one length-prefixed frame. buf is reused when it has
// enough capacity; the returned slice aliases buf and is only valid until
// the next call with the same buf. maxSize bounds the declared length;
// zero selects DefaultMaxFrameSize.
func readFrame(r io.Reader, maxSize uint32, buf []byte) ([]byte, liberr.Error) {
	if maxSize == 0 {
		maxSize = DefaultMaxFrameSize
	} else if maxSize > HardMaxFrameSize {
		maxSize = HardMaxFrameSize
	}

	var hdr [lengthPrefixSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrorConnectionShutDown.Error(err)
		}
		return nil, ErrorReadFail.Error(err)
	}

	size := binary.LittleEndian.Uint32(hdr[:])
	if size == 0 {
		return nil, ErrorInvalidMessageSize.Error(nil)
	}
	if size > maxSize {
		return nil, ErrorInvalidMessageSize.Error(nil)
	}

	if cap(buf) < int(size) {
		buf = make([]byte, size)
	} else {
		buf = buf[:size]
	}

	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrorConnectionShutDown.Error(err)
		}
		return nil, ErrorReadFail.Error(err)
	}

	return buf, nil
}
