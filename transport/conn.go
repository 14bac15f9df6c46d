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

package transport

import (
	"crypto/tls"
	"net"
	"sync"

	liberr "github.com/nabbar/vdms/errors"
)

// Connection owns exactly one socket (plain or TLS). It is not safe to copy:
// pass a *Connection, never a Connection value. Close is idempotent.
type Connection struct {
	m   sync.Mutex
	raw net.Conn
	buf []byte
	max uint32
}

// newConnection wraps an already-connected/accepted net.Conn. If tlsCfg is
// non-nil, the TLS handshake required by spec (server auth, client auth when
// a CA is configured) must already have completed on raw before this is
// called: a *tls.Conn started lazily would defer the handshake to the first
// Read/Write, masking handshake failures as ordinary I/O errors.
func newConnection(raw net.Conn, maxFrame uint32) *Connection {
	return &Connection{
		raw: raw,
		max: maxFrame,
	}
}

// WrapConn exposes newConnection for callers that already hold a net.Conn
// they dialed or accepted themselves (tests, alternate listeners).
func WrapConn(raw net.Conn, maxFrame uint32) *Connection {
	return newConnection(raw, maxFrame)
}

// Send writes one length-prefixed frame.
func (c *Connection) Send(payload []byte) liberr.Error {
	c.m.Lock()
	defer c.m.Unlock()

	if c.raw == nil {
		return ErrorConnectionShutDown.Error(nil)
	}

	return writeFrame(c.raw, payload)
}

// Receive reads one length-prefixed frame. The returned slice aliases this
// Connection's internal buffer and is valid only until the next Receive.
func (c *Connection) Receive() ([]byte, liberr.Error) {
	c.m.Lock()
	defer c.m.Unlock()

	if c.raw == nil {
		return nil, ErrorConnectionShutDown.Error(nil)
	}

	buf, err := readFrame(c.raw, c.max, c.buf)
	if err != nil {
		return nil, err
	}

	c.buf = buf

	return buf, nil
}

// Close issues a TLS close-notify (when applicable) and closes the socket.
// It is safe to call more than once.
func (c *Connection) Close() liberr.Error {
	c.m.Lock()
	defer c.m.Unlock()

	if c.raw == nil {
		return nil
	}

	if t, ok := c.raw.(*tls.Conn); ok {
		_ = t.CloseWrite()
	}

	err := c.raw.Close()
	c.raw = nil

	if err != nil {
		return ErrorConnectionError.Error(err)
	}

	return nil
}

// LocalAddr returns the local endpoint, or nil if the connection is closed.
func (c *Connection) LocalAddr() net.Addr {
	c.m.Lock()
	defer c.m.Unlock()

	if c.raw == nil {
		return nil
	}

	return c.raw.LocalAddr()
}

// RemoteAddr returns the peer endpoint, or nil if the connection is closed.
func (c *Connection) RemoteAddr() net.Addr {
	c.m.Lock()
	defer c.m.Unlock()

	if c.raw == nil {
		return nil
	}

	return c.raw.RemoteAddr()
}

// IsTLS reports whether this connection is running over a TLS session.
func (c *Connection) IsTLS() bool {
	c.m.Lock()
	defer c.m.Unlock()

	if c.raw == nil {
		return false
	}

	_, ok := c.raw.(*tls.Conn)
	return ok
}
