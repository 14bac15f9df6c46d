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
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	libtls "github.com/nabbar/vdms/certificate"
	liberr "github.com/nabbar/vdms/errors"
	liblog "github.com/nabbar/vdms/logger"
)

// connQueueDepth is the minimum accept backlog required. Go's net.Listen
// does not expose a portable backlog knob; the OS default backlog on any
// modern kernel already exceeds this, so it is documented here rather than
// forced through a raw syscall.
const connQueueDepth = 2048

// ConnServer listens on one TCP port and hands out accepted Connections,
// optionally performing a TLS handshake before Accept returns.
type ConnServer interface {
	// Listen binds the configured port. It is a no-error once Accept can be called.
	Listen() liberr.Error

	// Accept blocks for the next client connection. If TLS is configured the
	// handshake happens here; a handshake failure fails this call but the
	// listening socket remains usable for the next Accept.
	Accept() (*Connection, liberr.Error)

	IsRunning() bool

	// WaitNotify blocks until SIGINT/SIGTERM/SIGQUIT, then shuts the server down.
	WaitNotify()

	Shutdown() liberr.Error
}

type connServer struct {
	run atomic.Bool

	port     int
	maxFrame uint32
	tls      libtls.TLSConfig
	log      liblog.FuncLog

	lst net.Listener
}

// NewConnServer returns a ConnServer bound to the given port. tlsCfg may be
// nil for plain TCP. maxFrame of 0 selects DefaultMaxFrameSize.
func NewConnServer(port int, tlsCfg libtls.TLSConfig, maxFrame uint32, log liblog.FuncLog) ConnServer {
	return &connServer{
		port:     port,
		maxFrame: maxFrame,
		tls:      tlsCfg,
		log:      log,
	}
}

func (s *connServer) logger() liblog.Logger {
	if s.log == nil {
		return nil
	}
	return s.log()
}

func (s *connServer) Listen() liberr.Error {
	if s.port <= 0 || s.port > 65535 {
		return ErrorServerAddError.Error(nil)
	}

	lst, err := net.Listen("tcp4", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return ErrorListenFail.Error(err)
	}

	s.lst = lst
	s.run.Store(true)

	if l := s.logger(); l != nil {
		l.Info("listening on port %d", s.port)
	}

	return nil
}

func (s *connServer) IsRunning() bool {
	return s.run.Load()
}

func (s *connServer) Accept() (*Connection, liberr.Error) {
	if s.lst == nil {
		return nil, ErrorListenFail.Error(nil)
	}

	raw, err := s.lst.Accept()
	if err != nil {
		return nil, ErrorAcceptFail.Error(err)
	}

	if s.tls != nil {
		tc := s.tls.TlsConfig("")
		tconn := tlsServer(raw, tc)

		if hErr := tlsHandshake(tconn); hErr != nil {
			_ = raw.Close()
			return nil, ErrorSSLHandshakeFail.Error(hErr)
		}

		return newConnection(tconn, s.maxFrame), nil
	}

	return newConnection(raw, s.maxFrame), nil
}

func (s *connServer) WaitNotify() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	<-quit

	_ = s.Shutdown()
}

func (s *connServer) Shutdown() liberr.Error {
	s.run.Store(false)

	if s.lst == nil {
		return nil
	}

	if l := s.logger(); l != nil {
		l.Info("shutting down listener on port %d", s.port)
	}

	err := s.lst.Close()
	s.lst = nil

	if err != nil {
		return ErrorListenFail.Error(err)
	}

	return nil
}
