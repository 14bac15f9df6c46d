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
	"time"

	libtls "github.com/nabbar/vdms/certificate"
	liberr "github.com/nabbar/vdms/errors"
)

// DialConnClient resolves addr:port, connects, and performs the TLS
// handshake (when tlsCfg is non-nil) before returning. Construction either
// fully succeeds or fails with a typed error; there is no partially-built
// Connection to clean up afterward.
func DialConnClient(addr string, port int, tlsCfg libtls.TLSConfig, timeout time.Duration, maxFrame uint32) (*Connection, liberr.Error) {
	if addr == "" || port <= 0 || port > 65535 {
		return nil, ErrorServerAddError.Error(nil)
	}

	dialer := net.Dialer{Timeout: timeout}

	raw, err := dialer.Dial("tcp4", fmt.Sprintf("%s:%d", addr, port))
	if err != nil {
		return nil, ErrorConnectionError.Error(err)
	}

	if tlsCfg != nil {
		tconn := tlsClient(raw, tlsCfg.TlsConfig(addr))

		if hErr := tlsHandshake(tconn); hErr != nil {
			_ = raw.Close()
			return nil, ErrorSSLHandshakeFail.Error(hErr)
		}

		return newConnection(tconn, maxFrame), nil
	}

	return newConnection(raw, maxFrame), nil
}
