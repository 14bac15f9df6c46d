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

package certificate

import (
	"crypto/tls"
	"crypto/x509"
	"sync"
)

type tlsCfg struct {
	m sync.RWMutex

	cert []tls.Certificate
	root *x509.CertPool
	clnt *x509.CertPool

	clientAuth ClientAuth
}

func (c *tlsCfg) Clone() TLSConfig {
	c.m.RLock()
	defer c.m.RUnlock()

	n := &tlsCfg{
		cert:       make([]tls.Certificate, len(c.cert)),
		clientAuth: c.clientAuth,
	}

	copy(n.cert, c.cert)

	if c.root != nil {
		n.root = c.root.Clone()
	}

	if c.clnt != nil {
		n.clnt = c.clnt.Clone()
	}

	return n
}

func (c *tlsCfg) TlsConfig(serverName string) *tls.Config {
	c.m.RLock()
	defer c.m.RUnlock()

	return &tls.Config{
		ServerName:       serverName,
		Certificates:     c.cert,
		RootCAs:          c.root,
		ClientCAs:        c.clnt,
		ClientAuth:       c.clientAuth.TLS(),
		MinVersion:       tls.VersionTLS12,
	}
}
