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

// Package certificate loads certificate/key/CA material from files and turns
// it into a crypto/tls.Config, including the mutual-TLS client-auth modes the
// transport listeners need. It intentionally does not carry a full
// cipher-suite/curve/multi-format surface: VDMS only ever needs file-based
// material and a client-auth mode.
package certificate

import (
	"crypto/tls"
)

// TLSConfig is a resolved, ready-to-use TLS material set.
type TLSConfig interface {
	// TlsConfig returns a *tls.Config for the given server name (SNI). The
	// serverName may be empty.
	TlsConfig(serverName string) *tls.Config

	// Clone returns an independent copy.
	Clone() TLSConfig
}

var Default = New()

// New returns an empty TLSConfig (no certificate, no CA, ClientAuthNone).
func New() TLSConfig {
	return &tlsCfg{
		clientAuth: ClientAuthNone,
	}
}
