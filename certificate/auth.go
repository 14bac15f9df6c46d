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
	"strings"
)

// ClientAuth mirrors crypto/tls.ClientAuthType as a string so it can be set
// from a configuration file without pulling the tls package into mapstructure
// tags.
type ClientAuth string

const (
	ClientAuthNone              ClientAuth = "none"
	ClientAuthRequest           ClientAuth = "request"
	ClientAuthRequireAny        ClientAuth = "require-any"
	ClientAuthVerifyIfGiven     ClientAuth = "verify-if-given"
	ClientAuthRequireAndVerify  ClientAuth = "require-and-verify"
)

// ParseClientAuth is case-insensitive; an unrecognized value falls back to
// ClientAuthNone.
func ParseClientAuth(s string) ClientAuth {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ClientAuthRequest):
		return ClientAuthRequest
	case string(ClientAuthRequireAny):
		return ClientAuthRequireAny
	case string(ClientAuthVerifyIfGiven):
		return ClientAuthVerifyIfGiven
	case string(ClientAuthRequireAndVerify):
		return ClientAuthRequireAndVerify
	default:
		return ClientAuthNone
	}
}

func (a ClientAuth) TLS() tls.ClientAuthType {
	switch a {
	case ClientAuthRequest:
		return tls.RequestClientCert
	case ClientAuthRequireAny:
		return tls.RequireAnyClientCert
	case ClientAuthVerifyIfGiven:
		return tls.VerifyClientCertIfGiven
	case ClientAuthRequireAndVerify:
		return tls.RequireAndVerifyClientCert
	default:
		return tls.NoClientCert
	}
}
