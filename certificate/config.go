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
	"os"

	liberr "github.com/nabbar/vdms/errors"
)

// Config is the file-based, mapstructure/viper-bindable description of a
// TLS material set: one certificate/key pair, optional root CAs to trust
// when dialing out, and optional client CAs plus an auth mode when this
// config is used to build a server-side listener.
type Config struct {
	// CertFile/KeyFile is the PEM certificate/key pair this endpoint presents.
	CertFile string `mapstructure:"cert_file" json:"cert_file" yaml:"cert_file" toml:"cert_file"`
	KeyFile  string `mapstructure:"key_file" json:"key_file" yaml:"key_file" toml:"key_file"`

	// RootCAFiles are trusted when this config dials a remote TLS endpoint.
	RootCAFiles []string `mapstructure:"root_ca_files" json:"root_ca_files" yaml:"root_ca_files" toml:"root_ca_files"`

	// ClientCAFiles are trusted when this config accepts client certificates.
	ClientCAFiles []string `mapstructure:"client_ca_files" json:"client_ca_files" yaml:"client_ca_files" toml:"client_ca_files"`

	// ClientAuth controls whether/how a server built from this config
	// requests and verifies a client certificate.
	ClientAuth string `mapstructure:"client_auth" json:"client_auth" yaml:"client_auth" toml:"client_auth"`
}

// Empty reports whether no material was configured at all.
func (c Config) Empty() bool {
	return c.CertFile == "" && c.KeyFile == "" && len(c.RootCAFiles) == 0 && len(c.ClientCAFiles) == 0
}

// NewFrom builds a TLSConfig from this Config. When this Config is empty and
// def is non-nil, def is returned as-is so callers can register a lazy
// server-wide default and only override it where a component needs its own
// material.
func (c Config) NewFrom(def TLSConfig) (TLSConfig, liberr.Error) {
	if c.Empty() && def != nil {
		return def, nil
	}

	out := &tlsCfg{
		clientAuth: ParseClientAuth(c.ClientAuth),
	}

	if c.CertFile != "" || c.KeyFile != "" {
		crt, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
		if err != nil {
			return nil, ErrorCertificatePairLoad.Error(err)
		}
		out.cert = []tls.Certificate{crt}
	}

	if len(c.RootCAFiles) > 0 {
		pool := x509.NewCertPool()
		for _, f := range c.RootCAFiles {
			p, err := os.ReadFile(f)
			if err != nil {
				return nil, ErrorCARootLoad.Error(err)
			}
			if !pool.AppendCertsFromPEM(p) {
				return nil, ErrorCARootLoad.Error(nil)
			}
		}
		out.root = pool
	}

	if len(c.ClientCAFiles) > 0 {
		pool := x509.NewCertPool()
		for _, f := range c.ClientCAFiles {
			p, err := os.ReadFile(f)
			if err != nil {
				return nil, ErrorCAClientLoad.Error(err)
			}
			if !pool.AppendCertsFromPEM(p) {
				return nil, ErrorCAClientLoad.Error(nil)
			}
		}
		out.clnt = pool
	}

	return out, nil
}
