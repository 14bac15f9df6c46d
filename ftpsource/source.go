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

package ftpsource

import (
	"context"
	"io"
	"net/url"

	libtls "github.com/nabbar/vdms/certificate"
	libftc "github.com/nabbar/vdms/ftpclient"
)

// Source fetches the bytes named by a from_server_file URL.
type Source interface {
	Fetch(rawURL string) ([]byte, error)
}

type source struct {
	cfg *Config
}

// New builds a Source that opens one short-lived ftpclient connection per
// Fetch, using cfg's defaults for any credential the URL itself omits.
func New(cfg *Config) Source {
	return &source{cfg: cfg}
}

func (s *source) dial(host, login, password string) (libftc.FTPClient, error) {
	fc := &libftc.Config{
		Hostname:    host,
		Login:       login,
		Password:    password,
		ConnTimeout: s.cfg.ConnTimeout,
		ForceTLS:    s.cfg.ForceTLS,
	}
	fc.RegisterContext(func() context.Context { return context.Background() })
	fc.RegisterDefaultTLS(func() libtls.TLSConfig { return libtls.Default })

	cli, err := libftc.New(fc)
	if err != nil {
		return nil, ErrorConnect.Error(err)
	}
	return cli, nil
}

func (s *source) Fetch(rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, ErrorBadURL.Error(err)
	}
	if u.Scheme != "ftp" {
		return nil, ErrorUnsupportedScheme.Error(nil)
	}

	login := s.cfg.DefaultLogin
	password := s.cfg.DefaultPassword
	if u.User != nil {
		login = u.User.Username()
		if p, ok := u.User.Password(); ok {
			password = p
		}
	}

	host := u.Host
	if u.Port() == "" {
		host += ":21"
	}

	cli, err := s.dial(host, login, password)
	if err != nil {
		return nil, err
	}
	defer cli.Close()

	resp, err := cli.Retr(u.Path)
	if err != nil {
		return nil, ErrorRetrieve.Error(err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, ErrorRetrieve.Error(err)
	}

	return data, nil
}
