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

// Package ftpsource resolves from_server_file references on AddImage and
// AddVideo: a URL naming a file on a remote FTP server, fetched in place of
// a blob on the request's cursor. It is a thin, per-request wrapper around
// the ftpclient package — one short-lived connection per fetch, since
// from_server_file is expected to be rare next to the normal blob path,
// not a sustained transfer workload.
package ftpsource

import (
	"time"

	liberr "github.com/nabbar/vdms/errors"
)

// Config supplies the connection defaults used when a from_server_file URL
// does not carry its own credentials.
type Config struct {
	DefaultLogin    string        `mapstructure:"default_login" json:"default_login" yaml:"default_login" toml:"default_login"`
	DefaultPassword string        `mapstructure:"default_password" json:"default_password" yaml:"default_password" toml:"default_password"`
	ConnTimeout     time.Duration `mapstructure:"conn_timeout" json:"conn_timeout" yaml:"conn_timeout" toml:"conn_timeout"`
	ForceTLS        bool          `mapstructure:"force_tls" json:"force_tls" yaml:"force_tls" toml:"force_tls"`
}

func (c *Config) Validate() liberr.Error {
	return nil
}
