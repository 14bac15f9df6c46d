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

// Package notify sends operational alerts (backend error-rate spikes, backup
// completion) to operators by email: a hermes-rendered HTML body delivered
// over SMTP via go-simple-mail. A zero-value Config's Host disables notify
// entirely — callers should skip building a Notifier in that case.
package notify

import (
	liberr "github.com/nabbar/vdms/errors"
)

type Config struct {
	Host     string `mapstructure:"smtp_host" json:"smtp_host" yaml:"smtp_host" toml:"smtp_host"`
	Port     int    `mapstructure:"smtp_port" json:"smtp_port" yaml:"smtp_port" toml:"smtp_port"`
	Login    string `mapstructure:"smtp_login" json:"smtp_login" yaml:"smtp_login" toml:"smtp_login"`
	Password string `mapstructure:"smtp_password" json:"smtp_password" yaml:"smtp_password" toml:"smtp_password"`
	From     string `mapstructure:"smtp_from" json:"smtp_from" yaml:"smtp_from" toml:"smtp_from"`
	To       []string `mapstructure:"smtp_to" json:"smtp_to" yaml:"smtp_to" toml:"smtp_to"`

	// AppName and Link name the product in the rendered hermes template.
	AppName string `mapstructure:"smtp_app_name" json:"smtp_app_name" yaml:"smtp_app_name" toml:"smtp_app_name"`
	Link    string `mapstructure:"smtp_app_link" json:"smtp_app_link" yaml:"smtp_app_link" toml:"smtp_app_link"`
}

func (c *Config) Validate() liberr.Error {
	if c.Host == "" || c.Port == 0 {
		return ErrorConfigInvalid.Error(nil)
	}
	if c.From == "" || len(c.To) == 0 {
		return ErrorConfigInvalid.Error(nil)
	}
	return nil
}
