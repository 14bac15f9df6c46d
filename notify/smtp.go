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

package notify

import (
	simple "github.com/xhit/go-simple-mail"
)

func (c *Config) dial() (*simple.SMTPClient, error) {
	server := simple.NewSMTPClient()
	server.Host = c.Host
	server.Port = c.Port
	server.Username = c.Login
	server.Password = c.Password
	server.Encryption = simple.EncryptionSTARTTLS

	client, err := server.Connect()
	if err != nil {
		return nil, ErrorConnect.Error(err)
	}
	return client, nil
}

func (c *Config) deliver(client *simple.SMTPClient, subject, html, plain string) error {
	email := simple.NewMSG()
	email.SetFrom(c.From).
		AddTo(c.To...).
		SetSubject(subject)

	email.SetBody(simple.TextHTML, html)
	email.AddAlternative(simple.TextPlain, plain)

	if email.Error != nil {
		return ErrorSend.Error(email.Error)
	}

	if err := email.Send(client); err != nil {
		return ErrorSend.Error(err)
	}

	return nil
}
