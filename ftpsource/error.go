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
	liberr "github.com/nabbar/vdms/errors"
)

const (
	ErrorBadURL liberr.CodeError = iota + liberr.MinPkgFTPSource
	ErrorUnsupportedScheme
	ErrorConnect
	ErrorRetrieve
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = liberr.ExistInMapMessage(ErrorBadURL)
	liberr.RegisterIdFctMessage(ErrorBadURL, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorBadURL:
		return "from_server_file is not a valid URL"
	case ErrorUnsupportedScheme:
		return "from_server_file must use the ftp scheme"
	case ErrorConnect:
		return "cannot connect to the FTP server named by from_server_file"
	case ErrorRetrieve:
		return "cannot retrieve the file named by from_server_file"
	}

	return liberr.NullMessage
}
