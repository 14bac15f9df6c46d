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
	liberr "github.com/nabbar/vdms/errors"
)

const (
	ErrorParamsEmpty liberr.CodeError = iota + liberr.MinPkgTransport
	ErrorInvalidMessageSize
	ErrorWriteFail
	ErrorReadFail
	ErrorConnectionShutDown
	ErrorServerAddError
	ErrorConnectionError
	ErrorSSLHandshakeFail
	ErrorListenFail
	ErrorAcceptFail
	ErrorPortInUse
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = liberr.ExistInMapMessage(ErrorParamsEmpty)
	liberr.RegisterIdFctMessage(ErrorParamsEmpty, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorParamsEmpty:
		return "given parameters are empty"
	case ErrorInvalidMessageSize:
		return "declared frame size exceeds the configured ceiling"
	case ErrorWriteFail:
		return "short write or reset while sending a frame"
	case ErrorReadFail:
		return "short read while receiving a frame"
	case ErrorConnectionShutDown:
		return "peer closed the connection before the frame completed"
	case ErrorServerAddError:
		return "invalid server address or port"
	case ErrorConnectionError:
		return "cannot connect to the remote server"
	case ErrorSSLHandshakeFail:
		return "TLS handshake failed"
	case ErrorListenFail:
		return "cannot bind/listen on the configured port"
	case ErrorAcceptFail:
		return "cannot accept an incoming connection"
	case ErrorPortInUse:
		return "configured port is already in use"
	}

	return liberr.NullMessage
}
