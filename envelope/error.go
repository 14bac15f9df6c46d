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

package envelope

import (
	liberr "github.com/nabbar/vdms/errors"
)

const (
	ErrorParamsEmpty liberr.CodeError = iota + liberr.MinPkgEnvelope
	ErrorBadEnvelope
	ErrorJSONDecode
	ErrorJSONEncode
	ErrorCBOREncode
	ErrorCBORDecode
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
	case ErrorBadEnvelope:
		return "envelope is missing its JSON payload"
	case ErrorJSONDecode:
		return "cannot decode the envelope's JSON text"
	case ErrorJSONEncode:
		return "cannot encode the response's JSON text"
	case ErrorCBOREncode:
		return "cannot CBOR-encode the envelope"
	case ErrorCBORDecode:
		return "cannot CBOR-decode the envelope"
	}

	return liberr.NullMessage
}
