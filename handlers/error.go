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

package handlers

import (
	liberr "github.com/nabbar/vdms/errors"
)

const (
	ErrorParamsDecode liberr.CodeError = iota + liberr.MinPkgHandlers
	ErrorMissingClass
	ErrorMissingRef
	ErrorBadReference
	ErrorMissingBlob
	ErrorBadFormat
	ErrorBadOperations
	ErrorMissingField
	ErrorBadRectangle
	ErrorBackendCall
	ErrorUnexpectedResult
	ErrorFTPFetch
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = liberr.ExistInMapMessage(ErrorParamsDecode)
	liberr.RegisterIdFctMessage(ErrorParamsDecode, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorParamsDecode:
		return "command body is not valid JSON for this command"
	case ErrorMissingClass:
		return "class is required and must be non-empty"
	case ErrorMissingRef:
		return "ref does not name a _ref declared earlier in this request"
	case ErrorBadReference:
		return "_ref does not resolve to a handle created earlier in this request"
	case ErrorMissingBlob:
		return "command requires one blob but none remain on the cursor"
	case ErrorBadFormat:
		return "format/codec/container is not one of the supported values"
	case ErrorBadOperations:
		return "operations pipeline contains an unsupported transform"
	case ErrorMissingField:
		return "a required field is missing from the command body"
	case ErrorBadRectangle:
		return "rectangle must supply numeric x, y, w and h"
	case ErrorBackendCall:
		return "backend operation failed"
	case ErrorUnexpectedResult:
		return "backend returned a result of the wrong type"
	case ErrorFTPFetch:
		return "from_server_file could not be fetched over FTP"
	}

	return liberr.NullMessage
}
