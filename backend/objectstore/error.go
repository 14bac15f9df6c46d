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

package objectstore

import (
	liberr "github.com/nabbar/vdms/errors"
)

const (
	ErrorConfigInvalid liberr.CodeError = iota + liberr.MinPkgBackendObject
	ErrorUnknownDriver
	ErrorOpen
	ErrorPut
	ErrorGet
	ErrorDelete
	ErrorNotFound
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = liberr.ExistInMapMessage(ErrorConfigInvalid)
	liberr.RegisterIdFctMessage(ErrorConfigInvalid, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorConfigInvalid:
		return "object store configuration is invalid"
	case ErrorUnknownDriver:
		return "driver must be one of fs, nutsdb, s3"
	case ErrorOpen:
		return "cannot open the object store backend"
	case ErrorPut:
		return "cannot write an object to the backend"
	case ErrorGet:
		return "cannot read an object from the backend"
	case ErrorDelete:
		return "cannot delete an object from the backend"
	case ErrorNotFound:
		return "no object exists for this handle"
	}

	return liberr.NullMessage
}
