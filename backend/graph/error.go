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

package graph

import (
	liberr "github.com/nabbar/vdms/errors"
)

const (
	ErrorMigrate liberr.CodeError = iota + liberr.MinPkgBackendGraph
	ErrorBeginTx
	ErrorEncodeProperties
	ErrorDecodeProperties
	ErrorQueryFailed
	ErrorNodeNotFound
	ErrorUniqueViolation
	ErrorUnsupportedOperation
	ErrorUnsupportedResult
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = liberr.ExistInMapMessage(ErrorMigrate)
	liberr.RegisterIdFctMessage(ErrorMigrate, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorMigrate:
		return "cannot migrate the node/edge schema on this database"
	case ErrorBeginTx:
		return "cannot begin a backend transaction"
	case ErrorEncodeProperties:
		return "cannot encode properties to the stored JSON representation"
	case ErrorDecodeProperties:
		return "cannot decode a row's stored JSON properties"
	case ErrorQueryFailed:
		return "backend query failed"
	case ErrorNodeNotFound:
		return "referenced node handle does not exist"
	case ErrorUniqueViolation:
		return "a node already exists matching this unique constraint"
	case ErrorUnsupportedOperation:
		return "operation type is not supported by this backend"
	case ErrorUnsupportedResult:
		return "internal result type assertion failed"
	}

	return liberr.NullMessage
}
