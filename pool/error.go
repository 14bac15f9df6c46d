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

package pool

import (
	liberr "github.com/nabbar/vdms/errors"
)

const (
	ErrorParamsEmpty liberr.CodeError = iota + liberr.MinPkgPool
	ErrorPoolClosed
	ErrorPoolExhausted
	ErrorDialFail
	ErrorCloseFail
	ErrorTxBeginFail
	ErrorTxRunFail
	ErrorTxCommitFail
	ErrorTxRollbackFail
	ErrorResultsEncode
	ErrorUnknownConn
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
	case ErrorPoolClosed:
		return "connection pool is closed"
	case ErrorPoolExhausted:
		return "no connection became available before the context was done"
	case ErrorDialFail:
		return "cannot open a new backend connection"
	case ErrorCloseFail:
		return "cannot close a backend connection"
	case ErrorTxBeginFail:
		return "cannot begin a backend transaction"
	case ErrorTxRunFail:
		return "backend query execution failed"
	case ErrorTxCommitFail:
		return "cannot commit a backend transaction"
	case ErrorTxRollbackFail:
		return "cannot roll back a backend transaction"
	case ErrorResultsEncode:
		return "cannot encode backend results to JSON"
	case ErrorUnknownConn:
		return "connection was not issued by this pool"
	}

	return liberr.NullMessage
}
