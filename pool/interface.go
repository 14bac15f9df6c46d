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

// Package pool implements the process-wide, bounded backend connection pool
// that every request handler borrows a connection from for the lifetime of
// one command's backend transaction.
package pool

import (
	"context"
	"time"

	liberr "github.com/nabbar/vdms/errors"
)

// TxMode mirrors the two transaction intents a caller may request.
type TxMode string

const (
	TxRead  TxMode = "r"
	TxWrite TxMode = "w"
)

// Conn is one opened backend session. It is opaque to this package; a
// GraphBackend implementation knows how to type-assert it back to its own
// concrete connection type.
type Conn interface{}

// Tx is one open backend transaction, bound to the Conn it was opened on.
type Tx interface {
	Run(query any) (any, error)
	Commit() error
	Rollback() error
}

// GraphBackend is the collaborator a BackendPool wraps: it knows how to
// open/close one raw connection and how to begin a transaction on one.
// A reference implementation lives in backend/graph; any other type
// satisfying this interface plugs in unchanged.
type GraphBackend interface {
	Dial(ctx context.Context) (Conn, error)
	Close(conn Conn) error
	BeginTx(ctx context.Context, conn Conn, timeout time.Duration, mode TxMode) (Tx, error)
	ResultsToJSON(results any) ([]byte, error)
}

// BackendPool is the process-wide bounded pool of backend connections plus
// the transaction operations every command handler drives through it.
type BackendPool interface {
	// GetConn blocks until a connection is available or ctx is done.
	GetConn(ctx context.Context) (Conn, liberr.Error)

	// PutConn returns a connection borrowed from GetConn. Safe to call once
	// per successful GetConn; never panics on an unrecognized Conn.
	PutConn(conn Conn)

	// NrAvailConn reports how many connections are currently idle in the pool.
	NrAvailConn() int

	OpenTx(ctx context.Context, conn Conn, timeout time.Duration, mode TxMode) (Tx, liberr.Error)
	RunInTx(tx Tx, query any) (any, liberr.Error)
	CommitTx(tx Tx) liberr.Error
	RollbackTx(tx Tx) liberr.Error
	ResultsToJSON(results any) ([]byte, liberr.Error)

	// Close drains and closes every connection. Safe to call once.
	Close() liberr.Error
}

// New opens size connections against backend and pre-fills the pool with
// them before returning, so GetConn never has to dial on a caller's behalf.
func New(ctx context.Context, backend GraphBackend, size int) (BackendPool, liberr.Error) {
	return newBackendPool(ctx, backend, size)
}
