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

// Package dispatch implements the per-request command-tag to handler-function
// table: it parses a command array, opens one backend transaction, runs each
// command's handler in order against a shared per-request context, and
// aborts the whole request the moment a handler reports an unrecoverable
// error.
package dispatch

import (
	libpool "github.com/nabbar/vdms/pool"
)

// Context is the per-request state every handler in a single command array
// shares: the _ref → backend-handle map, the blob cursor, and the backend
// connection/transaction the request runs inside.
type Context struct {
	Pool libpool.BackendPool
	Conn libpool.Conn
	Tx   libpool.Tx

	blobs     [][]byte
	cursor    int
	refs      map[int64]int64
	respBlobs [][]byte
}

func newContext(p libpool.BackendPool, conn libpool.Conn, tx libpool.Tx, blobs [][]byte) *Context {
	return &Context{
		Pool:  p,
		Conn:  conn,
		Tx:    tx,
		blobs: blobs,
		refs:  make(map[int64]int64),
	}
}

// NextBlob returns the next unconsumed blob and advances the cursor. ok is
// false when the cursor is already past the end of the blob list.
func (c *Context) NextBlob() (blob []byte, ok bool) {
	if c.cursor >= len(c.blobs) {
		return nil, false
	}

	blob = c.blobs[c.cursor]
	c.cursor++

	return blob, true
}

// BlobsConsumed reports whether every blob attached to the request was
// claimed by some handler's NextBlob call.
func (c *Context) BlobsConsumed() bool {
	return c.cursor == len(c.blobs)
}

// BindRef records that _ref resolves to handle for the remainder of this
// request only; it is never visible to a later, distinct request.
func (c *Context) BindRef(ref int64, handle int64) {
	c.refs[ref] = handle
}

// ResolveRef looks up a _ref bound earlier in this same request.
func (c *Context) ResolveRef(ref int64) (handle int64, ok bool) {
	handle, ok = c.refs[ref]
	return handle, ok
}

// AppendResponseBlob adds bytes to the response blob list, in match order,
// for a find command whose projection requested "blob": true.
func (c *Context) AppendResponseBlob(b []byte) {
	c.respBlobs = append(c.respBlobs, b)
}
