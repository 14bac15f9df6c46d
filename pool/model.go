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
	"context"
	"sync"
	"sync/atomic"
	"time"

	liberr "github.com/nabbar/vdms/errors"
	libepool "github.com/nabbar/vdms/errors/pool"
)

// backendPool is a fixed-size, channel-based pool: size connections are
// dialed once at New and handed out/returned through a buffered channel, so
// GetConn/PutConn block and unblock naturally instead of needing their own
// condition variable.
type backendPool struct {
	m       sync.RWMutex
	backend GraphBackend
	conns   chan Conn
	closed  atomic.Bool
	size    int32
	avail   atomic.Int32
}

func newBackendPool(ctx context.Context, backend GraphBackend, size int) (*backendPool, liberr.Error) {
	if backend == nil || size <= 0 {
		return nil, ErrorParamsEmpty.Error(nil)
	}

	p := &backendPool{
		backend: backend,
		conns:   make(chan Conn, size),
		size:    int32(size),
	}

	for i := 0; i < size; i++ {
		c, err := backend.Dial(ctx)
		if err != nil {
			dErr := ErrorDialFail.Error(err)
			if cErr := p.drain(); cErr != nil {
				dErr.Add(ErrorCloseFail.Error(cErr))
			}
			return nil, dErr
		}
		p.conns <- c
		p.avail.Add(1)
	}

	return p, nil
}

// drain closes every connection already dialed into the channel, collecting
// any Close failures in an error pool instead of discarding them.
func (p *backendPool) drain() error {
	errs := libepool.New()

	for {
		select {
		case c := <-p.conns:
			errs.Add(p.backend.Close(c))
		default:
			return errs.Error()
		}
	}
}

func (p *backendPool) GetConn(ctx context.Context) (Conn, liberr.Error) {
	if p.closed.Load() {
		return nil, ErrorPoolClosed.Error(nil)
	}

	select {
	case c, ok := <-p.conns:
		if !ok {
			return nil, ErrorPoolClosed.Error(nil)
		}
		p.avail.Add(-1)
		return c, nil
	case <-ctx.Done():
		return nil, ErrorPoolExhausted.Error(ctx.Err())
	}
}

func (p *backendPool) PutConn(conn Conn) {
	if conn == nil || p.closed.Load() {
		return
	}

	p.m.RLock()
	defer p.m.RUnlock()

	if p.closed.Load() {
		return
	}

	select {
	case p.conns <- conn:
		p.avail.Add(1)
	default:
		// pool already holds size idle connections; this one is surplus.
		_ = p.backend.Close(conn)
	}
}

func (p *backendPool) NrAvailConn() int {
	return int(p.avail.Load())
}

func (p *backendPool) OpenTx(ctx context.Context, conn Conn, timeout time.Duration, mode TxMode) (Tx, liberr.Error) {
	if conn == nil {
		return nil, ErrorUnknownConn.Error(nil)
	}

	tctx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		tctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	tx, err := p.backend.BeginTx(tctx, conn, timeout, mode)
	if err != nil {
		return nil, ErrorTxBeginFail.Error(err)
	}

	return tx, nil
}

func (p *backendPool) RunInTx(tx Tx, query any) (any, liberr.Error) {
	if tx == nil {
		return nil, ErrorUnknownConn.Error(nil)
	}

	res, err := tx.Run(query)
	if err != nil {
		return nil, ErrorTxRunFail.Error(err)
	}

	return res, nil
}

func (p *backendPool) CommitTx(tx Tx) liberr.Error {
	if tx == nil {
		return ErrorUnknownConn.Error(nil)
	}

	if err := tx.Commit(); err != nil {
		return ErrorTxCommitFail.Error(err)
	}

	return nil
}

func (p *backendPool) RollbackTx(tx Tx) liberr.Error {
	if tx == nil {
		return ErrorUnknownConn.Error(nil)
	}

	if err := tx.Rollback(); err != nil {
		return ErrorTxRollbackFail.Error(err)
	}

	return nil
}

func (p *backendPool) ResultsToJSON(results any) ([]byte, liberr.Error) {
	b, err := p.backend.ResultsToJSON(results)
	if err != nil {
		return nil, ErrorResultsEncode.Error(err)
	}

	return b, nil
}

func (p *backendPool) Close() liberr.Error {
	p.m.Lock()
	defer p.m.Unlock()

	if p.closed.Swap(true) {
		return nil
	}

	close(p.conns)

	var e liberr.Error
	for c := range p.conns {
		if err := p.backend.Close(c); err != nil {
			if e == nil {
				e = ErrorCloseFail.Error(err)
			} else {
				e.Add(ErrorCloseFail.Error(err))
			}
		}
	}

	return e
}
