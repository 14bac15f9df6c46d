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

package replicate

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// natsPublisher batches ReplicationEvents behind a mutex and flushes them
// to one NATS subject on a ticker, coalescing bursts of commits into a
// single publish instead of one round-trip per event.
type natsPublisher struct {
	cfg *Config
	nc  *nats.Conn

	m       sync.Mutex
	batch   []ReplicationEvent
	stopped chan struct{}
	wg      sync.WaitGroup
}

// New dials the configured NATS server and starts the background flush
// ticker. Callers are expected to call Close on shutdown.
func New(cfg *Config) (Publisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	nc, err := nats.Connect(cfg.URL)
	if err != nil {
		return nil, ErrorConnect.Error(err)
	}

	p := &natsPublisher{
		cfg:     cfg,
		nc:      nc,
		batch:   make([]ReplicationEvent, 0, cfg.batchSize()),
		stopped: make(chan struct{}),
	}

	p.wg.Add(1)
	go p.run()

	return p, nil
}

func (p *natsPublisher) run() {
	defer p.wg.Done()

	t := time.NewTicker(p.cfg.interval())
	defer t.Stop()

	for {
		select {
		case <-t.C:
			_ = p.flush()
		case <-p.stopped:
			_ = p.flush()
			return
		}
	}
}

func (p *natsPublisher) Publish(_ context.Context, event ReplicationEvent) error {
	p.m.Lock()
	defer p.m.Unlock()

	p.batch = append(p.batch, event)

	if len(p.batch) >= p.cfg.batchSize() {
		return p.flushLocked()
	}

	return nil
}

func (p *natsPublisher) flush() error {
	p.m.Lock()
	defer p.m.Unlock()

	return p.flushLocked()
}

func (p *natsPublisher) flushLocked() error {
	if len(p.batch) == 0 {
		return nil
	}

	payload, err := json.Marshal(p.batch)
	if err != nil {
		return ErrorEncode.Error(err)
	}

	if err = p.nc.Publish(p.cfg.Unit, payload); err != nil {
		return ErrorPublish.Error(err)
	}

	p.batch = p.batch[:0]
	return nil
}

func (p *natsPublisher) Close() error {
	close(p.stopped)
	p.wg.Wait()
	p.nc.Close()
	return nil
}
