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

// Package replicate is the publish side of the autoreplication hook. The
// bundled Publisher batches ReplicationEvents and ships them to a NATS
// subject; it does not schedule which replica consumes which batch. The
// dispatcher does not call Publish: the server creates and closes the
// publisher but emits no events through it.
package replicate

import (
	"context"
	"time"
)

// ReplicationEvent is the payload a Publisher ships for one committed write.
type ReplicationEvent struct {
	Operation  string         `json:"operation"`
	Class      string         `json:"class,omitempty"`
	Handle     int64          `json:"handle,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// Publisher ships committed ReplicationEvents to whatever transport a
// deployment wires in. Close flushes any pending batch and releases the
// underlying connection.
type Publisher interface {
	Publish(ctx context.Context, event ReplicationEvent) error
	Close() error
}
