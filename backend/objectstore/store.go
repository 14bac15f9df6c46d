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
	"context"
)

// Store is the handle-addressed object store every driver in this package
// satisfies; it is the concrete type handlers.SetObjectStore is given.
type Store interface {
	Put(data []byte) (handle string, err error)
	Get(handle string) ([]byte, error)
	Delete(handle string) error
}

// New opens the driver selected by cfg.Driver and returns it ready to use.
func New(ctx context.Context, cfg *Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Driver {
	case DriverFS:
		s, err := newFSStore(cfg)
		if err != nil {
			return nil, ErrorOpen.Error(err)
		}
		return s, nil

	case DriverNutsDB:
		s, err := newNutsStore(cfg)
		if err != nil {
			return nil, ErrorOpen.Error(err)
		}
		return s, nil

	case DriverS3:
		s, err := newS3Store(ctx, cfg)
		if err != nil {
			return nil, ErrorOpen.Error(err)
		}
		return s, nil
	}

	return nil, ErrorUnknownDriver.Error(nil)
}
