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

package main

import (
	"context"
	"time"

	libgraph "github.com/nabbar/vdms/backend/graph"
	libcfg "github.com/nabbar/vdms/config"
	libgorm "github.com/nabbar/vdms/database/gorm"
	liberr "github.com/nabbar/vdms/errors"
	liblog "github.com/nabbar/vdms/logger"
	libpool "github.com/nabbar/vdms/pool"
)

// dial loads the server's config file and opens a single-connection pool
// against the same backend the server itself uses, for the status and
// backup commands.
func dial(ctx context.Context, path string) (libcfg.Settings, libpool.BackendPool, liberr.Error) {
	log := liblog.New(ctx)
	logFn := func() liblog.Logger { return log }

	cfg := libcfg.New(logFn)
	if err := cfg.Load(path); err != nil {
		return libcfg.Settings{}, nil, err
	}
	set := cfg.Settings()

	gormCfg := &libgorm.Config{
		Driver: libgorm.DriverFromString(set.GraphDriver),
		DSN:    set.GraphDSN,
	}
	gormCfg.RegisterContext(ctx)
	gormCfg.RegisterLogger(logFn, true, 200*time.Millisecond)

	backend, err := libgraph.New(gormCfg)
	if err != nil {
		return set, nil, err
	}

	bp, err := libpool.New(ctx, backend, 1)
	if err != nil {
		return set, nil, err
	}

	return set, bp, nil
}
