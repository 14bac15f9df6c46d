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

// Package graph is the reference GraphBackend: it stores nodes and edges as
// two plain relational tables (class label plus a JSON properties blob) and
// answers constraint-bearing queries by narrowing with SQL on class first,
// then evaluating the full predicate tree with query.Matches in memory. The
// same code runs unchanged against every driver database/gorm supports
// (sqlite is the zero-configuration default; mysql, psql, sqlserver, and
// clickhouse are selected through Config.Driver).
package graph

import (
	"context"
	"encoding/json"
	"time"

	libgorm "github.com/nabbar/vdms/database/gorm"
	liberr "github.com/nabbar/vdms/errors"
	libpool "github.com/nabbar/vdms/pool"
)

type backend struct {
	db libgorm.Database
}

// New opens cfg, migrates the node/edge schema, and returns a ready
// GraphBackend. cfg.Driver selects the SQL dialect; an empty DSN with
// DriverSQLite gives an in-process database suitable for tests and single
// -node deployments.
func New(cfg *libgorm.Config) (libpool.GraphBackend, liberr.Error) {
	db, e := libgorm.New(cfg)
	if e != nil {
		return nil, e
	}

	if gdb := db.GetDB(); gdb == nil {
		return nil, ErrorMigrate.Error(nil)
	} else if mErr := gdb.AutoMigrate(&NodeRecord{}, &EdgeRecord{}); mErr != nil {
		return nil, ErrorMigrate.Error(mErr)
	}

	return &backend{db: db}, nil
}

type conn struct{}

func (b *backend) Dial(_ context.Context) (libpool.Conn, error) {
	return &conn{}, nil
}

func (b *backend) Close(_ libpool.Conn) error {
	return nil
}

func (b *backend) BeginTx(ctx context.Context, _ libpool.Conn, timeout time.Duration, _ libpool.TxMode) (libpool.Tx, error) {
	gdb := b.db.GetDB()
	if gdb == nil {
		return nil, ErrorBeginTx.Error(nil)
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		gdb = gdb.WithContext(ctx)
		tx := gdb.Begin()
		if tx.Error != nil {
			cancel()
			return nil, tx.Error
		}
		return &transaction{tx: tx, cancel: cancel}, nil
	}

	tx := gdb.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &transaction{tx: tx}, nil
}

func (b *backend) ResultsToJSON(results any) ([]byte, error) {
	return json.Marshal(results)
}
