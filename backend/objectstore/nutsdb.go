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
	"github.com/google/uuid"
	"github.com/nutsdb/nutsdb"
)

const nutsBucket = "vdms_objects"

// nutsStore is the DriverNutsDB backend: one embedded B-tree bucket holding
// every object, keyed by its handle.
type nutsStore struct {
	db *nutsdb.DB
}

func newNutsStore(cfg *Config) (*nutsStore, error) {
	db, err := nutsdb.Open(nutsdb.DefaultOptions, nutsdb.WithDir(cfg.NutsDBPath))
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *nutsdb.Tx) error {
		if tx.ExistBucket(nutsdb.DataStructureBTree, nutsBucket) {
			return nil
		}
		return tx.NewBucket(nutsdb.DataStructureBTree, nutsBucket)
	})
	if err != nil {
		return nil, err
	}

	return &nutsStore{db: db}, nil
}

func (s *nutsStore) Put(data []byte) (string, error) {
	handle := uuid.NewString()

	err := s.db.Update(func(tx *nutsdb.Tx) error {
		return tx.Put(nutsBucket, []byte(handle), data, 0)
	})
	if err != nil {
		return "", err
	}

	return handle, nil
}

func (s *nutsStore) Get(handle string) ([]byte, error) {
	var out []byte

	err := s.db.View(func(tx *nutsdb.Tx) error {
		e, err := tx.Get(nutsBucket, []byte(handle))
		if err != nil {
			return err
		}
		out = append([]byte{}, e.Value...)
		return nil
	})
	if err != nil {
		return nil, ErrorNotFound.Error(err)
	}

	return out, nil
}

func (s *nutsStore) Delete(handle string) error {
	return s.db.Update(func(tx *nutsdb.Tx) error {
		return tx.Delete(nutsBucket, []byte(handle))
	})
}
