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
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// fsStore is the DriverFS backend: one file per handle, sharded two levels
// deep by the handle's first four hex characters so a single directory
// never holds an unreasonable number of entries.
type fsStore struct {
	root string
}

func newFSStore(cfg *Config) (*fsStore, error) {
	if err := os.MkdirAll(cfg.FSPath, 0o755); err != nil {
		return nil, err
	}
	return &fsStore{root: cfg.FSPath}, nil
}

func (s *fsStore) pathFor(handle string) string {
	if len(handle) < 4 {
		return filepath.Join(s.root, handle)
	}
	return filepath.Join(s.root, handle[0:2], handle[2:4], handle)
}

func (s *fsStore) Put(data []byte) (string, error) {
	handle := uuid.NewString()
	p := s.pathFor(handle)

	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(p, data, 0o600); err != nil {
		return "", err
	}

	return handle, nil
}

func (s *fsStore) Get(handle string) ([]byte, error) {
	data, err := os.ReadFile(s.pathFor(handle))
	if os.IsNotExist(err) {
		return nil, ErrorNotFound.Error(err)
	}
	return data, err
}

func (s *fsStore) Delete(handle string) error {
	err := os.Remove(s.pathFor(handle))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
