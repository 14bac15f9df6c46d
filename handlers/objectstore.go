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

package handlers

import "sync"

// ObjectStore is the collaborator visual-object handlers use to persist and
// retrieve raw blob bytes outside the graph backend itself. A reference
// implementation lives in backend/objectstore; SetObjectStore wires it in
// from the server's startup code.
type ObjectStore interface {
	Put(data []byte) (handle string, err error)
	Get(handle string) (data []byte, err error)
	Delete(handle string) error
}

var (
	storeMu sync.RWMutex
	store   ObjectStore
)

// SetObjectStore installs the process-wide object store every visual-object
// handler (AddImage/AddVideo/AddBlob/AddDescriptor/FindImage/FindVideo/FindBlob) stores and retrieves
// bytes through.
func SetObjectStore(s ObjectStore) {
	storeMu.Lock()
	defer storeMu.Unlock()
	store = s
}

func currentStore() ObjectStore {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return store
}
