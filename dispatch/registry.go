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

package dispatch

import (
	"encoding/json"
	"sync"
)

// HandlerFunc implements one command's contract. params is the raw
// JSON body under the command's single top-level key. A non-nil error
// aborts the whole request: the caller wraps it into this command's error
// response and fills every later slot with the generic abort object.
type HandlerFunc func(rc *Context, params json.RawMessage) (result map[string]any, err error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]HandlerFunc)
)

// Register adds or replaces the handler for a command name. Called from
// package init() in the handlers package, mirroring the errors package's
// RegisterIdFctMessage registration idiom.
func Register(command string, h HandlerFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[command] = h
}

func lookup(command string) (HandlerFunc, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	h, ok := registry[command]
	return h, ok
}

// Registered reports the commands currently registered, for diagnostics.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}

	return out
}
