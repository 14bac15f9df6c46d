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

// Package handlers implements the per-command contracts of the query
// language: one HandlerFunc per supported command tag, each registered into the
// dispatch command table from this package's init(). Handlers never touch
// a socket or a transport frame; they read a parsed command body, drive
// the backend through the dispatch.Context they are handed, and return a
// plain result map that the dispatcher wraps under the command's name.
package handlers

import (
	"encoding/json"

	libdsp "github.com/nabbar/vdms/dispatch"
	liberr "github.com/nabbar/vdms/errors"
	libq "github.com/nabbar/vdms/query"
)

func decodeBody(params json.RawMessage) (map[string]any, liberr.Error) {
	body := make(map[string]any)

	if len(params) == 0 {
		return body, nil
	}

	if err := json.Unmarshal(params, &body); err != nil {
		return nil, ErrorParamsDecode.Error(err)
	}

	return body, nil
}

func getString(body map[string]any, key string) (string, bool) {
	v, ok := body[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func getInt64(body map[string]any, key string) (int64, bool) {
	v, ok := body[key]
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return int64(t), true
	case int64:
		return t, true
	case int:
		return int64(t), true
	}
	return 0, false
}

func getBool(body map[string]any, key string) (bool, bool) {
	v, ok := body[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func getMap(body map[string]any, key string) (map[string]any, bool) {
	v, ok := body[key]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

func getStringSlice(body map[string]any, key string) []string {
	v, ok := body[key]
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func buildConstraints(body map[string]any) (map[string][]libq.Predicate, liberr.Error) {
	m, ok := getMap(body, "constraints")
	if !ok {
		return nil, nil
	}
	return libq.ParseConstraints(m)
}

func buildProperties(body map[string]any) map[string]any {
	m, ok := getMap(body, "properties")
	if !ok {
		return nil
	}
	return libq.ParseProperties(m)
}

// buildLink parses a "link" object and resolves its _ref to the backend
// handle bound earlier in this same request, the same way resolveRef does
// for AddConnection's ref1/ref2.
func buildLink(rc *libdsp.Context, body map[string]any) (*libq.Link, liberr.Error) {
	m, ok := getMap(body, "link")
	if !ok {
		return nil, nil
	}
	l, err := libq.ParseLink(m)
	if err != nil {
		return nil, err
	}

	handle, ok := rc.ResolveRef(l.Ref)
	if !ok {
		return nil, ErrorBadReference.Error(nil)
	}
	l.Ref = handle

	return &l, nil
}

func buildProjection(body map[string]any) libq.Projection {
	p := libq.Projection{}

	m, ok := getMap(body, "results")
	if !ok {
		return p
	}

	p.List = getStringSlice(m, "list")

	if c, ok := getBool(m, "count"); ok {
		p.Count = c
	}
	if s, ok := getString(m, "sum"); ok {
		p.Sum = s
	}
	if a, ok := getString(m, "average"); ok {
		p.Average = a
	}
	if b, ok := getBool(m, "blob"); ok {
		p.Blob = b
	}
	if l, ok := getInt64(m, "limit"); ok {
		p.Limit = int(l)
	}
	if o, ok := getInt64(m, "offset"); ok {
		p.Offset = int(o)
	}

	return p
}

// runOp hands one backend operation to the transaction the request already
// opened, translating a failure into ErrorBackendCall.
func runOp(rc *libdsp.Context, op any) (any, liberr.Error) {
	res, err := rc.Pool.RunInTx(rc.Tx, op)
	if err != nil {
		return nil, ErrorBackendCall.Error(err)
	}
	return res, nil
}

func resolveRef(rc *libdsp.Context, body map[string]any, key string) (int64, liberr.Error) {
	ref, ok := getInt64(body, key)
	if !ok {
		return 0, ErrorMissingField.Error(nil)
	}
	handle, ok := rc.ResolveRef(ref)
	if !ok {
		return 0, ErrorBadReference.Error(nil)
	}
	return handle, nil
}

func statusOK(extra map[string]any) map[string]any {
	if extra == nil {
		extra = map[string]any{}
	}
	extra["status"] = 0
	return extra
}
