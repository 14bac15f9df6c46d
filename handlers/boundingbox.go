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

import (
	"encoding/json"

	libdsp "github.com/nabbar/vdms/dispatch"
	libq "github.com/nabbar/vdms/query"
)

const classBoundingBox = "_VD:BOUNDING_BOX"

var rectangleKeys = [4]string{"x", "y", "w", "h"}

func handleAddBoundingBox(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	body, dErr := decodeBody(params)
	if dErr != nil {
		return nil, dErr
	}

	rect, ok := getMap(body, "rectangle")
	if !ok {
		return nil, ErrorBadRectangle.Error(nil)
	}
	for _, k := range rectangleKeys {
		v, has := rect[k]
		if !has {
			return nil, ErrorBadRectangle.Error(nil)
		}
		switch v.(type) {
		case float64, int64, int:
		default:
			return nil, ErrorBadRectangle.Error(nil)
		}
	}

	props := buildProperties(body)
	if props == nil {
		props = map[string]any{}
	}
	props["rectangle"] = rect

	if ref, has := getInt64(body, "image"); has {
		handle, ok := rc.ResolveRef(ref)
		if !ok {
			return nil, ErrorBadReference.Error(nil)
		}

		op := libq.AttachChild{ParentHandle: handle, Class: classBoundingBox, Properties: props}
		raw, oErr := runOp(rc, op)
		if oErr != nil {
			return nil, oErr
		}

		res, ok := raw.(libq.CreateNodeResult)
		if !ok {
			return nil, ErrorUnexpectedResult.Error(nil)
		}

		if r, has := getInt64(body, "_ref"); has {
			rc.BindRef(r, res.Handle)
		}

		return statusOK(map[string]any{"entity": res.Handle}), nil
	}

	op := libq.CreateNode{Class: classBoundingBox, Properties: props}
	raw, oErr := runOp(rc, op)
	if oErr != nil {
		return nil, oErr
	}

	res, ok := raw.(libq.CreateNodeResult)
	if !ok {
		return nil, ErrorUnexpectedResult.Error(nil)
	}

	if r, has := getInt64(body, "_ref"); has {
		rc.BindRef(r, res.Handle)
	}

	return statusOK(map[string]any{"entity": res.Handle}), nil
}
