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

func handleAddConnection(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	body, dErr := decodeBody(params)
	if dErr != nil {
		return nil, dErr
	}

	class, ok := getString(body, "class")
	if !ok || class == "" {
		return nil, ErrorMissingClass.Error(nil)
	}

	from, rErr := resolveRef(rc, body, "ref1")
	if rErr != nil {
		return nil, rErr
	}

	to, rErr := resolveRef(rc, body, "ref2")
	if rErr != nil {
		return nil, rErr
	}

	op := libq.CreateEdge{
		Class:      class,
		From:       from,
		To:         to,
		Properties: buildProperties(body),
	}

	raw, oErr := runOp(rc, op)
	if oErr != nil {
		return nil, oErr
	}

	res, ok := raw.(libq.CreateEdgeResult)
	if !ok {
		return nil, ErrorUnexpectedResult.Error(nil)
	}

	if ref, has := getInt64(body, "_ref"); has {
		rc.BindRef(ref, res.Handle)
	}

	return statusOK(map[string]any{"connection": res.Handle}), nil
}

func handleUpdateConnection(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	body, dErr := decodeBody(params)
	if dErr != nil {
		return nil, dErr
	}

	class, _ := getString(body, "class")

	constraints, cErr := buildConstraints(body)
	if cErr != nil {
		return nil, cErr
	}

	op := libq.UpdateEdges{
		Class:         class,
		Constraints:   constraints,
		SetProperties: buildProperties(body),
		RemoveProps:   getStringSlice(body, "remove_props"),
	}

	raw, oErr := runOp(rc, op)
	if oErr != nil {
		return nil, oErr
	}

	res, ok := raw.(libq.UpdateResult)
	if !ok {
		return nil, ErrorUnexpectedResult.Error(nil)
	}

	return statusOK(map[string]any{"count": res.Count}), nil
}

func handleFindConnection(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	body, dErr := decodeBody(params)
	if dErr != nil {
		return nil, dErr
	}

	class, _ := getString(body, "class")

	constraints, cErr := buildConstraints(body)
	if cErr != nil {
		return nil, cErr
	}

	proj := buildProjection(body)

	op := libq.FindEdges{
		Class:       class,
		Constraints: constraints,
		Proj:        proj,
	}

	raw, oErr := runOp(rc, op)
	if oErr != nil {
		return nil, oErr
	}

	res, ok := raw.(libq.FindResult)
	if !ok {
		return nil, ErrorUnexpectedResult.Error(nil)
	}

	out := map[string]any{"returned": res.Returned}

	if len(proj.List) > 0 {
		out["connections"] = libq.ProjectList(res.Matches, proj.List)
	}
	if proj.Count {
		out["count"] = libq.ProjectCount(res.Matches)
	}
	if proj.Sum != "" {
		out["sum"] = libq.ProjectSum(res.Matches, proj.Sum)
	}
	if proj.Average != "" {
		out["average"] = libq.ProjectAverage(res.Matches, proj.Average)
	}

	return statusOK(out), nil
}
