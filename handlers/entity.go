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

func handleAddEntity(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	body, dErr := decodeBody(params)
	if dErr != nil {
		return nil, dErr
	}

	class, ok := getString(body, "class")
	if !ok || class == "" {
		return nil, ErrorMissingClass.Error(nil)
	}

	constraints, cErr := buildConstraints(body)
	if cErr != nil {
		return nil, cErr
	}

	unique, _ := getBool(body, "unique")

	op := libq.CreateNode{
		Class:       class,
		Properties:  buildProperties(body),
		Constraints: constraints,
		Unique:      unique,
	}

	raw, rErr := runOp(rc, op)
	if rErr != nil {
		return nil, rErr
	}

	res, ok := raw.(libq.CreateNodeResult)
	if !ok {
		return nil, ErrorUnexpectedResult.Error(nil)
	}

	if ref, has := getInt64(body, "_ref"); has {
		rc.BindRef(ref, res.Handle)
	}

	return statusOK(map[string]any{"entity": res.Handle}), nil
}

func handleUpdateEntity(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	return updateByClass(rc, params, "")
}

func updateByClass(rc *libdsp.Context, params json.RawMessage, forceClass string) (map[string]any, error) {
	body, dErr := decodeBody(params)
	if dErr != nil {
		return nil, dErr
	}

	class, _ := getString(body, "class")
	if forceClass != "" {
		class = forceClass
	}

	constraints, cErr := buildConstraints(body)
	if cErr != nil {
		return nil, cErr
	}

	op := libq.UpdateNodes{
		Class:         class,
		Constraints:   constraints,
		SetProperties: buildProperties(body),
		RemoveProps:   getStringSlice(body, "remove_props"),
	}

	raw, rErr := runOp(rc, op)
	if rErr != nil {
		return nil, rErr
	}

	res, ok := raw.(libq.UpdateResult)
	if !ok {
		return nil, ErrorUnexpectedResult.Error(nil)
	}

	return statusOK(map[string]any{"count": res.Count}), nil
}

func handleFindEntity(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	return findByClass(rc, params, "", "entities")
}

func findByClass(rc *libdsp.Context, params json.RawMessage, forceClass, listKey string) (map[string]any, error) {
	body, dErr := decodeBody(params)
	if dErr != nil {
		return nil, dErr
	}

	class, _ := getString(body, "class")
	if forceClass != "" {
		class = forceClass
	}

	constraints, cErr := buildConstraints(body)
	if cErr != nil {
		return nil, cErr
	}

	link, lErr := buildLink(rc, body)
	if lErr != nil {
		return nil, lErr
	}

	proj := buildProjection(body)

	op := libq.FindNodes{
		Class:       class,
		Constraints: constraints,
		Link:        link,
		Proj:        proj,
	}

	raw, rErr := runOp(rc, op)
	if rErr != nil {
		return nil, rErr
	}

	res, ok := raw.(libq.FindResult)
	if !ok {
		return nil, ErrorUnexpectedResult.Error(nil)
	}

	out := map[string]any{"returned": res.Returned}

	if len(proj.List) > 0 {
		out[listKey] = libq.ProjectList(res.Matches, proj.List)
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
	if proj.Blob {
		for _, b := range libq.ProjectBlobs(res.Matches) {
			rc.AppendResponseBlob(b)
		}
	}

	return statusOK(out), nil
}
