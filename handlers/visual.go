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

const (
	classImage = "_VD:IMAGE"
	classVideo = "_VD:VIDEO"
	classBlob  = "_VD:BLOB"
)

var (
	imageFormats = map[string]bool{"png": true, "jpg": true, "tdb": true, "bin": true}
	videoCodecs  = map[string]bool{"xvid": true, "h264": true, "h263": true}
	videoConts   = map[string]bool{"mp4": true, "avi": true, "mov": true}
	visualOps    = map[string]bool{
		"resize": true, "crop": true, "threshold": true, "flip": true,
		"rotate": true, "interval": true, "remoteOp": true,
		"syncremoteOp": true, "userOp": true,
	}
)

func validateOperations(body map[string]any) error {
	v, ok := body["operations"]
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return ErrorBadOperations.Error(nil)
	}
	for _, e := range arr {
		op, ok := e.(map[string]any)
		if !ok {
			return ErrorBadOperations.Error(nil)
		}
		t, ok := getString(op, "type")
		if !ok || !visualOps[t] {
			return ErrorBadOperations.Error(nil)
		}
	}
	return nil
}

func addVisualObject(rc *libdsp.Context, params json.RawMessage, class string, allowed map[string]bool, field string) (map[string]any, error) {
	body, dErr := decodeBody(params)
	if dErr != nil {
		return nil, dErr
	}

	if field != "" {
		v, ok := getString(body, field)
		if !ok || !allowed[v] {
			return nil, ErrorBadFormat.Error(nil)
		}
	}
	if class == classVideo {
		v, ok := getString(body, "container")
		if !ok || !videoConts[v] {
			return nil, ErrorBadFormat.Error(nil)
		}
	}
	if oErr := validateOperations(body); oErr != nil {
		return nil, oErr
	}

	props := buildProperties(body)
	if props == nil {
		props = map[string]any{}
	}

	var blob []byte
	if url, has := getString(body, "from_server_file"); has && class != classBlob {
		src := currentFTPSource()
		if src == nil {
			return nil, ErrorFTPFetch.Error(nil)
		}
		fetched, fErr := src.Fetch(url)
		if fErr != nil {
			return nil, ErrorFTPFetch.Error(fErr)
		}
		blob = fetched
	} else {
		b, bOk := rc.NextBlob()
		if !bOk {
			return nil, ErrorMissingBlob.Error(nil)
		}
		blob = b
	}

	os := currentStore()
	if os == nil {
		return nil, ErrorBackendCall.Error(nil)
	}
	handle, err := os.Put(blob)
	if err != nil {
		return nil, ErrorBackendCall.Error(err)
	}
	props["_object_handle"] = handle

	op := libq.CreateNode{Class: class, Properties: props}
	raw, oErr := runOp(rc, op)
	if oErr != nil {
		return nil, oErr
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

func handleAddImage(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	return addVisualObject(rc, params, classImage, imageFormats, "format")
}

func handleAddVideo(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	return addVisualObject(rc, params, classVideo, videoCodecs, "codec")
}

func handleAddBlob(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	return addVisualObject(rc, params, classBlob, nil, "")
}

func handleUpdateBlob(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	return updateByClass(rc, params, classBlob)
}

func handleFindImage(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	return findVisualByClass(rc, params, classImage, "entities")
}

func handleFindVideo(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	return findVisualByClass(rc, params, classVideo, "entities")
}

func handleFindBlob(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	return findVisualByClass(rc, params, classBlob, "entities")
}

func findVisualByClass(rc *libdsp.Context, params json.RawMessage, class, listKey string) (map[string]any, error) {
	body, dErr := decodeBody(params)
	if dErr != nil {
		return nil, dErr
	}

	constraints, cErr := buildConstraints(body)
	if cErr != nil {
		return nil, cErr
	}

	proj := buildProjection(body)

	op := libq.FindNodes{Class: class, Constraints: constraints, Proj: proj}

	raw, oErr := runOp(rc, op)
	if oErr != nil {
		return nil, oErr
	}

	res, ok := raw.(libq.FindResult)
	if !ok {
		return nil, ErrorUnexpectedResult.Error(nil)
	}

	out := map[string]any{"returned": res.Returned}

	if proj.Blob {
		os := currentStore()
		for i := range res.Matches {
			handle, has := res.Matches[i].Properties["_object_handle"].(string)
			if !has || os == nil {
				continue
			}
			data, err := os.Get(handle)
			if err != nil {
				continue
			}
			res.Matches[i].Blob = data
			res.Matches[i].HasBlob = true
		}
		for _, b := range libq.ProjectBlobs(res.Matches) {
			rc.AppendResponseBlob(b)
		}
	}

	if len(proj.List) > 0 {
		out[listKey] = libq.ProjectList(res.Matches, proj.List)
	}
	if proj.Count {
		out["count"] = libq.ProjectCount(res.Matches)
	}

	return statusOK(out), nil
}
