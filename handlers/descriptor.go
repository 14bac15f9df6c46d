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
	classDescriptorSet = "_VD:DESCRIPTOR_SET"
	classDescriptor    = "_VD:DESCRIPTOR"
)

var (
	descriptorMetrics = map[string]bool{"L2": true, "IP": true}
	descriptorEngines = map[string]bool{
		"TileDBDense": true, "TileDBSparse": true, "FaissFlat": true,
		"FaissIVFFlat": true, "Flinng": true,
	}
	flinngRequired = []string{"flinng_num_rows", "flinng_cells_per_row"}
)

func handleAddDescriptorSet(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	body, dErr := decodeBody(params)
	if dErr != nil {
		return nil, dErr
	}

	name, ok := getString(body, "name")
	if !ok || name == "" {
		return nil, ErrorMissingField.Error(nil)
	}

	dims, ok := getInt64(body, "dimensions")
	if !ok || dims <= 0 {
		return nil, ErrorMissingField.Error(nil)
	}

	metric, ok := getString(body, "metric")
	if !ok || !descriptorMetrics[metric] {
		return nil, ErrorBadFormat.Error(nil)
	}

	engine, ok := getString(body, "engine")
	if !ok || !descriptorEngines[engine] {
		return nil, ErrorBadFormat.Error(nil)
	}

	if engine == "Flinng" {
		for _, key := range flinngRequired {
			if _, has := body[key]; !has {
				return nil, ErrorMissingField.Error(nil)
			}
		}
	}

	props := buildProperties(body)
	if props == nil {
		props = map[string]any{}
	}
	props["name"] = name
	props["dimensions"] = dims
	props["metric"] = metric
	props["engine"] = engine

	op := libq.CreateNode{Class: classDescriptorSet, Properties: props}
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

func handleAddDescriptor(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	body, dErr := decodeBody(params)
	if dErr != nil {
		return nil, dErr
	}

	set, ok := getString(body, "set")
	if !ok || set == "" {
		return nil, ErrorMissingField.Error(nil)
	}

	blob, ok := rc.NextBlob()
	if !ok {
		return nil, ErrorMissingBlob.Error(nil)
	}
	if len(blob)%4 != 0 {
		return nil, ErrorBadFormat.Error(nil)
	}

	os := currentStore()
	if os == nil {
		return nil, ErrorBackendCall.Error(nil)
	}
	handle, err := os.Put(blob)
	if err != nil {
		return nil, ErrorBackendCall.Error(err)
	}

	props := buildProperties(body)
	if props == nil {
		props = map[string]any{}
	}
	props["_set"] = set
	props["_object_handle"] = handle
	props["_dimensions"] = int64(len(blob) / 4)

	op := libq.CreateNode{Class: classDescriptor, Properties: props}
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

func handleFindDescriptorSet(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	return findByClass(rc, params, classDescriptorSet, "entities")
}

func handleFindDescriptor(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
	return findByClass(rc, params, classDescriptor, "entities")
}
