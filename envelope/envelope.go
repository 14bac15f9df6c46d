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

// Package envelope implements the structured record carried inside every
// transport frame: a JSON command/response array plus its ordered list of
// raw blob payloads, self-describing in field count and blob order so JSON
// is never interleaved with blob bytes on the wire.
package envelope

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"

	liberr "github.com/nabbar/vdms/errors"
)

// Envelope is the wire record: Json holds the UTF-8 command or response
// array, Blobs holds each referenced blob in request order.
type Envelope struct {
	Json  []byte   `cbor:"1,keyasint"`
	Blobs [][]byte `cbor:"2,keyasint"`
}

// New builds an Envelope from an already-marshaled JSON body and its blobs.
func New(jsonBody []byte, blobs [][]byte) Envelope {
	return Envelope{Json: jsonBody, Blobs: blobs}
}

// Encode CBOR-encodes this Envelope for handing to a transport Connection.
func (e Envelope) Encode() ([]byte, liberr.Error) {
	if len(e.Json) == 0 {
		return nil, ErrorBadEnvelope.Error(nil)
	}

	b, err := cbor.Marshal(e)
	if err != nil {
		return nil, ErrorCBOREncode.Error(err)
	}

	return b, nil
}

// Decode parses a CBOR-encoded Envelope received from a transport Connection.
func Decode(payload []byte) (Envelope, liberr.Error) {
	var e Envelope

	if len(payload) == 0 {
		return e, ErrorParamsEmpty.Error(nil)
	}

	if err := cbor.Unmarshal(payload, &e); err != nil {
		return e, ErrorCBORDecode.Error(err)
	}

	if len(e.Json) == 0 {
		return e, ErrorBadEnvelope.Error(nil)
	}

	return e, nil
}

// Commands unmarshals this Envelope's JSON body as a command/response array.
// v is typically a *[]map[string]any or a *[]json.RawMessage.
func (e Envelope) Commands(v any) liberr.Error {
	if err := json.Unmarshal(e.Json, v); err != nil {
		return ErrorJSONDecode.Error(err)
	}

	return nil
}

// MarshalCommands builds the Json field of a new Envelope from a
// command/response slice, pairing it with the given blobs.
func MarshalCommands(v any, blobs [][]byte) (Envelope, liberr.Error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Envelope{}, ErrorJSONEncode.Error(err)
	}

	return New(b, blobs), nil
}
