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

package envelope_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libenv "github.com/nabbar/vdms/envelope"
)

var _ = Describe("Envelope", func() {
	It("round-trips JSON and blobs through Encode/Decode", func() {
		blobs := [][]byte{[]byte("blob-a"), []byte("blob-b")}
		env := libenv.New([]byte(`[{"AddEntity":{}}]`), blobs)

		wire, err := env.Encode()
		Expect(err).To(BeNil())
		Expect(wire).ToNot(BeEmpty())

		out, dErr := libenv.Decode(wire)
		Expect(dErr).To(BeNil())
		Expect(out.Json).To(MatchJSON(`[{"AddEntity":{}}]`))
		Expect(out.Blobs).To(Equal(blobs))
	})

	It("preserves blob order, including zero blobs", func() {
		env := libenv.New([]byte(`[]`), nil)

		wire, err := env.Encode()
		Expect(err).To(BeNil())

		out, dErr := libenv.Decode(wire)
		Expect(dErr).To(BeNil())
		Expect(out.Blobs).To(BeEmpty())
	})

	It("rejects encoding an envelope with no JSON body", func() {
		env := libenv.New(nil, nil)
		_, err := env.Encode()
		Expect(err).ToNot(BeNil())
	})

	It("rejects decoding an empty or garbage payload", func() {
		_, err := libenv.Decode(nil)
		Expect(err).ToNot(BeNil())

		_, err2 := libenv.Decode([]byte("not cbor"))
		Expect(err2).ToNot(BeNil())
	})

	It("unmarshals Commands into the caller's target type", func() {
		env := libenv.New([]byte(`[{"AddEntity":{"class":"Store"}}]`), nil)

		var cmds []map[string]any
		Expect(env.Commands(&cmds)).To(BeNil())
		Expect(cmds).To(HaveLen(1))
		Expect(cmds[0]).To(HaveKey("AddEntity"))
	})

	It("builds an Envelope from MarshalCommands", func() {
		cmds := []map[string]any{{"FindEntity": map[string]any{"status": 0}}}
		env, err := libenv.MarshalCommands(cmds, [][]byte{[]byte("x")})
		Expect(err).To(BeNil())
		Expect(env.Json).To(MatchJSON(`[{"FindEntity":{"status":0}}]`))
		Expect(env.Blobs).To(HaveLen(1))
	})
})
