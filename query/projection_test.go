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

package query_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libq "github.com/nabbar/vdms/query"
)

var _ = Describe("Projection", func() {
	matches := []libq.Match{
		{Properties: map[string]any{"name": "A", "fv": 1.0}, Blob: []byte("a"), HasBlob: true},
		{Properties: map[string]any{"name": "B"}},
	}

	It("ProjectList substitutes MissingProperty for absent fields", func() {
		out := libq.ProjectList(matches, []string{"name", "fv"})
		Expect(out).To(HaveLen(2))
		Expect(out[0]["fv"]).To(Equal(1.0))
		Expect(out[1]["fv"]).To(Equal(libq.MissingProperty))
	})

	It("ProjectCount counts every match, including zero matches", func() {
		Expect(libq.ProjectCount(matches)).To(Equal(2))
		Expect(libq.ProjectCount(nil)).To(Equal(0))
	})

	It("ProjectSum/ProjectAverage skip matches missing the property", func() {
		Expect(libq.ProjectSum(matches, "fv")).To(Equal(1.0))
		Expect(libq.ProjectAverage(matches, "fv")).To(Equal(1.0))
		Expect(libq.ProjectAverage(nil, "fv")).To(Equal(0.0))
	})

	It("ProjectBlobs returns only matches carrying a blob, in order", func() {
		out := libq.ProjectBlobs(matches)
		Expect(out).To(HaveLen(1))
		Expect(string(out[0])).To(Equal("a"))
	})
})
