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

var _ = Describe("Transaction", func() {
	It("starts with one group at index 0", func() {
		tx := libq.NewTransaction()
		Expect(tx.CurrentGroup()).To(Equal(0))
	})

	It("AddGroup stages a new current group", func() {
		tx := libq.NewTransaction()
		idx := tx.AddGroup()
		Expect(idx).To(Equal(1))
		Expect(tx.CurrentGroup()).To(Equal(1))
	})

	It("AddCommand/AddResponse target the current group", func() {
		tx := libq.NewTransaction()
		tx.AddCommand("cmd-0")
		tx.AddResponse("resp-0")

		tx.AddGroup()
		tx.AddCommand("cmd-1")
		tx.AddResponse("resp-1")

		g0 := tx.Group(0)
		Expect(g0.Commands).To(Equal([]any{"cmd-0"}))
		Expect(g0.Responses).To(Equal([]any{"resp-0"}))

		g1 := tx.Group(1)
		Expect(g1.Commands).To(Equal([]any{"cmd-1"}))
	})

	It("JSONResponses flattens every group's responses in order", func() {
		tx := libq.NewTransaction()
		tx.AddResponse("a")
		tx.AddGroup()
		tx.AddResponse("b")

		Expect(tx.JSONResponses()).To(Equal([]any{"a", "b"}))
	})

	It("Group returns nil for an out-of-range index", func() {
		tx := libq.NewTransaction()
		Expect(tx.Group(5)).To(BeNil())
	})
})
