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

package notify_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libnotify "github.com/nabbar/vdms/notify"
)

var _ = Describe("Config", func() {
	It("rejects a zero-value config", func() {
		cfg := &libnotify.Config{}
		Expect(cfg.Validate()).To(HaveOccurred())
	})

	It("rejects a config missing a recipient", func() {
		cfg := &libnotify.Config{Host: "smtp.example.com", Port: 587, From: "vdms@example.com"}
		Expect(cfg.Validate()).To(HaveOccurred())
	})

	It("accepts a fully populated config", func() {
		cfg := &libnotify.Config{
			Host: "smtp.example.com", Port: 587,
			From: "vdms@example.com", To: []string{"ops@example.com"},
		}
		Expect(cfg.Validate()).NotTo(HaveOccurred())
	})

	It("builds a Notifier from a valid config", func() {
		cfg := &libnotify.Config{
			Host: "smtp.example.com", Port: 587,
			From: "vdms@example.com", To: []string{"ops@example.com"},
		}
		n, err := libnotify.New(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).NotTo(BeNil())
	})

	It("refuses to build a Notifier from an invalid config", func() {
		n, err := libnotify.New(&libnotify.Config{})
		Expect(err).To(HaveOccurred())
		Expect(n).To(BeNil())
	})
})
