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

package replicate_test

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libr "github.com/nabbar/vdms/replicate"
)

func startTestServer() *server.Server {
	opts := &server.Options{Host: "127.0.0.1", Port: server.RANDOM_PORT}
	s, err := server.NewServer(opts)
	Expect(err).NotTo(HaveOccurred())

	go s.Start()
	Expect(s.ReadyForConnections(2 * time.Second)).To(BeTrue())

	return s
}

var _ = Describe("Config", func() {
	It("rejects an empty URL", func() {
		cfg := &libr.Config{Unit: "vdms.replication"}
		Expect(cfg.Validate()).NotTo(BeNil())
	})

	It("rejects an empty unit", func() {
		cfg := &libr.Config{URL: "nats://127.0.0.1:4222"}
		Expect(cfg.Validate()).NotTo(BeNil())
	})
})

var _ = Describe("NATS publisher", func() {
	var srv *server.Server

	BeforeEach(func() {
		srv = startTestServer()
	})

	AfterEach(func() {
		srv.Shutdown()
	})

	It("flushes a batch to the configured subject once it fills", func() {
		sub, err := nats.Connect(srv.ClientURL())
		Expect(err).NotTo(HaveOccurred())
		defer sub.Close()

		received := make(chan []byte, 1)
		_, err = sub.Subscribe("vdms.replication", func(m *nats.Msg) {
			received <- m.Data
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(sub.Flush()).To(Succeed())

		pub, err := libr.New(&libr.Config{
			URL:       srv.ClientURL(),
			Unit:      "vdms.replication",
			BatchSize: 1,
		})
		Expect(err).NotTo(HaveOccurred())
		defer pub.Close()

		err = pub.Publish(context.Background(), libr.ReplicationEvent{
			Operation: "AddEntity",
			Class:     "Person",
			Handle:    42,
			Timestamp: time.Unix(0, 0),
		})
		Expect(err).NotTo(HaveOccurred())

		var payload []byte
		Eventually(received, time.Second).Should(Receive(&payload))

		var events []libr.ReplicationEvent
		Expect(json.Unmarshal(payload, &events)).To(Succeed())
		Expect(events).To(HaveLen(1))
		Expect(events[0].Class).To(Equal("Person"))
		Expect(events[0].Handle).To(Equal(int64(42)))
	})

	It("fails to connect against an unreachable URL", func() {
		_, err := libr.New(&libr.Config{
			URL:  "nats://127.0.0.1:1",
			Unit: "vdms.replication",
		})
		Expect(err).To(HaveOccurred())
	})
})
