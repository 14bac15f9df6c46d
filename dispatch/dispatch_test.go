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

package dispatch_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libdsp "github.com/nabbar/vdms/dispatch"
	libpool "github.com/nabbar/vdms/pool"
)

type fakeConn struct{ id int }
type fakeTx struct{}

func (fakeTx) Run(query any) (any, error) { return query, nil }
func (fakeTx) Commit() error              { return nil }
func (fakeTx) Rollback() error            { return nil }

type fakeBackend struct{ nextID int64 }

func (b *fakeBackend) Dial(_ context.Context) (libpool.Conn, error) {
	b.nextID++
	return &fakeConn{id: int(b.nextID)}, nil
}
func (b *fakeBackend) Close(_ libpool.Conn) error { return nil }
func (b *fakeBackend) BeginTx(_ context.Context, _ libpool.Conn, _ time.Duration, _ libpool.TxMode) (libpool.Tx, error) {
	return fakeTx{}, nil
}
func (b *fakeBackend) ResultsToJSON(results any) ([]byte, error) {
	return json.Marshal(results)
}

var nextHandle int64

func init() {
	libdsp.Register("DispatchTestAddEntity", func(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
		var body struct {
			Class string `json:"class"`
			Ref   int64  `json:"_ref"`
		}
		if err := json.Unmarshal(params, &body); err != nil {
			return nil, err
		}
		if body.Class == "" {
			return nil, errors.New("class is required")
		}

		nextHandle++
		rc.BindRef(body.Ref, nextHandle)

		return map[string]any{"status": 0}, nil
	})

	libdsp.Register("DispatchTestAddConnection", func(rc *libdsp.Context, params json.RawMessage) (map[string]any, error) {
		var body struct {
			Ref1 int64 `json:"ref1"`
			Ref2 int64 `json:"ref2"`
		}
		if err := json.Unmarshal(params, &body); err != nil {
			return nil, err
		}

		if _, ok := rc.ResolveRef(body.Ref1); !ok {
			return nil, errors.New("bad reference ref1")
		}
		if _, ok := rc.ResolveRef(body.Ref2); !ok {
			return nil, errors.New("bad reference ref2")
		}

		return map[string]any{"status": 0}, nil
	})

	libdsp.Register("DispatchTestEmitBlob", func(rc *libdsp.Context, _ json.RawMessage) (map[string]any, error) {
		if b, ok := rc.NextBlob(); ok {
			rc.AppendResponseBlob(b)
		}
		return map[string]any{"status": 0}, nil
	})
}

var _ = Describe("Dispatch", func() {
	var (
		backend *fakeBackend
		p       libpool.BackendPool
		conn    libpool.Conn
	)

	BeforeEach(func() {
		backend = &fakeBackend{}
		pp, pErr := libpool.New(context.Background(), backend, 1)
		Expect(pErr).To(BeNil())
		p = pp

		c, gErr := p.GetConn(context.Background())
		Expect(gErr).To(BeNil())
		conn = c
	})

	It("returns an empty response for an empty request", func() {
		out, blobs, err := libdsp.Dispatch(context.Background(), p, conn, []byte(`[]`), nil, 0)
		Expect(err).To(BeNil())
		Expect(string(out)).To(Equal("[]"))
		Expect(blobs).To(BeEmpty())
	})

	It("runs AddEntity/AddConnection with refs and commits", func() {
		req := `[
			{"DispatchTestAddEntity":{"class":"Store","_ref":1}},
			{"DispatchTestAddEntity":{"class":"Store","_ref":2}},
			{"DispatchTestAddConnection":{"ref1":1,"ref2":2}}
		]`

		out, _, err := libdsp.Dispatch(context.Background(), p, conn, []byte(req), nil, 0)
		Expect(err).To(BeNil())

		var resp []map[string]map[string]any
		Expect(json.Unmarshal(out, &resp)).To(Succeed())
		Expect(resp).To(HaveLen(3))
		Expect(resp[0]["DispatchTestAddEntity"]["status"]).To(BeNumerically("==", 0))
		Expect(resp[2]["DispatchTestAddConnection"]["status"]).To(BeNumerically("==", 0))
	})

	It("fails AddConnection against an unresolved ref and aborts the rest", func() {
		req := `[
			{"DispatchTestAddEntity":{"class":"Store","_ref":1}},
			{"DispatchTestAddConnection":{"ref1":1,"ref2":9}},
			{"DispatchTestAddEntity":{"class":"Store","_ref":3}}
		]`

		out, _, err := libdsp.Dispatch(context.Background(), p, conn, []byte(req), nil, 0)
		Expect(err).To(BeNil())

		var resp []map[string]any
		Expect(json.Unmarshal(out, &resp)).To(Succeed())
		Expect(resp).To(HaveLen(3))

		conn2, ok := resp[1]["DispatchTestAddConnection"].(map[string]any)
		Expect(ok).To(BeTrue())
		Expect(conn2["status"]).To(BeNumerically("!=", 0))

		Expect(resp[2]["status"]).To(BeNumerically("==", -1))
		Expect(resp[2]["info"]).To(Equal("Transaction aborted"))
	})

	It("reports the generic error object for an unknown command", func() {
		out, _, err := libdsp.Dispatch(context.Background(), p, conn, []byte(`[{"Fly":{}}]`), nil, 0)
		Expect(err).To(BeNil())

		var resp []map[string]any
		Expect(json.Unmarshal(out, &resp)).To(Succeed())
		Expect(resp).To(HaveLen(1))
		Expect(resp[0]["status"]).To(BeNumerically("==", -1))
		Expect(resp[0]["info"]).To(Equal("Command does not exist"))
	})

	It("rejects a command object with more than one top-level key", func() {
		out, _, err := libdsp.Dispatch(context.Background(), p, conn, []byte(`[{"A":{},"B":{}}]`), nil, 0)
		Expect(err).To(BeNil())

		var resp []map[string]any
		Expect(json.Unmarshal(out, &resp)).To(Succeed())
		Expect(resp[0]["info"]).To(Equal("Command does not exist"))
	})

	It("threads blobs positionally through NextBlob/AppendResponseBlob", func() {
		blobs := [][]byte{[]byte("one"), []byte("two")}
		req := `[{"DispatchTestEmitBlob":{}},{"DispatchTestEmitBlob":{}}]`

		_, outBlobs, err := libdsp.Dispatch(context.Background(), p, conn, []byte(req), blobs, 0)
		Expect(err).To(BeNil())
		Expect(outBlobs).To(Equal(blobs))
	})

	It("fails the whole request when trailing blobs are never consumed", func() {
		blobs := [][]byte{[]byte("one"), []byte("two")}
		req := `[{"DispatchTestEmitBlob":{}}]`

		out, outBlobs, err := libdsp.Dispatch(context.Background(), p, conn, []byte(req), blobs, 0)
		Expect(err).ToNot(BeNil())
		Expect(err.IsCode(libdsp.ErrorBlobCountMismatch)).To(BeTrue())
		Expect(out).To(BeNil())
		Expect(outBlobs).To(BeNil())
	})
})
