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

package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	libpool "github.com/nabbar/vdms/pool"
	libq "github.com/nabbar/vdms/query"
)

type fakeNode struct {
	handle     int64
	class      string
	properties map[string]any
}

type fakeEdge struct {
	handle     int64
	class      string
	from, to   int64
	properties map[string]any
}

type fakeGraph struct {
	mu     sync.Mutex
	nextID int64
	nodes  map[int64]*fakeNode
	edges  map[int64]*fakeEdge
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{nodes: make(map[int64]*fakeNode), edges: make(map[int64]*fakeEdge)}
}

func (g *fakeGraph) nextHandle() int64 {
	g.nextID++
	return g.nextID
}

// linkedHandles mirrors backend/graph/tx.go's traversal: the node handles
// reachable from link.Ref along edges of link.Class, honoring direction.
func (g *fakeGraph) linkedHandles(link libq.Link) map[int64]bool {
	out := make(map[int64]bool)

	for _, e := range g.edges {
		if link.Class != "" && e.class != link.Class {
			continue
		}

		switch link.Dir {
		case "in":
			if e.to == link.Ref {
				out[e.from] = true
			}
		case "out":
			if e.from == link.Ref {
				out[e.to] = true
			}
		default:
			if e.from == link.Ref {
				out[e.to] = true
			}
			if e.to == link.Ref {
				out[e.from] = true
			}
		}
	}

	return out
}

type fakeTx struct{ g *fakeGraph }

func (t fakeTx) Commit() error   { return nil }
func (t fakeTx) Rollback() error { return nil }

func (t fakeTx) Run(query any) (any, error) {
	g := t.g
	g.mu.Lock()
	defer g.mu.Unlock()

	switch op := query.(type) {
	case libq.CreateNode:
		if len(op.Constraints) > 0 {
			for _, n := range g.nodes {
				if n.class == op.Class && libq.Matches(n.properties, op.Constraints) {
					if op.Unique {
						return nil, fmt.Errorf("unique constraint violated")
					}
					for k, v := range op.Properties {
						n.properties[k] = v
					}
					return libq.CreateNodeResult{Handle: n.handle, Created: false}, nil
				}
			}
		}
		h := g.nextHandle()
		props := map[string]any{}
		for k, v := range op.Properties {
			props[k] = v
		}
		g.nodes[h] = &fakeNode{handle: h, class: op.Class, properties: props}
		return libq.CreateNodeResult{Handle: h, Created: true}, nil

	case libq.AttachChild:
		if _, ok := g.nodes[op.ParentHandle]; !ok {
			return nil, fmt.Errorf("parent handle not found")
		}
		h := g.nextHandle()
		props := map[string]any{}
		for k, v := range op.Properties {
			props[k] = v
		}
		props["_parent"] = op.ParentHandle
		g.nodes[h] = &fakeNode{handle: h, class: op.Class, properties: props}
		return libq.CreateNodeResult{Handle: h, Created: true}, nil

	case libq.CreateEdge:
		if _, ok := g.nodes[op.From]; !ok {
			return nil, fmt.Errorf("from handle not found")
		}
		if _, ok := g.nodes[op.To]; !ok {
			return nil, fmt.Errorf("to handle not found")
		}
		h := g.nextHandle()
		props := map[string]any{}
		for k, v := range op.Properties {
			props[k] = v
		}
		g.edges[h] = &fakeEdge{handle: h, class: op.Class, from: op.From, to: op.To, properties: props}
		return libq.CreateEdgeResult{Handle: h}, nil

	case libq.FindNodes:
		var linked map[int64]bool
		if op.Link != nil {
			linked = g.linkedHandles(*op.Link)
		}

		var matches []libq.Match
		for _, n := range g.nodes {
			if op.Class != "" && n.class != op.Class {
				continue
			}
			if linked != nil && !linked[n.handle] {
				continue
			}
			if !libq.Matches(n.properties, op.Constraints) {
				continue
			}
			matches = append(matches, libq.Match{Properties: n.properties})
		}
		return libq.FindResult{Matches: matches, Returned: len(matches)}, nil

	case libq.FindEdges:
		var matches []libq.Match
		for _, e := range g.edges {
			if op.Class != "" && e.class != op.Class {
				continue
			}
			if !libq.Matches(e.properties, op.Constraints) {
				continue
			}
			matches = append(matches, libq.Match{Properties: e.properties})
		}
		return libq.FindResult{Matches: matches, Returned: len(matches)}, nil

	case libq.UpdateNodes:
		count := 0
		for _, n := range g.nodes {
			if op.Class != "" && n.class != op.Class {
				continue
			}
			if !libq.Matches(n.properties, op.Constraints) {
				continue
			}
			for k, v := range op.SetProperties {
				n.properties[k] = v
			}
			for _, k := range op.RemoveProps {
				delete(n.properties, k)
			}
			count++
		}
		return libq.UpdateResult{Count: count}, nil

	case libq.UpdateEdges:
		count := 0
		for _, e := range g.edges {
			if op.Class != "" && e.class != op.Class {
				continue
			}
			if !libq.Matches(e.properties, op.Constraints) {
				continue
			}
			for k, v := range op.SetProperties {
				e.properties[k] = v
			}
			for _, k := range op.RemoveProps {
				delete(e.properties, k)
			}
			count++
		}
		return libq.UpdateResult{Count: count}, nil
	}

	return nil, fmt.Errorf("unsupported operation %T", query)
}

type fakeConn struct{ id int }

type fakeBackend struct {
	mu     sync.Mutex
	g      *fakeGraph
	nextID int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{g: newFakeGraph()}
}

func (b *fakeBackend) Dial(_ context.Context) (libpool.Conn, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	return &fakeConn{id: b.nextID}, nil
}

func (b *fakeBackend) Close(_ libpool.Conn) error { return nil }

func (b *fakeBackend) BeginTx(_ context.Context, _ libpool.Conn, _ time.Duration, _ libpool.TxMode) (libpool.Tx, error) {
	return fakeTx{g: b.g}, nil
}

func (b *fakeBackend) ResultsToJSON(results any) ([]byte, error) {
	return json.Marshal(results)
}

type fakeObjectStore struct {
	mu   sync.Mutex
	next int
	data map[string][]byte
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{data: make(map[string][]byte)}
}

func (s *fakeObjectStore) Put(data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	h := fmt.Sprintf("blob-%d", s.next)
	cp := make([]byte, len(data))
	copy(cp, data)
	s.data[h] = cp
	return h, nil
}

func (s *fakeObjectStore) Get(handle string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.data[handle]
	if !ok {
		return nil, fmt.Errorf("no such handle %s", handle)
	}
	return d, nil
}

func (s *fakeObjectStore) Delete(handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, handle)
	return nil
}
