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

package query

// This file defines the vocabulary of backend operations a handler builds
// and hands to a pool.Tx: every GraphBackend implementation type-switches
// on these to decide what to actually run.

// CreateNode asks the backend to create one node of Class with Properties,
// optionally merging into an existing match when Constraints is non-empty
// and Unique requires update-in-place rather than a duplicate insert.
type CreateNode struct {
	Class       string
	Properties  map[string]any
	Constraints map[string][]Predicate
	Unique      bool
}

// CreateNodeResult carries the handle the backend assigned to a new or
// matched node.
type CreateNodeResult struct {
	Handle  int64
	Created bool
}

// CreateEdge asks the backend to create one labeled edge between two
// previously created node handles.
type CreateEdge struct {
	Class      string
	From       int64
	To         int64
	Properties map[string]any
}

// CreateEdgeResult carries the handle assigned to a new edge.
type CreateEdgeResult struct {
	Handle int64
}

// FindNodes asks the backend to match nodes of Class under Constraints,
// optionally anchored by a Link traversal, and project the result per Proj.
type FindNodes struct {
	Class       string
	Constraints map[string][]Predicate
	Link        *Link
	Proj        Projection
}

// FindEdges asks the backend to match edges of Class under Constraints and
// project the result per Proj.
type FindEdges struct {
	Class       string
	Constraints map[string][]Predicate
	Proj        Projection
}

// FindResult is the common shape both FindNodes and FindEdges return: the
// raw matches plus the count actually produced after limit/offset.
type FindResult struct {
	Matches  []Match
	Returned int
}

// UpdateNodes applies SetProperties and removes RemoveProps on every node
// of Class matching Constraints.
type UpdateNodes struct {
	Class        string
	Constraints  map[string][]Predicate
	SetProperties map[string]any
	RemoveProps  []string
}

// UpdateEdges applies SetProperties and removes RemoveProps on every edge
// of Class matching Constraints.
type UpdateEdges struct {
	Class        string
	Constraints  map[string][]Predicate
	SetProperties map[string]any
	RemoveProps  []string
}

// UpdateResult reports how many nodes or edges an update touched.
type UpdateResult struct {
	Count int
}

// AttachChild asks the backend to create a child entity (e.g. a bounding
// box) under an existing parent handle.
type AttachChild struct {
	ParentHandle int64
	Class        string
	Properties   map[string]any
}
