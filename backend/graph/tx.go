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

package graph

import (
	"context"
	"fmt"

	libq "github.com/nabbar/vdms/query"
	gormdb "gorm.io/gorm"
)

type transaction struct {
	tx     *gormdb.DB
	cancel context.CancelFunc
}

func (t *transaction) Commit() error {
	err := t.tx.Commit().Error
	if t.cancel != nil {
		t.cancel()
	}
	return err
}

func (t *transaction) Rollback() error {
	err := t.tx.Rollback().Error
	if t.cancel != nil {
		t.cancel()
	}
	return err
}

// Run type-switches on the operation vocabulary handlers build, narrows
// candidate rows with SQL on class first, then evaluates the full
// constraint/link tree in memory with query.Matches.
func (t *transaction) Run(query any) (any, error) {
	switch op := query.(type) {
	case libq.CreateNode:
		return t.createNode(op)
	case libq.AttachChild:
		return t.attachChild(op)
	case libq.CreateEdge:
		return t.createEdge(op)
	case libq.FindNodes:
		return t.findNodes(op)
	case libq.FindEdges:
		return t.findEdges(op)
	case libq.UpdateNodes:
		return t.updateNodes(op)
	case libq.UpdateEdges:
		return t.updateEdges(op)
	}

	return nil, fmt.Errorf("backend/graph: unsupported operation %T", query)
}

func (t *transaction) createNode(op libq.CreateNode) (any, error) {
	if len(op.Constraints) > 0 {
		var rows []NodeRecord
		if err := t.tx.Where("class = ?", op.Class).Find(&rows).Error; err != nil {
			return nil, err
		}

		for i := range rows {
			props, err := decodeProps(rows[i].Properties)
			if err != nil {
				return nil, err
			}
			if !libq.Matches(props, op.Constraints) {
				continue
			}
			if op.Unique {
				return nil, fmt.Errorf("backend/graph: unique constraint violated for class %q", op.Class)
			}
			for k, v := range op.Properties {
				props[k] = v
			}
			encoded, eErr := encodeProps(props)
			if eErr != nil {
				return nil, eErr
			}
			if err = t.tx.Model(&rows[i]).Update("properties", encoded).Error; err != nil {
				return nil, err
			}
			return libq.CreateNodeResult{Handle: rows[i].Handle, Created: false}, nil
		}
	}

	encoded, err := encodeProps(op.Properties)
	if err != nil {
		return nil, err
	}

	row := NodeRecord{Class: op.Class, Properties: encoded}
	if err = t.tx.Create(&row).Error; err != nil {
		return nil, err
	}

	return libq.CreateNodeResult{Handle: row.Handle, Created: true}, nil
}

func (t *transaction) attachChild(op libq.AttachChild) (any, error) {
	var parent NodeRecord
	if err := t.tx.First(&parent, op.ParentHandle).Error; err != nil {
		return nil, fmt.Errorf("backend/graph: parent handle %d not found: %w", op.ParentHandle, err)
	}

	props := libq.ParseProperties(op.Properties)
	if props == nil {
		props = map[string]any{}
	}
	props["_parent"] = op.ParentHandle

	encoded, err := encodeProps(props)
	if err != nil {
		return nil, err
	}

	row := NodeRecord{Class: op.Class, Properties: encoded}
	if err = t.tx.Create(&row).Error; err != nil {
		return nil, err
	}

	return libq.CreateNodeResult{Handle: row.Handle, Created: true}, nil
}

func (t *transaction) createEdge(op libq.CreateEdge) (any, error) {
	var from, to NodeRecord
	if err := t.tx.First(&from, op.From).Error; err != nil {
		return nil, fmt.Errorf("backend/graph: edge 'from' handle %d not found: %w", op.From, err)
	}
	if err := t.tx.First(&to, op.To).Error; err != nil {
		return nil, fmt.Errorf("backend/graph: edge 'to' handle %d not found: %w", op.To, err)
	}

	encoded, err := encodeProps(op.Properties)
	if err != nil {
		return nil, err
	}

	row := EdgeRecord{Class: op.Class, FromHandle: op.From, ToHandle: op.To, Properties: encoded}
	if err = t.tx.Create(&row).Error; err != nil {
		return nil, err
	}

	return libq.CreateEdgeResult{Handle: row.Handle}, nil
}

func (t *transaction) findNodes(op libq.FindNodes) (any, error) {
	q := t.tx.Model(&NodeRecord{})
	if op.Class != "" {
		q = q.Where("class = ?", op.Class)
	}

	var rows []NodeRecord
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	var linked map[int64]bool
	if op.Link != nil {
		var err error
		linked, err = t.linkedHandles(*op.Link)
		if err != nil {
			return nil, err
		}
	}

	matches := make([]libq.Match, 0, len(rows))
	for _, r := range rows {
		if linked != nil && !linked[r.Handle] {
			continue
		}
		props, err := decodeProps(r.Properties)
		if err != nil {
			return nil, err
		}
		if !libq.Matches(props, op.Constraints) {
			continue
		}
		props["_handle"] = r.Handle
		matches = append(matches, libq.Match{Properties: props})
	}

	return libq.FindResult{Matches: matches, Returned: len(matches)}, nil
}

// linkedHandles resolves a Link's traversal constraint into the set of node
// handles reachable from link.Ref along edges of link.Class.
func (t *transaction) linkedHandles(link libq.Link) (map[int64]bool, error) {
	out := make(map[int64]bool)

	q := t.tx.Model(&EdgeRecord{})
	if link.Class != "" {
		q = q.Where("class = ?", link.Class)
	}

	switch link.Dir {
	case "in":
		q = q.Where("to_handle = ?", link.Ref)
	case "out":
		q = q.Where("from_handle = ?", link.Ref)
	default:
		q = q.Where("from_handle = ? OR to_handle = ?", link.Ref, link.Ref)
	}

	var edges []EdgeRecord
	if err := q.Find(&edges).Error; err != nil {
		return nil, err
	}

	for _, e := range edges {
		switch link.Dir {
		case "in":
			out[e.FromHandle] = true
		case "out":
			out[e.ToHandle] = true
		default:
			if e.FromHandle == link.Ref {
				out[e.ToHandle] = true
			}
			if e.ToHandle == link.Ref {
				out[e.FromHandle] = true
			}
		}
	}

	return out, nil
}

func (t *transaction) findEdges(op libq.FindEdges) (any, error) {
	q := t.tx.Model(&EdgeRecord{})
	if op.Class != "" {
		q = q.Where("class = ?", op.Class)
	}

	var rows []EdgeRecord
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	matches := make([]libq.Match, 0, len(rows))
	for _, r := range rows {
		props, err := decodeProps(r.Properties)
		if err != nil {
			return nil, err
		}
		if !libq.Matches(props, op.Constraints) {
			continue
		}
		props["_handle"] = r.Handle
		props["_from"] = r.FromHandle
		props["_to"] = r.ToHandle
		matches = append(matches, libq.Match{Properties: props})
	}

	return libq.FindResult{Matches: matches, Returned: len(matches)}, nil
}

func (t *transaction) updateNodes(op libq.UpdateNodes) (any, error) {
	q := t.tx.Model(&NodeRecord{})
	if op.Class != "" {
		q = q.Where("class = ?", op.Class)
	}

	var rows []NodeRecord
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	count := 0
	for i := range rows {
		props, err := decodeProps(rows[i].Properties)
		if err != nil {
			return nil, err
		}
		if !libq.Matches(props, op.Constraints) {
			continue
		}
		for k, v := range op.SetProperties {
			props[k] = v
		}
		for _, k := range op.RemoveProps {
			delete(props, k)
		}
		encoded, eErr := encodeProps(props)
		if eErr != nil {
			return nil, eErr
		}
		if err = t.tx.Model(&rows[i]).Update("properties", encoded).Error; err != nil {
			return nil, err
		}
		count++
	}

	return libq.UpdateResult{Count: count}, nil
}

func (t *transaction) updateEdges(op libq.UpdateEdges) (any, error) {
	q := t.tx.Model(&EdgeRecord{})
	if op.Class != "" {
		q = q.Where("class = ?", op.Class)
	}

	var rows []EdgeRecord
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	count := 0
	for i := range rows {
		props, err := decodeProps(rows[i].Properties)
		if err != nil {
			return nil, err
		}
		if !libq.Matches(props, op.Constraints) {
			continue
		}
		for k, v := range op.SetProperties {
			props[k] = v
		}
		for _, k := range op.RemoveProps {
			delete(props, k)
		}
		encoded, eErr := encodeProps(props)
		if eErr != nil {
			return nil, eErr
		}
		if err = t.tx.Model(&rows[i]).Update("properties", encoded).Error; err != nil {
			return nil, err
		}
		count++
	}

	return libq.UpdateResult{Count: count}, nil
}
