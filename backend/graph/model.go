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

import "time"

// NodeRecord is the relational shape of one graph node: its class label
// plus a JSON-encoded bag of properties. Storing properties as JSON rather
// than one column per property keeps the schema identical across every
// class and across every driver this package supports.
type NodeRecord struct {
	Handle     int64 `gorm:"primaryKey;autoIncrement"`
	Class      string `gorm:"index:idx_node_class"`
	Properties string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (NodeRecord) TableName() string { return "vdms_nodes" }

// EdgeRecord is the relational shape of one directed graph edge between two
// node handles.
type EdgeRecord struct {
	Handle     int64 `gorm:"primaryKey;autoIncrement"`
	Class      string `gorm:"index:idx_edge_class"`
	FromHandle int64  `gorm:"index:idx_edge_from"`
	ToHandle   int64  `gorm:"index:idx_edge_to"`
	Properties string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (EdgeRecord) TableName() string { return "vdms_edges" }
