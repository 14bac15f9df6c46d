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

import "sync"

// Group is one staged set of backend commands and the responses the
// backend returned for them. The default dispatch path uses a single
// group per request (one transaction); add_group exists so a handler can
// stage later commands into a separate sub-transaction.
type Group struct {
	Commands  []any
	Responses []any
}

// Transaction accumulates the groups/backend-responses/JSON-fragments of
// one request, named after the engine this was modeled on
// (groups/pmgd_responses/json_responses).
type Transaction struct {
	mu      sync.Mutex
	groups  []*Group
	current int
}

// NewTransaction returns a Transaction pre-seeded with one group.
func NewTransaction() *Transaction {
	return &Transaction{groups: []*Group{{}}}
}

// AddGroup stages a new, empty group and makes it current.
func (t *Transaction) AddGroup() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.groups = append(t.groups, &Group{})
	t.current = len(t.groups) - 1

	return t.current
}

// CurrentGroup reports the index of the group new commands are added to.
func (t *Transaction) CurrentGroup() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.current
}

// AddCommand stages one backend command into the current group.
func (t *Transaction) AddCommand(cmd any) {
	t.mu.Lock()
	defer t.mu.Unlock()

	g := t.groups[t.current]
	g.Commands = append(g.Commands, cmd)
}

// AddResponse records one backend response against the current group, in
// the order its command was staged.
func (t *Transaction) AddResponse(resp any) {
	t.mu.Lock()
	defer t.mu.Unlock()

	g := t.groups[t.current]
	g.Responses = append(g.Responses, resp)
}

// Group returns the staged commands/responses for one group index.
func (t *Transaction) Group(i int) *Group {
	t.mu.Lock()
	defer t.mu.Unlock()

	if i < 0 || i >= len(t.groups) {
		return nil
	}

	return t.groups[i]
}

// JSONResponses flattens every group's responses in group order.
func (t *Transaction) JSONResponses() []any {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]any, 0)
	for _, g := range t.groups {
		out = append(out, g.Responses...)
	}

	return out
}
