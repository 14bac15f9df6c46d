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

// Package query implements the handler-independent translation rules of the
// query-transaction engine: constraints to predicate trees, properties to
// typed key/value pairs, link objects to traversal constraints, and the
// per-request group/response bookkeeping (groups, pmgd_responses,
// json_responses in the engine this was modeled on).
package query

import (
	"strconv"
	"strings"
	"time"

	liberr "github.com/nabbar/vdms/errors"
)

// Predicate is one "op value" pair of a constraint's conjunction.
type Predicate struct {
	Op    string
	Value any
}

var validOps = map[string]bool{
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
}

// ParseConstraints turns {"prop": ["==", v1, "<", v2, ...]} into a
// conjunction of Predicates per property; repeated pairs on the same
// property AND together.
func ParseConstraints(constraints map[string]any) (map[string][]Predicate, liberr.Error) {
	out := make(map[string][]Predicate, len(constraints))

	for prop, raw := range constraints {
		arr, ok := raw.([]any)
		if !ok || len(arr)%2 != 0 || len(arr) == 0 {
			return nil, ErrorInvalidConstraint.Error(nil)
		}

		preds := make([]Predicate, 0, len(arr)/2)
		for i := 0; i < len(arr); i += 2 {
			op, ok := arr[i].(string)
			if !ok || !validOps[op] {
				return nil, ErrorInvalidConstraint.Error(nil)
			}

			preds = append(preds, Predicate{Op: op, Value: ParseValue(arr[i+1])})
		}

		out[prop] = preds
	}

	return out, nil
}

// ParseProperties converts a raw JSON-decoded properties map into typed Go
// values: bool, int64, float64, string, or time.Time for dates.
func ParseProperties(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))

	for k, v := range props {
		out[k] = ParseValue(v)
	}

	return out
}

// ParseValue applies the handler-independent value-typing rule to one raw
// JSON value: an object of the form {"_date": "<ISO-8601>"} or a string
// prefixed "date:" becomes a time.Time; "true"/"false" (case-insensitive)
// becomes a bool; an integer-parseable string becomes int64; otherwise a
// float-parseable string becomes float64; anything else passes through
// unchanged (bool/float64/nil already typed by encoding/json, strings that
// are genuinely strings stay strings).
func ParseValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if d, ok := t["_date"]; ok {
			if s, ok := d.(string); ok {
				if tm, err := time.Parse(time.RFC3339, s); err == nil {
					return tm
				}
			}
		}
		return v

	case string:
		if strings.HasPrefix(t, "date:") {
			if tm, err := time.Parse(time.RFC3339, strings.TrimPrefix(t, "date:")); err == nil {
				return tm
			}
			return t
		}

		switch strings.ToLower(t) {
		case "true":
			return true
		case "false":
			return false
		}

		if i, err := strconv.ParseInt(t, 10, 64); err == nil {
			return i
		}

		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}

		return t

	default:
		return v
	}
}

// Link is a traversal constraint anchored at a _ref bound earlier in the
// same request.
type Link struct {
	Ref    int64
	Dir    string
	Class  string
	Unique bool
}

// ParseLink translates a "link" object into a traversal constraint.
func ParseLink(link map[string]any) (Link, liberr.Error) {
	var l Link

	refV, ok := link["ref"]
	if !ok {
		return l, ErrorBadLink.Error(nil)
	}

	switch r := refV.(type) {
	case float64:
		l.Ref = int64(r)
	case int64:
		l.Ref = r
	default:
		return l, ErrorBadLink.Error(nil)
	}

	if c, ok := link["class"].(string); ok {
		l.Class = c
	}
	if d, ok := link["direction"].(string); ok {
		l.Dir = d
	}
	if u, ok := link["unique"].(bool); ok {
		l.Unique = u
	}

	return l, nil
}
