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

import (
	"fmt"
	"strconv"
)

// Matches reports whether props satisfies every predicate of every
// property in constraints, ANDing across properties and within a single
// property's conjunction alike. A property absent from props only
// satisfies a "!=" predicate.
func Matches(props map[string]any, constraints map[string][]Predicate) bool {
	for prop, preds := range constraints {
		v, has := props[prop]
		for _, p := range preds {
			if !matchPredicate(v, has, p) {
				return false
			}
		}
	}
	return true
}

func matchPredicate(v any, has bool, p Predicate) bool {
	if !has {
		return p.Op == "!="
	}

	if vf, ok := toFloat(v); ok {
		if pf, ok := toFloat(p.Value); ok {
			switch p.Op {
			case "==":
				return vf == pf
			case "!=":
				return vf != pf
			case "<":
				return vf < pf
			case "<=":
				return vf <= pf
			case ">":
				return vf > pf
			case ">=":
				return vf >= pf
			}
			return false
		}
	}

	vs := fmt.Sprintf("%v", v)
	ps := fmt.Sprintf("%v", p.Value)
	switch p.Op {
	case "==":
		return vs == ps
	case "!=":
		return vs != ps
	default:
		return false
	}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
