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

// MissingProperty is emitted in a list projection wherever a requested
// property is absent on the matched entity.
const MissingProperty = "Missing property"

// Match is one backend row a find command has to project.
type Match struct {
	Properties map[string]any
	Blob       []byte
	HasBlob    bool
}

// Projection mirrors a find command's "results" object.
type Projection struct {
	List     []string
	Count    bool
	Sum      string
	Average  string
	Blob     bool
	Limit    int
	Offset   int
}

// ProjectList builds the "list" results array: one object per match with
// the requested properties, substituting MissingProperty for absent ones.
func ProjectList(matches []Match, props []string) []map[string]any {
	out := make([]map[string]any, 0, len(matches))

	for _, m := range matches {
		row := make(map[string]any, len(props))
		for _, p := range props {
			if v, ok := m.Properties[p]; ok {
				row[p] = v
			} else {
				row[p] = MissingProperty
			}
		}
		out = append(out, row)
	}

	return out
}

// ProjectCount returns the number of matches, independent of any numeric
// aggregation over a property.
func ProjectCount(matches []Match) int {
	return len(matches)
}

// ProjectSum sums a numeric property across matches; non-numeric or absent
// values are skipped.
func ProjectSum(matches []Match, prop string) float64 {
	var sum float64
	for _, m := range matches {
		if v, ok := numeric(m.Properties[prop]); ok {
			sum += v
		}
	}
	return sum
}

// ProjectAverage averages a numeric property across matches that have it;
// it returns 0 when no match carries the property.
func ProjectAverage(matches []Match, prop string) float64 {
	var sum float64
	var n int
	for _, m := range matches {
		if v, ok := numeric(m.Properties[prop]); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// ProjectBlobs returns, in match order, the bytes of every match that
// carries one; callers append these to the response blob list.
func ProjectBlobs(matches []Match) [][]byte {
	out := make([][]byte, 0, len(matches))
	for _, m := range matches {
		if m.HasBlob {
			out = append(out, m.Blob)
		}
	}
	return out
}

func numeric(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	default:
		return 0, false
	}
}
