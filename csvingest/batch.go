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

// Package csvingest turns a CSV reader into a batch of AddEntity command
// bodies, one per data row. It performs no backend I/O of its own: callers
// feed the returned commands into the normal dispatcher as a request, the
// same as any other client-submitted command array.
package csvingest

import (
	"encoding/csv"
	"encoding/json"
	"io"
)

// Command is one element of a dispatcher request: a single-key JSON object
// naming the command and carrying its body, e.g. {"AddEntity": {...}}.
type Command = json.RawMessage

// Batch reads a CSV document from r and turns every data row into an
// AddEntity command. The header row names the properties; classColumn
// names the header column whose value becomes the entity's class for that
// row and is not itself carried into properties.
func Batch(r io.Reader, classColumn string) ([]Command, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrorEmptyHeader.Error(nil)
		}
		return nil, ErrorRead.Error(err)
	}
	if len(header) == 0 {
		return nil, ErrorEmptyHeader.Error(nil)
	}

	classIdx := -1
	for i, h := range header {
		if h == classColumn {
			classIdx = i
			break
		}
	}
	if classIdx < 0 {
		return nil, ErrorMissingClassColumn.Error(nil)
	}

	var commands []Command

	for {
		row, rErr := cr.Read()
		if rErr == io.EOF {
			break
		}
		if rErr != nil {
			return nil, ErrorRead.Error(rErr)
		}
		if len(row) != len(header) {
			return nil, ErrorRowShape.Error(nil)
		}

		props := make(map[string]string, len(header)-1)
		for i, h := range header {
			if i == classIdx {
				continue
			}
			props[h] = row[i]
		}

		body := map[string]any{
			"class":      row[classIdx],
			"properties": props,
		}

		encoded, mErr := json.Marshal(map[string]any{"AddEntity": body})
		if mErr != nil {
			return nil, ErrorRead.Error(mErr)
		}

		commands = append(commands, encoded)
	}

	return commands, nil
}
