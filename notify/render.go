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

package notify

import (
	"github.com/matcornic/hermes/v2"
)

// Alert is the content of one operational notification: a short headline
// (the hermes intro line) and a list of plain detail lines (rendered as
// hermes dictionary entries, one entry keyed "detail" per line).
type Alert struct {
	Subject string
	Intro   string
	Lines   []string
	Outro   string
}

func (c *Config) hermes() hermes.Hermes {
	return hermes.Hermes{
		Product: hermes.Product{
			Name: c.AppName,
			Link: c.Link,
		},
	}
}

func (c *Config) render(a Alert) (html string, plain string, err error) {
	body := hermes.Body{
		Intros: []string{a.Intro},
		Outros: []string{a.Outro},
	}

	if len(a.Lines) > 0 {
		rows := make([]hermes.Entry, 0, len(a.Lines))
		for _, l := range a.Lines {
			rows = append(rows, hermes.Entry{Key: "detail", Value: l})
		}
		body.Dictionary = rows
	}

	email := hermes.Email{Body: body}
	h := c.hermes()

	html, err = h.GenerateHTML(email)
	if err != nil {
		return "", "", ErrorRender.Error(err)
	}

	plain, err = h.GeneratePlainText(email)
	if err != nil {
		return "", "", ErrorRender.Error(err)
	}

	return html, plain, nil
}
