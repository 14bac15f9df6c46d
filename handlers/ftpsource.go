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

package handlers

import "sync"

// FTPSource is the collaborator AddImage/AddVideo use to fetch bytes named
// by a from_server_file URL instead of consuming the request's next blob.
// A reference implementation lives in ftpsource; SetFTPSource wires it in
// from the server's startup code. It is optional: a nil source simply makes
// from_server_file unsupported.
type FTPSource interface {
	Fetch(url string) ([]byte, error)
}

var (
	ftpMu sync.RWMutex
	ftp   FTPSource
)

// SetFTPSource installs the process-wide FTP fetcher used to resolve
// from_server_file references on AddImage/AddVideo.
func SetFTPSource(s FTPSource) {
	ftpMu.Lock()
	defer ftpMu.Unlock()
	ftp = s
}

func currentFTPSource() FTPSource {
	ftpMu.RLock()
	defer ftpMu.RUnlock()
	return ftp
}
