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

package admin

import (
	"io"
	"os"
	"path/filepath"

	liberr "github.com/nabbar/vdms/errors"
)

// BackupSource names one tree to fold into a backup: db_root_path and
// blob_path each land under their own Label subdirectory of the backup.
type BackupSource struct {
	Label string
	Path  string
}

// ProgressFunc is invoked after every file is copied, with the cumulative
// bytes copied so far and the total bytes the backup will copy.
type ProgressFunc func(copied, total int64)

// BackupSize sums the size of every regular file under every source.
func BackupSize(sources []BackupSource) (int64, liberr.Error) {
	var total int64

	for _, src := range sources {
		if _, err := os.Stat(src.Path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return 0, ErrorBackupSourceMissing.Error(err)
		}

		werr := filepath.Walk(src.Path, func(_ string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() {
				total += info.Size()
			}
			return nil
		})
		if werr != nil {
			return 0, ErrorBackupWalk.Error(werr)
		}
	}

	return total, nil
}

// Backup copies every regular file under each source into destRoot, under a
// subdirectory named after the source's Label, preserving the relative tree
// structure. progress, if non-nil, is called after each file.
func Backup(sources []BackupSource, destRoot string, progress ProgressFunc) liberr.Error {
	if destRoot == "" {
		return ErrorBackupDestInvalid.Error(nil)
	}
	if err := os.MkdirAll(destRoot, 0o755); err != nil {
		return ErrorBackupDestInvalid.Error(err)
	}

	total, szErr := BackupSize(sources)
	if szErr != nil {
		return szErr
	}

	var copied int64

	for _, src := range sources {
		if _, err := os.Stat(src.Path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return ErrorBackupSourceMissing.Error(err)
		}

		dstBase := filepath.Join(destRoot, src.Label)

		werr := filepath.Walk(src.Path, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			rel, rErr := filepath.Rel(src.Path, path)
			if rErr != nil {
				return rErr
			}
			dst := filepath.Join(dstBase, rel)

			if info.IsDir() {
				return os.MkdirAll(dst, 0o755)
			}

			n, cErr := copyFile(path, dst)
			if cErr != nil {
				return cErr
			}

			copied += n
			if progress != nil {
				progress(copied, total)
			}

			return nil
		})
		if werr != nil {
			return ErrorBackupCopy.Error(werr)
		}
	}

	return nil
}

func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	if err = os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, err
	}

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	defer func() { _ = out.Close() }()

	return io.Copy(out, in)
}
