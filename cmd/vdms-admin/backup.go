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

package main

import (
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	spfcbr "github.com/spf13/cobra"

	libadm "github.com/nabbar/vdms/admin"
)

func backupCmd() *spfcbr.Command {
	return &spfcbr.Command{
		Use:   "backup",
		Short: "copy the graph and blob state to the configured backup path",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			ctx := cmd.Context()

			set, bp, err := dial(ctx, cfgFile)
			if err != nil {
				return err
			}
			if bp != nil {
				defer func() { _ = bp.Close() }()
			}

			sources := []libadm.BackupSource{
				{Label: "graph", Path: set.DBRootPath},
				{Label: "descriptor", Path: set.DescriptorPath},
				{Label: "blob", Path: set.BlobPath},
			}

			total, sErr := libadm.BackupSize(sources)
			if sErr != nil {
				return sErr
			}

			progress := mpb.New(mpb.WithWidth(64))
			bar := progress.AddBar(total,
				mpb.PrependDecorators(decor.Name("backup ")),
				mpb.AppendDecorators(decor.Percentage(), decor.Name(" "), decor.EwmaETA(decor.ET_STYLE_GO, 30)),
			)

			start := time.Now()
			bErr := libadm.Backup(sources, set.BackupPath, func(copied, _ int64) {
				bar.SetCurrent(copied)
				bar.DecoratorEwmaUpdate(time.Since(start))
			})
			progress.Wait()

			return bErr
		},
	}
}
