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
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	spfcbr "github.com/spf13/cobra"

	libadm "github.com/nabbar/vdms/admin"
)

// statusModel is a one-shot bubbletea program: it renders the snapshot it
// was built with and quits on the first key press.
type statusModel struct {
	snap libadm.Snapshot
	done bool
}

func (m statusModel) Init() tea.Cmd {
	return nil
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m statusModel) View() string {
	title := color.New(color.FgCyan, color.Bold).SprintFunc()
	label := color.New(color.Faint).SprintFunc()

	return fmt.Sprintf(
		"%s\n  %s %d\n  %s %.1f%%\n  %s %.1f%%\n  %s %ds\n\n%s\n",
		title("vdms backend status"),
		label("available connections:"), m.snap.Pool.AvailableConnections,
		label("host cpu:"), m.snap.Host.CPUPercent,
		label("host mem:"), m.snap.Host.MemPercent,
		label("host uptime:"), m.snap.Host.UptimeSeconds,
		label("press any key to exit"),
	)
}

func statusCmd() *spfcbr.Command {
	return &spfcbr.Command{
		Use:   "status",
		Short: "show a point-in-time snapshot of the backend pool and host",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			ctx := cmd.Context()

			_, bp, err := dial(ctx, cfgFile)
			if err != nil {
				return err
			}
			defer func() {
				if bp != nil {
					_ = bp.Close()
				}
			}()

			snap, sErr := libadm.CollectSnapshot(bp)
			if sErr != nil {
				return sErr
			}

			p := tea.NewProgram(statusModel{snap: snap})
			_, rErr := p.Run()
			return rErr
		},
	}
}
