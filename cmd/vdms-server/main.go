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

// Command vdms-server is the VDMS process entrypoint: it loads the JSON/
// YAML/TOML config file, wires the backend graph store, object store, and
// optional replication/notify/FTP collaborators, then serves the metadata
// and query ports until SIGINT/SIGTERM/SIGQUIT.
package main

import (
	"fmt"
	"os"

	spfcbr "github.com/spf13/cobra"

	_ "github.com/nabbar/vdms/handlers"
)

var cfgFile string

func main() {
	root := &spfcbr.Command{
		Use:   "vdms-server",
		Short: "visual-data management server",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			return runServer(cmd.Context(), cfgFile)
		},
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "vdms.yaml", "path to the configuration file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
