/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

package config_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libcfg "github.com/nabbar/vdms/config"
	liblog "github.com/nabbar/vdms/logger"
)

const sampleConfig = `{
  "port": 55555,
  "query_port": 55558,
  "db_root_path": "/tmp/vdms/db",
  "descriptor_path": "/tmp/vdms/descriptors",
  "blob_path": "/tmp/vdms/blobs",
  "backup_path": "/tmp/vdms/backup",
  "autoreplicate_interval": 60,
  "autoreplication_unit": "minute",
  "graph_driver": "sqlite",
  "graph_dsn": "file::memory:",
  "kv_cache_enabled": true,
  "metrics_port": 9090
}`

var _ = Describe("Config", func() {
	var (
		dir  string
		path string
		cfg  libcfg.Config
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "vdms-config-*")
		Expect(err).ToNot(HaveOccurred())

		path = filepath.Join(dir, "vdms.json")
		Expect(os.WriteFile(path, []byte(sampleConfig), 0644)).To(Succeed())

		log := func() liblog.Logger {
			return liblog.New(context.Background())
		}
		cfg = libcfg.New(log)
	})

	AfterEach(func() {
		_ = os.RemoveAll(dir)
	})

	Describe("Load", func() {
		It("should fail when no path is ever set", func() {
			fresh := libcfg.New(nil)
			Expect(fresh.Load("")).ToNot(BeNil())
		})

		It("should load a valid config file", func() {
			Expect(cfg.Load(path)).To(BeNil())

			s := cfg.Settings()
			Expect(s.Port).To(Equal(55555))
			Expect(s.QueryPort).To(Equal(55558))
			Expect(s.GraphDriver).To(Equal("sqlite"))
			Expect(s.KVCacheEnabled).To(BeTrue())
			Expect(s.MetricsPort).To(Equal(9090))
		})

		It("should fail validation when required fields are missing", func() {
			Expect(os.WriteFile(path, []byte(`{"port": 0}`), 0644)).To(Succeed())
			Expect(cfg.Load(path)).ToNot(BeNil())
		})

		It("should fail when the file does not exist", func() {
			Expect(cfg.Load(filepath.Join(dir, "missing.json"))).ToNot(BeNil())
		})
	})

	Describe("OnChange", func() {
		It("should accept callback registrations without invoking them on a direct Load", func() {
			Expect(cfg.Load(path)).To(BeNil())

			called := false
			cfg.OnChange(func(s libcfg.Settings) {
				called = true
			})

			// OnChange callbacks fire from the fsnotify watcher, not from a
			// direct Load; this only asserts registration does not panic
			// and the callback slice accepts multiple entries.
			cfg.OnChange(func(s libcfg.Settings) {})

			Expect(called).To(BeFalse())
		})
	})
})
