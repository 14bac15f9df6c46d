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

package config

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	libatm "github.com/nabbar/vdms/atomic"
	liberr "github.com/nabbar/vdms/errors"
	liblog "github.com/nabbar/vdms/logger"
)

type viperConfig struct {
	m sync.Mutex // guards path and hooks only; set is swapped atomically

	log liblog.FuncLog
	vpr *viper.Viper

	path string
	set  libatm.Value[Settings]

	hooks []func(s Settings)
}

func newViperConfig(log liblog.FuncLog) *viperConfig {
	return &viperConfig{
		log: log,
		vpr: viper.New(),
		set: libatm.NewValue[Settings](),
	}
}

func (c *viperConfig) Load(path string) liberr.Error {
	c.m.Lock()
	defer c.m.Unlock()

	if path != "" {
		c.path = path
	}

	if c.path == "" {
		return ErrorConfigFileMissing.Error(nil)
	}

	c.vpr.SetConfigFile(c.path)

	if err := c.vpr.ReadInConfig(); err != nil {
		return ErrorConfigRead.Error(err)
	}

	var s Settings
	if err := c.vpr.Unmarshal(&s); err != nil {
		return ErrorConfigUnmarshal.Error(err)
	}

	if e := s.Validate(); e != nil {
		return e
	}

	c.set.Store(s)

	return nil
}

func (c *viperConfig) Settings() Settings {
	return c.set.Load()
}

func (c *viperConfig) Watch() {
	c.vpr.OnConfigChange(func(_ fsnotify.Event) {
		if err := c.Load(""); err != nil {
			if c.log != nil {
				c.log().Error("config reload failed: %s", err.Error())
			}
			return
		}

		s := c.set.Load()

		c.m.Lock()
		hooks := make([]func(s Settings), len(c.hooks))
		copy(hooks, c.hooks)
		c.m.Unlock()

		for _, h := range hooks {
			h(s)
		}
	})

	c.vpr.WatchConfig()
}

func (c *viperConfig) OnChange(fct func(s Settings)) {
	if fct == nil {
		return
	}

	c.m.Lock()
	defer c.m.Unlock()

	c.hooks = append(c.hooks, fct)
}
