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

// Package config loads the JSON/YAML/TOML configuration file into a typed
// Settings struct, with fsnotify-driven hot-reload of the file on disk. It
// wraps spf13/viper as a thin typed facade over one *viper.Viper instance,
// trimmed to the single config shape this server needs instead of a
// generic any-struct unmarshal-hook surface.
package config

import (
	liberr "github.com/nabbar/vdms/errors"
	liblog "github.com/nabbar/vdms/logger"
)

// Config loads and holds the live Settings, watching the backing file for
// changes and notifying registered callbacks when it is reloaded.
type Config interface {
	// Load reads path (or, if path is empty, reuses the last path set) and
	// unmarshals it into the current Settings.
	Load(path string) liberr.Error

	// Settings returns a copy of the currently loaded settings.
	Settings() Settings

	// Watch starts watching the config file for changes, reloading and
	// invoking every registered OnChange callback on each change.
	Watch()

	// OnChange registers a callback invoked after every successful reload.
	OnChange(fct func(s Settings))
}

// New returns a Config bound to the given logger factory.
func New(log liblog.FuncLog) Config {
	return newViperConfig(log)
}
