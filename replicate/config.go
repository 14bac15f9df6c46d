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

package replicate

import (
	"time"

	liberr "github.com/nabbar/vdms/errors"
)

const (
	DefaultInterval  = 5 * time.Second
	DefaultBatchSize = 64
)

// Config parametrizes the NATS-backed Publisher. URL left empty disables
// replication entirely; callers should skip calling New in that case.
type Config struct {
	URL       string        `json:"nats_url" yaml:"nats_url" toml:"nats_url" mapstructure:"nats_url"`
	Unit      string        `json:"autoreplication_unit" yaml:"autoreplication_unit" toml:"autoreplication_unit" mapstructure:"autoreplication_unit"`
	Interval  time.Duration `json:"autoreplicate_interval" yaml:"autoreplicate_interval" toml:"autoreplicate_interval" mapstructure:"autoreplicate_interval"`
	BatchSize int           `json:"autoreplicate_batch_size" yaml:"autoreplicate_batch_size" toml:"autoreplicate_batch_size" mapstructure:"autoreplicate_batch_size"`
}

func (c *Config) Validate() liberr.Error {
	if c.URL == "" {
		return ErrorConfigInvalid.Error(nil)
	}
	if c.Unit == "" {
		return ErrorConfigInvalid.Error(nil)
	}
	return nil
}

func (c *Config) interval() time.Duration {
	if c.Interval <= 0 {
		return DefaultInterval
	}
	return c.Interval
}

func (c *Config) batchSize() int {
	if c.BatchSize <= 0 {
		return DefaultBatchSize
	}
	return c.BatchSize
}
