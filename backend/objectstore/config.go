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

// Package objectstore is the reference handlers.ObjectStore implementation:
// the raw bytes of an image, video, blob, or descriptor, addressed by an
// opaque handle minted on Put. Three interchangeable drivers share one
// Config: a local filesystem tree, an embedded nutsdb key/value engine, and
// an S3-compatible bucket.
package objectstore

import (
	"strings"

	liberr "github.com/nabbar/vdms/errors"
)

type Driver string

const (
	DriverFS     Driver = "fs"
	DriverNutsDB Driver = "nutsdb"
	DriverS3     Driver = "s3"
)

func DriverFromString(s string) Driver {
	switch strings.ToLower(s) {
	case string(DriverFS):
		return DriverFS
	case string(DriverNutsDB):
		return DriverNutsDB
	case string(DriverS3):
		return DriverS3
	default:
		return ""
	}
}

// Config selects and parametrizes one object store driver. Only the fields
// relevant to Driver need to be set.
type Config struct {
	Driver Driver `json:"driver" yaml:"driver" toml:"driver" mapstructure:"driver"`

	// FSPath is the root directory for DriverFS; it is created if missing.
	FSPath string `json:"fs-path" yaml:"fs-path" toml:"fs-path" mapstructure:"fs-path"`

	// NutsDBPath is the data directory for the embedded DriverNutsDB engine.
	NutsDBPath string `json:"nutsdb-path" yaml:"nutsdb-path" toml:"nutsdb-path" mapstructure:"nutsdb-path"`

	// S3Bucket, S3Region, and S3Endpoint configure DriverS3. S3Endpoint may
	// be left empty to use the default AWS endpoint resolution, or set to
	// point at an S3-compatible service.
	S3Bucket   string `json:"s3-bucket" yaml:"s3-bucket" toml:"s3-bucket" mapstructure:"s3-bucket"`
	S3Region   string `json:"s3-region" yaml:"s3-region" toml:"s3-region" mapstructure:"s3-region"`
	S3Endpoint string `json:"s3-endpoint" yaml:"s3-endpoint" toml:"s3-endpoint" mapstructure:"s3-endpoint"`
	S3Prefix   string `json:"s3-prefix" yaml:"s3-prefix" toml:"s3-prefix" mapstructure:"s3-prefix"`
}

func (c *Config) Validate() liberr.Error {
	switch c.Driver {
	case DriverFS:
		if c.FSPath == "" {
			return ErrorConfigInvalid.Error(nil)
		}
	case DriverNutsDB:
		if c.NutsDBPath == "" {
			return ErrorConfigInvalid.Error(nil)
		}
	case DriverS3:
		if c.S3Bucket == "" {
			return ErrorConfigInvalid.Error(nil)
		}
	default:
		return ErrorUnknownDriver.Error(nil)
	}

	return nil
}
