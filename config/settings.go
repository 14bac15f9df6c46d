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
	"fmt"
	"time"

	libtls "github.com/nabbar/vdms/certificate"
	liberr "github.com/nabbar/vdms/errors"
)

// StorageSettings maps one visual-object format (png, jpg, tdb, mp4, ...) to
// the directory it is persisted under. The file lists these entries under a
// single "storage" key; separate storage_<format> keys are not read.
type StorageSettings struct {
	Format string `mapstructure:"format" json:"format" yaml:"format" toml:"format"`
	Path   string `mapstructure:"path" json:"path" yaml:"path" toml:"path"`
}

// Settings is the full, flattened VDMS configuration file shape: the
// minimum list (port, db_root_path, storage, descriptor_path, blob_path,
// TLS paths, autoreplicate_interval, autoreplication_unit, backup_path) plus
// the additional fields this module wires in (graph backend selection/DSN,
// S3 object-store bucket/region, KV cache toggle,
// replication transport URL, notification transport, metrics port).
type Settings struct {
	// Port is the metadata client's listening port (default 55555).
	Port int `mapstructure:"port" json:"port" yaml:"port" toml:"port"`

	// QueryPort is the query client's listening port (default 55558).
	QueryPort int `mapstructure:"query_port" json:"query_port" yaml:"query_port" toml:"query_port"`

	// DBRootPath is the root of the persisted property-graph state.
	DBRootPath string `mapstructure:"db_root_path" json:"db_root_path" yaml:"db_root_path" toml:"db_root_path"`

	// Storage lists one entry per visual-object format this server persists.
	Storage []StorageSettings `mapstructure:"storage" json:"storage" yaml:"storage" toml:"storage"`

	// DescriptorPath is where feature-vector descriptor sets are stored.
	DescriptorPath string `mapstructure:"descriptor_path" json:"descriptor_path" yaml:"descriptor_path" toml:"descriptor_path"`

	// BlobPath is where arbitrary opaque blobs are stored.
	BlobPath string `mapstructure:"blob_path" json:"blob_path" yaml:"blob_path" toml:"blob_path"`

	// BackupPath is where the replication/backup snapshot is written.
	BackupPath string `mapstructure:"backup_path" json:"backup_path" yaml:"backup_path" toml:"backup_path"`

	// AutoReplicateInterval is loaded from the config file but not read by the
	// server: no snapshot is scheduled from it, and the replication publisher
	// flushes on its own default interval.
	AutoReplicateInterval int `mapstructure:"autoreplicate_interval" json:"autoreplicate_interval" yaml:"autoreplicate_interval" toml:"autoreplicate_interval"`

	// AutoReplicationUnit names the NATS subject the replication publisher
	// sends batches to when NatsURL is set.
	AutoReplicationUnit string `mapstructure:"autoreplication_unit" json:"autoreplication_unit" yaml:"autoreplication_unit" toml:"autoreplication_unit"`

	// TLS is the listener's certificate/key/CA material and client-auth mode.
	TLS libtls.Config `mapstructure:"tls" json:"tls" yaml:"tls" toml:"tls"`

	// GraphDriver selects the reference graph-backend SQL driver
	// (mysql, psql, sqlite, sqlserver, clickhouse).
	GraphDriver string `mapstructure:"graph_driver" json:"graph_driver" yaml:"graph_driver" toml:"graph_driver"`

	// GraphDSN is the driver-specific data source name for GraphDriver.
	GraphDSN string `mapstructure:"graph_dsn" json:"graph_dsn" yaml:"graph_dsn" toml:"graph_dsn"`

	// StorageS3Bucket, when set, routes object-store writes to this S3 bucket
	// instead of the filesystem paths above.
	StorageS3Bucket string `mapstructure:"storage_s3_bucket" json:"storage_s3_bucket" yaml:"storage_s3_bucket" toml:"storage_s3_bucket"`
	StorageS3Region string `mapstructure:"storage_s3_region" json:"storage_s3_region" yaml:"storage_s3_region" toml:"storage_s3_region"`

	// KVCacheEnabled, when StorageS3Bucket is empty, makes the object store
	// an embedded nutsdb database under BlobPath instead of plain files. It
	// replaces the filesystem store; it is not a cache in front of it.
	KVCacheEnabled bool `mapstructure:"kv_cache_enabled" json:"kv_cache_enabled" yaml:"kv_cache_enabled" toml:"kv_cache_enabled"`

	// NatsURL is the autoreplication publish target. Empty disables replication.
	NatsURL string `mapstructure:"nats_url" json:"nats_url" yaml:"nats_url" toml:"nats_url"`

	// SMTPHost/SMTPPort/SMTPFrom/SMTPTo configure operator-alert notifications.
	// Empty SMTPHost disables notify.
	SMTPHost string   `mapstructure:"smtp_host" json:"smtp_host" yaml:"smtp_host" toml:"smtp_host"`
	SMTPPort int      `mapstructure:"smtp_port" json:"smtp_port" yaml:"smtp_port" toml:"smtp_port"`
	SMTPFrom string   `mapstructure:"smtp_from" json:"smtp_from" yaml:"smtp_from" toml:"smtp_from"`
	SMTPTo   []string `mapstructure:"smtp_to" json:"smtp_to" yaml:"smtp_to" toml:"smtp_to"`

	// MetricsPort is the admin HTTP surface's listening port (Prometheus + health).
	MetricsPort int `mapstructure:"metrics_port" json:"metrics_port" yaml:"metrics_port" toml:"metrics_port"`

	// PoolIdleTimeout/PoolMaxConn bound the backend connection pool.
	PoolIdleTimeout time.Duration `mapstructure:"pool_idle_timeout" json:"pool_idle_timeout" yaml:"pool_idle_timeout" toml:"pool_idle_timeout"`
	PoolMaxConn     int           `mapstructure:"pool_max_conn" json:"pool_max_conn" yaml:"pool_max_conn" toml:"pool_max_conn"`
}

// Validate checks the settings enough to catch configuration that would
// otherwise fail late (during dial/listen) with a less actionable error.
func (s *Settings) Validate() liberr.Error {
	e := ErrorConfigValidate.Error(nil)

	if s.Port == 0 {
		//nolint #goerr113
		e.Add(fmt.Errorf("field 'port' is required"))
	}
	if s.DBRootPath == "" {
		//nolint #goerr113
		e.Add(fmt.Errorf("field 'db_root_path' is required"))
	}
	if s.GraphDriver == "" {
		//nolint #goerr113
		e.Add(fmt.Errorf("field 'graph_driver' is required"))
	}

	if !e.HasParent() {
		return nil
	}

	return e
}
