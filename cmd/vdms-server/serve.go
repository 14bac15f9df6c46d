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
	"context"
	"time"

	libgraph "github.com/nabbar/vdms/backend/graph"
	libobj "github.com/nabbar/vdms/backend/objectstore"
	libcfg "github.com/nabbar/vdms/config"
	libgorm "github.com/nabbar/vdms/database/gorm"
	libdsp "github.com/nabbar/vdms/dispatch"
	libenv "github.com/nabbar/vdms/envelope"
	libfts "github.com/nabbar/vdms/ftpsource"
	libhdl "github.com/nabbar/vdms/handlers"
	liblog "github.com/nabbar/vdms/logger"
	libntf "github.com/nabbar/vdms/notify"
	libpool "github.com/nabbar/vdms/pool"
	librep "github.com/nabbar/vdms/replicate"
	libtrp "github.com/nabbar/vdms/transport"
)

const requestTimeout = 30 * time.Second

func runServer(ctx context.Context, cfgPath string) error {
	log := liblog.New(ctx)
	logFn := func() liblog.Logger { return log }

	cfg := libcfg.New(logFn)
	if err := cfg.Load(cfgPath); err != nil {
		return err
	}
	cfg.Watch()

	set := cfg.Settings()

	tlsCfg, tErr := set.TLS.NewFrom(nil)
	if tErr != nil {
		return tErr
	}

	gormCfg := &libgorm.Config{
		Driver: libgorm.DriverFromString(set.GraphDriver),
		DSN:    set.GraphDSN,
	}
	gormCfg.RegisterContext(ctx)
	gormCfg.RegisterLogger(logFn, true, 200*time.Millisecond)

	backend, bErr := libgraph.New(gormCfg)
	if bErr != nil {
		return bErr
	}

	pool, pErr := libpool.New(ctx, backend, poolSize(set.PoolMaxConn))
	if pErr != nil {
		return pErr
	}
	defer func() { _ = pool.Close() }()

	store, sErr := libobj.New(ctx, objectStoreConfig(set))
	if sErr != nil {
		return sErr
	}
	libhdl.SetObjectStore(store)

	if set.NatsURL != "" {
		pub, rErr := librep.New(&librep.Config{URL: set.NatsURL, Unit: set.AutoReplicationUnit})
		if rErr != nil {
			return rErr
		}
		defer func() { _ = pub.Close() }()
	}

	ftpCfg := &libfts.Config{ConnTimeout: 10 * time.Second}
	libhdl.SetFTPSource(libfts.New(ftpCfg))

	var notifier libntf.Notifier
	if set.SMTPHost != "" {
		n, nErr := libntf.New(&libntf.Config{
			Host: set.SMTPHost, Port: set.SMTPPort,
			From: set.SMTPFrom, To: set.SMTPTo,
			AppName: "vdms",
		})
		if nErr != nil {
			return nErr
		}
		notifier = n
	}

	servers := []libtrp.ConnServer{
		libtrp.NewConnServer(set.Port, tlsCfg, libtrp.DefaultMaxFrameSize, logFn),
		libtrp.NewConnServer(set.QueryPort, tlsCfg, libtrp.DefaultMaxFrameSize, logFn),
	}

	for _, srv := range servers {
		if lErr := srv.Listen(); lErr != nil {
			return lErr
		}
		go acceptLoop(ctx, srv, pool, log)
	}

	go serveAdminHTTP(set.MetricsPort, pool, log, notifier)

	servers[0].WaitNotify()
	for _, srv := range servers[1:] {
		_ = srv.Shutdown()
	}

	return nil
}

func poolSize(n int) int {
	if n <= 0 {
		return 8
	}
	return n
}

func objectStoreConfig(set libcfg.Settings) *libobj.Config {
	if set.StorageS3Bucket != "" {
		return &libobj.Config{
			Driver:   libobj.DriverS3,
			S3Bucket: set.StorageS3Bucket,
			S3Region: set.StorageS3Region,
		}
	}
	if set.KVCacheEnabled {
		return &libobj.Config{
			Driver:     libobj.DriverNutsDB,
			NutsDBPath: set.BlobPath,
		}
	}
	return &libobj.Config{
		Driver: libobj.DriverFS,
		FSPath: set.BlobPath,
	}
}

// acceptLoop accepts connections on srv until it shuts down, serving each
// one on its own goroutine.
func acceptLoop(ctx context.Context, srv libtrp.ConnServer, bp libpool.BackendPool, log liblog.Logger) {
	for srv.IsRunning() {
		conn, err := srv.Accept()
		if err != nil {
			if srv.IsRunning() && log != nil {
				log.Warning("accept failed: %s", err.Error())
			}
			continue
		}

		go serveConn(ctx, conn, bp, log)
	}
}

func serveConn(ctx context.Context, conn *libtrp.Connection, bp libpool.BackendPool, log liblog.Logger) {
	defer func() { _ = conn.Close() }()

	for {
		payload, rErr := conn.Receive()
		if rErr != nil {
			return
		}

		env, dErr := libenv.Decode(payload)
		if dErr != nil {
			continue
		}

		c, cancel := context.WithTimeout(ctx, requestTimeout)
		pc, pErr := bp.GetConn(c)
		if pErr != nil {
			cancel()
			if log != nil {
				log.Error("no backend connection available: %s", pErr.Error())
			}
			continue
		}

		respJSON, respBlobs, xErr := libdsp.Dispatch(c, bp, pc, env.Json, env.Blobs, requestTimeout)
		bp.PutConn(pc)
		cancel()

		if xErr != nil {
			dispatchErrorCount.Add(1)
			if log != nil {
				log.Error("dispatch failed: %s", xErr.Error())
			}
			continue
		}

		out, eErr := libenv.New(respJSON, respBlobs).Encode()
		if eErr != nil {
			continue
		}

		if sErr := conn.Send(out); sErr != nil {
			return
		}
	}
}

