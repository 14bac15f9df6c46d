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
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	libadm "github.com/nabbar/vdms/admin"
	liblog "github.com/nabbar/vdms/logger"
	libntf "github.com/nabbar/vdms/notify"
	libpool "github.com/nabbar/vdms/pool"
)

var poolAvailableGauge = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "vdms_pool_available_connections",
	Help: "Number of idle backend connections currently available in the pool.",
})

// dispatchErrorCount is incremented by serveConn on every failed dispatch;
// watchErrorRate watches it for a spike and alerts through notifier.
var dispatchErrorCount atomic.Int64

const errorSpikeThreshold = 20

func init() {
	prometheus.MustRegister(poolAvailableGauge)
}

// serveAdminHTTP runs the operator-facing HTTP surface (health check, JSON
// status snapshot, Prometheus metrics) until the process exits. port <= 0
// disables the surface entirely.
func serveAdminHTTP(port int, bp libpool.BackendPool, log liblog.Logger, notifier libntf.Notifier) {
	if port <= 0 {
		return
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/status", func(c *gin.Context) {
		snap, err := libadm.CollectSnapshot(bp)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, snap)
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	go reportPoolGauge(bp)
	go watchErrorRate(notifier, log)

	addr := fmt.Sprintf(":%d", port)
	if err := r.Run(addr); err != nil && log != nil {
		log.Error("admin HTTP surface stopped: %s", err.Error())
	}
}

// reportPoolGauge samples the pool's idle-connection count into a
// Prometheus gauge every few seconds for as long as the process runs.
func reportPoolGauge(bp libpool.BackendPool) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		poolAvailableGauge.Set(float64(libadm.CollectPoolStatus(bp).AvailableConnections))
	}
}

// watchErrorRate emails the operators once per minute that dispatch errors
// crossed errorSpikeThreshold, if a notifier is configured.
func watchErrorRate(notifier libntf.Notifier, log liblog.Logger) {
	if notifier == nil {
		return
	}

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		n := dispatchErrorCount.Swap(0)
		if n < errorSpikeThreshold {
			continue
		}

		err := notifier.Send(context.Background(), libntf.Alert{
			Subject: "vdms: backend error rate spike",
			Intro:   "the backend reported an elevated dispatch failure rate",
			Lines:   []string{fmt.Sprintf("failures in the last minute: %d", n)},
			Outro:   "check the server logs for the failing commands",
		})
		if err != nil && log != nil {
			log.Error("error-rate alert failed to send: %s", err.Error())
		}
	}
}
