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

// Package admin implements the operator-facing inspection and maintenance
// operations behind the vdms-admin CLI: a point-in-time status snapshot of
// the backend connection pool and host resources, and a file-tree backup
// copy of the server's persisted state.
package admin

import (
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"

	liberr "github.com/nabbar/vdms/errors"
	libpool "github.com/nabbar/vdms/pool"
)

// PoolStatus is a point-in-time read of the backend connection pool.
type PoolStatus struct {
	AvailableConnections int
}

// HostStatus is a point-in-time read of the host the server runs on.
type HostStatus struct {
	CPUPercent    float64
	MemPercent    float64
	UptimeSeconds uint64
}

// Snapshot is the full payload the status command renders.
type Snapshot struct {
	Pool PoolStatus
	Host HostStatus
}

// CollectPoolStatus reads the current idle-connection count from bp.
func CollectPoolStatus(bp libpool.BackendPool) PoolStatus {
	if bp == nil {
		return PoolStatus{}
	}
	return PoolStatus{AvailableConnections: bp.NrAvailConn()}
}

// CollectHostStatus samples CPU, memory, and uptime for the local host.
func CollectHostStatus() (HostStatus, liberr.Error) {
	var hs HostStatus

	pct, err := cpu.Percent(200*time.Millisecond, false)
	if err != nil {
		return hs, ErrorHostStatus.Error(err)
	}
	if len(pct) > 0 {
		hs.CPUPercent = pct[0]
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return hs, ErrorHostStatus.Error(err)
	}
	hs.MemPercent = vm.UsedPercent

	info, err := host.Info()
	if err != nil {
		return hs, ErrorHostStatus.Error(err)
	}
	hs.UptimeSeconds = info.Uptime

	return hs, nil
}

// CollectSnapshot gathers both the pool and host readings in one call.
func CollectSnapshot(bp libpool.BackendPool) (Snapshot, liberr.Error) {
	hs, err := CollectHostStatus()
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Pool: CollectPoolStatus(bp),
		Host: hs,
	}, nil
}
