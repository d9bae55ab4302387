/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
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

package server

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/mem"
	"github.com/shirou/gopsutil/process"

	"github.com/sabouaram/minestormd/runner/ticker"
)

// newSampler returns a ticker that, on every tick, reads pid's RSS via
// gopsutil's process package and the host's total memory via its mem
// package, and sets the server's ram_percent to 100*rss/total. This
// replaces spec.md §4.3's hand-rolled /proc parsing with the pack's
// portable process-metrics library; values are read fresh every tick, no
// smoothing.
func newSampler(m *managedServer, pid int32, every time.Duration) ticker.Ticker {
	return ticker.New(every, func(_ context.Context, _ *time.Ticker) error {
		proc, err := process.NewProcess(pid)
		if err != nil {
			return err
		}

		info, err := proc.MemoryInfo()
		if err != nil {
			return err
		}

		vm, err := mem.VirtualMemory()
		if err != nil {
			return err
		}

		if vm.Total == 0 {
			return nil
		}

		pct := 100 * float64(info.RSS) / float64(vm.Total)

		m.mu.Lock()
		if m.status == StateStarting || m.status == StateStarted || m.status == StateStopping {
			m.ramPercent = pct
		}
		m.mu.Unlock()

		return nil
	})
}
