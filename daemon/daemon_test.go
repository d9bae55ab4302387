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

package daemon_test

import (
	"context"
	"errors"
	"net"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/minestormd/daemon"
	liberr "github.com/sabouaram/minestormd/errors"
	"github.com/sabouaram/minestormd/logger"
	"github.com/sabouaram/minestormd/wire"
)

var errBoom = errors.New("boom")

var _ = Describe("Daemon", func() {
	var log logger.Logger

	BeforeEach(func() {
		log = logger.New(context.Background())
	})

	It("fails to build when the server list cannot be loaded", func() {
		cfg := &fakeConfig{failLoad: true}

		_, err := daemon.New(context.Background(), cfg, log)
		Expect(err).To(HaveOccurred())
		Expect(liberr.IsCode(err, daemon.ErrorRegisterServers)).To(BeTrue())
	})

	It("binds an ephemeral port and answers ping end to end", func() {
		cfg := &fakeConfig{port: 0, ttl: time.Minute, reap: time.Hour, sample: time.Hour}

		d, err := daemon.New(context.Background(), cfg, log)
		Expect(err).ToNot(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- d.Run(ctx) }()

		conn, err := dialRetry(d)
		Expect(err).ToNot(HaveOccurred())
		defer conn.Close()

		Expect(wire.WriteMessage(conn, wire.Request{Status: wire.StatusPing})).To(Succeed())

		var reply map[string]interface{}
		Expect(wire.ReadMessage(conn, &reply)).To(Succeed())
		Expect(reply["status"]).To(Equal(wire.StatusPong))

		d.Shutdown()
		d.Shutdown()
		cancel()
		Eventually(done).Should(Receive())
	})
})

func dialRetry(d *daemon.Daemon) (net.Conn, error) {
	addr := d.Addr()

	var lastErr error
	for i := 0; i < 20; i++ {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err == nil {
			return conn, nil
		}

		lastErr = err
		time.Sleep(10 * time.Millisecond)
	}

	return nil, lastErr
}
