/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

package ticker

import (
	"context"
	"sync"
	"time"

	errpool "github.com/sabouaram/minestormd/errors/pool"
)

type tck struct {
	m sync.Mutex

	d time.Duration
	f Func

	run    bool
	start  time.Time
	cancel context.CancelFunc
	done   chan struct{}

	errs errpool.Pool
}

func (t *tck) Start(ctx context.Context) error {
	if ctx == nil {
		return context.Canceled
	}

	t.m.Lock()

	if t.run {
		t.m.Unlock()
		if err := t.Stop(ctx); err != nil {
			return err
		}
		t.m.Lock()
	}

	cctx, cancel := context.WithCancel(ctx)

	t.cancel = cancel
	t.start = time.Now()
	t.run = true
	t.done = make(chan struct{})
	t.errs = errpool.New()

	var (
		d    = t.d
		f    = t.f
		errs = t.errs
		done = t.done
	)

	t.m.Unlock()

	go t.loop(cctx, d, f, errs, done)

	return nil
}

func (t *tck) loop(ctx context.Context, d time.Duration, f Func, errs errpool.Pool, done chan struct{}) {
	defer close(done)

	tk := time.NewTicker(d)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			t.markStopped()
			return
		case <-tk.C:
			if err := f(ctx, tk); err != nil {
				errs.Add(err)
			}

			select {
			case <-ctx.Done():
				t.markStopped()
				return
			default:
			}
		}
	}
}

func (t *tck) markStopped() {
	t.m.Lock()
	defer t.m.Unlock()

	t.run = false
}

func (t *tck) Stop(_ context.Context) error {
	t.m.Lock()

	if !t.run {
		t.m.Unlock()
		return nil
	}

	cancel := t.cancel
	done := t.done
	t.run = false

	t.m.Unlock()

	if cancel != nil {
		cancel()
	}

	if done != nil {
		<-done
	}

	return nil
}

func (t *tck) Restart(ctx context.Context) error {
	if err := t.Stop(ctx); err != nil {
		return err
	}

	return t.Start(ctx)
}

func (t *tck) IsRunning() bool {
	t.m.Lock()
	defer t.m.Unlock()

	return t.run
}

func (t *tck) Uptime() time.Duration {
	t.m.Lock()
	defer t.m.Unlock()

	if !t.run {
		return 0
	}

	return time.Since(t.start)
}

func (t *tck) ErrorsLast() error {
	t.m.Lock()
	errs := t.errs
	t.m.Unlock()

	if errs == nil {
		return nil
	}

	return errs.Last()
}

func (t *tck) ErrorsList() []error {
	t.m.Lock()
	errs := t.errs
	t.m.Unlock()

	if errs == nil {
		return make([]error, 0)
	}

	return errs.Slice()
}
