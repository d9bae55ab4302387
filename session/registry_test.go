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

package session_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	liberr "github.com/sabouaram/minestormd/errors"
	"github.com/sabouaram/minestormd/session"
)

var alwaysExists session.ServerExists = func(string) bool { return true }

var _ = Describe("Registry", func() {
	It("creates a session with a 36-character sid and counts it", func() {
		r := session.New(context.Background(), time.Minute)

		sid, err := r.New()
		Expect(err).NotTo(HaveOccurred())
		Expect(sid).To(HaveLen(36))
		Expect(r.Len()).To(Equal(1))
	})

	It("leaves the registry size unchanged across new then remove", func() {
		r := session.New(context.Background(), time.Minute)

		before := r.Len()

		sid, err := r.New()
		Expect(err).NotTo(HaveOccurred())

		r.Remove(sid)
		Expect(r.Len()).To(Equal(before))
		Expect(r.Valid(sid)).To(BeFalse())
	})

	It("removing an unknown sid is idempotent", func() {
		r := session.New(context.Background(), time.Minute)
		Expect(func() { r.Remove("does-not-exist") }).NotTo(Panic())
	})

	It("is valid immediately after creation and invalid once the TTL elapses", func() {
		r := session.New(context.Background(), 10*time.Millisecond)

		sid, err := r.New()
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Valid(sid)).To(BeTrue())

		time.Sleep(20 * time.Millisecond)
		Expect(r.Valid(sid)).To(BeFalse())
	})

	It("Touch makes an about-to-expire session valid again", func() {
		r := session.New(context.Background(), 30*time.Millisecond)

		sid, err := r.New()
		Expect(err).NotTo(HaveOccurred())

		time.Sleep(20 * time.Millisecond)
		Expect(r.Touch(sid)).To(BeTrue())
		Expect(r.Valid(sid)).To(BeTrue())
	})

	It("Touch on an unknown sid reports invalid", func() {
		r := session.New(context.Background(), time.Minute)
		Expect(r.Touch("nope")).To(BeFalse())
	})

	It("rejects ChangeFocus to an unknown server", func() {
		r := session.New(context.Background(), time.Minute)
		sid, _ := r.New()

		err := r.ChangeFocus(sid, "nope", func(string) bool { return false })
		Expect(err).To(HaveOccurred())
		Expect(liberr.IsCode(err, session.ErrorUnknownServer)).To(BeTrue())
	})

	It("rejects ChangeFocus for an invalid sid", func() {
		r := session.New(context.Background(), time.Minute)

		err := r.ChangeFocus("nope", "s1", alwaysExists)
		Expect(err).To(HaveOccurred())
		Expect(liberr.IsCode(err, session.ErrorSidInvalid)).To(BeTrue())
	})

	It("clears pending_lines immediately after a successful change_focus", func() {
		r := session.New(context.Background(), time.Minute)
		sid, _ := r.New()

		Expect(r.ChangeFocus(sid, "s1", alwaysExists)).To(Succeed())
		r.AppendLine("s1", "hello")

		lines, ok := r.DrainPending(sid)
		Expect(ok).To(BeTrue())
		Expect(lines).To(Equal([]string{"hello"}))

		Expect(r.ChangeFocus(sid, "s2", alwaysExists)).To(Succeed())

		lines, ok = r.DrainPending(sid)
		Expect(ok).To(BeTrue())
		Expect(lines).To(BeEmpty())
	})

	It("fans out lines only to sessions focused on that server, in order", func() {
		r := session.New(context.Background(), time.Minute)
		sidA, _ := r.New()
		sidB, _ := r.New()

		Expect(r.ChangeFocus(sidA, "s1", alwaysExists)).To(Succeed())
		Expect(r.ChangeFocus(sidB, "s2", alwaysExists)).To(Succeed())

		r.AppendLine("s1", "a")
		r.AppendLine("s1", "bb")
		r.AppendLine("s1", "ccc")

		linesA, _ := r.DrainPending(sidA)
		Expect(linesA).To(Equal([]string{"a", "bb", "ccc"}))

		linesB, _ := r.DrainPending(sidB)
		Expect(linesB).To(BeEmpty())
	})

	It("drains pending_lines and replaces them with empty, idempotently", func() {
		r := session.New(context.Background(), time.Minute)
		sid, _ := r.New()

		Expect(r.ChangeFocus(sid, "s1", alwaysExists)).To(Succeed())
		r.AppendLine("s1", "hello")

		first, _ := r.DrainPending(sid)
		Expect(first).To(Equal([]string{"hello"}))

		second, _ := r.DrainPending(sid)
		Expect(second).To(BeEmpty())
	})

	It("Reap removes only sessions past their TTL and is idempotent", func() {
		r := session.New(context.Background(), 10*time.Millisecond)

		stale, _ := r.New()
		_ = stale

		time.Sleep(20 * time.Millisecond)

		fresh, _ := r.New()

		removed := r.Reap()
		Expect(removed).To(Equal(1))
		Expect(r.Valid(fresh)).To(BeTrue())

		Expect(r.Reap()).To(Equal(0))
	})
})
