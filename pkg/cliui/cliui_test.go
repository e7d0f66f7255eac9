package cliui_test

import (
	"bytes"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/chatproxy/pkg/cliui"
)

var _ = Describe("cliui", func() {
	Describe("Step", func() {
		It("returns the result of fn and prints the final line", func() {
			var buf bytes.Buffer
			err := cliui.Step(&buf, "writing config", func() error { return nil })

			Expect(err).NotTo(HaveOccurred())
			Expect(buf.String()).To(ContainSubstring("writing config"))
			Expect(buf.String()).To(HaveSuffix("\n"))
		})

		It("propagates errors and marks the line as failed", func() {
			var buf bytes.Buffer
			boom := errors.New("boom")
			Expect(cliui.Step(&buf, "failing", func() error { return boom })).To(MatchError(boom))
			Expect(buf.String()).To(ContainSubstring(cliui.FailMark + " failing"))
		})

		It("writes a single line", func() {
			var buf bytes.Buffer
			Expect(cliui.Step(&buf, "writing config", func() error { return nil })).To(Succeed())
			Expect(buf.String()).To(HavePrefix("  " + cliui.SuccessMark + " writing config "))
			Expect(strings.Count(buf.String(), "\n")).To(Equal(1))
			Expect(buf.String()).NotTo(ContainSubstring("\r"))
		})
	})

	Describe("Mark", func() {
		It("differs for success and failure", func() {
			Expect(cliui.Mark(nil)).To(Equal(cliui.SuccessMark))
			Expect(cliui.Mark(errors.New("x"))).To(Equal(cliui.FailMark))
		})
	})

	DescribeTable("FormatDuration",
		func(d time.Duration, want string) {
			Expect(cliui.FormatDuration(d)).To(Equal(want))
		},
		Entry("milliseconds", 12*time.Millisecond, "12ms"),
		Entry("seconds", 3200*time.Millisecond, "3.2s"),
	)
})
