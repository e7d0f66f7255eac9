// Package cliui provides small terminal helpers shared by chatproxy commands.
package cliui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	SuccessMark = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Render("✓")
	FailMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("✗")
	KeyStyle    = lipgloss.NewStyle().Bold(true)
	ValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	DimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Step runs fn and reports it on one line: a mark, msg and how long fn took.
// The error from fn is returned as is.
func Step(w io.Writer, msg string, fn func() error) error {
	start := time.Now()
	err := fn()

	fmt.Fprintf(w, "  %s %s %s\n",
		Mark(err),
		msg,
		DimStyle.Render("("+FormatDuration(time.Since(start))+")"),
	)
	return err
}

// Mark returns a check for nil errors and a cross otherwise.
func Mark(err error) string {
	if err != nil {
		return FailMark
	}
	return SuccessMark
}

// FormatDuration renders d as whole milliseconds under a second and as
// tenths of a second above.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
