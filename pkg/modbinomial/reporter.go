package modbinomial

import (
	"fmt"
	"io"
)

// Reporter receives human-readable progress lines from the solver. It is a
// write-only capability: nothing a Reporter does feeds back into control
// flow, so the solver stays a pure function of its inputs.
type Reporter interface {
	Progressf(format string, args ...interface{})
}

// NopReporter discards all progress output.
type NopReporter struct{}

// Progressf implements Reporter.
func (NopReporter) Progressf(string, ...interface{}) {}

// WriterReporter writes each progress line to W.
type WriterReporter struct {
	W io.Writer
}

// Progressf implements Reporter.
func (r WriterReporter) Progressf(format string, args ...interface{}) {
	fmt.Fprintf(r.W, format+"\n", args...)
}
