// Package logging builds the application's structured logger.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a [log.Logger] writing to w with timestamps enabled.  The
// writer defaults to [os.Stderr].  Debug lowers the level and adds caller
// reporting.
func New(w io.Writer, debug bool) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: debug}
	l := log.NewWithOptions(w, opts)
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
