package util

import (
	"log"
	"os"
)

// Logger receives diagnostic output from long-running operations.
// Implementations must be safe for concurrent use.
type Logger interface {
	Verbose(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// StdLogger adapts a *log.Logger. Verbose output is dropped unless enabled.
type StdLogger struct {
	l       *log.Logger
	verbose bool
}

// NewStdLogger returns a Logger writing to stderr with the standard log flags.
func NewStdLogger(verbose bool) *StdLogger {
	return &StdLogger{l: log.New(os.Stderr, "", log.LstdFlags), verbose: verbose}
}

func (s *StdLogger) Verbose(format string, args ...any) {
	if !s.verbose {
		return
	}
	s.l.Printf(format, args...)
}

func (s *StdLogger) Info(format string, args ...any) {
	s.l.Printf(format, args...)
}

func (s *StdLogger) Error(format string, args ...any) {
	s.l.Printf("error: "+format, args...)
}

// NullLogger discards everything.
type NullLogger struct{}

func (NullLogger) Verbose(string, ...any) {}
func (NullLogger) Info(string, ...any)    {}
func (NullLogger) Error(string, ...any)   {}
