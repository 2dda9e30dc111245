package logger

import (
	"fmt"
	"io"
)

const prefix = "lls: "

// Logger reports diagnostics on a stream separate from the tree output
type Logger interface {
	// Errorf reports a recoverable problem. Quiet loggers drop it.
	Errorf(format string, v ...interface{})
	// Fatalf reports the error that ends the run. It is never suppressed.
	Fatalf(format string, v ...interface{})
	Verbosef(format string, v ...interface{})
}

// SimpleLogger writes prefixed lines to the given writer
type SimpleLogger struct {
	writer  io.Writer
	verbose bool
	quiet   bool
}

// New creates a logger that writes errors to the given writer
func New(writer io.Writer) Logger {
	return &SimpleLogger{writer: writer}
}

// NewVerbose creates a logger that also writes verbose messages
func NewVerbose(writer io.Writer) Logger {
	return &SimpleLogger{writer: writer, verbose: true}
}

// NewQuiet creates a logger that only writes fatal errors
func NewQuiet(writer io.Writer) Logger {
	return &SimpleLogger{writer: writer, quiet: true}
}

func (l *SimpleLogger) Errorf(format string, v ...interface{}) {
	if !l.quiet {
		l.line(prefix+format, v...)
	}
}

func (l *SimpleLogger) Fatalf(format string, v ...interface{}) {
	l.line(prefix+format, v...)
}

func (l *SimpleLogger) Verbosef(format string, v ...interface{}) {
	if l.verbose {
		l.line(format, v...)
	}
}

func (l *SimpleLogger) line(format string, v ...interface{}) {
	fmt.Fprintf(l.writer, format+"\n", v...)
}
