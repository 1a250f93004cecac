package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Levels used by the calculator.
const (
	Error = "ERROR"
	Info  = "INFO"
	Trace = "TRACE"
)

// Logger implements a leveled logging facility, around a wrap-able output
// stream. The zero value discards everything until SetOutput is called.
type Logger struct {
	mu       sync.Mutex
	output   io.WriteCloser
	fallback io.WriteCloser
	buf      bytes.Buffer
	exitCode int
}

// SetOutput sets the logger's output stream, closing any prior wrapper. The
// given stream itself is never closed by the logger.
func (log *Logger) SetOutput(out io.Writer) {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.unwrap()
	log.output = nil
	if out != nil {
		log.output = writeNoCloser{out}
	}
}

// Wrap the output stream through the given pipe function; the pipe receives a
// stream whose Close does not close the underlying output.
// Wrapping an already wrapped logger replaces the prior wrapper.
func (log *Logger) Wrap(pipe func(wc io.WriteCloser) io.WriteCloser) {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.unwrap()
	wc := log.output
	if wc == nil {
		wc = writeNoCloser{io.Discard}
	}
	log.fallback = wc
	log.output = pipe(writeNoCloser{wc})
}

// Unwrap closes any pipe output stream, returning to the original output stream.
func (log *Logger) Unwrap() {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.unwrap()
}

func (log *Logger) unwrap() {
	if log.fallback != nil {
		out := log.output
		log.output = log.fallback
		log.fallback = nil
		if err := out.Close(); err != nil {
			log.reportError(err)
		}
	}
}

// ExitCode returns a code to pass to os.Exit: 0 unless an error was logged.
func (log *Logger) ExitCode() int {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.unwrap()
	return log.exitCode
}

// Close any pipe wrapper.
func (log *Logger) Close() error {
	log.Unwrap()
	return nil
}

// Leveledf returns a printf-style function that logs at the given level, in
// the shape taken by WithLogf options.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// ErrorIf logs any non-nil error through Errorf.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Errorf("%+v", err)
	}
}

// Errorf is like Printf(Error, ...) but additionally marks the logger so that
// ExitCode() returns non-zero.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.mu.Lock()
	defer log.mu.Unlock()
	if err := log.printf(Error, mess, args...); err != nil {
		log.reportError(err)
	}
	if log.exitCode == 0 {
		log.exitCode = 1
	}
}

// Printf prints a line to the output stream like "level: message...\n".
// Any io error is reported at Error level on the unwrapped output.
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.mu.Lock()
	defer log.mu.Unlock()
	if err := log.printf(level, mess, args...); err != nil {
		log.reportError(err)
	}
}

func (log *Logger) printf(level, mess string, args ...interface{}) error {
	if log.output == nil {
		return nil
	}
	if level != "" {
		log.buf.WriteString(level)
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	_, err := log.buf.WriteTo(log.output)
	log.buf.Reset()
	return err
}

func (log *Logger) reportError(err error) {
	if log.fallback != nil {
		log.output.Close()
		log.output = log.fallback
		log.fallback = nil
	}
	log.printf(Error, "%+v", err)
	log.exitCode = 2
}

type writeNoCloser struct{ io.Writer }

func (writeNoCloser) Close() error { return nil }
