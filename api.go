package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/gorpn/internal/logio"
	"github.com/jcorbin/gorpn/internal/panicerr"
	"github.com/jcorbin/gorpn/internal/rpn"
)

// New creates a new calculator session, whose machine is built after all
// options have been applied.
func New(opts ...SessionOption) *Session {
	var sess Session
	defaultOptions.apply(&sess)
	SessionOptions(opts...).apply(&sess)
	sess.init()
	return &sess
}

// Run evaluates input lines until input is exhausted, an io error occurs, or
// the given context is done. Reaching the end of input is not an error.
func (sess *Session) Run(ctx context.Context) error {
	err := panicerr.Recover("Session", func() error {
		return sess.run(ctx)
	})
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Machine returns the session's machine; it must not be used while Run is
// in progress.
func (sess *Session) Machine() *rpn.Machine { return sess.machine }

// WithInput adds an input stream, evaluated after any previously added ones.
// Streams that implement io.Closer are closed once exhausted.
func WithInput(r io.Reader) SessionOption { return withInput(r) }

// WithOutput sets the stream where results are written in line mode.
func WithOutput(w io.Writer) SessionOption { return withOutput(w) }

// WithTee copies all results into w, in addition to the primary output.
func WithTee(w io.Writer) SessionOption { return withTee(w) }

// WithTerminal runs the session interactively over the given (raw mode)
// terminal stream, instead of over any inputs and output.
func WithTerminal(rw io.ReadWriter) SessionOption { return withTerminal{rw} }

func WithPrompt(prompt string) SessionOption         { return withPrompt(prompt) }
func WithShowStack(show bool) SessionOption          { return withShowStack(show) }
func WithColor(color bool) SessionOption             { return withColor(color) }
func WithClassifier(cl rpn.Classifier) SessionOption { return withClassifier(cl) }

// WithMachine adds options for the session's machine, e.g. rpn.WithVar.
func WithMachine(opts ...rpn.MachineOption) SessionOption {
	return withMachine{rpn.MachineOptions(opts...)}
}

// WithLogger reports errors, like a panic recovered from evaluating a line,
// through log; in terminal mode, log is also wrapped onto the terminal while
// the session runs.
func WithLogger(log *logio.Logger) SessionOption { return withLogger{log} }

// WithLogf sets a trace logging function, also used by the machine to trace
// every executed operation.
func WithLogf(logfn func(mess string, args ...interface{})) SessionOption {
	return withLogfn(logfn)
}
