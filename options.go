package main

import (
	"io"

	"github.com/jcorbin/gorpn/internal/flushio"
	"github.com/jcorbin/gorpn/internal/logio"
	"github.com/jcorbin/gorpn/internal/rpn"
)

// SessionOption customizes a Session created by New.
type SessionOption interface{ apply(sess *Session) }

var defaultOptions = SessionOptions(
	withOutput(io.Discard),
	withPrompt(">> "),
)

// SessionOptions combines any number of options into one; nil options are
// skipped.
func SessionOptions(opts ...SessionOption) SessionOption {
	var res sessionOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case sessionOptions:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type sessionOptions []SessionOption

func (opts sessionOptions) apply(sess *Session) {
	for _, opt := range opts {
		opt.apply(sess)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(sess *Session) {
	sess.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type withTerminal struct{ io.ReadWriter }
type withLogger struct{ *logio.Logger }
type withPrompt string
type withShowStack bool
type withColor bool
type withClassifier rpn.Classifier
type withMachine struct{ rpn.MachineOption }

func withInput(r io.Reader) inputOption   { return inputOption{r} }
func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }

func (i inputOption) apply(sess *Session) {
	sess.input.Queue = append(sess.input.Queue, i.Reader)
}

func (o outputOption) apply(sess *Session) {
	if sess.out != nil {
		if err := sess.out.Flush(); err != nil {
			sess.errorf("flushing prior output: %v", err)
		}
	}
	sess.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(sess *Session) {
	sess.tee = flushio.WriteFlushers(sess.tee, flushio.NewWriteFlusher(o.Writer))
}

func (t withTerminal) apply(sess *Session)    { sess.tty = t.ReadWriter }
func (l withLogger) apply(sess *Session)      { sess.log = l.Logger }
func (p withPrompt) apply(sess *Session)      { sess.prompt = string(p) }
func (s withShowStack) apply(sess *Session)   { sess.showStack = bool(s) }
func (c withColor) apply(sess *Session)       { sess.color = bool(c) }
func (cl withClassifier) apply(sess *Session) { sess.classifier = rpn.Classifier(cl) }
func (m withMachine) apply(sess *Session) {
	sess.machineOpts = append(sess.machineOpts, m.MachineOption)
}
