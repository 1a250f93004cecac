package main

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/jcorbin/gorpn/internal/fileinput"
	"github.com/jcorbin/gorpn/internal/flushio"
	"github.com/jcorbin/gorpn/internal/logio"
	"github.com/jcorbin/gorpn/internal/panicerr"
	"github.com/jcorbin/gorpn/internal/rpn"
	"golang.org/x/term"
)

// Session is a read-eval-print loop around an rpn.Machine.
type Session struct {
	logging
	input   fileinput.Input
	out     flushio.WriteFlusher
	tee     flushio.WriteFlusher
	closers []io.Closer

	tty    io.ReadWriter
	term   *term.Terminal
	prompt string

	classifier  rpn.Classifier
	machineOpts []rpn.MachineOption
	machine     *rpn.Machine
	eval        func(m *rpn.Machine, line string) *rpn.Machine

	showStack bool
	color     bool
	escape    *term.EscapeCodes

	snapMu sync.Mutex
	snap   *rpn.Machine
}

func (sess *Session) init() {
	if sess.logfn != nil {
		sess.machineOpts = append(sess.machineOpts, rpn.WithLogf(sess.logfn))
	}
	sess.machine = rpn.New(sess.machineOpts...)
	if sess.eval == nil {
		sess.eval = sess.classifier.Eval
	}
	sess.publish()
}

// Close closes any remaining inputs, along with anything else opened by the
// session, in reverse order.
func (sess *Session) Close() (err error) {
	if cerr := sess.input.Close(); err == nil {
		err = cerr
	}
	for i := len(sess.closers) - 1; i >= 0; i-- {
		if cerr := sess.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	sess.closers = sess.closers[:0]
	return err
}

// evalLine evaluates one line of input and writes its result. A panic while
// evaluating is logged and otherwise ignored; only output errors are returned.
func (sess *Session) evalLine(line fileinput.Line) error {
	sess.logf("<", "%v", line)
	if err := panicerr.Guard(line.Location.String(), func() error {
		sess.eval(sess.machine, line.Text)
		return nil
	}); err != nil {
		sess.errorf("%+v", err)
	}
	sess.publish()
	return sess.writeResult()
}

func (sess *Session) writeResult() error {
	var result string
	if sess.showStack {
		result = sess.machine.String()
	} else {
		result = strconv.Itoa(sess.machine.Top())
	}
	if esc := sess.escape; esc != nil {
		result = string(esc.Green) + result + string(esc.Reset)
	}
	if _, err := fmt.Fprintf(sess.out, "= %s\n", result); err != nil {
		return err
	}
	return sess.out.Flush()
}

// publish snapshots the machine for use by the completion hook.
func (sess *Session) publish() {
	snap := sess.machine.Clone()
	sess.snapMu.Lock()
	defer sess.snapMu.Unlock()
	sess.snap = snap
}

func (sess *Session) snapshot() *rpn.Machine {
	sess.snapMu.Lock()
	defer sess.snapMu.Unlock()
	return sess.snap
}

type logging struct {
	logfn func(mess string, args ...interface{})
	log   *logio.Logger
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}

func (log logging) errorf(mess string, args ...interface{}) {
	if log.log != nil {
		log.log.Errorf(mess, args...)
	} else {
		log.logf("!", mess, args...)
	}
}
