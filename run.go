package main

import (
	"context"
	"io"

	"github.com/jcorbin/gorpn/internal/fileinput"
	"github.com/jcorbin/gorpn/internal/flushio"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// run drives a reader goroutine and an evaluator goroutine: each line read is
// handed to the evaluator, and the reader waits for it to be fully evaluated
// before reading another one.
func (sess *Session) run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	lr, done := sess.setup(ctx)
	defer done()

	lines := make(chan fileinput.Line)
	acks := make(chan struct{})
	eg.Go(func() error {
		defer close(lines)
		return sess.readLines(ctx, lr, lines, acks)
	})
	eg.Go(func() error {
		return sess.evalLines(ctx, lines, acks)
	})
	return eg.Wait()
}

func (sess *Session) setup(ctx context.Context) (lineReader, func()) {
	if sess.tty != nil {
		return sess.setupTerminal(ctx)
	}
	for i, r := range sess.input.Queue {
		sess.input.Queue[i] = pipeInput(ctx, r)
	}
	if sess.color {
		sess.escape = term.NewTerminal(nil, "").Escape
	}
	sess.out = flushio.WriteFlushers(sess.out, sess.tee)
	return &sess.input, func() {}
}

func (sess *Session) readLines(ctx context.Context, lr lineReader, lines chan<- fileinput.Line, acks <-chan struct{}) error {
	for {
		line, err := lr.ReadLine()
		if err == io.EOF {
			sess.logf("#", "end of input after %v", line.Location)
			return err
		} else if err != nil {
			return err
		}
		select {
		case lines <- line:
		case <-ctx.Done():
			return ctx.Err()
		}
		select {
		case <-acks:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (sess *Session) evalLines(ctx context.Context, lines <-chan fileinput.Line, acks chan<- struct{}) error {
	for line := range lines {
		if err := sess.evalLine(line); err != nil {
			return err
		}
		select {
		case acks <- struct{}{}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
