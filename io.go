package main

import (
	"context"
	"io"

	"github.com/jcorbin/gorpn/internal/fileinput"
	"golang.org/x/term"
)

type lineReader interface {
	ReadLine() (fileinput.Line, error)
}

// pipeInput pumps r through an io.Pipe, so that a blocked read fails with the
// context's error once ctx is done. The pumping goroutine may remain blocked
// reading r until r itself returns.
func pipeInput(ctx context.Context, r io.Reader) io.ReadCloser {
	pr, pw := io.Pipe()
	go func() {
		_, err := io.Copy(pw, r)
		pw.CloseWithError(err)
	}()
	go func() {
		<-ctx.Done()
		pw.CloseWithError(ctx.Err())
	}()
	var cl io.Closer = pr
	if rc, ok := r.(io.Closer); ok {
		cl = closerChain{pr, rc}
	}
	return fileinput.NamedReadCloser(fileinput.NameOf(r), readCloser{pr, cl})
}

// termLines reads lines from an interactive terminal, numbering them.
type termLines struct {
	term *term.Terminal
	loc  fileinput.Location
}

func (tl *termLines) ReadLine() (fileinput.Line, error) {
	text, err := tl.term.ReadLine()
	if err != nil {
		return fileinput.Line{Location: tl.loc}, err
	}
	tl.loc.Line++
	return fileinput.Line{Location: tl.loc, Text: text}, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

type writeCloser struct {
	io.Writer
	io.Closer
}

type closerChain []io.Closer

func (cc closerChain) Close() (rerr error) {
	for _, cl := range cc {
		if cerr := cl.Close(); rerr == nil {
			rerr = cerr
		}
	}
	return rerr
}
