package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location with the text read there, sans line terminator.
type Line struct {
	Location
	Text string
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line reading through a Queue of one or more
// input streams. The last line read is tracked to facilitate user feedback.
//
// Any queued reader that implements io.Closer is closed once exhausted.
type Input struct {
	br    *bufio.Reader
	cur   io.Reader
	Queue []io.Reader
	Last  Line
}

// ReadLine reads the next line, moving on through the Queue at the end of
// each stream. A final line without a line feed is still returned. It returns
// io.EOF, along with the last line read, only after the whole Queue has been
// consumed.
func (in *Input) ReadLine() (Line, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return in.Last, io.EOF
		}

		text, err := in.br.ReadString('\n')
		if len(text) > 0 {
			in.Last.Line++
			in.Last.Text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
			if err == io.EOF {
				err = nil
			}
			if err == nil {
				return in.Last, nil
			}
		}
		if err != io.EOF {
			return in.Last, fmt.Errorf("%v: %w", in.Last.Location, err)
		}
		in.closeIn()
	}
}

// Close closes the current stream and any remaining queued ones, returning
// the first close error.
func (in *Input) Close() (err error) {
	if cerr := in.closeIn(); err == nil {
		err = cerr
	}
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeIn() (err error) {
	if cl, ok := in.cur.(io.Closer); ok {
		err = cl.Close()
	}
	in.cur = nil
	in.br = nil
	return err
}

func (in *Input) nextIn() bool {
	in.closeIn()
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.cur = r
		in.br = bufio.NewReader(r)
		in.Last = Line{Location: Location{Name: NameOf(r)}}
	}
	return in.br != nil
}

// NameOf returns the Name() of obj, if it has one, or a placeholder naming its
// type otherwise.
func NameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// NamedReader attaches a Name to an io.Reader, for use as a Queue entry when
// the reader is not a file.
func NamedReader(name string, r io.Reader) io.Reader {
	if cl, ok := r.(io.ReadCloser); ok {
		return namedReadCloser{name, cl}
	}
	return namedReader{name, r}
}

// NamedReadCloser attaches a Name to an io.ReadCloser.
func NamedReadCloser(name string, rc io.ReadCloser) io.ReadCloser {
	return namedReadCloser{name, rc}
}

type namedReader struct {
	name string
	io.Reader
}

type namedReadCloser struct {
	name string
	io.ReadCloser
}

func (nr namedReader) Name() string     { return nr.name }
func (nr namedReadCloser) Name() string { return nr.name }
