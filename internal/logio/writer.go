package logio

import (
	"bytes"
	"sync"
)

// Writer implements an io.Writer around a formatted logging function: every
// complete line written is passed to Logf, after any Prefix.
type Writer struct {
	Logf   func(string, ...interface{})
	Prefix string

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p, then flushes any completed lines through Logf, all while
// holding a lock so that writing is safe from multiple goroutines.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.flushLines(false)
	return len(p), nil
}

// Sync flushes any partial line remaining in the internal buffer.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.flushLines(true)
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error {
	return lw.Sync()
}

func (lw *Writer) flushLines(all bool) {
	for lw.buf.Len() > 0 {
		i := bytes.IndexByte(lw.buf.Bytes(), '\n')
		if i >= 0 {
			lw.logf(lw.buf.Next(i))
			lw.buf.Next(1)
		} else if all {
			lw.logf(lw.buf.Next(lw.buf.Len()))
		} else {
			break
		}
	}
}

func (lw *Writer) logf(line []byte) {
	lw.Logf("%s%s", lw.Prefix, bytes.TrimSuffix(line, []byte{'\r'}))
}
