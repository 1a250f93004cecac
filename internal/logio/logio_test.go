package logio_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/gorpn/internal/logio"
	"github.com/stretchr/testify/assert"
)

func Test_Logger(t *testing.T) {
	var (
		log logio.Logger
		out strings.Builder
	)

	log.Printf(logio.Info, "dropped before output is set")
	log.SetOutput(&out)

	trace := log.Leveledf(logio.Trace)
	trace("eval %q", "3 5 +")
	log.Printf("", "bare %v", 42)
	log.Printf(logio.Info, "already terminated\n")
	assert.Equal(t, 0, log.ExitCode(), "expected no error exit code")

	log.ErrorIf(nil)
	assert.Equal(t, 0, log.ExitCode(), "expected nil ErrorIf to be ignored")

	log.ErrorIf(errors.New("bang"))
	assert.Equal(t, 1, log.ExitCode(), "expected error exit code")

	assert.Equal(t, strings.Join([]string{
		`TRACE: eval "3 5 +"`,
		`bare 42`,
		`INFO: already terminated`,
		`ERROR: bang`,
	}, "\n")+"\n", out.String(), "expected log output")
}

func Test_Logger_Wrap(t *testing.T) {
	var (
		log     logio.Logger
		out     strings.Builder
		wrapped strings.Builder
	)
	log.SetOutput(&out)

	closed := 0
	log.Wrap(func(wc io.WriteCloser) io.WriteCloser {
		return closeFunc{&wrapped, func() error {
			closed++
			return wc.Close()
		}}
	})
	log.Printf(logio.Info, "through the wrapper")
	log.Unwrap()
	log.Unwrap()
	log.Printf(logio.Info, "direct")

	assert.Equal(t, 1, closed, "expected wrapper to be closed once")
	assert.Equal(t, "INFO: through the wrapper\n", wrapped.String(), "expected wrapped output")
	assert.Equal(t, "INFO: direct\n", out.String(), "expected unwrapped output")
}

func Test_Logger_writeError(t *testing.T) {
	var (
		log logio.Logger
		out strings.Builder
	)
	log.SetOutput(&out)
	log.Wrap(func(wc io.WriteCloser) io.WriteCloser {
		return closeFunc{failWriter{}, wc.Close}
	})
	log.Printf(logio.Info, "lost")
	assert.Equal(t, 2, log.ExitCode(), "expected io error exit code")
	assert.Equal(t, "ERROR: write failed\n", out.String(), "expected error on fallback output")
}

func Test_Writer(t *testing.T) {
	var logged []string
	lw := logio.Writer{
		Prefix: "out: ",
		Logf: func(mess string, args ...interface{}) {
			logged = append(logged, fmt.Sprintf(mess, args...))
		},
	}

	io.WriteString(&lw, "= 8\r\n= 1")
	assert.Equal(t, []string{"out: = 8"}, logged, "expected only complete lines")
	io.WriteString(&lw, "6\n>> ")
	assert.NoError(t, lw.Close())
	assert.Equal(t, []string{"out: = 8", "out: = 16", "out: >> "}, logged, "expected flushed lines")
}

type closeFunc struct {
	io.Writer
	close func() error
}

func (cf closeFunc) Close() error { return cf.close() }

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("write failed") }
