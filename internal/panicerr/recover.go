package panicerr

import (
	"errors"
	"fmt"
)

// Recover runs f in a new goroutine, turning any panic or runtime.Goexit into
// a non-nil error return.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExitError(name, errch)
		defer recoverPanicError(name, errch)
		errch <- f()
	}()
	return <-errch
}

// Guard runs f on the calling goroutine, turning any panic into a non-nil
// error return. Unlike Recover, a runtime.Goexit within f is not caught.
func Guard(name string, f func() error) (err error) {
	errch := make(chan error, 1)
	func() {
		defer recoverPanicError(name, errch)
		errch <- f()
	}()
	return <-errch
}

// recoverExitError must be deferred before recoverPanicError; it only
// delivers when neither f nor a panic already did.
func recoverExitError(name string, errch chan<- error) {
	select {
	case errch <- exitError(name):
	default:
	}
}

type exitError string

func (name exitError) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}

// IsExit returns true if err indicates a recovered goroutine exit.
func IsExit(err error) bool {
	var xe exitError
	return errors.As(err, &xe)
}
