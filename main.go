package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jcorbin/gorpn/internal/fileinput"
	"github.com/jcorbin/gorpn/internal/logio"
	"github.com/jcorbin/gorpn/internal/rpn"
	"golang.org/x/term"
)

func main() {
	ctx := context.Background()

	var (
		timeout    time.Duration
		trace      bool
		dump       bool
		showStack  bool
		unanchored bool
		color      bool
		prompt     string
		lets       letFlags
	)
	flag.DurationVar(&timeout, "timeout", 0, "stop after the given time")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "dump the machine's stack and variables at exit")
	flag.BoolVar(&showStack, "stack", false, "show the full stack after each line, rather than just its top")
	flag.BoolVar(&unanchored, "unanchored", false, "match =name and $name anywhere within a token")
	flag.BoolVar(&color, "color", false, "force color output, even when not on a terminal")
	flag.StringVar(&prompt, "prompt", ">> ", "prompt shown in terminal mode")
	flag.Var(&lets, "let", "bind a variable before the first line, given as name=value; may be repeated")
	flag.Parse()

	var log logio.Logger
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	opts := []SessionOption{
		WithLogger(&log),
		WithShowStack(showStack),
		WithClassifier(rpn.Classifier{Unanchored: unanchored}),
		WithMachine(lets...),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf(logio.Trace)))
	}
	if color {
		opts = append(opts, WithColor(true))
	}

	stdin := int(os.Stdin.Fd())
	interactive := flag.NArg() == 0 && term.IsTerminal(stdin)
	if interactive {
		opts = append(opts, WithPrompt(prompt), WithTerminal(struct {
			io.Reader
			io.Writer
		}{os.Stdin, os.Stdout}))
	} else {
		for _, name := range flag.Args() {
			if name == "-" {
				opts = append(opts, WithInput(fileinput.NamedReader("stdin", os.Stdin)))
				continue
			}
			f, err := os.Open(name)
			if err != nil {
				log.Errorf("%v", err)
				return
			}
			opts = append(opts, WithInput(f))
		}
		if flag.NArg() == 0 {
			opts = append(opts, WithInput(fileinput.NamedReader("stdin", os.Stdin)))
		}
		opts = append(opts, WithOutput(os.Stdout))
	}

	sess := New(opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if interactive {
		state, err := term.MakeRaw(stdin)
		if err != nil {
			log.Errorf("unable to enter raw terminal mode: %v", err)
			return
		}
		log.ErrorIf(sess.Run(ctx))
		log.ErrorIf(term.Restore(stdin, state))
	} else {
		log.ErrorIf(sess.Run(ctx))
	}
	log.ErrorIf(sess.Close())

	if dump {
		log.ErrorIf(rpn.Dump(sess.Machine(), os.Stdout))
	}
}

// letFlags collects -let name=value flags as machine options.
type letFlags []rpn.MachineOption

func (lets *letFlags) String() string { return "" }

func (lets *letFlags) Set(arg string) error {
	name, value, found := strings.Cut(arg, "=")
	if !found {
		return fmt.Errorf("expected name=value, got %q", arg)
	}
	if op := rpn.Classify("=" + name); op.Code != rpn.Assign {
		return fmt.Errorf("invalid variable name %q", name)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid value for %v: %w", name, err)
	}
	*lets = append(*lets, rpn.WithVar(name, n))
	return nil
}
