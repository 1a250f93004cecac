package rpn

import (
	"fmt"
	"io"
)

// Dump writes a human readable description of the machine state to out.
func Dump(m *Machine, out io.Writer) error {
	return dumper{m: m, out: out}.dump()
}

type dumper struct {
	m   *Machine
	out io.Writer

	nameWidth int
	err       error
}

func (dump dumper) dump() error {
	dump.printf("# Machine Dump\n")
	dump.dumpStack()
	dump.dumpVars()
	return dump.err
}

func (dump *dumper) printf(mess string, args ...interface{}) {
	if dump.err == nil {
		_, dump.err = fmt.Fprintf(dump.out, mess, args...)
	}
}

func (dump *dumper) dumpStack() {
	dump.printf("  stack: %v\n", dump.m.stack)
	if val, ok := dump.m.Peek(); ok {
		dump.printf("  top: %v\n", val)
	} else {
		dump.printf("  top: none\n")
	}
}

func (dump *dumper) dumpVars() {
	names := dump.m.VarNames()
	dump.printf("  vars: %v\n", len(names))
	if dump.nameWidth == 0 {
		for _, name := range names {
			if len(name) > dump.nameWidth {
				dump.nameWidth = len(name)
			}
		}
	}
	for _, name := range names {
		dump.printf("    %-*s = %v\n", dump.nameWidth, name, dump.m.vars[name])
	}
}
