package rpn

import (
	"strings"
	"testing"

	"github.com/jcorbin/gorpn/internal/logio"
	"github.com/jcorbin/gorpn/internal/panicerr"
	"github.com/stretchr/testify/assert"
)

type machineTestCases []machineTestCase

func (mts machineTestCases) run(t *testing.T) {
	{
		var exclusive []machineTestCase
		for _, mt := range mts {
			if mt.exclusive {
				exclusive = append(exclusive, mt)
			}
		}
		if len(exclusive) > 0 {
			mts = exclusive
		}
	}
	for _, mt := range mts {
		t.Run(mt.name, mt.run)
	}
}

func machineTest(name string) (mt machineTestCase) {
	mt.name = name
	return mt
}

type machineTestCase struct {
	name   string
	opts   []MachineOption
	ops    []func(m *Machine)
	expect []func(t *testing.T, m *Machine)

	exclusive bool
}

func execOp(op Op) func(m *Machine) {
	return func(m *Machine) { m.Exec(op) }
}

func evalLine(line string) func(m *Machine) {
	return func(m *Machine) { Eval(m, line) }
}

func (mt machineTestCase) apply(wraps ...func(machineTestCase) machineTestCase) machineTestCase {
	for _, wrap := range wraps {
		mt = wrap(mt)
	}
	return mt
}

func (mt machineTestCase) exclusiveTest() machineTestCase {
	mt.exclusive = true
	return mt
}

func (mt machineTestCase) withOptions(opts ...MachineOption) machineTestCase {
	mt.opts = append(mt.opts, opts...)
	return mt
}

func (mt machineTestCase) withStack(values ...int) machineTestCase {
	mt.opts = append(mt.opts, WithStack(values...))
	return mt
}

func (mt machineTestCase) withVar(name string, value int) machineTestCase {
	mt.opts = append(mt.opts, WithVar(name, value))
	return mt
}

func (mt machineTestCase) do(ops ...func(m *Machine)) machineTestCase {
	mt.ops = append(mt.ops, ops...)
	return mt
}

func (mt machineTestCase) eval(lines ...string) machineTestCase {
	for _, line := range lines {
		mt.ops = append(mt.ops, evalLine(line))
	}
	return mt
}

// check adds an arbitrary expectation, run after the ops like all others.
func (mt machineTestCase) check(f func(t *testing.T, m *Machine)) machineTestCase {
	mt.expect = append(mt.expect, f)
	return mt
}

func (mt machineTestCase) expectStack(values ...int) machineTestCase {
	mt.expect = append(mt.expect, func(t *testing.T, m *Machine) {
		if values == nil {
			values = []int{}
		}
		assert.Equal(t, values, m.Stack(), "expected stack values")
	})
	return mt
}

func (mt machineTestCase) expectTop(value int) machineTestCase {
	mt.expect = append(mt.expect, func(t *testing.T, m *Machine) {
		assert.Equal(t, value, m.Top(), "expected top of stack")
	})
	return mt
}

func (mt machineTestCase) expectString(s string) machineTestCase {
	mt.expect = append(mt.expect, func(t *testing.T, m *Machine) {
		assert.Equal(t, s, m.String(), "expected stack rendering")
	})
	return mt
}

func (mt machineTestCase) expectVar(name string, value int) machineTestCase {
	mt.expect = append(mt.expect, func(t *testing.T, m *Machine) {
		val, bound := m.Var(name)
		if assert.True(t, bound, "expected variable %q to be bound", name) {
			assert.Equal(t, value, val, "expected variable %q value", name)
		}
	})
	return mt
}

func (mt machineTestCase) expectNoVar(name string) machineTestCase {
	mt.expect = append(mt.expect, func(t *testing.T, m *Machine) {
		_, bound := m.Var(name)
		assert.False(t, bound, "expected variable %q to be unbound", name)
	})
	return mt
}

func (mt machineTestCase) expectVars(vars map[string]int) machineTestCase {
	mt.expect = append(mt.expect, func(t *testing.T, m *Machine) {
		assert.Equal(t, vars, m.Vars(), "expected variables")
	})
	return mt
}

func (mt machineTestCase) expectDump(dump string) machineTestCase {
	mt.expect = append(mt.expect, func(t *testing.T, m *Machine) {
		var out strings.Builder
		assert.NoError(t, Dump(m, &out), "unexpected dump error")
		assert.Equal(t, dump, out.String(), "expected dump")
	})
	return mt
}

func (mt machineTestCase) run(t *testing.T) {
	m := mt.buildMachine()

	defer func() {
		if t.Failed() {
			mt.dumpToTest(t, m)
			mt.traceToTest(t)
		}
	}()

	err := panicerr.Guard(t.Name(), func() error {
		mt.runOps(m)
		return nil
	})
	if !assert.NoError(t, err, "machine must never panic") {
		t.Logf("panic stack: %v", panicerr.PanicStack(err))
		return
	}

	for _, expect := range mt.expect {
		expect(t, m)
	}
}

func (mt machineTestCase) buildMachine(opts ...MachineOption) *Machine {
	return New(append(mt.opts[:len(mt.opts):len(mt.opts)], opts...)...)
}

func (mt machineTestCase) runOps(m *Machine) {
	for _, op := range mt.ops {
		op(m)
	}
}

// traceToTest replays the test case against a fresh machine, with every
// executed operation logged to t.
func (mt machineTestCase) traceToTest(t *testing.T) {
	m := mt.buildMachine(WithLogf(t.Logf))
	_ = panicerr.Guard(t.Name(), func() error {
		mt.runOps(m)
		return nil
	})
}

func (mt machineTestCase) dumpToTest(t *testing.T, m *Machine) {
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()
	Dump(m, &lw)
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
