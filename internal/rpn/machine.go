package rpn

import (
	"sort"
	"strconv"
	"strings"
)

// Machine is an integer stack machine with a table of named variables.
//
// Every operation that lacks the values it needs leaves the machine
// unchanged. Arithmetic wraps around on overflow, as Go int arithmetic does.
//
// A Machine is not safe for concurrent use; use Clone to hand a copy of its
// state to another goroutine.
type Machine struct {
	logfn func(mess string, args ...interface{})

	// The stack is a LIFO of ints whose top is the last element.
	stack []int

	// Variables are bound by Assign and read by Ref; never deleted.
	vars map[string]int
}

// New creates a Machine with an empty stack and no variables.
func New(opts ...MachineOption) *Machine {
	var m Machine
	MachineOptions(opts...).apply(&m)
	return &m
}

// Exec executes a single operation.
func (m *Machine) Exec(op Op) {
	switch op.Code {
	case Push:
		m.push(op.Value)
	case Add:
		m.apply2(func(a, b int) int { return b + a })
	case Sub:
		m.apply2(func(a, b int) int { return b - a })
	case Mul:
		m.apply2(func(a, b int) int { return b * a })
	case Div:
		m.apply2(quo)
	case Exp:
		m.apply2(func(a, b int) int { return pow(b, a) })
	case Square:
		m.apply(func(a int) int { return a * a })
	case Double:
		m.apply(func(a int) int { return a * 2 })
	case Fact:
		m.apply(fact)
	case Inv:
		m.apply(func(a int) int { return -a })
	case Sum:
		sum := 0
		for _, val := range m.drain() {
			sum += val
		}
		m.push(sum)
	case Prod:
		prod := 1
		for _, val := range m.drain() {
			prod *= val
		}
		m.push(prod)
	case Swap:
		if a, b, ok := m.pop2(); ok {
			m.push(a)
			m.push(b)
		}
	case Clear:
		m.stack = m.stack[:0]
	case Assign:
		if a, ok := m.pop(); ok {
			m.setVar(op.Name, a)
		}
	case Ref:
		if val, bound := m.vars[op.Name]; bound {
			m.push(val)
		}
	case Noop:
	}
	if m.logfn != nil {
		m.logfn("exec %v -- s:%v", op, m.stack)
	}
}

// Top returns the value on top of the stack, or 0 if the stack is empty.
func (m *Machine) Top() int {
	val, _ := m.Peek()
	return val
}

// Peek returns the value on top of the stack, and false if there is none.
func (m *Machine) Peek() (int, bool) {
	if i := len(m.stack) - 1; i >= 0 {
		return m.stack[i], true
	}
	return 0, false
}

// Len returns the stack depth.
func (m *Machine) Len() int { return len(m.stack) }

// Stack returns a copy of the stack, bottom first.
func (m *Machine) Stack() []int {
	return append([]int{}, m.stack...)
}

// Var returns the value bound to name, and whether it is bound.
func (m *Machine) Var(name string) (int, bool) {
	val, bound := m.vars[name]
	return val, bound
}

// Vars returns a copy of the variable table.
func (m *Machine) Vars() map[string]int {
	vars := make(map[string]int, len(m.vars))
	for name, val := range m.vars {
		vars[name] = val
	}
	return vars
}

// VarNames returns the bound variable names in sorted order.
func (m *Machine) VarNames() []string {
	names := make([]string, 0, len(m.vars))
	for name := range m.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the machine; executing against either
// one never affects the other.
func (m *Machine) Clone() *Machine {
	return &Machine{
		logfn: m.logfn,
		stack: m.Stack(),
		vars:  m.Vars(),
	}
}

// String renders the stack bottom first, every value followed by a space.
func (m *Machine) String() string {
	var sb strings.Builder
	for _, val := range m.stack {
		sb.WriteString(strconv.Itoa(val))
		sb.WriteByte(' ')
	}
	return sb.String()
}

func (m *Machine) push(val int) {
	m.stack = append(m.stack, val)
}

func (m *Machine) pop() (val int, ok bool) {
	i := len(m.stack) - 1
	if i < 0 {
		return 0, false
	}
	val, m.stack = m.stack[i], m.stack[:i]
	return val, true
}

// pop2 returns the top value a and the one below it b, only if both exist.
func (m *Machine) pop2() (a, b int, ok bool) {
	i := len(m.stack) - 2
	if i < 0 {
		return 0, 0, false
	}
	a, b = m.stack[i+1], m.stack[i]
	m.stack = m.stack[:i]
	return a, b, true
}

func (m *Machine) drain() []int {
	vals := m.stack
	m.stack = nil
	return vals
}

func (m *Machine) apply(f func(a int) int) {
	if a, ok := m.pop(); ok {
		m.push(f(a))
	}
}

func (m *Machine) apply2(f func(a, b int) int) {
	if a, b, ok := m.pop2(); ok {
		m.push(f(a, b))
	}
}

func (m *Machine) setVar(name string, val int) {
	if m.vars == nil {
		m.vars = make(map[string]int)
	}
	m.vars[name] = val
}

// quo divides b by a, truncating; division by zero yields 0.
func quo(a, b int) int {
	if a == 0 {
		return 0
	}
	return b / a
}

// pow raises base to exp by squaring, wrapping around on overflow.
// A negative exp yields the truncated reciprocal 1/base**-exp: 1 for a base
// of 1, ±1 for a base of -1, and 0 otherwise (including a zero base).
func pow(base, exp int) int {
	if exp < 0 {
		switch base {
		case 1:
			return 1
		case -1:
			if exp%2 == 0 {
				return 1
			}
			return -1
		}
		return 0
	}
	r := 1
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			r *= base
		}
		base *= base
	}
	return r
}

// fact computes n!, wrapping around on overflow; n < 1 yields the empty
// product 1.
func fact(n int) int {
	r := 1
	for i := 2; i <= n && r != 0; i++ {
		r *= i
	}
	return r
}
