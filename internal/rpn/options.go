package rpn

// MachineOption customizes a Machine created by New.
type MachineOption interface{ apply(m *Machine) }

// MachineOptions combines any number of options into one; nil options are
// skipped.
func MachineOptions(opts ...MachineOption) MachineOption {
	var res machineOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case machineOptions:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type machineOptions []MachineOption

func (opts machineOptions) apply(m *Machine) {
	for _, opt := range opts {
		opt.apply(m)
	}
}

// WithLogf sets a function that traces every executed operation.
func WithLogf(logfn func(mess string, args ...interface{})) MachineOption {
	return withLogfn(logfn)
}

// WithStack pushes the given values, bottom first.
func WithStack(values ...int) MachineOption { return withStack(values) }

// WithVar binds a variable.
func WithVar(name string, value int) MachineOption { return withVar{name, value} }

type withLogfn func(mess string, args ...interface{})
type withStack []int
type withVar struct {
	name  string
	value int
}

func (logfn withLogfn) apply(m *Machine) { m.logfn = logfn }
func (values withStack) apply(m *Machine) {
	m.stack = append(m.stack, values...)
}
func (v withVar) apply(m *Machine) { m.setVar(v.name, v.value) }
