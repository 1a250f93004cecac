package rpn

// Eval executes every token of line against m, in order, using the default
// anchored Classifier; it returns m so that callers may inspect the result.
func Eval(m *Machine, line string) *Machine { return Classifier{}.Eval(m, line) }

// Eval executes every token of line against m, in order.
// A blank line does nothing.
func (cl Classifier) Eval(m *Machine, line string) *Machine {
	for _, op := range cl.Parse(line) {
		m.Exec(op)
	}
	return m
}

// Preview renders the stack that evaluating line would leave behind, without
// changing m.
func Preview(m *Machine, line string) string { return Classifier{}.Preview(m, line) }

// Preview renders the stack that evaluating line would leave behind, by
// evaluating it against an untraced clone of m.
func (cl Classifier) Preview(m *Machine, line string) string {
	clone := m.Clone()
	clone.logfn = nil
	return cl.Eval(clone, line).String()
}
