package rpn

import (
	"fmt"
	"strconv"
)

// Code names one of the machine's operations.
type Code uint8

const (
	Noop Code = iota // anything unrecognized

	// Here's a handy summary of all the operation words:
	Add    // +      pop a b, push b+a
	Sub    // -      pop a b, push b-a
	Mul    // *      pop a b, push b*a
	Div    // /      pop a b, push b/a; 0 if a is 0
	Exp    // ^      pop a b, push b**a
	Square // ^^     pop a, push a*a
	Double // **     pop a, push a*2
	Fact   // !      pop a, push a!
	Inv    // inv    pop a, push -a
	Sum    // sum    replace the whole stack with its sum
	Prod   // prod   replace the whole stack with its product
	Swap   // swap   exchange the top two values
	Clear  // c      empty the stack

	Push   // <INTERNAL>  integer literal
	Assign // =name       pop into a variable
	Ref    // $name       push a variable

	codeMax
)

var codeNames = [codeMax]string{
	"noop",
	"add",
	"sub",
	"mul",
	"div",
	"exp",
	"square",
	"double",
	"fact",
	"inv",
	"sum",
	"prod",
	"swap",
	"clear",
	"push",
	"assign",
	"ref",
}

func (code Code) String() string {
	if code < codeMax {
		return codeNames[code]
	}
	return fmt.Sprintf("code(%d)", uint8(code))
}

// Op is a classified token: an operation code, along with the literal value
// of a Push, or the variable name of an Assign or Ref.
type Op struct {
	Code  Code
	Value int
	Name  string
}

// PushOp returns an operation that pushes value.
func PushOp(value int) Op { return Op{Code: Push, Value: value} }

// AssignOp returns an operation that pops into the named variable.
func AssignOp(name string) Op { return Op{Code: Assign, Name: name} }

// RefOp returns an operation that pushes the named variable.
func RefOp(name string) Op { return Op{Code: Ref, Name: name} }

func (op Op) String() string {
	switch op.Code {
	case Push:
		return strconv.Itoa(op.Value)
	case Assign:
		return "=" + op.Name
	case Ref:
		return "$" + op.Name
	}
	return op.Code.String()
}
