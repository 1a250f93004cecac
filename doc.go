/*
Package main: gorpn -- an integer RPN calculator

gorpn reads lines of whitespace separated tokens, and evaluates each token
against a stack of integers and a table of named variables, left to right.
After every line it prints the value left on top of the stack (0 when the
stack is empty), prefixed by "= ".

Tokens are:

	42 -7      integer literals, pushed onto the stack
	+ - * /    binary arithmetic on the top two values; b-a, b/a, and so on
	^          exponentiation, b to the power a
	^^ ** !    square, double, and factorial of the top value
	inv        negation of the top value
	swap       exchanges the top two values
	sum prod   fold the entire stack into its sum or product
	c          clears the stack
	=name      pops the top value into the variable name
	$name      pushes the value of the variable name

Anything else is silently ignored, as is any operation that lacks enough
values on the stack: "3 +" leaves 3 alone. Dividing by zero yields 0.
Arithmetic is done on native machine integers, and wraps around on overflow.

When standard input is a terminal, gorpn runs an interactive line editor
with history; pressing Tab completes a partial $name, =name, or operator word,
or else previews what the current line would leave on the stack, without
changing anything. Otherwise every line of the named FILE arguments (or of
standard input) is evaluated in turn.

The calculator itself lives under internal/rpn; this package is only the
session around it.
*/
package main
