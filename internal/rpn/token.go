package rpn

import (
	"regexp"
	"strconv"
	"strings"
)

var words = map[string]Code{
	"+":    Add,
	"-":    Sub,
	"*":    Mul,
	"/":    Div,
	"^":    Exp,
	"^^":   Square,
	"**":   Double,
	"!":    Fact,
	"inv":  Inv,
	"sum":  Sum,
	"prod": Prod,
	"swap": Swap,
	"c":    Clear,
}

// Keywords returns the fixed operator words, ordered by the operation they
// name.
func Keywords() []string {
	kws := make([]string, Clear-Add+1)
	for word, code := range words {
		kws[code-Add] = word
	}
	return kws
}

const identPat = `[a-zA-Z][a-zA-Z0-9]*`

var (
	assignPat    = regexp.MustCompile(`^=(` + identPat + `)$`)
	refPat       = regexp.MustCompile(`^\$(` + identPat + `)$`)
	assignPatAny = regexp.MustCompile(`=(` + identPat + `)`)
	refPatAny    = regexp.MustCompile(`\$(` + identPat + `)`)
	literalPat   = regexp.MustCompile(`^-?[0-9]+$`)
)

// Classifier maps tokens to operations.
//
// The zero value requires assignment and reference tokens to consist of
// exactly "=name" or "$name". With Unanchored set, the first "=name" (or,
// failing that, "$name") found anywhere within a token is used instead, so
// "x=foo" assigns to foo.
type Classifier struct {
	Unanchored bool
}

// Classify maps token to an operation using the default anchored Classifier.
func Classify(token string) Op { return Classifier{}.Classify(token) }

// Classify maps token to exactly one operation; anything unrecognized,
// including out of range integer literals, is a Noop.
func (cl Classifier) Classify(token string) Op {
	if code, defined := words[token]; defined {
		return Op{Code: code}
	}
	assign, ref := assignPat, refPat
	if cl.Unanchored {
		assign, ref = assignPatAny, refPatAny
	}
	if m := assign.FindStringSubmatch(token); m != nil {
		return AssignOp(m[1])
	}
	if m := ref.FindStringSubmatch(token); m != nil {
		return RefOp(m[1])
	}
	if literalPat.MatchString(token) {
		if n, err := strconv.ParseInt(token, 10, strconv.IntSize); err == nil {
			return PushOp(int(n))
		}
	}
	return Op{Code: Noop}
}

// Parse splits line on whitespace and classifies every token.
func (cl Classifier) Parse(line string) []Op {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	ops := make([]Op, len(tokens))
	for i, token := range tokens {
		ops[i] = cl.Classify(token)
	}
	return ops
}

// Parse splits line on whitespace and classifies every token using the
// default anchored Classifier.
func Parse(line string) []Op { return Classifier{}.Parse(line) }
