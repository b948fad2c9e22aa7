package diesir

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Roller parses and evaluates dice expressions. It keeps its buffers between
// calls, so one Roller serving many expressions allocates less than Evaluate.
// It is not safe to use a Roller concurrently.
type Roller struct {
	buf  []byte
	src  strings.Reader
	scan lexer

	rand Rand
	prec uint
	max  int64
}

// New creates a Roller. Options are applied in order.
func New(opts ...Option) *Roller {
	s := settle(opts)
	if s.rand == nil {
		s.rand = CryptoRand()
	}
	r := Roller{
		rand: s.rand,
		prec: s.prec,
		max:  s.max,
	}
	r.scan.upper = s.upper
	return &r
}

// Roll parses and evaluates an expression. All whitespace in text is ignored,
// so "2 d 6 + 3" is the same as "2d6+3".
func (r *Roller) Roll(text string) (*Outcome, error) {
	e, err := r.Parse(text)
	if err != nil {
		return nil, err
	}
	return r.Eval(e)
}

// Parse parses an expression with the Roller's options, ignoring whitespace
// like Roll.
func (r *Roller) Parse(text string) (*Expr, error) {
	r.buf = r.buf[:0]
	for _, c := range text {
		if !unicode.IsSpace(c) {
			r.buf = utf8.AppendRune(r.buf, c)
		}
	}
	r.src.Reset(string(r.buf))
	r.scan.reset(&r.src)
	return parse(&r.scan)
}

// Eval evaluates a parsed expression, rolling any dice it contains. A nil or
// zero Expr is treated as empty input.
func (r *Roller) Eval(e *Expr) (*Outcome, error) {
	if e == nil || e.n == nil {
		return nil, &TermError{Col: 1}
	}
	o, err := e.n.eval(r)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// DefaultMaxDice is the limit Evaluate places on the dice in a single term.
const DefaultMaxDice = 1 << 20

// Evaluate parses and evaluates an expression using a new Roller with the
// default options, except that a single term may roll at most DefaultMaxDice
// dice. Use New to roll without a limit.
func Evaluate(text string) (*Outcome, error) {
	return New(MaxDice(DefaultMaxDice)).Roll(text)
}
