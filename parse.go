package diesir

import (
	"strings"
)

// Expr = num | Neg | Add | Sub | Mul | Div | Pow | Die | '(' Expr ')' | Juxt
// Neg = '-' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Pow = Expr '^' Expr
// Die = Expr 'd' Expr
// Juxt = '(' Expr ')' '(' Expr ')'

// Expr is a parsed expression that can be evaluated by a Roller.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression. Unlike Roller.Roll, Parse does not remove
// whitespace; any space in src is an invalid character. Of the options, only
// UppercaseDie affects parsing.
func Parse(src string, opts ...Option) (*Expr, error) {
	s := settle(opts)
	scan := lex(strings.NewReader(src))
	scan.upper = s.upper
	return parse(scan)
}

// parse parses a complete expression from scan.
func parse(scan *lexer) (*Expr, error) {
	p := parser{scan: scan}
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.climb(precBase)
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		// E.g. 2) or (2)3.
		return nil, &OperatorError{Col: p.tok.pos, Operator: p.tok.text}
	}
	return &Expr{n: n}, nil
}

// parser holds the token cursor. The current token is always the next one
// the grammar has not yet consumed.
type parser struct {
	scan *lexer
	tok  lexToken
}

func (p *parser) advance() error {
	tok, err := p.scan.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// climb parses an expression whose operators all bind more tightly than until.
func (p *parser) climb(until precedence) (*node, error) {
	n, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind != tokenEOF && p.tok.kind.prec() > until {
		op := binop(p.tok.kind)
		if op.op == nodeNone {
			return nil, &OperatorError{Col: p.tok.pos, Operator: p.tok.text}
		}
		pos := p.tok.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.climb(op.prec)
		if err != nil {
			return nil, err
		}
		n = &node{kind: op.op, pos: pos, left: n, right: rhs}
	}
	return n, nil
}

// primary parses a single term: a number, a negation, or a parenthesized
// group optionally followed by another to multiply it by.
func (p *parser) primary() (*node, error) {
	tok := p.tok
	switch tok.kind {
	case tokenNum:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &node{kind: nodeNum, val: tok.val, pos: tok.pos}, nil
	case tokenMinus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.climb(precNegate)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, pos: tok.pos, left: rhs}, nil
	case tokenOpen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := p.climb(precBase)
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokenClose {
			return nil, &OperatorError{Col: p.tok.pos, Operator: p.tok.text, Expected: ")"}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind == tokenOpen {
			// (a)(b) -> (a) * (b)
			pos := p.tok.pos
			rhs, err := p.climb(precMulDiv)
			if err != nil {
				return nil, err
			}
			n = &node{kind: nodeMul, pos: pos, left: n, right: rhs}
		}
		return n, nil
	default:
		return nil, &TermError{Col: tok.pos, Token: tok.text}
	}
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	if e == nil || e.n == nil {
		return "()"
	}
	return e.n.String()
}

// precedence is the binding power of an operator. Higher binds more tightly.
type precedence int8

const (
	precBase precedence = iota
	precAddSub
	precMulDiv
	precPower
	precDieRoll
	precNegate
)

type operator struct {
	// prec is the precedence at which the right operand is parsed.
	prec precedence
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

// binop gets a binary operator for a token kind. If there is no such binary
// operator, then the result has an op of nodeNone and precBase.
func binop(k tokenKind) operator {
	switch k {
	case tokenPlus:
		return operator{precAddSub, nodeAdd}
	case tokenMinus:
		return operator{precAddSub, nodeSub}
	case tokenStar:
		return operator{precMulDiv, nodeMul}
	case tokenSlash:
		return operator{precMulDiv, nodeDiv}
	case tokenCaret:
		return operator{precPower, nodePow}
	case tokenDie:
		return operator{precDieRoll, nodeDie}
	default:
		return operator{}
	}
}

// prec is the binding power of a token in operator position. Tokens which
// are not binary operators have precBase, so they never continue an
// expression.
func (k tokenKind) prec() precedence {
	return binop(k).prec
}
