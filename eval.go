package diesir

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// eval computes the node's outcome. Children are always evaluated before
// their operator is checked, so dice in an operand are drawn even if the
// operator then rejects it.
func (n *node) eval(r *Roller) (Outcome, error) {
	switch n.kind {
	case nodeNum:
		v := float64(n.val)
		return Outcome{Total: v, Pure: true, constant: v}, nil
	case nodeNeg:
		v, err := n.left.eval(r)
		if err != nil {
			return Outcome{}, err
		}
		if !v.Pure {
			return Outcome{}, &OperandError{Col: n.pos, Op: "negate"}
		}
		v.Total = -v.Total
		v.constant = v.Total
		return v, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow, nodeDie:
		// handled below
	default:
		panic("diesir: invalid AST node " + n.kind.String())
	}

	l, err := n.left.eval(r)
	if err != nil {
		return Outcome{}, err
	}
	rhs, err := n.right.eval(r)
	if err != nil {
		return Outcome{}, err
	}
	switch n.kind {
	case nodeAdd:
		l.Total += rhs.Total
		l.constant += rhs.constant
		l.Pure = l.Pure && rhs.Pure
		l.Rolls = append(l.Rolls, rhs.Rolls...)
		return l, nil
	case nodeSub:
		l.Total -= rhs.Total
		l.constant -= rhs.constant
		l.Pure = l.Pure && rhs.Pure
		for _, d := range rhs.Rolls {
			d.Negated = !d.Negated
			l.Rolls = append(l.Rolls, d)
		}
		return l, nil
	case nodeDie:
		if !l.Pure || !rhs.Pure {
			return Outcome{}, &OperandError{Col: n.pos, Op: "roll dice using"}
		}
		return r.roll(n.pos, trunc(l.Total), trunc(rhs.Total))
	}

	var op string
	switch n.kind {
	case nodeMul:
		op = "multiply"
	case nodeDiv:
		op = "divide"
	case nodePow:
		op = "exponentiate"
	}
	if !l.Pure || !rhs.Pure {
		return Outcome{}, &OperandError{Col: n.pos, Op: op}
	}
	var v float64
	switch n.kind {
	case nodeMul:
		v = l.Total * rhs.Total
	case nodeDiv:
		if rhs.Total == 0 {
			return Outcome{}, &ZeroDivisionError{Col: n.pos}
		}
		v = l.Total / rhs.Total
	case nodePow:
		v = pow(l.Total, rhs.Total, r.prec)
	}
	return Outcome{Total: v, Pure: true, constant: v}, nil
}

// roll draws count dice with the given number of sides. A non-positive count
// or number of sides rolls nothing, which is still a dice result.
func (r *Roller) roll(pos int, count, sides int64) (Outcome, error) {
	if count <= 0 || sides <= 0 {
		return Outcome{}, nil
	}
	if r.max > 0 && count > r.max {
		return Outcome{}, &LimitError{Col: pos, Count: count, Max: r.max}
	}
	o := Outcome{Rolls: make([]Roll, 0, min(count, 1<<10))}
	for i := int64(0); i < count; i++ {
		v := r.rand.Int64N(sides) + 1
		o.Rolls = append(o.Rolls, Roll{Sides: sides, Value: v})
		o.Total += float64(v)
	}
	return o, nil
}

// trunc truncates f toward zero, saturating at the limits of int64. NaN is 0.
func trunc(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

// pow computes x^y. Positive finite bases are exponentiated by bigfloat at
// prec bits and rounded; everything else follows math.Pow.
func pow(x, y float64, prec uint) float64 {
	if x <= 0 || math.IsInf(x, 0) || math.IsNaN(x) || math.IsInf(y, 0) || math.IsNaN(y) {
		return math.Pow(x, y)
	}
	b := new(big.Float).SetPrec(prec).SetFloat64(x)
	e := new(big.Float).SetPrec(prec).SetFloat64(y)
	// Pow returns a new value instead of writing b for some results,
	// including x^0 and anything overflowing or underflowing.
	v, _ := bigfloat.Pow(b, b, e).Float64()
	return v
}
