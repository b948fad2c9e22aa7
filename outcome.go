package diesir

import (
	"math"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"
)

// Roll is a single die drawn while evaluating an expression.
type Roll struct {
	// Sides is the number of faces on the die.
	Sides int64
	// Value is the face rolled, in [1, Sides].
	Value int64
	// Negated is set when the die was subtracted from the total, as the 1d4
	// in 1d20 - 1d4.
	Negated bool
}

// Outcome is the result of evaluating an expression.
type Outcome struct {
	// Total is the value of the expression.
	Total float64
	// Pure reports that no die term contributed to the result, not even one
	// rolling zero dice.
	Pure bool
	// Rolls lists every die drawn, in evaluation order. It is empty for pure
	// outcomes.
	Rolls []Roll

	// constant is the part of Total which did not come from dice.
	constant float64
}

// String renders the outcome with its dice grouped by type in order of first
// appearance, followed by any constant contribution, e.g. "3d6 [4, 1, 6] + 2".
// An outcome without dice renders as its total.
func (o *Outcome) String() string {
	type group struct {
		sides int64
		neg   bool
		vals  []int64
	}
	var groups []group
	for _, r := range o.Rolls {
		k := -1
		for i := range groups {
			if groups[i].sides == r.Sides && groups[i].neg == r.Negated {
				k = i
				break
			}
		}
		if k < 0 {
			groups = append(groups, group{sides: r.Sides, neg: r.Negated})
			k = len(groups) - 1
		}
		groups[k].vals = append(groups[k].vals, r.Value)
	}
	if len(groups) == 0 {
		return fmtnum(o.Total)
	}
	var b strings.Builder
	for i, g := range groups {
		switch {
		case i == 0 && g.neg:
			b.WriteByte('-')
		case g.neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		b.WriteString(strconv.Itoa(len(g.vals)))
		b.WriteByte('d')
		b.WriteString(strconv.FormatInt(g.sides, 10))
		b.WriteString(" [")
		for j, v := range g.vals {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatInt(v, 10))
		}
		b.WriteByte(']')
	}
	switch c := o.constant; {
	case c > 0:
		b.WriteString(" + ")
		b.WriteString(fmtnum(c))
	case c < 0:
		b.WriteString(" - ")
		b.WriteString(fmtnum(-c))
	}
	return b.String()
}

// AppendJSON appends a JSON object describing the outcome to dst:
//
//	{"total":14,"pure":false,"rolls":[{"sides":6,"value":4,"negated":false}, ...],"text":"3d6 [4, 1, 6] + 2"}
//
// A total that is infinite or NaN is encoded as null.
func (o *Outcome) AppendJSON(dst []byte) []byte {
	var a fastjson.Arena
	v := a.NewObject()
	if math.IsInf(o.Total, 0) || math.IsNaN(o.Total) {
		v.Set("total", a.NewNull())
	} else {
		v.Set("total", a.NewNumberFloat64(o.Total))
	}
	v.Set("pure", jsonbool(&a, o.Pure))
	rolls := a.NewArray()
	for i, r := range o.Rolls {
		x := a.NewObject()
		x.Set("sides", a.NewNumberString(strconv.FormatInt(r.Sides, 10)))
		x.Set("value", a.NewNumberString(strconv.FormatInt(r.Value, 10)))
		x.Set("negated", jsonbool(&a, r.Negated))
		rolls.SetArrayItem(i, x)
	}
	v.Set("rolls", rolls)
	v.Set("text", a.NewString(o.String()))
	return v.MarshalTo(dst)
}

func jsonbool(a *fastjson.Arena, b bool) *fastjson.Value {
	if b {
		return a.NewTrue()
	}
	return a.NewFalse()
}

func fmtnum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
