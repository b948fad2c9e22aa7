// Package diesir parses and evaluates dice arithmetic.
//
// Expressions look like what you'd write on a character sheet: "2d6 + 3" rolls
// two six-sided dice and adds three. The usual operators + - * / ^ are
// available along with parentheses, and "(a)(b)" multiplies two groups.
// Whitespace is ignored by Evaluate and Roller.Roll.
//
// Dice results may be added to and subtracted from anything, but
// multiplication, division, exponentiation, and negation only apply to pure
// numbers. Count and sides of a die term must themselves be pure, so "(1+1)d6"
// is fine while "1d(1d6)" is not.
//
// The Outcome of an evaluation keeps every individual die so callers can show
// their work, e.g. "3d6 [4, 1, 6] + 2".
package diesir
