package diesir

import (
	"errors"
	"strconv"
)

// Sentinel errors classifying every failure. Each error type below unwraps to
// one of these, so callers can test with errors.Is.
var (
	// ErrInvalidCharacter is a rune outside the expression alphabet, or a
	// number immediately followed by an open parenthesis.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrNumberOverflow is an integer literal too large for an int64.
	ErrNumberOverflow = errors.New("number out of range")
	// ErrUnableToParse is a token that cannot begin an expression.
	ErrUnableToParse = errors.New("unable to parse")
	// ErrInvalidOperator is a token that cannot continue an expression, or
	// an operator applied to a dice result where a number is required.
	ErrInvalidOperator = errors.New("invalid operator")
	// ErrDivisionByZero is a division whose divisor evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrTooManyDice is a die term rolling more dice than the Roller allows.
	ErrTooManyDice = errors.New("too many dice")
)

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when it failed, including the
	// offending rune.
	Text string
	// Col is the position of the offending rune, or of the start of the
	// number for an overflow.
	Col int
	// Err is ErrInvalidCharacter or ErrNumberOverflow.
	Err error
}

func (err *LexError) Error() string {
	return errpos(err.Col, err.Err.Error()+" "+strconv.Quote(err.Text))
}

func (err *LexError) Unwrap() error {
	return err.Err
}

func (err *LexError) Pos() int {
	return err.Col
}

// TermError indicates a token where an expression should begin. It implements
// InputError.
type TermError struct {
	Col int
	// Token is the text of the token, or empty at the end of input.
	Token string
}

func (err *TermError) Error() string {
	return errpos(err.Col, "expected a number, '-', or '(' but found "+describe(err.Token))
}

func (err *TermError) Unwrap() error {
	return ErrUnableToParse
}

func (err *TermError) Pos() int {
	return err.Col
}

// OperatorError indicates a token that cannot continue the expression. It
// implements InputError.
type OperatorError struct {
	Col int
	// Operator is the token that was not understood, or empty at the end of
	// input.
	Operator string
	// Expected is the token the parser required instead, if any. It is ")"
	// for unclosed parentheses.
	Expected string
}

func (err *OperatorError) Error() string {
	if err.Expected != "" {
		return errpos(err.Col, "expected "+strconv.Quote(err.Expected)+" but found "+describe(err.Operator))
	}
	return errpos(err.Col, "unexpected "+describe(err.Operator))
}

func (err *OperatorError) Unwrap() error {
	return ErrInvalidOperator
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// OperandError indicates an operator applied to a dice result. Multiplying,
// dividing, exponentiating, or negating a roll is ambiguous, as is rolling a
// number of dice given by another roll. It implements InputError.
type OperandError struct {
	Col int
	// Op names the operation, e.g. "multiply".
	Op string
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "cannot "+err.Op+" a dice roll result directly")
}

func (err *OperandError) Unwrap() error {
	return ErrInvalidOperator
}

func (err *OperandError) Pos() int {
	return err.Col
}

// ZeroDivisionError indicates a division by zero. It implements InputError.
type ZeroDivisionError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *ZeroDivisionError) Error() string {
	return errpos(err.Col, ErrDivisionByZero.Error())
}

func (err *ZeroDivisionError) Unwrap() error {
	return ErrDivisionByZero
}

func (err *ZeroDivisionError) Pos() int {
	return err.Col
}

// LimitError indicates a die term exceeding the Roller's MaxDice. It
// implements InputError.
type LimitError struct {
	Col   int
	Count int64
	Max   int64
}

func (err *LimitError) Error() string {
	return errpos(err.Col, "cannot roll "+strconv.FormatInt(err.Count, 10)+" dice (limit "+strconv.FormatInt(err.Max, 10)+")")
}

func (err *LimitError) Unwrap() error {
	return ErrTooManyDice
}

func (err *LimitError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

func describe(tok string) string {
	if tok == "" {
		return "end of input"
	}
	return strconv.Quote(tok)
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error. Positions count
	// the input after whitespace is removed.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*TermError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*ZeroDivisionError)(nil)
	_ InputError = (*LimitError)(nil)
)
