package diesir

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
	// val is the value of a number token.
	val int64
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input. The lexer produces it again
	// on every call after the input is exhausted.
	tokenEOF
	// tokenNum is a non-negative integer literal.
	tokenNum
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenCaret
	// tokenDie is the die roll marker, as in 2d6.
	tokenDie
	tokenOpen
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenPlus:
		return "Plus"
	case tokenMinus:
		return "Minus"
	case tokenStar:
		return "Star"
	case tokenSlash:
		return "Slash"
	case tokenCaret:
		return "Caret"
	case tokenDie:
		return "Die"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators. The die
// marker is an operator like any other.
const Operators = "+-*/^d"

var operkinds = [len(Operators)]tokenKind{tokenPlus, tokenMinus, tokenStar, tokenSlash, tokenCaret, tokenDie}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// upper enables D as a die marker.
	upper bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// reset points the lexer at a new source and rewinds its position.
func (l *lexer) reset(src io.RuneScanner) {
	l.src = src
	l.buf.Reset()
	l.rune = 1
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. Once the input is exhausted, every
// call returns an EOF token with a nil error.
func (l *lexer) next() (lexToken, error) {
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			tok.kind = tokenEOF
			return tok, nil
		}
		return tok, err
	}
	switch {
	case '0' <= r && r <= '9':
		l.unreadRune()
		v, err := l.scanNum(tok.pos)
		if err != nil {
			return tok, err
		}
		tok.text = l.buf.String()
		tok.kind = tokenNum
		tok.val = v
		return tok, nil
	case r == '(':
		tok.text = "("
		tok.kind = tokenOpen
		return tok, nil
	case r == ')':
		tok.text = ")"
		tok.kind = tokenClose
		return tok, nil
	case r == 'D' && l.upper:
		tok.text = "D"
		tok.kind = tokenDie
		return tok, nil
	}
	if k := strings.IndexRune(Operators, r); k >= 0 {
		tok.text = Operators[k : k+1]
		tok.kind = operkinds[k]
		return tok, nil
	}
	// Write the rune so that it shows up in the error message.
	l.buf.WriteRune(r)
	return tok, l.error(ErrInvalidCharacter, tok.pos)
}

// scanNum scans a run of digits beginning at column start.
func (l *lexer) scanNum(start int) (int64, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		if '0' <= r && r <= '9' {
			l.buf.WriteRune(r)
			continue
		}
		if r == '(' {
			// 3(4) is not a multiplication, unlike (3)(4).
			l.buf.WriteRune(r)
			return 0, l.error(ErrInvalidCharacter, l.rune-1)
		}
		l.unreadRune()
		break
	}
	v, err := strconv.ParseInt(l.buf.String(), 10, 64)
	if err != nil {
		// The buffer holds only digits, so range is the only way to fail.
		return 0, l.error(ErrNumberOverflow, start)
	}
	return v, nil
}

func (l *lexer) error(kind error, col int) error {
	return &LexError{
		Text: l.buf.String(),
		Col:  col,
		Err:  kind,
	}
}
