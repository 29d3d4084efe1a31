// Package eval evaluates unit expressions against a symbol table. It
// exists for the mks CLI; the quantity core does not depend on it.
//
// The grammar covers float literals, registry symbols, parentheses, the
// binary operators + - * /, and exponentiation written ^ or ** with a
// numeric right-hand side. Unit errors from the quantity layer propagate
// unchanged; lexical and grammatical problems are *SyntaxError values
// carrying the byte offset of the fault.
package eval

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/c360studio/mks/quantity"
	"github.com/c360studio/mks/si"
)

// SyntaxError reports a malformed expression.
type SyntaxError struct {
	// Pos is the byte offset where the problem was detected.
	Pos int

	// Msg describes the problem.
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

// IsSyntaxError reports whether err is (or wraps) a *SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

// Eval evaluates expr against the full SI registry.
func Eval(expr string) (quantity.Value, error) {
	return EvalEnv(expr, si.Registry())
}

// EvalEnv evaluates expr against a caller-supplied symbol table.
func EvalEnv(expr string, env map[string]quantity.Value) (quantity.Value, error) {
	p := &parser{src: expr, env: env}
	v, err := p.expression()
	if err != nil {
		return quantity.Value{}, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return quantity.Value{}, &SyntaxError{Pos: p.pos, Msg: "unexpected trailing input"}
	}
	return v, nil
}

type parser struct {
	src string
	pos int
	env map[string]quantity.Value
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// peek returns the next byte without consuming it, or 0 at end of input.
func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// expression := term (('+' | '-') term)*
func (p *parser) expression() (quantity.Value, error) {
	v, err := p.term()
	if err != nil {
		return quantity.Value{}, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.term()
			if err != nil {
				return quantity.Value{}, err
			}
			if v, err = v.Add(rhs); err != nil {
				return quantity.Value{}, err
			}
		case '-':
			p.pos++
			rhs, err := p.term()
			if err != nil {
				return quantity.Value{}, err
			}
			if v, err = v.Sub(rhs); err != nil {
				return quantity.Value{}, err
			}
		default:
			return v, nil
		}
	}
}

// term := factor (('*' | '/') factor)*
// A lone '*' multiplies; '**' belongs to the factor below as power.
func (p *parser) term() (quantity.Value, error) {
	v, err := p.factor()
	if err != nil {
		return quantity.Value{}, err
	}
	for {
		switch p.peek() {
		case '*':
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == '*' {
				return quantity.Value{}, &SyntaxError{Pos: p.pos, Msg: "unexpected operator **"}
			}
			p.pos++
			rhs, err := p.factor()
			if err != nil {
				return quantity.Value{}, err
			}
			v = v.Mul(rhs)
		case '/':
			p.pos++
			rhs, err := p.factor()
			if err != nil {
				return quantity.Value{}, err
			}
			v = v.Div(rhs)
		default:
			return v, nil
		}
	}
}

// factor := unary ( ('^' | '**') signedNumber )?
// The exponent is a plain number: dimensional powers are numeric.
func (p *parser) factor() (quantity.Value, error) {
	v, err := p.unary()
	if err != nil {
		return quantity.Value{}, err
	}
	c := p.peek()
	if c == '^' {
		p.pos++
	} else if c == '*' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '*' {
		p.pos += 2
	} else {
		return v, nil
	}
	power, err := p.signedNumber()
	if err != nil {
		return quantity.Value{}, err
	}
	return v.Pow(power)
}

// unary := '-' unary | atom
func (p *parser) unary() (quantity.Value, error) {
	if p.peek() == '-' {
		p.pos++
		v, err := p.unary()
		if err != nil {
			return quantity.Value{}, err
		}
		return v.Neg(), nil
	}
	return p.atom()
}

// atom := number | symbol | '(' expression ')'
func (p *parser) atom() (quantity.Value, error) {
	switch c := p.peek(); {
	case c == '(':
		p.pos++
		v, err := p.expression()
		if err != nil {
			return quantity.Value{}, err
		}
		if p.peek() != ')' {
			return quantity.Value{}, &SyntaxError{Pos: p.pos, Msg: "missing closing parenthesis"}
		}
		p.pos++
		return v, nil
	case c >= '0' && c <= '9' || c == '.':
		f, err := p.number()
		if err != nil {
			return quantity.Value{}, err
		}
		return quantity.Scalar(f), nil
	case isSymbolByte(c):
		return p.symbol()
	case c == 0:
		return quantity.Value{}, &SyntaxError{Pos: p.pos, Msg: "unexpected end of expression"}
	default:
		return quantity.Value{}, &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf("unexpected character %q", c)}
	}
}

func (p *parser) signedNumber() (float64, error) {
	neg := false
	if p.peek() == '-' {
		neg = true
		p.pos++
	}
	f, err := p.number()
	if err != nil {
		return 0, err
	}
	if neg {
		f = -f
	}
	return f, nil
}

func (p *parser) number() (float64, error) {
	p.skipSpace()
	start := p.pos
	seenExp := false
scan:
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c >= '0' && c <= '9' || c == '.':
			p.pos++
		case (c == 'e' || c == 'E') && !seenExp:
			seenExp = true
			p.pos++
			if p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
				p.pos++
			}
		default:
			break scan
		}
	}
	if p.pos == start {
		return 0, &SyntaxError{Pos: start, Msg: "expected number"}
	}
	f, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, &SyntaxError{Pos: start, Msg: "malformed number " + p.src[start:p.pos]}
	}
	return f, nil
}

func (p *parser) symbol() (quantity.Value, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && isSymbolByte(p.src[p.pos]) {
		p.pos++
	}
	name := p.src[start:p.pos]
	v, ok := p.env[name]
	if !ok {
		return quantity.Value{}, &SyntaxError{Pos: start, Msg: fmt.Sprintf("unknown symbol %q", name)}
	}
	return v, nil
}

func isSymbolByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
