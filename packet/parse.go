package packet

import (
	"math"
	"unicode/utf8"
)

// Parse reads one packet. The outermost token must be '[' and nothing but
// spaces may follow the matching ']'.
func Parse(s string) (Value, error) {
	p := &parser{s: s}
	p.skipSpace()
	if p.peek() != '[' {
		return Value{}, p.fail("expected '['")
	}
	v, err := p.list()
	if err != nil {
		return Value{}, err
	}
	p.skipSpace()
	if p.pos < len(p.s) {
		return Value{}, p.fail("unexpected trailing data")
	}

	return v, nil
}

// MustParse is like Parse but panics on error. Meant for literals in tests
// and fixed tables such as the divider packets.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// parser is a recursive-descent reader over a single line.
type parser struct {
	s   string
	pos int
}

// peek returns the current byte, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) fail(msg string) *SyntaxError {
	e := &SyntaxError{Offset: p.pos, Msg: msg, EOF: p.pos >= len(p.s)}
	if !e.EOF {
		e.Char, _ = utf8.DecodeRuneInString(p.s[p.pos:])
	}
	return e
}

// list parses "[" [ value { "," value } ] "]"; the cursor is on '['.
func (p *parser) list() (Value, error) {
	p.pos++
	p.skipSpace()

	var items []Value
	if p.peek() == ']' {
		p.pos++
		return List(items...), nil
	}
	for {
		v, err := p.value()
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
			p.skipSpace()
		case ']':
			p.pos++
			return List(items...), nil
		default:
			return Value{}, p.fail("expected ',' or ']'")
		}
	}
}

func (p *parser) value() (Value, error) {
	c := p.peek()
	switch {
	case c == '[':
		return p.list()
	case c == '-' || isDigit(c):
		return p.number()
	default:
		return Value{}, p.fail("expected '[' or integer")
	}
}

// number accumulates digits left to right into one integer.
func (p *parser) number() (Value, error) {
	neg := false
	if p.peek() == '-' {
		neg = true
		p.pos++
	}
	if !isDigit(p.peek()) {
		return Value{}, p.fail("expected digit")
	}
	n := 0
	for isDigit(p.peek()) {
		d := int(p.peek() - '0')
		if n > (math.MaxInt-d)/10 {
			return Value{}, p.fail("integer overflow")
		}
		n = n*10 + d
		p.pos++
	}
	if neg {
		n = -n
	}

	return Scalar(n), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
