// SPDX-License-Identifier: MIT

package calc

import "fmt"

// node is one vertex of the parsed expression tree.
type node interface {
	eval(env map[string]float64) (float64, error)
}

type (
	numNode  float64
	varNode  string
	negNode  struct{ x node }
	callNode struct {
		name string
		fn   func(float64) float64
		arg  node
	}
	binNode struct {
		op   tokenKind
		l, r node
	}
)

// MaxDepth bounds how deeply unary operators, parentheses, '^' operands and
// function arguments may nest. Deeper input is rejected with ErrSyntax.
const MaxDepth = 256

type parser struct {
	toks  []token
	pos   int
	depth int
	opts  options
}

// parse builds the tree for src under opts.
func parse(src string, opts options) (node, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	if len(toks) == 1 {
		return nil, ErrEmpty
	}
	p := &parser{toks: toks, opts: opts}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, syntaxErrorf(t.pos, "unexpected %q", t.text)
	}

	return n, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}

	return t
}

// expr := term (('+' | '-') term)*
func (p *parser) expr() (node, error) {
	l, err := p.term()
	if err != nil {
		return nil, err
	}
	for k := p.peek().kind; k == tokPlus || k == tokMinus; k = p.peek().kind {
		p.next()
		r, err := p.term()
		if err != nil {
			return nil, err
		}
		l = binNode{op: k, l: l, r: r}
	}

	return l, nil
}

// term := unary (('*' | '/') unary)*
func (p *parser) term() (node, error) {
	l, err := p.unary()
	if err != nil {
		return nil, err
	}
	for k := p.peek().kind; k == tokStar || k == tokSlash; k = p.peek().kind {
		p.next()
		r, err := p.unary()
		if err != nil {
			return nil, err
		}
		l = binNode{op: k, l: l, r: r}
	}

	return l, nil
}

// unary := ('+' | '-') unary | power
func (p *parser) unary() (node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxDepth {
		return nil, syntaxErrorf(p.peek().pos, "nesting deeper than %d", MaxDepth)
	}

	switch p.peek().kind {
	case tokPlus:
		p.next()

		return p.unary()
	case tokMinus:
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}

		return negNode{x: x}, nil
	}

	return p.power()
}

// power := atom ('^' unary)?
// The right operand is a unary, so 2^3^2 = 2^(3^2) and 2^-1 = 0.5,
// while -2^2 = -(2^2).
func (p *parser) power() (node, error) {
	base, err := p.atom()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokCaret {
		return base, nil
	}
	p.next()
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}

	return binNode{op: tokCaret, l: base, r: exp}, nil
}

// atom := number | ident | ident '(' expr ')' | '(' expr ')'
func (p *parser) atom() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return numNode(t.num), nil
	case tokLParen:
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err = p.expect(tokRParen, ")"); err != nil {
			return nil, err
		}

		return n, nil
	case tokIdent:
		return p.ident(t)
	case tokEOF:
		return nil, syntaxErrorf(t.pos, "unexpected end of input")
	}

	return nil, syntaxErrorf(t.pos, "unexpected %q", t.text)
}

func (p *parser) ident(t token) (node, error) {
	if _, ok := p.opts.vars[t.text]; ok {
		return varNode(t.text), nil
	}
	if !p.opts.functions {
		return nil, fmt.Errorf("calc: at %d: %q: %w", t.pos, t.text, ErrUnknownIdent)
	}
	if v, ok := constants[t.text]; ok {
		return numNode(v), nil
	}
	fn, ok := builtins[t.text]
	if !ok {
		return nil, fmt.Errorf("calc: at %d: %q: %w", t.pos, t.text, ErrUnknownIdent)
	}
	if err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	arg, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err = p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}

	return callNode{name: t.text, fn: fn, arg: arg}, nil
}

func (p *parser) expect(kind tokenKind, text string) error {
	t := p.next()
	if t.kind != kind {
		if t.kind == tokEOF {
			return syntaxErrorf(t.pos, "expected %q, got end of input", text)
		}

		return syntaxErrorf(t.pos, "expected %q, got %q", text, t.text)
	}

	return nil
}
