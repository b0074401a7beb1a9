package expr

import (
	"fmt"
	"strconv"
)

// node is an expression tree node. Evaluation returns a value so that names
// like abs or math can flow through the tree and be rejected with a useful
// message only where a number was required.
type node interface {
	eval(env *environment) (value, error)
}

type numberLit float64

type nameRef struct {
	name string
	pos  int
}

type attrRef struct {
	recv node
	name string
	pos  int
}

type unaryOp struct {
	op    tokenKind // tokPlus or tokMinus
	child node
}

type binaryOp struct {
	op          tokenKind
	left, right node
}

type call struct {
	fn   node
	args []node
	pos  int
}

type parser struct {
	toks []token
	i    int
}

// parse builds the expression tree for src. Errors carry the byte position
// of the offending token.
func parse(src string) (node, error) {
	toks, err := scan(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	root, err := p.additive()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, fmt.Errorf("unexpected %s at position %d", tok, tok.pos)
	}
	return root, nil
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

// additive := multiplicative (('+' | '-') multiplicative)*
func (p *parser) additive() (node, error) {
	left, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokPlus && op != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		left = &binaryOp{op: op, left: left, right: right}
	}
}

// multiplicative := unary (('*' | '/' | '%') unary)*
func (p *parser) multiplicative() (node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokStar && op != tokSlash && op != tokPercent {
			return left, nil
		}
		p.next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &binaryOp{op: op, left: left, right: right}
	}
}

// unary := ('+' | '-') unary | power
func (p *parser) unary() (node, error) {
	op := p.peek().kind
	if op == tokPlus || op == tokMinus {
		p.next()
		child, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &unaryOp{op: op, child: child}, nil
	}
	return p.power()
}

// power := postfix ('**' unary)?
//
// Exponentiation is right-associative and binds tighter than unary minus on
// its left, so -v**2 parses as -(v**2) and 2**-3 is accepted.
func (p *parser) power() (node, error) {
	base, err := p.postfix()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokStarStar {
		return base, nil
	}
	p.next()
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &binaryOp{op: tokStarStar, left: base, right: exp}, nil
}

// postfix := primary ('.' ident | '(' args ')')*
func (p *parser) postfix() (node, error) {
	n, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch tok := p.peek(); tok.kind {
		case tokDot:
			p.next()
			attr := p.next()
			if attr.kind != tokIdent {
				return nil, fmt.Errorf("expected a name after '.' at position %d, got %s", attr.pos, attr)
			}
			n = &attrRef{recv: n, name: attr.text, pos: attr.pos}
		case tokLParen:
			p.next()
			args, err := p.arguments()
			if err != nil {
				return nil, err
			}
			n = &call{fn: n, args: args, pos: tok.pos}
		default:
			return n, nil
		}
	}
}

func (p *parser) arguments() ([]node, error) {
	var args []node
	if p.peek().kind == tokRParen {
		p.next()
		return args, nil
	}
	for {
		arg, err := p.additive()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		switch tok := p.next(); tok.kind {
		case tokComma:
		case tokRParen:
			return args, nil
		default:
			return nil, fmt.Errorf("expected ',' or ')' at position %d, got %s", tok.pos, tok)
		}
	}
}

// primary := number | ident | '(' additive ')'
func (p *parser) primary() (node, error) {
	switch tok := p.next(); tok.kind {
	case tokNumber:
		f, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q at position %d", tok.text, tok.pos)
		}
		return numberLit(f), nil
	case tokIdent:
		return &nameRef{name: tok.text, pos: tok.pos}, nil
	case tokLParen:
		inner, err := p.additive()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, fmt.Errorf("expected ')' at position %d, got %s", closing.pos, closing)
		}
		return inner, nil
	default:
		return nil, fmt.Errorf("unexpected %s at position %d", tok, tok.pos)
	}
}
