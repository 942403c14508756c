package cfront

import (
	"strings"

	"github.com/gogpu/usc/usil"
)

const tempPrefix = "_t"

func (p *parser) expression() (usil.Operand, error) {
	return p.ternary()
}

// ternary lowers c ? a : b to a select of both evaluated arms.
func (p *parser) ternary() (usil.Operand, error) {
	c, err := p.binary(0)
	if err != nil || !p.match(TokenQuestion) {
		return c, err
	}
	a, err := p.expression()
	if err != nil {
		return usil.Operand{}, err
	}
	if err := p.expect(TokenColon); err != nil {
		return usil.Operand{}, err
	}
	b, err := p.ternary()
	if err != nil {
		return usil.Operand{}, err
	}
	t := p.newTemp()
	p.emit(OpCond, t, c, a, b)
	return t, nil
}

func (p *parser) binary(level int) (usil.Operand, error) {
	if level == len(precedence) {
		return p.unary()
	}
	left, err := p.binary(level + 1)
	if err != nil {
		return usil.Operand{}, err
	}
	for p.matchAny(precedence[level]) {
		op := binaryOps[p.previous().Kind]
		right, err := p.binary(level + 1)
		if err != nil {
			return usil.Operand{}, err
		}
		t := p.newTemp()
		p.emit(op, t, left, right)
		left = t
	}
	return left, nil
}

func (p *parser) unary() (usil.Operand, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokenMinus:
		p.advance()
		v, err := p.unary()
		if err != nil {
			return usil.Operand{}, err
		}
		return p.negate(v), nil
	case TokenPlus:
		p.advance()
		return p.unary()
	case TokenBang, TokenTilde:
		p.advance()
		v, err := p.unary()
		if err != nil {
			return usil.Operand{}, err
		}
		op := OpLogNot
		if tok.Kind == TokenTilde {
			op = OpBitNot
		}
		t := p.newTemp()
		p.emit(op, t, v)
		return t, nil
	case TokenPlusPlus, TokenMinusMinus:
		p.advance()
		v, err := p.unary()
		if err != nil {
			return usil.Operand{}, err
		}
		if v.Kind != usil.OperandSymbol {
			return usil.Operand{}, p.errorf(tok, "operand of %s is not assignable", tok.Kind)
		}
		p.emit(incrementOp(tok.Kind), v, v, usil.Lit("1"))
		return v, nil
	}
	return p.postfix()
}

func incrementOp(kind TokenKind) string {
	if kind == TokenMinusMinus {
		return OpSub
	}
	return OpAdd
}

// negate folds negation into literals and source modifiers, and emits an
// instruction only for an already negated operand.
func (p *parser) negate(v usil.Operand) usil.Operand {
	switch {
	case v.Kind == usil.OperandLiteral && v.Name != "":
		if rest, ok := strings.CutPrefix(v.Name, "-"); ok {
			v.Name = rest
		} else {
			v.Name = "-" + v.Name
		}
		return v
	case v.Modifier == usil.ModNone:
		return v.WithModifier(usil.ModNeg)
	case v.Modifier == usil.ModNeg:
		return v.WithModifier(usil.ModNone)
	}
	t := p.newTemp()
	p.emit(OpNegate, t, v)
	return t
}

func (p *parser) postfix() (usil.Operand, error) {
	v, err := p.primary()
	if err != nil {
		return usil.Operand{}, err
	}
	for {
		switch {
		case p.match(TokenDot), p.match(TokenArrow):
			name := p.peek()
			if err := p.expect(TokenIdent); err != nil {
				return usil.Operand{}, err
			}
			if p.check(TokenLeftParen) {
				v, err = p.methodCall(v, name.Lexeme)
			} else {
				v, err = p.memberOf(v, name)
			}
			if err != nil {
				return usil.Operand{}, err
			}
		case p.match(TokenLeftBracket):
			idx, err := p.expression()
			if err != nil {
				return usil.Operand{}, err
			}
			if err := p.expect(TokenRightBracket); err != nil {
				return usil.Operand{}, err
			}
			if isIntLiteral(idx) && v.Kind == usil.OperandSymbol && v.Swizzle == "" && v.Modifier == usil.ModNone {
				v.Name += "[" + idx.Name + "]"
				continue
			}
			t := p.newTemp()
			p.emit(OpAccess, t, v, idx)
			v = t
		case p.check(TokenPlusPlus), p.check(TokenMinusMinus):
			tok := p.advance()
			if v.Kind != usil.OperandSymbol {
				return usil.Operand{}, p.errorf(tok, "operand of %s is not assignable", tok.Kind)
			}
			t := p.newTemp()
			p.emit(OpAssign, t, v)
			p.emit(incrementOp(tok.Kind), v, v, usil.Lit("1"))
			v = t
		default:
			return v, nil
		}
	}
}

// memberOf applies a swizzle or struct member access to v.
func (p *parser) memberOf(v usil.Operand, name Token) (usil.Operand, error) {
	if sw, ok := swizzle(name.Lexeme); ok {
		if v.Kind == usil.OperandLiteral {
			v = p.materialize(v)
		}
		if v.Swizzle != "" {
			composed, ok := composeSwizzle(v.Swizzle, sw)
			if !ok {
				return usil.Operand{}, p.errorf(name, "swizzle .%s out of range of .%s", name.Lexeme, v.Swizzle)
			}
			sw = composed
		}
		v.Swizzle = sw
		return v, nil
	}
	if v.Kind != usil.OperandSymbol || v.Swizzle != "" || v.Modifier != usil.ModNone {
		return usil.Operand{}, p.errorf(name, "member %s of a non-aggregate value", name.Lexeme)
	}
	v.Name += "." + name.Lexeme
	return v, nil
}

func (p *parser) methodCall(recv usil.Operand, name string) (usil.Operand, error) {
	args, err := p.arguments()
	if err != nil {
		return usil.Operand{}, err
	}
	t := p.newTemp()
	if p.d.Methods[name] {
		p.emit(name, append([]usil.Operand{t, recv}, args...)...)
	} else {
		p.emit(OpCall, append([]usil.Operand{t, usil.Label(name), recv}, args...)...)
	}
	return t, nil
}

func (p *parser) materialize(v usil.Operand) usil.Operand {
	t := p.newTemp()
	p.emit(OpAssign, t, v)
	return t
}

func (p *parser) primary() (usil.Operand, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokenNumber, TokenTrue, TokenFalse:
		p.advance()
		return usil.Lit(tok.Lexeme), nil
	case TokenLeftParen:
		p.advance()
		v, err := p.expression()
		if err != nil {
			return usil.Operand{}, err
		}
		return v, p.expect(TokenRightParen)
	case TokenLeftBrace:
		return p.braceList("")
	case TokenIdent:
		return p.identifier()
	}
	return usil.Operand{}, p.errorf(tok, "unexpected %s in expression", tok.Kind)
}

// identifier lowers a name, a constructor, a builtin call or a user call.
func (p *parser) identifier() (usil.Operand, error) {
	tok := p.advance()
	name := tok.Lexeme
	for p.check(TokenColonColon) && p.peekAt(1).Kind == TokenIdent {
		p.advance()
		name = p.advance().Lexeme
	}

	var tmpl string
	if p.d.Templated[name] && p.check(TokenLess) {
		args, ok := p.templateArgs()
		if !ok {
			return usil.Operand{}, p.errorf(tok, "unterminated template arguments for %s", name)
		}
		tmpl = args
	}
	if !p.check(TokenLeftParen) {
		if tmpl != "" {
			return usil.Operand{}, p.errorf(p.peek(), "expected ( after %s%s", name, tmpl)
		}
		return usil.Sym(name), nil
	}

	args, err := p.arguments()
	if err != nil {
		return usil.Operand{}, err
	}
	t := p.newTemp()
	ops := []usil.Operand{t}
	switch {
	case p.d.Types[name]:
		ops = append(ops, usil.Lit(name+tmpl))
		p.emit(OpConstruct, append(ops, args...)...)
	case p.d.Builtins[name]:
		if tmpl != "" {
			ops = append(ops, usil.Lit(strings.TrimSuffix(strings.TrimPrefix(tmpl, "<"), ">")))
		}
		p.emit(name, append(ops, args...)...)
	default:
		ops = append(ops, usil.Label(name))
		p.emit(OpCall, append(ops, args...)...)
	}
	return t, nil
}

func (p *parser) arguments() ([]usil.Operand, error) {
	if err := p.expect(TokenLeftParen); err != nil {
		return nil, err
	}
	var args []usil.Operand
	if p.match(TokenRightParen) {
		return args, nil
	}
	for {
		v, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, v)
		if !p.match(TokenComma) {
			break
		}
	}
	return args, p.expect(TokenRightParen)
}

// braceList lowers an initializer list to a construct.
func (p *parser) braceList(typ string) (usil.Operand, error) {
	p.advance()
	var elems []usil.Operand
	for !p.check(TokenRightBrace) {
		var (
			v   usil.Operand
			err error
		)
		if p.check(TokenLeftBrace) {
			v, err = p.braceList("")
		} else {
			v, err = p.expression()
		}
		if err != nil {
			return usil.Operand{}, err
		}
		elems = append(elems, v)
		if !p.match(TokenComma) {
			break
		}
	}
	if err := p.expect(TokenRightBrace); err != nil {
		return usil.Operand{}, err
	}

	t := p.newTemp()
	ops := []usil.Operand{t}
	if typ != "" {
		ops = append(ops, usil.Lit(typ))
	}
	p.emit(OpConstruct, append(ops, elems...)...)
	return t, nil
}

func (p *parser) matchAny(kinds []TokenKind) bool {
	for _, k := range kinds {
		if p.match(k) {
			return true
		}
	}
	return false
}

// swizzle normalizes a component selection to xyzw letters.
func swizzle(name string) (string, bool) {
	if len(name) == 0 || len(name) > 4 {
		return "", false
	}
	for _, set := range []string{"xyzw", "rgba", "stpq"} {
		out := make([]byte, len(name))
		ok := true
		for i := 0; i < len(name) && ok; i++ {
			j := strings.IndexByte(set, name[i])
			ok = j >= 0
			if ok {
				out[i] = "xyzw"[j]
			}
		}
		if ok {
			return string(out), true
		}
	}
	return "", false
}

// composeSwizzle applies inner to a value already swizzled by outer.
func composeSwizzle(outer, inner string) (string, bool) {
	out := make([]byte, len(inner))
	for i := range len(inner) {
		j := strings.IndexByte("xyzw", inner[i])
		if j >= len(outer) {
			return "", false
		}
		out[i] = outer[j]
	}
	return string(out), true
}

func isIntLiteral(o usil.Operand) bool {
	if o.Kind != usil.OperandLiteral || o.Name == "" || o.Modifier != usil.ModNone {
		return false
	}
	for _, c := range o.Name {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isTemp(o usil.Operand) bool {
	return o.Kind == usil.OperandSymbol && strings.HasPrefix(o.Name, tempPrefix) &&
		o.Swizzle == "" && o.Modifier == usil.ModNone
}

func sameOperand(a, b usil.Operand) bool {
	return a.Kind == b.Kind && a.Name == b.Name && a.Swizzle == b.Swizzle &&
		a.Modifier == b.Modifier && len(a.Index) == 0 && len(b.Index) == 0
}
