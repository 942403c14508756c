package cfront

import (
	"fmt"

	"github.com/gogpu/usc/usil"
)

// Instruction is one three-address instruction. When an instruction
// produces a value, its destination is the first operand.
type Instruction struct {
	Op       string
	Operands []usil.Operand
	Flags    usil.Flags
}

func (in Instruction) clone() Instruction {
	ops := make([]usil.Operand, len(in.Operands))
	for i, o := range in.Operands {
		ops[i] = o.Clone()
	}
	in.Operands = ops
	return in
}

// frame is an enclosing loop or switch.
type frame struct {
	step     []Instruction
	isSwitch bool
}

type parser struct {
	d       *Dialect
	source  string
	tokens  []Token
	current int
	out     []Instruction
	temps   int
	frames  []frame
}

// Parse lowers every function definition in source to instructions, in
// source order. Global declarations and prototypes produce nothing. Errors
// are *SourceError values.
func Parse(source string, d *Dialect) ([]Instruction, error) {
	tokens, err := newLexer(source, d).tokenize()
	if err != nil {
		return nil, err
	}
	p := &parser{d: d, source: source, tokens: tokens}
	for !p.isAtEnd() {
		if err := p.topLevel(); err != nil {
			return nil, err
		}
	}
	return p.out, nil
}

func (p *parser) topLevel() error {
	if p.match(TokenSemicolon) {
		return nil
	}
	if nameAt, ok := p.functionDefinition(); ok {
		return p.function(nameAt)
	}
	return p.skipDeclaration()
}

// functionDefinition reports whether the declaration at the cursor is a
// function with a body, and where its name is.
func (p *parser) functionDefinition() (int, bool) {
	for i := p.current; i < len(p.tokens); i++ {
		switch p.tokens[i].Kind {
		case TokenSemicolon, TokenLeftBrace, TokenEqual, TokenEOF:
			return 0, false
		case TokenLeftParen:
			j := p.matching(i)
			if j < 0 || p.tokens[j+1].Kind != TokenLeftBrace {
				return 0, false
			}
			if i == p.current || p.tokens[i-1].Kind != TokenIdent {
				return 0, false
			}
			return i - 1, true
		}
	}
	return 0, false
}

// matching returns the index of the parenthesis closing the one at i.
func (p *parser) matching(i int) int {
	depth := 0
	for ; i < len(p.tokens); i++ {
		switch p.tokens[i].Kind {
		case TokenLeftParen:
			depth++
		case TokenRightParen:
			depth--
			if depth == 0 {
				return i
			}
		case TokenEOF:
			return -1
		}
	}
	return -1
}

func (p *parser) skipDeclaration() error {
	depth := 0
	for !p.isAtEnd() {
		tok := p.advance()
		switch tok.Kind {
		case TokenLeftBrace:
			depth++
		case TokenRightBrace:
			depth--
			if depth < 0 {
				return p.errorf(tok, "unbalanced '}'")
			}
		case TokenSemicolon:
			if depth == 0 {
				return nil
			}
		}
	}
	return p.errorf(p.peek(), "unterminated declaration")
}

func (p *parser) function(nameAt int) error {
	name := p.tokens[nameAt].Lexeme
	p.current = nameAt + 2
	p.temps = 0

	params, err := p.parameters()
	if err != nil {
		return err
	}
	p.emit(OpFunc, append([]usil.Operand{usil.Label(name)}, params...)...)
	if err := p.block(); err != nil {
		return err
	}
	if n := len(p.out); p.out[n-1].Op != OpRet {
		p.emit(OpRet)
	}
	return nil
}

// parameters consumes a parameter list through its closing parenthesis
// and returns the parameter names.
func (p *parser) parameters() ([]usil.Operand, error) {
	var (
		params []usil.Operand
		last   string
		idents int
		depth  int
	)
	flush := func() {
		if last != "" && (idents > 1 || last != "void") {
			params = append(params, usil.Sym(last))
		}
		last, idents = "", 0
	}
	for {
		if p.isAtEnd() {
			return nil, p.errorf(p.peek(), "unterminated parameter list")
		}
		tok := p.advance()
		switch tok.Kind {
		case TokenLeftParen, TokenLeftBracket, TokenLess:
			depth++
		case TokenRightBracket, TokenGreater:
			depth--
		case TokenGreaterGreater:
			depth -= 2
		case TokenRightParen:
			if depth == 0 {
				flush()
				return params, nil
			}
			depth--
		case TokenComma:
			if depth == 0 {
				flush()
			}
		case TokenIdent:
			if depth == 0 {
				last = tok.Lexeme
				idents++
			}
		}
	}
}

func (p *parser) block() error {
	if err := p.expect(TokenLeftBrace); err != nil {
		return err
	}
	for !p.match(TokenRightBrace) {
		if p.isAtEnd() {
			return p.errorf(p.peek(), "unterminated block")
		}
		if err := p.statement(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) statement() error {
	tok := p.peek()
	switch tok.Kind {
	case TokenLeftBrace:
		return p.block()
	case TokenSemicolon:
		p.advance()
		return nil
	case TokenIf:
		return p.ifStmt()
	case TokenFor:
		return p.forStmt()
	case TokenWhile:
		return p.whileStmt()
	case TokenDo:
		return p.doStmt()
	case TokenSwitch:
		return p.switchStmt()
	case TokenReturn:
		return p.returnStmt()
	case TokenBreak:
		p.advance()
		if len(p.frames) == 0 {
			return p.errorf(tok, "break outside loop or switch")
		}
		p.emit(OpBreak)
		return p.expect(TokenSemicolon)
	case TokenContinue:
		p.advance()
		return p.continueStmt(tok)
	case TokenDiscard:
		p.advance()
		p.emit(OpDiscard)
		return p.expect(TokenSemicolon)
	case TokenCase, TokenDefault:
		return p.errorf(tok, "%s outside switch", tok.Kind)
	}
	if err := p.simpleStatement(); err != nil {
		return err
	}
	return p.expect(TokenSemicolon)
}

func (p *parser) simpleStatement() error {
	if p.isDeclaration() {
		return p.declaration()
	}
	for {
		if err := p.assignOrExpr(); err != nil {
			return err
		}
		if !p.match(TokenComma) {
			return nil
		}
	}
}

func (p *parser) ifStmt() error {
	p.advance()
	cond, err := p.condition()
	if err != nil {
		return err
	}
	p.emitFlagged(OpIf, usil.FlagTestNonZero, cond)
	if err := p.statement(); err != nil {
		return err
	}
	if p.match(TokenElse) {
		p.emit(OpElse)
		if err := p.statement(); err != nil {
			return err
		}
	}
	p.emit(OpEndIf)
	return nil
}

func (p *parser) whileStmt() error {
	p.advance()
	p.emit(OpLoop)
	cond, err := p.condition()
	if err != nil {
		return err
	}
	p.emitFlagged(OpBreakC, usil.FlagTestZero, cond)
	if err := p.loopBody(nil); err != nil {
		return err
	}
	p.emit(OpEndLoop)
	return nil
}

// forStmt lowers for (init; cond; step) body. The step runs at the end of
// the body and before every continue.
func (p *parser) forStmt() error {
	p.advance()
	if err := p.expect(TokenLeftParen); err != nil {
		return err
	}
	if !p.check(TokenSemicolon) {
		if err := p.simpleStatement(); err != nil {
			return err
		}
	}
	if err := p.expect(TokenSemicolon); err != nil {
		return err
	}

	p.emit(OpLoop)
	if !p.check(TokenSemicolon) {
		cond, err := p.expression()
		if err != nil {
			return err
		}
		p.emitFlagged(OpBreakC, usil.FlagTestZero, cond)
	}
	if err := p.expect(TokenSemicolon); err != nil {
		return err
	}

	saved := p.out
	p.out = nil
	if !p.check(TokenRightParen) {
		if err := p.simpleStatement(); err != nil {
			return err
		}
	}
	step := p.out
	p.out = saved
	if err := p.expect(TokenRightParen); err != nil {
		return err
	}

	if err := p.loopBody(step); err != nil {
		return err
	}
	p.emitAll(step)
	p.emit(OpEndLoop)
	return nil
}

func (p *parser) doStmt() error {
	p.advance()
	p.emit(OpLoop)
	if err := p.loopBody(nil); err != nil {
		return err
	}
	if err := p.expect(TokenWhile); err != nil {
		return err
	}
	cond, err := p.condition()
	if err != nil {
		return err
	}
	if err := p.expect(TokenSemicolon); err != nil {
		return err
	}
	p.emitFlagged(OpBreakC, usil.FlagTestZero, cond)
	p.emit(OpEndLoop)
	return nil
}

func (p *parser) loopBody(step []Instruction) error {
	p.frames = append(p.frames, frame{step: step})
	defer func() { p.frames = p.frames[:len(p.frames)-1] }()
	return p.statement()
}

func (p *parser) switchStmt() error {
	p.advance()
	v, err := p.condition()
	if err != nil {
		return err
	}
	p.emit(OpSwitch, v)
	if err := p.expect(TokenLeftBrace); err != nil {
		return err
	}

	p.frames = append(p.frames, frame{isSwitch: true})
	defer func() { p.frames = p.frames[:len(p.frames)-1] }()

	for !p.match(TokenRightBrace) {
		switch {
		case p.isAtEnd():
			return p.errorf(p.peek(), "unterminated switch")
		case p.match(TokenCase):
			label, err := p.caseLabel()
			if err != nil {
				return err
			}
			p.emit(OpCase, label)
		case p.match(TokenDefault):
			if err := p.expect(TokenColon); err != nil {
				return err
			}
			p.emit(OpDefault)
		default:
			if err := p.statement(); err != nil {
				return err
			}
		}
	}
	p.emit(OpEndSwitch)
	return nil
}

// caseLabel reads a constant case label through its colon.
func (p *parser) caseLabel() (usil.Operand, error) {
	var text string
	for !p.check(TokenColon) {
		if p.isAtEnd() || p.check(TokenSemicolon) {
			return usil.Operand{}, p.errorf(p.peek(), "expected ':' after case label")
		}
		text += p.advance().Lexeme
	}
	p.advance()
	if text == "" {
		return usil.Operand{}, p.errorf(p.previous(), "empty case label")
	}
	return usil.Lit(text), nil
}

func (p *parser) continueStmt(tok Token) error {
	for i := len(p.frames) - 1; i >= 0; i-- {
		if p.frames[i].isSwitch {
			continue
		}
		p.emitAll(p.frames[i].step)
		p.emit(OpContinue)
		return p.expect(TokenSemicolon)
	}
	return p.errorf(tok, "continue outside loop")
}

func (p *parser) returnStmt() error {
	p.advance()
	if p.match(TokenSemicolon) {
		p.emit(OpRet)
		return nil
	}
	v, err := p.expression()
	if err != nil {
		return err
	}
	p.emit(OpRet, v)
	return p.expect(TokenSemicolon)
}

// isDeclaration looks ahead for [qualifiers] type name.
func (p *parser) isDeclaration() bool {
	save := p.current
	defer func() { p.current = save }()

	p.skipQualifiers()
	if _, ok := p.typeName(); !ok || !p.check(TokenIdent) {
		return false
	}
	p.advance()
	switch p.peek().Kind {
	case TokenEqual, TokenSemicolon, TokenComma, TokenLeftBracket, TokenLeftParen:
		return true
	}
	return false
}

func (p *parser) skipQualifiers() {
	for p.check(TokenIdent) && p.d.Qualifiers[p.peek().Lexeme] {
		p.advance()
	}
}

// typeName consumes a type: a name with optional namespace, template
// arguments and reference or pointer markers.
func (p *parser) typeName() (string, bool) {
	if !p.check(TokenIdent) {
		return "", false
	}
	name := p.advance().Lexeme
	for p.check(TokenColonColon) && p.peekAt(1).Kind == TokenIdent {
		p.advance()
		name = p.advance().Lexeme
	}
	if p.d.Templates && p.check(TokenLess) {
		args, ok := p.templateArgs()
		if !ok {
			return "", false
		}
		name += args
	}
	for p.match(TokenAmpersand) || p.match(TokenStar) {
	}
	return name, true
}

// templateArgs consumes a <...> list and returns its text.
func (p *parser) templateArgs() (string, bool) {
	p.advance()
	text := "<"
	depth := 1
	for depth > 0 {
		if p.isAtEnd() {
			return "", false
		}
		tok := p.advance()
		switch tok.Kind {
		case TokenSemicolon, TokenLeftBrace:
			return "", false
		case TokenLess:
			depth++
		case TokenGreater:
			depth--
		case TokenGreaterGreater:
			depth -= 2
		}
		text += tok.Lexeme
		if tok.Kind == TokenComma {
			text += " "
		}
	}
	return text, depth == 0
}

func (p *parser) declaration() error {
	p.skipQualifiers()
	typ, ok := p.typeName()
	if !ok {
		return p.errorf(p.peek(), "expected type")
	}
	for {
		tok := p.peek()
		if err := p.expect(TokenIdent); err != nil {
			return err
		}
		target := usil.Sym(tok.Lexeme)
		for p.match(TokenLeftBracket) {
			for !p.match(TokenRightBracket) {
				if p.isAtEnd() {
					return p.errorf(p.peek(), "unterminated array size")
				}
				p.advance()
			}
		}

		switch {
		case p.match(TokenEqual):
			v, err := p.initializer(typ)
			if err != nil {
				return err
			}
			p.assignTo(target, v)
		case p.check(TokenLeftParen):
			args, err := p.arguments()
			if err != nil {
				return err
			}
			p.emit(OpConstruct, append([]usil.Operand{target, usil.Lit(typ)}, args...)...)
		}
		if !p.match(TokenComma) {
			return nil
		}
	}
}

func (p *parser) initializer(typ string) (usil.Operand, error) {
	if p.check(TokenLeftBrace) {
		return p.braceList(typ)
	}
	return p.expression()
}

// lvalue is an assignment target. A dynamically indexed target is stored
// through its base and index.
type lvalue struct {
	target usil.Operand
	index  *usil.Operand
}

// assignOrExpr lowers an assignment, compound assignment, increment or
// expression statement.
func (p *parser) assignOrExpr() error {
	mark, outMark, tempMark := p.current, len(p.out), p.temps

	if lv, ok := p.tryLValue(); ok {
		tok := p.peek()
		switch {
		case tok.Kind == TokenEqual:
			p.advance()
			v, err := p.expression()
			if err != nil {
				return err
			}
			p.store(lv, v)
			return nil
		case compoundOps[tok.Kind] != "":
			p.advance()
			v, err := p.expression()
			if err != nil {
				return err
			}
			p.compound(lv, compoundOps[tok.Kind], v)
			return nil
		case tok.Kind == TokenPlusPlus:
			p.advance()
			p.compound(lv, OpAdd, usil.Lit("1"))
			return nil
		case tok.Kind == TokenMinusMinus:
			p.advance()
			p.compound(lv, OpSub, usil.Lit("1"))
			return nil
		}
	}

	p.current, p.out, p.temps = mark, p.out[:outMark], tempMark
	v, err := p.expression()
	if err != nil {
		return err
	}
	// An unused call result has no destination.
	if n := len(p.out); n > outMark && len(p.out[n-1].Operands) > 0 && sameOperand(p.out[n-1].Operands[0], v) {
		if op := p.out[n-1].Op; op == OpCall || p.d.Void[op] {
			p.out[n-1].Operands = p.out[n-1].Operands[1:]
		}
	}
	return nil
}

func (p *parser) tryLValue() (lvalue, bool) {
	if !p.check(TokenIdent) {
		return lvalue{}, false
	}
	lv := lvalue{target: usil.Sym(p.advance().Lexeme)}
	for {
		switch {
		case p.match(TokenDot), p.match(TokenArrow):
			if lv.index != nil || !p.check(TokenIdent) {
				return lvalue{}, false
			}
			v, err := p.memberOf(lv.target, p.advance())
			if err != nil {
				return lvalue{}, false
			}
			lv.target = v
		case p.match(TokenLeftBracket):
			if lv.index != nil {
				return lvalue{}, false
			}
			idx, err := p.expression()
			if err != nil || !p.match(TokenRightBracket) {
				return lvalue{}, false
			}
			if isIntLiteral(idx) && lv.target.Swizzle == "" {
				lv.target.Name += "[" + idx.Name + "]"
			} else {
				lv.index = &idx
			}
		default:
			return lv, true
		}
	}
}

func (p *parser) store(lv lvalue, v usil.Operand) {
	if lv.index != nil {
		p.emit(OpStore, lv.target, *lv.index, v)
		return
	}
	p.assignTo(lv.target, v)
}

func (p *parser) compound(lv lvalue, op string, v usil.Operand) {
	if lv.index != nil {
		t := p.newTemp()
		p.emit(OpAccess, t, lv.target, *lv.index)
		p.emit(op, t, t, v)
		p.emit(OpStore, lv.target, *lv.index, t)
		return
	}
	p.emit(op, lv.target, lv.target, v)
}

// assignTo writes v to dst, folding into the instruction that just
// produced v when v is a fresh temporary.
func (p *parser) assignTo(dst, v usil.Operand) {
	if n := len(p.out); n > 0 && isTemp(v) && len(p.out[n-1].Operands) > 0 &&
		p.out[n-1].Op != OpRet && sameOperand(p.out[n-1].Operands[0], v) {
		p.out[n-1].Operands[0] = dst
		return
	}
	p.emit(OpAssign, dst, v)
}

func (p *parser) condition() (usil.Operand, error) {
	if err := p.expect(TokenLeftParen); err != nil {
		return usil.Operand{}, err
	}
	v, err := p.expression()
	if err != nil {
		return usil.Operand{}, err
	}
	return v, p.expect(TokenRightParen)
}

func (p *parser) newTemp() usil.Operand {
	t := usil.Sym(fmt.Sprintf("%s%d", tempPrefix, p.temps))
	p.temps++
	return t
}

func (p *parser) emit(op string, operands ...usil.Operand) {
	p.out = append(p.out, Instruction{Op: op, Operands: operands})
}

func (p *parser) emitFlagged(op string, flags usil.Flags, operands ...usil.Operand) {
	p.out = append(p.out, Instruction{Op: op, Operands: operands, Flags: flags})
}

func (p *parser) emitAll(ins []Instruction) {
	for _, in := range ins {
		p.out = append(p.out, in.clone())
	}
}

// Token helpers

func (p *parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) peek() Token {
	return p.tokens[p.current]
}

func (p *parser) peekAt(n int) Token {
	if p.current+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+n]
}

func (p *parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().Kind == TokenEOF
}

func (p *parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *parser) match(kind TokenKind) bool {
	if p.check(kind) && !p.isAtEnd() {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(kind TokenKind) error {
	if p.match(kind) {
		return nil
	}
	return p.errorf(p.peek(), "expected %s, got %s", kind, p.peek().Kind)
}

func (p *parser) errorf(tok Token, format string, args ...any) error {
	return newSourceErrorf(tok.Line, tok.Column, p.source, format, args...)
}
