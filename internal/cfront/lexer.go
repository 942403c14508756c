package cfront

import (
	"unicode"
	"unicode/utf8"
)

// lexer tokenizes C-family shader source. Preprocessor lines are dropped,
// and [[attribute]] lists are dropped when the dialect asks for it.
type lexer struct {
	source         string
	pos            int
	line           int
	column         int
	start          int
	startColumn    int
	lineStart      bool
	skipAttributes bool
	tokens         []Token
}

func newLexer(source string, d *Dialect) *lexer {
	estTokens := len(source) / 6
	if estTokens < 16 {
		estTokens = 16
	}
	return &lexer{
		source:         source,
		line:           1,
		column:         1,
		lineStart:      true,
		skipAttributes: d.Attributes,
		tokens:         make([]Token, 0, estTokens),
	}
}

func (l *lexer) tokenize() ([]Token, error) {
	for !l.isAtEnd() {
		l.start = l.pos
		l.startColumn = l.column
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	l.tokens = append(l.tokens, Token{Kind: TokenEOF, Line: l.line, Column: l.column})
	return l.tokens, nil
}

func (l *lexer) scanToken() error {
	r := l.advance()
	atLineStart := l.lineStart
	if r != ' ' && r != '\t' && r != '\r' && r != '\n' {
		l.lineStart = false
	}

	switch r {
	case '#':
		if !atLineStart {
			return l.errorf("stray '#'")
		}
		l.directive()
	case '(':
		l.addToken(TokenLeftParen)
	case ')':
		l.addToken(TokenRightParen)
	case '{':
		l.addToken(TokenLeftBrace)
	case '}':
		l.addToken(TokenRightBrace)
	case '[':
		if l.skipAttributes && l.peek() == '[' {
			return l.attribute()
		}
		l.addToken(TokenLeftBracket)
	case ']':
		l.addToken(TokenRightBracket)
	case ',':
		l.addToken(TokenComma)
	case '.':
		if isDigit(l.peek()) {
			l.number()
		} else {
			l.addToken(TokenDot)
		}
	case ':':
		if l.match(':') {
			l.addToken(TokenColonColon)
		} else {
			l.addToken(TokenColon)
		}
	case ';':
		l.addToken(TokenSemicolon)
	case '?':
		l.addToken(TokenQuestion)
	case '~':
		l.addToken(TokenTilde)
	case '%':
		l.either('=', TokenPercentEqual, TokenPercent)
	case '^':
		l.either('=', TokenCaretEqual, TokenCaret)
	case '=':
		l.either('=', TokenEqualEqual, TokenEqual)
	case '!':
		l.either('=', TokenBangEqual, TokenBang)
	case '*':
		l.either('=', TokenStarEqual, TokenStar)
	case '+':
		if l.match('+') {
			l.addToken(TokenPlusPlus)
		} else {
			l.either('=', TokenPlusEqual, TokenPlus)
		}
	case '-':
		switch {
		case l.match('-'):
			l.addToken(TokenMinusMinus)
		case l.match('='):
			l.addToken(TokenMinusEqual)
		case l.match('>'):
			l.addToken(TokenArrow)
		default:
			l.addToken(TokenMinus)
		}
	case '/':
		switch {
		case l.match('/'):
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		case l.match('*'):
			return l.blockComment()
		default:
			l.either('=', TokenSlashEqual, TokenSlash)
		}
	case '<':
		if l.match('<') {
			l.either('=', TokenLessLessEqual, TokenLessLess)
		} else {
			l.either('=', TokenLessEqual, TokenLess)
		}
	case '>':
		if l.match('>') {
			l.either('=', TokenGreaterGreaterEqual, TokenGreaterGreater)
		} else {
			l.either('=', TokenGreaterEqual, TokenGreater)
		}
	case '&':
		if l.match('&') {
			l.addToken(TokenAmpAmp)
		} else {
			l.either('=', TokenAmpEqual, TokenAmpersand)
		}
	case '|':
		if l.match('|') {
			l.addToken(TokenPipePipe)
		} else {
			l.either('=', TokenPipeEqual, TokenPipe)
		}

	case ' ', '\r', '\t':
	case '\n':
		l.newline()

	default:
		switch {
		case isDigit(r):
			l.number()
		case isAlpha(r) || r == '_':
			l.identifier()
		default:
			return l.errorf("unexpected character %q", r)
		}
	}
	return nil
}

func (l *lexer) either(next rune, two, one TokenKind) {
	if l.match(next) {
		l.addToken(two)
	} else {
		l.addToken(one)
	}
}

// directive drops a preprocessor line, honoring backslash continuations.
func (l *lexer) directive() {
	for !l.isAtEnd() {
		r := l.peek()
		if r == '\\' && l.peekNext() == '\n' {
			l.advance()
			l.advance()
			l.newline()
			continue
		}
		if r == '\n' {
			return
		}
		l.advance()
	}
}

func (l *lexer) attribute() error {
	l.advance()
	for !l.isAtEnd() {
		if l.peek() == ']' && l.peekNext() == ']' {
			l.advance()
			l.advance()
			return nil
		}
		if l.advance() == '\n' {
			l.newline()
		}
	}
	return l.errorf("unterminated attribute")
}

func (l *lexer) blockComment() error {
	for !l.isAtEnd() {
		if l.peek() == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			return nil
		}
		if l.advance() == '\n' {
			l.newline()
		}
	}
	return l.errorf("unterminated block comment")
}

func (l *lexer) number() {
	if l.source[l.start] == '0' && (l.peek() == 'x' || l.peek() == 'X') {
		l.advance()
		for isHexDigit(l.peek()) {
			l.advance()
		}
		l.suffix()
		l.addToken(TokenNumber)
		return
	}

	for isDigit(l.peek()) || l.peek() == '.' {
		l.advance()
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	l.suffix()
	l.addToken(TokenNumber)
}

// suffix consumes u, f, h and l literal suffixes.
func (l *lexer) suffix() {
	for {
		switch l.peek() {
		case 'u', 'U', 'f', 'F', 'h', 'H', 'l', 'L':
			l.advance()
		default:
			return
		}
	}
}

func (l *lexer) identifier() {
	for isAlphaNumeric(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	if kind, ok := keywords[l.source[l.start:l.pos]]; ok {
		l.addToken(kind)
		return
	}
	l.addToken(TokenIdent)
}

var keywords = map[string]TokenKind{
	"break":    TokenBreak,
	"case":     TokenCase,
	"continue": TokenContinue,
	"default":  TokenDefault,
	"discard":  TokenDiscard,
	"do":       TokenDo,
	"else":     TokenElse,
	"false":    TokenFalse,
	"for":      TokenFor,
	"if":       TokenIf,
	"return":   TokenReturn,
	"switch":   TokenSwitch,
	"true":     TokenTrue,
	"while":    TokenWhile,
}

func (l *lexer) addToken(kind TokenKind) {
	l.tokens = append(l.tokens, Token{
		Kind:   kind,
		Lexeme: l.source[l.start:l.pos],
		Line:   l.line,
		Column: l.startColumn,
	})
}

func (l *lexer) errorf(format string, args ...any) error {
	return newSourceErrorf(l.line, l.startColumn, l.source, format, args...)
}

func (l *lexer) newline() {
	l.line++
	l.column = 1
	l.lineStart = true
}

func (l *lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	l.pos += size
	l.column++
	return r
}

func (l *lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos:])
	return r
}

func (l *lexer) peekNext() rune {
	if l.pos+1 >= len(l.source) {
		return 0
	}
	_, size := utf8.DecodeRuneInString(l.source[l.pos:])
	r, _ := utf8.DecodeRuneInString(l.source[l.pos+size:])
	return r
}

func (l *lexer) match(expected rune) bool {
	if l.isAtEnd() {
		return false
	}
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	if r != expected {
		return false
	}
	l.pos += size
	l.column++
	return true
}

func (l *lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isAlpha(r rune) bool {
	return unicode.IsLetter(r)
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
