package marl

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes MARL source code. Tokens are produced on demand through
// Next; two lexers over the same source yield identical token sequences.
type Lexer struct {
	source string
	pos    int
	line   int
	column int

	start       int
	startLine   int
	startColumn int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(source string) *Lexer {
	return &Lexer{
		source: source,
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Next returns the next token. After the end of input it keeps returning
// TokenEOF. A lexical error (unrecognized character, unterminated string or
// block comment, unknown escape) is returned as *SourceError.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipTrivia(); err != nil {
		return Token{}, err
	}

	l.start, l.startLine, l.startColumn = l.pos, l.line, l.column
	if l.isAtEnd() {
		return l.make(TokenEOF), nil
	}

	r := l.advance()
	switch r {
	case '(':
		return l.make(TokenLeftParen), nil
	case ')':
		return l.make(TokenRightParen), nil
	case '{':
		return l.make(TokenLeftBrace), nil
	case '}':
		return l.make(TokenRightBrace), nil
	case '[':
		if l.match('[') {
			return l.make(TokenLeftBracket2), nil
		}
		return l.make(TokenLeftBracket), nil
	case ']':
		if l.match(']') {
			return l.make(TokenRightBracket2), nil
		}
		return l.make(TokenRightBracket), nil
	case ',':
		return l.make(TokenComma), nil
	case '.':
		return l.make(TokenDot), nil
	case ':':
		return l.make(TokenColon), nil
	case ';':
		return l.make(TokenSemicolon), nil
	case '@':
		return l.make(TokenAt), nil
	case '^':
		return l.make(TokenCaret), nil
	case '+':
		return l.make(TokenPlus), nil
	case '*':
		return l.make(TokenStar), nil
	case '/':
		return l.make(TokenSlash), nil
	case '=':
		if l.match('=') {
			return l.make(TokenEqualEqual), nil
		}
		return l.make(TokenEqual), nil
	case '!':
		if l.match('=') {
			return l.make(TokenBangEqual), nil
		}
		return Token{}, NewLexError("unexpected character '!'", l.spanHere(), l.source)
	case '<':
		if l.match('=') {
			return l.make(TokenLessEqual), nil
		}
		return l.make(TokenLess), nil
	case '>':
		if l.match('=') {
			return l.make(TokenGreaterEqual), nil
		}
		return l.make(TokenGreater), nil
	case '-':
		// Longest match: a '-' directly followed by a digit or by the word
		// "inf" belongs to the numeric literal, not the minus operator.
		if isDigit(l.peek()) {
			l.advance()
			return l.number(), nil
		}
		if l.wordAhead("inf") {
			return l.make(TokenFloatLiteral), nil
		}
		return l.make(TokenMinus), nil
	case '"':
		return l.stringLiteral()
	default:
		if isDigit(r) {
			return l.number(), nil
		}
		if isAlpha(r) || r == '_' {
			return l.word(), nil
		}
		return Token{}, NewLexError(fmt.Sprintf("unrecognized character %q", r), l.spanHere(), l.source)
	}
}

// Tokenize returns all tokens from the source, ending with TokenEOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	// Estimate ~1 token per 6 characters of source.
	estTokens := len(l.source) / 6
	if estTokens < 16 {
		estTokens = 16
	}
	tokens := make([]Token, 0, estTokens)
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

// skipTrivia discards whitespace and comments. Line comments start with '#'
// or "//"; block comments "/*" are not nested, the first "*/" closes.
func (l *Lexer) skipTrivia() error {
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
		case '\n':
			l.advance()
			l.line++
			l.column = 1
		case '#':
			l.lineComment()
		case '/':
			if l.peekNext() == '/' {
				l.lineComment()
			} else if l.peekNext() == '*' {
				if err := l.blockComment(); err != nil {
					return err
				}
			} else {
				return nil
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) lineComment() {
	for !l.isAtEnd() && l.peek() != '\n' {
		l.advance()
	}
}

func (l *Lexer) blockComment() error {
	openLine, openColumn, openPos := l.line, l.column, l.pos
	l.advance() // '/'
	l.advance() // '*'
	for !l.isAtEnd() {
		if l.peek() == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			return nil
		}
		if l.peek() == '\n' {
			l.line++
			l.column = 0
		}
		l.advance()
	}
	span := Span{
		Start: Position{Line: openLine, Column: openColumn, Offset: openPos},
		End:   Position{Line: l.line, Column: l.column, Offset: l.pos},
	}
	return NewLexError("unterminated block comment", span, l.source)
}

// number scans the remainder of a numeric literal. The first digit (and an
// optional leading '-') has already been consumed.
//
// Integer: "0", or an optional '-' followed by a non-zero digit and further
// digits. Float: decimal digits, '.', one or more digits; the integer part
// may be "0" but carries no other leading zero.
func (l *Lexer) number() Token {
	neg := l.source[l.start] == '-'
	first := l.source[l.pos-1]

	if first == '0' {
		if l.peek() == '.' && isDigit(l.peekNext()) {
			l.advance()
			for isDigit(l.peek()) {
				l.advance()
			}
			return l.make(TokenFloatLiteral)
		}
		if neg {
			// "-0" is not a literal; the '-' stands alone as the operator.
			l.pos = l.start + 1
			l.column = l.startColumn + 1
			return l.make(TokenMinus)
		}
		return l.make(TokenIntLiteral)
	}

	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
		return l.make(TokenFloatLiteral)
	}
	return l.make(TokenIntLiteral)
}

// word scans an identifier-shaped token and classifies it. Reserved keywords
// win over type keywords, type keywords over the literal spellings "nan" and
// "inf", and only then does the word fall through to identifier. This fixed
// priority is why reserved words can never lex as identifiers.
func (l *Lexer) word() Token {
	for isAlphaNumeric(l.peek()) || l.peek() == '_' {
		l.advance()
	}

	text := l.source[l.start:l.pos]
	if kind, ok := keywords[text]; ok {
		return l.make(kind)
	}
	if kind, ok := typeKeywords[text]; ok {
		return l.make(kind)
	}
	if text == "nan" || text == "inf" {
		return l.make(TokenFloatLiteral)
	}
	return l.make(TokenIdent)
}

// wordAhead consumes the given word if it appears at the current position
// with a non-identifier character after it.
func (l *Lexer) wordAhead(word string) bool {
	if !strings.HasPrefix(l.source[l.pos:], word) {
		return false
	}
	rest := l.source[l.pos+len(word):]
	if rest != "" {
		r, _ := utf8.DecodeRuneInString(rest)
		if isAlphaNumeric(r) || r == '_' {
			return false
		}
	}
	for range word {
		l.advance()
	}
	return true
}

// stringLiteral scans a double-quoted string. The opening quote has been
// consumed. Escapes are limited to \b \f \n \r \t \" and \\; every other
// character, including a raw newline, is taken verbatim.
func (l *Lexer) stringLiteral() (Token, error) {
	for !l.isAtEnd() {
		r := l.advance()
		switch r {
		case '"':
			return l.make(TokenStringLiteral), nil
		case '\\':
			if l.isAtEnd() {
				break
			}
			escLine, escColumn, escPos := l.line, l.column-1, l.pos-1
			e := l.advance()
			switch e {
			case 'b', 'f', 'n', 'r', 't', '"', '\\':
			default:
				span := Span{
					Start: Position{Line: escLine, Column: escColumn, Offset: escPos},
					End:   Position{Line: l.line, Column: l.column, Offset: l.pos},
				}
				return Token{}, NewLexError(fmt.Sprintf("unknown escape sequence '\\%c'", e), span, l.source)
			}
		case '\n':
			l.line++
			l.column = 1
		}
	}
	span := Span{
		Start: Position{Line: l.startLine, Column: l.startColumn, Offset: l.start},
		End:   Position{Line: l.line, Column: l.column, Offset: l.pos},
	}
	return Token{}, NewLexError("unterminated string literal", span, l.source)
}

// decodeString converts a string literal lexeme (including the surrounding
// quotes) to its value. The lexer has already validated the escapes.
func decodeString(lexeme string) string {
	body := lexeme[1 : len(lexeme)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		}
	}
	return sb.String()
}

func (l *Lexer) make(kind TokenKind) Token {
	return Token{
		Kind:   kind,
		Lexeme: l.source[l.start:l.pos],
		Span: Span{
			Start: Position{Line: l.startLine, Column: l.startColumn, Offset: l.start},
			End:   Position{Line: l.line, Column: l.column, Offset: l.pos},
		},
	}
}

// spanHere returns the span of the token scanned so far.
func (l *Lexer) spanHere() Span {
	return Span{
		Start: Position{Line: l.startLine, Column: l.startColumn, Offset: l.start},
		End:   Position{Line: l.line, Column: l.column, Offset: l.pos},
	}
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	l.pos += size
	l.column++
	return r
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos:])
	return r
}

func (l *Lexer) peekNext() rune {
	if l.pos >= len(l.source) {
		return 0
	}
	_, size := utf8.DecodeRuneInString(l.source[l.pos:])
	if l.pos+size >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos+size:])
	return r
}

func (l *Lexer) match(expected rune) bool {
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

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return unicode.IsLetter(r)
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
