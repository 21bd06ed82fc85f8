package marl

import (
	"fmt"
	"math"
	"strconv"
)

// Parser parses MARL source into a Script AST. It pulls tokens from its own
// lexer through a two-token lookahead cursor; the second token is needed
// only to tell an assignment from an expression statement at an identifier.
type Parser struct {
	lex    *Lexer
	source string

	buf  [2]Token
	n    int
	prev Token

	errors SourceErrors
	lexErr *SourceError
}

// NewParser creates a new parser for the given source.
func NewParser(source string) *Parser {
	return &Parser{
		lex:    NewLexer(source),
		source: source,
	}
}

// Parse parses the source and returns the Script AST.
//
// On a statement-level error the parser records it and resynchronizes to
// the next statement boundary, so unrelated sibling statements still parse.
// The returned error wraps the first recorded error; the partial script is
// not guaranteed meaningful on failure. A lexical error aborts the parse.
func (p *Parser) Parse() (*Script, error) {
	script := &Script{Span: Span{Start: Position{Line: 1, Column: 1}}}

	for p.peek().Kind != TokenEOF {
		stmt, err := p.statement()
		if err != nil {
			if p.lexErr != nil {
				p.errors.Add(p.lexErr)
				return script, p.lexErr
			}
			p.errors.Add(err)
			p.synchronize()
			continue
		}
		script.Statements = append(script.Statements, stmt)
	}
	script.Span.End = p.peek().Span.End

	if p.lexErr != nil {
		p.errors.Add(p.lexErr)
		return script, p.lexErr
	}
	if p.errors.HasErrors() {
		return script, fmt.Errorf("parsing failed with %d error(s): %w", len(p.errors), p.errors[0])
	}
	return script, nil
}

// Errors returns all errors recorded during Parse, in source order.
func (p *Parser) Errors() SourceErrors {
	return p.errors
}

// Statements

func (p *Parser) statement() (Stmt, *SourceError) {
	switch p.peek().Kind {
	case TokenLeftBrace:
		return p.blockStmt()
	case TokenIf:
		return p.ifStmt()
	case TokenWhile:
		return p.whileStmt()
	case TokenDo:
		return p.doWhileStmt()
	case TokenFor:
		return p.forStmt()
	case TokenIdent:
		// One extra token decides between assignment and expression.
		if k := p.peekNext().Kind; k == TokenComma || k == TokenEqual {
			return p.assignStmt()
		}
		return p.exprStmt()
	default:
		return p.exprStmt()
	}
}

// blockStmt parses a braced block. A trailing ';' after the closing brace
// is permitted but not required.
func (p *Parser) blockStmt() (*BlockStmt, *SourceError) {
	open := p.advance()

	var stmts []Stmt
	for p.peek().Kind != TokenRightBrace && p.peek().Kind != TokenEOF {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	end, err := p.expect(TokenRightBrace)
	if err != nil {
		return nil, err
	}
	if p.peek().Kind == TokenSemicolon {
		end = p.advance()
	}

	return &BlockStmt{
		Statements: stmts,
		Span:       Span{Start: open.Span.Start, End: end.Span.End},
	}, nil
}

// ifStmt parses an if statement. A dangling else binds to the nearest
// preceding unmatched if, which the recursion yields without special care.
func (p *Parser) ifStmt() (*IfStmt, *SourceError) {
	start := p.advance()

	if _, err := p.expect(TokenLeftParen); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRightParen); err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	end := then.Pos().End
	var elseStmt Stmt
	if p.match(TokenElse) {
		elseStmt, err = p.statement()
		if err != nil {
			return nil, err
		}
		end = elseStmt.Pos().End
	}

	return &IfStmt{
		Cond: cond,
		Then: then,
		Else: elseStmt,
		Span: Span{Start: start.Span.Start, End: end},
	}, nil
}

// whileStmt parses a pre-test while loop.
func (p *Parser) whileStmt() (*WhileStmt, *SourceError) {
	start := p.advance()

	if _, err := p.expect(TokenLeftParen); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRightParen); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return &WhileStmt{
		Cond: cond,
		Body: body,
		Span: Span{Start: start.Span.Start, End: body.Pos().End},
	}, nil
}

// doWhileStmt parses a post-test do…while loop with an optional trailing
// ';'.
func (p *Parser) doWhileStmt() (*WhileStmt, *SourceError) {
	start := p.advance()

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenWhile); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenLeftParen); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(TokenRightParen)
	if err != nil {
		return nil, err
	}
	if p.peek().Kind == TokenSemicolon {
		end = p.advance()
	}

	return &WhileStmt{
		Cond:          cond,
		Body:          body,
		PostCondition: true,
		Span:          Span{Start: start.Span.Start, End: end.Span.End},
	}, nil
}

// forStmt parses a range loop: for (v in from : to (: step)?) body. The
// step is optional; its default meaning is not decided here.
func (p *Parser) forStmt() (*ForStmt, *SourceError) {
	start := p.advance()

	if _, err := p.expect(TokenLeftParen); err != nil {
		return nil, err
	}
	name, err := p.expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenIn); err != nil {
		return nil, err
	}
	from, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenColon); err != nil {
		return nil, err
	}
	to, err := p.expression()
	if err != nil {
		return nil, err
	}
	var step Expr
	if p.match(TokenColon) {
		step, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(TokenRightParen); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return &ForStmt{
		Var:  &Ident{Name: name.Lexeme, Span: name.Span},
		From: from,
		To:   to,
		Step: step,
		Body: body,
		Span: Span{Start: start.Span.Start, End: body.Pos().End},
	}, nil
}

// assignStmt parses one or more comma-separated identifier targets, '=',
// an expression and ';'.
func (p *Parser) assignStmt() (*AssignStmt, *SourceError) {
	first := p.advance()
	targets := []*Ident{{Name: first.Lexeme, Span: first.Span}}

	for p.match(TokenComma) {
		name, err := p.expect(TokenIdent)
		if err != nil {
			return nil, err
		}
		targets = append(targets, &Ident{Name: name.Lexeme, Span: name.Span})
	}

	if _, err := p.expect(TokenEqual); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(TokenSemicolon)
	if err != nil {
		return nil, err
	}

	return &AssignStmt{
		Targets: targets,
		Value:   value,
		Span:    Span{Start: first.Span.Start, End: end.Span.End},
	}, nil
}

func (p *Parser) exprStmt() (*ExprStmt, *SourceError) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(TokenSemicolon)
	if err != nil {
		return nil, err
	}
	return &ExprStmt{
		Expr: expr,
		Span: Span{Start: expr.Pos().Start, End: end.Span.End},
	}, nil
}

// Expressions

func (p *Parser) expression() (Expr, *SourceError) {
	return p.binary(precComparison)
}

// binary is the precedence-climbing loop over the grammar tables. Every
// operator level is left-associative, so the right operand always climbs
// one level tighter.
func (p *Parser) binary(minPrec int) (Expr, *SourceError) {
	left, err := p.postfix()
	if err != nil {
		return nil, err
	}

	for {
		prec := binaryPrecedence(p.peek().Kind)
		if prec < minPrec || prec == 0 {
			return left, nil
		}
		op := p.advance()
		right, err := p.binary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Op:    binaryOperator(op.Kind),
			Left:  left,
			Right: right,
			Span:  Span{Start: left.Pos().Start, End: right.Pos().End},
		}
	}
}

// postfix parses indexing and call suffixes, chaining left-to-right so they
// bind tighter than any binary operator.
func (p *Parser) postfix() (Expr, *SourceError) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.peek().Kind {
		case TokenLeftBracket2:
			expr, err = p.indexSuffix(expr, true)
		case TokenLeftBracket:
			expr, err = p.indexSuffix(expr, false)
		case TokenLeftParen:
			ident, ok := expr.(*Ident)
			if !ok {
				// Only a bare identifier can be called.
				return expr, nil
			}
			expr, err = p.callSuffix(ident)
		default:
			return expr, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// indexSuffix parses obj[[rows, cols]] (filter) or obj[rows, cols]
// (extract). The comma is mandatory; either side may be left empty.
func (p *Parser) indexSuffix(obj Expr, filter bool) (Expr, *SourceError) {
	p.advance()
	closing := TokenRightBracket
	if filter {
		closing = TokenRightBracket2
	}

	var rows, cols Expr
	var err *SourceError
	if p.peek().Kind != TokenComma {
		rows, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(TokenComma); err != nil {
		return nil, err
	}
	if p.peek().Kind != closing {
		cols, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	end, serr := p.expect(closing)
	if serr != nil {
		return nil, serr
	}

	span := Span{Start: obj.Pos().Start, End: end.Span.End}
	if filter {
		return &FilterExpr{Obj: obj, Rows: rows, Cols: cols, Span: span}, nil
	}
	return &ExtractExpr{Obj: obj, Rows: rows, Cols: cols, Span: span}, nil
}

// callSuffix parses a call argument list. The grammar requires at least one
// argument; a zero-argument call is a syntax error.
func (p *Parser) callSuffix(callee *Ident) (Expr, *SourceError) {
	p.advance()

	if p.peek().Kind == TokenRightParen {
		tok := p.peek()
		return nil, NewSyntaxError(
			fmt.Sprintf("expected argument expression, found %s", describe(tok)),
			tok.Span, p.source)
	}

	var args []Expr
	for {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.match(TokenComma) {
			break
		}
	}

	end, err := p.expect(TokenRightParen)
	if err != nil {
		return nil, err
	}

	return &CallExpr{
		Name: callee.Name,
		Args: args,
		Span: Span{Start: callee.Span.Start, End: end.Span.End},
	}, nil
}

// castExpr parses 'as' with an optional '.matrix' data type, an optional
// '.' value type (data type first), and a mandatory parenthesized operand.
// A bare "as(x)" with neither tag is legal.
func (p *Parser) castExpr() (Expr, *SourceError) {
	start := p.advance()

	dataType := DataTypeNone
	valueType := ValueTypeNone
	if p.match(TokenDot) {
		tok := p.peek()
		switch {
		case tok.Kind == TokenMatrix:
			p.advance()
			dataType = DataTypeMatrix
			if p.match(TokenDot) {
				vtok := p.peek()
				valueType = valueTypeFor(vtok.Kind)
				if valueType == ValueTypeNone {
					return nil, NewSyntaxError(
						fmt.Sprintf("expected value type after '.', found %s", describe(vtok)),
						vtok.Span, p.source)
				}
				p.advance()
			}
		case valueTypeFor(tok.Kind) != ValueTypeNone:
			p.advance()
			valueType = valueTypeFor(tok.Kind)
		default:
			return nil, NewSyntaxError(
				fmt.Sprintf("expected 'matrix' or a value type after '.', found %s", describe(tok)),
				tok.Span, p.source)
		}
	}

	if _, err := p.expect(TokenLeftParen); err != nil {
		return nil, err
	}
	inner, err := p.expression()
	if err != nil {
		return nil, err
	}
	end, serr := p.expect(TokenRightParen)
	if serr != nil {
		return nil, serr
	}

	return &CastExpr{
		DataType:  dataType,
		ValueType: valueType,
		Inner:     inner,
		Span:      Span{Start: start.Span.Start, End: end.Span.End},
	}, nil
}

func (p *Parser) primary() (Expr, *SourceError) {
	tok := p.peek()

	switch tok.Kind {
	case TokenIntLiteral:
		p.advance()
		v, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, NewLexError(
				fmt.Sprintf("integer literal %s out of range", tok.Lexeme),
				tok.Span, p.source)
		}
		return &IntLit{Value: v, Span: tok.Span}, nil

	case TokenFloatLiteral:
		p.advance()
		return floatLit(tok), nil

	case TokenTrue, TokenFalse:
		p.advance()
		return &BoolLit{Value: tok.Kind == TokenTrue, Span: tok.Span}, nil

	case TokenStringLiteral:
		p.advance()
		return &StringLit{Value: decodeString(tok.Lexeme), Span: tok.Span}, nil

	case TokenIdent:
		p.advance()
		return &Ident{Name: tok.Lexeme, Span: tok.Span}, nil

	case TokenAs:
		return p.castExpr()

	case TokenLeftParen:
		open := p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		end, serr := p.expect(TokenRightParen)
		if serr != nil {
			return nil, serr
		}
		return &ParenExpr{
			Inner: inner,
			Span:  Span{Start: open.Span.Start, End: end.Span.End},
		}, nil

	default:
		return nil, NewSyntaxError(
			fmt.Sprintf("expected expression, found %s", describe(tok)),
			tok.Span, p.source)
	}
}

func floatLit(tok Token) *FloatLit {
	switch tok.Lexeme {
	case "nan":
		return &FloatLit{Value: math.NaN(), Special: FloatNaN, Span: tok.Span}
	case "inf":
		return &FloatLit{Value: math.Inf(1), Special: FloatInf, Span: tok.Span}
	case "-inf":
		return &FloatLit{Value: math.Inf(-1), Special: FloatNegInf, Span: tok.Span}
	}
	v, _ := strconv.ParseFloat(tok.Lexeme, 64)
	return &FloatLit{Value: v, Special: FloatNormal, Span: tok.Span}
}

// Cursor helpers

// ensure buffers at least n tokens of lookahead. A lexical error is sticky:
// the cursor substitutes end-of-input tokens so the parser unwinds, and
// Parse reports the lexical error instead of the induced syntax error.
func (p *Parser) ensure(n int) {
	for p.n < n {
		if p.lexErr != nil {
			p.buf[p.n] = Token{Kind: TokenEOF, Span: p.lexErr.Span}
			p.n++
			continue
		}
		tok, err := p.lex.Next()
		if err != nil {
			p.lexErr = err.(*SourceError)
			continue
		}
		p.buf[p.n] = tok
		p.n++
	}
}

func (p *Parser) peek() Token {
	p.ensure(1)
	return p.buf[0]
}

func (p *Parser) peekNext() Token {
	p.ensure(2)
	return p.buf[1]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if tok.Kind != TokenEOF {
		p.prev = tok
		p.buf[0] = p.buf[1]
		p.n--
	}
	return tok
}

func (p *Parser) match(kind TokenKind) bool {
	if p.peek().Kind == kind {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(kind TokenKind) (Token, *SourceError) {
	if p.peek().Kind == kind {
		return p.advance(), nil
	}
	tok := p.peek()
	return Token{}, NewSyntaxError(
		fmt.Sprintf("expected %s, found %s", expectedName(kind), describe(tok)),
		tok.Span, p.source)
}

// expectedName renders a token kind for an expected-vs-found message.
// Punctuation and keywords are quoted; descriptive names are not.
func expectedName(k TokenKind) string {
	switch k {
	case TokenEOF, TokenIdent, TokenIntLiteral, TokenFloatLiteral, TokenStringLiteral:
		return k.String()
	}
	return fmt.Sprintf("'%s'", k)
}

// synchronize skips to the next statement boundary after an error.
func (p *Parser) synchronize() {
	p.advance()
	for p.peek().Kind != TokenEOF {
		if p.prev.Kind == TokenSemicolon {
			return
		}
		switch p.peek().Kind {
		case TokenIf, TokenWhile, TokenDo, TokenFor, TokenLeftBrace:
			return
		}
		p.advance()
	}
}

// describe renders a token for an expected-vs-found message.
func describe(tok Token) string {
	switch tok.Kind {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return fmt.Sprintf("identifier %q", tok.Lexeme)
	case TokenIntLiteral, TokenFloatLiteral, TokenStringLiteral:
		return fmt.Sprintf("%s %s", tok.Kind, tok.Lexeme)
	default:
		return fmt.Sprintf("'%s'", tok.Kind)
	}
}
