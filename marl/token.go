package marl

// TokenKind represents the type of token.
type TokenKind uint8

const (
	TokenEOF TokenKind = iota

	// Literals
	TokenIdent
	TokenIntLiteral
	TokenFloatLiteral
	TokenStringLiteral

	// Operators
	TokenPlus         // +
	TokenMinus        // -
	TokenStar         // *
	TokenSlash        // /
	TokenCaret        // ^
	TokenAt           // @
	TokenEqual        // =
	TokenEqualEqual   // ==
	TokenBangEqual    // !=
	TokenLess         // <
	TokenLessEqual    // <=
	TokenGreater      // >
	TokenGreaterEqual // >=
	TokenDot          // .
	TokenComma        // ,
	TokenColon        // :
	TokenSemicolon    // ;

	// Delimiters
	TokenLeftParen     // (
	TokenRightParen    // )
	TokenLeftBrace     // {
	TokenRightBrace    // }
	TokenLeftBracket   // [
	TokenRightBracket  // ]
	TokenLeftBracket2  // [[
	TokenRightBracket2 // ]]

	// Keywords
	TokenIf
	TokenElse
	TokenWhile
	TokenDo
	TokenFor
	TokenIn
	TokenTrue
	TokenFalse
	TokenAs

	// Type keywords
	TokenMatrix
	TokenF64
	TokenF32
	TokenSI64
	TokenSI32
	TokenSI8
	TokenUI64
	TokenUI32
	TokenUI8
)

var tokenNames = map[TokenKind]string{
	TokenEOF:           "end of input",
	TokenIdent:         "identifier",
	TokenIntLiteral:    "integer literal",
	TokenFloatLiteral:  "float literal",
	TokenStringLiteral: "string literal",
	TokenPlus:          "+",
	TokenMinus:         "-",
	TokenStar:          "*",
	TokenSlash:         "/",
	TokenCaret:         "^",
	TokenAt:            "@",
	TokenEqual:         "=",
	TokenEqualEqual:    "==",
	TokenBangEqual:     "!=",
	TokenLess:          "<",
	TokenLessEqual:     "<=",
	TokenGreater:       ">",
	TokenGreaterEqual:  ">=",
	TokenDot:           ".",
	TokenComma:         ",",
	TokenColon:         ":",
	TokenSemicolon:     ";",
	TokenLeftParen:     "(",
	TokenRightParen:    ")",
	TokenLeftBrace:     "{",
	TokenRightBrace:    "}",
	TokenLeftBracket:   "[",
	TokenRightBracket:  "]",
	TokenLeftBracket2:  "[[",
	TokenRightBracket2: "]]",
	TokenIf:            "if",
	TokenElse:          "else",
	TokenWhile:         "while",
	TokenDo:            "do",
	TokenFor:           "for",
	TokenIn:            "in",
	TokenTrue:          "true",
	TokenFalse:         "false",
	TokenAs:            "as",
	TokenMatrix:        "matrix",
	TokenF64:           "f64",
	TokenF32:           "f32",
	TokenSI64:          "si64",
	TokenSI32:          "si32",
	TokenSI8:           "si8",
	TokenUI64:          "ui64",
	TokenUI32:          "ui32",
	TokenUI8:           "ui8",
}

// String returns the string representation of the token kind.
func (k TokenKind) String() string {
	if s, ok := tokenNames[k]; ok {
		return s
	}
	return "unknown"
}

// Reserved words, tried in priority order before the general identifier
// pattern: keywords first, then type keywords. A word that appears here can
// never lex as an identifier.
var keywords = map[string]TokenKind{
	"if":    TokenIf,
	"else":  TokenElse,
	"while": TokenWhile,
	"do":    TokenDo,
	"for":   TokenFor,
	"in":    TokenIn,
	"true":  TokenTrue,
	"false": TokenFalse,
	"as":    TokenAs,
}

var typeKeywords = map[string]TokenKind{
	"matrix": TokenMatrix,
	"f64":    TokenF64,
	"f32":    TokenF32,
	"si64":   TokenSI64,
	"si32":   TokenSI32,
	"si8":    TokenSI8,
	"ui64":   TokenUI64,
	"ui32":   TokenUI32,
	"ui8":    TokenUI8,
}

// IsKeyword reports whether the kind is a reserved keyword (including the
// type keywords).
func (k TokenKind) IsKeyword() bool {
	return k >= TokenIf && k <= TokenUI8
}

// Token represents a lexical token.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Span   Span
}

// Position represents a position in source code. Line and Column are
// 1-based, Offset is the 0-based byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Span represents a source code location span.
type Span struct {
	Start Position
	End   Position
}
