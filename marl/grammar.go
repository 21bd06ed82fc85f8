package marl

// Operator identifies a binary operator.
type Operator uint8

const (
	OpMatMul Operator = iota // @
	OpPow                    // ^
	OpMul                    // *
	OpDiv                    // /
	OpAdd                    // +
	OpSub                    // -
	OpEq                     // ==
	OpNe                     // !=
	OpLt                     // <
	OpLe                     // <=
	OpGt                     // >
	OpGe                     // >=
)

// String returns the operator's source spelling.
func (op Operator) String() string {
	switch op {
	case OpMatMul:
		return "@"
	case OpPow:
		return "^"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	}
	return "unknown"
}

// Binding strengths, tightest first. Every level is left-associative,
// including exponentiation and the single comparison level: "2^3^2" is
// (2^3)^2 and "a<b<c" is (a<b)<c. The grammar is uniform here and the
// parser keeps it that way.
const (
	precComparison = 1
	precAdditive   = 2
	precMultiply   = 3
	precPow        = 4
	precMatMul     = 5
)

// binaryPrecedence returns the binding strength of the token as a binary
// operator, or 0 if the token is not one.
func binaryPrecedence(k TokenKind) int {
	switch k {
	case TokenAt:
		return precMatMul
	case TokenCaret:
		return precPow
	case TokenStar, TokenSlash:
		return precMultiply
	case TokenPlus, TokenMinus:
		return precAdditive
	case TokenEqualEqual, TokenBangEqual, TokenLess, TokenLessEqual,
		TokenGreater, TokenGreaterEqual:
		return precComparison
	}
	return 0
}

// binaryOperator maps an operator token to its Operator tag. Only valid for
// tokens with a non-zero binaryPrecedence.
func binaryOperator(k TokenKind) Operator {
	switch k {
	case TokenAt:
		return OpMatMul
	case TokenCaret:
		return OpPow
	case TokenStar:
		return OpMul
	case TokenSlash:
		return OpDiv
	case TokenPlus:
		return OpAdd
	case TokenMinus:
		return OpSub
	case TokenEqualEqual:
		return OpEq
	case TokenBangEqual:
		return OpNe
	case TokenLess:
		return OpLt
	case TokenLessEqual:
		return OpLe
	case TokenGreater:
		return OpGt
	}
	return OpGe
}

// DataType is the container-kind tag consumed by cast expressions. The
// front end records it without interpreting it.
type DataType uint8

const (
	DataTypeNone DataType = iota
	DataTypeMatrix
)

// String returns the string representation of the data type.
func (d DataType) String() string {
	if d == DataTypeMatrix {
		return "matrix"
	}
	return "none"
}

// ValueType is the element-representation tag consumed by cast expressions.
type ValueType uint8

const (
	ValueTypeNone ValueType = iota
	ValueTypeF64
	ValueTypeF32
	ValueTypeSI64
	ValueTypeSI32
	ValueTypeSI8
	ValueTypeUI64
	ValueTypeUI32
	ValueTypeUI8
)

// String returns the string representation of the value type.
func (v ValueType) String() string {
	switch v {
	case ValueTypeF64:
		return "f64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeSI64:
		return "si64"
	case ValueTypeSI32:
		return "si32"
	case ValueTypeSI8:
		return "si8"
	case ValueTypeUI64:
		return "ui64"
	case ValueTypeUI32:
		return "ui32"
	case ValueTypeUI8:
		return "ui8"
	}
	return "none"
}

// valueTypeFor maps a value-type keyword token to its tag, or ValueTypeNone
// if the token is not a value-type keyword.
func valueTypeFor(k TokenKind) ValueType {
	switch k {
	case TokenF64:
		return ValueTypeF64
	case TokenF32:
		return ValueTypeF32
	case TokenSI64:
		return ValueTypeSI64
	case TokenSI32:
		return ValueTypeSI32
	case TokenSI8:
		return ValueTypeSI8
	case TokenUI64:
		return ValueTypeUI64
	case TokenUI32:
		return ValueTypeUI32
	case TokenUI8:
		return ValueTypeUI8
	}
	return ValueTypeNone
}
