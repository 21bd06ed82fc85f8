package marl

// Script represents a parsed MARL script: an ordered sequence of top-level
// statements. It is built bottom-up during parsing and immutable once
// returned; the front end keeps no reference to it.
type Script struct {
	Statements []Stmt
	Span       Span
}

// Node is the base interface for all AST nodes.
type Node interface {
	Pos() Span
}

// Stmt is the interface for statements.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is the interface for expressions.
type Expr interface {
	Node
	exprNode()
}

// Statements

// BlockStmt represents a braced block of statements.
type BlockStmt struct {
	Statements []Stmt
	Span       Span
}

func (b *BlockStmt) Pos() Span { return b.Span }
func (b *BlockStmt) stmtNode() {}

// ExprStmt represents an expression statement.
type ExprStmt struct {
	Expr Expr
	Span Span
}

func (e *ExprStmt) Pos() Span { return e.Span }
func (e *ExprStmt) stmtNode() {}

// AssignStmt represents an assignment. Targets has at least one entry;
// several targets denote a multi-target destructuring assignment from the
// one right-hand expression. The parser records the shape only, not its
// semantic legality.
type AssignStmt struct {
	Targets []*Ident
	Value   Expr
	Span    Span
}

func (a *AssignStmt) Pos() Span { return a.Span }
func (a *AssignStmt) stmtNode() {}

// IfStmt represents an if statement. Else is nil when absent; a dangling
// else binds to the nearest preceding unmatched if.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
	Span Span
}

func (i *IfStmt) Pos() Span { return i.Span }
func (i *IfStmt) stmtNode() {}

// WhileStmt represents both loop forms: PostCondition is false for a
// pre-test "while" loop and true for a post-test "do…while" loop.
type WhileStmt struct {
	Cond          Expr
	Body          Stmt
	PostCondition bool
	Span          Span
}

func (w *WhileStmt) Pos() Span { return w.Span }
func (w *WhileStmt) stmtNode() {}

// ForStmt represents a range loop: for (v in from : to (: step)?) body.
// Step is nil when absent; its default meaning is resolved downstream.
type ForStmt struct {
	Var  *Ident
	From Expr
	To   Expr
	Step Expr
	Body Stmt
	Span Span
}

func (f *ForStmt) Pos() Span { return f.Span }
func (f *ForStmt) stmtNode() {}

// Expressions

// Ident represents an identifier.
type Ident struct {
	Name string
	Span Span
}

func (i *Ident) Pos() Span { return i.Span }
func (i *Ident) exprNode() {}

// IntLit represents an integer literal.
type IntLit struct {
	Value int64
	Span  Span
}

func (l *IntLit) Pos() Span { return l.Span }
func (l *IntLit) exprNode() {}

// FloatSpecial classifies a float literal's spelling.
type FloatSpecial uint8

const (
	FloatNormal FloatSpecial = iota
	FloatNaN
	FloatInf
	FloatNegInf
)

// String returns the string representation of the float class.
func (s FloatSpecial) String() string {
	switch s {
	case FloatNaN:
		return "nan"
	case FloatInf:
		return "inf"
	case FloatNegInf:
		return "-inf"
	}
	return "normal"
}

// FloatLit represents a float literal, including the spellings nan, inf
// and -inf.
type FloatLit struct {
	Value   float64
	Special FloatSpecial
	Span    Span
}

func (l *FloatLit) Pos() Span { return l.Span }
func (l *FloatLit) exprNode() {}

// BoolLit represents a boolean literal.
type BoolLit struct {
	Value bool
	Span  Span
}

func (l *BoolLit) Pos() Span { return l.Span }
func (l *BoolLit) exprNode() {}

// StringLit represents a string literal. Value holds the decoded text.
type StringLit struct {
	Value string
	Span  Span
}

func (l *StringLit) Pos() Span { return l.Span }
func (l *StringLit) exprNode() {}

// ParenExpr represents a parenthesized expression. The parentheses are
// retained so the tree mirrors the source.
type ParenExpr struct {
	Inner Expr
	Span  Span
}

func (p *ParenExpr) Pos() Span { return p.Span }
func (p *ParenExpr) exprNode() {}

// CallExpr represents a function call. The grammar requires the callee to
// be a bare identifier and the argument list to be non-empty; resolving the
// call target happens downstream.
type CallExpr struct {
	Name string
	Args []Expr
	Span Span
}

func (c *CallExpr) Pos() Span { return c.Span }
func (c *CallExpr) exprNode() {}

// CastExpr represents a cast: as(x), as.matrix(x), as.f64(x) or
// as.matrix.f64(x). DataType and ValueType are independently optional; a
// bare cast with both absent is legal.
type CastExpr struct {
	DataType  DataType
	ValueType ValueType
	Inner     Expr
	Span      Span
}

func (c *CastExpr) Pos() Span { return c.Span }
func (c *CastExpr) exprNode() {}

// FilterExpr represents double-bracket indexing: obj[[rows, cols]]. A nil
// Rows or Cols means the side was left empty, to be read downstream as
// "all".
type FilterExpr struct {
	Obj  Expr
	Rows Expr
	Cols Expr
	Span Span
}

func (f *FilterExpr) Pos() Span { return f.Span }
func (f *FilterExpr) exprNode() {}

// ExtractExpr represents single-bracket indexing: obj[rows, cols]. It is a
// distinct node from FilterExpr; the two bracket forms carry different
// meaning downstream and are never conflated.
type ExtractExpr struct {
	Obj  Expr
	Rows Expr
	Cols Expr
	Span Span
}

func (e *ExtractExpr) Pos() Span { return e.Span }
func (e *ExtractExpr) exprNode() {}

// BinaryExpr represents a binary expression.
type BinaryExpr struct {
	Op    Operator
	Left  Expr
	Right Expr
	Span  Span
}

func (b *BinaryExpr) Pos() Span { return b.Span }
func (b *BinaryExpr) exprNode() {}
