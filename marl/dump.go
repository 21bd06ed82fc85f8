package marl

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders the script as an indented tree, one node per line. The
// output is stable and meant for tooling and tests, not for reparsing.
func Dump(script *Script) string {
	var sb strings.Builder
	sb.WriteString("script\n")
	for _, stmt := range script.Statements {
		dumpStmt(&sb, stmt, 1, "")
	}
	return sb.String()
}

func indent(sb *strings.Builder, depth int, label string) {
	sb.WriteString(strings.Repeat("  ", depth))
	if label != "" {
		sb.WriteString(label)
		sb.WriteString(": ")
	}
}

func dumpStmt(sb *strings.Builder, stmt Stmt, depth int, label string) {
	indent(sb, depth, label)
	switch s := stmt.(type) {
	case *BlockStmt:
		sb.WriteString("block\n")
		for _, inner := range s.Statements {
			dumpStmt(sb, inner, depth+1, "")
		}
	case *ExprStmt:
		sb.WriteString("expr-stmt\n")
		dumpExpr(sb, s.Expr, depth+1, "")
	case *AssignStmt:
		names := make([]string, len(s.Targets))
		for i, t := range s.Targets {
			names[i] = t.Name
		}
		fmt.Fprintf(sb, "assign %s\n", strings.Join(names, ", "))
		dumpExpr(sb, s.Value, depth+1, "")
	case *IfStmt:
		sb.WriteString("if\n")
		dumpExpr(sb, s.Cond, depth+1, "cond")
		dumpStmt(sb, s.Then, depth+1, "then")
		if s.Else != nil {
			dumpStmt(sb, s.Else, depth+1, "else")
		}
	case *WhileStmt:
		if s.PostCondition {
			sb.WriteString("do-while\n")
		} else {
			sb.WriteString("while\n")
		}
		dumpExpr(sb, s.Cond, depth+1, "cond")
		dumpStmt(sb, s.Body, depth+1, "body")
	case *ForStmt:
		fmt.Fprintf(sb, "for %s\n", s.Var.Name)
		dumpExpr(sb, s.From, depth+1, "from")
		dumpExpr(sb, s.To, depth+1, "to")
		if s.Step != nil {
			dumpExpr(sb, s.Step, depth+1, "step")
		}
		dumpStmt(sb, s.Body, depth+1, "body")
	default:
		fmt.Fprintf(sb, "unknown statement %T\n", stmt)
	}
}

func dumpExpr(sb *strings.Builder, expr Expr, depth int, label string) {
	indent(sb, depth, label)
	switch e := expr.(type) {
	case *IntLit:
		fmt.Fprintf(sb, "int %d\n", e.Value)
	case *FloatLit:
		if e.Special != FloatNormal {
			fmt.Fprintf(sb, "float %s\n", e.Special)
		} else {
			fmt.Fprintf(sb, "float %s\n", strconv.FormatFloat(e.Value, 'g', -1, 64))
		}
	case *BoolLit:
		fmt.Fprintf(sb, "bool %t\n", e.Value)
	case *StringLit:
		fmt.Fprintf(sb, "string %q\n", e.Value)
	case *Ident:
		fmt.Fprintf(sb, "ident %s\n", e.Name)
	case *ParenExpr:
		sb.WriteString("paren\n")
		dumpExpr(sb, e.Inner, depth+1, "")
	case *CallExpr:
		fmt.Fprintf(sb, "call %s\n", e.Name)
		for _, arg := range e.Args {
			dumpExpr(sb, arg, depth+1, "")
		}
	case *CastExpr:
		sb.WriteString("cast")
		if e.DataType != DataTypeNone {
			fmt.Fprintf(sb, " %s", e.DataType)
		}
		if e.ValueType != ValueTypeNone {
			fmt.Fprintf(sb, " %s", e.ValueType)
		}
		sb.WriteString("\n")
		dumpExpr(sb, e.Inner, depth+1, "")
	case *FilterExpr:
		sb.WriteString("filter\n")
		dumpExpr(sb, e.Obj, depth+1, "")
		dumpIndex(sb, e.Rows, depth+1, "rows")
		dumpIndex(sb, e.Cols, depth+1, "cols")
	case *ExtractExpr:
		sb.WriteString("extract\n")
		dumpExpr(sb, e.Obj, depth+1, "")
		dumpIndex(sb, e.Rows, depth+1, "rows")
		dumpIndex(sb, e.Cols, depth+1, "cols")
	case *BinaryExpr:
		fmt.Fprintf(sb, "binary %s\n", e.Op)
		dumpExpr(sb, e.Left, depth+1, "")
		dumpExpr(sb, e.Right, depth+1, "")
	default:
		fmt.Fprintf(sb, "unknown expression %T\n", expr)
	}
}

func dumpIndex(sb *strings.Builder, expr Expr, depth int, label string) {
	if expr == nil {
		indent(sb, depth, label)
		sb.WriteString("all\n")
		return
	}
	dumpExpr(sb, expr, depth, label)
}
