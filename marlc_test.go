package marlc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marl-lang/marlc/marl"
)

// TestParseLinearModel parses a realistic training script end to end.
func TestParseLinearModel(t *testing.T) {
	source := `
# ordinary least squares via normal equations
X = read("data/features.bin", 1000, 20);
y = read("data/labels.bin", 1000, 1);

ones = fill(1.0, nrow(X), 1);
Xb = cbind(ones, X);

XtX = t(Xb) @ Xb;
Xty = t(Xb) @ y;
w = solve(XtX, Xty);

r = Xb @ w - y;
mse = sum(r * r) / nrow(Xb);
print("mse", mse);
`
	script, err := Parse(source)
	require.NoError(t, err)
	assert.Len(t, script.Statements, 10)

	// Every top-level statement in this script is an assignment or a call.
	for _, stmt := range script.Statements {
		switch stmt.(type) {
		case *marl.AssignStmt, *marl.ExprStmt:
		default:
			t.Errorf("unexpected statement type %T", stmt)
		}
	}
}

// TestParseControlFlow parses loops and conditionals through the facade.
func TestParseControlFlow(t *testing.T) {
	source := `
s = 0;
for (i in 1:10:2) {
    s = s + i;
}
while (s > 0) {
    s = s - 1;
}
do {
    s = s + 1;
} while (s < 5);
if (s == 5) { print("ok", s); } else { print("bad", s); }
`
	script, err := Parse(source)
	require.NoError(t, err)
	require.Len(t, script.Statements, 5)

	forStmt, ok := script.Statements[1].(*marl.ForStmt)
	require.True(t, ok, "expected ForStmt, got %T", script.Statements[1])
	assert.Equal(t, "i", forStmt.Var.Name)
	assert.NotNil(t, forStmt.Step)

	doStmt, ok := script.Statements[3].(*marl.WhileStmt)
	require.True(t, ok, "expected WhileStmt, got %T", script.Statements[3])
	assert.True(t, doStmt.PostCondition)
}

// TestParseSyntaxError reports a positioned syntactic error.
func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("x = (1 + ;\n")
	require.Error(t, err)

	var se *marl.SourceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, marl.PhaseSyntactic, se.Phase)
	assert.Equal(t, 1, se.Span.Start.Line)
}

// TestParseLexicalError reports a positioned lexical error.
func TestParseLexicalError(t *testing.T) {
	_, err := Parse(`msg = "never closed;`)
	require.Error(t, err)

	var se *marl.SourceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, marl.PhaseLexical, se.Phase)
}

// TestTokenize exposes the raw token stream.
func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("x = y @ z;")
	require.NoError(t, err)

	kinds := make([]marl.TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	want := []marl.TokenKind{
		marl.TokenIdent, marl.TokenEqual, marl.TokenIdent,
		marl.TokenAt, marl.TokenIdent, marl.TokenSemicolon, marl.TokenEOF,
	}
	assert.Equal(t, want, kinds)
}

// TestParseDeterministic parses the same source twice and compares the
// rendered trees.
func TestParseDeterministic(t *testing.T) {
	source := `
A = rand(50, 50, 0.0, 1.0);
B = as.matrix.f32(A[[mask, ]]);
c, d = svd(B);
`
	first, err := Parse(source)
	require.NoError(t, err)
	second, err := Parse(source)
	require.NoError(t, err)

	if diff := cmp.Diff(marl.Dump(first), marl.Dump(second)); diff != "" {
		t.Errorf("tree mismatch (-first +second):\n%s", diff)
	}
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, Version)
}
