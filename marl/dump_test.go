package marl

import "testing"

func dumpSource(t *testing.T, source string) string {
	t.Helper()
	script, err := NewParser(source).Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return Dump(script)
}

func TestDumpAssign(t *testing.T) {
	got := dumpSource(t, "x = 1 + 2;")
	want := `script
  assign x
    binary +
      int 1
      int 2
`
	if got != want {
		t.Errorf("Dump mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestDumpControlFlow(t *testing.T) {
	got := dumpSource(t, "if (a < b) { x = 1; } else y = 2;")
	want := `script
  if
    cond: binary <
      ident a
      ident b
    then: block
      assign x
        int 1
    else: assign y
      int 2
`
	if got != want {
		t.Errorf("Dump mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestDumpIndexAndCast(t *testing.T) {
	got := dumpSource(t, "Y = as.matrix.f64(X[[I,]]);")
	want := `script
  assign Y
    cast matrix f64
      filter
        ident X
        rows: ident I
        cols: all
`
	if got != want {
		t.Errorf("Dump mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestDumpLiterals(t *testing.T) {
	got := dumpSource(t, `print("p", 0.5, nan, true);`)
	want := `script
  expr-stmt
    call print
      string "p"
      float 0.5
      float nan
      bool true
`
	if got != want {
		t.Errorf("Dump mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestDumpFor(t *testing.T) {
	got := dumpSource(t, "for (i in 1:n) s = s + i;")
	want := `script
  for i
    from: int 1
    to: ident n
    body: assign s
      binary +
        ident s
        ident i
`
	if got != want {
		t.Errorf("Dump mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}
