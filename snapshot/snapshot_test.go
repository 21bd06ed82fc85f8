// Package snapshot_test provides golden snapshot tests for the MARL front
// end.
//
// For each input script in testdata/in/, the test parses the source and
// compares the rendered AST with a golden file in testdata/golden/.
//
// To regenerate golden files after intentional changes:
//
//	UPDATE_GOLDEN=1 go test ./snapshot/...
package snapshot_test

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/marl-lang/marlc/marl"
)

// ---------------------------------------------------------------------------
// Test Runner
// ---------------------------------------------------------------------------

// scriptFile represents an input MARL script loaded from disk.
type scriptFile struct {
	name   string // base name without extension (e.g., "control_flow")
	source string // MARL source code
}

// TestSnapshots is the main golden snapshot test. It loads all MARL inputs,
// parses each one, and compares the dumped tree with its golden file.
func TestSnapshots(t *testing.T) {
	scripts := loadInputScripts(t, "testdata/in")
	if len(scripts) == 0 {
		t.Fatal("no input scripts found in testdata/in/")
	}

	for i := range scripts {
		script := &scripts[i]
		t.Run(script.name, func(t *testing.T) {
			parsed, err := marl.NewParser(script.source).Parse()
			if err != nil {
				t.Fatalf("[%s] parse failed: %v", script.name, err)
			}
			dump := marl.Dump(parsed)
			compareGolden(t, filepath.Join("testdata", "golden", script.name+".ast"), dump)
		})
	}
}

// TestSnapshotTokens checks that every input also survives a standalone
// lexing pass. A script that parses must also tokenize.
func TestSnapshotTokens(t *testing.T) {
	scripts := loadInputScripts(t, "testdata/in")

	for i := range scripts {
		script := &scripts[i]
		t.Run(script.name, func(t *testing.T) {
			tokens, err := marl.NewLexer(script.source).Tokenize()
			if err != nil {
				t.Fatalf("[%s] tokenize failed: %v", script.name, err)
			}
			if len(tokens) == 0 || tokens[len(tokens)-1].Kind != marl.TokenEOF {
				t.Fatalf("[%s] token stream not EOF-terminated", script.name)
			}
		})
	}
}

// TestExamplesParse parses every shipped example script. Examples have no
// golden trees; they only have to parse cleanly.
func TestExamplesParse(t *testing.T) {
	scripts := loadInputScripts(t, filepath.Join("..", "examples"))
	if len(scripts) == 0 {
		t.Fatal("no example scripts found in ../examples/")
	}

	for i := range scripts {
		script := &scripts[i]
		t.Run(script.name, func(t *testing.T) {
			parsed, err := marl.NewParser(script.source).Parse()
			if err != nil {
				t.Fatalf("[%s] parse failed: %v", script.name, err)
			}
			if len(parsed.Statements) == 0 {
				t.Fatalf("[%s] empty script", script.name)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Script Loading
// ---------------------------------------------------------------------------

// loadInputScripts reads all .marl files from the given directory.
func loadInputScripts(t *testing.T, dir string) []scriptFile {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read input directory %q: %v", dir, err)
	}

	var scripts []scriptFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".marl") {
			continue
		}
		data, readErr := os.ReadFile(filepath.Join(dir, entry.Name()))
		if readErr != nil {
			t.Fatalf("read script %q: %v", entry.Name(), readErr)
		}
		name := strings.TrimSuffix(entry.Name(), ".marl")
		scripts = append(scripts, scriptFile{name: name, source: string(data)})
	}

	// Sort for deterministic test order
	sort.Slice(scripts, func(i, j int) bool {
		return scripts[i].name < scripts[j].name
	})

	return scripts
}

// ---------------------------------------------------------------------------
// Golden File Comparison
// ---------------------------------------------------------------------------

// compareGolden compares actual output with the golden file at path.
// If UPDATE_GOLDEN is set, writes actual output as the new golden file.
func compareGolden(t *testing.T, path, actual string) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDEN") != "" {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			t.Fatalf("create golden dir: %v", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(actual), 0o644); wErr != nil {
			t.Fatalf("write golden file: %v", wErr)
		}
		t.Logf("updated golden file: %s", path)
		return
	}

	expected, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		t.Fatalf("golden file missing: %s\nRun with UPDATE_GOLDEN=1 to create.\n\nActual output:\n%s", path, truncate(actual, 500))
	}
	if err != nil {
		t.Fatalf("read golden file %s: %v", path, err)
	}

	// Normalize line endings for cross-platform comparison.
	// Git may convert \n to \r\n on Windows checkout.
	expectedStr := strings.ReplaceAll(string(expected), "\r\n", "\n")
	actualStr := strings.ReplaceAll(actual, "\r\n", "\n")

	if expectedStr != actualStr {
		diff := diffStrings(expectedStr, actualStr)
		t.Errorf("output differs from golden %s:\n%s", path, diff)
	}
}

// diffStrings produces a simple line-by-line diff showing the first difference
// and surrounding context.
func diffStrings(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var sb strings.Builder
	maxLines := len(expectedLines)
	if len(actualLines) > maxLines {
		maxLines = len(actualLines)
	}

	const contextLines = 3
	firstDiff := -1
	for i := 0; i < maxLines; i++ {
		var eLine, aLine string
		if i < len(expectedLines) {
			eLine = expectedLines[i]
		}
		if i < len(actualLines) {
			aLine = actualLines[i]
		}
		if eLine != aLine {
			firstDiff = i
			break
		}
	}

	if firstDiff < 0 {
		return "(no difference found)"
	}

	fmt.Fprintf(&sb, "first difference at line %d:\n", firstDiff+1)
	fmt.Fprintf(&sb, "  expected lines: %d\n", len(expectedLines))
	fmt.Fprintf(&sb, "  actual lines:   %d\n\n", len(actualLines))

	// Show context around the first difference
	start := firstDiff - contextLines
	if start < 0 {
		start = 0
	}
	end := firstDiff + contextLines + 1
	if end > maxLines {
		end = maxLines
	}

	for i := start; i < end; i++ {
		prefix := " "
		var eLine, aLine string
		if i < len(expectedLines) {
			eLine = expectedLines[i]
		}
		if i < len(actualLines) {
			aLine = actualLines[i]
		}
		if eLine != aLine {
			prefix = "!"
		}
		fmt.Fprintf(&sb, "%s %4d expected: %s\n", prefix, i+1, truncate(eLine, 120))
		if eLine != aLine {
			fmt.Fprintf(&sb, "%s %4d actual:   %s\n", prefix, i+1, truncate(aLine, 120))
		}
	}

	return sb.String()
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
