package agential

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizeCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "args", args: []string{"normalize", "The", "Quick,", "Brown", "Fox!"}, want: "quick brown fox\n"},
		{name: "stdin", stdin: "An  Apple.\n", args: []string{"normalize"}, want: "apple\n"},
		{name: "articles step", args: []string{"normalize", "--step", "articles", "the fox"}, want: "  fox\n"},
		{name: "punc step", args: []string{"normalize", "--step", "punc", "Hi, there!"}, want: "Hi there\n"},
		{name: "whitespace step", args: []string{"normalize", "--step", "whitespace", " a \t b "}, want: "a b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("normalize failed: %v", err)
			}
			if out != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, out)
			}
		})
	}

	if _, err := executeCommand(t, "", "normalize", "--step", "bogus", "x"); err == nil {
		t.Fatal("expected error for unknown step")
	}
}

func TestEMCommand(t *testing.T) {
	out, err := executeCommand(t, "", "em", "The Eiffel Tower!", "eiffel tower")
	if err != nil {
		t.Fatalf("em failed: %v", err)
	}
	if !strings.HasPrefix(out, "match\n") {
		t.Fatalf("expected match, got: %s", out)
	}

	out, err = executeCommand(t, "", "--jsonMode", "em", "London", "Paris")
	if err != nil {
		t.Fatalf("em failed: %v", err)
	}
	var result emOutput
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode: %v (%s)", err, out)
	}
	if result.Match || result.NormalizedAnswer != "london" {
		t.Fatalf("unexpected result: %+v", result)
	}

	if _, err := executeCommand(t, "", "em", "only-one"); err == nil {
		t.Fatal("expected error for missing key argument")
	}
}

func TestParseListCommand(t *testing.T) {
	input := "Here are the steps:\n1. Search the title.\n2) Read the page,\n3. Answer.\n"

	out, err := executeCommand(t, input, "parse", "list")
	if err != nil {
		t.Fatalf("parse list failed: %v", err)
	}
	if out != "Search the title\nRead the page\nAnswer\n" {
		t.Fatalf("unexpected list output: %q", out)
	}

	out, err = executeCommand(t, input, "--jsonMode", "parse", "list", "--numbered")
	if err != nil {
		t.Fatalf("parse list --numbered failed: %v", err)
	}
	var items []string
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("decode: %v (%s)", err, out)
	}
	want := []string{"Search the title", "Read the page", "Answer"}
	if strings.Join(items, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %v, got %v", want, items)
	}
}

func TestParseListCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.txt")
	if err := os.WriteFile(path, []byte("1. one\n2. two\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := executeCommand(t, "", "parse", "list", path)
	if err != nil {
		t.Fatalf("parse list failed: %v", err)
	}
	if out != "one\ntwo\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	if _, err := executeCommand(t, "", "parse", "list", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseActionCommand(t *testing.T) {
	out, err := executeCommand(t, "", "parse", "action", "Search[Colorado orogeny]")
	if err != nil {
		t.Fatalf("parse action failed: %v", err)
	}
	if out != "type: Search\nargument: Colorado orogeny\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	if _, err := executeCommand(t, "", "parse", "action", "just text"); err == nil {
		t.Fatal("expected error for a non-action string")
	}

	out, err = executeCommand(t, "", "--jsonMode", "parse", "action", "just text")
	if err != nil {
		t.Fatalf("json mode should report invalid actions without failing: %v", err)
	}
	var result actionOutput
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode: %v (%s)", err, out)
	}
	if result.Valid || result.Type != "" || result.Argument != "" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestRemoveCommands(t *testing.T) {
	out, err := executeCommand(t, "", "remove", "name", "--name", "Alice:", "Alice: I think so")
	if err != nil {
		t.Fatalf("remove name failed: %v", err)
	}
	if out != "I think so\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	if _, err := executeCommand(t, "", "remove", "name", "text"); err == nil {
		t.Fatal("expected error when --name is missing")
	}

	out, err = executeCommand(t, "  Thought 1:\nI should search.\n", "remove", "newline")
	if err != nil {
		t.Fatalf("remove newline failed: %v", err)
	}
	if out != "Thought 1:I should search.\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestScoreAndAnalyzeCommands(t *testing.T) {
	dir := t.TempDir()
	suitePath := filepath.Join(dir, "capitals.json")
	suite := `{"name":"Capitals","cases":[{"answer":"Paris.","key":"paris"},{"answer":"Lyon","key":"Paris"}]}`
	if err := os.WriteFile(suitePath, []byte(suite), 0o644); err != nil {
		t.Fatalf("write suite: %v", err)
	}
	resultsDir := filepath.Join(dir, "results")

	out, err := executeCommand(t, "", "--resultsDir", resultsDir, "score", suitePath)
	if err != nil {
		t.Fatalf("score failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Exact match: 1/2 (50.0%)") {
		t.Fatalf("expected summary, got: %s", out)
	}
	if _, err := os.Stat(filepath.Join(resultsDir, "capitals.jsonl")); err != nil {
		t.Fatalf("expected results file: %v", err)
	}

	out, err = executeCommand(t, "", "--resultsDir", resultsDir, "analyze")
	if err != nil {
		t.Fatalf("analyze failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Capitals") || !strings.Contains(out, "never correct: 2") {
		t.Fatalf("unexpected analyze output: %s", out)
	}

	if _, err := executeCommand(t, "", "--resultsDir", resultsDir, "score"); err == nil {
		t.Fatal("expected error when no suites are given or configured")
	}
}

func TestSchemaCommand(t *testing.T) {
	out, err := executeCommand(t, "", "schema")
	if err != nil {
		t.Fatalf("schema failed: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("schema output is not JSON: %v", err)
	}

	path := filepath.Join(t.TempDir(), "schemas", "suite.json")
	out, err = executeCommand(t, "", "schema", "--out", path)
	if err != nil {
		t.Fatalf("schema --out failed: %v", err)
	}
	if !strings.Contains(out, "Schema written to") {
		t.Fatalf("unexpected output: %s", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected schema file: %v", err)
	}
}

func TestListCommands(t *testing.T) {
	out, err := executeCommand(t, "", "list", "commands")
	if err != nil {
		t.Fatalf("list commands failed: %v", err)
	}
	for _, want := range []string{"agential normalize", "agential parse action", "agential remove newline", "agential show config"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "completion") {
		t.Fatalf("completion should be filtered:\n%s", out)
	}

	rows := collectCommandData(rootCmd, "", 0)
	if rows[0].Path != "agential" || rows[0].Depth != 0 {
		t.Fatalf("unexpected root row: %+v", rows[0])
	}
}
