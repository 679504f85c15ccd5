package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
questions:
  - id: q1
    prompt: "Pick one"
    category: work_style
    options:
      - value: a
        text: "first"
        weights:
          network_defense: 2
      - value: b
        text: "second"
  - id: q2
    prompt: "Pick another"
    category: problem_solving
    options:
      - value: a
        text: "first"
      - value: b
        text: "second"
        weights:
          grc: 3
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp catalog: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile(writeTemp(t, sampleYAML))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 questions, got %d", c.Len())
	}
	q, ok := c.Get("q2")
	if !ok {
		t.Fatal("q2 not found")
	}
	opt, ok := q.Option("b")
	if !ok {
		t.Fatal("q2 option b not found")
	}
	if opt.Weights["grc"] != 3 {
		t.Errorf("expected grc weight 3, got %d", opt.Weights["grc"])
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFile_Empty(t *testing.T) {
	if _, err := LoadFile(writeTemp(t, "questions: []\n")); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	bad := `
questions:
  - id: q1
    prompt: "only one option"
    category: work_style
    options:
      - value: a
        text: "first"
`
	if _, err := LoadFile(writeTemp(t, bad)); err == nil {
		t.Fatal("expected validation error")
	}
}
