package corpus_test

import (
	"os"
	"path/filepath"
	"testing"

	"tessera/internal/corpus"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.tess")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoadPreservesRawContent(t *testing.T) {
	content := "<verg. aen. 1.1> Arma virumque cano\n<verg. aen. 1.2> Troiae qui primus ab oris\n"
	path := writeFile(t, content)

	file, err := corpus.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if file.Raw() != content {
		t.Fatal("raw content altered by load")
	}
	lines := file.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "<verg. aen. 1.1> Arma virumque cano" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
}

func TestLoadChecksumStable(t *testing.T) {
	content := "arma virumque cano\n"
	first, err := corpus.Load(writeFile(t, content))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	second, err := corpus.Load(writeFile(t, content))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if first.Checksum() == "" {
		t.Fatal("expected non-empty checksum")
	}
	if first.Checksum() != second.Checksum() {
		t.Fatal("identical content produced different checksums")
	}

	other, err := corpus.Load(writeFile(t, "cano cano\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if other.Checksum() == first.Checksum() {
		t.Fatal("different content produced identical checksums")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := corpus.Load(filepath.Join(t.TempDir(), "absent.tess")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLinesHandlesCRLF(t *testing.T) {
	file, err := corpus.Load(writeFile(t, "arma\r\ncano\r\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	lines := file.Lines()
	if len(lines) != 2 || lines[0] != "arma" || lines[1] != "cano" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

func TestTextLabel(t *testing.T) {
	cases := []struct {
		text corpus.Text
		want string
	}{
		{corpus.Text{Author: "Vergil", Title: "Aeneid"}, "Vergil, Aeneid"},
		{corpus.Text{Title: "Aeneid"}, "Aeneid"},
		{corpus.Text{URN: "urn:cts:latinLit:phi0690.phi003"}, "urn:cts:latinLit:phi0690.phi003"},
		{corpus.Text{Path: "/texts/aeneid.tess"}, "/texts/aeneid.tess"},
	}
	for _, tc := range cases {
		if got := tc.text.Label(); got != tc.want {
			t.Errorf("Label() = %q, want %q", got, tc.want)
		}
	}
}
