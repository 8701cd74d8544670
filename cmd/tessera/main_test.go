package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tessera/internal/testsupport"
)

// writeTestConfig writes a config file pointing at per-test temp directories
// and returns its path.
func writeTestConfig(t *testing.T) string {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\nlog_dir = %q\n\n[tokenizer]\ndefault_language = \"latin\"\n",
		cfg.Paths.DataDir, cfg.Paths.LogDir,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = []string{"--config", configPath}
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output missing %q:\n%s", want, output)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	configPath := writeTestConfig(t)

	out, _, err := runCLI(t, configPath, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, "", "config", "init", "--path", target); err == nil {
		t.Fatal("expected second init without --overwrite to fail")
	}
	if _, _, err := runCLI(t, "", "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigShowPrintsResolvedValues(t *testing.T) {
	configPath := writeTestConfig(t)

	out, _, err := runCLI(t, configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "default_language = 'latin'")
}

func TestIngestTextsStatsRoundTrip(t *testing.T) {
	configPath := writeTestConfig(t)
	source := testsupport.WriteTessFile(t, "aeneid.tess",
		"<verg. aen. 1.1> Arma virumque cano, Troiae qui primus ab oris\n")

	out, _, err := runCLI(t, configPath, "ingest", source,
		"--urn", "urn:cts:latinLit:phi0690.phi003",
		"--language", "la",
		"--author", "Vergil",
		"--title", "Aeneid",
		"--year=-19")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	requireContains(t, out, "Ingested urn:cts:latinLit:phi0690.phi003 (Latin)")

	// The same content a second time is a duplicate.
	_, _, err = runCLI(t, configPath, "ingest", source,
		"--urn", "urn:cts:latinLit:phi0690.phi003")
	if err == nil {
		t.Fatal("expected duplicate ingest to fail")
	}

	out, _, err = runCLI(t, configPath, "texts")
	if err != nil {
		t.Fatalf("texts: %v", err)
	}
	requireContains(t, out, "urn:cts:latinLit:phi0690.phi003")
	requireContains(t, out, "Vergil")

	out, _, err = runCLI(t, configPath, "texts", "--language", "greek")
	if err != nil {
		t.Fatalf("texts filtered: %v", err)
	}
	requireContains(t, out, "No texts ingested yet")

	out, _, err = runCLI(t, configPath, "stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	requireContains(t, out, "texts")
	requireContains(t, out, "feature_sets")
}

func TestCompareReportsSharedVocabulary(t *testing.T) {
	configPath := writeTestConfig(t)
	first := testsupport.WriteTessFile(t, "a.tess", "arma virumque cano\n")
	second := testsupport.WriteTessFile(t, "b.tess", "cano troiae cano\n")

	if _, _, err := runCLI(t, configPath, "ingest", first, "--urn", "urn:a", "--language", "latin"); err != nil {
		t.Fatalf("ingest a: %v", err)
	}
	if _, _, err := runCLI(t, configPath, "ingest", second, "--urn", "urn:b", "--language", "latin"); err != nil {
		t.Fatalf("ingest b: %v", err)
	}

	out, _, err := runCLI(t, configPath, "compare", "urn:a", "urn:b")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	requireContains(t, out, "cosine similarity:")
	requireContains(t, out, "cano")

	if _, _, err := runCLI(t, configPath, "compare", "urn:a", "urn:missing"); err == nil {
		t.Fatal("expected compare with unknown URN to fail")
	}
}

func TestTokenizePreviewWritesNothing(t *testing.T) {
	configPath := writeTestConfig(t)

	out, _, err := runCLI(t, configPath, "tokenize", "arma virumque cano", "--language", "latin")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	requireContains(t, out, "virumque")
	requireContains(t, out, "stem=uirum")
	requireContains(t, out, "3 feature sets not yet stored")

	// The preview must not persist tokens or texts.
	out, _, err = runCLI(t, configPath, "texts")
	if err != nil {
		t.Fatalf("texts: %v", err)
	}
	requireContains(t, out, "No texts ingested yet")
}

func TestTokenizeRequiresInput(t *testing.T) {
	configPath := writeTestConfig(t)
	if _, _, err := runCLI(t, configPath, "tokenize"); err == nil {
		t.Fatal("expected tokenize without input to fail")
	}
}
