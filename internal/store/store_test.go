package store_test

import (
	"context"
	"errors"
	"testing"

	"tessera/internal/corpus"
	"tessera/internal/store"
	"tessera/internal/testsupport"
	"tessera/internal/tokenizer"
)

func TestInsertTextAssignsID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	text := &corpus.Text{
		URN:      "urn:cts:latinLit:phi0690.phi003",
		Language: "latin",
		Author:   "Vergil",
		Title:    "Aeneid",
		Year:     -19,
		Checksum: "abc123",
	}
	if err := st.InsertText(ctx, text); err != nil {
		t.Fatalf("InsertText failed: %v", err)
	}
	if text.ID == "" {
		t.Fatal("expected text ID to be assigned")
	}

	fetched, err := st.GetText(ctx, text.ID)
	if err != nil {
		t.Fatalf("GetText failed: %v", err)
	}
	if fetched == nil || fetched.Author != "Vergil" || fetched.Year != -19 {
		t.Fatalf("unexpected fetched text: %#v", fetched)
	}
}

func TestInsertTextRejectsDuplicate(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	text := &corpus.Text{URN: "urn:test", Checksum: "same"}
	if err := st.InsertText(ctx, text); err != nil {
		t.Fatalf("InsertText failed: %v", err)
	}

	again := &corpus.Text{URN: "urn:test", Checksum: "same"}
	err := st.InsertText(ctx, again)
	if !errors.Is(err, store.ErrDuplicateText) {
		t.Fatalf("expected ErrDuplicateText, got %v", err)
	}

	// Same URN with different content is a new version, not a duplicate.
	revised := &corpus.Text{URN: "urn:test", Checksum: "other"}
	if err := st.InsertText(ctx, revised); err != nil {
		t.Fatalf("InsertText for revised content failed: %v", err)
	}
}

func TestInsertTextRequiresChecksum(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	if err := st.InsertText(context.Background(), &corpus.Text{URN: "urn:test"}); err == nil {
		t.Fatal("expected error for missing checksum")
	}
}

func TestListTextsFilters(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	testsupport.InsertText(t, st, &corpus.Text{URN: "urn:a", Language: "latin", Author: "Vergil", Checksum: "a"})
	testsupport.InsertText(t, st, &corpus.Text{URN: "urn:b", Language: "greek", Author: "Homer", Checksum: "b"})
	testsupport.InsertText(t, st, &corpus.Text{URN: "urn:c", Language: "latin", Author: "Lucan", Checksum: "c"})

	all, err := st.ListTexts(ctx, store.TextFilter{})
	if err != nil {
		t.Fatalf("ListTexts failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 texts, got %d", len(all))
	}

	latin, err := st.ListTexts(ctx, store.TextFilter{Language: "latin"})
	if err != nil {
		t.Fatalf("ListTexts failed: %v", err)
	}
	if len(latin) != 2 {
		t.Fatalf("expected 2 latin texts, got %d", len(latin))
	}

	homer, err := st.ListTexts(ctx, store.TextFilter{Language: "greek", Author: "Homer"})
	if err != nil {
		t.Fatalf("ListTexts failed: %v", err)
	}
	if len(homer) != 1 || homer[0].URN != "urn:b" {
		t.Fatalf("unexpected filtered result: %#v", homer)
	}
}

func TestSaveRunRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	text := testsupport.InsertText(t, st, &corpus.Text{
		URN: "urn:test", Language: "latin", Checksum: "x",
	})

	session := tokenizer.NewSession(st, plainFeaturizer{lang: "latin"})
	result, err := session.Tokenize(ctx, "arma virumque cano", true, text.Ref())
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(result.NewFeatureSets) != 3 {
		t.Fatalf("expected 3 new feature sets, got %d", len(result.NewFeatureSets))
	}

	if err := st.SaveRun(ctx, text.ID, result); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	count, err := st.TokenCount(ctx, text.ID)
	if err != nil {
		t.Fatalf("TokenCount failed: %v", err)
	}
	if count != len(result.Tokens) {
		t.Fatalf("expected %d stored tokens, got %d", len(result.Tokens), count)
	}

	stats, err := st.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats["feature_sets"] != 3 || stats["frequencies"] != 3 || stats["tokens"] != 5 {
		t.Fatalf("unexpected stats: %#v", stats)
	}

	// A later run over the same language must be seeded with the persisted
	// feature sets and create none.
	second := tokenizer.NewSession(st, plainFeaturizer{lang: "latin"})
	redo, err := second.Tokenize(ctx, "cano cano", true, text.Ref())
	if err != nil {
		t.Fatalf("second Tokenize failed: %v", err)
	}
	if len(redo.NewFeatureSets) != 0 {
		t.Fatalf("expected seeded run to create no feature sets, got %d", len(redo.NewFeatureSets))
	}
	if err := st.SaveRun(ctx, text.ID, redo); err != nil {
		t.Fatalf("SaveRun for seeded result failed: %v", err)
	}
}

func TestFormFrequenciesSumAcrossRuns(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	text := testsupport.InsertText(t, st, &corpus.Text{
		URN: "urn:test", Language: "latin", Checksum: "x",
	})

	session := tokenizer.NewSession(st, plainFeaturizer{lang: "latin"})
	for _, raw := range []string{"cano cano arma", "cano"} {
		result, err := session.Tokenize(ctx, raw, true, text.Ref())
		if err != nil {
			t.Fatalf("Tokenize failed: %v", err)
		}
		if err := st.SaveRun(ctx, text.ID, result); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	counts, err := st.FormFrequencies(ctx, text.ID)
	if err != nil {
		t.Fatalf("FormFrequencies failed: %v", err)
	}
	if counts["cano"] != 3 || counts["arma"] != 1 {
		t.Fatalf("unexpected counts: %#v", counts)
	}
}

func TestFindFeatureSetsScopedByLanguage(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	session := tokenizer.NewSession(nil, plainFeaturizer{lang: "latin"})
	result, err := session.Tokenize(ctx, "cano", true, &tokenizer.TextRef{Language: "latin"})
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if err := st.SaveRun(ctx, "", result); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	latin, err := st.FindFeatureSets(ctx, "latin")
	if err != nil {
		t.Fatalf("FindFeatureSets failed: %v", err)
	}
	if len(latin) != 1 || latin[0].Form != "cano" {
		t.Fatalf("unexpected latin feature sets: %#v", latin)
	}
	if latin[0].Features["form"] != "cano" {
		t.Fatalf("features did not round-trip: %#v", latin[0].Features)
	}

	greek, err := st.FindFeatureSets(ctx, "greek")
	if err != nil {
		t.Fatalf("FindFeatureSets failed: %v", err)
	}
	if len(greek) != 0 {
		t.Fatalf("expected no greek feature sets, got %d", len(greek))
	}
}

// plainFeaturizer is a minimal featurizer for store tests.
type plainFeaturizer struct {
	lang string
}

func (f plainFeaturizer) Language() string { return f.lang }

func (f plainFeaturizer) Featurize(forms []string) ([]tokenizer.FeatureBundle, error) {
	bundles := make([]tokenizer.FeatureBundle, len(forms))
	for i, form := range forms {
		bundles[i] = tokenizer.FeatureBundle{"form": form}
	}
	return bundles, nil
}
