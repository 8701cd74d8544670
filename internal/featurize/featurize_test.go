package featurize_test

import (
	"testing"

	"tessera/internal/featurize"
)

func TestPlainPreservesOrderAndCount(t *testing.T) {
	forms := []string{"arma", "virumque", "cano"}
	bundles, err := featurize.Plain{}.Featurize(forms)
	if err != nil {
		t.Fatalf("Featurize failed: %v", err)
	}
	if len(bundles) != len(forms) {
		t.Fatalf("expected %d bundles, got %d", len(forms), len(bundles))
	}
	for i, form := range forms {
		if bundles[i]["form"] != form {
			t.Errorf("bundle %d: form = %q, want %q", i, bundles[i]["form"], form)
		}
	}
}

func TestLatinFeatures(t *testing.T) {
	cases := []struct {
		form string
		orth string
		stem string
	}{
		{"virumque", "uirumque", "uirum"},
		{"arma", "arma", "arma"},
		{"iamque", "iamque", "iam"},
		{"juvat", "iuuat", "iuuat"},
		{"nonne", "nonne", "non"},
		{"sive", "siue", "si"},
		// Too short to host an enclitic.
		{"ne", "ne", "ne"},
		{"que", "que", "que"},
	}
	forms := make([]string, len(cases))
	for i, tc := range cases {
		forms[i] = tc.form
	}

	bundles, err := featurize.Latin{}.Featurize(forms)
	if err != nil {
		t.Fatalf("Featurize failed: %v", err)
	}
	if len(bundles) != len(forms) {
		t.Fatalf("expected %d bundles, got %d", len(forms), len(bundles))
	}
	for i, tc := range cases {
		if got := bundles[i]["orth"]; got != tc.orth {
			t.Errorf("%s: orth = %q, want %q", tc.form, got, tc.orth)
		}
		if got := bundles[i]["stem"]; got != tc.stem {
			t.Errorf("%s: stem = %q, want %q", tc.form, got, tc.stem)
		}
	}
}

func TestGreekBareForm(t *testing.T) {
	cases := []struct {
		form string
		bare string
	}{
		{"μῆνιν", "μηνιν"},
		{"ἄειδε", "αειδε"},
		{"θεά", "θεα"},
		{"λογος", "λογος"},
	}
	forms := make([]string, len(cases))
	for i, tc := range cases {
		forms[i] = tc.form
	}

	bundles, err := featurize.Greek{}.Featurize(forms)
	if err != nil {
		t.Fatalf("Featurize failed: %v", err)
	}
	for i, tc := range cases {
		if got := bundles[i]["bare"]; got != tc.bare {
			t.Errorf("%s: bare = %q, want %q", tc.form, got, tc.bare)
		}
	}
}

func TestLanguages(t *testing.T) {
	if (featurize.Latin{}).Language() != "latin" {
		t.Error("unexpected Latin language key")
	}
	if (featurize.Greek{}).Language() != "greek" {
		t.Error("unexpected Greek language key")
	}
	if (featurize.Plain{}).Language() != "" {
		t.Error("Plain should register as the fallback")
	}
}
