package featurize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"tessera/internal/language"
	"tessera/internal/tokenizer"
)

// Greek derives features for normalized polytonic Greek forms.
//
// Emitted feature keys:
//
//	bare - the form with all diacritical marks removed
type Greek struct{}

func (Greek) Language() string { return language.Greek }

func (Greek) Featurize(forms []string) ([]tokenizer.FeatureBundle, error) {
	bundles := make([]tokenizer.FeatureBundle, len(forms))
	for i, form := range forms {
		bundles[i] = tokenizer.FeatureBundle{
			"bare": bareForm(form),
		}
	}
	return bundles, nil
}

// bareForm strips combining marks so accent and breathing variants of the
// same word compare equal.
func bareForm(form string) string {
	decomposed := norm.NFD.String(form)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}
