package featurize

import "tessera/internal/tokenizer"

// Plain is the language-agnostic fallback featurizer for texts without a
// declared language.
//
// Emitted feature keys:
//
//	form - the normalized form itself
type Plain struct{}

// Language returns the empty string, registering Plain as the session
// fallback.
func (Plain) Language() string { return "" }

func (Plain) Featurize(forms []string) ([]tokenizer.FeatureBundle, error) {
	bundles := make([]tokenizer.FeatureBundle, len(forms))
	for i, form := range forms {
		bundles[i] = tokenizer.FeatureBundle{"form": form}
	}
	return bundles, nil
}
