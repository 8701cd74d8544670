package tokenizer

// Featurizer derives language-specific features for normalized word forms.
// Implementations exist per language; the session dispatches by the text's
// declared language, never by inspecting token content.
type Featurizer interface {
	// Language returns the language this featurizer handles. The empty
	// string registers it as the fallback for texts without a language.
	Language() string

	// Featurize returns one bundle per input form, index-aligned with the
	// input. Implementations must preserve ordering and count.
	Featurize(forms []string) ([]FeatureBundle, error)
}
