package tokenizer

// TextRef carries the metadata of the text a tokenize call belongs to.
// Language scopes feature-set lookup and creation; ID is attached to
// emitted tokens and frequencies as a back-reference for storage.
type TextRef struct {
	ID       string
	Language string
}

// FeatureBundle is an open mapping of language-specific feature names to
// values for one normalized form. Each featurizer documents its own keys.
type FeatureBundle map[string]string

// FeatureSet pairs a normalized form within a language with its derived
// feature bundle. At most one FeatureSet exists per (form, language) in a
// session; all tokens and frequencies for that form share it.
type FeatureSet struct {
	Form     string
	Language string
	Features FeatureBundle
}

// Frequency counts occurrences of one normalized form within a single
// tokenize call.
type Frequency struct {
	Text       *TextRef
	FeatureSet *FeatureSet
	Count      int
}

// Token is one display-stream element. FeatureSet and Frequency are nil for
// tokens that carry no word characters (punctuation, whitespace, separators).
type Token struct {
	Text       *TextRef
	Index      int
	Display    string
	FeatureSet *FeatureSet
	Frequency  *Frequency
}

// Result is the output of one tokenize call. Frequencies and NewFeatureSets
// are ordered by first occurrence in the display stream. NewFeatureSets
// holds only the feature sets created during this call, so callers can
// persist exactly the new entries.
type Result struct {
	Tokens         []*Token
	Frequencies    []*Frequency
	NewFeatureSets []*FeatureSet
}
