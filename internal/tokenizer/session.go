package tokenizer

import (
	"context"
	"fmt"
)

// FeatureSetSource is the persisted feature-set lookup consulted exactly
// once per tokenize call, regardless of token count. Implementations return
// every stored feature set for the given language.
type FeatureSetSource interface {
	FindFeatureSets(ctx context.Context, language string) ([]*FeatureSet, error)
}

// Session owns the mutable state of one tokenizer instance: the recorded
// token list, the session-lifetime frequency counter, and the
// session-lifetime feature-set cache. These structures only grow across
// recorded calls; Clear resets them.
//
// A Session is mutated in place without internal synchronization. Concurrent
// Tokenize calls against the same Session are unsafe; run one Session per
// worker.
type Session struct {
	source      FeatureSetSource
	featurizers map[string]Featurizer

	tokens      []*Token
	frequencies map[string]int
	featureSets map[string]*FeatureSet
}

// NewSession builds a session using source for persisted feature-set seeding
// (nil disables seeding) and the given featurizers, keyed by their language.
// A featurizer with an empty Language acts as the fallback for texts without
// a declared language.
func NewSession(source FeatureSetSource, featurizers ...Featurizer) *Session {
	s := &Session{
		source:      source,
		featurizers: make(map[string]Featurizer, len(featurizers)),
	}
	for _, f := range featurizers {
		s.featurizers[f.Language()] = f
	}
	s.Clear()
	return s
}

// Clear resets the recorded token list, the session frequency counter, and
// the session feature-set cache. Callable at any time; idempotent.
func (s *Session) Clear() {
	s.tokens = nil
	s.frequencies = make(map[string]int)
	s.featureSets = make(map[string]*FeatureSet)
}

// Tokens returns the tokens recorded by this session in order.
// The returned slice is owned by the session; callers must not modify it.
func (s *Session) Tokens() []*Token {
	return s.tokens
}

// Frequencies returns a copy of the session-lifetime frequency counter:
// normalized form to cumulative count across all recorded calls.
func (s *Session) Frequencies() map[string]int {
	out := make(map[string]int, len(s.frequencies))
	for form, count := range s.frequencies {
		out[form] = count
	}
	return out
}

// FeatureSets returns the feature sets cached by this session across all
// recorded calls, in unspecified order.
func (s *Session) FeatureSets() []*FeatureSet {
	out := make([]*FeatureSet, 0, len(s.featureSets))
	for _, fs := range s.featureSets {
		out = append(out, fs)
	}
	return out
}

// featureSetKey is the session-cache identity key: (form, language).
func featureSetKey(form, language string) string {
	return form + "\x00" + language
}

// Tokenize normalizes, splits, featurizes, and assembles raw text into
// tokens, per-call frequencies, and newly created feature sets.
//
// When record is true, the call's tokens are appended to the session token
// list, its frequency tally is merged into the session counter, and both
// seeded and new feature sets enter the session cache. When record is false,
// session state is left untouched, for re-processing already seen input.
// text optionally supplies the owning text and its language; a nil text
// scopes feature sets to the empty language.
//
// Tokenize either fully succeeds or fails with session state unchanged.
func (s *Session) Tokenize(ctx context.Context, raw string, record bool, text *TextRef) (*Result, error) {
	var language string
	if text != nil {
		language = text.Language
	}

	normalized := SplitAnalysis(Normalize(raw))
	display := SplitDisplay(raw)

	featurizer, ok := s.featurizers[language]
	if !ok {
		featurizer, ok = s.featurizers[""]
	}
	if !ok {
		return nil, fmt.Errorf("%w: language %q", ErrNoFeaturizer, language)
	}
	bundles, err := featurizer.Featurize(normalized)
	if err != nil {
		return nil, fmt.Errorf("featurize %q: %w", language, err)
	}
	if len(bundles) != len(normalized) {
		return nil, fmt.Errorf("%w: featurizer produced %d bundles for %d forms",
			ErrAlignment, len(bundles), len(normalized))
	}

	// Per-call occurrence tally over the normalized stream, independent of
	// display alignment.
	tally := make(map[string]int, len(normalized))
	for _, form := range normalized {
		tally[form]++
	}

	// Per-call feature-set cache, seeded once from the persisted lookup.
	// Seeded entries win over anything computed later in this call.
	callSets := make(map[string]*FeatureSet)
	if s.source != nil {
		seeded, err := s.source.FindFeatureSets(ctx, language)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		for _, fs := range seeded {
			callSets[fs.Form] = fs
		}
	}

	result := &Result{Tokens: make([]*Token, 0, len(display))}
	callFreqs := make(map[string]*Frequency, len(tally))
	base := len(s.tokens)
	cursor := 0
	for i, d := range display {
		token := &Token{Text: text, Index: base + i, Display: d}
		if WordBearing(d) {
			if cursor >= len(normalized) {
				return nil, fmt.Errorf(
					"%w: word-bearing display token %q at index %d exceeds %d normalized forms",
					ErrAlignment, d, i, len(normalized))
			}
			form := normalized[cursor]
			bundle := bundles[cursor]
			cursor++

			fs := callSets[form]
			if fs == nil {
				if cached, ok := s.featureSets[featureSetKey(form, language)]; ok {
					fs = cached
					callSets[form] = fs
				}
			}
			if fs == nil {
				fs = &FeatureSet{Form: form, Language: language, Features: bundle}
				callSets[form] = fs
				result.NewFeatureSets = append(result.NewFeatureSets, fs)
			}

			freq := callFreqs[form]
			if freq == nil {
				freq = &Frequency{Text: text, FeatureSet: fs, Count: tally[form]}
				callFreqs[form] = freq
				result.Frequencies = append(result.Frequencies, freq)
			}

			token.FeatureSet = fs
			token.Frequency = freq
		}
		result.Tokens = append(result.Tokens, token)
	}

	if record {
		delete(tally, "")
		s.tokens = append(s.tokens, result.Tokens...)
		for form, count := range tally {
			s.frequencies[form] += count
		}
		for _, fs := range callSets {
			s.featureSets[featureSetKey(fs.Form, fs.Language)] = fs
		}
	}

	return result, nil
}
