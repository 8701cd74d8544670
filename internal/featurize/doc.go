// Package featurize provides the per-language Featurizer implementations
// the tokenizer dispatches to. Each featurizer documents the feature keys
// it emits; the set of keys per language is open-ended.
package featurize
