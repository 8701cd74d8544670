// Package store persists texts, feature sets, tokens, and frequencies in
// SQLite. It implements the tokenizer's FeatureSetSource lookup and receives
// each tokenize run's output for durable storage; the tokenizer itself never
// writes here.
package store
