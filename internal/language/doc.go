// Package language canonicalizes the language identifiers attached to
// corpus texts so feature sets and featurizers agree on naming.
package language
