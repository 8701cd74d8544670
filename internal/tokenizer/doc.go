// Package tokenizer converts raw natural-language text into aligned token
// streams for intertextual comparison.
//
// One Session owns the accumulated state of a tokenizer instance: the
// recorded token list, the session-lifetime frequency counter, and the
// session-lifetime feature-set cache. A Session is not safe for concurrent
// use; run one Session per worker.
//
// Tokenize derives two streams from one input: a display stream that
// preserves every surface segment (words, punctuation, separators) at its
// original position, and a normalized analysis stream holding only word
// forms. The assembler walks the display stream and advances through the
// normalized stream on word-bearing display tokens only, resolving a
// deduplicated FeatureSet and per-call Frequency for each word.
package tokenizer
