package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// The split logic below is written as two explicit scanners rather than
// regular expressions so every delimiter rule is named and testable on its
// own: an analysis grammar for the normalized stream (delimiters discarded)
// and a display grammar for the raw stream (delimiters kept as tokens).

const (
	// lineSeparator replaces newlines in the display stream and is a
	// delimiter in both grammars.
	lineSeparator = " / "

	// spacedEllipsis and tildeEllipsis are ellipsis variants that appear in
	// critical editions; both grammars would otherwise split them into
	// stray dot tokens.
	spacedEllipsis = " . . ."
	tildeEllipsis  = ".~.~."
)

// analysisDiacritics are combining marks the analysis grammar treats as word
// characters, so decomposed polytonic forms survive splitting intact.
var analysisDiacritics = map[rune]struct{}{
	'\u0300': {}, // varia
	'\u0301': {}, // oxia
	'\u0308': {}, // diaeresis
	'\u0313': {}, // smooth breathing
	'\u0314': {}, // rough breathing
	'\u0342': {}, // perispomeni
	'\u0345': {}, // ypogegrammeni
}

// isWordRune reports whether r is a basic word character. Both grammars
// share this class so the display and analysis streams stay alignable.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isAnalysisDiacritic(r rune) bool {
	_, ok := analysisDiacritics[r]
	return ok
}

// annotationSpan matches a bracketed annotation span ("<...>" immediately
// followed by a whitespace rune) starting at byte offset i. It returns the
// offset just past the trailing whitespace, or -1 when s[i:] does not begin
// a span. Spans do not cross line boundaries.
func annotationSpan(s string, i int) int {
	if s[i] != '<' {
		return -1
	}
	rel := strings.IndexByte(s[i+1:], '>')
	if rel < 1 {
		return -1
	}
	if strings.IndexByte(s[i+1:i+1+rel], '\n') >= 0 {
		return -1
	}
	j := i + 1 + rel + 1
	r, size := utf8.DecodeRuneInString(s[j:])
	if size == 0 || !unicode.IsSpace(r) {
		return -1
	}
	return j + size
}

// SplitAnalysis splits normalized text into word forms for the analysis
// stream. Delimiters are discarded: annotation spans with their trailing
// whitespace, the " / " separator, ellipsis markers, and any single rune
// outside the word-character and diacritic classes. Empty segments are
// dropped, so the output holds only word forms with no positional metadata.
func SplitAnalysis(normalized string) []string {
	var forms []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			forms = append(forms, b.String())
			b.Reset()
		}
	}
	for i := 0; i < len(normalized); {
		if next := annotationSpan(normalized, i); next > 0 {
			flush()
			i = next
			continue
		}
		if strings.HasPrefix(normalized[i:], lineSeparator) {
			flush()
			i += len(lineSeparator)
			continue
		}
		if strings.HasPrefix(normalized[i:], spacedEllipsis) {
			flush()
			i += len(spacedEllipsis)
			continue
		}
		if strings.HasPrefix(normalized[i:], tildeEllipsis) {
			flush()
			i += len(tildeEllipsis)
			continue
		}
		r, size := utf8.DecodeRuneInString(normalized[i:])
		if isWordRune(r) || isAnalysisDiacritic(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
		i += size
	}
	flush()
	return forms
}

// StripAnnotations removes every annotation span, including the single
// whitespace rune that follows it, from raw text.
func StripAnnotations(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); {
		if next := annotationSpan(raw, i); next > 0 {
			i = next
			continue
		}
		r, size := utf8.DecodeRuneInString(raw[i:])
		b.WriteRune(r)
		i += size
	}
	return b.String()
}

// SplitDisplay splits raw text into the display stream. Annotation spans are
// stripped, every newline becomes the " / " separator, and the result is
// split with delimiters retained: the " / " sequence and each single
// non-word rune surface as standalone tokens at their original positions.
// Order and count of the output are fixed by the input.
func SplitDisplay(raw string) []string {
	prepared := strings.ReplaceAll(StripAnnotations(raw), "\n", lineSeparator)

	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for i := 0; i < len(prepared); {
		if strings.HasPrefix(prepared[i:], lineSeparator) {
			flush()
			tokens = append(tokens, lineSeparator)
			i += len(lineSeparator)
			continue
		}
		r, size := utf8.DecodeRuneInString(prepared[i:])
		if isWordRune(r) {
			b.WriteRune(r)
		} else {
			flush()
			tokens = append(tokens, string(r))
		}
		i += size
	}
	flush()
	return tokens
}

// WordBearing reports whether a display token consumes a normalized form:
// it contains at least one basic word character.
func WordBearing(display string) bool {
	for _, r := range display {
		if isWordRune(r) {
			return true
		}
	}
	return false
}
