package tokenizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes raw text for the analysis stream: Unicode NFKD
// decomposition followed by full case folding. Multiple arguments are joined
// with single spaces before normalization, preserving word boundaries.
// Delimiters and combining marks are left in place for the splitter.
func Normalize(parts ...string) string {
	raw := strings.Join(parts, " ")
	return cases.Fold().String(norm.NFKD.String(raw))
}
