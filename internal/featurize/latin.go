package featurize

import (
	"strings"
	"unicode/utf8"

	"tessera/internal/language"
	"tessera/internal/tokenizer"
)

// Latin derives features for normalized Latin forms.
//
// Emitted feature keys:
//
//	orth - orthographically regularized form (j -> i, v -> u)
//	stem - orth form with a trailing enclitic (-que, -ne, -ue) removed
type Latin struct{}

func (Latin) Language() string { return language.Latin }

// Enclitic spellings after regularization, so -ve is matched as -ue.
var latinEnclitics = []string{"que", "ne", "ue"}

func (Latin) Featurize(forms []string) ([]tokenizer.FeatureBundle, error) {
	bundles := make([]tokenizer.FeatureBundle, len(forms))
	for i, form := range forms {
		orth := regularizeLatin(form)
		bundles[i] = tokenizer.FeatureBundle{
			"orth": orth,
			"stem": stripEnclitic(orth),
		}
	}
	return bundles, nil
}

// regularizeLatin collapses the consonantal spellings j and v onto i and u,
// the orthography Latin lexica index by.
func regularizeLatin(form string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'j':
			return 'i'
		case 'v':
			return 'u'
		}
		return r
	}, form)
}

// stripEnclitic removes one trailing enclitic when enough of the host word
// remains to be a plausible form on its own.
func stripEnclitic(form string) string {
	for _, enclitic := range latinEnclitics {
		if strings.HasSuffix(form, enclitic) && utf8.RuneCountInString(form) >= len(enclitic)+2 {
			return strings.TrimSuffix(form, enclitic)
		}
	}
	return form
}
