package language

import "strings"

// Canonical names for the languages tessera ships featurizers for.
const (
	Latin   = "latin"
	Greek   = "greek"
	English = "english"
)

type entry struct {
	name    string   // canonical lowercase name
	display string   // human-readable name
	codes   []string // ISO 639 codes and common aliases
}

var languages = []entry{
	{Latin, "Latin", []string{"la", "lat"}},
	{Greek, "Ancient Greek", []string{"grc", "el", "ell", "gre"}},
	{English, "English", []string{"en", "eng"}},
}

var byAlias map[string]*entry

func init() {
	byAlias = make(map[string]*entry, len(languages)*4)
	for i := range languages {
		e := &languages[i]
		byAlias[e.name] = e
		for _, code := range e.codes {
			byAlias[code] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	return byAlias[code]
}

// Canonical maps a language code or name to its canonical lowercase name.
// Unrecognized non-empty input passes through trimmed and lowercased, so
// texts in languages without a registered entry keep a stable identifier.
func Canonical(code string) string {
	if e := lookup(code); e != nil {
		return e.name
	}
	return strings.ToLower(strings.TrimSpace(code))
}

// Known reports whether code resolves to a registered language.
func Known(code string) bool {
	return lookup(code) != nil
}

// DisplayName returns a human-readable name for any recognized code.
// Returns "Unknown" for empty input, or the trimmed input for
// unrecognized values.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	return strings.TrimSpace(code)
}
