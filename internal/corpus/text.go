package corpus

import (
	"strings"

	"tessera/internal/tokenizer"
)

// Text describes one corpus text: the metadata stored alongside its tokens
// and frequencies. ID is assigned by the store on insert; Checksum is the
// content hash used for duplicate detection.
type Text struct {
	ID       string
	URN      string
	Language string
	Author   string
	Title    string
	Year     int
	Path     string
	Checksum string
}

// Ref returns the tokenizer-facing reference for this text.
func (t *Text) Ref() *tokenizer.TextRef {
	if t == nil {
		return nil
	}
	return &tokenizer.TextRef{ID: t.ID, Language: t.Language}
}

// Label returns a short human-readable identifier for log and table output.
func (t *Text) Label() string {
	if t == nil {
		return ""
	}
	switch {
	case t.Title != "" && t.Author != "":
		return t.Author + ", " + t.Title
	case t.Title != "":
		return t.Title
	case t.URN != "":
		return t.URN
	default:
		return strings.TrimSpace(t.Path)
	}
}
