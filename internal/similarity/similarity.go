// Package similarity compares tokenized texts by their normalized-form
// frequency vectors.
//
// Profiles are term-frequency vectors over a text's distinct forms, with a
// precomputed norm so cosine comparison stays cheap. Two texts tokenized with
// the same featurizer share vocabulary exactly when their normalized forms
// coincide, so the score reflects lexical overlap independent of word order.
package similarity

import (
	"math"
	"sort"
)

// Profile is a frequency vector over a text's normalized forms.
type Profile struct {
	forms map[string]float64
	norm  float64
}

// NewProfile builds a profile from per-form occurrence counts.
// Returns nil when no form has a positive count.
func NewProfile(counts map[string]int) *Profile {
	forms := make(map[string]float64, len(counts))
	var norm float64
	for form, count := range counts {
		if form == "" || count <= 0 {
			continue
		}
		value := float64(count)
		forms[form] = value
		norm += value * value
	}
	if len(forms) == 0 {
		return nil
	}
	return &Profile{forms: forms, norm: math.Sqrt(norm)}
}

// Size returns the number of distinct forms in the profile.
func (p *Profile) Size() int {
	if p == nil {
		return 0
	}
	return len(p.forms)
}

// Cosine computes the cosine similarity between two profiles.
// Returns 0 if either profile is nil or empty.
func Cosine(a, b *Profile) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for form, count := range a.forms {
		if other, ok := b.forms[form]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}

// SharedForm is a form present in both compared texts.
type SharedForm struct {
	Form   string
	CountA int
	CountB int
}

// Shared lists the forms two profiles have in common, most frequent first.
// Ties break on the form itself so output stays stable.
func Shared(a, b *Profile) []SharedForm {
	if a == nil || b == nil {
		return nil
	}
	var shared []SharedForm
	for form, countA := range a.forms {
		countB, ok := b.forms[form]
		if !ok {
			continue
		}
		shared = append(shared, SharedForm{
			Form:   form,
			CountA: int(countA),
			CountB: int(countB),
		})
	}
	sort.Slice(shared, func(i, j int) bool {
		wi := min(shared[i].CountA, shared[i].CountB)
		wj := min(shared[j].CountA, shared[j].CountB)
		if wi != wj {
			return wi > wj
		}
		return shared[i].Form < shared[j].Form
	})
	return shared
}
