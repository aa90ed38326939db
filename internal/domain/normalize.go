package domain

import "strings"

// NormalizeText is the canonical form of a solid-food name: lowercased, with
// every run of whitespace collapsed to one space and the ends trimmed.
// Diacritics, hyphens and apostrophes are kept.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// NormalizeFoods normalizes every solid-food name and drops entries that are
// empty after normalization. Order and duplicates are preserved.
func NormalizeFoods(foods []string) []string {
	out := make([]string, 0, len(foods))
	for _, f := range foods {
		if n := NormalizeText(f); n != "" {
			out = append(out, n)
		}
	}
	return out
}
