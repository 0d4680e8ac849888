// Package textmatch decides whether free-text patient input "means" a
// canonical symptom name. It is a cheap, explainable heuristic built from case
// folding, substring containment and normalized Levenshtein similarity at the
// word level. No transliteration or stemming is performed.
package textmatch

import "strings"

// DefaultSimilarityThreshold is the fuzzy-match cutoff used when a Matcher is
// constructed without an explicit policy value.
const DefaultSimilarityThreshold = 0.8

// Matcher performs word-level fuzzy matching with a configurable similarity
// threshold. The zero value is not usable; construct with NewMatcher.
type Matcher struct {
	threshold float64
}

// NewMatcher creates a matcher. A threshold outside (0,1] falls back to the
// default.
func NewMatcher(threshold float64) *Matcher {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSimilarityThreshold
	}
	return &Matcher{threshold: threshold}
}

// Matches reports whether a free-text query phrase matches a canonical symptom
// name: any word of the query matching any word of the canonical name, either
// by substring containment (case-insensitive, both directions) or by
// similarity above the threshold.
func (m *Matcher) Matches(input, canonical string) bool {
	inputWords := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	canonicalWords := strings.Fields(strings.ToLower(strings.TrimSpace(canonical)))

	for _, iw := range inputWords {
		for _, cw := range canonicalWords {
			if ContainsEither(iw, cw) {
				return true
			}
			if Similarity(iw, cw) > m.threshold {
				return true
			}
		}
	}
	return false
}

// ContainsEither reports whether either string contains the other,
// case-insensitively.
func ContainsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// Similarity returns the normalized edit-distance similarity of two strings in
// [0,1]: 1 − dist/maxLen. Two empty strings are defined as identical.
func Similarity(a, b string) float64 {
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

// Levenshtein computes the edit distance between two strings with unit
// substitution, insertion and deletion costs, using a single-row DP table.
func Levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr := make([]int, lb+1)
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, min(prev[j]+1, prev[j-1]+cost))
		}
		prev = curr
	}
	return prev[lb]
}
