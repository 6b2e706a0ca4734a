// Package phrase normalises free-text object names into token sets and
// picks the closest phrase from a candidate list by token overlap.
package phrase

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

// TokenSet is an unordered set of lower-case tokens.
type TokenSet map[string]struct{}

// Tokenize lower-cases text, drops every character that is neither a letter,
// a digit, whitespace nor an underscore, and splits on runs of whitespace
// and underscores.
//
//	Tokenize("Office !! Building - Medium") // {office, building, medium}
//	Tokenize("FirstFloor_Plenum")           // {firstfloor, plenum}
func Tokenize(text string) TokenSet {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '_':
			b.WriteByte(' ')
		}
	}

	set := make(TokenSet)
	for _, tok := range strings.Fields(b.String()) {
		set[tok] = struct{}{}
	}
	return set
}

// Sorted returns the tokens in lexical order.
func (s TokenSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for tok := range s {
		out = append(out, tok)
	}
	slices.Sort(out)
	return out
}

// Overlap counts the tokens present in both sets.
func (s TokenSet) Overlap(other TokenSet) int {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	n := 0
	for tok := range small {
		if _, ok := large[tok]; ok {
			n++
		}
	}
	return n
}

// Normalize returns the canonical string form of text: its sorted tokens
// joined by underscores. Tokenize(Normalize(x)) equals Tokenize(x).
func Normalize(text string) string {
	return strings.Join(Tokenize(text).Sorted(), "_")
}

// MatchPhrase returns the candidate sharing the most tokens with query.
// Ties go to the earliest candidate. An empty candidate list fails with
// domain.ErrEmptyCandidates.
func MatchPhrase(query string, candidates []string) (string, error) {
	i, err := MatchIndex(query, candidates)
	if err != nil {
		return "", err
	}
	return candidates[i], nil
}

// MatchIndex is MatchPhrase returning the winning position.
func MatchIndex(query string, candidates []string) (int, error) {
	if len(candidates) == 0 {
		return -1, fmt.Errorf("match %q: %w", query, domain.ErrEmptyCandidates)
	}

	q := Tokenize(query)
	best, bestScore := 0, -1
	for i, c := range candidates {
		if score := q.Overlap(Tokenize(c)); score > bestScore {
			best, bestScore = i, score
		}
	}
	return best, nil
}
