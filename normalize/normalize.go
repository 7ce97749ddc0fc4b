package normalize

import (
	"sort"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a title or artist string for comparison:
// diacritics stripped via NFD decomposition, lower-cased, everything outside
// [a-z0-9 ] replaced with a space, whitespace collapsed, trimmed. The result
// is only used for matching, never displayed.
func Normalize(s string) string {
	decomposed := norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))
	lastWasSpace := true
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from decomposition
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasSpace = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			lastWasSpace = false
		default:
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
		}
	}

	return strings.TrimSpace(b.String())
}

// Similarity scores two normalized strings in [0,100] using a token-sort
// ratio: tokens are sorted before a Levenshtein comparison, so word order
// does not matter. 100 means an identical token multiset. Symmetric.
func Similarity(a, b string) float64 {
	a = sortTokens(a)
	b = sortTokens(b)
	if a == "" || b == "" {
		if a == b {
			return 100
		}
		return 0
	}
	if a == b {
		return 100
	}

	sim, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0
	}
	return float64(sim) * 100
}

// Key builds the comparison key for a (title, artist) pair, used for
// favorite exclusion and deduplication.
func Key(title, artist string) string {
	return Normalize(title) + "|" + Normalize(artist)
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
