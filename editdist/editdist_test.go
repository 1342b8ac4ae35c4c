package editdist_test

import (
	"testing"

	"github.com/katalvlaran/wordchain/editdist"
	"github.com/stretchr/testify/require"
)

func TestOneAway_Cases(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"dog", "hog", true},   // substitution
		{"coat", "dog", false}, // too far
		{"coat", "cat", true},  // deletion
		{"coat", "hat", false}, // deletion + substitution
		{"cat", "coat", true},  // insertion
		{"cot", "coat", true},
		{"oat", "coat", true}, // leading insertion
		{"coa", "coat", true}, // trailing insertion
		{"dog", "dog", false}, // identical
		{"", "", false},
		{"", "a", true},
		{"a", "", true},
		{"", "ab", false},
		{"ab", "ba", false}, // transposition is two edits
		{"korte", "körte", true},
		{"alma", "korte", false},
		{"korte", "barack", false},
		{"abc", "abcde", false},
		{"a\xff", "a\xfe", true},  // distinct invalid bytes
		{"\xff", "\uFFFD", true},  // invalid byte is not the replacement rune
		{"a\xff", "a\xff", false}, // identical invalid bytes
		{"\xff\xfe", "\xfe\xff", false},
		{"k\xf6rte", "körte", true}, // Latin-1 ö vs UTF-8 ö
		{"ab\xff", "ab", true},
	}
	for _, tc := range cases {
		require.Equalf(t, tc.want, editdist.OneAway(tc.a, tc.b), "OneAway(%q, %q)", tc.a, tc.b)
	}
}

func TestDistance_InvalidUTF8(t *testing.T) {
	require.Equal(t, 1, editdist.Distance("a\xff", "a\xfe"))
	require.Equal(t, 1, editdist.Distance("\xff", "\uFFFD"))
	require.Equal(t, 0, editdist.Distance("\xff\xfe", "\xff\xfe"))
	require.Equal(t, 2, editdist.Distance("\xff\xfe", "\xfe\xff"))
}

func TestOneAway_Symmetric(t *testing.T) {
	words := allWords("ab", 4)
	for _, a := range words {
		for _, b := range words {
			require.Equalf(t, editdist.OneAway(a, b), editdist.OneAway(b, a), "a=%q b=%q", a, b)
		}
	}
}

func TestOneAway_Irreflexive(t *testing.T) {
	for _, w := range append(allWords("xyz", 3), "körte", "árvíztűrő") {
		require.Falsef(t, editdist.OneAway(w, w), "OneAway(%q, %q)", w, w)
	}
}

// TestOneAway_MatchesDistance checks OneAway against the general
// Levenshtein distance on every pair of short words over a small alphabet.
func TestOneAway_MatchesDistance(t *testing.T) {
	words := allWords("abc", 3)
	for _, a := range words {
		for _, b := range words {
			require.Equalf(t, editdist.Distance(a, b) == 1, editdist.OneAway(a, b), "a=%q b=%q", a, b)
		}
	}
}

func TestDistance(t *testing.T) {
	require.Equal(t, 0, editdist.Distance("", ""))
	require.Equal(t, 3, editdist.Distance("", "abc"))
	require.Equal(t, 3, editdist.Distance("kitten", "sitting"))
	require.Equal(t, 2, editdist.Distance("coat", "hat"))
	require.Equal(t, 1, editdist.Distance("körte", "korte"))
	require.Equal(t, editdist.Distance("flaw", "lawn"), editdist.Distance("lawn", "flaw"))
}

// allWords returns every word over alphabet of length 0..maxLen.
func allWords(alphabet string, maxLen int) []string {
	words := []string{""}
	frontier := []string{""}
	for l := 0; l < maxLen; l++ {
		var next []string
		for _, w := range frontier {
			for _, r := range alphabet {
				next = append(next, w+string(r))
			}
		}
		words = append(words, next...)
		frontier = next
	}
	return words
}
