package editdist

import "unicode/utf8"

// OneAway reports whether a and b differ by exactly one single-character
// insertion, deletion, or substitution.
//
// Stage 1 (Normalize): decode to symbols and order so that long is the longer word.
// Stage 2 (Gate): a length gap above one means at least two edits.
// Stage 3 (Execute): equal lengths count mismatches; otherwise scan for a
// single skipped rune in long.
//
// Identical words are distance 0 and therefore never one away.
// OneAway is symmetric: OneAway(a, b) == OneAway(b, a).
// Complexity: O(L).
func OneAway(a, b string) bool {
	long, short := symbols(a), symbols(b)
	if len(long) < len(short) {
		long, short = short, long
	}
	if len(long)-len(short) > 1 {
		return false
	}
	if len(long) == len(short) {
		return substitutedOnce(long, short)
	}

	return deletedOnce(long, short)
}

// substitutedOnce reports whether equal-length a and b differ in exactly one position.
func substitutedOnce(a, b []rune) bool {
	diff := 0
	for i := range a {
		if a[i] != b[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}

	return diff == 1
}

// deletedOnce reports whether removing exactly one rune from long yields short.
// len(long) must equal len(short)+1.
//
// Walking both words in lockstep and allowing one skip in long is equivalent
// to trying every deletion position: the first mismatch is the only place a
// deletion can fix, and every later rune must then line up shifted by one.
func deletedOnce(long, short []rune) bool {
	i, j := 0, 0
	skipped := false
	for i < len(long) && j < len(short) {
		if long[i] == short[j] {
			i++
			j++
			continue
		}
		if skipped {
			return false
		}
		skipped = true
		i++ // drop long[i]
	}

	// Either the skip happened inside, or the extra rune is the trailing one.
	return true
}

// Distance returns the Levenshtein distance between a and b, counting
// single-rune insertions, deletions, and substitutions at unit cost.
//
// Uses the classic two-row dynamic program over the shorter word.
// Complexity: O(La·Lb) time, O(min(La,Lb)) memory.
func Distance(a, b string) int {
	ra, rb := symbols(a), symbols(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j // distance from "" to rb[:j]
	}

	var i, j, cost int
	for i = 1; i <= len(ra); i++ {
		curr[0] = i
		for j = 1; j <= len(rb); j++ {
			cost = 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // delete from ra
				curr[j-1]+1,    // insert into ra
				prev[j-1]+cost, // substitute or match
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// symbols decodes s into one symbol per character. Valid UTF-8 sequences
// decode to their rune. Each byte of an invalid sequence becomes its own
// symbol in the negative range, so it never equals a real rune (U+FFFD
// included) or a different invalid byte.
func symbols(s string) []rune {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = -1 - rune(s[i])
		}
		out = append(out, r)
		i += size
	}

	return out
}
