package silben

// boundaries.go - The boundary scanner.
//
// Boundary detection works in three passes over a lower-cased copy of the
// word: a prefix match at the start, a suffix match at the end, and a scan
// of the interior offsets between them. The interior scan applies three
// class-pattern rules in priority order; the patterns are mutually exclusive
// by construction, so the first match wins and at most one boundary is
// recorded per offset. All offsets refer to the original word; the
// lower-cased copy is used for classification only.
//
// Known asymmetry: the inseparable-cluster check gates only the
// consonant-consonant rule. A vowel-consonant-vowel split is taken even when
// the window overlaps a cluster ("Re·quiem" splits before the "qu"). The
// tests pin this behavior down.

import (
	"sort"
	"unicode"
)

// minWordLength is the shortest word considered for hyphenation. Anything
// shorter fits on a narrow line as-is.
const minWordLength = 5

// findBoundaries returns the rune offsets at which word may be broken, in
// ascending order and without duplicates. A word that fails one of the no-op
// preconditions (too short, already hyphenated, or containing characters
// outside the German alphabet) yields no boundaries; there is no error path.
func findBoundaries(word []rune) []int {
	if len(word) < minWordLength {
		return nil
	}
	lower := make([]rune, len(word))
	for i, r := range word {
		if r == '-' || r == SoftHyphen {
			// Already hyphenated, re-hyphenating is a no-op.
			return nil
		}
		if !isGermanLetter(r) {
			return nil
		}
		lower[i] = unicode.ToLower(r)
	}

	var bounds []int

	// A prefix edge is the most reliable break point in the word.
	prefixEnd := prefixes.matchPrefix(lower)
	if prefixEnd > 0 {
		bounds = append(bounds, prefixEnd)
	}

	suffixStart := suffixes.matchSuffix(lower)

	// Interior scan between the affix edges. The upper bound keeps the
	// offset clear of the suffix edge and guarantees a following rune.
	for i := prefixEnd + 1; i <= suffixStart-2; i++ {
		if containsOffset(bounds, i) {
			continue
		}
		prev := classify(lower[i-1])
		curr := classify(lower[i])
		next := classify(lower[i+1])

		// A single consonant between two vowels breaks before the
		// consonant (the open-syllable rule).
		if prev == classVowel && curr == classConsonant && next == classVowel {
			bounds = append(bounds, i)
			continue
		}

		// Two differing consonants break between syllables unless they sit
		// inside an inseparable cluster, and only with a vowel on each side
		// of the break.
		if prev == classConsonant && curr == classConsonant && lower[i-1] != lower[i] {
			if !clusterAround(lower, i) && hasVowelBefore(lower, i) && hasVowelFrom(lower, i) {
				bounds = append(bounds, i)
			}
			continue
		}

		// A doubled consonant breaks down the middle, except "ss".
		if prev == classConsonant && curr == classConsonant && lower[i-1] == lower[i] && lower[i] != 's' {
			bounds = append(bounds, i)
		}
	}

	if suffixStart < len(lower) && suffixStart > 1 && !containsOffset(bounds, suffixStart) {
		bounds = append(bounds, suffixStart)
	}

	sort.Ints(bounds)
	return bounds
}

// hasVowelBefore reports whether any rune strictly before offset i is a
// vowel.
func hasVowelBefore(lower []rune, i int) bool {
	for k := 0; k < i; k++ {
		if classify(lower[k]) == classVowel {
			return true
		}
	}
	return false
}

// hasVowelFrom reports whether any rune at or after offset i is a vowel.
func hasVowelFrom(lower []rune, i int) bool {
	for k := i; k < len(lower); k++ {
		if classify(lower[k]) == classVowel {
			return true
		}
	}
	return false
}

// containsOffset reports whether off is already recorded. Boundary sets are
// tiny (a handful of entries for a 30-rune word), so a linear scan beats any
// set structure.
func containsOffset(bounds []int, off int) bool {
	for _, b := range bounds {
		if b == off {
			return true
		}
	}
	return false
}
