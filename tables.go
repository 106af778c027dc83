package silben

// tables.go - Frozen affix and cluster tables.
//
// The boundary scanner prefers morphological break points (prefix and suffix
// edges) over purely phonotactic ones, and it must try longer affixes before
// shorter overlapping ones ("unter" before "un"). Sorting happens exactly
// once, when the package-level tables are built at initialization; after
// that the tables are read-only, which keeps concurrent calls free of
// locking.

import "sort"

// minRemainder is the smallest rune count an affix match may leave behind.
// An affix that consumes nearly the whole word is not a useful break point.
const minRemainder = 3

// Separable and derivational prefixes. Longest-first order is established by
// newAffixTable; the listing order here carries no meaning.
var prefixes = newAffixTable([]string{
	"ab", "an", "auf", "aus", "be", "bei", "dar", "durch", "ein", "emp",
	"ent", "er", "ge", "gegen", "her", "hin", "miss", "mit", "nach", "über",
	"um", "un", "unter", "ur", "ver", "vor", "weg", "wider", "zer", "zu",
	"zurück", "zusammen",
})

// Derivational suffixes. Inflectional endings ("e", "en", "er") are absent
// on purpose: they are too short and too frequent to be reliable break
// points.
var suffixes = newAffixTable([]string{
	"bar", "chen", "haft", "heit", "isch", "keit", "lein", "lich", "los",
	"nis", "sam", "schaft", "tum", "ung",
})

// Consonant sequences conventionally never split across a hyphenation point
// in German orthography.
var clusters = toRuneSlices([]string{
	"sch", "ch", "ck", "st", "sp", "pf", "ph", "th", "qu", "ng",
})

// affixTable holds affix entries ordered longest-first so that the first
// match is always the longest match.
type affixTable struct {
	entries [][]rune
}

func newAffixTable(entries []string) *affixTable {
	t := &affixTable{entries: toRuneSlices(entries)}
	sort.SliceStable(t.entries, func(i, j int) bool {
		return len(t.entries[i]) > len(t.entries[j])
	})
	return t
}

// matchPrefix returns the length of the longest table entry that starts the
// word and leaves at least minRemainder runes behind, or 0 if none does.
func (t *affixTable) matchPrefix(lower []rune) int {
	for _, e := range t.entries {
		if len(lower)-len(e) < minRemainder {
			continue
		}
		if matchAt(lower, e, 0) {
			return len(e)
		}
	}
	return 0
}

// matchSuffix returns the offset at which the longest table entry ending the
// word begins, provided the match leaves at least minRemainder runes before
// it. It returns len(lower) if no entry matches, meaning "no suffix
// boundary".
func (t *affixTable) matchSuffix(lower []rune) int {
	for _, e := range t.entries {
		start := len(lower) - len(e)
		if start < minRemainder {
			continue
		}
		if matchAt(lower, e, start) {
			return start
		}
	}
	return len(lower)
}

// clusterAround reports whether any inseparable cluster occurrence overlaps
// the 3-rune window centered at offset i. A cluster may start before the
// window as long as it reaches into it.
func clusterAround(lower []rune, i int) bool {
	lo, hi := i-1, i+1 // window bounds, inclusive
	for _, cl := range clusters {
		start := lo - len(cl) + 1
		if start < 0 {
			start = 0
		}
		for s := start; s <= hi && s+len(cl) <= len(lower); s++ {
			if matchAt(lower, cl, s) {
				return true
			}
		}
	}
	return false
}

// matchAt reports whether sub occurs in lower at offset at. The caller
// guarantees at+len(sub) <= len(lower).
func matchAt(lower, sub []rune, at int) bool {
	for k, r := range sub {
		if lower[at+k] != r {
			return false
		}
	}
	return true
}

func toRuneSlices(entries []string) [][]rune {
	out := make([][]rune, len(entries))
	for i, e := range entries {
		out[i] = []rune(e)
	}
	return out
}
