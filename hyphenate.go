package silben

import (
	"strings"
	"unicode"
)

// SoftHyphen is the marker inserted at computed break points. It is
// invisible unless the renderer actually wraps the line there, where it
// displays as a hyphen.
const SoftHyphen = '­'

// minEdge is the minimum number of original runes a marker must leave on
// each side of a break. It is a final clamp independent of the boundary
// scanner's own guards.
const minEdge = 2

// HyphenateWord returns word with soft hyphens inserted at plausible
// syllable boundaries.
//
// Words shorter than five characters, words already containing a hyphen or a
// soft hyphen, and words with any character outside the German alphabet are
// returned unchanged, as are words for which no rule fires. There is no
// error path; the function is idempotent and safe for concurrent use.
func HyphenateWord(word string) string {
	runes := []rune(word)
	bounds := findBoundaries(runes)
	if len(bounds) == 0 {
		return word
	}
	return insertMarkers(runes, bounds)
}

// HyphenateText hyphenates every whitespace-delimited token of text
// independently. Whitespace runs pass through byte-for-byte, so the result
// equals text exactly once all soft hyphens are stripped.
func HyphenateText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	start := 0
	inSpace := false
	flush := func(end int) {
		if start == end {
			return
		}
		if inSpace {
			b.WriteString(text[start:end])
		} else {
			b.WriteString(HyphenateWord(text[start:end]))
		}
	}
	for i, r := range text {
		if unicode.IsSpace(r) != inSpace {
			flush(i)
			start = i
			inSpace = !inSpace
		}
	}
	flush(len(text))
	return b.String()
}

// Boundaries returns the rune offsets at which [HyphenateWord] would insert
// a soft hyphen, in ascending order and after the edge clamp. It returns nil
// when no boundary survives, including for all no-op inputs. Renderers that
// break with their own marker instead of U+00AD can use the offsets
// directly.
func Boundaries(word string) []int {
	runes := []rune(word)
	var out []int
	for _, i := range findBoundaries(runes) {
		if i >= minEdge && i <= len(runes)-minEdge {
			out = append(out, i)
		}
	}
	return out
}

// Strip removes every soft hyphen from s, reconstructing the original text
// of a previous [HyphenateWord] or [HyphenateText] call.
func Strip(s string) string {
	return strings.ReplaceAll(s, string(SoftHyphen), "")
}

// insertMarkers writes word with one soft hyphen before each boundary
// offset. Offsets that would leave fewer than minEdge original runes on
// either side are dropped here. The offsets must be ascending, as produced
// by findBoundaries.
func insertMarkers(word []rune, bounds []int) string {
	var b strings.Builder
	b.Grow(len(word)*2 + len(bounds)*2)
	next := 0
	for i, r := range word {
		if next < len(bounds) && bounds[next] == i {
			if i >= minEdge && i <= len(word)-minEdge {
				b.WriteRune(SoftHyphen)
			}
			next++
		}
		b.WriteRune(r)
	}
	return b.String()
}
