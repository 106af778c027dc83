package silben

// Character classes used by the boundary scanner. For syllable purposes
// German orthography only distinguishes vowels from consonants; anything
// outside the German alphabet is classOther.
const (
	classOther     = iota // Not a German letter
	classVowel            // a, e, i, o, u, ä, ö, ü, y (either case)
	classConsonant        // Any other German letter, including ß
)

// classify returns the character class of the given code point. It is
// case-insensitive and treats "y" as a vowel, following German syllable
// convention.
func classify(r rune) int {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y',
		'A', 'E', 'I', 'O', 'U', 'Y',
		'ä', 'ö', 'ü', 'Ä', 'Ö', 'Ü':
		return classVowel
	}
	if isGermanLetter(r) {
		return classConsonant
	}
	return classOther
}

// isGermanLetter reports whether r belongs to the German alphabet: the basic
// Latin letters, the umlauts, and the sharp s. Digits, punctuation, and
// letters of other scripts are excluded, which makes a word containing them
// ineligible for hyphenation.
func isGermanLetter(r rune) bool {
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return true
	}
	switch r {
	case 'ä', 'ö', 'ü', 'Ä', 'Ö', 'Ü', 'ß', 'ẞ':
		return true
	}
	return false
}
