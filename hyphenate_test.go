package silben

import (
	"strings"
	"testing"
	"unicode"
)

const shy = string(SoftHyphen)

func TestHyphenateWord(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string
	}{
		{"below minimum length", "ROT", "ROT"},
		{"consonant pair split", "HAMBURG", "HAM" + shy + "BURG"},
		{"cluster protected", "SCHÖN", "SCHÖN"},
		{"existing hyphen", "E-MAIL", "E-MAIL"},
		{"prefix and suffix", "Verbindung", "Ver" + shy + "bind" + shy + "ung"},
		{"longest prefix wins", "Unterhaltung", "Unter" + shy + "halt" + shy + "ung"},
		{"open syllables", "Banane", "Ba" + shy + "na" + shy + "ne"},
		{"doubled consonant", "Mutter", "Mut" + shy + "ter"},
		{"ss never splits", "Wasser", "Wasser"},
		{"edge clamp drops early boundary", "Aquarell", "Aqua" + shy + "rell"},
		{"case preserved", "verBINDung", "ver" + shy + "BIND" + shy + "ung"},
		{"digit makes word ineligible", "Auto5bahn", "Auto5bahn"},
		{"empty word", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HyphenateWord(tt.word); got != tt.want {
				t.Errorf("HyphenateWord(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestHyphenateText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"mixed sentence", "HAMBURG IST SCHÖN", "HAM" + shy + "BURG IST SCHÖN"},
		{"whitespace variety", "Hamburg\t Verbindung\nRot", "Ham" + shy + "burg\t Ver" + shy + "bind" + shy + "ung\nRot"},
		{"leading and trailing spaces", "  Hamburg  ", "  Ham" + shy + "burg  "},
		{"only whitespace", " \t\n ", " \t\n "},
		{"empty", "", ""},
		{"punctuation blocks token", "Hamburg, schön!", "Hamburg, schön!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HyphenateText(tt.text); got != tt.want {
				t.Errorf("HyphenateText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Words and texts used by the property tests below.
var propertyInputs = []string{
	"ROT", "Hamburg", "HAMBURG", "schön", "SCHÖN", "E-Mail", "Wasser",
	"Verbindung", "Verbindungen", "Unterhaltung", "Freundschaft", "Banane",
	"Mutter", "Requiem", "Tasche", "Aquarell", "Zusammenarbeit",
	"Donaudampfschifffahrt", "Geschwindigkeit", "Straßenbahn", "Auto5", "",
}

func TestHyphenateWordIdempotent(t *testing.T) {
	for _, w := range propertyInputs {
		once := HyphenateWord(w)
		twice := HyphenateWord(once)
		if once != twice {
			t.Errorf("HyphenateWord not idempotent for %q: %q vs %q", w, once, twice)
		}
	}
}

func TestHyphenateWordRoundTrip(t *testing.T) {
	for _, w := range propertyInputs {
		if got := Strip(HyphenateWord(w)); got != w {
			t.Errorf("Strip(HyphenateWord(%q)) = %q, want the input back", w, got)
		}
	}
}

// TestMarkerPositions checks that every inserted marker leaves at least two
// original runes on each side.
func TestMarkerPositions(t *testing.T) {
	for _, w := range propertyInputs {
		out := []rune(HyphenateWord(w))
		length := len([]rune(w))
		orig := 0 // original runes seen so far
		for _, r := range out {
			if r == SoftHyphen && w != "" && !strings.ContainsRune(w, SoftHyphen) {
				if orig < minEdge || length-orig < minEdge {
					t.Errorf("HyphenateWord(%q): marker after %d of %d original runes", w, orig, length)
				}
				continue
			}
			orig++
		}
	}
}

func TestHyphenateTextPreservesWhitespace(t *testing.T) {
	texts := []string{
		"HAMBURG IST SCHÖN",
		"  doppelt  gemoppelt  ",
		"Zeile eins\nZeile zwei\r\nZeile drei",
		"Tabs\tund\t\tSpalten",
		" geschütztes Leerzeichen",
	}

	for _, text := range texts {
		out := HyphenateText(text)
		if got := Strip(out); got != text {
			t.Errorf("Strip(HyphenateText(%q)) = %q, want the input back", text, got)
			continue
		}
		// Whitespace runs must survive untouched, in content and order.
		got, want := whitespaceRuns(out), whitespaceRuns(text)
		if len(got) != len(want) {
			t.Errorf("HyphenateText(%q): %d whitespace runs, want %d", text, len(got), len(want))
			continue
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("HyphenateText(%q): whitespace run %d is %q, want %q", text, i, got[i], want[i])
			}
		}
	}
}

// whitespaceRuns returns the maximal whitespace runs of s in order.
func whitespaceRuns(s string) []string {
	var runs []string
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, s[start:])
	}
	return runs
}

func TestBoundaries(t *testing.T) {
	tests := []struct {
		name string
		word string
		want []int
	}{
		{"consonant pair", "Hamburg", []int{3}},
		{"prefix and suffix", "Verbindung", []int{3, 7}},
		{"edge clamp applied", "Aquarell", []int{4}},
		{"no-op input", "Rot", nil},
		{"cluster protected", "schön", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Boundaries(tt.word)
			if len(got) != len(tt.want) {
				t.Fatalf("Boundaries(%q) = %v, want %v", tt.word, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Boundaries(%q) = %v, want %v", tt.word, got, tt.want)
					break
				}
			}
		})
	}
}

func TestStrip(t *testing.T) {
	if got := Strip("Ham" + shy + "burg"); got != "Hamburg" {
		t.Errorf("Strip = %q, want %q", got, "Hamburg")
	}
	if got := Strip("ohne Marker"); got != "ohne Marker" {
		t.Errorf("Strip = %q, want %q", got, "ohne Marker")
	}
}
