/*
Package silben implements rule-based hyphenation for German text.

Given a word or a run of text, the package inserts soft hyphens (U+00AD) at
linguistically plausible syllable boundaries so that long words, especially
German compounds, can wrap cleanly on narrow displays without native
language-aware line breaking.

# Overview

Using this package, you can:
  - Insert soft hyphens into a single word ([HyphenateWord])
  - Insert soft hyphens into whole text while preserving all whitespace
    ([HyphenateText])
  - Obtain the raw break offsets for custom rendering ([Boundaries])
  - Remove previously inserted soft hyphens ([Strip])

The output is always valid Unicode text identical to the input except for
zero or more inserted U+00AD characters. Stripping those characters
reconstructs the input exactly.

# Rules

This is a deterministic heuristic pass, not a dictionary-backed or
statistically trained hyphenator. It works from hand-curated affix tables and
local character-class patterns:

  - Edges of known separable prefixes ("ver", "unter", ...) and derivational
    suffixes ("ung", "keit", ...) are authoritative break points. Longer
    affixes are tried before shorter overlapping ones.
  - A single consonant between two vowels breaks before the consonant (the
    open-syllable rule: Ba·nane).
  - Two differing consonants break between syllables unless they sit inside
    an inseparable cluster such as "sch", "ch", or "st", and only when a
    vowel exists on each side of the break (Ham·burg, but not Schön).
  - A doubled consonant breaks down the middle, except "ss" (Mut·ter).

# No-Op Inputs

The package never fails; degraded input degrades to identity. A word is
returned unchanged when it is shorter than five characters, when it already
contains a hyphen or a soft hyphen (re-hyphenating is a no-op), when it
contains any character outside the German alphabet, or when no rule fires.

# Concurrency

The engine is a pure, stateless transform. Its only shared data, the affix
and cluster tables, is built once at package initialization and never
mutated, so all functions are safe for concurrent use without locking.
*/
package silben
