/*
Package script classifies Unicode code-points into coarse script classes.

The classes are deliberately much coarser than ISO 15924 scripts: they
are exactly the distinctions the segmentation logic needs to make. Western
covers Latin text together with ASCII digits and punctuation, CJK covers
Han ideographs and the Japanese kana, Hangul is kept separate because
Korean orthography uses inter-word spaces, SoutheastAsian covers the
scripts written without word boundaries, and Indic covers the Brahmic
scripts with virama-based conjunct formation. Everything alphabetic that
is none of the above (Cyrillic, Greek, Arabic, Hebrew, …) is NonCJKScript;
the remainder is Other.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package script

import "unicode"

// Class is a coarse script category used to decide segmentation
// boundaries.
type Class int8

// The script classes, in no particular order except that Other is the
// zero value.
const (
	Other Class = iota
	Whitespace
	Western
	CJK
	Hangul
	SoutheastAsian
	Indic
	NonCJKScript
)

func (c Class) String() string {
	switch c {
	case Whitespace:
		return "Whitespace"
	case Western:
		return "Western"
	case CJK:
		return "CJK"
	case Hangul:
		return "Hangul"
	case SoutheastAsian:
		return "SoutheastAsian"
	case Indic:
		return "Indic"
	case NonCJKScript:
		return "NonCJKScript"
	}
	return "Other"
}

// RangeTables maps every class except Whitespace, Western and Other to the
// Unicode range tables constituting it.
var RangeTables = map[Class][]*unicode.RangeTable{
	CJK:            {unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Bopomofo},
	Hangul:         {unicode.Hangul},
	SoutheastAsian: {unicode.Thai, unicode.Lao, unicode.Khmer, unicode.Myanmar},
	Indic: {
		unicode.Devanagari, unicode.Bengali, unicode.Gurmukhi,
		unicode.Gujarati, unicode.Oriya, unicode.Tamil,
		unicode.Telugu, unicode.Kannada, unicode.Malayalam,
		unicode.Sinhala,
	},
	NonCJKScript: {
		unicode.Cyrillic, unicode.Greek, unicode.Arabic,
		unicode.Hebrew, unicode.Armenian, unicode.Georgian,
	},
}

// classOrder fixes the lookup order for ClassForRune. CJK first, as East
// Asian text is the dominant non-Latin input for this module.
var classOrder = [...]Class{CJK, Hangul, SoutheastAsian, Indic, NonCJKScript}

// ClassForRune returns the coarse script class of a single code-point.
func ClassForRune(r rune) Class {
	if unicode.IsSpace(r) {
		return Whitespace
	}
	if r < 0x80 {
		// ASCII letters, digits and punctuation all count as Western,
		// so that "Hello!" or "No. 9" never produce internal boundaries.
		if r >= 0x21 {
			return Western
		}
		return Other
	}
	if unicode.Is(unicode.Latin, r) {
		return Western
	}
	for _, c := range classOrder {
		for _, table := range RangeTables[c] {
			if unicode.Is(table, r) {
				return c
			}
		}
	}
	return Other
}

// IsIdeograph reports whether r is a CJK (Han) ideograph. Kana and Hangul
// are not ideographs; the CJK-unigram segmentation rule applies to
// ideographs only.
func IsIdeograph(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// viramas lists the virama code-points of the Brahmic scripts covered by
// class Indic. A virama suppresses the inherent vowel of the preceding
// consonant and signals conjunct formation.
var viramas = [...]rune{
	0x094D, // Devanagari
	0x09CD, // Bengali
	0x0A4D, // Gurmukhi
	0x0ACD, // Gujarati
	0x0B4D, // Oriya
	0x0BCD, // Tamil
	0x0C4D, // Telugu
	0x0CCD, // Kannada
	0x0D4D, // Malayalam
	0x0DCA, // Sinhala
}

// IsVirama reports whether r is a virama of one of the Indic scripts.
func IsVirama(r rune) bool {
	for _, v := range viramas {
		if r == v {
			return true
		}
	}
	return false
}
