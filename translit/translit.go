/*
Package translit implements the transliteration stage: non-ASCII letters
are rewritten as ASCII approximations.

Transliteration is locale-sensitive where orthographic convention says
so. German umlauts become digraphs (ä → "ae", ö → "oe", ü → "ue"),
whereas the same letters in other languages simply lose their mark
(ä → "a"). A shared table handles the common ligatures and letters with
no decomposition (æ, œ, ø, đ, þ). Everything else falls back to NFD
decomposition with combining marks removed; characters that still are not
ASCII after that are passed through unchanged rather than dropped, so
that non-Latin scripts survive the stage.

Several targets are digraphs, so the stage never exposes the RuneMapper
capability.

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
package translit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/textnorm"
	"github.com/npillmayer/textnorm/locale"
)

// common maps letters that NFD decomposition cannot reduce to ASCII.
var common = map[rune]string{
	'Æ': "AE", 'æ': "ae",
	'Œ': "OE", 'œ': "oe",
	'Ø': "O", 'ø': "o",
	'Đ': "D", 'đ': "d",
	'Þ': "Th", 'þ': "th",
	'Ð': "D", 'ð': "d",
	'Ł': "L", 'ł': "l",
}

// german maps the umlauts and eszett by orthographic convention.
var german = map[rune]string{
	'Ä': "Ae", 'ä': "ae",
	'Ö': "Oe", 'ö': "oe",
	'Ü': "Ue", 'ü': "ue",
	'ß': "ss", 'ẞ': "SS",
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Stage is the transliteration stage. Stateless, safe for concurrent
// use.
type Stage struct{}

// New creates the transliteration stage.
func New() *Stage {
	return &Stage{}
}

// Name returns "translit".
func (s *Stage) Name() string {
	return "translit"
}

func tableFor(ctx *locale.Context) map[rune]string {
	if ctx.Lang.Code == "de" {
		return german
	}
	return nil
}

// NeedsApply reports whether text contains a transliterable character:
// a table entry or a Latin letter that NFD can reduce.
func (s *Stage) NeedsApply(text string, ctx *locale.Context) bool {
	table := tableFor(ctx)
	for _, r := range text {
		if r < utf8.RuneSelf {
			continue
		}
		if _, ok := table[r]; ok {
			return true
		}
		if _, ok := common[r]; ok {
			return true
		}
		if unicode.Is(unicode.Latin, r) {
			return true
		}
	}
	return false
}

// Apply transliterates text. ASCII-only input is returned as a borrowed
// view.
func (s *Stage) Apply(text string, ctx *locale.Context) (textnorm.Result, error) {
	if !s.NeedsApply(text, ctx) {
		return textnorm.Borrowed(text), nil
	}
	table := tableFor(ctx)
	var b strings.Builder
	b.Grow(len(text))
	changed := false
	for _, r := range text {
		if r < utf8.RuneSelf {
			b.WriteByte(byte(r))
			continue
		}
		if to, ok := table[r]; ok {
			b.WriteString(to)
			changed = true
			continue
		}
		if to, ok := common[r]; ok {
			b.WriteString(to)
			changed = true
			continue
		}
		if unicode.Is(unicode.Latin, r) {
			if stripped, _, err := transform.String(stripMarks, string(r)); err == nil && stripped != string(r) {
				b.WriteString(stripped)
				changed = true
				continue
			}
		}
		b.WriteRune(r)
	}
	if !changed {
		return textnorm.Borrowed(text), nil
	}
	return textnorm.Owned(b.String()), nil
}
