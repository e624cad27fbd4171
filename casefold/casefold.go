/*
Package casefold implements the case-folding stage.

Folding is case-insensitive canonicalization, as opposed to strict
lowercasing: a fold may expand a character to several (German ß → "ss"),
and it may be context-sensitive (Dutch "IJ" → "ij", requiring one
character of look-ahead). Locales without fold rules fall back to plain
Unicode lowercasing, with a byte-wise fast path for pure ASCII input.

The stage exposes the RuneMapper capability for locales whose fold map is
entirely 1→1 and which require no look-ahead. This makes case folding
fusable for English and Turkish, but not for German or Dutch.

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
package casefold

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/textnorm"
	"github.com/npillmayer/textnorm/locale"
)

// Stage is the case-folding stage. It is stateless and safe for
// concurrent use.
type Stage struct{}

// New creates the case-folding stage.
func New() *Stage {
	return &Stage{}
}

// Name returns "casefold".
func (s *Stage) Name() string {
	return "casefold"
}

// NeedsApply reports whether any character of text would change under the
// locale's fold rules or Unicode lowercasing.
func (s *Stage) NeedsApply(text string, ctx *locale.Context) bool {
	e := ctx.Entry
	for _, r := range text {
		if e.NeedsCaseFold(r) {
			return true
		}
	}
	return false
}

// Apply folds text. Already-folded input is returned as a borrowed view.
func (s *Stage) Apply(text string, ctx *locale.Context) (textnorm.Result, error) {
	if !s.NeedsApply(text, ctx) {
		return textnorm.Borrowed(text), nil
	}
	e := ctx.Entry
	if len(e.FoldMap) == 0 {
		return textnorm.Owned(lowercase(text)), nil
	}
	var b strings.Builder
	b.Grow(len(text) + foldExcess(text, e))
	if e.RequiresPeekAhead {
		foldWithPeek(&b, text, e)
	} else {
		foldPerChar(&b, text, e)
	}
	return textnorm.Owned(b.String()), nil
}

// Mapper exposes the fusable per-rune fold for locales without
// multi-character expansions and without peek-ahead rules.
func (s *Stage) Mapper(ctx *locale.Context) textnorm.MapFn {
	e := ctx.Entry
	if !e.Fusable {
		return nil
	}
	return func(r rune) (rune, bool) {
		f, _ := e.FoldRune(r)
		return f, true
	}
}

// lowercase is the no-fold-rules path: Unicode lowercasing with an
// ASCII-only byte path.
func lowercase(text string) string {
	ascii := true
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		b := make([]byte, len(text))
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			b[i] = c
		}
		return string(b)
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// foldPerChar applies the per-character fold map, falling back to Unicode
// lowercase for unmapped characters.
func foldPerChar(b *strings.Builder, text string, e *locale.LangEntry) {
	for _, r := range text {
		if to, ok := e.FoldString(r); ok {
			b.WriteString(to)
			continue
		}
		f, _ := e.FoldRune(r)
		b.WriteRune(f)
	}
}

// foldWithPeek scans with a one-character look-ahead: on a peek-pair match
// the replacement is emitted and both characters are consumed; otherwise
// the per-character fold applies.
func foldWithPeek(b *strings.Builder, text string, e *locale.LangEntry) {
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if i+size < len(text) {
			next, nsize := utf8.DecodeRuneInString(text[i+size:])
			if repl, ok := e.PeekAheadFold(r, next); ok {
				b.WriteString(repl)
				i += size + nsize
				continue
			}
		}
		if to, ok := e.FoldString(r); ok {
			b.WriteString(to)
		} else {
			f, _ := e.FoldRune(r)
			b.WriteRune(f)
		}
		i += size
	}
}

// foldExcess pre-computes the extra bytes contributed by multi-character
// fold targets, so the output buffer never has to grow.
func foldExcess(text string, e *locale.LangEntry) int {
	excess := 0
	for _, r := range text {
		if to, ok := e.FoldString(r); ok {
			excess += len(to) - utf8.RuneLen(r)
		}
	}
	if excess < 0 {
		excess = 0
	}
	return excess
}
