/*
Package segword implements script-aware word segmentation.

Segmentation here is rule- and script-boundary based, not dictionary
based. A single left-to-right scan tracks the previous non-whitespace
character; on every new character the locale's boundary rules decide
whether a separator belongs between the two:

▪︎ transitions between Western text and another script insert an ordinary
space, if the locale enables the matching directional rule;

▪︎ for Chinese, the CJK-unigram rule additionally inserts a space between
every pair of consecutive Han ideographs. Japanese and Korean deliberately
do not enable this rule, matching how each language's search ecosystems
expect tokenization to behave;

▪︎ in Indic scripts a virama followed by another Indic consonant marks a
conjunct; a zero-width space is inserted there so that downstream
tokenizers can split conjunct clusters. For Hindi/Devanagari a small
fixed set of consonants (र, य, व, ह) forms mandatory non-breaking
conjuncts and suppresses the boundary. This is a deliberate linguistic
heuristic for Devanagari, not a general Indic rule.

Whitespace and zero-width joiners pass through without contributing to
boundary decisions.

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
package segword

import (
	"strings"
	"unicode"

	"github.com/npillmayer/textnorm"
	"github.com/npillmayer/textnorm/internal/tracing"
	"github.com/npillmayer/textnorm/locale"
	"github.com/npillmayer/textnorm/script"
)

const (
	zwsp = '\u200B' // zero-width space, the conjunct boundary marker
	zwj  = '\u200D' // zero-width joiner, passes through
)

// devanagariConjuncts are the consonants that form mandatory non-breaking
// conjuncts in Devanagari orthography. A virama followed by one of these
// never receives a boundary under the Hindi locale.
var devanagariConjuncts = [...]rune{'र', 'य', 'व', 'ह'}

func isConjunctConsonant(r rune) bool {
	for _, c := range devanagariConjuncts {
		if r == c {
			return true
		}
	}
	return false
}

// Stage is the word-segmentation stage. Stateless, safe for concurrent
// use. It does not expose the RuneMapper capability: boundary insertion
// depends on character context and can never be a pure per-rune map.
type Stage struct{}

// New creates the segmentation stage.
func New() *Stage {
	return &Stage{}
}

// Name returns "segword".
func (s *Stage) Name() string {
	return "segword"
}

// NeedsApply reports whether the scan would insert at least one boundary.
// Locales without segmentation rules never need this stage.
func (s *Stage) NeedsApply(text string, ctx *locale.Context) bool {
	if !ctx.Entry.NeedsSegmentation {
		return false
	}
	return scan(text, ctx, nil)
}

// Apply inserts boundaries. Input without any boundary positions is
// returned as a borrowed view.
func (s *Stage) Apply(text string, ctx *locale.Context) (textnorm.Result, error) {
	if !ctx.Entry.NeedsSegmentation {
		return textnorm.Borrowed(text), nil
	}
	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	if !scan(text, ctx, &b) {
		return textnorm.Borrowed(text), nil
	}
	tracing.P("lang", ctx.Lang.Code).Debugf("segmented %d → %d bytes", len(text), b.Len())
	return textnorm.Owned(b.String()), nil
}

// scan performs the single left-to-right pass. With a nil builder it only
// answers whether any boundary would be inserted; with a builder it also
// produces the output. Returns true if at least one boundary was found.
func scan(text string, ctx *locale.Context, b *strings.Builder) bool {
	e := ctx.Entry
	hindi := ctx.Lang.Code == "hi"
	inserted := false
	var prev rune
	havePrev := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			// An existing separator; nothing to decide here.
			havePrev = false
			if b != nil {
				b.WriteRune(r)
			}
			continue
		}
		if r == zwj {
			// An explicit join request; it passes through and clears the
			// pending state so no boundary is forced across it.
			havePrev = false
			if b != nil {
				b.WriteRune(r)
			}
			continue
		}
		if havePrev {
			if boundary, marker := boundaryBetween(e, hindi, prev, r); boundary {
				inserted = true
				if b == nil {
					return true
				}
				b.WriteRune(marker)
			}
		}
		if b != nil {
			b.WriteRune(r)
		}
		prev = r
		havePrev = true
	}
	return inserted
}

// boundaryBetween decides whether a separator belongs between prev and
// curr, and which marker to use: a zero-width space for virama-driven
// conjunct boundaries, an ordinary space everywhere else.
func boundaryBetween(e *locale.LangEntry, hindi bool, prev, curr rune) (bool, rune) {
	if script.IsVirama(prev) && script.ClassForRune(curr) == script.Indic {
		if hindi && isConjunctConsonant(curr) {
			return false, 0
		}
		return true, zwsp
	}
	if e.UnigramCJK && script.IsIdeograph(prev) && script.IsIdeograph(curr) {
		return true, ' '
	}
	if e.NeedsBoundaryBetween(prev, curr) {
		return true, ' '
	}
	return false, 0
}
