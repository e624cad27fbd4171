// Package punct implements the punctuation-normalization stage.
//
// Typographic punctuation is mapped to its plain ASCII counterpart:
// curly and angled quotes to straight quotes, the dash family to a
// hyphen-minus, and the horizontal ellipsis to three dots. The ellipsis
// is a 1→3 expansion, which is why this stage never exposes the
// RuneMapper capability and always runs on the allocating path.
package punct

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/textnorm"
	"github.com/npillmayer/textnorm/locale"
)

// simple holds the 1→1 replacements.
var simple = map[rune]rune{
	'‘': '\'', // left single quotation mark
	'’': '\'', // right single quotation mark
	'‚': '\'', // single low-9 quotation mark
	'‹': '\'', // single left-pointing angle quotation mark
	'›': '\'', // single right-pointing angle quotation mark
	'“': '"',  // left double quotation mark
	'”': '"',  // right double quotation mark
	'„': '"',  // double low-9 quotation mark
	'«': '"',  // left-pointing double angle quotation mark
	'»': '"',  // right-pointing double angle quotation mark
	'‐': '-',  // hyphen
	'‑': '-',  // non-breaking hyphen
	'‒': '-',  // figure dash
	'–': '-',  // en dash
	'—': '-',  // em dash
	'―': '-',  // horizontal bar
	'−': '-',  // minus sign
}

// expand holds the replacements that grow the text.
var expand = map[rune]string{
	'…': "...", // horizontal ellipsis
}

// Stage is the punctuation-normalization stage. Stateless, safe for
// concurrent use.
type Stage struct{}

// New creates the punctuation stage.
func New() *Stage {
	return &Stage{}
}

// Name returns "punct".
func (s *Stage) Name() string {
	return "punct"
}

// NeedsApply reports whether text contains typographic punctuation.
func (s *Stage) NeedsApply(text string, ctx *locale.Context) bool {
	for _, r := range text {
		if _, ok := simple[r]; ok {
			return true
		}
		if _, ok := expand[r]; ok {
			return true
		}
	}
	return false
}

// Apply normalizes punctuation. Input without typographic punctuation is
// returned as a borrowed view.
func (s *Stage) Apply(text string, ctx *locale.Context) (textnorm.Result, error) {
	if !s.NeedsApply(text, ctx) {
		return textnorm.Borrowed(text), nil
	}
	var b strings.Builder
	b.Grow(len(text) + expandExcess(text))
	for _, r := range text {
		if to, ok := simple[r]; ok {
			b.WriteRune(to)
			continue
		}
		if to, ok := expand[r]; ok {
			b.WriteString(to)
			continue
		}
		b.WriteRune(r)
	}
	return textnorm.Owned(b.String()), nil
}

func expandExcess(text string) int {
	excess := 0
	for _, r := range text {
		if to, ok := expand[r]; ok {
			excess += len(to) - utf8.RuneLen(r)
		}
	}
	if excess < 0 {
		excess = 0
	}
	return excess
}
