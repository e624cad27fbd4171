// Package width implements the width-unification stage.
//
// Fullwidth forms of the ASCII block (ＡＢＣ, １２３, ！？) are mapped to
// their halfwidth counterparts, and the ideographic space U+3000 to an
// ASCII space. The mapping is a pure 1→1 code-point function independent
// of locale and position, so the stage is always fusable.
package width

import (
	"strings"

	"github.com/npillmayer/textnorm"
	"github.com/npillmayer/textnorm/locale"
)

const (
	fullwidthLo      = '！'    // U+FF01, fullwidth !
	fullwidthHi      = '～'    // U+FF5E, fullwidth ~
	ideographicSpace = '　'    // U+3000
	widthDelta       = 0xFEE0 // distance between the fullwidth and ASCII blocks
)

// Stage is the width-unification stage. Stateless, safe for concurrent
// use.
type Stage struct{}

// New creates the width-unification stage.
func New() *Stage {
	return &Stage{}
}

// Name returns "width".
func (s *Stage) Name() string {
	return "width"
}

func mapWidth(r rune) rune {
	if r >= fullwidthLo && r <= fullwidthHi {
		return r - widthDelta
	}
	if r == ideographicSpace {
		return ' '
	}
	return r
}

// NeedsApply reports whether text contains a fullwidth character.
func (s *Stage) NeedsApply(text string, ctx *locale.Context) bool {
	for _, r := range text {
		if mapWidth(r) != r {
			return true
		}
	}
	return false
}

// Apply unifies widths. Input without fullwidth characters is returned as
// a borrowed view.
func (s *Stage) Apply(text string, ctx *locale.Context) (textnorm.Result, error) {
	if !s.NeedsApply(text, ctx) {
		return textnorm.Borrowed(text), nil
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteRune(mapWidth(r))
	}
	return textnorm.Owned(b.String()), nil
}

// Mapper exposes the fusable width mapping; it is available for every
// locale.
func (s *Stage) Mapper(ctx *locale.Context) textnorm.MapFn {
	return func(r rune) (rune, bool) {
		return mapWidth(r), true
	}
}
