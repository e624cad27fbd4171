// Package diacritics implements the diacritic-removal stage.
//
// The stage is driven entirely by the locale's tables: combining marks
// listed in the locale's spacing-diacritics set are dropped, and
// precomposed letters with an entry in the locale's base map are replaced
// by their base letter (é → e). A locale that defines neither, such as
// Turkish, makes this stage a guaranteed no-op, which is how a
// "search" profile can strip accents for French yet preserve them for
// Turkish.
//
// Both operations map one character to zero or one characters, so the
// stage is always fusable.
package diacritics

import (
	"strings"

	"github.com/npillmayer/textnorm"
	"github.com/npillmayer/textnorm/locale"
)

// Stage is the diacritic-removal stage. Stateless, safe for concurrent
// use.
type Stage struct{}

// New creates the diacritic-removal stage.
func New() *Stage {
	return &Stage{}
}

// Name returns "diacritics".
func (s *Stage) Name() string {
	return "diacritics"
}

// NeedsApply reports whether text contains a removable diacritic or a
// precomposed letter with a base mapping.
func (s *Stage) NeedsApply(text string, ctx *locale.Context) bool {
	e := ctx.Entry
	if len(e.Diacritics) == 0 && len(e.BaseMap) == 0 {
		return false
	}
	for _, r := range text {
		if e.IsDiacritic(r) {
			return true
		}
		if _, ok := e.BaseRune(r); ok {
			return true
		}
	}
	return false
}

// Apply removes diacritics. Input without any is returned as a borrowed
// view.
func (s *Stage) Apply(text string, ctx *locale.Context) (textnorm.Result, error) {
	if !s.NeedsApply(text, ctx) {
		return textnorm.Borrowed(text), nil
	}
	e := ctx.Entry
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if e.IsDiacritic(r) {
			continue
		}
		if base, ok := e.BaseRune(r); ok {
			b.WriteRune(base)
			continue
		}
		b.WriteRune(r)
	}
	return textnorm.Owned(b.String()), nil
}

// Mapper exposes the fusable drop-or-replace mapping. Diacritic removal
// is fusable for every locale.
func (s *Stage) Mapper(ctx *locale.Context) textnorm.MapFn {
	e := ctx.Entry
	return func(r rune) (rune, bool) {
		if e.IsDiacritic(r) {
			return 0, false
		}
		if base, ok := e.BaseRune(r); ok {
			return base, true
		}
		return r, true
	}
}
