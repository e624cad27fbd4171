// Package strip implements the control-character removal stages.
//
// Controls drops C0/C1 control characters, keeping the common text
// controls TAB, LF and CR. FormatControls drops Unicode format
// characters (category Cf: bidi marks, soft hyphen, BOM), keeping the
// zero-width space used as a segmentation marker and, for locales with
// segmentation rules, the zero-width joiner and non-joiner that carry
// orthographic meaning in Indic text.
//
// Both stages map each character to zero or one characters and expose the
// RuneMapper capability.
package strip

import (
	"strings"
	"unicode"

	"github.com/npillmayer/textnorm"
	"github.com/npillmayer/textnorm/locale"
)

const (
	zwsp = '\u200B' // zero-width space
	zwnj = '\u200C' // zero-width non-joiner
	zwj  = '\u200D' // zero-width joiner
)

// --- Control characters -----------------------------------------------

// Controls is the control-character removal stage.
type Controls struct{}

// NewControls creates the control-character removal stage.
func NewControls() *Controls {
	return &Controls{}
}

// Name returns "strip_controls".
func (s *Controls) Name() string {
	return "strip_controls"
}

func dropControl(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return unicode.IsControl(r)
}

// NeedsApply reports whether text contains a removable control character.
func (s *Controls) NeedsApply(text string, ctx *locale.Context) bool {
	for _, r := range text {
		if dropControl(r) {
			return true
		}
	}
	return false
}

// Apply removes control characters. Clean input is returned as a borrowed
// view.
func (s *Controls) Apply(text string, ctx *locale.Context) (textnorm.Result, error) {
	if !s.NeedsApply(text, ctx) {
		return textnorm.Borrowed(text), nil
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !dropControl(r) {
			b.WriteRune(r)
		}
	}
	return textnorm.Owned(b.String()), nil
}

// Mapper exposes the fusable drop mapping; available for every locale.
func (s *Controls) Mapper(ctx *locale.Context) textnorm.MapFn {
	return func(r rune) (rune, bool) {
		if dropControl(r) {
			return 0, false
		}
		return r, true
	}
}

// --- Format controls --------------------------------------------------

// FormatControls is the format-character removal stage.
type FormatControls struct{}

// NewFormatControls creates the format-character removal stage.
func NewFormatControls() *FormatControls {
	return &FormatControls{}
}

// Name returns "strip_format".
func (s *FormatControls) Name() string {
	return "strip_format"
}

func dropFormat(r rune, keepJoiners bool) bool {
	if r == zwsp {
		return false
	}
	if keepJoiners && (r == zwj || r == zwnj) {
		return false
	}
	return unicode.Is(unicode.Cf, r)
}

// NeedsApply reports whether text contains a removable format character.
func (s *FormatControls) NeedsApply(text string, ctx *locale.Context) bool {
	keep := ctx.Entry.NeedsSegmentation
	for _, r := range text {
		if dropFormat(r, keep) {
			return true
		}
	}
	return false
}

// Apply removes format characters. Clean input is returned as a borrowed
// view.
func (s *FormatControls) Apply(text string, ctx *locale.Context) (textnorm.Result, error) {
	if !s.NeedsApply(text, ctx) {
		return textnorm.Borrowed(text), nil
	}
	keep := ctx.Entry.NeedsSegmentation
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !dropFormat(r, keep) {
			b.WriteRune(r)
		}
	}
	return textnorm.Owned(b.String()), nil
}

// Mapper exposes the fusable drop mapping; available for every locale.
func (s *FormatControls) Mapper(ctx *locale.Context) textnorm.MapFn {
	keep := ctx.Entry.NeedsSegmentation
	return func(r rune) (rune, bool) {
		if dropFormat(r, keep) {
			return 0, false
		}
		return r, true
	}
}
