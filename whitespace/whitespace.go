// Package whitespace implements the whitespace-normalization stage.
//
// The stage is configured by three independent switches: collapse runs of
// consecutive whitespace into a single replacement character, trim
// leading and trailing whitespace, and treat non-ASCII Unicode whitespace
// (NO-BREAK SPACE and friends) the same as ASCII whitespace. The Unicode
// switch is a modifier, not an operation of its own: it only changes what
// counts as whitespace for the other two and does nothing by itself.
//
// Transformation is a single forward pass with at most one allocation.
// Pure ASCII input takes a byte-wise fast path; the general path buffers
// the pending whitespace run (typically no more than a handful of runes,
// stack-resident) and flushes it when a non-whitespace character arrives.
package whitespace

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/textnorm"
	"github.com/npillmayer/textnorm/locale"
)

// replacement is the character a collapsed whitespace run is replaced
// with.
const replacement = ' '

// Options configure the stage.
type Options struct {
	Collapse bool // collapse runs of whitespace into one replacement char
	Trim     bool // drop leading and trailing whitespace
	Unicode  bool // count non-ASCII Unicode whitespace as whitespace
}

// Stage is the whitespace-normalization stage. The options are fixed at
// construction; the stage itself is stateless and safe for concurrent
// use.
type Stage struct {
	opts Options
}

// New creates a whitespace stage with the given options.
func New(opts Options) *Stage {
	return &Stage{opts: opts}
}

// Default creates the full-mode stage: collapse, trim and Unicode
// whitespace handling all enabled.
func Default() *Stage {
	return New(Options{Collapse: true, Trim: true, Unicode: true})
}

// Name returns "whitespace".
func (s *Stage) Name() string {
	return "whitespace"
}

func (s *Stage) isSpace(r rune) bool {
	if r < utf8.RuneSelf {
		switch r {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return true
		}
		return false
	}
	return s.opts.Unicode && unicode.IsSpace(r)
}

// NeedsApply reports whether the pass would change text: a leading or
// trailing run under trimming, a run of two or more under collapsing, or
// any whitespace character that is not the replacement itself under
// collapsing.
func (s *Stage) NeedsApply(text string, ctx *locale.Context) bool {
	if !s.opts.Collapse && !s.opts.Trim {
		return false
	}
	run := 0
	first := true
	for _, r := range text {
		if s.isSpace(r) {
			run++
			if s.opts.Trim && first {
				return true
			}
			if s.opts.Collapse && (run > 1 || r != replacement) {
				return true
			}
			continue
		}
		run = 0
		first = false
	}
	return s.opts.Trim && run > 0
}

// Apply normalizes whitespace. Already-normalized input is returned as a
// borrowed view.
func (s *Stage) Apply(text string, ctx *locale.Context) (textnorm.Result, error) {
	if !s.NeedsApply(text, ctx) {
		return textnorm.Borrowed(text), nil
	}
	if isASCII(text) {
		return textnorm.Owned(s.applyASCII(text)), nil
	}
	return textnorm.Owned(s.applyRunes(text)), nil
}

func isASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// applyASCII operates on raw bytes.
func (s *Stage) applyASCII(text string) string {
	b := make([]byte, 0, len(text))
	pending := 0
	atStart := true
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r' {
			pending++
			continue
		}
		if pending > 0 {
			if atStart && s.opts.Trim {
				// leading run suppressed
			} else if s.opts.Collapse {
				b = append(b, replacement)
			} else {
				b = append(b, text[i-pending:i]...)
			}
			pending = 0
		}
		b = append(b, c)
		atStart = false
	}
	if pending > 0 && !s.opts.Trim {
		if s.opts.Collapse {
			b = append(b, replacement)
		} else {
			b = append(b, text[len(text)-pending:]...)
		}
	}
	return string(b)
}

// applyRunes is the general path. The pending whitespace run is buffered
// in a small stack-resident array and flushed when a non-whitespace
// character is encountered.
func (s *Stage) applyRunes(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	var runbuf [8]rune
	pending := runbuf[:0]
	atStart := true
	for _, r := range text {
		if s.isSpace(r) {
			pending = append(pending, r)
			continue
		}
		if len(pending) > 0 {
			if atStart && s.opts.Trim {
				// leading run suppressed
			} else if s.opts.Collapse {
				b.WriteRune(replacement)
			} else {
				for _, w := range pending {
					b.WriteRune(w)
				}
			}
			pending = pending[:0]
		}
		b.WriteRune(r)
		atStart = false
	}
	if len(pending) > 0 && !s.opts.Trim {
		if s.opts.Collapse {
			b.WriteRune(replacement)
		} else {
			for _, w := range pending {
				b.WriteRune(w)
			}
		}
	}
	return b.String()
}
