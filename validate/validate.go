// Package validate implements an optional UTF-8 validation stage.
//
// Validation is not part of the core normalization path: pipelines that
// want it compose this stage like any other. The stage deliberately
// breaks the usual needs-apply economy: NeedsApply always reports true,
// so that a pipeline can never skip validation, and Apply never changes
// the text; it either returns the input as a borrowed view or fails with
// an EncodingError.
package validate

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/textnorm"
	"github.com/npillmayer/textnorm/locale"
)

// EncodingError reports the byte offset of the first invalid UTF-8
// sequence.
type EncodingError struct {
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence at byte offset %d", e.Offset)
}

// Stage is the UTF-8 validation stage. Stateless, safe for concurrent
// use.
type Stage struct{}

// New creates the validation stage.
func New() *Stage {
	return &Stage{}
}

// Name returns "validate_utf8".
func (s *Stage) Name() string {
	return "validate_utf8"
}

// NeedsApply always reports true: validation must never be skipped.
func (s *Stage) NeedsApply(text string, ctx *locale.Context) bool {
	return true
}

// Apply returns the input unchanged as a borrowed view, or an
// EncodingError for malformed input.
func (s *Stage) Apply(text string, ctx *locale.Context) (textnorm.Result, error) {
	if utf8.ValidString(text) {
		return textnorm.Borrowed(text), nil
	}
	offset := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 {
			offset = i
			break
		}
		i += size
	}
	return textnorm.Result{}, &EncodingError{Offset: offset}
}
