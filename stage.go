package textnorm

import (
	"github.com/npillmayer/textnorm/locale"
)

// Stage represents a single text transformation. Stages are stateless and
// safe to share between goroutines; all per-call state lives on the call
// stack of Apply.
//
// NeedsApply reports whether Apply would change text under the given
// locale context. It is bound by a safe-skip contract: it may
// conservatively return true, but it must never return false when Apply
// would produce a different string.
//
// Apply transforms text. It must be idempotent, and it must return a
// borrowed Result whenever its output is byte-identical to its input.
type Stage interface {
	Name() string
	NeedsApply(text string, ctx *locale.Context) bool
	Apply(text string, ctx *locale.Context) (Result, error)
}

// MapFn maps a single rune to zero or one output rune. The boolean return
// is false when the rune is to be dropped from the output.
//
// MapFn is the unit of stage fusion: a chain of MapFns is driven by a
// single loop over the input, writing into a single pre-sized buffer.
type MapFn func(r rune) (rune, bool)

// RuneMapper is a capability some stages expose: their transformation is a
// pure, position-independent per-rune mapping and may therefore participate
// in a fused pipeline.
//
// Mapper returns the mapping function for the given locale context, or nil
// if the stage is not fusable under this locale. Eligibility is a
// per-locale decision: a fold map containing a multi-character expansion,
// or a locale requiring look-ahead, disqualifies the stage and forces the
// allocating Apply path.
type RuneMapper interface {
	Stage
	Mapper(ctx *locale.Context) MapFn
}
