/*
Package pipeline contains the driver for chains of normalization stages.

A Pipeline is an ordered, immutable sequence of stages bound to one
locale Context at construction time. Pipelines are built with a Builder
and are safe to share and reuse concurrently for repeated Normalize
calls, since stages and locale tables are stateless.

Two execution paths exist. When every stage of the chain exposes the
RuneMapper capability for the bound locale, the chain is fused: the
needs-apply checks of all stages are evaluated against the original
input (sound, because fusable stages are position-independent per-rune
maps whose effect is fully determined by the original text), and if
nothing needs to change the input is returned untouched, with zero
allocation. Otherwise the composed mapping functions run in a single
pass over the input into a single output buffer. When at least one stage
is not fusable under the bound locale, the pipeline falls through to the
stage-by-stage path, where each needs-apply check runs against the
current, possibly already transformed text.

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
package pipeline

import (
	"github.com/npillmayer/textnorm"
	"github.com/npillmayer/textnorm/internal/tracing"
	"github.com/npillmayer/textnorm/locale"
)

// Pipeline is an immutable chain of stages bound to a locale context.
type Pipeline struct {
	ctx     *locale.Context
	stages  []textnorm.Stage
	mappers []textnorm.MapFn // non-nil iff the whole chain is fusable
}

// Context returns the locale context the pipeline is bound to.
func (p *Pipeline) Context() *locale.Context {
	return p.ctx
}

// Fused reports whether the pipeline runs on the fused single-pass path.
func (p *Pipeline) Fused() bool {
	return p.mappers != nil
}

// Normalize runs the chain over text and returns a copy-on-write result:
// a borrowed view when no stage changed anything, an owned string
// otherwise.
func (p *Pipeline) Normalize(text string) (textnorm.Result, error) {
	if p.mappers != nil {
		return p.normalizeFused(text), nil
	}
	return p.normalizeSequential(text)
}

// normalizeFused drives the composed per-rune mappers in a single pass.
// The needs-apply checks run against the original input; if none fires,
// the input is returned without any allocation.
func (p *Pipeline) normalizeFused(text string) textnorm.Result {
	any := false
	for _, stage := range p.stages {
		if stage.NeedsApply(text, p.ctx) {
			tracing.P("stage", stage.Name()).Debugf("fused chain triggered")
			any = true
			break
		}
	}
	if !any {
		return textnorm.Borrowed(text)
	}
	buf := borrowBuffer()
	defer releaseBuffer(buf)
	buf.Grow(len(text))
	for _, r := range text {
		keep := true
		for _, m := range p.mappers {
			r, keep = m(r)
			if !keep {
				break
			}
		}
		if keep {
			buf.WriteRune(r)
		}
	}
	return textnorm.Owned(buf.String())
}

// normalizeSequential applies the stages one at a time, each needs-apply
// check running against the current working text.
func (p *Pipeline) normalizeSequential(text string) (textnorm.Result, error) {
	cur := text
	owned := false
	for _, stage := range p.stages {
		if !stage.NeedsApply(cur, p.ctx) {
			continue
		}
		res, err := stage.Apply(cur, p.ctx)
		if err != nil {
			return textnorm.Result{}, &textnorm.StageError{Stage: stage.Name(), Cause: err}
		}
		if res.IsOwned() {
			owned = true
		}
		cur = res.String()
	}
	if !owned {
		return textnorm.Borrowed(text), nil
	}
	return textnorm.Owned(cur), nil
}
