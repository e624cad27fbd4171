/*
Package textnorm is about locale-aware normalization of Unicode text.

Description

Given raw Unicode text and a target language, textnorm produces a
canonicalized string: case-folded, diacritic-reduced, script-segmented,
width-unified and whitespace-collapsed. The result is suitable for search
indexing, tokenization or display. A central goal of the design is to avoid
allocation whenever the input already is in canonical form.

Normalization is organized as a chain of stages. A stage is a small,
stateless transformation with two operations: a cheap check whether the
stage would change a given text at all, and the transformation itself. The
check obeys a safe-skip contract: it may err on the side of caution and
report work where none is needed, but it must never report "nothing to do"
when the transformation would in fact alter the text. Transformations are
idempotent and return a borrowed view of their input whenever the output is
byte-identical to it (see type Result).

Stages whose effect is a pure per-character mapping may additionally expose
the RuneMapper capability. A pipeline whose stages all expose this
capability for the active locale is fused: the whole chain runs as a single
pass over the input with a single output allocation. Whether a stage is
fusable is a per-locale decision, not a per-stage one. Case folding, for
instance, fuses for English and Turkish but not for German, where ß expands
to "ss", nor for Dutch, where folding "IJ" requires one character of
look-ahead.

The per-locale behavior itself (fold maps, diacritic sets, peek-ahead
pairs, segmentation rules) lives in package locale. Concrete stages live in
their own sub-packages: casefold, diacritics, segword, whitespace, width,
punct, strip, translit, unicodenorm and validate. Package pipeline contains
the driver, the builder and named profiles.

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
package textnorm
