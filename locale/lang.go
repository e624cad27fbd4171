/*
Package locale holds the per-language rule tables and the behavior engine
derived from them.

A Lang identifies a language by its short code. The registry of languages
and their rule tables is immutable, generated at build time (see
locale/internal/generator) and initialized once; it is safe for read-only
concurrent access from any number of goroutines.

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
package locale

import (
	"sort"
	"sync"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"

	"github.com/npillmayer/textnorm/internal/tracing"
)

// Lang identifies a language/locale by a short code and a display name.
// Lang values are created from the registry at process start and never
// mutated; equality is by code.
type Lang struct {
	Code string
	Name string
}

func (l Lang) String() string {
	return l.Code
}

// Get looks up a language by its code. The boolean return is false for
// codes not in the registry.
func Get(code string) (Lang, bool) {
	if _, ok := langTable[code]; !ok {
		return Lang{}, false
	}
	return Lang{Code: code, Name: langNames[code]}, true
}

// MustGet is like Get but panics for unknown codes. Intended for
// package-level variables and tests.
func MustGet(code string) Lang {
	l, ok := Get(code)
	if !ok {
		panic("locale: no table for language " + code)
	}
	return l
}

// Codes returns the codes of all registered languages in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(langTable))
	for code := range langTable {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// The registered languages.
var (
	English     = MustGet("en")
	German      = MustGet("de")
	Turkish     = MustGet("tr")
	Azerbaijani = MustGet("az")
	Dutch       = MustGet("nl")
	French      = MustGet("fr")
	Chinese     = MustGet("zh")
	Japanese    = MustGet("ja")
	Korean      = MustGet("ko")
	Hindi       = MustGet("hi")
)

// Context pairs a Lang with its rule table. Contexts are immutable after
// construction, cheap to copy, and safe to share between goroutines for
// any number of concurrent normalization calls.
type Context struct {
	Lang  Lang
	Entry *LangEntry
}

// NewContext creates a Context for the given language. Unknown languages
// fall back to English, which carries no locale-specific rules.
func NewContext(l Lang) *Context {
	e, ok := langTable[l.Code]
	if !ok {
		tracing.P("lang", l.Code).Infof("no table for language, falling back to en")
		l = English
		e = langTable["en"]
	}
	return &Context{Lang: l, Entry: e}
}

// --- Locale detection -------------------------------------------------

var matcherOnce sync.Once
var langMatcher language.Matcher
var matcherCodes []string

func setupMatcher() {
	codes := Codes()
	tags := make([]language.Tag, 0, len(codes))
	ordered := make([]string, 0, len(codes))
	// English first: the matcher uses the first tag as fallback.
	tags = append(tags, language.English)
	ordered = append(ordered, "en")
	for _, code := range codes {
		if code == "en" {
			continue
		}
		tags = append(tags, language.Make(code))
		ordered = append(ordered, code)
	}
	langMatcher = language.NewMatcher(tags)
	matcherCodes = ordered
}

// ContextFromLocale resolves an IETF locale string ("de-AT", "zh-Hans-CN")
// to the Context of the best matching registered language. Unmatched
// locales resolve to English.
func ContextFromLocale(loc string) *Context {
	matcherOnce.Do(setupMatcher)
	tag := language.Make(loc)
	_, index, confidence := langMatcher.Match(tag)
	if confidence == language.No {
		tracing.P("locale", loc).Infof("no matching language table, using en")
		return NewContext(English)
	}
	code := matcherCodes[index]
	tracing.P("locale", loc).Debugf("resolved to language %s", code)
	return NewContext(MustGet(code))
}

// ContextFromEnvironment detects the user's locale from the environment
// and resolves it with ContextFromLocale. Detection failure falls back to
// English.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracing.Errorf(err.Error())
		userLocale = "en-US"
		tracing.Infof("locale detection failed, defaulting to %v", userLocale)
	} else {
		tracing.Infof("detected user locale %v", userLocale)
	}
	return ContextFromLocale(userLocale)
}

func init() {
	for code, e := range langTable {
		e.check(code)
	}
}
