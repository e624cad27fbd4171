package locale

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/textnorm/script"
)

// SegmentRule is a named boundary rule enabling a segmentation behavior
// for a locale.
type SegmentRule uint8

// Boundary rules. WesternToScript and ScriptToWestern enable boundary
// insertion at directional transitions between Western text and another
// script. CJKIdeographUnigram additionally separates every pair of
// consecutive ideographs; Chinese enables it, Japanese and Korean do not.
const (
	WesternToScript SegmentRule = 1 << iota
	ScriptToWestern
	CJKIdeographUnigram
)

// RunePair is a 1→1 character mapping entry.
type RunePair struct {
	From rune
	To   rune
}

// FoldEntry maps a character to its case-fold target, which may be more
// than one character long (ß → "ss").
type FoldEntry struct {
	From rune
	To   string
}

// PeekPair is a two-character context-sensitive fold rule: when First is
// immediately followed by Second, both are replaced by Repl.
type PeekPair struct {
	First  rune
	Second rune
	Repl   string
}

// LangEntry holds the immutable per-language rule tables. Entries are
// produced by the build-time table generator, owned by the registry for
// the process lifetime and only ever read; no locking is needed for
// concurrent use.
//
// All maps are kept sorted by their source rune; lookups use binary
// search.
type LangEntry struct {
	CaseMap    []RunePair  // strict lowercasing overrides, always 1→1
	FoldMap    []FoldEntry // case-insensitive folds, possibly 1→N
	BaseMap    []RunePair  // precomposed letter → base letter
	Diacritics []rune      // removable combining-mark code-points, sorted
	PeekPairs  []PeekPair  // two-character fold rules, sorted by (First, Second)
	Rules      SegmentRule // enabled boundary rules

	// Flags derived once at table-build time.
	UnigramCJK        bool // CJKIdeographUnigram is enabled
	RequiresPeekAhead bool // PeekPairs is non-empty
	NeedsSegmentation bool // Rules is non-empty
	Fusable           bool // no 1→N folds and no peek-ahead
}

// --- Case folding -----------------------------------------------------

func (e *LangEntry) foldAt(r rune) (FoldEntry, bool) {
	i := sort.Search(len(e.FoldMap), func(i int) bool {
		return e.FoldMap[i].From >= r
	})
	if i < len(e.FoldMap) && e.FoldMap[i].From == r {
		return e.FoldMap[i], true
	}
	return FoldEntry{}, false
}

// NeedsCaseFold reports whether r would change under case folding: it is
// either in the locale's fold set or its Unicode lowercase differs from
// itself.
func (e *LangEntry) NeedsCaseFold(r rune) bool {
	if _, ok := e.foldAt(r); ok {
		return true
	}
	return unicode.ToLower(r) != r
}

// FoldRune folds a single character. If the locale maps r to a
// multi-character string, the boolean return is false and the caller must
// use the allocating path (see FoldString). Characters absent from the
// fold map fall back to their Unicode lowercase.
func (e *LangEntry) FoldRune(r rune) (rune, bool) {
	if f, ok := e.foldAt(r); ok {
		if utf8.RuneCountInString(f.To) == 1 {
			t, _ := utf8.DecodeRuneInString(f.To)
			return t, true
		}
		return r, false
	}
	return unicode.ToLower(r), true
}

// FoldString returns the locale's fold target for r when that target is
// longer than one character. Single-character and absent folds report
// false; they are served by FoldRune.
func (e *LangEntry) FoldString(r rune) (string, bool) {
	if f, ok := e.foldAt(r); ok && utf8.RuneCountInString(f.To) > 1 {
		return f.To, true
	}
	return "", false
}

// PeekAheadFold consults the locale's two-character fold rules for the
// pair (curr, next). An exact pair match wins. As a secondary heuristic,
// if curr and next independently fold to the same multi-character string,
// that string is treated as a peek match as well. The heuristic is a
// narrow fallback kept for forward compatibility; no shipped locale
// exercises it.
func (e *LangEntry) PeekAheadFold(curr, next rune) (string, bool) {
	i := sort.Search(len(e.PeekPairs), func(i int) bool {
		p := e.PeekPairs[i]
		return p.First > curr || (p.First == curr && p.Second >= next)
	})
	if i < len(e.PeekPairs) {
		p := e.PeekPairs[i]
		if p.First == curr && p.Second == next {
			return p.Repl, true
		}
	}
	if f1, ok1 := e.FoldString(curr); ok1 {
		if f2, ok2 := e.FoldString(next); ok2 && f1 == f2 {
			return f1, true
		}
	}
	return "", false
}

// Lower returns the strict lowercase of r, honoring the locale's case-map
// overrides (Turkish I → ı).
func (e *LangEntry) Lower(r rune) rune {
	i := sort.Search(len(e.CaseMap), func(i int) bool {
		return e.CaseMap[i].From >= r
	})
	if i < len(e.CaseMap) && e.CaseMap[i].From == r {
		return e.CaseMap[i].To
	}
	return unicode.ToLower(r)
}

// --- Diacritics -------------------------------------------------------

// IsDiacritic reports whether r is in the locale's set of removable
// spacing diacritics.
func (e *LangEntry) IsDiacritic(r rune) bool {
	i := sort.Search(len(e.Diacritics), func(i int) bool {
		return e.Diacritics[i] >= r
	})
	return i < len(e.Diacritics) && e.Diacritics[i] == r
}

// ContainsDiacritics reports whether any character of s is in the
// locale's diacritic set.
func (e *LangEntry) ContainsDiacritics(s string) bool {
	if len(e.Diacritics) == 0 {
		return false
	}
	for _, r := range s {
		if e.IsDiacritic(r) {
			return true
		}
	}
	return false
}

// BaseRune maps a precomposed letter to its base letter, if the locale
// defines such a mapping (é → e for French).
func (e *LangEntry) BaseRune(r rune) (rune, bool) {
	i := sort.Search(len(e.BaseMap), func(i int) bool {
		return e.BaseMap[i].From >= r
	})
	if i < len(e.BaseMap) && e.BaseMap[i].From == r {
		return e.BaseMap[i].To, true
	}
	return r, false
}

// --- Segmentation -----------------------------------------------------

// NeedsBoundaryBetween decides whether a word boundary belongs between two
// adjacent characters. Whitespace never produces a boundary, nor does a
// pair within the same script class. Transitions between Western text and
// another script produce a boundary only if the locale enables the
// matching directional rule. Class Other is neutral on either side. Any
// remaining script-class mismatch always produces a boundary.
func (e *LangEntry) NeedsBoundaryBetween(prev, curr rune) bool {
	pc := script.ClassForRune(prev)
	cc := script.ClassForRune(curr)
	if pc == script.Whitespace || cc == script.Whitespace {
		return false
	}
	if pc == cc {
		return false
	}
	if pc == script.Other || cc == script.Other {
		return false
	}
	if pc == script.Western {
		return e.Rules&WesternToScript != 0
	}
	if cc == script.Western {
		return e.Rules&ScriptToWestern != 0
	}
	return true
}

// --- Sanity -----------------------------------------------------------

// check verifies the table invariants: maps sorted by source rune and the
// derived flags consistent with the rule data. The generator establishes
// these invariants; check guards against hand-edited tables. It panics on
// violation, as a broken table is a build defect, not a runtime
// condition.
func (e *LangEntry) check(code string) {
	sorted := sort.SliceIsSorted(e.FoldMap, func(i, j int) bool {
		return e.FoldMap[i].From < e.FoldMap[j].From
	})
	if !sorted {
		panic("locale: fold map of " + code + " is not sorted")
	}
	multi := false
	for _, f := range e.FoldMap {
		if utf8.RuneCountInString(f.To) > 1 {
			multi = true
		}
	}
	if e.Fusable && (multi || e.RequiresPeekAhead) {
		panic("locale: entry for " + code + " flagged fusable but has expansions")
	}
	if e.RequiresPeekAhead != (len(e.PeekPairs) > 0) {
		panic("locale: peek-ahead flag of " + code + " inconsistent")
	}
	if e.NeedsSegmentation != (e.Rules != 0) {
		panic("locale: segmentation flag of " + code + " inconsistent")
	}
	if strings.Contains(code, " ") {
		panic("locale: malformed code " + code)
	}
}
