// Package unicodenorm adapts the Unicode canonical normalization forms
// NFC, NFD, NFKC and NFKD to the stage protocol.
//
// The normalization work itself is delegated to golang.org/x/text; this
// package only supplies the safe-skip check and the borrowed-result
// behavior: input already in the target form is returned as a view, with
// no allocation.
//
// The forms can expand or contract character sequences, so the stage
// never exposes the RuneMapper capability.
package unicodenorm

import (
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/textnorm"
	"github.com/npillmayer/textnorm/locale"
)

// Stage normalizes to one Unicode normalization form. Stateless, safe
// for concurrent use.
type Stage struct {
	form norm.Form
	name string
}

// NFC creates a stage normalizing to NFC.
func NFC() *Stage { return &Stage{form: norm.NFC, name: "nfc"} }

// NFD creates a stage normalizing to NFD.
func NFD() *Stage { return &Stage{form: norm.NFD, name: "nfd"} }

// NFKC creates a stage normalizing to NFKC.
func NFKC() *Stage { return &Stage{form: norm.NFKC, name: "nfkc"} }

// NFKD creates a stage normalizing to NFKD.
func NFKD() *Stage { return &Stage{form: norm.NFKD, name: "nfkd"} }

// Name returns the lowercase name of the target form.
func (s *Stage) Name() string {
	return s.name
}

// NeedsApply reports whether text is not yet in the target form.
func (s *Stage) NeedsApply(text string, ctx *locale.Context) bool {
	return !s.form.IsNormalString(text)
}

// Apply normalizes text to the target form. Input already in the form is
// returned as a borrowed view.
func (s *Stage) Apply(text string, ctx *locale.Context) (textnorm.Result, error) {
	if s.form.IsNormalString(text) {
		return textnorm.Borrowed(text), nil
	}
	return textnorm.Owned(s.form.String(text)), nil
}
