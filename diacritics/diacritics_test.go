package diacritics

import (
	"testing"

	"github.com/npillmayer/textnorm/internal/tracing"
	"github.com/npillmayer/textnorm/locale"
)

func TestRemoveForFrench(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	stage := New()
	ctx := locale.NewContext(locale.French)
	res, err := stage.Apply("café naïve résumé", ctx)
	if err != nil {
		t.Fatalf("diacritic removal failed: %v", err)
	}
	if res.String() != "cafe naive resume" {
		t.Errorf("expected \"cafe naive resume\", got %q", res.String())
	}
	if !res.IsOwned() {
		t.Errorf("changed text should be an owned result")
	}
}

func TestCombiningMarksDropped(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	stage := New()
	ctx := locale.NewContext(locale.French)
	// NFD spelling: e followed by combining acute accent.
	res, err := stage.Apply("cafe\u0301", ctx)
	if err != nil {
		t.Fatalf("diacritic removal failed: %v", err)
	}
	if res.String() != "cafe" {
		t.Errorf("expected combining accent to be dropped, got %q", res.String())
	}
}

// A locale without diacritic tables turns the stage into a guaranteed
// no-op. This is the locale-isolation property: the same input keeps its
// letters under Turkish rules.
func TestTurkishKeepsLetters(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	stage := New()
	ctx := locale.NewContext(locale.Turkish)
	in := "çağrı öğretmen"
	if stage.NeedsApply(in, ctx) {
		t.Errorf("Turkish defines no diacritic tables, stage must not trigger")
	}
	res, err := stage.Apply(in, ctx)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if !res.IsBorrowed() || res.String() != in {
		t.Errorf("expected untouched borrowed input, got %q", res.String())
	}
}

func TestRemoveMapperMatchesApply(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	stage := New()
	ctx := locale.NewContext(locale.French)
	m := stage.Mapper(ctx)
	if m == nil {
		t.Fatalf("diacritic removal should always be fusable")
	}
	in := "déjà vu"
	var out []rune
	for _, r := range in {
		if f, keep := m(r); keep {
			out = append(out, f)
		}
	}
	res, err := stage.Apply(in, ctx)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if string(out) != res.String() {
		t.Errorf("mapper result %q differs from Apply result %q", string(out), res.String())
	}
}
