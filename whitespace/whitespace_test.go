package whitespace

import (
	"testing"

	"github.com/npillmayer/textnorm/internal/tracing"
	"github.com/npillmayer/textnorm/locale"
)

func TestDefaultMode(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	inputs := []struct {
		text string
		want string
	}{
		{"  hello\u00A0\u00A0world  ", "hello world"},
		{"hello   world", "hello world"},
		{"\t hello \n", "hello"},
		{"hello world", "hello world"},
		{"", ""},
		{"   ", ""},
	}
	stage := Default()
	ctx := locale.NewContext(locale.English)
	for _, inp := range inputs {
		res, err := stage.Apply(inp.text, ctx)
		if err != nil {
			t.Fatalf("whitespace normalization of %q failed: %v", inp.text, err)
		}
		if res.String() != inp.want {
			t.Errorf("expected %q to normalize to %q, is %q", inp.text, inp.want, res.String())
		}
	}
}

func TestCollapseOnly(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	stage := New(Options{Collapse: true})
	ctx := locale.NewContext(locale.English)
	res, err := stage.Apply("  a \t b  ", ctx)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if res.String() != " a b " {
		t.Errorf("expected \" a b \", got %q", res.String())
	}
	// A collapse pass also canonicalizes single non-space whitespace chars.
	res, err = stage.Apply("a\tb", ctx)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if res.String() != "a b" {
		t.Errorf("expected tab to become a space, got %q", res.String())
	}
}

func TestTrimOnly(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	stage := New(Options{Trim: true})
	ctx := locale.NewContext(locale.English)
	res, err := stage.Apply("  a   b  ", ctx)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if res.String() != "a   b" {
		t.Errorf("expected inner run to survive, got %q", res.String())
	}
}

// The Unicode switch only widens what counts as whitespace; with both
// operations off the stage does nothing at all.
func TestUnicodeAloneIsNoOp(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	stage := New(Options{Unicode: true})
	ctx := locale.NewContext(locale.English)
	in := "  a\u00A0b  "
	if stage.NeedsApply(in, ctx) {
		t.Errorf("unicode switch alone must not trigger the stage")
	}
	res, err := stage.Apply(in, ctx)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if !res.IsBorrowed() {
		t.Errorf("expected untouched borrowed input")
	}
}

func TestNonBreakingSpaceNeedsUnicode(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	ctx := locale.NewContext(locale.English)
	ascii := New(Options{Collapse: true, Trim: true})
	in := "a\u00A0b"
	if ascii.NeedsApply(in, ctx) {
		t.Errorf("NBSP must not count as whitespace without the unicode switch")
	}
	uni := Default()
	res, err := uni.Apply(in, ctx)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if res.String() != "a b" {
		t.Errorf("expected NBSP to collapse to a space, got %q", res.String())
	}
}

func TestNeedsApplyAgreesWithApply(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	stage := Default()
	ctx := locale.NewContext(locale.English)
	inputs := []string{
		"hello world", " x", "x ", "x  y", "x\ty", "", " ", "a b",
	}
	for _, in := range inputs {
		res, err := stage.Apply(in, ctx)
		if err != nil {
			t.Fatalf("apply of %q failed: %v", in, err)
		}
		changed := res.String() != in
		if changed != stage.NeedsApply(in, ctx) {
			t.Errorf("needs-apply and apply disagree for %q", in)
		}
		if !changed && res.IsOwned() {
			t.Errorf("unchanged input %q must be borrowed", in)
		}
	}
}
