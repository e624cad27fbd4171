package strip

import (
	"testing"

	"github.com/npillmayer/textnorm/internal/tracing"
	"github.com/npillmayer/textnorm/locale"
)

func TestStripControls(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	stage := NewControls()
	ctx := locale.NewContext(locale.English)
	res, err := stage.Apply("a\x00b\x1Fc\x7Fd", ctx)
	if err != nil {
		t.Fatalf("control removal failed: %v", err)
	}
	if res.String() != "abcd" {
		t.Errorf("expected \"abcd\", got %q", res.String())
	}
	// TAB, LF and CR are text, not noise.
	in := "a\tb\nc\rd"
	if stage.NeedsApply(in, ctx) {
		t.Errorf("TAB/LF/CR must be kept")
	}
}

func TestStripFormat(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	stage := NewFormatControls()
	ctx := locale.NewContext(locale.English)
	// Bidi mark, soft hyphen and BOM are dropped.
	res, err := stage.Apply("a\u200Eb\u00ADc\uFEFFd", ctx)
	if err != nil {
		t.Fatalf("format removal failed: %v", err)
	}
	if res.String() != "abcd" {
		t.Errorf("expected \"abcd\", got %q", res.String())
	}
}

func TestFormatKeepsSegmentationMarker(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	stage := NewFormatControls()
	ctx := locale.NewContext(locale.English)
	in := "a\u200Bb"
	if stage.NeedsApply(in, ctx) {
		t.Errorf("the zero-width space boundary marker must be kept")
	}
	res, err := stage.Apply(in, ctx)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if !res.IsBorrowed() || res.String() != in {
		t.Errorf("expected marker to survive, got %q", res.String())
	}
}

// Joiners carry orthographic meaning in Indic text, so they survive under
// a segmenting locale and are dropped otherwise.
func TestFormatJoinersPerLocale(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	stage := NewFormatControls()
	in := "क्\u200Dत\u200Cx"
	hi := locale.NewContext(locale.Hindi)
	if stage.NeedsApply(in, hi) {
		t.Errorf("hi: joiners must be kept")
	}
	en := locale.NewContext(locale.English)
	res, err := stage.Apply(in, en)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if res.String() != "क्तx" {
		t.Errorf("en: expected joiners to be dropped, got %q", res.String())
	}
}

func TestStripMappers(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	ctrl := NewControls()
	ctx := locale.NewContext(locale.English)
	m := ctrl.Mapper(ctx)
	if m == nil {
		t.Fatalf("control removal should always be fusable")
	}
	if _, keep := m('\x00'); keep {
		t.Errorf("NUL must be dropped")
	}
	if r, keep := m('\t'); !keep || r != '\t' {
		t.Errorf("TAB must pass through")
	}
	fm := NewFormatControls().Mapper(ctx)
	if fm == nil {
		t.Fatalf("format removal should always be fusable")
	}
	if _, keep := fm('\u00AD'); keep {
		t.Errorf("soft hyphen must be dropped")
	}
	if r, keep := fm('\u200B'); !keep || r != '\u200B' {
		t.Errorf("zero-width space must pass through")
	}
}
