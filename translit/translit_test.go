package translit

import (
	"testing"

	"github.com/npillmayer/textnorm/internal/tracing"
	"github.com/npillmayer/textnorm/locale"
)

func TestGermanConvention(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	inputs := []struct {
		text string
		want string
	}{
		{"Grüße", "Gruesse"},
		{"Äpfel", "Aepfel"},
		{"Köln", "Koeln"},
		{"Straße", "Strasse"},
	}
	stage := New()
	ctx := locale.NewContext(locale.German)
	for _, inp := range inputs {
		res, err := stage.Apply(inp.text, ctx)
		if err != nil {
			t.Fatalf("transliteration of %q failed: %v", inp.text, err)
		}
		if res.String() != inp.want {
			t.Errorf("expected %q to transliterate to %q, is %q", inp.text, inp.want, res.String())
		}
	}
}

// Outside German the umlaut letters simply lose their mark.
func TestMarkRemovalFallback(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	inputs := []struct {
		text string
		want string
	}{
		{"café", "cafe"},
		{"über", "uber"},
		{"señor", "senor"},
		{"Łódź", "Lodz"},
		{"Œuvre", "OEuvre"},
		{"Ærø", "AEro"},
	}
	stage := New()
	ctx := locale.NewContext(locale.English)
	for _, inp := range inputs {
		res, err := stage.Apply(inp.text, ctx)
		if err != nil {
			t.Fatalf("transliteration of %q failed: %v", inp.text, err)
		}
		if res.String() != inp.want {
			t.Errorf("expected %q to transliterate to %q, is %q", inp.text, inp.want, res.String())
		}
	}
}

// Non-Latin scripts are out of scope for transliteration and must pass
// through untouched.
func TestNonLatinPassesThrough(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	stage := New()
	ctx := locale.NewContext(locale.English)
	in := "北京 Москва"
	res, err := stage.Apply(in, ctx)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if res.String() != in {
		t.Errorf("expected non-Latin text to survive, got %q", res.String())
	}
}

func TestTranslitBorrowsASCII(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	stage := New()
	ctx := locale.NewContext(locale.English)
	in := "plain ascii"
	if stage.NeedsApply(in, ctx) {
		t.Errorf("ASCII input reported as needing transliteration")
	}
	res, err := stage.Apply(in, ctx)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if !res.IsBorrowed() {
		t.Errorf("expected borrowed pass-through")
	}
}
