package unicodenorm

import (
	"testing"

	"github.com/npillmayer/textnorm/internal/tracing"
	"github.com/npillmayer/textnorm/locale"
)

func TestComposeDecompose(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	ctx := locale.NewContext(locale.French)
	decomposed := "cafe\u0301"
	composed := "café"
	nfc := NFC()
	if !nfc.NeedsApply(decomposed, ctx) {
		t.Errorf("decomposed input reported as already NFC")
	}
	res, err := nfc.Apply(decomposed, ctx)
	if err != nil {
		t.Fatalf("NFC failed: %v", err)
	}
	if res.String() != composed {
		t.Errorf("expected NFC %q, got %q", composed, res.String())
	}
	nfd := NFD()
	res, err = nfd.Apply(composed, ctx)
	if err != nil {
		t.Fatalf("NFD failed: %v", err)
	}
	if res.String() != decomposed {
		t.Errorf("expected NFD %q, got %q", decomposed, res.String())
	}
}

func TestCompatibilityForms(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	ctx := locale.NewContext(locale.English)
	// The ligature ﬁ decomposes under compatibility normalization only.
	in := "ﬁle"
	nfc := NFC()
	if nfc.NeedsApply(in, ctx) {
		t.Errorf("ligature is canonical-normal, NFC must not trigger")
	}
	nfkc := NFKC()
	res, err := nfkc.Apply(in, ctx)
	if err != nil {
		t.Fatalf("NFKC failed: %v", err)
	}
	if res.String() != "file" {
		t.Errorf("expected NFKC \"file\", got %q", res.String())
	}
}

func TestNormBorrowsNormalInput(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	ctx := locale.NewContext(locale.English)
	in := "café"
	nfc := NFC()
	if nfc.NeedsApply(in, ctx) {
		t.Errorf("NFC input reported as needing normalization")
	}
	res, err := nfc.Apply(in, ctx)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if !res.IsBorrowed() {
		t.Errorf("expected borrowed pass-through for normal input")
	}
}

func TestStageNames(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	names := map[string]string{
		NFC().Name():  "nfc",
		NFD().Name():  "nfd",
		NFKC().Name(): "nfkc",
		NFKD().Name(): "nfkd",
	}
	for have, want := range names {
		if have != want {
			t.Errorf("expected stage name %q, got %q", want, have)
		}
	}
}
