package validate

import (
	"errors"
	"testing"

	"github.com/npillmayer/textnorm/internal/tracing"
	"github.com/npillmayer/textnorm/locale"
)

func TestValidInput(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	stage := New()
	ctx := locale.NewContext(locale.English)
	if !stage.NeedsApply("anything", ctx) {
		t.Errorf("validation must never be skipped")
	}
	res, err := stage.Apply("héllo 世界", ctx)
	if err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
	if !res.IsBorrowed() {
		t.Errorf("validation must never copy")
	}
}

func TestInvalidInput(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	stage := New()
	ctx := locale.NewContext(locale.English)
	inputs := []struct {
		text   string
		offset int
	}{
		{"\xff", 0},
		{"ab\xc3(", 2},
		{"ok\xf0\x28\x8c\x28", 2},
	}
	for _, inp := range inputs {
		_, err := stage.Apply(inp.text, ctx)
		if err == nil {
			t.Fatalf("malformed input %q accepted", inp.text)
		}
		var ee *EncodingError
		if !errors.As(err, &ee) {
			t.Fatalf("expected an EncodingError, got %T", err)
		}
		if ee.Offset != inp.offset {
			t.Errorf("expected offset %d for %q, got %d", inp.offset, inp.text, ee.Offset)
		}
	}
}
