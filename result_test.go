package textnorm

import (
	"errors"
	"testing"

	"github.com/npillmayer/textnorm/internal/tracing"
)

func TestResultTags(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	in := "hello"
	b := Borrowed(in)
	if !b.IsBorrowed() || b.IsOwned() {
		t.Errorf("borrowed result reports owned")
	}
	if b.String() != in {
		t.Errorf("borrowed result changed text to %q", b.String())
	}
	o := Owned("world")
	if !o.IsOwned() || o.IsBorrowed() {
		t.Errorf("owned result reports borrowed")
	}
	if o.String() != "world" {
		t.Errorf("owned result changed text to %q", o.String())
	}
}

func TestResultZeroValue(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	var r Result
	if r.String() != "" || r.IsOwned() {
		t.Errorf("zero result should be an empty borrowed view")
	}
}

func TestStageErrorUnwrap(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	cause := errors.New("boom")
	err := &StageError{Stage: "casefold", Cause: cause}
	if !errors.Is(err, cause) {
		t.Errorf("stage error does not unwrap to its cause")
	}
	if err.Error() != `stage "casefold": boom` {
		t.Errorf("unexpected stage error message %q", err.Error())
	}
}

func TestProfileErrorUnwrap(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	cause := errors.New("boom")
	stageErr := &StageError{Stage: "validate_utf8", Cause: cause}
	err := &ProfileError{Profile: "search", Err: stageErr}
	if !errors.Is(err, cause) {
		t.Errorf("profile error does not unwrap through the stage error")
	}
	var se *StageError
	if !errors.As(err, &se) || se.Stage != "validate_utf8" {
		t.Errorf("profile error does not expose the stage error")
	}
}
