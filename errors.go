package textnorm

import "fmt"

// StageError is the single per-stage failure kind. It carries the name of
// the failing stage and the underlying cause. Stage failures propagate
// immediately and abort the remaining pipeline stages; there are no
// partial results.
type StageError struct {
	Stage string
	Cause error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %q: %v", e.Stage, e.Cause)
}

func (e *StageError) Unwrap() error {
	return e.Cause
}

// ProfileError wraps a stage failure with the name of the profile that was
// being applied.
type ProfileError struct {
	Profile string
	Err     error
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("profile %q: %v", e.Profile, e.Err)
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}
