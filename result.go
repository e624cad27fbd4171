package textnorm

// Result is a copy-on-write string value: either a zero-cost view into the
// original input or a freshly allocated string. A borrowed Result is
// returned only if its bytes are identical to the input; this is the
// zero-copy guarantee the stage protocol is built around. Go strings are
// immutable, so "borrowing" simply means handing back the input string
// value without allocating a new one; the tag lets callers and tests
// distinguish the two cases.
type Result struct {
	text  string
	owned bool
}

// Borrowed wraps a string that is a view into the original input.
func Borrowed(s string) Result {
	return Result{text: s}
}

// Owned wraps a freshly allocated string.
func Owned(s string) Result {
	return Result{text: s, owned: true}
}

// String returns the result text.
func (r Result) String() string {
	return r.text
}

// IsOwned reports whether the result holds newly allocated storage.
func (r Result) IsOwned() bool {
	return r.owned
}

// IsBorrowed reports whether the result is a view into the input.
func (r Result) IsBorrowed() bool {
	return !r.owned
}
