package ommin

import "errors"

// ErrOptions is returned when Options (or one of its JSON-unmarshaled
// sub-fields) is malformed; spec.md §7 treats this as a fatal input error,
// same class as a parse failure.
var ErrOptions = errors.New("ommin: invalid options")

// ErrInternal wraps an invariant violation inside the transform pipeline
// that should be unreachable given valid input — a defensive boundary, not
// an expected failure mode.
var ErrInternal = errors.New("ommin: internal error")
