package versrange

import (
	"errors"
	"fmt"
)

// Sentinel errors for syntax-level parse failures. All errors returned by
// this package are caller-input problems; none are retryable.
var (
	// ErrMissingPrefix is returned when a specifier does not start with "vers:".
	ErrMissingPrefix = errors.New(`missing "vers:" prefix`)

	// ErrMissingScheme is returned when the scheme token is empty.
	ErrMissingScheme = errors.New("missing versioning scheme")

	// ErrInvalidScheme is returned when the scheme token is syntactically
	// malformed (not letters, digits and hyphens).
	ErrInvalidScheme = errors.New("invalid versioning scheme")

	// ErrEmptyConstraints is returned when a specifier has no constraints.
	ErrEmptyConstraints = errors.New("empty constraint list")

	// ErrEmptyRange is returned when normalization proves that no version
	// can satisfy the range.
	ErrEmptyRange = errors.New("range matches no versions")
)

// UnsupportedSchemeError is returned when a specifier names a well-formed
// versioning scheme that is not in the registry. It is distinct from
// ErrInvalidScheme: the syntax is recognized, the semantics are not
// implemented.
type UnsupportedSchemeError struct {
	Scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("unsupported versioning scheme %q", e.Scheme)
}

// DuplicateVersionError is returned when two constraints in one range carry
// the identical version string, regardless of their comparators.
type DuplicateVersionError struct {
	Version string
}

func (e *DuplicateVersionError) Error() string {
	return fmt.Sprintf("duplicate version %q in constraint list", e.Version)
}

// InvalidVersionError is returned when a version string fails the
// scheme-specific version grammar, either inside a specifier or as a probe
// passed to a containment check.
type InvalidVersionError struct {
	Scheme  string
	Version string
	Reason  string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid %s version %q: %s", e.Scheme, e.Version, e.Reason)
}
