package versrange

import "fmt"

// VersionType is the contract a concrete version representation must satisfy
// for the generic range machinery to work with it: parseable from text,
// totally ordered, renderable back to text, possessed of a zero value (the
// version paired with the "*" constraint) and of a scheme-identifying tag.
//
// Implementations are immutable value types. Parse and Zero do not depend on
// the receiver, so both are callable on a zero-valued V; the generic code
// relies on that.
type VersionType[V any] interface {
	// Parse parses a version string according to the scheme's grammar.
	// Failures are reported as *InvalidVersionError.
	Parse(s string) (V, error)

	// Compare returns a negative number, zero or a positive number when the
	// receiver sorts before, equal to or after other. It is a total order.
	Compare(other V) int

	// Zero returns the scheme's default version.
	Zero() V

	// Scheme returns the tag identifying the version format, used in error
	// reporting.
	Scheme() string

	fmt.Stringer
}

// parseVersion parses s with V's grammar without needing an instance.
func parseVersion[V VersionType[V]](s string) (V, error) {
	var zero V
	return zero.Parse(s)
}

// zeroVersion returns V's scheme-defined default version.
func zeroVersion[V VersionType[V]]() V {
	var zero V
	return zero.Zero()
}
