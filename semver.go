package versrange

import (
	"github.com/Masterminds/semver/v3"
)

// SemVerScheme is the scheme tag for semantic versions.
const SemVerScheme = "semver"

// SemVer is a semantic version: dotted numeric components with optional
// pre-release and build metadata. Parsing and precedence ordering are
// delegated to github.com/Masterminds/semver; this type adapts them to the
// VersionType contract shared by the npm and semver schemes.
//
// The zero SemVer is only valid as a receiver for Parse, Zero and Scheme;
// real values come from Parse or Zero.
type SemVer struct {
	v *semver.Version
}

// Parse parses a semantic version string. Partial versions such as "1" or
// "1.2" are accepted and coerced to three components.
func (SemVer) Parse(s string) (SemVer, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return SemVer{}, &InvalidVersionError{
			Scheme:  SemVerScheme,
			Version: s,
			Reason:  err.Error(),
		}
	}
	return SemVer{v: v}, nil
}

// Compare orders by semantic version precedence: numeric components compare
// numerically, pre-release tags field by field, build metadata is ignored.
func (s SemVer) Compare(other SemVer) int {
	return s.v.Compare(other.v)
}

// Zero returns version 0.0.0.
func (SemVer) Zero() SemVer {
	return SemVer{v: semver.New(0, 0, 0, "", "")}
}

// Scheme returns "semver".
func (SemVer) Scheme() string {
	return SemVerScheme
}

// String returns the canonical three-part rendering, including pre-release
// and build metadata when present.
func (s SemVer) String() string {
	return s.v.String()
}

var _ VersionType[SemVer] = SemVer{}
