package versrange

import (
	"encoding/json"
	"slices"
	"strings"
)

// versionRange is the scheme-independent view of a concrete generic range,
// used by the dynamic layer for forwarding.
type versionRange interface {
	VersioningScheme() string
	Contains(version string) (bool, error)
	Constraints() []Constraint
	String() string
}

// schemeRegistry is the fixed, case-sensitive table mapping a scheme name to
// the concrete version type its ranges are built over. The npm and semver
// schemes share the semantic-version comparator.
var schemeRegistry = map[string]func(scheme, constraints string) (versionRange, error){
	"npm":    newSchemeRange[SemVer],
	"semver": newSchemeRange[SemVer],
	DebScheme: newSchemeRange[DebVersion],
}

func newSchemeRange[V VersionType[V]](scheme, constraints string) (versionRange, error) {
	return parseGenericConstraints[V](scheme, constraints)
}

// SupportedSchemes returns the registered scheme names in sorted order.
func SupportedSchemes() []string {
	names := make([]string, 0, len(schemeRegistry))
	for name := range schemeRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DynamicVersionRange selects, at parse time, which concrete range type to
// construct based on the scheme name found in the specifier, and forwards
// every operation to it.
type DynamicVersionRange struct {
	inner versionRange
}

// ParseDynamicRange parses a specifier whose scheme is not known until
// runtime. The scheme token is scanned first; a well-formed token missing
// from the registry fails with *UnsupportedSchemeError, which is distinct
// from the malformed-token ErrInvalidScheme.
func ParseDynamicRange(specifier string) (*DynamicVersionRange, error) {
	scheme, constraints, err := splitSpecifier(specifier)
	if err != nil {
		return nil, err
	}
	construct, ok := schemeRegistry[scheme]
	if !ok {
		return nil, &UnsupportedSchemeError{Scheme: scheme}
	}
	inner, err := construct(scheme, constraints)
	if err != nil {
		return nil, err
	}
	return &DynamicVersionRange{inner: inner}, nil
}

// VersioningScheme returns the scheme name of the underlying range.
func (r *DynamicVersionRange) VersioningScheme() string {
	return r.inner.VersioningScheme()
}

// Contains reports whether the candidate version is inside the range,
// parsing it with the same version type the range was built with.
func (r *DynamicVersionRange) Contains(version string) (bool, error) {
	return r.inner.Contains(version)
}

// Constraints returns the normalized constraint projection in ascending
// version order.
func (r *DynamicVersionRange) Constraints() []Constraint {
	return r.inner.Constraints()
}

// String returns the canonical specifier rendering.
func (r *DynamicVersionRange) String() string {
	return r.inner.String()
}

// Equal reports structural equality of scheme name and constraints,
// independent of which concrete type backs either range.
func (r *DynamicVersionRange) Equal(other *DynamicVersionRange) bool {
	if r.VersioningScheme() != other.VersioningScheme() {
		return false
	}
	a, b := r.Constraints(), other.Constraints()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// rangeWire is the structured interchange form: a direct projection of the
// generic range's fields.
type rangeWire struct {
	VersioningScheme string       `json:"versioning_scheme"`
	Constraints      []Constraint `json:"constraints"`
}

// MarshalJSON encodes the range as
// {"versioning_scheme": ..., "constraints": [{"comparator","version"},...]}.
func (r *DynamicVersionRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeWire{
		VersioningScheme: r.VersioningScheme(),
		Constraints:      r.Constraints(),
	})
}

// UnmarshalJSON decodes the structured form by rebuilding the canonical
// specifier text and re-parsing it, so the wire form round-trips through the
// textual rendering and is validated the same way.
func (r *DynamicVersionRange) UnmarshalJSON(data []byte) error {
	var wire rangeWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	parts := make([]string, len(wire.Constraints))
	for i, c := range wire.Constraints {
		parts[i] = c.String()
	}
	parsed, err := ParseDynamicRange("vers:" + wire.VersioningScheme + "/" + strings.Join(parts, "|"))
	if err != nil {
		return err
	}
	*r = *parsed
	return nil
}
