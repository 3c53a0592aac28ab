package versrange

import (
	"errors"
	"net/url"
	"slices"
	"strings"
)

// GenericVersionRange is an ordered, normalized list of constraints over one
// concrete version type, interpreted as a logical AND. After construction
// the constraints are sorted ascending by version, free of duplicate
// versions, non-empty, and stripped of redundant same-direction bounds.
type GenericVersionRange[V VersionType[V]] struct {
	scheme      string
	constraints []VersionConstraint[V]
}

// ParseGenericRange parses a full "vers:" specifier into a range over V.
// The scheme token is validated syntactically but not against the registry;
// any well-formed scheme name is accepted and recorded as-is.
func ParseGenericRange[V VersionType[V]](specifier string) (*GenericVersionRange[V], error) {
	scheme, constraintsStr, err := splitSpecifier(specifier)
	if err != nil {
		return nil, err
	}
	return parseGenericConstraints[V](scheme, constraintsStr)
}

// parseGenericConstraints parses the constraint-list portion of a specifier
// whose scheme token has already been validated.
func parseGenericConstraints[V VersionType[V]](scheme, constraintsStr string) (*GenericVersionRange[V], error) {
	var constraints []VersionConstraint[V]
	for _, part := range strings.Split(constraintsStr, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		cmp, versionText := splitComparator(part)
		if cmp == Any {
			constraints = append(constraints, NewVersionConstraint(cmp, zeroVersion[V]()))
			continue
		}

		versionText = strings.TrimSpace(versionText)
		if versionText == "" {
			return nil, &InvalidVersionError{Scheme: scheme, Version: part, Reason: "missing version"}
		}

		// Percent-encoded octets are decoded before the scheme parser runs,
		// so version strings may contain '|' and other reserved characters.
		decoded, err := url.PathUnescape(versionText)
		if err != nil {
			return nil, &InvalidVersionError{Scheme: scheme, Version: versionText, Reason: "invalid percent-encoding"}
		}

		version, err := parseVersion[V](decoded)
		if err != nil {
			return nil, retagVersionError(err, scheme)
		}
		constraints = append(constraints, NewVersionConstraint(cmp, version))
	}

	if len(constraints) == 0 {
		return nil, ErrEmptyConstraints
	}
	return NewGenericRange(scheme, constraints)
}

// NewGenericRange constructs a range directly from parsed constraints,
// running the same duplicate rejection and normalization pass as the
// specifier parser. The constraint slice is not retained.
func NewGenericRange[V VersionType[V]](scheme string, constraints []VersionConstraint[V]) (*GenericVersionRange[V], error) {
	normalized, err := normalizeConstraints(slices.Clone(constraints))
	if err != nil {
		return nil, err
	}
	return &GenericVersionRange[V]{scheme: scheme, constraints: normalized}, nil
}

// normalizeConstraints canonicalizes and sanity-checks a constraint list.
// Steps, in order: reject duplicate versions, sort ascending by version,
// collapse redundant same-direction bounds, reject provably-empty ranges.
// The output is fully determined by the input's constraint set.
func normalizeConstraints[V VersionType[V]](cs []VersionConstraint[V]) ([]VersionConstraint[V], error) {
	if len(cs) == 0 {
		return nil, ErrEmptyConstraints
	}

	// Two constraints with the same version are rejected unconditionally,
	// whatever their comparators.
	for i := range cs {
		for j := i + 1; j < len(cs); j++ {
			if cs[i].Version.Compare(cs[j].Version) == 0 {
				return nil, &DuplicateVersionError{Version: cs[i].Version.String()}
			}
		}
	}

	slices.SortStableFunc(cs, func(a, b VersionConstraint[V]) int {
		return a.Version.Compare(b.Version)
	})

	// A smaller lower bound admits everything a larger one would, so among
	// lower bounds only the smallest survives; symmetrically only the
	// largest upper bound survives. With the list sorted and duplicate
	// versions gone, those are the first lower bound and the last upper
	// bound.
	lowerIdx, upperIdx := -1, -1
	for i, c := range cs {
		if c.Comparator.isLowerBound() && lowerIdx == -1 {
			lowerIdx = i
		}
		if c.Comparator.isUpperBound() {
			upperIdx = i
		}
	}

	bounded := lowerIdx != -1 || upperIdx != -1
	var surviving []VersionConstraint[V]
	exactCount := 0
	for i, c := range cs {
		switch {
		case c.Comparator.isLowerBound():
			if i != lowerIdx {
				continue
			}
		case c.Comparator.isUpperBound():
			if i != upperIdx {
				continue
			}
		case c.Comparator == Equal && bounded:
			// An exact pin inside the surviving bounds adds nothing under
			// AND semantics; one outside them can never be satisfied.
			if satisfiesBounds(c.Version, cs, lowerIdx, upperIdx) {
				continue
			}
			return nil, ErrEmptyRange
		case c.Comparator == Equal:
			exactCount++
		}
		surviving = append(surviving, c)
	}

	// Two surviving pins necessarily disagree (duplicates were rejected),
	// so no version can satisfy both.
	if exactCount > 1 {
		return nil, ErrEmptyRange
	}

	// Duplicate rejection guarantees the bounds sit on distinct versions, so
	// a lower bound at or above the upper bound means the range is empty.
	if lowerIdx != -1 && upperIdx != -1 && cs[lowerIdx].Version.Compare(cs[upperIdx].Version) > 0 {
		return nil, ErrEmptyRange
	}

	if len(surviving) == 0 {
		return nil, ErrEmptyConstraints
	}
	return surviving, nil
}

// satisfiesBounds reports whether the version meets the surviving lower and
// upper bound constraints.
func satisfiesBounds[V VersionType[V]](v V, cs []VersionConstraint[V], lowerIdx, upperIdx int) bool {
	if lowerIdx != -1 && !cs[lowerIdx].matches(v) {
		return false
	}
	if upperIdx != -1 && !cs[upperIdx].matches(v) {
		return false
	}
	return true
}

// Contains reports whether the candidate version satisfies every constraint
// in the range. A candidate that fails the scheme's version grammar is an
// error, not a negative answer.
func (r *GenericVersionRange[V]) Contains(version string) (bool, error) {
	candidate, err := parseVersion[V](version)
	if err != nil {
		return false, retagVersionError(err, r.scheme)
	}
	for _, c := range r.constraints {
		if !c.matches(candidate) {
			return false, nil
		}
	}
	return true, nil
}

// VersioningScheme returns the range's scheme name.
func (r *GenericVersionRange[V]) VersioningScheme() string {
	return r.scheme
}

// Constraints returns the normalized constraints projected to their
// scheme-independent form, in ascending version order.
func (r *GenericVersionRange[V]) Constraints() []Constraint {
	out := make([]Constraint, len(r.constraints))
	for i, c := range r.constraints {
		out[i] = c.project()
	}
	return out
}

// ConstraintList returns a copy of the typed constraint list.
func (r *GenericVersionRange[V]) ConstraintList() []VersionConstraint[V] {
	return slices.Clone(r.constraints)
}

// String returns the canonical specifier rendering of the range.
func (r *GenericVersionRange[V]) String() string {
	parts := make([]string, len(r.constraints))
	for i, c := range r.constraints {
		parts[i] = c.String()
	}
	return "vers:" + r.scheme + "/" + strings.Join(parts, "|")
}

// Equal reports structural equality: same scheme name and the same sequence
// of (comparator, version) pairs.
func (r *GenericVersionRange[V]) Equal(other *GenericVersionRange[V]) bool {
	if r.scheme != other.scheme || len(r.constraints) != len(other.constraints) {
		return false
	}
	for i, c := range r.constraints {
		o := other.constraints[i]
		if c.Comparator != o.Comparator || c.Version.Compare(o.Version) != 0 {
			return false
		}
	}
	return true
}

// splitSpecifier performs the cheap prefix-only scan shared by the generic
// and dynamic parsers: it peels the "vers:" prefix, validates the scheme
// token and returns the raw constraint-list text.
func splitSpecifier(specifier string) (scheme, constraints string, err error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(specifier), "vers:")
	if !ok {
		return "", "", ErrMissingPrefix
	}
	scheme, constraints, _ = strings.Cut(rest, "/")
	if scheme == "" {
		return "", "", ErrMissingScheme
	}
	if !isSchemeName(scheme) {
		return "", "", ErrInvalidScheme
	}
	return scheme, constraints, nil
}

// isSchemeName reports whether the token is a syntactically valid scheme
// name: ASCII letters, digits and hyphens.
func isSchemeName(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return len(s) > 0
}

// retagVersionError rewrites the scheme tag on an InvalidVersionError so
// that errors surface the range's scheme name (e.g. "npm") rather than the
// underlying version format's tag (e.g. "semver").
func retagVersionError(err error, scheme string) error {
	var ive *InvalidVersionError
	if errors.As(err, &ive) && ive.Scheme != scheme {
		return &InvalidVersionError{Scheme: scheme, Version: ive.Version, Reason: ive.Reason}
	}
	return err
}
