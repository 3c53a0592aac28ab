package versrange

// VersionConstraint is a single (comparator, version) pair within a range.
// It is immutable once constructed.
type VersionConstraint[V VersionType[V]] struct {
	Comparator Comparator
	Version    V
}

// NewVersionConstraint creates a constraint from a comparator and a parsed
// version.
func NewVersionConstraint[V VersionType[V]](cmp Comparator, version V) VersionConstraint[V] {
	return VersionConstraint[V]{Comparator: cmp, Version: version}
}

// matches reports whether the candidate satisfies the constraint under the
// scheme's total order. Any always matches.
func (c VersionConstraint[V]) matches(candidate V) bool {
	cmp := candidate.Compare(c.Version)
	switch c.Comparator {
	case Equal:
		return cmp == 0
	case NotEqual:
		return cmp != 0
	case LessThan:
		return cmp < 0
	case LessThanOrEqual:
		return cmp <= 0
	case GreaterThan:
		return cmp > 0
	case GreaterThanOrEqual:
		return cmp >= 0
	case Any:
		return true
	}
	return false
}

// String renders the constraint: a bare version for Equal, "*" for Any,
// comparator token plus version otherwise.
func (c VersionConstraint[V]) String() string {
	switch c.Comparator {
	case Equal:
		return c.Version.String()
	case Any:
		return "*"
	}
	return c.Comparator.String() + c.Version.String()
}

// project reduces the constraint to its scheme-independent form.
func (c VersionConstraint[V]) project() Constraint {
	return Constraint{Comparator: c.Comparator, Version: c.Version.String()}
}

// Constraint is the scheme-independent projection of a constraint: the
// comparator and the canonical version text. It is the element type of the
// structured wire form.
type Constraint struct {
	Comparator Comparator `json:"comparator"`
	Version    string     `json:"version"`
}

// String renders the projected constraint the same way the typed form does.
func (c Constraint) String() string {
	switch c.Comparator {
	case Equal:
		return c.Version
	case Any:
		return "*"
	}
	return c.Comparator.String() + c.Version
}
