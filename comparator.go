package versrange

import (
	"fmt"
	"strings"
)

// Comparator is a relational operator applied to a version within a
// constraint. The zero value is Equal.
type Comparator int

const (
	// Equal matches exactly one version. Rendered as a bare version.
	Equal Comparator = iota
	// NotEqual matches every version except one.
	NotEqual
	// LessThan matches versions strictly below the threshold.
	LessThan
	// LessThanOrEqual matches versions at or below the threshold.
	LessThanOrEqual
	// GreaterThan matches versions strictly above the threshold.
	GreaterThan
	// GreaterThanOrEqual matches versions at or above the threshold.
	GreaterThanOrEqual
	// Any matches every version. Rendered as "*".
	Any
)

// comparatorTokens maps constraint-text prefixes to comparators, longest
// first so that ">=" wins over ">". "==" is the explicit spelling of Equal
// and "<<"/">>" are the Debian spellings of "<"/">".
var comparatorTokens = []struct {
	token string
	cmp   Comparator
}{
	{"!=", NotEqual},
	{"==", Equal},
	{"<=", LessThanOrEqual},
	{">=", GreaterThanOrEqual},
	{"<<", LessThan},
	{">>", GreaterThan},
	{"<", LessThan},
	{">", GreaterThan},
}

// splitComparator extracts the leading comparator token from a constraint
// string, returning the comparator and the remaining version text. Absence
// of a token means Equal.
func splitComparator(s string) (Comparator, string) {
	if s == "*" {
		return Any, ""
	}
	for _, t := range comparatorTokens {
		if strings.HasPrefix(s, t.token) {
			return t.cmp, s[len(t.token):]
		}
	}
	return Equal, s
}

// String returns the canonical token for the comparator.
func (c Comparator) String() string {
	switch c {
	case Equal:
		return "="
	case NotEqual:
		return "!="
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanOrEqual:
		return ">="
	case Any:
		return "*"
	}
	return fmt.Sprintf("Comparator(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler using the canonical token.
func (c Comparator) MarshalText() ([]byte, error) {
	switch c {
	case Equal, NotEqual, LessThan, LessThanOrEqual, GreaterThan, GreaterThanOrEqual, Any:
		return []byte(c.String()), nil
	}
	return nil, fmt.Errorf("unknown comparator %d", int(c))
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the
// canonical tokens plus the aliases the parser accepts ("==", "<<", ">>").
func (c *Comparator) UnmarshalText(text []byte) error {
	switch string(text) {
	case "=", "==", "":
		*c = Equal
	case "!=":
		*c = NotEqual
	case "<", "<<":
		*c = LessThan
	case "<=":
		*c = LessThanOrEqual
	case ">", ">>":
		*c = GreaterThan
	case ">=":
		*c = GreaterThanOrEqual
	case "*":
		*c = Any
	default:
		return fmt.Errorf("unknown comparator %q", text)
	}
	return nil
}

// isLowerBound reports whether the comparator expresses a lower bound.
func (c Comparator) isLowerBound() bool {
	return c == GreaterThan || c == GreaterThanOrEqual
}

// isUpperBound reports whether the comparator expresses an upper bound.
func (c Comparator) isUpperBound() bool {
	return c == LessThan || c == LessThanOrEqual
}
