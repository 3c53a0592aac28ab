package versrange

import (
	"fmt"
	"strconv"
	"strings"
)

// DebScheme is the scheme tag for Debian package versions.
const DebScheme = "deb"

// DebVersion is a Debian package version of the form
// [epoch:]upstream[-debian_revision], ordered according to the dpkg
// comparison rules from Debian Policy:
//
//   - the numeric epoch dominates everything else (default 0)
//   - upstream and debian_revision are split at the last '-'
//   - '~' sorts before the end of a part, which sorts before any other
//     character
//   - digit runs compare numerically, other runs byte by byte
type DebVersion struct {
	epoch    uint64
	upstream string
	revision string
}

// Parse parses and validates a Debian version string.
func (DebVersion) Parse(s string) (DebVersion, error) {
	invalid := func(reason string) (DebVersion, error) {
		return DebVersion{}, &InvalidVersionError{Scheme: DebScheme, Version: s, Reason: reason}
	}

	if s == "" {
		return invalid("empty")
	}

	var epoch uint64
	rest := s
	if colon := strings.IndexByte(s, ':'); colon >= 0 {
		epochStr := s[:colon]
		if epochStr == "" {
			return invalid("missing epoch")
		}
		var err error
		epoch, err = strconv.ParseUint(epochStr, 10, 64)
		if err != nil {
			return invalid(fmt.Sprintf("invalid epoch %q", epochStr))
		}
		rest = s[colon+1:]
	}

	if strings.HasSuffix(rest, "-") {
		return invalid("trailing '-' with empty debian_revision")
	}

	// Split upstream from debian_revision at the last '-'; earlier hyphens
	// belong to the upstream part.
	upstream, revision := rest, ""
	if idx := strings.LastIndexByte(rest, '-'); idx >= 0 {
		upstream, revision = rest[:idx], rest[idx+1:]
	}

	if upstream == "" {
		return invalid("missing upstream_version")
	}
	if !isDebDigit(upstream[0]) {
		return invalid("upstream_version must start with a digit")
	}
	for _, ch := range upstream {
		if !isDebAlnum(ch) && !strings.ContainsRune(".+-~", ch) {
			return invalid(fmt.Sprintf("invalid character %q in upstream_version", ch))
		}
	}
	for _, ch := range revision {
		if !isDebAlnum(ch) && !strings.ContainsRune("+.~", ch) {
			return invalid(fmt.Sprintf("invalid character %q in debian_revision", ch))
		}
	}

	return DebVersion{epoch: epoch, upstream: upstream, revision: revision}, nil
}

// Compare orders two Debian versions: epoch first, then upstream, then
// debian_revision with the empty revision treated as "0".
func (v DebVersion) Compare(other DebVersion) int {
	if v.epoch != other.epoch {
		if v.epoch < other.epoch {
			return -1
		}
		return 1
	}
	if c := compareDebPart(v.upstream, other.upstream); c != 0 {
		return c
	}
	return compareDebPart(revisionOrZero(v.revision), revisionOrZero(other.revision))
}

// Zero returns the default Debian version "0".
func (DebVersion) Zero() DebVersion {
	return DebVersion{upstream: "0"}
}

// Scheme returns "deb".
func (DebVersion) Scheme() string {
	return DebScheme
}

// String renders the version, omitting a zero epoch and an empty revision.
func (v DebVersion) String() string {
	var b strings.Builder
	if v.epoch > 0 {
		fmt.Fprintf(&b, "%d:", v.epoch)
	}
	b.WriteString(v.upstream)
	if v.revision != "" {
		b.WriteByte('-')
		b.WriteString(v.revision)
	}
	return b.String()
}

// Epoch returns the numeric epoch (0 when absent).
func (v DebVersion) Epoch() uint64 { return v.epoch }

// Upstream returns the upstream version part.
func (v DebVersion) Upstream() string { return v.upstream }

// Revision returns the debian_revision part, empty when absent.
func (v DebVersion) Revision() string { return v.revision }

func revisionOrZero(rev string) string {
	if rev == "" {
		return "0"
	}
	return rev
}

// compareDebPart compares two version part strings with the dpkg algorithm,
// alternating between non-digit runs and digit runs until a difference is
// found or both parts are exhausted.
func compareDebPart(a, b string) int {
	i, j := 0, 0
	for {
		// Non-digit run. The run ends at a digit or at the end of the part;
		// '~' sorts before the end of the run, which sorts before any other
		// character.
		for {
			ca, cb := -1, -1
			if i < len(a) && !isDebDigit(a[i]) {
				ca = int(a[i])
			}
			if j < len(b) && !isDebDigit(b[j]) {
				cb = int(b[j])
			}
			if ca == -1 && cb == -1 {
				break
			}
			if ca == '~' || cb == '~' {
				if ca != cb {
					if ca == '~' {
						return -1
					}
					return 1
				}
			} else {
				if ca == -1 {
					return -1
				}
				if cb == -1 {
					return 1
				}
				if ca != cb {
					if ca < cb {
						return -1
					}
					return 1
				}
			}
			i++
			j++
		}

		// Digit run: strip leading zeros, then compare by length and
		// byte-wise, which together amount to numeric comparison without a
		// magnitude limit.
		for i < len(a) && a[i] == '0' {
			i++
		}
		for j < len(b) && b[j] == '0' {
			j++
		}
		startA, startB := i, j
		for i < len(a) && isDebDigit(a[i]) {
			i++
		}
		for j < len(b) && isDebDigit(b[j]) {
			j++
		}
		digitsA, digitsB := a[startA:i], b[startB:j]
		if len(digitsA) != len(digitsB) {
			if len(digitsA) < len(digitsB) {
				return -1
			}
			return 1
		}
		if digitsA != digitsB {
			if digitsA < digitsB {
				return -1
			}
			return 1
		}

		if i >= len(a) && j >= len(b) {
			return 0
		}
	}
}

func isDebDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isDebAlnum(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

var _ VersionType[DebVersion] = DebVersion{}
