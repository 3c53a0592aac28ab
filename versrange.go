// Package versrange parses version range specifiers and answers containment
// queries against them.
//
// A specifier names a versioning scheme and an ordered list of constraints,
// for example "vers:npm/>=1.0.0|<2.0.0". The scheme selects which version
// grammar and total order apply; the constraint list is evaluated as a
// logical AND.
//
// Quick start:
//
//	r, _ := versrange.Parse("vers:npm/>=1.0.0|<2.0.0")
//	r.Contains("1.5.0") // true, nil
//	r.Contains("2.0.0") // false, nil
//
//	// One-shot check
//	versrange.Satisfies("1.5.0", "vers:npm/>=1.0.0|<2.0.0") // true, nil
//
// Supported schemes are npm and semver (semantic-version ordering) and deb
// (Debian Policy ordering). The machinery is generic over the VersionType
// contract, so each scheme is an independent value type.
package versrange

// Parse parses a version range specifier, selecting the concrete version
// type from the scheme name found in the text.
func Parse(specifier string) (*DynamicVersionRange, error) {
	return ParseDynamicRange(specifier)
}

// Contains reports whether the candidate version is inside the range. A
// candidate that fails the scheme's version grammar is an error, never a
// silent false.
func Contains(r *DynamicVersionRange, version string) (bool, error) {
	return r.Contains(version)
}

// Satisfies parses the specifier and checks the version against it in one
// call.
func Satisfies(version, specifier string) (bool, error) {
	r, err := Parse(specifier)
	if err != nil {
		return false, err
	}
	return r.Contains(version)
}
