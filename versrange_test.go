package versrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimple(t *testing.T) {
	r, err := Parse("vers:npm/1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "npm", r.VersioningScheme())
	require.Len(t, r.Constraints(), 1)
	assert.Equal(t, Equal, r.Constraints()[0].Comparator)
	assert.Equal(t, "1.2.3", r.Constraints()[0].Version)
}

func TestParseWithComparators(t *testing.T) {
	r, err := Parse("vers:npm/>=1.0.0|<2.0.0")
	require.NoError(t, err)
	require.Len(t, r.Constraints(), 2)
	assert.Equal(t, GreaterThanOrEqual, r.Constraints()[0].Comparator)
	assert.Equal(t, "1.0.0", r.Constraints()[0].Version)
	assert.Equal(t, LessThan, r.Constraints()[1].Comparator)
	assert.Equal(t, "2.0.0", r.Constraints()[1].Version)
}

func TestParseStar(t *testing.T) {
	r, err := Parse("vers:npm/*")
	require.NoError(t, err)
	require.Len(t, r.Constraints(), 1)
	assert.Equal(t, Any, r.Constraints()[0].Comparator)
	assert.Equal(t, "0.0.0", r.Constraints()[0].Version)

	for _, v := range []string{"1.0.0", "2.0.0", "0.0.1"} {
		got, err := r.Contains(v)
		require.NoError(t, err)
		assert.True(t, got)
	}
}

func TestParseWithSpaces(t *testing.T) {
	r, err := Parse("vers:npm/ >= 1.0.0 | < 2.0.0 ")
	require.NoError(t, err)
	require.Len(t, r.Constraints(), 2)
	assert.Equal(t, Constraint{Comparator: GreaterThanOrEqual, Version: "1.0.0"}, r.Constraints()[0])
	assert.Equal(t, Constraint{Comparator: LessThan, Version: "2.0.0"}, r.Constraints()[1])
}

func TestContainsNotEqual(t *testing.T) {
	r, err := Parse("vers:npm/!=1.2.3")
	require.NoError(t, err)

	got, err := r.Contains("1.2.3")
	require.NoError(t, err)
	assert.False(t, got)

	got, err = r.Contains("1.2.4")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestSatisfies(t *testing.T) {
	got, err := Satisfies("1.5.0", "vers:npm/>=1.0.0|<2.0.0")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = Satisfies("2.0.0", "vers:npm/>=1.0.0|<2.0.0")
	require.NoError(t, err)
	assert.False(t, got)

	_, err = Satisfies("1.0.0", "vers:pypi/>=1.0.0")
	require.Error(t, err)
}

// End-to-end scenarios across both version schemes.

func TestScenarioExactConstraint(t *testing.T) {
	r, err := Parse("vers:npm/1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "npm", r.VersioningScheme())
	assert.Equal(t, []Constraint{{Comparator: Equal, Version: "1.2.3"}}, r.Constraints())

	got, err := r.Contains("1.2.3")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = r.Contains("1.2.4")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestScenarioBoundedRange(t *testing.T) {
	r, err := Parse("vers:npm/>=1.0.0|<2.0.0")
	require.NoError(t, err)

	tests := []struct {
		version string
		want    bool
	}{
		{"1.0.0", true},
		{"1.5.0", true},
		{"2.0.0", false},
		{"0.9.0", false},
	}
	for _, tt := range tests {
		got, err := r.Contains(tt.version)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Contains(%q)", tt.version)
	}
}

func TestScenarioPinInsideBoundNormalizes(t *testing.T) {
	r, err := Parse("vers:npm/1.2.3|<2.0.0")
	require.NoError(t, err)
	assert.Equal(t, "vers:npm/<2.0.0", r.String())
}

func TestScenarioDebUpperBound(t *testing.T) {
	r, err := Parse("vers:deb/<<1.0")
	require.NoError(t, err)

	got, err := r.Contains("1.0~beta")
	require.NoError(t, err)
	assert.True(t, got, "1.0~beta sorts before 1.0")

	got, err = r.Contains("1.0")
	require.NoError(t, err)
	assert.False(t, got)

	got, err = r.Contains("0.9")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestScenarioDebEpochDominates(t *testing.T) {
	r, err := Parse("vers:deb/>>2.0")
	require.NoError(t, err)

	got, err := r.Contains("1:1.0")
	require.NoError(t, err)
	assert.True(t, got, "epoch 1 outranks any zero-epoch upstream")

	got, err = r.Contains("2.0")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestScenarioUnsupportedScheme(t *testing.T) {
	_, err := Parse("vers:pypi/>=1.0.0")
	var unsupported *UnsupportedSchemeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "pypi", unsupported.Scheme)
}
