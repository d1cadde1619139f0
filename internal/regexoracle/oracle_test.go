package regexoracle

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectDisjointLiterals(t *testing.T) {
	witness, err := Intersect("abc", "xyz")
	require.NoError(t, err)
	assert.Nil(t, witness)
}

func TestIntersectOverlappingReturnsShortestWitness(t *testing.T) {
	// a+b* matches "a", "aa", "ab", ... ; a*b+ matches "b", "ab", "aab"...
	// shortest common string is "ab".
	witness, err := Intersect("a+b*", "a*b+")
	require.NoError(t, err)
	require.NotNil(t, witness)
	assert.Equal(t, "ab", *witness)
}

func TestIntersectRepetitionBounds(t *testing.T) {
	witness, err := Intersect("a{2,4}", "a{3,5}")
	require.NoError(t, err)
	require.NotNil(t, witness)
	assert.Equal(t, "aaa", *witness)
}

func TestIntersectInvalidPatternReportsSide(t *testing.T) {
	_, err := Intersect("(unclosed", "abc")
	require.Error(t, err)
	var invalid *InvalidRegexError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, SideA, invalid.Which)

	_, err = Intersect("abc", "(unclosed")
	require.Error(t, err)
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, SideB, invalid.Which)
}

func TestIntersectIsSymmetricUpToWitnessExistence(t *testing.T) {
	w1, err := Intersect("[a-z]+", "hello")
	require.NoError(t, err)
	w2, err := Intersect("hello", "[a-z]+")
	require.NoError(t, err)
	require.NotNil(t, w1)
	require.NotNil(t, w2)
	assert.Equal(t, *w1, *w2)
}

func TestIntersectWitnessActuallyMatchesBothPatterns(t *testing.T) {
	witness, err := Intersect("[0-9]+", "[0-5]+")
	require.NoError(t, err)
	require.NotNil(t, witness)

	re1 := regexp.MustCompile(`^(?:[0-9]+)$`)
	re2 := regexp.MustCompile(`^(?:[0-5]+)$`)
	assert.True(t, re1.MatchString(*witness))
	assert.True(t, re2.MatchString(*witness))
}

func TestIntersectNegatedClassesDisjoint(t *testing.T) {
	witness, err := Intersect("[^a]+", "a+")
	require.NoError(t, err)
	assert.Nil(t, witness)
}

func TestMatchesEmpty(t *testing.T) {
	assert.True(t, MatchesEmpty("a*"))
	assert.True(t, MatchesEmpty("(foo)?"))
	assert.False(t, MatchesEmpty("a+"))
	assert.False(t, MatchesEmpty("foo"))
}

func TestMatchesEmptyInvalidPatternIsFalse(t *testing.T) {
	assert.False(t, MatchesEmpty("(unclosed"))
}

func TestEscapeLiteralThenIntersect(t *testing.T) {
	escaped := EscapeLiteral("a.b*c")
	witness, err := Intersect(escaped, escaped)
	require.NoError(t, err)
	require.NotNil(t, witness)
	assert.Equal(t, "a.b*c", *witness)
}
