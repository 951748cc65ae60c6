package filter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zapbench/zap/pkg/filter"
)

func TestEmptyPatternMatchesEverything(t *testing.T) {
	require.True(t, filter.Match("abc", ""))
}

func TestEmptyNameNeverMatchesNonEmptyPattern(t *testing.T) {
	require.False(t, filter.Match("", "abc"))
	require.True(t, filter.Match("", ""))
}

func TestSubstringMatch(t *testing.T) {
	require.True(t, filter.Match("sort/1000", "sort"))
	require.False(t, filter.Match("malloc/64", "sort"))
	require.False(t, filter.Match("Sort/1000", "sort")) // case sensitive
}

func TestGlobQuestionMark(t *testing.T) {
	require.True(t, filter.Match("abc", "?b?"))
	require.False(t, filter.Match("abc", "??"))
}

func TestGlobStar(t *testing.T) {
	require.True(t, filter.Match("abc", "a*c"))
	require.True(t, filter.Match("sort/1000", "sort*"))
	require.False(t, filter.Match("malloc/1000", "sort*"))
	require.True(t, filter.Match("anything", "*"))
}
