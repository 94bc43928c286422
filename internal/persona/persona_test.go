package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCounts_ZeroLikes(t *testing.T) {
	assert.Nil(t, FromCounts(nil))
	assert.Nil(t, FromCounts(map[string]int{}))
	assert.Nil(t, FromCounts(map[string]int{"취업": 0, "교육": 0}))
}

func TestFromCounts_PairLookup(t *testing.T) {
	p := FromCounts(map[string]int{"취업": 3, "교육": 1})
	require.NotNil(t, p)
	assert.Equal(t, "JOB-EDU", p.Code)
}

func TestFromCounts_SingleCategoryFallsBackToDefault(t *testing.T) {
	p := FromCounts(map[string]int{"주거": 2})
	require.NotNil(t, p)
	assert.Equal(t, "HOME", p.Code)
}

func TestFromCounts_UndefinedPairFallsBackToPrimaryDefault(t *testing.T) {
	// (교육, 금융) is not in the pair table.
	p := FromCounts(map[string]int{"교육": 4, "금융": 2})
	require.NotNil(t, p)
	assert.Equal(t, "EDU", p.Code)
}

func TestFromCounts_TieBreaksByCategoryOrder(t *testing.T) {
	// 취업 precedes 교육 in the base category order, so it wins the tie.
	p := FromCounts(map[string]int{"교육": 2, "취업": 2})
	require.NotNil(t, p)
	assert.Equal(t, "JOB-EDU", p.Code)
}

func TestFromCounts_IgnoresUnknownCategories(t *testing.T) {
	p := FromCounts(map[string]int{"기타": 10, "복지": 1})
	require.NotNil(t, p)
	assert.Equal(t, "WEL", p.Code)
}
