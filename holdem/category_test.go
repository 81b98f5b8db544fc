package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOf(t *testing.T) {
	cases := []struct {
		a, b string
		want HandCategory
	}{
		{"As", "Ah", "AA"},
		{"As", "Ks", "AKs"},
		{"Ks", "Ad", "AKo"},
		{"2c", "7d", "72o"},
		{"5h", "4h", "54s"},
		{"Td", "Ts", "TT"},
	}
	for _, c := range cases {
		got := CategoryOf(MustCard(c.a), MustCard(c.b))
		assert.Equal(t, c.want, got, "%s %s", c.a, c.b)
	}
}

func TestCategoryScoreOrdering(t *testing.T) {
	order := []HandCategory{"AA", "KK", "AKs", "AKo", "QJs", "T9s", "72o"}
	for i := 0; i < len(order)-1; i++ {
		assert.Greater(t, order[i].Score(), order[i+1].Score(),
			"%s should outrank %s", order[i], order[i+1])
	}
}

func TestCategorySuitedBonus(t *testing.T) {
	assert.Greater(t, HandCategory("AKs").Score(), HandCategory("AKo").Score())
	assert.Greater(t, HandCategory("76s").Score(), HandCategory("76o").Score())
}

func TestAllCategories(t *testing.T) {
	all := AllCategories()
	assert.Len(t, all, 169)

	seen := map[HandCategory]bool{}
	for _, c := range all {
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
	assert.True(t, seen["AA"])
	assert.True(t, seen["72o"])
	assert.True(t, seen["32s"])
}
