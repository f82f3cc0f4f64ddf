package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	for _, s := range []string{"Fish", "fruit", "", "FRUIT"} {
		_, err := ParseCategory(s)
		assert.Error(t, err, s)
	}
}

func TestCategoryRank(t *testing.T) {
	assert.Equal(t, 0, CategoryFruit.Rank())
	assert.Equal(t, 4, CategoryBread.Rank())
	assert.Equal(t, len(Categories()), Category("Fish").Rank())
}

func TestItemProfit(t *testing.T) {
	item := NewItem("Apple", CategoryFruit, 199, 50, 10)
	assert.EqualValues(t, 149, item.Profit())
}
