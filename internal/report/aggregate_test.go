package report

import (
	"testing"
	"time"

	"github.com/freshstack-dev/go-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(name string, category domain.Category, price, cost, stock int64) *domain.Item {
	return &domain.Item{
		Name:     name,
		Category: category,
		Price:    price,
		Cost:     cost,
		Stock:    stock,
	}
}

func TestKeyMetrics_TotalProfitPotential(t *testing.T) {
	items := []*domain.Item{
		item("A", domain.CategoryFruit, 199, 50, 10), // 1.49 * 10 = 14.90
		item("B", domain.CategoryFruit, 99, 30, 5),   // 0.69 * 5 = 3.45
	}

	rep := Aggregate(items, time.Now())

	assert.True(t, rep.Metrics.TotalProfitPotential.Equal(decimal.RequireFromString("18.35")),
		"got %s", rep.Metrics.TotalProfitPotential)
	assert.EqualValues(t, 15, rep.Metrics.TotalItemsInStock)
	assert.Equal(t, 1, rep.Metrics.TotalCategories)
	assert.False(t, rep.Metrics.NoData)
}

func TestKeyMetrics_AverageProfitPerItem(t *testing.T) {
	items := []*domain.Item{
		item("A", domain.CategoryMeat, 500, 200, 1), // profit 3.00
		item("B", domain.CategoryMeat, 300, 200, 1), // profit 1.00
	}

	rep := Aggregate(items, time.Now())

	assert.True(t, rep.Metrics.AverageProfitPerItem.Equal(decimal.NewFromInt(2)),
		"got %s", rep.Metrics.AverageProfitPerItem)
}

func TestKeyMetrics_EmptyCatalog(t *testing.T) {
	rep := Aggregate(nil, time.Now())

	assert.True(t, rep.Metrics.NoData)
	assert.True(t, rep.Metrics.TotalProfitPotential.IsZero())
	assert.True(t, rep.Metrics.AverageProfitPerItem.IsZero())
	assert.EqualValues(t, 0, rep.Metrics.TotalItemsInStock)
	assert.Equal(t, 0, rep.Metrics.TotalCategories)
	assert.Empty(t, rep.CategoryProfit)
	assert.Empty(t, rep.TopItems)
	assert.Empty(t, rep.PriceRanges)
	assert.Len(t, rep.StockBuckets, 3, "stock buckets are always emitted")
}

func TestCategoryProfit_Grouping(t *testing.T) {
	items := []*domain.Item{
		item("Apple", domain.CategoryFruit, 199, 50, 10),
		item("Banana", domain.CategoryFruit, 99, 30, 5),
		item("Carrot", domain.CategoryVegetable, 89, 25, 100),
	}

	rep := Aggregate(items, time.Now())

	require.Len(t, rep.CategoryProfit, 2)

	byCategory := map[domain.Category]CategoryProfitRow{}
	for _, row := range rep.CategoryProfit {
		byCategory[row.Category] = row
	}

	fruit := byCategory[domain.CategoryFruit]
	assert.Equal(t, 2, fruit.ItemCount)
	assert.EqualValues(t, 15, fruit.TotalStock)
	// (1.49 + 0.69) / 2 = 1.09
	assert.True(t, fruit.AverageProfit.Equal(decimal.RequireFromString("1.09")))
	assert.True(t, fruit.ProfitPotential.Equal(decimal.RequireFromString("18.35")))

	veg := byCategory[domain.CategoryVegetable]
	assert.Equal(t, 1, veg.ItemCount)
	// 0.64 * 100 = 64.00
	assert.True(t, veg.ProfitPotential.Equal(decimal.RequireFromString("64")))
}

func TestCategoryProfit_OrderedByPotentialDesc(t *testing.T) {
	items := []*domain.Item{
		item("Cheap", domain.CategoryBread, 200, 100, 1),   // potential 1.00
		item("Rich", domain.CategoryCheese, 1000, 100, 10), // potential 90.00
		item("Mid", domain.CategoryMeat, 500, 250, 4),      // potential 10.00
	}

	rep := Aggregate(items, time.Now())

	require.Len(t, rep.CategoryProfit, 3)
	assert.Equal(t, domain.CategoryCheese, rep.CategoryProfit[0].Category)
	assert.Equal(t, domain.CategoryMeat, rep.CategoryProfit[1].Category)
	assert.Equal(t, domain.CategoryBread, rep.CategoryProfit[2].Category)
}

func TestTopItems_SingleItemMargin(t *testing.T) {
	items := []*domain.Item{
		item("Brie", domain.CategoryCheese, 500, 200, 3),
	}

	rep := Aggregate(items, time.Now())

	require.Len(t, rep.TopItems, 1)
	row := rep.TopItems[0]
	assert.Equal(t, "Brie", row.Name)
	assert.True(t, row.Profit.Equal(decimal.NewFromInt(3)), "got %s", row.Profit)
	assert.True(t, row.Margin.Equal(decimal.RequireFromString("0.6")), "got %s", row.Margin)
}

func TestTopItems_LimitAndOrder(t *testing.T) {
	var items []*domain.Item
	for i := int64(1); i <= 15; i++ {
		// profit растёт вместе с i
		items = append(items, item("I", domain.CategoryFruit, 100+i*10, 100, 1))
	}

	rep := Aggregate(items, time.Now())

	require.Len(t, rep.TopItems, 10)
	for i := 1; i < len(rep.TopItems); i++ {
		assert.True(t, rep.TopItems[i-1].Profit.GreaterThanOrEqual(rep.TopItems[i].Profit))
	}
	// самый прибыльный — последний добавленный
	assert.True(t, rep.TopItems[0].Profit.Equal(decimal.RequireFromString("1.5")))
}

func TestStockBuckets_Partition(t *testing.T) {
	items := []*domain.Item{
		item("High", domain.CategoryFruit, 100, 50, 20),
		item("AlsoHigh", domain.CategoryFruit, 100, 50, 6),
		item("Low", domain.CategoryMeat, 100, 50, 5),
		item("LowEdge", domain.CategoryMeat, 100, 50, 1),
		item("Out", domain.CategoryBread, 100, 50, 0),
	}

	rep := Aggregate(items, time.Now())

	require.Len(t, rep.StockBuckets, 3)
	assert.Equal(t, StockBucketHigh, rep.StockBuckets[0].Bucket)
	assert.Equal(t, StockBucketLow, rep.StockBuckets[1].Bucket)
	assert.Equal(t, StockBucketOut, rep.StockBuckets[2].Bucket)

	total := 0
	for _, b := range rep.StockBuckets {
		total += b.ItemCount
	}
	assert.Equal(t, len(items), total, "buckets are exhaustive and disjoint")

	assert.Equal(t, 2, rep.StockBuckets[0].ItemCount)
	assert.EqualValues(t, 26, rep.StockBuckets[0].TotalStock)
	assert.True(t, rep.StockBuckets[0].StockValue.Equal(decimal.NewFromInt(26)))

	assert.Equal(t, 2, rep.StockBuckets[1].ItemCount)
	assert.Equal(t, 1, rep.StockBuckets[2].ItemCount)
	assert.True(t, rep.StockBuckets[2].StockValue.IsZero())
}

func TestPriceRanges_OnlyNonEmptyEmitted(t *testing.T) {
	items := []*domain.Item{
		item("Cheap", domain.CategoryFruit, 99, 50, 1),   // [0,1)
		item("Dear", domain.CategoryCheese, 1500, 500, 1), // [10,∞)
	}

	rep := Aggregate(items, time.Now())

	require.Len(t, rep.PriceRanges, 2)
	assert.Equal(t, "< $1", rep.PriceRanges[0].Label)
	assert.Equal(t, "$10+", rep.PriceRanges[1].Label)

	total := 0
	for _, r := range rep.PriceRanges {
		total += r.ItemCount
	}
	assert.LessOrEqual(t, total, len(items))
	assert.Equal(t, len(items), total, "every item falls into exactly one range")
}

func TestPriceRanges_Boundaries(t *testing.T) {
	cases := []struct {
		price int64
		label string
	}{
		{price: 1, label: "< $1"},
		{price: 99, label: "< $1"},
		{price: 100, label: "$1 – $3"},
		{price: 299, label: "$1 – $3"},
		{price: 300, label: "$3 – $5"},
		{price: 500, label: "$5 – $10"},
		{price: 999, label: "$5 – $10"},
		{price: 1000, label: "$10+"},
		{price: 100000, label: "$10+"},
	}

	for _, tc := range cases {
		rep := Aggregate([]*domain.Item{item("X", domain.CategoryFruit, tc.price, 1, 1)}, time.Now())
		require.Len(t, rep.PriceRanges, 1, "price %d", tc.price)
		assert.Equal(t, tc.label, rep.PriceRanges[0].Label, "price %d", tc.price)
	}
}

func TestPriceRanges_Averages(t *testing.T) {
	items := []*domain.Item{
		item("A", domain.CategoryFruit, 200, 100, 1), // cost 1.00, profit 1.00, margin 0.5
		item("B", domain.CategoryFruit, 250, 50, 1),  // cost 0.50, profit 2.00, margin 0.8
	}

	rep := Aggregate(items, time.Now())

	require.Len(t, rep.PriceRanges, 1)
	r := rep.PriceRanges[0]
	assert.Equal(t, 2, r.ItemCount)
	assert.True(t, r.AverageCost.Equal(decimal.RequireFromString("0.75")), "got %s", r.AverageCost)
	assert.True(t, r.AverageProfit.Equal(decimal.RequireFromString("1.5")), "got %s", r.AverageProfit)
	assert.True(t, r.AverageMargin.Equal(decimal.RequireFromString("0.65")), "got %s", r.AverageMargin)
}

func TestAggregate_Deterministic(t *testing.T) {
	items := []*domain.Item{
		item("Apple", domain.CategoryFruit, 199, 50, 10),
		item("Cheddar", domain.CategoryCheese, 549, 260, 30),
		item("Carrot", domain.CategoryVegetable, 89, 25, 0),
	}

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	first := Aggregate(items, at)
	second := Aggregate(items, at)

	assert.Equal(t, first, second)
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	items := []*domain.Item{
		item("B", domain.CategoryFruit, 100, 90, 1),
		item("A", domain.CategoryFruit, 500, 90, 1),
	}

	Aggregate(items, time.Now())

	assert.Equal(t, "B", items[0].Name, "input order is preserved")
	assert.Equal(t, "A", items[1].Name)
}
