package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/freshstack-dev/go-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func encode(t *testing.T, items []*domain.Item) *excelize.File {
	t.Helper()

	content, err := EncodeXLSX(Aggregate(items, time.Now()))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	return f
}

func TestEncodeXLSX_Sheets(t *testing.T) {
	f := encode(t, []*domain.Item{item("Apple", domain.CategoryFruit, 199, 50, 10)})

	assert.Equal(t, []string{
		"Key Metrics",
		"Profit by Category",
		"Top Profitable Items",
		"Stock Analysis",
		"Price Range Analysis",
	}, f.GetSheetList())
}

func TestEncodeXLSX_KeyMetricsSheet(t *testing.T) {
	f := encode(t, []*domain.Item{
		item("A", domain.CategoryFruit, 199, 50, 10),
		item("B", domain.CategoryFruit, 99, 30, 5),
	})

	header, err := f.GetCellValue("Key Metrics", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Metric", header)

	potential, err := f.GetCellValue("Key Metrics", "B2")
	require.NoError(t, err)
	assert.Equal(t, "18.35", potential)

	inStock, err := f.GetCellValue("Key Metrics", "B4")
	require.NoError(t, err)
	assert.Equal(t, "15", inStock)
}

func TestEncodeXLSX_EmptyCatalog(t *testing.T) {
	f := encode(t, nil)

	potential, err := f.GetCellValue("Key Metrics", "B2")
	require.NoError(t, err)
	assert.Equal(t, "no data", potential)

	average, err := f.GetCellValue("Key Metrics", "B3")
	require.NoError(t, err)
	assert.Equal(t, "no data", average)

	// корзины остатков присутствуют даже без товаров
	bucket, err := f.GetCellValue("Stock Analysis", "A4")
	require.NoError(t, err)
	assert.Equal(t, StockBucketOut, bucket)
}

func TestEncodeXLSX_CategoryRows(t *testing.T) {
	f := encode(t, []*domain.Item{
		item("Apple", domain.CategoryFruit, 199, 50, 10),
		item("Carrot", domain.CategoryVegetable, 89, 25, 100),
	})

	// Vegetable впереди: потенциал 64.00 против 14.90
	first, err := f.GetCellValue("Profit by Category", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Vegetable", first)

	second, err := f.GetCellValue("Profit by Category", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Fruit", second)
}

func TestEncodeXLSX_TopItemsSheet(t *testing.T) {
	f := encode(t, []*domain.Item{item("Brie", domain.CategoryCheese, 500, 200, 3)})

	name, err := f.GetCellValue("Top Profitable Items", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Brie", name)

	margin, err := f.GetCellValue("Top Profitable Items", "D2")
	require.NoError(t, err)
	assert.Equal(t, "60.00%", margin)
}
