package report

import (
	"sort"
	"time"

	"github.com/freshstack-dev/go-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// topItemsLimit — размер таблицы самых прибыльных товаров.
const topItemsLimit = 10

// Report — пять независимых сводных таблиц по каталогу.
// Содержимое детерминировано для одинакового входного списка.
type Report struct {
	GeneratedAt    time.Time
	Metrics        KeyMetrics
	CategoryProfit []CategoryProfitRow
	TopItems       []TopItemRow
	StockBuckets   []StockBucketRow
	PriceRanges    []PriceRangeRow
}

// KeyMetrics — сводные показатели по всему каталогу.
// NoData выставляется для пустого каталога: средние значения тогда равны нулю
// и не несут смысла.
type KeyMetrics struct {
	TotalProfitPotential decimal.Decimal // Σ (price − cost) × stock
	AverageProfitPerItem decimal.Decimal // среднее (price − cost)
	TotalItemsInStock    int64           // Σ stock
	TotalCategories      int             // количество различных категорий
	NoData               bool
}

// CategoryProfitRow — прибыльность одной категории.
type CategoryProfitRow struct {
	Category        domain.Category
	ItemCount       int
	TotalStock      int64
	AverageProfit   decimal.Decimal
	ProfitPotential decimal.Decimal
}

// TopItemRow — строка таблицы самых прибыльных товаров.
type TopItemRow struct {
	Name     string
	Category domain.Category
	Profit   decimal.Decimal
	Margin   decimal.Decimal // profit / price
}

// Названия корзин анализа остатков.
const (
	StockBucketHigh = "High"
	StockBucketLow  = "Low"
	StockBucketOut  = "Out"
)

// StockBucketRow — одна из трёх корзин по остатку: High (>5), Low (1–5), Out (0).
// Все три корзины присутствуют в отчёте всегда, даже пустые.
type StockBucketRow struct {
	Bucket     string
	ItemCount  int
	TotalStock int64
	StockValue decimal.Decimal // Σ stock × price
}

// PriceRangeRow — агрегаты одного ценового диапазона.
// Пустые диапазоны в отчёт не попадают.
type PriceRangeRow struct {
	Label         string
	ItemCount     int
	AverageCost   decimal.Decimal
	AverageProfit decimal.Decimal
	AverageMargin decimal.Decimal // среднее (price − cost) / price
}

// priceRange — правая граница диапазона в центах (не включается).
type priceRange struct {
	label    string
	boundary int64
}

// Границы диапазонов: [0,1), [1,3), [3,5), [5,10), [10,∞) в валюте.
var priceRanges = []priceRange{
	{label: "< $1", boundary: 100},
	{label: "$1 – $3", boundary: 300},
	{label: "$3 – $5", boundary: 500},
	{label: "$5 – $10", boundary: 1000},
	{label: "$10+", boundary: -1},
}

// Aggregate строит отчёт по полному списку товаров.
// Функция чистая: не обращается к хранилищам и ничего не мутирует.
func Aggregate(items []*domain.Item, generatedAt time.Time) *Report {
	return &Report{
		GeneratedAt:    generatedAt,
		Metrics:        keyMetrics(items),
		CategoryProfit: categoryProfit(items),
		TopItems:       topItems(items),
		StockBuckets:   stockBuckets(items),
		PriceRanges:    priceRangeAnalysis(items),
	}
}

func keyMetrics(items []*domain.Item) KeyMetrics {
	if len(items) == 0 {
		return KeyMetrics{NoData: true}
	}

	var (
		totalPotential = decimal.Zero
		profitSum      = decimal.Zero
		totalStock     int64
		seen           = map[domain.Category]struct{}{}
	)

	for _, item := range items {
		profit := money(item.Profit())
		totalPotential = totalPotential.Add(profit.Mul(decimal.NewFromInt(item.Stock)))
		profitSum = profitSum.Add(profit)
		totalStock += item.Stock
		seen[item.Category] = struct{}{}
	}

	return KeyMetrics{
		TotalProfitPotential: totalPotential,
		AverageProfitPerItem: profitSum.Div(decimal.NewFromInt(int64(len(items)))),
		TotalItemsInStock:    totalStock,
		TotalCategories:      len(seen),
	}
}

func categoryProfit(items []*domain.Item) []CategoryProfitRow {
	type group struct {
		count     int
		stock     int64
		profitSum decimal.Decimal
		potential decimal.Decimal
	}

	// Группы закладываются в объявленном порядке перечисления:
	// при равном потенциале строки сохраняют этот порядок.
	groups := make(map[domain.Category]*group, len(domain.Categories()))
	for _, c := range domain.Categories() {
		groups[c] = &group{profitSum: decimal.Zero, potential: decimal.Zero}
	}

	for _, item := range items {
		g, ok := groups[item.Category]
		if !ok {
			g = &group{profitSum: decimal.Zero, potential: decimal.Zero}
			groups[item.Category] = g
		}

		profit := money(item.Profit())
		g.count++
		g.stock += item.Stock
		g.profitSum = g.profitSum.Add(profit)
		g.potential = g.potential.Add(profit.Mul(decimal.NewFromInt(item.Stock)))
	}

	rows := make([]CategoryProfitRow, 0, len(groups))
	for _, c := range domain.Categories() {
		g := groups[c]
		if g.count == 0 {
			continue
		}

		rows = append(rows, CategoryProfitRow{
			Category:        c,
			ItemCount:       g.count,
			TotalStock:      g.stock,
			AverageProfit:   g.profitSum.Div(decimal.NewFromInt(int64(g.count))),
			ProfitPotential: g.potential,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ProfitPotential.GreaterThan(rows[j].ProfitPotential)
	})

	return rows
}

func topItems(items []*domain.Item) []TopItemRow {
	sorted := make([]*domain.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Profit() > sorted[j].Profit()
	})

	limit := topItemsLimit
	if len(sorted) < limit {
		limit = len(sorted)
	}

	rows := make([]TopItemRow, 0, limit)
	for _, item := range sorted[:limit] {
		profit := money(item.Profit())
		rows = append(rows, TopItemRow{
			Name:     item.Name,
			Category: item.Category,
			Profit:   profit,
			// price > 0 — инвариант сущности, деление безопасно
			Margin: profit.Div(money(item.Price)),
		})
	}

	return rows
}

func stockBuckets(items []*domain.Item) []StockBucketRow {
	rows := []StockBucketRow{
		{Bucket: StockBucketHigh, StockValue: decimal.Zero},
		{Bucket: StockBucketLow, StockValue: decimal.Zero},
		{Bucket: StockBucketOut, StockValue: decimal.Zero},
	}

	for _, item := range items {
		var idx int
		switch {
		case item.Stock > 5:
			idx = 0
		case item.Stock >= 1:
			idx = 1
		default:
			idx = 2
		}

		rows[idx].ItemCount++
		rows[idx].TotalStock += item.Stock
		rows[idx].StockValue = rows[idx].StockValue.
			Add(money(item.Price).Mul(decimal.NewFromInt(item.Stock)))
	}

	return rows
}

func priceRangeAnalysis(items []*domain.Item) []PriceRangeRow {
	type group struct {
		count     int
		costSum   decimal.Decimal
		profitSum decimal.Decimal
		marginSum decimal.Decimal
	}

	groups := make([]group, len(priceRanges))
	for i := range groups {
		groups[i] = group{costSum: decimal.Zero, profitSum: decimal.Zero, marginSum: decimal.Zero}
	}

	for _, item := range items {
		idx := rangeIndex(item.Price)
		profit := money(item.Profit())

		groups[idx].count++
		groups[idx].costSum = groups[idx].costSum.Add(money(item.Cost))
		groups[idx].profitSum = groups[idx].profitSum.Add(profit)
		groups[idx].marginSum = groups[idx].marginSum.Add(profit.Div(money(item.Price)))
	}

	rows := make([]PriceRangeRow, 0, len(priceRanges))
	for i, g := range groups {
		if g.count == 0 {
			continue
		}

		n := decimal.NewFromInt(int64(g.count))
		rows = append(rows, PriceRangeRow{
			Label:         priceRanges[i].label,
			ItemCount:     g.count,
			AverageCost:   g.costSum.Div(n),
			AverageProfit: g.profitSum.Div(n),
			AverageMargin: g.marginSum.Div(n),
		})
	}

	return rows
}

// rangeIndex возвращает индекс ценового диапазона для цены в центах.
func rangeIndex(priceCents int64) int {
	for i, r := range priceRanges {
		if r.boundary < 0 || priceCents < r.boundary {
			return i
		}
	}
	return len(priceRanges) - 1
}

// money переводит центы в десятичную денежную величину.
func money(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
