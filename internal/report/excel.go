package report

import (
	"github.com/freshstack-dev/go-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Имена листов книги отчёта.
const (
	sheetKeyMetrics  = "Key Metrics"
	sheetCategory    = "Profit by Category"
	sheetTopItems    = "Top Profitable Items"
	sheetStock       = "Stock Analysis"
	sheetPriceRanges = "Price Range Analysis"
)

// Встроенные числовые форматы xlsx: 0.00 и 0.00%.
const (
	numFmtMoney   = 2
	numFmtPercent = 10
)

// styles — идентификаторы стилей, созданных в конкретной книге.
type styles struct {
	header  int
	money   int
	percent int
}

// EncodeXLSX кодирует отчёт в xlsx-книгу с пятью листами.
// Оформление (жирные заголовки, денежный и процентный форматы, ширина
// колонок) — презентационный слой поверх готовых таблиц.
func EncodeXLSX(rep *Report) ([]byte, error) {
	const op = "report.EncodeXLSX"

	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := f.SetSheetName("Sheet1", sheetKeyMetrics); err != nil {
		return nil, e.Wrap(op, err)
	}
	for _, name := range []string{sheetCategory, sheetTopItems, sheetStock, sheetPriceRanges} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	if err := writeKeyMetrics(f, st, rep.Metrics); err != nil {
		return nil, e.Wrap(op, err)
	}
	if err := writeCategoryProfit(f, st, rep.CategoryProfit); err != nil {
		return nil, e.Wrap(op, err)
	}
	if err := writeTopItems(f, st, rep.TopItems); err != nil {
		return nil, e.Wrap(op, err)
	}
	if err := writeStockBuckets(f, st, rep.StockBuckets); err != nil {
		return nil, e.Wrap(op, err)
	}
	if err := writePriceRanges(f, st, rep.PriceRanges); err != nil {
		return nil, e.Wrap(op, err)
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return buf.Bytes(), nil
}

func newStyles(f *excelize.File) (*styles, error) {
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	money, err := f.NewStyle(&excelize.Style{NumFmt: numFmtMoney})
	if err != nil {
		return nil, err
	}

	percent, err := f.NewStyle(&excelize.Style{NumFmt: numFmtPercent})
	if err != nil {
		return nil, err
	}

	return &styles{header: header, money: money, percent: percent}, nil
}

func writeKeyMetrics(f *excelize.File, st *styles, m KeyMetrics) error {
	if err := setRow(f, sheetKeyMetrics, 1, "Metric", "Value"); err != nil {
		return err
	}

	// Для пустого каталога средние не определены: вместо чисел пишется "no data".
	potential := cellValue(m.TotalProfitPotential, m.NoData)
	average := cellValue(m.AverageProfitPerItem, m.NoData)

	rows := [][]any{
		{"Total Profit Potential", potential},
		{"Average Profit Per Item", average},
		{"Total Items In Stock", m.TotalItemsInStock},
		{"Total Categories", m.TotalCategories},
	}
	for i, row := range rows {
		if err := setRow(f, sheetKeyMetrics, i+2, row...); err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(sheetKeyMetrics, "A1", "B1", st.header); err != nil {
		return err
	}
	if !m.NoData {
		if err := f.SetCellStyle(sheetKeyMetrics, "B2", "B3", st.money); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetKeyMetrics, "A", "B", 26)
}

func writeCategoryProfit(f *excelize.File, st *styles, rows []CategoryProfitRow) error {
	if err := setRow(f, sheetCategory, 1, "Category", "Items", "Total Stock", "Avg Profit", "Profit Potential"); err != nil {
		return err
	}

	for i, row := range rows {
		err := setRow(f, sheetCategory, i+2,
			row.Category.String(), row.ItemCount, row.TotalStock,
			row.AverageProfit.InexactFloat64(), row.ProfitPotential.InexactFloat64(),
		)
		if err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(sheetCategory, "A1", "E1", st.header); err != nil {
		return err
	}
	if len(rows) > 0 {
		if err := styleColumns(f, sheetCategory, st.money, len(rows), "D", "E"); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetCategory, "A", "E", 16)
}

func writeTopItems(f *excelize.File, st *styles, rows []TopItemRow) error {
	if err := setRow(f, sheetTopItems, 1, "Name", "Category", "Profit", "Margin"); err != nil {
		return err
	}

	for i, row := range rows {
		err := setRow(f, sheetTopItems, i+2,
			row.Name, row.Category.String(),
			row.Profit.InexactFloat64(), row.Margin.InexactFloat64(),
		)
		if err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(sheetTopItems, "A1", "D1", st.header); err != nil {
		return err
	}
	if len(rows) > 0 {
		if err := styleColumns(f, sheetTopItems, st.money, len(rows), "C"); err != nil {
			return err
		}
		if err := styleColumns(f, sheetTopItems, st.percent, len(rows), "D"); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetTopItems, "A", "D", 18)
}

func writeStockBuckets(f *excelize.File, st *styles, rows []StockBucketRow) error {
	if err := setRow(f, sheetStock, 1, "Bucket", "Items", "Total Stock", "Stock Value"); err != nil {
		return err
	}

	for i, row := range rows {
		err := setRow(f, sheetStock, i+2,
			row.Bucket, row.ItemCount, row.TotalStock, row.StockValue.InexactFloat64(),
		)
		if err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(sheetStock, "A1", "D1", st.header); err != nil {
		return err
	}
	if err := styleColumns(f, sheetStock, st.money, len(rows), "D"); err != nil {
		return err
	}

	return f.SetColWidth(sheetStock, "A", "D", 14)
}

func writePriceRanges(f *excelize.File, st *styles, rows []PriceRangeRow) error {
	if err := setRow(f, sheetPriceRanges, 1, "Price Range", "Items", "Avg Cost", "Avg Profit", "Avg Margin"); err != nil {
		return err
	}

	for i, row := range rows {
		err := setRow(f, sheetPriceRanges, i+2,
			row.Label, row.ItemCount,
			row.AverageCost.InexactFloat64(), row.AverageProfit.InexactFloat64(),
			row.AverageMargin.InexactFloat64(),
		)
		if err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(sheetPriceRanges, "A1", "E1", st.header); err != nil {
		return err
	}
	if len(rows) > 0 {
		if err := styleColumns(f, sheetPriceRanges, st.money, len(rows), "C", "D"); err != nil {
			return err
		}
		if err := styleColumns(f, sheetPriceRanges, st.percent, len(rows), "E"); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetPriceRanges, "A", "E", 14)
}

// setRow записывает значения в строку листа, начиная с колонки A.
func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// styleColumns применяет стиль к колонкам данных (строки 2..n+1).
func styleColumns(f *excelize.File, sheet string, style, rowCount int, columns ...string) error {
	if rowCount == 0 {
		return nil
	}
	for _, col := range columns {
		first, err := excelize.JoinCellName(col, 2)
		if err != nil {
			return err
		}
		last, err := excelize.JoinCellName(col, rowCount+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, first, last, style); err != nil {
			return err
		}
	}
	return nil
}

// cellValue возвращает значение денежной метрики или заглушку "no data".
func cellValue(v decimal.Decimal, noData bool) any {
	if noData {
		return "no data"
	}
	return v.InexactFloat64()
}
