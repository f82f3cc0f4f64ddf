package usecase

import (
	"time"

	"github.com/freshstack-dev/go-backend/internal/domain"
)

// ITEM USECASE

// ItemReq — запрос на создание или полное обновление товара.
// Денежные поля уже переведены в центы на границе HTTP.
type ItemReq struct {
	Name     string
	Category domain.Category
	Price    int64
	Cost     int64
	Stock    int64
}

// ItemInfo — DTO с полной проекцией товара для внешнего использования.
type ItemInfo struct {
	ID        int64
	Name      string
	Category  domain.Category
	Price     int64
	Cost      int64
	Stock     int64
	CreatedAt time.Time
}

// REPORT USECASE

// ExportFile — сформированный файл отчёта, готовый к отдаче клиенту.
type ExportFile struct {
	Name        string
	Content     []byte
	GeneratedAt time.Time
}

// MAPPERS

func NewItemReq(name string, category domain.Category, price, cost, stock int64) *ItemReq {
	return &ItemReq{
		Name:     name,
		Category: category,
		Price:    price,
		Cost:     cost,
		Stock:    stock,
	}
}

func NewItemInfo(item *domain.Item) *ItemInfo {
	return &ItemInfo{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		Price:     item.Price,
		Cost:      item.Cost,
		Stock:     item.Stock,
		CreatedAt: item.CreatedAt,
	}
}

func NewItemInfoList(items []*domain.Item) []ItemInfo {
	result := make([]ItemInfo, 0, len(items))
	for _, item := range items {
		result = append(result, *NewItemInfo(item))
	}
	return result
}

func NewExportFile(name string, content []byte, generatedAt time.Time) *ExportFile {
	return &ExportFile{
		Name:        name,
		Content:     content,
		GeneratedAt: generatedAt,
	}
}

// toEntity собирает несохранённую доменную сущность из запроса.
func (r *ItemReq) toEntity() *domain.Item {
	return domain.NewItem(r.Name, r.Category, r.Price, r.Cost, r.Stock)
}
