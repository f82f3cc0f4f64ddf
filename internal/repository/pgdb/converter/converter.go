//go:generate goverter gen github.com/freshstack-dev/go-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/freshstack-dev/go-backend/internal/domain"
)

// ItemConverter преобразует сущности Item между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend CategoryToString
// goverter:extend StringToCategory
type ItemConverter interface {
	ToModel(entity *domain.Item) *ItemModel
	ToEntity(model *ItemModel) *domain.Item
	ToArrEntity(models []*ItemModel) []*domain.Item
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func CategoryToString(c domain.Category) string {
	return string(c)
}

func StringToCategory(s string) domain.Category {
	return domain.Category(s)
}
