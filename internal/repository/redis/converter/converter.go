//go:generate goverter gen github.com/freshstack-dev/go-backend/internal/repository/redis/converter

package converter

import (
	"time"

	"github.com/freshstack-dev/go-backend/internal/domain"
	"github.com/freshstack-dev/go-backend/internal/usecase"
)

// goverter:converter
// goverter:extend ConvertTime
// goverter:extend CategoryToString
// goverter:extend StringToCategory
type ItemInfoConverter interface {
	ToRedisModel(entity *usecase.ItemInfo) *ItemInfoRedisModel
	ToUseCase(model *ItemInfoRedisModel) *usecase.ItemInfo
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
