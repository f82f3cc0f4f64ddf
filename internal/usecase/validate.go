package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/freshstack-dev/go-backend/internal/domain"
	"github.com/freshstack-dev/go-backend/pkg/e"
)

const maxNameLength = 100

// FieldViolation — нарушение ограничения одного поля запроса.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError агрегирует все нарушения одного запроса.
// Сопоставляется с e.ErrValidation через errors.Is.
type ValidationError struct {
	Violations []FieldViolation
}

func (v *ValidationError) Error() string {
	msgs := make([]string, 0, len(v.Violations))
	for _, violation := range v.Violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", violation.Field, violation.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (v *ValidationError) Is(target error) bool {
	return target == e.ErrValidation
}

// validateItemReq проверяет ограничения полей до построения сущности.
// Возвращает полный список нарушений, а не первое встреченное.
func validateItemReq(req *ItemReq) error {
	var violations []FieldViolation

	nameLen := utf8.RuneCountInString(strings.TrimSpace(req.Name))
	if nameLen < 1 || nameLen > maxNameLength {
		violations = append(violations, FieldViolation{Field: "name", Message: e.ErrNameRequired.Error()})
	}

	if _, err := domain.ParseCategory(string(req.Category)); err != nil {
		violations = append(violations, FieldViolation{Field: "category", Message: e.ErrInvalidCategory.Error()})
	}

	if req.Price <= 0 {
		violations = append(violations, FieldViolation{Field: "price", Message: e.ErrInvalidPrice.Error()})
	}

	if req.Cost <= 0 {
		violations = append(violations, FieldViolation{Field: "cost", Message: e.ErrInvalidCost.Error()})
	}

	if req.Stock < 0 {
		violations = append(violations, FieldViolation{Field: "stock", Message: e.ErrNegativeStock.Error()})
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}

	return nil
}

// clampStock вычисляет новый остаток: отрицательная дельта не может
// увести остаток ниже нуля.
func clampStock(current, delta int64) int64 {
	next := current + delta
	if next < 0 {
		return 0
	}
	return next
}
