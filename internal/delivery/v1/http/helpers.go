package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/freshstack-dev/go-backend/internal/domain"
	"github.com/freshstack-dev/go-backend/internal/usecase"
	"github.com/freshstack-dev/go-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ItemRequest — тело запроса создания/обновления товара.
// Денежные поля принимаются числом или строкой ("5.99").
type ItemRequest struct {
	Name     string      `json:"name"`
	Category string      `json:"category"`
	Price    json.Number `json:"price"`
	Cost     json.Number `json:"cost"`
	Stock    *int64      `json:"stock"`
}

// AdjustStockRequest — тело запроса корректировки остатка.
type AdjustStockRequest struct {
	Delta *int64 `json:"delta"`
}

// ItemResponse — полная проекция товара; денежные поля отдаются строками
// с двумя знаками после запятой.
type ItemResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     string    `json:"price"`
	Cost      string    `json:"cost"`
	Stock     int64     `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
}

func NewErrorResponse(code int, message string, details []string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrValidation):
		return http.StatusBadRequest, e.ErrValidation.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrInvalidCost):
		return http.StatusBadRequest, e.ErrInvalidCost.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrInvalidID):
		return http.StatusBadRequest, e.ErrInvalidID.Error()
	case errors.Is(err, e.ErrInvalidDelta):
		return http.StatusBadRequest, e.ErrInvalidDelta.Error()
	case errors.Is(err, e.ErrItemNotFound):
		return http.StatusNotFound, e.ErrItemNotFound.Error()
	case errors.Is(err, e.ErrReportGeneration):
		return http.StatusInternalServerError, e.ErrReportGeneration.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)

	// Для ошибок валидации в ответ попадает список нарушений по полям.
	var details []string
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		for _, v := range validationErr.Violations {
			details = append(details, v.Field+": "+v.Message)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg, details))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseItemBody декодирует и переводит тело запроса в usecase-DTO.
// Отсутствующий stock получает значение по умолчанию 10.
func parseItemBody(r *http.Request) (*usecase.ItemReq, error) {
	const defaultStock = 10

	var body ItemRequest
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	if body.Name == "" || body.Category == "" || body.Price == "" || body.Cost == "" {
		return nil, e.ErrMissingFields
	}

	price, err := parseAmountToCents(body.Price.String(), e.ErrInvalidPrice)
	if err != nil {
		return nil, err
	}

	cost, err := parseAmountToCents(body.Cost.String(), e.ErrInvalidCost)
	if err != nil {
		return nil, err
	}

	stock := int64(defaultStock)
	if body.Stock != nil {
		stock = *body.Stock
	}

	return usecase.NewItemReq(body.Name, domain.Category(body.Category), price, cost, stock), nil
}

// parseAmountToCents converts a string like "5.99" or "6" to int64 cents.
// Returns invalidErr if:
// - invalid format
// - non-positive value
// - exceeds reasonable limit (10^7 dollars)
// ErrPricePrecision — more than 2 decimal places.
func parseAmountToCents(s string, invalidErr error) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, invalidErr
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, invalidErr
	}

	if d.LessThanOrEqual(decimal.Zero) {
		return 0, invalidErr
	}

	maxAmount := decimal.NewFromInt(10_000_000)
	if d.GreaterThan(maxAmount) {
		return 0, invalidErr
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// parseID извлекает идентификатор товара из URL.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.ErrInvalidID
	}

	return id, nil
}

// centsToAmount форматирует центы в строку с двумя знаками.
func centsToAmount(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

func toItemResponse(info *usecase.ItemInfo) ItemResponse {
	return ItemResponse{
		ID:        info.ID,
		Name:      info.Name,
		Category:  info.Category.String(),
		Price:     centsToAmount(info.Price),
		Cost:      centsToAmount(info.Cost),
		Stock:     info.Stock,
		CreatedAt: info.CreatedAt,
	}
}

func toItemResponseList(infos []usecase.ItemInfo) []ItemResponse {
	result := make([]ItemResponse, 0, len(infos))
	for i := range infos {
		result = append(result, toItemResponse(&infos[i]))
	}
	return result
}
