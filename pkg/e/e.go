package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 400 Bad Request
	ErrValidation       = fmt.Errorf("validation failed")
	ErrNameRequired     = fmt.Errorf("item name must be 1-100 characters")
	ErrInvalidCategory  = fmt.Errorf("unknown item category")
	ErrInvalidPrice     = fmt.Errorf("price must be positive")
	ErrInvalidCost      = fmt.Errorf("cost must be positive")
	ErrNegativeStock    = fmt.Errorf("stock must be non-negative")
	ErrPricePrecision   = fmt.Errorf("amount must have at most 2 decimal places")
	ErrMissingFields    = fmt.Errorf("missing required fields")
	ErrInvalidID        = fmt.Errorf("invalid item id")
	ErrInvalidDelta     = fmt.Errorf("invalid stock delta")
	ErrStatusBadRequest = fmt.Errorf("bad request")

	// 404 Not Found
	ErrItemNotFound = fmt.Errorf("item not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
	ErrReportGeneration    = fmt.Errorf("report generation failed")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
