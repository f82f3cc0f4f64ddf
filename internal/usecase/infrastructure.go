package usecase

import "context"

// ReportArchive сохраняет копию сформированного отчёта во внешнем хранилище.
type ReportArchive interface {
	Store(ctx context.Context, objectKey string, content []byte) (string, error)
}
