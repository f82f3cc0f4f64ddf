package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/freshstack-dev/go-backend/internal/report"
	"github.com/freshstack-dev/go-backend/pkg/e"
	"github.com/freshstack-dev/go-backend/pkg/logger"
	"github.com/google/uuid"
)

// encodeWorkbook вынесено в переменную для подмены в тестах.
var encodeWorkbook = report.EncodeXLSX

// ReportUseCase формирует сводный отчёт по каталогу: агрегирует полный
// список товаров в пять таблиц и кодирует их в xlsx-книгу.
type ReportUseCase struct {
	itemRepo ItemRepository
	archive  ReportArchive
	logger   logger.Logger
}

func NewReportUC(itemRepo ItemRepository, archive ReportArchive, logger logger.Logger) *ReportUseCase {
	return &ReportUseCase{
		itemRepo: itemRepo,
		archive:  archive,
		logger:   logger,
	}
}

// GenerateExport строит отчёт по текущему состоянию каталога.
// Копия книги уходит в архив в режиме best-effort: сбой архива не ломает выгрузку.
func (u *ReportUseCase) GenerateExport(ctx context.Context) (*ExportFile, error) {
	const op = "ReportUseCase.GenerateExport"

	items, err := u.itemRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	generatedAt := time.Now().UTC()
	rep := report.Aggregate(items, generatedAt)

	content, err := encodeWorkbook(rep)
	if err != nil {
		return nil, e.Wrap(op, fmt.Errorf("%w: %w", e.ErrReportGeneration, err))
	}

	name := fmt.Sprintf("grocery-report-%s.xlsx", generatedAt.Format("20060102-150405"))

	objectKey := fmt.Sprintf("reports/%s/%s.xlsx", generatedAt.Format("2006-01-02"), uuid.NewString())
	if _, err := u.archive.Store(ctx, objectKey, content); err != nil {
		u.logger.Warnf("Failed to archive report copy: %v", e.Wrap(op, err))
	}

	return NewExportFile(name, content, generatedAt), nil
}
