package minio

import (
	"bytes"
	"context"

	"github.com/freshstack-dev/go-backend/internal/cfg"
	"github.com/freshstack-dev/go-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportRepo хранит архивные копии сформированных отчётов в MinIO.
type ReportRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewReportRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ReportRepo {
	return &ReportRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Store загружает книгу отчёта в бакет и возвращает ключ объекта.
func (r *ReportRepo) Store(ctx context.Context, objectKey string, content []byte) (string, error) {
	reader := bytes.NewReader(content)

	info, err := r.mc.PutObject(ctx, r.cfg.BucketName, objectKey, reader, int64(len(content)), minio.PutObjectOptions{
		ContentType: xlsxContentType,
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}
