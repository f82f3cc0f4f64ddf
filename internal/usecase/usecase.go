package usecase

import "context"

type ItemUC interface {
	GetAll(ctx context.Context) ([]ItemInfo, error)
	GetByID(ctx context.Context, id int64) (*ItemInfo, error)
	Create(ctx context.Context, req *ItemReq) (*ItemInfo, error)
	Update(ctx context.Context, id int64, req *ItemReq) (*ItemInfo, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	AdjustStock(ctx context.Context, id int64, delta int64) (*ItemInfo, error)
}

type ReportUC interface {
	GenerateExport(ctx context.Context) (*ExportFile, error)
}
