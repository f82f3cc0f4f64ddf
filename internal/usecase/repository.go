package usecase

import (
	"context"

	"github.com/freshstack-dev/go-backend/internal/domain"
)

// ItemRepository — хранилище товаров. Методы чтения работают через пул,
// мутации ожидают открытую транзакцию в контексте (pkg/tr).
type ItemRepository interface {
	GetAll(ctx context.Context) ([]*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Item, error)
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// CacheRepository — кэш проекций товаров. Промахи и сбои кэша не считаются
// ошибками операции: слой выше логирует и идёт в базу.
type CacheRepository interface {
	GetItem(ctx context.Context, id int64) (*ItemInfo, error)
	SetItem(ctx context.Context, item *ItemInfo) error
	DeleteItems(ctx context.Context, ids []int64) error
}
