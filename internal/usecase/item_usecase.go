package usecase

import (
	"context"
	"time"

	"github.com/freshstack-dev/go-backend/pkg/e"
	"github.com/freshstack-dev/go-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// ItemUseCase реализует бизнес-логику управления товарами каталога.
// Мутации проходят через одну транзакцию и инвалидируют кэш после коммита.
type ItemUseCase struct {
	itemRepo  ItemRepository
	cacheRepo CacheRepository
	dbPool    transaction.Transactional
	logger    logger.Logger
}

func NewItemUC(
	itemRepo ItemRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *ItemUseCase {
	return &ItemUseCase{
		itemRepo:  itemRepo,
		cacheRepo: cacheRepo,
		dbPool:    dbPool,
		logger:    logger,
	}
}

// GetAll возвращает все товары, отсортированные по категории (в объявленном
// порядке перечисления), затем по имени. Пустой каталог — пустой список.
func (u *ItemUseCase) GetAll(ctx context.Context) ([]ItemInfo, error) {
	const op = "ItemUseCase.GetAll"

	items, err := u.itemRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewItemInfoList(items), nil
}

// GetByID возвращает товар по идентификатору, сначала проверяя кэш.
// Промах кэша заполняется в фоне, чтобы не задерживать ответ.
func (u *ItemUseCase) GetByID(ctx context.Context, id int64) (*ItemInfo, error) {
	const op = "ItemUseCase.GetByID"

	cached, err := u.cacheRepo.GetItem(ctx, id)
	if err != nil {
		u.logger.Warnf("Cache lookup failed: %v", e.Wrap(op, err))
	}
	if cached != nil {
		return cached, nil
	}

	item, err := u.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := NewItemInfo(item)

	// Фоновое добавление товара в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := u.cacheRepo.SetItem(bgCtx, info); err != nil {
			u.logger.Warnf("Failed to cache item in background: %v", e.Wrap(op, err))
		}
	}()

	return info, nil
}

// Create валидирует запрос и сохраняет новый товар.
// ID и CreatedAt назначает хранилище.
func (u *ItemUseCase) Create(ctx context.Context, req *ItemReq) (*ItemInfo, error) {
	const op = "ItemUseCase.Create"

	var err error
	err = validateItemReq(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, u.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	item, err := u.itemRepo.Create(ctx, req.toEntity())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewItemInfo(item), nil
}

// Update заменяет все изменяемые поля существующего товара.
// CreatedAt остаётся нетронутым. Отсутствие товара — e.ErrItemNotFound.
func (u *ItemUseCase) Update(ctx context.Context, id int64, req *ItemReq) (*ItemInfo, error) {
	const op = "ItemUseCase.Update"

	var err error
	err = validateItemReq(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, u.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	entity := req.toEntity()
	entity.ID = id

	item, err := u.itemRepo.Update(ctx, entity)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	u.invalidate(ctx, op, id)

	return NewItemInfo(item), nil
}

// Delete безвозвратно удаляет товар. Возвращает true, если товар существовал.
func (u *ItemUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	const op = "ItemUseCase.Delete"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, u.dbPool)
	if err != nil {
		return false, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	deleted, err := u.itemRepo.Delete(ctx, id)
	if err != nil {
		return false, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return false, e.Wrap(op, err)
	}

	if deleted {
		u.invalidate(ctx, op, id)
	}

	return deleted, nil
}

// Exists — проба существования без выборки полной записи.
func (u *ItemUseCase) Exists(ctx context.Context, id int64) (bool, error) {
	const op = "ItemUseCase.Exists"

	exists, err := u.itemRepo.Exists(ctx, id)
	if err != nil {
		return false, e.Wrap(op, err)
	}

	return exists, nil
}

// AdjustStock изменяет остаток товара на delta (может быть отрицательной).
// Новый остаток = max(0, текущий + delta): уход в минус прижимается к нулю,
// а не отклоняется. Строка читается FOR UPDATE, чтобы дельта применялась
// к стабильному значению.
func (u *ItemUseCase) AdjustStock(ctx context.Context, id int64, delta int64) (*ItemInfo, error) {
	const op = "ItemUseCase.AdjustStock"

	var err error
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, u.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	item, err := u.itemRepo.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	item.Stock = clampStock(item.Stock, delta)

	updated, err := u.itemRepo.Update(ctx, item)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	u.invalidate(ctx, op, id)

	return NewItemInfo(updated), nil
}

// invalidate удаляет устаревшую проекцию товара из кэша, логируя сбои.
func (u *ItemUseCase) invalidate(ctx context.Context, op string, id int64) {
	if err := u.cacheRepo.DeleteItems(ctx, []int64{id}); err != nil {
		u.logger.Warnf("Failed to invalidate item cache: %v", e.Wrap(op, err))
	}
}
