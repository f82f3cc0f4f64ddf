package pgdb

import (
	"context"
	"errors"

	"github.com/freshstack-dev/go-backend/internal/domain"
	"github.com/freshstack-dev/go-backend/internal/repository/pgdb/converter"
	"github.com/freshstack-dev/go-backend/pkg/e"
	"github.com/freshstack-dev/go-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// orderByCategory сортирует по объявленному порядку перечисления категорий,
// затем по имени. Порядок должен совпадать с domain.Categories().
const orderByCategory = `
	ORDER BY CASE category
		WHEN 'Fruit' THEN 0
		WHEN 'Vegetable' THEN 1
		WHEN 'Meat' THEN 2
		WHEN 'Cheese' THEN 3
		WHEN 'Bread' THEN 4
		ELSE 5
	END, name`

// ItemRepo реализует репозиторий товаров поверх PostgreSQL.
// Чтения идут через пул, мутации — через транзакцию из контекста.
type ItemRepo struct {
	pool *pgxpool.Pool
	conv converter.ItemConverter
}

func NewItemRepo(pool *pgxpool.Pool, conv converter.ItemConverter) *ItemRepo {
	return &ItemRepo{
		pool: pool,
		conv: conv,
	}
}

// GetAll возвращает все товары, отсортированные по категории и имени.
func (r *ItemRepo) GetAll(ctx context.Context) ([]*domain.Item, error) {
	query := `
		SELECT id, name, category, price, cost, stock, created_at
		FROM items` + orderByCategory

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.ItemModel, 0)
	for rows.Next() {
		var model converter.ItemModel
		if err := scanItem(rows, &model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToArrEntity(models), nil
}

// GetByID возвращает товар по идентификатору или e.ErrItemNotFound.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	query := `
		SELECT id, name, category, price, cost, stock, created_at
		FROM items
		WHERE id = $1
	`

	var model converter.ItemModel
	if err := scanItem(r.pool.QueryRow(ctx, query, id), &model); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrItemNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(&model), nil
}

// GetByIDForUpdate читает товар внутри транзакции с блокировкой строки,
// чтобы корректировка остатка применялась к стабильному значению.
func (r *ItemRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Item, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT id, name, category, price, cost, stock, created_at
		FROM items
		WHERE id = $1
		FOR UPDATE
	`

	var model converter.ItemModel
	if err := scanItem(tx.QueryRow(ctx, query, id), &model); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrItemNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(&model), nil
}

// Create вставляет новый товар; id и created_at назначает база.
func (r *ItemRepo) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO items (name, category, price, cost, stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, category, price, cost, stock, created_at
	`

	m := r.conv.ToModel(item)

	var model converter.ItemModel
	if err := scanItem(
		tx.QueryRow(ctx, query, m.Name, m.Category, m.Price, m.Cost, m.Stock),
		&model,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(&model), nil
}

// Update заменяет все изменяемые поля товара, created_at не трогается.
// Отсутствие строки — e.ErrItemNotFound.
func (r *ItemRepo) Update(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE items
		SET name = $2, category = $3, price = $4, cost = $5, stock = $6
		WHERE id = $1
		RETURNING id, name, category, price, cost, stock, created_at
	`

	m := r.conv.ToModel(item)

	var model converter.ItemModel
	if err := scanItem(
		tx.QueryRow(ctx, query, m.ID, m.Name, m.Category, m.Price, m.Cost, m.Stock),
		&model,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrItemNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(&model), nil
}

// Delete безвозвратно удаляет товар. true — строка существовала.
func (r *ItemRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected() > 0, nil
}

// Exists — проба существования без выборки записи.
func (r *ItemRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

// scanItem читает строку items в модель в порядке колонок запросов выше.
func scanItem(row pgx.Row, model *converter.ItemModel) error {
	return row.Scan(
		&model.ID, &model.Name, &model.Category,
		&model.Price, &model.Cost, &model.Stock, &model.CreatedAt,
	)
}
