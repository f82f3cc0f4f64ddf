package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/freshstack-dev/go-backend/internal/cfg"
	"github.com/freshstack-dev/go-backend/internal/repository/redis/converter"
	"github.com/freshstack-dev/go-backend/internal/usecase"
	"github.com/freshstack-dev/go-backend/pkg/clients"
	"github.com/freshstack-dev/go-backend/pkg/e"
	"github.com/freshstack-dev/go-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CacheRepo кэширует проекции товаров в Redis под ключами item:<id>.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ItemInfoConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ItemInfoConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetItem возвращает закэшированный товар или nil при промахе.
// Повреждённая или чужая запись удаляется и считается промахом.
func (c *CacheRepo) GetItem(ctx context.Context, id int64) (*usecase.ItemInfo, error) {
	key := c.itemKey(id)

	data, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil // cache miss
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ItemInfoRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed, dropping key %s: %v", key, e.Wrap(whereami.WhereAmI(), err))
		c.dropKey(key)
		return nil, nil
	}

	if model.ID != id {
		c.logger.Warnf("Cache ID mismatch: key_id: %d, model_id: %d", id, model.ID)
		c.dropKey(key)
		return nil, nil
	}

	return c.conv.ToUseCase(&model), nil
}

// SetItem кэширует товар с TTL из конфигурации.
func (c *CacheRepo) SetItem(ctx context.Context, item *usecase.ItemInfo) error {
	model := c.conv.ToRedisModel(item)

	data, err := json.Marshal(model)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.itemKey(model.ID), data, c.cfg.ItemTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteItems удаляет товары из кэша по ID.
func (c *CacheRepo) DeleteItems(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.itemKey(id)
	}

	if err := c.client.Client.Del(ctx, keys...).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// dropKey удаляет подозрительную запись, не проваливая исходную операцию.
func (c *CacheRepo) dropKey(key string) {
	if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
		c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}
}

// itemKey возвращает Redis-ключ для одного товара.
func (c *CacheRepo) itemKey(id int64) string {
	return fmt.Sprintf("item:%d", id)
}
