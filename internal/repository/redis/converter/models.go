package converter

import "time"

// ItemInfoRedisModel — сериализуемая проекция товара для кэша.
type ItemInfoRedisModel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     int64     `json:"price"`
	Cost      int64     `json:"cost"`
	Stock     int64     `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
}
