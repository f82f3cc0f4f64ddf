package converter

import "time"

// ItemModel представляет запись таблицы items в PostgreSQL.
type ItemModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Category  string    `db:"category"`
	Price     int64     `db:"price"`
	Cost      int64     `db:"cost"`
	Stock     int64     `db:"stock"`
	CreatedAt time.Time `db:"created_at"`
}
