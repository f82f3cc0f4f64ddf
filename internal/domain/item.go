package domain

import "time"

// Item описывает товар продуктового каталога.
// Денежные поля хранятся в центах.
type Item struct {
	ID        int64
	Name      string
	Category  Category
	Price     int64 // цена продажи в центах
	Cost      int64 // себестоимость в центах
	Stock     int64
	CreatedAt time.Time
}

// NewItem собирает ещё не сохранённый товар: ID и CreatedAt назначает хранилище.
func NewItem(name string, category Category, price, cost, stock int64) *Item {
	return &Item{
		Name:     name,
		Category: category,
		Price:    price,
		Cost:     cost,
		Stock:    stock,
	}
}

// Profit возвращает прибыль с единицы товара в центах.
func (i *Item) Profit() int64 {
	return i.Price - i.Cost
}
