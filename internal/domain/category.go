package domain

import "fmt"

// Category — закрытое перечисление категорий товаров.
type Category string

const (
	CategoryFruit     Category = "Fruit"
	CategoryVegetable Category = "Vegetable"
	CategoryMeat      Category = "Meat"
	CategoryCheese    Category = "Cheese"
	CategoryBread     Category = "Bread"
)

// Categories возвращает категории в объявленном порядке.
// Порядок используется при сортировке списков и в отчётах.
func Categories() []Category {
	return []Category{
		CategoryFruit,
		CategoryVegetable,
		CategoryMeat,
		CategoryCheese,
		CategoryBread,
	}
}

// ParseCategory проверяет строку на принадлежность перечислению.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// Rank возвращает позицию категории в объявленном порядке.
// Неизвестная категория уходит в конец.
func (c Category) Rank() int {
	for i, known := range Categories() {
		if c == known {
			return i
		}
	}
	return len(Categories())
}

func (c Category) String() string {
	return string(c)
}
