package domain

// CategoryAll — служебная категория, под которой показывается весь каталог
const CategoryAll = "all"

// Category описывает категорию товаров
type Category struct {
	ID   string // тег, совпадает с Product.Category
	Name string // отображаемое название
}

func NewCategory(id string, name string) Category {
	return Category{
		ID:   id,
		Name: name,
	}
}
