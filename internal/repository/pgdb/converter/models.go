package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL
// вместе со slug категории из JOIN.
type ProductModel struct {
	ID           int64      `db:"id"`
	Name         string     `db:"name"`
	Price        string     `db:"price"` // numeric, читается как текст без потери точности
	CategorySlug string     `db:"category_slug"`
	Image        string     `db:"image"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
	IsArchived   bool       `db:"is_archived"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID         int64      `db:"id"`
	Slug       string     `db:"slug"`
	Name       string     `db:"name"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
	IsArchived bool       `db:"is_archived"`
}
