package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
)

// CategoryRepo читает категории из PostgreSQL.
type CategoryRepo struct {
	db Querier
}

func NewCategoryRepo(db Querier) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// ListCategories возвращает активные категории в порядке витрины.
func (c *CategoryRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, slug, name, created_at, updated_at, is_archived
		FROM categories
		WHERE NOT is_archived
		ORDER BY position, id
	`

	rows, err := querierFromCtx(ctx, c.db).Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.CategoryModel, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(
			&model.ID, &model.Slug, &model.Name, &model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return converter.ToArrCategoryEntity(models), nil
}
