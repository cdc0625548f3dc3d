package postgresql

import (
	"context"
	"fmt"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/category"
	"github.com/eventosfin/financeiro-backend-go/internal/pkg/database"
)

type categoryRepositoryImpl struct {
	db *database.DB
}

func NewCategoryRepository(db *database.DB) category.CategoryRepository {
	return &categoryRepositoryImpl{db: db}
}

// List implements category.CategoryRepository.
func (c *categoryRepositoryImpl) List(ctx context.Context) ([]category.Category, error) {
	q := GetQuerier(ctx, c.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, kind, created_at, updated_at
		FROM categories
		ORDER BY kind, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []category.Category
	for rows.Next() {
		var found category.Category
		if err := rows.Scan(&found.ID, &found.Name, &found.Kind, &found.CreatedAt, &found.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, found)
	}
	return categories, rows.Err()
}

// GetByID implements category.CategoryRepository.
func (c *categoryRepositoryImpl) GetByID(ctx context.Context, id int64) (category.Category, error) {
	q := GetQuerier(ctx, c.db)

	var found category.Category
	err := q.QueryRow(ctx, `
		SELECT id, name, kind, created_at, updated_at
		FROM categories
		WHERE id = $1
	`, id).Scan(&found.ID, &found.Name, &found.Kind, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return category.Category{}, err
	}
	return found, nil
}

// Create implements category.CategoryRepository.
func (c *categoryRepositoryImpl) Create(ctx context.Context, newCategory category.Category) (category.Category, error) {
	q := GetQuerier(ctx, c.db)

	var created category.Category
	err := q.QueryRow(ctx, `
		INSERT INTO categories (name, kind)
		VALUES ($1, $2)
		RETURNING id, name, kind, created_at, updated_at
	`, newCategory.Name, newCategory.Kind).
		Scan(&created.ID, &created.Name, &created.Kind, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return category.Category{}, err
	}
	return created, nil
}

// Update implements category.CategoryRepository.
func (c *categoryRepositoryImpl) Update(ctx context.Context, id int64, req category.UpsertCategoryRequest) error {
	q := GetQuerier(ctx, c.db)

	var updatedID int64
	err := q.QueryRow(ctx, `
		UPDATE categories SET name = $1, kind = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`, req.Name, req.Kind, id).Scan(&updatedID)
	if err != nil {
		return fmt.Errorf("failed to update category with id %d: %w", id, err)
	}
	return nil
}

// Delete implements category.CategoryRepository.
func (c *categoryRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}
