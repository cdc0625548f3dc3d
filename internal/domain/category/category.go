// Package category holds the expense/revenue category catalog used to label
// financial records.
package category

import (
	"context"
	"errors"
	"time"

	"github.com/eventosfin/financeiro-backend-go/internal/pkg/validator"
)

type Kind string

const (
	KindExpense Kind = "despesa"
	KindRevenue Kind = "receita"
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameExists = errors.New("category name already exists")
	ErrInvalidKind        = errors.New("category kind must be despesa or receita")
)

type Category struct {
	ID        int64
	Name      string
	Kind      Kind
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int64) (Category, error)
	Create(ctx context.Context, newCategory Category) (Category, error)
	Update(ctx context.Context, id int64, req UpsertCategoryRequest) error
	Delete(ctx context.Context, id int64) error
}

type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResponse(c Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Kind:      c.Kind,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type UpsertCategoryRequest struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

func (r *UpsertCategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.Kind != KindExpense && r.Kind != KindRevenue {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "kind must be despesa or receita"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
