// Package supplier holds the supplier registry: who the company buys from.
// Suppliers are not scoped per user; mutation access is gated by role alone.
package supplier

import (
	"context"
	"errors"
	"time"

	"github.com/eventosfin/financeiro-backend-go/internal/pkg/validator"
)

var (
	ErrSupplierNotFound   = errors.New("supplier not found")
	ErrSupplierCNPJExists = errors.New("supplier CNPJ already registered")
)

type Supplier struct {
	ID        int64
	Name      string
	CNPJ      *string
	Email     *string
	Phone     *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SupplierRepository interface {
	List(ctx context.Context) ([]Supplier, error)
	GetByID(ctx context.Context, id int64) (Supplier, error)
	Create(ctx context.Context, newSupplier Supplier) (Supplier, error)
	Update(ctx context.Context, id int64, req UpsertSupplierRequest) error
	Delete(ctx context.Context, id int64) error
}

type SupplierResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CNPJ      *string   `json:"cnpj,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResponse(s Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		CNPJ:      s.CNPJ,
		Email:     s.Email,
		Phone:     s.Phone,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type UpsertSupplierRequest struct {
	Name  string  `json:"name"`
	CNPJ  *string `json:"cnpj,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

func (r *UpsertSupplierRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.CNPJ != nil && !validator.IsValidCNPJ(*r.CNPJ) {
		errs = append(errs, validator.ValidationError{Field: "cnpj", Message: "invalid CNPJ"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
