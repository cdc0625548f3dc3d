// Package client holds the client registry: who the company invoices.
// Clients are not scoped per user; mutation access is gated by role alone.
package client

import (
	"context"
	"errors"
	"time"

	"github.com/eventosfin/financeiro-backend-go/internal/pkg/validator"
)

var (
	ErrClientNotFound       = errors.New("client not found")
	ErrClientDocumentExists = errors.New("client document already registered")
)

type Client struct {
	ID        int64
	Name      string
	Document  *string // CPF or CNPJ
	Email     *string
	Phone     *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ClientRepository interface {
	List(ctx context.Context) ([]Client, error)
	GetByID(ctx context.Context, id int64) (Client, error)
	Create(ctx context.Context, newClient Client) (Client, error)
	Update(ctx context.Context, id int64, req UpsertClientRequest) error
	Delete(ctx context.Context, id int64) error
}

type ClientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Document  *string   `json:"document,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResponse(c Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Document:  c.Document,
		Email:     c.Email,
		Phone:     c.Phone,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type UpsertClientRequest struct {
	Name     string  `json:"name"`
	Document *string `json:"document,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

func (r *UpsertClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.Document != nil && !validator.IsValidCPF(*r.Document) && !validator.IsValidCNPJ(*r.Document) {
		errs = append(errs, validator.ValidationError{Field: "document", Message: "invalid CPF/CNPJ"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
