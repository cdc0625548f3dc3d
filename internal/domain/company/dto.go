package company

import (
	"time"

	"github.com/eventosfin/financeiro-backend-go/internal/pkg/validator"
)

type CompanyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TradeName *string   `json:"trade_name,omitempty"`
	CNPJ      *string   `json:"cnpj,omitempty"`
	City      *string   `json:"city,omitempty"`
	State     *string   `json:"state,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TradeName: c.TradeName,
		CNPJ:      c.CNPJ,
		City:      c.City,
		State:     c.State,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type CreateCompanyRequest struct {
	Name      string  `json:"name"`
	TradeName *string `json:"trade_name,omitempty"`
	CNPJ      *string `json:"cnpj,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.CNPJ != nil && !validator.IsValidCNPJ(*r.CNPJ) {
		errs = append(errs, validator.ValidationError{Field: "cnpj", Message: "invalid CNPJ"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCompanyRequest struct {
	Name      *string `json:"name,omitempty"`
	TradeName *string `json:"trade_name,omitempty"`
	CNPJ      *string `json:"cnpj,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.CNPJ != nil && !validator.IsValidCNPJ(*r.CNPJ) {
		errs = append(errs, validator.ValidationError{Field: "cnpj", Message: "invalid CNPJ"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
