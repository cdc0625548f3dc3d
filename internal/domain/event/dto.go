package event

import (
	"time"

	"github.com/eventosfin/financeiro-backend-go/internal/pkg/validator"
)

type EventResponse struct {
	ID        int64      `json:"id"`
	CompanyID int64      `json:"company_id"`
	Name      string     `json:"name"`
	City      *string    `json:"city,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ToResponse(e Event) EventResponse {
	return EventResponse{
		ID:        e.ID,
		CompanyID: e.CompanyID,
		Name:      e.Name,
		City:      e.City,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		Active:    e.Active,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

type CreateEventRequest struct {
	CompanyID int64   `json:"company_id"`
	Name      string  `json:"name"`
	City      *string `json:"city,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`

	start, end *time.Time
}

// Validate parses the optional dates exactly once; the parsed values are read
// back through ParsedStartDate and ParsedEndDate.
func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CompanyID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "company_id", Message: "company_id is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if r.StartDate != nil {
		if start, ok := validator.IsValidDate(*r.StartDate); ok {
			r.start = &start
		} else {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "expected YYYY-MM-DD"})
		}
	}
	if r.EndDate != nil {
		if end, ok := validator.IsValidDate(*r.EndDate); ok {
			r.end = &end
		} else {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "expected YYYY-MM-DD"})
		}
	}
	if r.start != nil && r.end != nil && r.end.Before(*r.start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date cannot precede start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedStartDate returns the start date parsed by Validate, nil when absent.
func (r *CreateEventRequest) ParsedStartDate() *time.Time { return r.start }

// ParsedEndDate returns the end date parsed by Validate, nil when absent.
func (r *CreateEventRequest) ParsedEndDate() *time.Time { return r.end }

type UpdateEventRequest struct {
	CompanyID *int64  `json:"company_id,omitempty"`
	Name      *string `json:"name,omitempty"`
	City      *string `json:"city,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

func (r *UpdateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "expected YYYY-MM-DD"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "expected YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
