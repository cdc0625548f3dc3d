package financial

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/eventosfin/financeiro-backend-go/internal/pkg/validator"
)

type PayableResponse struct {
	ID          int64           `json:"id"`
	EventID     *int64          `json:"event_id"`
	SupplierID  *int64          `json:"supplier_id,omitempty"`
	CategoryID  *int64          `json:"category_id,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func ToPayableResponse(p Payable) PayableResponse {
	return PayableResponse{
		ID:          p.ID,
		EventID:     p.EventID,
		SupplierID:  p.SupplierID,
		CategoryID:  p.CategoryID,
		Description: p.Description,
		Amount:      p.Amount,
		DueDate:     p.DueDate,
		PaidAt:      p.PaidAt,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type ReceivableResponse struct {
	ID          int64           `json:"id"`
	EventID     *int64          `json:"event_id"`
	ClientID    *int64          `json:"client_id,omitempty"`
	CategoryID  *int64          `json:"category_id,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
	ReceivedAt  *time.Time      `json:"received_at,omitempty"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func ToReceivableResponse(r Receivable) ReceivableResponse {
	return ReceivableResponse{
		ID:          r.ID,
		EventID:     r.EventID,
		ClientID:    r.ClientID,
		CategoryID:  r.CategoryID,
		Description: r.Description,
		Amount:      r.Amount,
		DueDate:     r.DueDate,
		ReceivedAt:  r.ReceivedAt,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type DailyRevenueResponse struct {
	ID         int64           `json:"id"`
	EventID    *int64          `json:"event_id"`
	Date       time.Time       `json:"date"`
	CashAmount decimal.Decimal `json:"cash_amount"`
	CardAmount decimal.Decimal `json:"card_amount"`
	PixAmount  decimal.Decimal `json:"pix_amount"`
	Total      decimal.Decimal `json:"total"`
	Notes      *string         `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func ToDailyRevenueResponse(d DailyRevenue) DailyRevenueResponse {
	return DailyRevenueResponse{
		ID:         d.ID,
		EventID:    d.EventID,
		Date:       d.Date,
		CashAmount: d.CashAmount,
		CardAmount: d.CardAmount,
		PixAmount:  d.PixAmount,
		Total:      d.Total(),
		Notes:      d.Notes,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

type CreatePayableRequest struct {
	EventID     int64  `json:"event_id"`
	SupplierID  *int64 `json:"supplier_id,omitempty"`
	CategoryID  *int64 `json:"category_id,omitempty"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	DueDate     string `json:"due_date"`

	amount  decimal.Decimal
	dueDate time.Time
}

// Validate parses the wire fields exactly once; the parsed values are read
// back through ParsedAmount and ParsedDueDate.
func (r *CreatePayableRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EventID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "event_id", Message: "event_id is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}
	if amount, ok := validator.IsPositiveAmount(r.Amount); ok {
		r.amount = amount
	} else {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be a positive decimal"})
	}
	if dueDate, ok := validator.IsValidDate(r.DueDate); ok {
		r.dueDate = dueDate
	} else {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "expected YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedAmount returns the amount parsed by Validate.
func (r *CreatePayableRequest) ParsedAmount() decimal.Decimal { return r.amount }

// ParsedDueDate returns the due date parsed by Validate.
func (r *CreatePayableRequest) ParsedDueDate() time.Time { return r.dueDate }

type UpdatePayableRequest struct {
	SupplierID  *int64  `json:"supplier_id,omitempty"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	Description *string `json:"description,omitempty"`
	Amount      *string `json:"amount,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

func (r *UpdatePayableRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Description != nil && validator.IsEmpty(*r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description cannot be empty"})
	}
	if r.Amount != nil {
		if _, ok := validator.IsPositiveAmount(*r.Amount); !ok {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be a positive decimal"})
		}
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "expected YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateReceivableRequest struct {
	EventID     int64  `json:"event_id"`
	ClientID    *int64 `json:"client_id,omitempty"`
	CategoryID  *int64 `json:"category_id,omitempty"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	DueDate     string `json:"due_date"`

	amount  decimal.Decimal
	dueDate time.Time
}

// Validate parses the wire fields exactly once; the parsed values are read
// back through ParsedAmount and ParsedDueDate.
func (r *CreateReceivableRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EventID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "event_id", Message: "event_id is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}
	if amount, ok := validator.IsPositiveAmount(r.Amount); ok {
		r.amount = amount
	} else {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be a positive decimal"})
	}
	if dueDate, ok := validator.IsValidDate(r.DueDate); ok {
		r.dueDate = dueDate
	} else {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "expected YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedAmount returns the amount parsed by Validate.
func (r *CreateReceivableRequest) ParsedAmount() decimal.Decimal { return r.amount }

// ParsedDueDate returns the due date parsed by Validate.
func (r *CreateReceivableRequest) ParsedDueDate() time.Time { return r.dueDate }

type UpdateReceivableRequest struct {
	ClientID    *int64  `json:"client_id,omitempty"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	Description *string `json:"description,omitempty"`
	Amount      *string `json:"amount,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

func (r *UpdateReceivableRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Description != nil && validator.IsEmpty(*r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description cannot be empty"})
	}
	if r.Amount != nil {
		if _, ok := validator.IsPositiveAmount(*r.Amount); !ok {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be a positive decimal"})
		}
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "expected YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateDailyRevenueRequest struct {
	EventID    int64   `json:"event_id"`
	Date       string  `json:"date"`
	CashAmount string  `json:"cash_amount"`
	CardAmount string  `json:"card_amount"`
	PixAmount  string  `json:"pix_amount"`
	Notes      *string `json:"notes,omitempty"`

	date            time.Time
	cash, card, pix decimal.Decimal
}

// Validate parses the wire fields exactly once; the parsed values are read
// back through ParsedDate and the ParsedXxxAmount accessors.
func (r *CreateDailyRevenueRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EventID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "event_id", Message: "event_id is required"})
	}
	if date, ok := validator.IsValidDate(r.Date); ok {
		r.date = date
	} else {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "expected YYYY-MM-DD"})
	}
	for _, a := range []struct {
		field string
		raw   string
		dst   *decimal.Decimal
	}{
		{"cash_amount", r.CashAmount, &r.cash},
		{"card_amount", r.CardAmount, &r.card},
		{"pix_amount", r.PixAmount, &r.pix},
	} {
		if amount, ok := validator.IsNonNegativeAmount(a.raw); ok {
			*a.dst = amount
		} else {
			errs = append(errs, validator.ValidationError{Field: a.field, Message: "amount must be a non-negative decimal"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedDate returns the date parsed by Validate.
func (r *CreateDailyRevenueRequest) ParsedDate() time.Time { return r.date }

// ParsedCashAmount returns the cash amount parsed by Validate.
func (r *CreateDailyRevenueRequest) ParsedCashAmount() decimal.Decimal { return r.cash }

// ParsedCardAmount returns the card amount parsed by Validate.
func (r *CreateDailyRevenueRequest) ParsedCardAmount() decimal.Decimal { return r.card }

// ParsedPixAmount returns the PIX amount parsed by Validate.
func (r *CreateDailyRevenueRequest) ParsedPixAmount() decimal.Decimal { return r.pix }

type UpdateDailyRevenueRequest struct {
	CashAmount *string `json:"cash_amount,omitempty"`
	CardAmount *string `json:"card_amount,omitempty"`
	PixAmount  *string `json:"pix_amount,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *UpdateDailyRevenueRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, amount := range map[string]*string{
		"cash_amount": r.CashAmount,
		"card_amount": r.CardAmount,
		"pix_amount":  r.PixAmount,
	} {
		if amount == nil {
			continue
		}
		if _, ok := validator.IsNonNegativeAmount(*amount); !ok {
			errs = append(errs, validator.ValidationError{Field: field, Message: "amount must be a non-negative decimal"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
