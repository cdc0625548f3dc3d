package financial

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPendente  Status = "pendente"
	StatusAprovado  Status = "aprovado"
	StatusPago      Status = "pago"
	StatusCancelado Status = "cancelado"
)

// Payable is an account payable. It belongs to exactly one event via EventID;
// a nil EventID means the record is orphaned and is never visible to
// non-global roles.
type Payable struct {
	ID          int64
	EventID     *int64
	SupplierID  *int64
	CategoryID  *int64
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
	PaidAt      *time.Time
	Status      Status
	CreatedBy   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EventRef implements the authz event-ownership contract. ok is false when
// the record carries no event reference.
func (p Payable) EventRef() (int64, bool) {
	if p.EventID == nil {
		return 0, false
	}
	return *p.EventID, true
}

// Receivable is an account receivable, same ownership shape as Payable.
type Receivable struct {
	ID          int64
	EventID     *int64
	ClientID    *int64
	CategoryID  *int64
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
	ReceivedAt  *time.Time
	Status      Status
	CreatedBy   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r Receivable) EventRef() (int64, bool) {
	if r.EventID == nil {
		return 0, false
	}
	return *r.EventID, true
}

// DailyRevenue is one day of gate/bar takings for an event, split by payment
// method.
type DailyRevenue struct {
	ID         int64
	EventID    *int64
	Date       time.Time
	CashAmount decimal.Decimal
	CardAmount decimal.Decimal
	PixAmount  decimal.Decimal
	Notes      *string
	CreatedBy  int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (d DailyRevenue) EventRef() (int64, bool) {
	if d.EventID == nil {
		return 0, false
	}
	return *d.EventID, true
}

// Total sums the three payment-method columns.
func (d DailyRevenue) Total() decimal.Decimal {
	return d.CashAmount.Add(d.CardAmount).Add(d.PixAmount)
}
