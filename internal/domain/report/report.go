// Package report holds the financial summary report types. Reports are always
// computed over permission-filtered data, so two users asking for the same
// report can legitimately get different numbers.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
)

// EventSummary aggregates one event's financials inside the requested range.
type EventSummary struct {
	EventID         int64           `json:"event_id"`
	EventName       string          `json:"event_name"`
	TotalPayable    decimal.Decimal `json:"total_payable"`
	TotalReceivable decimal.Decimal `json:"total_receivable"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	Net             decimal.Decimal `json:"net"`
}

// Params bounds the report. Nil dates mean unbounded on that side.
type Params struct {
	From *time.Time
	To   *time.Time
}

type ReportService interface {
	// EventSummaries returns one summary per event the caller can see,
	// ordered by event id. Cancelled records are excluded from the totals.
	EventSummaries(ctx context.Context, userID int64, role user.Role, params Params) ([]EventSummary, error)
}
