package financial

import (
	"context"
	"time"
)

type PayableRepository interface {
	List(ctx context.Context) ([]Payable, error)
	GetByID(ctx context.Context, id int64) (Payable, error)
	Create(ctx context.Context, p Payable) (Payable, error)
	Update(ctx context.Context, id int64, req UpdatePayableRequest) error
	SetStatus(ctx context.Context, id int64, status Status, settledAt *time.Time) error
	Delete(ctx context.Context, id int64) error
}

type ReceivableRepository interface {
	List(ctx context.Context) ([]Receivable, error)
	GetByID(ctx context.Context, id int64) (Receivable, error)
	Create(ctx context.Context, r Receivable) (Receivable, error)
	Update(ctx context.Context, id int64, req UpdateReceivableRequest) error
	SetStatus(ctx context.Context, id int64, status Status, settledAt *time.Time) error
	Delete(ctx context.Context, id int64) error
}

type DailyRevenueRepository interface {
	List(ctx context.Context) ([]DailyRevenue, error)
	GetByID(ctx context.Context, id int64) (DailyRevenue, error)
	ExistsForEventDate(ctx context.Context, eventID int64, date time.Time) (bool, error)
	Create(ctx context.Context, d DailyRevenue) (DailyRevenue, error)
	Update(ctx context.Context, id int64, req UpdateDailyRevenueRequest) error
	Delete(ctx context.Context, id int64) error
}
