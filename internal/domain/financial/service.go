package financial

import (
	"context"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
)

// FinancialService is the role-aware surface over payables, receivables and
// daily revenues. List calls fetch everything and narrow to the caller's
// entitlement; single-record reads deny access instead of pretending the
// record does not exist; mutations require both the write capability and
// access to the record's event.
type FinancialService interface {
	ListPayables(ctx context.Context, userID int64, role user.Role) ([]Payable, error)
	GetPayable(ctx context.Context, userID int64, role user.Role, id int64) (Payable, error)
	CreatePayable(ctx context.Context, userID int64, role user.Role, req CreatePayableRequest) (Payable, error)
	UpdatePayable(ctx context.Context, userID int64, role user.Role, id int64, req UpdatePayableRequest) error
	ApprovePayable(ctx context.Context, userID int64, role user.Role, id int64) error
	SettlePayable(ctx context.Context, userID int64, role user.Role, id int64) error
	CancelPayable(ctx context.Context, userID int64, role user.Role, id int64) error
	DeletePayable(ctx context.Context, userID int64, role user.Role, id int64) error

	ListReceivables(ctx context.Context, userID int64, role user.Role) ([]Receivable, error)
	GetReceivable(ctx context.Context, userID int64, role user.Role, id int64) (Receivable, error)
	CreateReceivable(ctx context.Context, userID int64, role user.Role, req CreateReceivableRequest) (Receivable, error)
	UpdateReceivable(ctx context.Context, userID int64, role user.Role, id int64, req UpdateReceivableRequest) error
	ApproveReceivable(ctx context.Context, userID int64, role user.Role, id int64) error
	SettleReceivable(ctx context.Context, userID int64, role user.Role, id int64) error
	CancelReceivable(ctx context.Context, userID int64, role user.Role, id int64) error
	DeleteReceivable(ctx context.Context, userID int64, role user.Role, id int64) error

	ListDailyRevenues(ctx context.Context, userID int64, role user.Role) ([]DailyRevenue, error)
	GetDailyRevenue(ctx context.Context, userID int64, role user.Role, id int64) (DailyRevenue, error)
	CreateDailyRevenue(ctx context.Context, userID int64, role user.Role, req CreateDailyRevenueRequest) (DailyRevenue, error)
	UpdateDailyRevenue(ctx context.Context, userID int64, role user.Role, id int64, req UpdateDailyRevenueRequest) error
	DeleteDailyRevenue(ctx context.Context, userID int64, role user.Role, id int64) error
}
