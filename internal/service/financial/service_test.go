package financial

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventosfin/financeiro-backend-go/internal/authz"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/event"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/financial"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
)

type fakeLinks struct {
	companies map[int64][]int64
	events    map[int64][]int64
}

func (f *fakeLinks) CompanyIDsByUser(_ context.Context, userID int64) ([]int64, error) {
	return f.companies[userID], nil
}

func (f *fakeLinks) EventIDsByUser(_ context.Context, userID int64) ([]int64, error) {
	return f.events[userID], nil
}

type fakeEventRepo struct {
	events []event.Event
}

func (f *fakeEventRepo) List(_ context.Context) ([]event.Event, error) {
	return f.events, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id int64) (event.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return event.Event{}, pgx.ErrNoRows
}

func (f *fakeEventRepo) IDsByCompanies(_ context.Context, companyIDs []int64) ([]int64, error) {
	set := make(map[int64]struct{}, len(companyIDs))
	for _, id := range companyIDs {
		set[id] = struct{}{}
	}
	var ids []int64
	for _, e := range f.events {
		if _, ok := set[e.CompanyID]; ok {
			ids = append(ids, e.ID)
		}
	}
	return ids, nil
}

func (f *fakeEventRepo) Create(_ context.Context, newEvent event.Event) (event.Event, error) {
	newEvent.ID = int64(len(f.events) + 1)
	f.events = append(f.events, newEvent)
	return newEvent, nil
}

func (f *fakeEventRepo) Update(_ context.Context, _ int64, _ event.UpdateEventRequest) error {
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, _ int64) error { return nil }

type fakePayableRepo struct {
	payables []financial.Payable
	nextID   int64
}

func (f *fakePayableRepo) List(_ context.Context) ([]financial.Payable, error) {
	return f.payables, nil
}

func (f *fakePayableRepo) GetByID(_ context.Context, id int64) (financial.Payable, error) {
	for _, p := range f.payables {
		if p.ID == id {
			return p, nil
		}
	}
	return financial.Payable{}, pgx.ErrNoRows
}

func (f *fakePayableRepo) Create(_ context.Context, p financial.Payable) (financial.Payable, error) {
	f.nextID++
	p.ID = f.nextID
	f.payables = append(f.payables, p)
	return p, nil
}

func (f *fakePayableRepo) Update(_ context.Context, id int64, _ financial.UpdatePayableRequest) error {
	for _, p := range f.payables {
		if p.ID == id {
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakePayableRepo) SetStatus(_ context.Context, id int64, status financial.Status, settledAt *time.Time) error {
	for i := range f.payables {
		if f.payables[i].ID == id {
			f.payables[i].Status = status
			f.payables[i].PaidAt = settledAt
			return nil
		}
	}
	return financial.ErrRecordNotFound
}

func (f *fakePayableRepo) Delete(_ context.Context, id int64) error {
	for i := range f.payables {
		if f.payables[i].ID == id {
			f.payables = append(f.payables[:i], f.payables[i+1:]...)
			return nil
		}
	}
	return financial.ErrRecordNotFound
}

type fakeRevenueRepo struct {
	revenues []financial.DailyRevenue
	nextID   int64
}

func (f *fakeRevenueRepo) List(_ context.Context) ([]financial.DailyRevenue, error) {
	return f.revenues, nil
}

func (f *fakeRevenueRepo) GetByID(_ context.Context, id int64) (financial.DailyRevenue, error) {
	for _, d := range f.revenues {
		if d.ID == id {
			return d, nil
		}
	}
	return financial.DailyRevenue{}, pgx.ErrNoRows
}

func (f *fakeRevenueRepo) ExistsForEventDate(_ context.Context, eventID int64, date time.Time) (bool, error) {
	for _, d := range f.revenues {
		if d.EventID != nil && *d.EventID == eventID && d.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRevenueRepo) Create(_ context.Context, d financial.DailyRevenue) (financial.DailyRevenue, error) {
	f.nextID++
	d.ID = f.nextID
	f.revenues = append(f.revenues, d)
	return d, nil
}

func (f *fakeRevenueRepo) Update(_ context.Context, _ int64, _ financial.UpdateDailyRevenueRequest) error {
	return nil
}

func (f *fakeRevenueRepo) Delete(_ context.Context, _ int64) error { return nil }

type fakeReceivableRepo struct {
	receivables []financial.Receivable
}

func (f *fakeReceivableRepo) List(_ context.Context) ([]financial.Receivable, error) {
	return f.receivables, nil
}

func (f *fakeReceivableRepo) GetByID(_ context.Context, id int64) (financial.Receivable, error) {
	for _, r := range f.receivables {
		if r.ID == id {
			return r, nil
		}
	}
	return financial.Receivable{}, pgx.ErrNoRows
}

func (f *fakeReceivableRepo) Create(_ context.Context, r financial.Receivable) (financial.Receivable, error) {
	r.ID = int64(len(f.receivables) + 1)
	f.receivables = append(f.receivables, r)
	return r, nil
}

func (f *fakeReceivableRepo) Update(_ context.Context, _ int64, _ financial.UpdateReceivableRequest) error {
	return nil
}

func (f *fakeReceivableRepo) SetStatus(_ context.Context, id int64, status financial.Status, settledAt *time.Time) error {
	for i := range f.receivables {
		if f.receivables[i].ID == id {
			f.receivables[i].Status = status
			f.receivables[i].ReceivedAt = settledAt
			return nil
		}
	}
	return financial.ErrRecordNotFound
}

func (f *fakeReceivableRepo) Delete(_ context.Context, _ int64) error { return nil }

func ptr(v int64) *int64 { return &v }

// Two companies, one event each. User 10 is linked to company 1, user 20 to
// event 2 only.
func newFixture() (*FinancialServiceImpl, *fakePayableRepo, *fakeRevenueRepo) {
	links := &fakeLinks{
		companies: map[int64][]int64{10: {1}},
		events:    map[int64][]int64{20: {2}},
	}
	events := &fakeEventRepo{events: []event.Event{
		{ID: 1, CompanyID: 1, Name: "Festival Norte"},
		{ID: 2, CompanyID: 2, Name: "Festival Sul"},
	}}
	payables := &fakePayableRepo{payables: []financial.Payable{
		{ID: 1, EventID: ptr(1), Description: "palco", Amount: decimal.NewFromInt(100), Status: financial.StatusPendente},
		{ID: 2, EventID: ptr(2), Description: "som", Amount: decimal.NewFromInt(200), Status: financial.StatusPendente},
		{ID: 3, EventID: nil, Description: "orfao", Amount: decimal.NewFromInt(50), Status: financial.StatusPendente},
	}, nextID: 3}
	revenues := &fakeRevenueRepo{}

	svc := NewFinancialService(payables, &fakeReceivableRepo{}, revenues, events, authz.NewService(links, events)).(*FinancialServiceImpl)
	return svc, payables, revenues
}

func TestListPayablesScoping(t *testing.T) {
	t.Parallel()
	svc, _, _ := newFixture()
	ctx := context.Background()

	t.Run("global role sees everything including orphans", func(t *testing.T) {
		got, err := svc.ListPayables(ctx, 99, user.RoleAdministrador)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("company-scoped role sees only its company's events", func(t *testing.T) {
		got, err := svc.ListPayables(ctx, 10, user.RoleGerenteRegional)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("event-scoped role sees only linked events", func(t *testing.T) {
		got, err := svc.ListPayables(ctx, 20, user.RoleOperadorCaixa)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(2), got[0].ID)
	})

	t.Run("unlinked user sees nothing", func(t *testing.T) {
		got, err := svc.ListPayables(ctx, 42, user.RoleMonitor)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestGetPayableAccess(t *testing.T) {
	t.Parallel()
	svc, _, _ := newFixture()
	ctx := context.Background()

	t.Run("denied outside entitlement", func(t *testing.T) {
		_, err := svc.GetPayable(ctx, 10, user.RoleGerenteRegional, 2)
		assert.ErrorIs(t, err, financial.ErrRecordAccessDenied)
	})

	t.Run("orphan record denied for non-global", func(t *testing.T) {
		_, err := svc.GetPayable(ctx, 10, user.RoleGerenteRegional, 3)
		assert.ErrorIs(t, err, financial.ErrRecordAccessDenied)
	})

	t.Run("orphan record visible to global", func(t *testing.T) {
		got, err := svc.GetPayable(ctx, 99, user.RoleLiderFinanceiro, 3)
		require.NoError(t, err)
		assert.Nil(t, got.EventID)
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := svc.GetPayable(ctx, 99, user.RoleAdministrador, 404)
		assert.ErrorIs(t, err, financial.ErrRecordNotFound)
	})
}

func TestCreatePayable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	req := financial.CreatePayableRequest{
		EventID:     2,
		Description: "seguranca",
		Amount:      "1500.50",
		DueDate:     "2026-10-01",
	}

	t.Run("monitor cannot write", func(t *testing.T) {
		svc, _, _ := newFixture()
		_, err := svc.CreatePayable(ctx, 20, user.RoleMonitor, req)
		assert.ErrorIs(t, err, user.ErrFinancialWriteNotAllowed)
	})

	t.Run("event-scoped writer on linked event", func(t *testing.T) {
		svc, _, _ := newFixture()
		created, err := svc.CreatePayable(ctx, 20, user.RoleOperadorCaixa, req)
		require.NoError(t, err)
		assert.Equal(t, financial.StatusPendente, created.Status)
		assert.Equal(t, int64(20), created.CreatedBy)
		assert.True(t, created.Amount.Equal(decimal.RequireFromString("1500.50")))
		assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), created.DueDate)
	})

	t.Run("denied on unlinked event", func(t *testing.T) {
		svc, _, _ := newFixture()
		badReq := req
		badReq.EventID = 1
		_, err := svc.CreatePayable(ctx, 20, user.RoleOperadorCaixa, badReq)
		assert.ErrorIs(t, err, financial.ErrRecordAccessDenied)
	})

	t.Run("invalid amount rejected before any lookup", func(t *testing.T) {
		svc, _, _ := newFixture()
		badReq := req
		badReq.Amount = "-3"
		_, err := svc.CreatePayable(ctx, 99, user.RoleAdministrador, badReq)
		assert.Error(t, err)
	})
}

func TestPayableLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("approve requires capability", func(t *testing.T) {
		svc, _, _ := newFixture()
		err := svc.ApprovePayable(ctx, 20, user.RoleOperadorCaixa, 2)
		assert.ErrorIs(t, err, financial.ErrApprovalNotAllowed)
	})

	t.Run("settle before approval is rejected", func(t *testing.T) {
		svc, _, _ := newFixture()
		err := svc.SettlePayable(ctx, 99, user.RoleAdministrador, 1)
		assert.ErrorIs(t, err, financial.ErrRecordNotApproved)
	})

	t.Run("approve then settle then no cancel", func(t *testing.T) {
		svc, payables, _ := newFixture()

		require.NoError(t, svc.ApprovePayable(ctx, 99, user.RoleAdministrador, 1))
		assert.Equal(t, financial.StatusAprovado, payables.payables[0].Status)

		require.NoError(t, svc.SettlePayable(ctx, 99, user.RoleAdministrador, 1))
		assert.Equal(t, financial.StatusPago, payables.payables[0].Status)
		assert.NotNil(t, payables.payables[0].PaidAt)

		err := svc.CancelPayable(ctx, 99, user.RoleAdministrador, 1)
		assert.ErrorIs(t, err, financial.ErrRecordAlreadyPaid)
	})

	t.Run("double approval is rejected", func(t *testing.T) {
		svc, _, _ := newFixture()
		require.NoError(t, svc.ApprovePayable(ctx, 99, user.RoleAdministrador, 1))
		err := svc.ApprovePayable(ctx, 99, user.RoleAdministrador, 1)
		assert.ErrorIs(t, err, financial.ErrRecordAlreadyApproved)
	})

	t.Run("cancelled record stays cancelled", func(t *testing.T) {
		svc, _, _ := newFixture()
		require.NoError(t, svc.CancelPayable(ctx, 99, user.RoleAdministrador, 1))
		err := svc.ApprovePayable(ctx, 99, user.RoleAdministrador, 1)
		assert.ErrorIs(t, err, financial.ErrRecordCancelled)
	})

	t.Run("approval outside entitlement is denied", func(t *testing.T) {
		svc, _, _ := newFixture()
		// gerente_regional can approve, but only records it can reach.
		err := svc.ApprovePayable(ctx, 10, user.RoleGerenteRegional, 2)
		assert.ErrorIs(t, err, financial.ErrRecordAccessDenied)
	})

	t.Run("paid record cannot be deleted", func(t *testing.T) {
		svc, _, _ := newFixture()
		require.NoError(t, svc.ApprovePayable(ctx, 99, user.RoleAdministrador, 1))
		require.NoError(t, svc.SettlePayable(ctx, 99, user.RoleAdministrador, 1))
		err := svc.DeletePayable(ctx, 99, user.RoleAdministrador, 1)
		assert.ErrorIs(t, err, financial.ErrRecordAlreadyPaid)
	})
}

func TestCreateDailyRevenue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	req := financial.CreateDailyRevenueRequest{
		EventID:    2,
		Date:       "2026-09-01",
		CashAmount: "1000.00",
		CardAmount: "2500.00",
		PixAmount:  "300.00",
	}

	t.Run("creates and totals", func(t *testing.T) {
		svc, _, _ := newFixture()
		created, err := svc.CreateDailyRevenue(ctx, 20, user.RoleOperadorCaixa, req)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), created.Date)
		assert.True(t, created.CashAmount.Equal(decimal.RequireFromString("1000.00")))
		assert.True(t, created.CardAmount.Equal(decimal.RequireFromString("2500.00")))
		assert.True(t, created.PixAmount.Equal(decimal.RequireFromString("300.00")))
		assert.True(t, created.Total().Equal(decimal.RequireFromString("3800.00")))
	})

	t.Run("duplicate event+date rejected", func(t *testing.T) {
		svc, _, _ := newFixture()
		_, err := svc.CreateDailyRevenue(ctx, 20, user.RoleOperadorCaixa, req)
		require.NoError(t, err)

		_, err = svc.CreateDailyRevenue(ctx, 20, user.RoleOperadorCaixa, req)
		assert.ErrorIs(t, err, financial.ErrDuplicateDailyRevenue)
	})

	t.Run("same date on another event is fine", func(t *testing.T) {
		svc, _, _ := newFixture()
		_, err := svc.CreateDailyRevenue(ctx, 20, user.RoleOperadorCaixa, req)
		require.NoError(t, err)

		otherEvent := req
		otherEvent.EventID = 1
		_, err = svc.CreateDailyRevenue(ctx, 99, user.RoleAdministrador, otherEvent)
		assert.NoError(t, err)
	})
}
