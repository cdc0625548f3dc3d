package report

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
	"github.com/eventosfin/financeiro-backend-go/internal/domain/report"
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

func (f *fakeEventRepo) List(_ context.Context) ([]event.Event, error) { return f.events, nil }

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

func (f *fakeEventRepo) Create(_ context.Context, e event.Event) (event.Event, error) {
	return e, nil
}

func (f *fakeEventRepo) Update(_ context.Context, _ int64, _ event.UpdateEventRequest) error {
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, _ int64) error { return nil }

type fakePayableRepo struct{ payables []financial.Payable }

func (f *fakePayableRepo) List(_ context.Context) ([]financial.Payable, error) {
	return f.payables, nil
}

func (f *fakePayableRepo) GetByID(_ context.Context, _ int64) (financial.Payable, error) {
	return financial.Payable{}, pgx.ErrNoRows
}

func (f *fakePayableRepo) Create(_ context.Context, p financial.Payable) (financial.Payable, error) {
	return p, nil
}

func (f *fakePayableRepo) Update(_ context.Context, _ int64, _ financial.UpdatePayableRequest) error {
	return nil
}

func (f *fakePayableRepo) SetStatus(_ context.Context, _ int64, _ financial.Status, _ *time.Time) error {
	return nil
}

func (f *fakePayableRepo) Delete(_ context.Context, _ int64) error { return nil }

type fakeReceivableRepo struct{ receivables []financial.Receivable }

func (f *fakeReceivableRepo) List(_ context.Context) ([]financial.Receivable, error) {
	return f.receivables, nil
}

func (f *fakeReceivableRepo) GetByID(_ context.Context, _ int64) (financial.Receivable, error) {
	return financial.Receivable{}, pgx.ErrNoRows
}

func (f *fakeReceivableRepo) Create(_ context.Context, r financial.Receivable) (financial.Receivable, error) {
	return r, nil
}

func (f *fakeReceivableRepo) Update(_ context.Context, _ int64, _ financial.UpdateReceivableRequest) error {
	return nil
}

func (f *fakeReceivableRepo) SetStatus(_ context.Context, _ int64, _ financial.Status, _ *time.Time) error {
	return nil
}

func (f *fakeReceivableRepo) Delete(_ context.Context, _ int64) error { return nil }

type fakeRevenueRepo struct{ revenues []financial.DailyRevenue }

func (f *fakeRevenueRepo) List(_ context.Context) ([]financial.DailyRevenue, error) {
	return f.revenues, nil
}

func (f *fakeRevenueRepo) GetByID(_ context.Context, _ int64) (financial.DailyRevenue, error) {
	return financial.DailyRevenue{}, pgx.ErrNoRows
}

func (f *fakeRevenueRepo) ExistsForEventDate(_ context.Context, _ int64, _ time.Time) (bool, error) {
	return false, nil
}

func (f *fakeRevenueRepo) Create(_ context.Context, d financial.DailyRevenue) (financial.DailyRevenue, error) {
	return d, nil
}

func (f *fakeRevenueRepo) Update(_ context.Context, _ int64, _ financial.UpdateDailyRevenueRequest) error {
	return nil
}

func (f *fakeRevenueRepo) Delete(_ context.Context, _ int64) error { return nil }

func ptr(v int64) *int64 { return &v }

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newService() report.ReportService {
	links := &fakeLinks{
		companies: map[int64][]int64{10: {1}},
	}
	events := &fakeEventRepo{events: []event.Event{
		{ID: 1, CompanyID: 1, Name: "Festival Norte"},
		{ID: 2, CompanyID: 2, Name: "Festival Sul"},
	}}
	payables := &fakePayableRepo{payables: []financial.Payable{
		{ID: 1, EventID: ptr(1), Amount: amount("100.00"), DueDate: date("2026-06-10"), Status: financial.StatusAprovado},
		{ID: 2, EventID: ptr(1), Amount: amount("40.00"), DueDate: date("2026-06-20"), Status: financial.StatusCancelado},
		{ID: 3, EventID: ptr(2), Amount: amount("999.00"), DueDate: date("2026-06-10"), Status: financial.StatusPendente},
		{ID: 4, EventID: nil, Amount: amount("77.00"), DueDate: date("2026-06-10"), Status: financial.StatusPendente},
	}}
	receivables := &fakeReceivableRepo{receivables: []financial.Receivable{
		{ID: 1, EventID: ptr(1), Amount: amount("250.00"), DueDate: date("2026-06-15"), Status: financial.StatusAprovado},
		{ID: 2, EventID: ptr(1), Amount: amount("80.00"), DueDate: date("2026-07-15"), Status: financial.StatusPendente},
	}}
	revenues := &fakeRevenueRepo{revenues: []financial.DailyRevenue{
		{ID: 1, EventID: ptr(1), Date: date("2026-06-12"), CashAmount: amount("10.00"), CardAmount: amount("20.00"), PixAmount: amount("5.00")},
	}}

	return NewReportService(events, payables, receivables, revenues, authz.NewService(links, events))
}

func TestEventSummaries(t *testing.T) {
	t.Parallel()
	svc := newService()
	ctx := context.Background()

	t.Run("global role gets every event", func(t *testing.T) {
		got, err := svc.EventSummaries(ctx, 99, user.RoleAdministrador, report.Params{})
		require.NoError(t, err)
		require.Len(t, got, 2)

		// Cancelled payable excluded; orphan payable belongs to no event.
		assert.True(t, got[0].TotalPayable.Equal(amount("100.00")), got[0].TotalPayable.String())
		assert.True(t, got[0].TotalReceivable.Equal(amount("330.00")))
		assert.True(t, got[0].TotalRevenue.Equal(amount("35.00")))
		// net = receivable + revenue - payable
		assert.True(t, got[0].Net.Equal(amount("265.00")), got[0].Net.String())

		assert.Equal(t, "Festival Sul", got[1].EventName)
		assert.True(t, got[1].TotalPayable.Equal(amount("999.00")))
	})

	t.Run("company-scoped role only aggregates its events", func(t *testing.T) {
		got, err := svc.EventSummaries(ctx, 10, user.RoleCoordenadorEmpresa, report.Params{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].EventID)
	})

	t.Run("date range bounds the totals", func(t *testing.T) {
		from := date("2026-06-01")
		to := date("2026-06-30")
		got, err := svc.EventSummaries(ctx, 99, user.RoleAdministrador, report.Params{From: &from, To: &to})
		require.NoError(t, err)
		require.Len(t, got, 2)

		// The July receivable falls outside the window.
		assert.True(t, got[0].TotalReceivable.Equal(amount("250.00")))
	})

	t.Run("unlinked user gets an empty report", func(t *testing.T) {
		got, err := svc.EventSummaries(ctx, 42, user.RoleMonitor, report.Params{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
