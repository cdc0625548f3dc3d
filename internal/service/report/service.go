package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eventosfin/financeiro-backend-go/internal/authz"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/event"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/financial"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/report"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
)

type ReportServiceImpl struct {
	events      event.EventRepository
	payables    financial.PayableRepository
	receivables financial.ReceivableRepository
	revenues    financial.DailyRevenueRepository
	authz       *authz.Service
}

func NewReportService(
	events event.EventRepository,
	payables financial.PayableRepository,
	receivables financial.ReceivableRepository,
	revenues financial.DailyRevenueRepository,
	authzService *authz.Service,
) report.ReportService {
	return &ReportServiceImpl{
		events:      events,
		payables:    payables,
		receivables: receivables,
		revenues:    revenues,
		authz:       authzService,
	}
}

// EventSummaries implements report.ReportService. The event list is narrowed
// to the caller's entitlement first, so every record aggregated below belongs
// to an event the caller can see.
func (r *ReportServiceImpl) EventSummaries(ctx context.Context, userID int64, role user.Role, params report.Params) ([]report.EventSummary, error) {
	events, err := r.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	events, err = authz.FilterEvents(ctx, r.authz, userID, role, events)
	if err != nil {
		return nil, err
	}

	summaries := make([]report.EventSummary, 0, len(events))
	index := make(map[int64]int, len(events))
	for _, e := range events {
		index[e.ID] = len(summaries)
		summaries = append(summaries, report.EventSummary{
			EventID:         e.ID,
			EventName:       e.Name,
			TotalPayable:    decimal.Zero,
			TotalReceivable: decimal.Zero,
			TotalRevenue:    decimal.Zero,
			Net:             decimal.Zero,
		})
	}

	payables, err := r.payables.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payables: %w", err)
	}
	for _, p := range payables {
		if p.Status == financial.StatusCancelado || p.EventID == nil {
			continue
		}
		if !inRange(p.DueDate, params) {
			continue
		}
		if i, ok := index[*p.EventID]; ok {
			summaries[i].TotalPayable = summaries[i].TotalPayable.Add(p.Amount)
		}
	}

	receivables, err := r.receivables.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list receivables: %w", err)
	}
	for _, rec := range receivables {
		if rec.Status == financial.StatusCancelado || rec.EventID == nil {
			continue
		}
		if !inRange(rec.DueDate, params) {
			continue
		}
		if i, ok := index[*rec.EventID]; ok {
			summaries[i].TotalReceivable = summaries[i].TotalReceivable.Add(rec.Amount)
		}
	}

	revenues, err := r.revenues.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily revenues: %w", err)
	}
	for _, d := range revenues {
		if d.EventID == nil || !inRange(d.Date, params) {
			continue
		}
		if i, ok := index[*d.EventID]; ok {
			summaries[i].TotalRevenue = summaries[i].TotalRevenue.Add(d.Total())
		}
	}

	for i := range summaries {
		summaries[i].Net = summaries[i].TotalReceivable.
			Add(summaries[i].TotalRevenue).
			Sub(summaries[i].TotalPayable)
	}
	return summaries, nil
}

func inRange(date time.Time, params report.Params) bool {
	if params.From != nil && date.Before(*params.From) {
		return false
	}
	if params.To != nil && date.After(*params.To) {
		return false
	}
	return true
}
