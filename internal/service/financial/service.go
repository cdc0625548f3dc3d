package financial

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/eventosfin/financeiro-backend-go/internal/authz"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/event"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/financial"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
)

type FinancialServiceImpl struct {
	payables    financial.PayableRepository
	receivables financial.ReceivableRepository
	revenues    financial.DailyRevenueRepository
	events      event.EventRepository
	authz       *authz.Service
}

func NewFinancialService(
	payables financial.PayableRepository,
	receivables financial.ReceivableRepository,
	revenues financial.DailyRevenueRepository,
	events event.EventRepository,
	authzService *authz.Service,
) financial.FinancialService {
	return &FinancialServiceImpl{
		payables:    payables,
		receivables: receivables,
		revenues:    revenues,
		events:      events,
		authz:       authzService,
	}
}

// checkEventAccess resolves the record's event and verifies the caller can
// reach it. Records without an event are only reachable by global roles.
func (f *FinancialServiceImpl) checkEventAccess(ctx context.Context, userID int64, role user.Role, eventID *int64) error {
	if user.HasGlobalAccess(role) {
		return nil
	}
	if eventID == nil {
		return financial.ErrRecordAccessDenied
	}

	eventData, err := f.events.GetByID(ctx, *eventID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return financial.ErrRecordAccessDenied
		}
		return fmt.Errorf("failed to get event by ID: %w", err)
	}
	if !f.authz.CanAccessEvent(ctx, userID, role, eventData.ID, eventData.CompanyID) {
		return financial.ErrRecordAccessDenied
	}
	return nil
}

// checkWrite combines the write capability with event access.
func (f *FinancialServiceImpl) checkWrite(ctx context.Context, userID int64, role user.Role, eventID *int64) error {
	if !user.CanManageFinancials(role) {
		return user.ErrFinancialWriteNotAllowed
	}
	return f.checkEventAccess(ctx, userID, role, eventID)
}

func transition(current financial.Status, target financial.Status) error {
	switch current {
	case financial.StatusCancelado:
		return financial.ErrRecordCancelled
	case financial.StatusPago:
		return financial.ErrRecordAlreadyPaid
	case financial.StatusAprovado:
		if target == financial.StatusAprovado {
			return financial.ErrRecordAlreadyApproved
		}
	case financial.StatusPendente:
		if target == financial.StatusPago {
			// Settling skips approval; force the two-step lifecycle.
			return financial.ErrRecordNotApproved
		}
	}
	return nil
}

// ListPayables implements financial.FinancialService.
func (f *FinancialServiceImpl) ListPayables(ctx context.Context, userID int64, role user.Role) ([]financial.Payable, error) {
	payables, err := f.payables.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payables: %w", err)
	}
	return authz.FilterFinancials(ctx, f.authz, userID, role, payables)
}

// GetPayable implements financial.FinancialService.
func (f *FinancialServiceImpl) GetPayable(ctx context.Context, userID int64, role user.Role, id int64) (financial.Payable, error) {
	p, err := f.payables.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return financial.Payable{}, financial.ErrRecordNotFound
		}
		return financial.Payable{}, fmt.Errorf("failed to get payable by ID: %w", err)
	}
	if err := f.checkEventAccess(ctx, userID, role, p.EventID); err != nil {
		return financial.Payable{}, err
	}
	return p, nil
}

// CreatePayable implements financial.FinancialService.
func (f *FinancialServiceImpl) CreatePayable(ctx context.Context, userID int64, role user.Role, req financial.CreatePayableRequest) (financial.Payable, error) {
	if err := req.Validate(); err != nil {
		return financial.Payable{}, err
	}
	if err := f.checkWrite(ctx, userID, role, &req.EventID); err != nil {
		return financial.Payable{}, err
	}

	created, err := f.payables.Create(ctx, financial.Payable{
		EventID:     &req.EventID,
		SupplierID:  req.SupplierID,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Amount:      req.ParsedAmount(),
		DueDate:     req.ParsedDueDate(),
		Status:      financial.StatusPendente,
		CreatedBy:   userID,
	})
	if err != nil {
		return financial.Payable{}, fmt.Errorf("failed to create payable: %w", err)
	}
	return created, nil
}

// UpdatePayable implements financial.FinancialService.
func (f *FinancialServiceImpl) UpdatePayable(ctx context.Context, userID int64, role user.Role, id int64, req financial.UpdatePayableRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	p, err := f.GetPayable(ctx, userID, role, id)
	if err != nil {
		return err
	}
	if !user.CanManageFinancials(role) {
		return user.ErrFinancialWriteNotAllowed
	}
	if p.Status == financial.StatusCancelado {
		return financial.ErrRecordCancelled
	}

	if err := f.payables.Update(ctx, id, req); err != nil {
		return fmt.Errorf("failed to update payable: %w", err)
	}
	return nil
}

// ApprovePayable implements financial.FinancialService.
func (f *FinancialServiceImpl) ApprovePayable(ctx context.Context, userID int64, role user.Role, id int64) error {
	if !user.CanApproveFinancials(role) {
		return financial.ErrApprovalNotAllowed
	}
	p, err := f.GetPayable(ctx, userID, role, id)
	if err != nil {
		return err
	}
	if err := transition(p.Status, financial.StatusAprovado); err != nil {
		return err
	}
	return f.payables.SetStatus(ctx, id, financial.StatusAprovado, nil)
}

// SettlePayable implements financial.FinancialService. Marks an approved
// payable as paid, stamping paid_at.
func (f *FinancialServiceImpl) SettlePayable(ctx context.Context, userID int64, role user.Role, id int64) error {
	p, err := f.GetPayable(ctx, userID, role, id)
	if err != nil {
		return err
	}
	if !user.CanManageFinancials(role) {
		return user.ErrFinancialWriteNotAllowed
	}
	if err := transition(p.Status, financial.StatusPago); err != nil {
		return err
	}
	now := time.Now()
	return f.payables.SetStatus(ctx, id, financial.StatusPago, &now)
}

// CancelPayable implements financial.FinancialService.
func (f *FinancialServiceImpl) CancelPayable(ctx context.Context, userID int64, role user.Role, id int64) error {
	p, err := f.GetPayable(ctx, userID, role, id)
	if err != nil {
		return err
	}
	if !user.CanManageFinancials(role) {
		return user.ErrFinancialWriteNotAllowed
	}
	if err := transition(p.Status, financial.StatusCancelado); err != nil {
		return err
	}
	return f.payables.SetStatus(ctx, id, financial.StatusCancelado, nil)
}

// DeletePayable implements financial.FinancialService.
func (f *FinancialServiceImpl) DeletePayable(ctx context.Context, userID int64, role user.Role, id int64) error {
	p, err := f.GetPayable(ctx, userID, role, id)
	if err != nil {
		return err
	}
	if !user.CanManageFinancials(role) {
		return user.ErrFinancialWriteNotAllowed
	}
	if p.Status == financial.StatusPago {
		return financial.ErrRecordAlreadyPaid
	}
	return f.payables.Delete(ctx, id)
}

// ListReceivables implements financial.FinancialService.
func (f *FinancialServiceImpl) ListReceivables(ctx context.Context, userID int64, role user.Role) ([]financial.Receivable, error) {
	receivables, err := f.receivables.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list receivables: %w", err)
	}
	return authz.FilterFinancials(ctx, f.authz, userID, role, receivables)
}

// GetReceivable implements financial.FinancialService.
func (f *FinancialServiceImpl) GetReceivable(ctx context.Context, userID int64, role user.Role, id int64) (financial.Receivable, error) {
	r, err := f.receivables.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return financial.Receivable{}, financial.ErrRecordNotFound
		}
		return financial.Receivable{}, fmt.Errorf("failed to get receivable by ID: %w", err)
	}
	if err := f.checkEventAccess(ctx, userID, role, r.EventID); err != nil {
		return financial.Receivable{}, err
	}
	return r, nil
}

// CreateReceivable implements financial.FinancialService.
func (f *FinancialServiceImpl) CreateReceivable(ctx context.Context, userID int64, role user.Role, req financial.CreateReceivableRequest) (financial.Receivable, error) {
	if err := req.Validate(); err != nil {
		return financial.Receivable{}, err
	}
	if err := f.checkWrite(ctx, userID, role, &req.EventID); err != nil {
		return financial.Receivable{}, err
	}

	created, err := f.receivables.Create(ctx, financial.Receivable{
		EventID:     &req.EventID,
		ClientID:    req.ClientID,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Amount:      req.ParsedAmount(),
		DueDate:     req.ParsedDueDate(),
		Status:      financial.StatusPendente,
		CreatedBy:   userID,
	})
	if err != nil {
		return financial.Receivable{}, fmt.Errorf("failed to create receivable: %w", err)
	}
	return created, nil
}

// UpdateReceivable implements financial.FinancialService.
func (f *FinancialServiceImpl) UpdateReceivable(ctx context.Context, userID int64, role user.Role, id int64, req financial.UpdateReceivableRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	r, err := f.GetReceivable(ctx, userID, role, id)
	if err != nil {
		return err
	}
	if !user.CanManageFinancials(role) {
		return user.ErrFinancialWriteNotAllowed
	}
	if r.Status == financial.StatusCancelado {
		return financial.ErrRecordCancelled
	}

	if err := f.receivables.Update(ctx, id, req); err != nil {
		return fmt.Errorf("failed to update receivable: %w", err)
	}
	return nil
}

// ApproveReceivable implements financial.FinancialService.
func (f *FinancialServiceImpl) ApproveReceivable(ctx context.Context, userID int64, role user.Role, id int64) error {
	if !user.CanApproveFinancials(role) {
		return financial.ErrApprovalNotAllowed
	}
	r, err := f.GetReceivable(ctx, userID, role, id)
	if err != nil {
		return err
	}
	if err := transition(r.Status, financial.StatusAprovado); err != nil {
		return err
	}
	return f.receivables.SetStatus(ctx, id, financial.StatusAprovado, nil)
}

// SettleReceivable implements financial.FinancialService. Marks an approved
// receivable as received, stamping received_at.
func (f *FinancialServiceImpl) SettleReceivable(ctx context.Context, userID int64, role user.Role, id int64) error {
	r, err := f.GetReceivable(ctx, userID, role, id)
	if err != nil {
		return err
	}
	if !user.CanManageFinancials(role) {
		return user.ErrFinancialWriteNotAllowed
	}
	if err := transition(r.Status, financial.StatusPago); err != nil {
		return err
	}
	now := time.Now()
	return f.receivables.SetStatus(ctx, id, financial.StatusPago, &now)
}

// CancelReceivable implements financial.FinancialService.
func (f *FinancialServiceImpl) CancelReceivable(ctx context.Context, userID int64, role user.Role, id int64) error {
	r, err := f.GetReceivable(ctx, userID, role, id)
	if err != nil {
		return err
	}
	if !user.CanManageFinancials(role) {
		return user.ErrFinancialWriteNotAllowed
	}
	if err := transition(r.Status, financial.StatusCancelado); err != nil {
		return err
	}
	return f.receivables.SetStatus(ctx, id, financial.StatusCancelado, nil)
}

// DeleteReceivable implements financial.FinancialService.
func (f *FinancialServiceImpl) DeleteReceivable(ctx context.Context, userID int64, role user.Role, id int64) error {
	r, err := f.GetReceivable(ctx, userID, role, id)
	if err != nil {
		return err
	}
	if !user.CanManageFinancials(role) {
		return user.ErrFinancialWriteNotAllowed
	}
	if r.Status == financial.StatusPago {
		return financial.ErrRecordAlreadyPaid
	}
	return f.receivables.Delete(ctx, id)
}

// ListDailyRevenues implements financial.FinancialService.
func (f *FinancialServiceImpl) ListDailyRevenues(ctx context.Context, userID int64, role user.Role) ([]financial.DailyRevenue, error) {
	revenues, err := f.revenues.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily revenues: %w", err)
	}
	return authz.FilterFinancials(ctx, f.authz, userID, role, revenues)
}

// GetDailyRevenue implements financial.FinancialService.
func (f *FinancialServiceImpl) GetDailyRevenue(ctx context.Context, userID int64, role user.Role, id int64) (financial.DailyRevenue, error) {
	d, err := f.revenues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return financial.DailyRevenue{}, financial.ErrRecordNotFound
		}
		return financial.DailyRevenue{}, fmt.Errorf("failed to get daily revenue by ID: %w", err)
	}
	if err := f.checkEventAccess(ctx, userID, role, d.EventID); err != nil {
		return financial.DailyRevenue{}, err
	}
	return d, nil
}

// CreateDailyRevenue implements financial.FinancialService. At most one entry
// per event per day.
func (f *FinancialServiceImpl) CreateDailyRevenue(ctx context.Context, userID int64, role user.Role, req financial.CreateDailyRevenueRequest) (financial.DailyRevenue, error) {
	if err := req.Validate(); err != nil {
		return financial.DailyRevenue{}, err
	}
	if err := f.checkWrite(ctx, userID, role, &req.EventID); err != nil {
		return financial.DailyRevenue{}, err
	}

	exists, err := f.revenues.ExistsForEventDate(ctx, req.EventID, req.ParsedDate())
	if err != nil {
		return financial.DailyRevenue{}, fmt.Errorf("failed to check daily revenue uniqueness: %w", err)
	}
	if exists {
		return financial.DailyRevenue{}, financial.ErrDuplicateDailyRevenue
	}

	created, err := f.revenues.Create(ctx, financial.DailyRevenue{
		EventID:    &req.EventID,
		Date:       req.ParsedDate(),
		CashAmount: req.ParsedCashAmount(),
		CardAmount: req.ParsedCardAmount(),
		PixAmount:  req.ParsedPixAmount(),
		Notes:      req.Notes,
		CreatedBy:  userID,
	})
	if err != nil {
		return financial.DailyRevenue{}, fmt.Errorf("failed to create daily revenue: %w", err)
	}
	return created, nil
}

// UpdateDailyRevenue implements financial.FinancialService.
func (f *FinancialServiceImpl) UpdateDailyRevenue(ctx context.Context, userID int64, role user.Role, id int64, req financial.UpdateDailyRevenueRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := f.GetDailyRevenue(ctx, userID, role, id); err != nil {
		return err
	}
	if !user.CanManageFinancials(role) {
		return user.ErrFinancialWriteNotAllowed
	}

	if err := f.revenues.Update(ctx, id, req); err != nil {
		return fmt.Errorf("failed to update daily revenue: %w", err)
	}
	return nil
}

// DeleteDailyRevenue implements financial.FinancialService.
func (f *FinancialServiceImpl) DeleteDailyRevenue(ctx context.Context, userID int64, role user.Role, id int64) error {
	if _, err := f.GetDailyRevenue(ctx, userID, role, id); err != nil {
		return err
	}
	if !user.CanManageFinancials(role) {
		return user.ErrFinancialWriteNotAllowed
	}
	return f.revenues.Delete(ctx, id)
}
