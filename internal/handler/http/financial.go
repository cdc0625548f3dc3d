package http

import (
	"encoding/json"
	"net/http"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/financial"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
	"github.com/eventosfin/financeiro-backend-go/internal/handler/http/response"
)

type FinancialHandler interface {
	ListPayables(w http.ResponseWriter, r *http.Request)
	GetPayable(w http.ResponseWriter, r *http.Request)
	CreatePayable(w http.ResponseWriter, r *http.Request)
	UpdatePayable(w http.ResponseWriter, r *http.Request)
	ApprovePayable(w http.ResponseWriter, r *http.Request)
	SettlePayable(w http.ResponseWriter, r *http.Request)
	CancelPayable(w http.ResponseWriter, r *http.Request)
	DeletePayable(w http.ResponseWriter, r *http.Request)

	ListReceivables(w http.ResponseWriter, r *http.Request)
	GetReceivable(w http.ResponseWriter, r *http.Request)
	CreateReceivable(w http.ResponseWriter, r *http.Request)
	UpdateReceivable(w http.ResponseWriter, r *http.Request)
	ApproveReceivable(w http.ResponseWriter, r *http.Request)
	SettleReceivable(w http.ResponseWriter, r *http.Request)
	CancelReceivable(w http.ResponseWriter, r *http.Request)
	DeleteReceivable(w http.ResponseWriter, r *http.Request)

	ListDailyRevenues(w http.ResponseWriter, r *http.Request)
	GetDailyRevenue(w http.ResponseWriter, r *http.Request)
	CreateDailyRevenue(w http.ResponseWriter, r *http.Request)
	UpdateDailyRevenue(w http.ResponseWriter, r *http.Request)
	DeleteDailyRevenue(w http.ResponseWriter, r *http.Request)
}

type FinancialHandlerImpl struct {
	financialService financial.FinancialService
}

func NewFinancialHandler(financialService financial.FinancialService) FinancialHandler {
	return &FinancialHandlerImpl{financialService: financialService}
}

// statusChange runs one of the lifecycle operations against a parsed id.
func (f *FinancialHandlerImpl) statusChange(
	w http.ResponseWriter, r *http.Request,
	op func(r *http.Request, userID int64, role user.Role, id int64) error,
	message string,
) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid record id", nil)
		return
	}

	if err := op(r, userID, role, id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, message, nil)
}

// ListPayables implements FinancialHandler.
func (f *FinancialHandlerImpl) ListPayables(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	payables, err := f.financialService.ListPayables(r.Context(), userID, role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]financial.PayableResponse, 0, len(payables))
	for _, p := range payables {
		out = append(out, financial.ToPayableResponse(p))
	}
	response.Success(w, out)
}

// GetPayable implements FinancialHandler.
func (f *FinancialHandlerImpl) GetPayable(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid record id", nil)
		return
	}

	p, err := f.financialService.GetPayable(r.Context(), userID, role, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, financial.ToPayableResponse(p))
}

// CreatePayable implements FinancialHandler.
func (f *FinancialHandlerImpl) CreatePayable(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req financial.CreatePayableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := f.financialService.CreatePayable(r.Context(), userID, role, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payable created successfully", financial.ToPayableResponse(created))
}

// UpdatePayable implements FinancialHandler.
func (f *FinancialHandlerImpl) UpdatePayable(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid record id", nil)
		return
	}

	var req financial.UpdatePayableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := f.financialService.UpdatePayable(r.Context(), userID, role, id, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payable updated successfully", nil)
}

// ApprovePayable implements FinancialHandler.
func (f *FinancialHandlerImpl) ApprovePayable(w http.ResponseWriter, r *http.Request) {
	f.statusChange(w, r, func(r *http.Request, userID int64, role user.Role, id int64) error {
		return f.financialService.ApprovePayable(r.Context(), userID, role, id)
	}, "Payable approved")
}

// SettlePayable implements FinancialHandler.
func (f *FinancialHandlerImpl) SettlePayable(w http.ResponseWriter, r *http.Request) {
	f.statusChange(w, r, func(r *http.Request, userID int64, role user.Role, id int64) error {
		return f.financialService.SettlePayable(r.Context(), userID, role, id)
	}, "Payable marked as paid")
}

// CancelPayable implements FinancialHandler.
func (f *FinancialHandlerImpl) CancelPayable(w http.ResponseWriter, r *http.Request) {
	f.statusChange(w, r, func(r *http.Request, userID int64, role user.Role, id int64) error {
		return f.financialService.CancelPayable(r.Context(), userID, role, id)
	}, "Payable cancelled")
}

// DeletePayable implements FinancialHandler.
func (f *FinancialHandlerImpl) DeletePayable(w http.ResponseWriter, r *http.Request) {
	f.statusChange(w, r, func(r *http.Request, userID int64, role user.Role, id int64) error {
		return f.financialService.DeletePayable(r.Context(), userID, role, id)
	}, "Payable deleted")
}

// ListReceivables implements FinancialHandler.
func (f *FinancialHandlerImpl) ListReceivables(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	receivables, err := f.financialService.ListReceivables(r.Context(), userID, role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]financial.ReceivableResponse, 0, len(receivables))
	for _, rec := range receivables {
		out = append(out, financial.ToReceivableResponse(rec))
	}
	response.Success(w, out)
}

// GetReceivable implements FinancialHandler.
func (f *FinancialHandlerImpl) GetReceivable(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid record id", nil)
		return
	}

	rec, err := f.financialService.GetReceivable(r.Context(), userID, role, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, financial.ToReceivableResponse(rec))
}

// CreateReceivable implements FinancialHandler.
func (f *FinancialHandlerImpl) CreateReceivable(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req financial.CreateReceivableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := f.financialService.CreateReceivable(r.Context(), userID, role, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Receivable created successfully", financial.ToReceivableResponse(created))
}

// UpdateReceivable implements FinancialHandler.
func (f *FinancialHandlerImpl) UpdateReceivable(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid record id", nil)
		return
	}

	var req financial.UpdateReceivableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := f.financialService.UpdateReceivable(r.Context(), userID, role, id, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Receivable updated successfully", nil)
}

// ApproveReceivable implements FinancialHandler.
func (f *FinancialHandlerImpl) ApproveReceivable(w http.ResponseWriter, r *http.Request) {
	f.statusChange(w, r, func(r *http.Request, userID int64, role user.Role, id int64) error {
		return f.financialService.ApproveReceivable(r.Context(), userID, role, id)
	}, "Receivable approved")
}

// SettleReceivable implements FinancialHandler.
func (f *FinancialHandlerImpl) SettleReceivable(w http.ResponseWriter, r *http.Request) {
	f.statusChange(w, r, func(r *http.Request, userID int64, role user.Role, id int64) error {
		return f.financialService.SettleReceivable(r.Context(), userID, role, id)
	}, "Receivable marked as received")
}

// CancelReceivable implements FinancialHandler.
func (f *FinancialHandlerImpl) CancelReceivable(w http.ResponseWriter, r *http.Request) {
	f.statusChange(w, r, func(r *http.Request, userID int64, role user.Role, id int64) error {
		return f.financialService.CancelReceivable(r.Context(), userID, role, id)
	}, "Receivable cancelled")
}

// DeleteReceivable implements FinancialHandler.
func (f *FinancialHandlerImpl) DeleteReceivable(w http.ResponseWriter, r *http.Request) {
	f.statusChange(w, r, func(r *http.Request, userID int64, role user.Role, id int64) error {
		return f.financialService.DeleteReceivable(r.Context(), userID, role, id)
	}, "Receivable deleted")
}

// ListDailyRevenues implements FinancialHandler.
func (f *FinancialHandlerImpl) ListDailyRevenues(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	revenues, err := f.financialService.ListDailyRevenues(r.Context(), userID, role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]financial.DailyRevenueResponse, 0, len(revenues))
	for _, d := range revenues {
		out = append(out, financial.ToDailyRevenueResponse(d))
	}
	response.Success(w, out)
}

// GetDailyRevenue implements FinancialHandler.
func (f *FinancialHandlerImpl) GetDailyRevenue(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid record id", nil)
		return
	}

	d, err := f.financialService.GetDailyRevenue(r.Context(), userID, role, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, financial.ToDailyRevenueResponse(d))
}

// CreateDailyRevenue implements FinancialHandler.
func (f *FinancialHandlerImpl) CreateDailyRevenue(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req financial.CreateDailyRevenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := f.financialService.CreateDailyRevenue(r.Context(), userID, role, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Daily revenue registered successfully", financial.ToDailyRevenueResponse(created))
}

// UpdateDailyRevenue implements FinancialHandler.
func (f *FinancialHandlerImpl) UpdateDailyRevenue(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid record id", nil)
		return
	}

	var req financial.UpdateDailyRevenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := f.financialService.UpdateDailyRevenue(r.Context(), userID, role, id, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Daily revenue updated successfully", nil)
}

// DeleteDailyRevenue implements FinancialHandler.
func (f *FinancialHandlerImpl) DeleteDailyRevenue(w http.ResponseWriter, r *http.Request) {
	f.statusChange(w, r, func(r *http.Request, userID int64, role user.Role, id int64) error {
		return f.financialService.DeleteDailyRevenue(r.Context(), userID, role, id)
	}, "Daily revenue deleted")
}
