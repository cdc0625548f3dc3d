package http

import (
	"net/http"
	"time"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/report"
	"github.com/eventosfin/financeiro-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	EventSummaries(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// EventSummaries implements ReportHandler. Optional from/to query parameters
// bound the report, formatted YYYY-MM-DD.
func (h *ReportHandlerImpl) EventSummaries(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var params report.Params
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "Invalid 'from' date, expected YYYY-MM-DD", nil)
			return
		}
		params.From = &from
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "Invalid 'to' date, expected YYYY-MM-DD", nil)
			return
		}
		params.To = &to
	}

	summaries, err := h.reportService.EventSummaries(r.Context(), userID, role, params)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summaries)
}
