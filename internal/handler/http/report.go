package http

import (
	"net/http"

	"github.com/attendly/attendly-backend-go/internal/domain/report"
	"github.com/attendly/attendly-backend-go/internal/handler/http/response"
)

type ReportHandler struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// EmployeeSummary handles GET /api/v1/reports/employee-summary?employeeId=&month=
func (h *ReportHandler) EmployeeSummary(w http.ResponseWriter, r *http.Request) {
	var errs validationErrors
	employeeID := errs.employeeID(r.URL.Query().Get("employeeId"))
	month := errs.month(r.URL.Query().Get("month"))
	if err := errs.result(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.reportService.EmployeeSummary(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// MonthlySummary handles GET /api/v1/reports/monthly-summary?month=
func (h *ReportHandler) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	var errs validationErrors
	month := errs.month(r.URL.Query().Get("month"))
	if err := errs.result(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.reportService.MonthlySummary(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
