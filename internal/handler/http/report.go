package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/report"
	"github.com/worksite-labs/timeclock-backend-go/internal/handler/http/response"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/export"
)

type ReportHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	Yearly(w http.ResponseWriter, r *http.Request)
	CompanyInvoice(w http.ResponseWriter, r *http.Request)
	CompanyInvoiceExport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Daily implements ReportHandler.
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.Daily(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Weekly implements ReportHandler.
func (h *reportHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	rows, err := h.reportService.Weekly(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Monthly implements ReportHandler.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := queryInt(r, "year", now.Year())
	month := queryInt(r, "month", int(now.Month()))

	if month < 1 || month > 12 {
		response.BadRequest(w, "month must be between 1 and 12", nil)
		return
	}

	rows, err := h.reportService.Monthly(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Yearly implements ReportHandler.
func (h *reportHandlerImpl) Yearly(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year", time.Now().Year())

	rows, err := h.reportService.Yearly(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// CompanyInvoice implements ReportHandler.
func (h *reportHandlerImpl) CompanyInvoice(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Company(r.Context(), companyRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CompanyInvoiceExport implements ReportHandler. Streams the company report
// as an attachment in the requested format.
func (h *reportHandlerImpl) CompanyInvoiceExport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Company(r.Context(), companyRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}

	var data []byte
	var contentType string
	switch format {
	case "xlsx":
		data, err = export.CompanyInvoiceXLSX(result)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "csv":
		data, err = export.CompanyInvoiceCSV(result)
		contentType = "text/csv"
	default:
		response.BadRequest(w, "format must be xlsx or csv", nil)
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("invoice-%s-%s.%s", result.Kind, result.PeriodEnd, format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func companyRequest(r *http.Request) report.CompanyReportRequest {
	now := time.Now()
	return report.CompanyReportRequest{
		Kind:  r.URL.Query().Get("type"),
		Date:  r.URL.Query().Get("date"),
		Year:  queryInt(r, "year", now.Year()),
		Month: queryInt(r, "month", int(now.Month())),
	}
}
