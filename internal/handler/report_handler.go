package handler

import (
	"encoding/json"
	"net/http"

	"bluesoft-bank/internal/domain"
	"bluesoft-bank/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

type transactionReportRow struct {
	Name             string `json:"nombre"`
	TransactionCount int64  `json:"numeroTransacciones"`
}

type withdrawalReportRow struct {
	Name            string      `json:"nombre"`
	TotalWithdrawal json.Number `json:"valorTotalRetiros"`
}

// MonthlyTransactions handles GET /reportes/transacciones-mensuales.
func (h *ReportHandler) MonthlyTransactions(w http.ResponseWriter, r *http.Request) {
	month, year, err := parseMonthYear(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	reports, err := h.reportService.MonthlyTransactions(month, year)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionRows(reports))
}

// OutOfCityWithdrawals handles GET /reportes/retiros-fuera-ciudad.
func (h *ReportHandler) OutOfCityWithdrawals(w http.ResponseWriter, r *http.Request) {
	month, year, err := parseMonthYear(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	reports, err := h.reportService.OutOfCityWithdrawals(month, year)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toWithdrawalRows(reports))
}

func toTransactionRows(reports []domain.TransactionReport) []transactionReportRow {
	rows := make([]transactionReportRow, 0, len(reports))
	for _, rep := range reports {
		rows = append(rows, transactionReportRow{
			Name:             rep.Name,
			TransactionCount: rep.TransactionCount,
		})
	}
	return rows
}

func toWithdrawalRows(reports []domain.WithdrawalReport) []withdrawalReportRow {
	rows := make([]withdrawalReportRow, 0, len(reports))
	for _, rep := range reports {
		rows = append(rows, withdrawalReportRow{
			Name:            rep.Name,
			TotalWithdrawal: jsonNumber(rep.TotalAmount),
		})
	}
	return rows
}
