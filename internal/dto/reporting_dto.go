package dto

import (
	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportResponse is GET /api/reports.
type ReportResponse struct {
	Revenues  decimal.Decimal       `json:"revenues"`
	Costs     decimal.Decimal       `json:"costs"`
	Profit    decimal.Decimal       `json:"profit"`
	ChartData []ReportPointResponse `json:"chartData"`
}

// ReportPointResponse is one element of chartData.
type ReportPointResponse struct {
	Date     string          `json:"date"`
	Revenues decimal.Decimal `json:"revenues"`
	Costs    decimal.Decimal `json:"costs"`
	Profit   decimal.Decimal `json:"profit"`
}

// ReportStatsRequest is the body of POST /api/reports/stats and /api/reports/excel.
type ReportStatsRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Type      string `json:"type"`
}

// EntityStatsResponse is one employee or workplace of /api/reports/stats.
type EntityStatsResponse struct {
	Name          string          `json:"name"`
	TotalCosts    decimal.Decimal `json:"total_costs"`
	TotalRevenues decimal.Decimal `json:"total_revenues"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	TotalHours    decimal.Decimal `json:"total_hours"`
}

// ReportStatsResponse is POST /api/reports/stats.
type ReportStatsResponse struct {
	Employees  []EntityStatsResponse `json:"employees"`
	Workplaces []EntityStatsResponse `json:"workplaces"`
}

// ReportFilterForm is the report toolbar.
type ReportFilterForm struct {
	StartDate string `form:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `form:"endDate" validate:"required,datetime=2006-01-02"`
	Type      string `form:"type" validate:"omitempty,oneof=all workplace employee"`
	TargetID  string `form:"id"`
	Breakdown bool   `form:"breakdown"`
}

// DefaultReportFilterForm covers the current month up to today.
func DefaultReportFilterForm(today domain.Day) ReportFilterForm {
	return ReportFilterForm{
		StartDate: today.FirstOfMonth().String(),
		EndDate:   today.String(),
		Type:      string(domain.ReportAll),
	}
}

func (ReportFilterForm) ValidationMessages() map[string]string {
	return map[string]string{
		"startDate.required": "Data początkowa jest wymagana",
		"startDate.datetime": "Nieprawidłowy format daty",
		"endDate.required":   "Data końcowa jest wymagana",
		"endDate.datetime":   "Nieprawidłowy format daty",
		"endDate.daterange":  "Data końcowa nie może być wcześniejsza niż początkowa",
		"type.oneof":         "Nieprawidłowy typ raportu",
	}
}
