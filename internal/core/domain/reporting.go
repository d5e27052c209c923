package domain

import "github.com/shopspring/decimal"

// ReportType narrows a report to one kind of entity.
type ReportType string

const (
	ReportAll       ReportType = "all"
	ReportWorkplace ReportType = "workplace"
	ReportEmployee  ReportType = "employee"
)

// ReportFilter is forwarded to the backend unchanged.
type ReportFilter struct {
	StartDate Day        `json:"startDate"`
	EndDate   Day        `json:"endDate"`
	Type      ReportType `json:"type"`
	TargetID  ID         `json:"id,omitempty"` // Optional, narrows to one workplace or employee
	Breakdown bool       `json:"-"`            // Also request per-entity statistics
}

// ReportPoint is one bar of the chart.
type ReportPoint struct {
	Date     string          `json:"date"`
	Revenues decimal.Decimal `json:"revenues"`
	Costs    decimal.Decimal `json:"costs"`
	Profit   decimal.Decimal `json:"profit"`
}

// ReportData holds totals computed by the backend.
type ReportData struct {
	Revenues  decimal.Decimal `json:"revenues"`
	Costs     decimal.Decimal `json:"costs"`
	Profit    decimal.Decimal `json:"profit"`
	ChartData []ReportPoint   `json:"chartData"`
}

// EntityStats are the totals of one employee or workplace within a report range.
type EntityStats struct {
	Name          string          `json:"name"`
	TotalCosts    decimal.Decimal `json:"totalCosts"`
	TotalRevenues decimal.Decimal `json:"totalRevenues"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
	TotalHours    decimal.Decimal `json:"totalHours"` // Employees only
}

// ReportStats is the per-entity breakdown of a report.
type ReportStats struct {
	Employees  []EntityStats `json:"employees"`
	Workplaces []EntityStats `json:"workplaces"`
}

// Report is a generated report together with the filter that produced it.
type Report struct {
	Filter ReportFilter
	Data   ReportData
	Stats  *ReportStats
}

// ReportFile is a spreadsheet produced by the backend.
type ReportFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// DashboardSummary aggregates the four collections shown on the dashboard.
type DashboardSummary struct {
	EmployeeCount  int
	WorkplaceCount int
	TotalCosts     decimal.Decimal
	TotalRevenues  decimal.Decimal
	Profit         decimal.Decimal
}
