package mapping

import (
	"fmt"
	"net/url"

	"github.com/SscSPs/business_panel/internal/apperrors"
	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/SscSPs/business_panel/internal/dto"
)

func ToDomainReportData(r dto.ReportResponse) domain.ReportData {
	points := make([]domain.ReportPoint, len(r.ChartData))
	for i, p := range r.ChartData {
		points[i] = domain.ReportPoint{Date: p.Date, Revenues: p.Revenues, Costs: p.Costs, Profit: p.Profit}
	}
	return domain.ReportData{Revenues: r.Revenues, Costs: r.Costs, Profit: r.Profit, ChartData: points}
}

func toDomainEntityStats(rs []dto.EntityStatsResponse) []domain.EntityStats {
	out := make([]domain.EntityStats, len(rs))
	for i, r := range rs {
		out[i] = domain.EntityStats{
			Name:          r.Name,
			TotalCosts:    r.TotalCosts,
			TotalRevenues: r.TotalRevenues,
			TotalProfit:   r.TotalProfit,
			TotalHours:    r.TotalHours,
		}
	}
	return out
}

func ToDomainReportStats(r dto.ReportStatsResponse) domain.ReportStats {
	return domain.ReportStats{
		Employees:  toDomainEntityStats(r.Employees),
		Workplaces: toDomainEntityStats(r.Workplaces),
	}
}

// ToReportQuery encodes the filter as GET /api/reports expects it.
func ToReportQuery(f domain.ReportFilter) url.Values {
	q := url.Values{}
	q.Set("startDate", f.StartDate.String())
	q.Set("endDate", f.EndDate.String())
	q.Set("type", string(f.Type))
	if !f.TargetID.IsZero() {
		q.Set("id", f.TargetID.String())
	}
	return q
}

func ToReportStatsRequest(f domain.ReportFilter) dto.ReportStatsRequest {
	return dto.ReportStatsRequest{
		StartDate: f.StartDate.String(),
		EndDate:   f.EndDate.String(),
		Type:      string(f.Type),
	}
}

// ReportFilterFromForm converts a validated toolbar form.
func ReportFilterFromForm(f dto.ReportFilterForm) (domain.ReportFilter, error) {
	start, err := domain.ParseDay(f.StartDate)
	if err != nil {
		return domain.ReportFilter{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	end, err := domain.ParseDay(f.EndDate)
	if err != nil {
		return domain.ReportFilter{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	reportType := domain.ReportType(f.Type)
	if reportType == "" {
		reportType = domain.ReportAll
	}
	filter := domain.ReportFilter{StartDate: start, EndDate: end, Type: reportType, Breakdown: f.Breakdown}
	if reportType != domain.ReportAll {
		filter.TargetID = domain.ID(f.TargetID)
	}
	return filter, nil
}
