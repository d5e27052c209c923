package repositories

import (
	"context"

	"github.com/SscSPs/business_panel/internal/core/domain"
)

// ReportRepository forwards report filters to the backend, which does all aggregation.
type ReportRepository interface {
	GetReport(ctx context.Context, filter domain.ReportFilter) (*domain.ReportData, error)
	GetStats(ctx context.Context, filter domain.ReportFilter) (*domain.ReportStats, error)
	ExportExcel(ctx context.Context, filter domain.ReportFilter) (*domain.ReportFile, error)
}
