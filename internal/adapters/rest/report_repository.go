package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SscSPs/business_panel/internal/apiclient"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/utils/mapping"
)

const (
	reportsPath     = "/api/reports"
	reportStatsPath = "/api/reports/stats"
	reportExcelPath = "/api/reports/excel"
)

type ReportRepository struct {
	BaseRepository
}

var _ portsrepo.ReportRepository = (*ReportRepository)(nil)

func newReportRepository(client *apiclient.Client) *ReportRepository {
	return &ReportRepository{BaseRepository: BaseRepository{Client: client}}
}

func (r *ReportRepository) GetReport(ctx context.Context, filter domain.ReportFilter) (*domain.ReportData, error) {
	var res dto.ReportResponse
	if err := r.Client.Get(ctx, reportsPath, mapping.ToReportQuery(filter), &res); err != nil {
		return nil, fmt.Errorf("getting report: %w", err)
	}
	data := mapping.ToDomainReportData(res)
	return &data, nil
}

func (r *ReportRepository) GetStats(ctx context.Context, filter domain.ReportFilter) (*domain.ReportStats, error) {
	var res dto.ReportStatsResponse
	if err := r.Client.Post(ctx, reportStatsPath, mapping.ToReportStatsRequest(filter), &res); err != nil {
		return nil, fmt.Errorf("getting report stats: %w", err)
	}
	stats := mapping.ToDomainReportStats(res)
	return &stats, nil
}

func (r *ReportRepository) ExportExcel(ctx context.Context, filter domain.ReportFilter) (*domain.ReportFile, error) {
	file, err := r.Client.Download(ctx, http.MethodPost, reportExcelPath, mapping.ToReportStatsRequest(filter))
	if err != nil {
		return nil, fmt.Errorf("exporting report: %w", err)
	}
	return &domain.ReportFile{Name: file.Name, ContentType: file.ContentType, Content: file.Content}, nil
}
