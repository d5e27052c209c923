package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/business_panel/internal/apperrors"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/utils/mapping"
	"github.com/SscSPs/business_panel/internal/validation"
	"golang.org/x/sync/errgroup"
)

const (
	msgReportFailed = "Nie udało się wygenerować raportu"
	msgExcelFailed  = "Nie udało się wyeksportować raportu do Excela"

	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type reportService struct {
	BaseService
	reports portsrepo.ReportRepository
	lookups []Lookup
}

// NewReportService creates the report generator. The workplace and employee
// lists feed the target select box.
func NewReportService(
	reports portsrepo.ReportRepository,
	workplaces portsrepo.CollectionReader[domain.Workplace],
	employees portsrepo.CollectionReader[domain.Employee],
) portssvc.ReportSvc {
	return &reportService{
		reports: reports,
		lookups: []Lookup{WorkplaceLookup(workplaces), EmployeeLookup(employees)},
	}
}

var _ portssvc.ReportSvc = (*reportService)(nil)

func (s *reportService) Defaults(ctx context.Context) portssvc.ReportState {
	return portssvc.ReportState{
		Form:    dto.DefaultReportFilterForm(domain.Today()),
		Lookups: s.loadLookups(ctx),
	}
}

// loadLookups never fails; a missing select box only narrows the filter options.
func (s *reportService) loadLookups(ctx context.Context) map[string][]portssvc.LookupOption {
	out := make(map[string][]portssvc.LookupOption, len(s.lookups))
	results := make([][]portssvc.LookupOption, len(s.lookups))

	var g errgroup.Group
	for i, lookup := range s.lookups {
		g.Go(func() error {
			options, err := lookup.Fetch(ctx)
			if err != nil {
				s.LogWarn(ctx, "Report lookup failed", slog.String("lookup", lookup.Name), slog.String("error", err.Error()))
				return nil
			}
			results[i] = options
			return nil
		})
	}
	_ = g.Wait()

	for i, lookup := range s.lookups {
		out[lookup.Name] = results[i]
	}
	return out
}

func (s *reportService) filter(form dto.ReportFilterForm, state *portssvc.ReportState) (domain.ReportFilter, error) {
	if errs := validation.Struct(&form); len(errs) > 0 {
		state.FieldErrors = errs
		return domain.ReportFilter{}, apperrors.ErrValidation
	}
	return mapping.ReportFilterFromForm(form)
}

func (s *reportService) Generate(ctx context.Context, form dto.ReportFilterForm) (portssvc.ReportState, error) {
	state := portssvc.ReportState{Form: form, Lookups: s.loadLookups(ctx)}
	filter, err := s.filter(form, &state)
	if err != nil {
		return state, err
	}

	report := &domain.Report{Filter: filter}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := s.reports.GetReport(gctx, filter)
		if err != nil {
			return err
		}
		report.Data = *data
		return nil
	})
	if filter.Breakdown {
		g.Go(func() error {
			stats, err := s.reports.GetStats(gctx, filter)
			if err != nil {
				return err
			}
			report.Stats = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to generate report",
			slog.String("start", filter.StartDate.String()),
			slog.String("end", filter.EndDate.String()),
			slog.String("type", string(filter.Type)))
		state.Error = msgReportFailed
		return state, fmt.Errorf("generating report: %w", err)
	}

	state.Report = report
	s.LogDebug(ctx, "Report generated", slog.Int("points", len(report.Data.ChartData)))
	return state, nil
}

// Excel returns the spreadsheet or, on failure, the state to re-render the page with.
func (s *reportService) Excel(ctx context.Context, form dto.ReportFilterForm) (*domain.ReportFile, portssvc.ReportState, error) {
	state := portssvc.ReportState{Form: form}
	filter, err := s.filter(form, &state)
	if err != nil {
		state.Lookups = s.loadLookups(ctx)
		return nil, state, err
	}

	file, err := s.reports.ExportExcel(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to export report")
		state.Lookups = s.loadLookups(ctx)
		state.Error = msgExcelFailed
		return nil, state, fmt.Errorf("exporting report: %w", err)
	}
	if file.Name == "" {
		file.Name = fmt.Sprintf("raport_%s_%s.xlsx", filter.StartDate, filter.EndDate)
	}
	if file.ContentType == "" {
		file.ContentType = excelContentType
	}
	return file, state, nil
}
