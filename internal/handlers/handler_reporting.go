package handlers

import (
	"log/slog"
	"mime"
	"net/http"

	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/middleware"
	"github.com/SscSPs/business_panel/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ReportView is the Data of the reports page. ChartMax scales the bars.
type ReportView struct {
	State    portssvc.ReportState
	ChartMax decimal.Decimal
}

type reportingHandler struct {
	*baseHandler
}

func registerReportingRoutes(rg *gin.RouterGroup, base *baseHandler) {
	h := &reportingHandler{baseHandler: base}
	rg.GET(router.ReportsPath, h.getReportPage)
	rg.POST(router.ReportsPath, h.generateReport)
	rg.POST(router.ReportsPath+"/excel", h.exportExcel)
}

func (h *reportingHandler) getReportPage(c *gin.Context) {
	state := h.workspace(c).Reports.Defaults(c.Request.Context())
	h.render(c, http.StatusOK, "reports", router.ReportsPath, newReportView(state))
}

func (h *reportingHandler) generateReport(c *gin.Context) {
	form, ok := h.bindFilter(c)
	if !ok {
		return
	}

	state, err := h.workspace(c).Reports.Generate(c.Request.Context(), form)
	if h.expired(c, err) {
		return
	}
	h.render(c, statusFor(err), "reports", router.ReportsPath, newReportView(state))
}

// exportExcel streams the spreadsheet as a download. On failure the report
// page is shown again with the error.
func (h *reportingHandler) exportExcel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	form, ok := h.bindFilter(c)
	if !ok {
		return
	}

	file, state, err := h.workspace(c).Reports.Excel(c.Request.Context(), form)
	if h.expired(c, err) {
		return
	}
	if err != nil {
		h.render(c, statusFor(err), "reports", router.ReportsPath, newReportView(state))
		return
	}

	logger.Info("Report exported", slog.String("file", file.Name), slog.Int("bytes", len(file.Content)))
	middleware.PosthogEvent(c, h.analytics, "report_exported", map[string]any{"type": form.Type})
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

func (h *reportingHandler) bindFilter(c *gin.Context) (dto.ReportFilterForm, bool) {
	var form dto.ReportFilterForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind report filter", slog.String("error", err.Error()))
		state := h.workspace(c).Reports.Defaults(c.Request.Context())
		state.Error = "Nieprawidłowe parametry raportu"
		h.render(c, http.StatusBadRequest, "reports", router.ReportsPath, newReportView(state))
		return form, false
	}
	return form, true
}

func newReportView(state portssvc.ReportState) ReportView {
	view := ReportView{State: state}
	if state.Report == nil {
		return view
	}
	for _, point := range state.Report.Data.ChartData {
		for _, v := range []decimal.Decimal{point.Revenues, point.Costs, point.Profit} {
			if v.Abs().GreaterThan(view.ChartMax) {
				view.ChartMax = v.Abs()
			}
		}
	}
	return view
}
