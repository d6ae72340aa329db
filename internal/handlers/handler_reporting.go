package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bahikhata/bahikhata_backend/internal/apperrors"
	portssvc "github.com/bahikhata/bahikhata_backend/internal/core/ports/services"
	"github.com/bahikhata/bahikhata_backend/internal/dto"
	"github.com/bahikhata/bahikhata_backend/internal/export"
	"github.com/bahikhata/bahikhata_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// reportingHandler handles HTTP requests for derived financial statements
type reportingHandler struct {
	trialBalance portssvc.TrialBalanceService
	balanceSheet portssvc.BalanceSheetService
	profitLoss   portssvc.ProfitLossService
	cashFlow     portssvc.CashFlowService
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &reportingHandler{
		trialBalance: services.TrialBalance,
		balanceSheet: services.BalanceSheet,
		profitLoss:   services.ProfitLoss,
		cashFlow:     services.CashFlow,
	}

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/balance-sheet/comparative", h.getComparativeBalanceSheet)
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/profit-and-loss/comparative", h.getComparativeProfitAndLoss)
		reportingGroup.GET("/profit-and-loss/monthly", h.getMonthlyProfitAndLoss)
		reportingGroup.GET("/cash-flow", h.getCashFlow)
	}
}

// serveCSV writes a rendered CSV document as a file download.
func serveCSV(c *gin.Context, filename, body string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", []byte(body))
}

// respondReportError maps service errors onto HTTP statuses.
func respondReportError(c *gin.Context, logger *slog.Logger, err error, what string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Client not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
	} else if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		logger.Error(fmt.Sprintf("Failed to generate %s", what), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to generate %s", what)})
	}
}

// parseDateQuery reads a YYYY-MM-DD query parameter, falling back to def.
func parseDateQuery(c *gin.Context, name string, def time.Time) (time.Time, bool) {
	raw := c.DefaultQuery(name, def.Format(dateLayout))
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s format. Use YYYY-MM-DD", name)})
		return time.Time{}, false
	}
	return parsed, true
}

// parsePeriodQuery reads fromDate/toDate, defaulting to first of current
// month through today, and rejects inverted ranges.
func parsePeriodQuery(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	firstDayOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	from, ok := parseDateQuery(c, "fromDate", firstDayOfMonth)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	to, ok := parseDateQuery(c, "toDate", now)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromDate must be before or equal to toDate"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Generates a trial balance report as of a specific date
// @Tags reports
// @Produce json
// @Param client_id path string true "Client ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param format query string false "Response format (csv)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /clients/{client_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("client_id")

	asOf, ok := parseDateQuery(c, "asOf", time.Now())
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("client_id", clientID),
		slog.String("asOf", asOf.Format(dateLayout)),
	)
	logger.Info("Received request to generate trial balance report")

	report, err := h.trialBalance.BuildTrialBalance(c.Request.Context(), clientID, asOf)
	if err != nil {
		respondReportError(c, logger, err, "trial balance report")
		return
	}

	logger.Info("Trial balance report generated successfully", slog.Int("row_count", len(report.Rows)))

	if c.Query("format") == "csv" {
		body, err := export.TrialBalanceCSV(report)
		if err != nil {
			respondReportError(c, logger, err, "trial balance CSV")
			return
		}
		serveCSV(c, fmt.Sprintf("trial_balance_%s.csv", asOf.Format(dateLayout)), body)
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Generates a balance sheet report as of a specific date
// @Tags reports
// @Produce json
// @Param client_id path string true "Client ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param format query string false "Response format (csv)"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /clients/{client_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("client_id")

	asOf, ok := parseDateQuery(c, "asOf", time.Now())
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("client_id", clientID),
		slog.String("asOf", asOf.Format(dateLayout)),
	)
	logger.Info("Received request to generate balance sheet report")

	report, err := h.balanceSheet.Generate(c.Request.Context(), clientID, asOf)
	if err != nil {
		respondReportError(c, logger, err, "balance sheet report")
		return
	}

	logger.Info("Balance sheet report generated successfully",
		slog.Bool("is_balanced", report.IsBalanced))

	if c.Query("format") == "csv" {
		body, err := export.BalanceSheetCSV(report)
		if err != nil {
			respondReportError(c, logger, err, "balance sheet CSV")
			return
		}
		serveCSV(c, fmt.Sprintf("balance_sheet_%s.csv", asOf.Format(dateLayout)), body)
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// getComparativeBalanceSheet godoc
// @Summary Generate comparative balance sheet
// @Description Generates balance sheets for two dates with headline movements
// @Tags reports
// @Produce json
// @Param client_id path string true "Client ID"
// @Param asOf query string false "Current report date (YYYY-MM-DD)" default(current date)
// @Param previousAsOf query string false "Previous report date (YYYY-MM-DD)" default(one year before asOf)
// @Success 200 {object} dto.ComparativeBalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /clients/{client_id}/reports/balance-sheet/comparative [get]
func (h *reportingHandler) getComparativeBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("client_id")

	asOf, ok := parseDateQuery(c, "asOf", time.Now())
	if !ok {
		return
	}
	previousAsOf, ok := parseDateQuery(c, "previousAsOf", asOf.AddDate(-1, 0, 0))
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("client_id", clientID),
		slog.String("asOf", asOf.Format(dateLayout)),
		slog.String("previousAsOf", previousAsOf.Format(dateLayout)),
	)
	logger.Info("Received request to generate comparative balance sheet")

	report, err := h.balanceSheet.Comparative(c.Request.Context(), clientID, asOf, previousAsOf)
	if err != nil {
		respondReportError(c, logger, err, "comparative balance sheet")
		return
	}

	logger.Info("Comparative balance sheet generated successfully")
	c.JSON(http.StatusOK, dto.ToComparativeBalanceSheetResponse(report))
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Generates a profit and loss report for a specific period
// @Tags reports
// @Produce json
// @Param client_id path string true "Client ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param format query string false "Response format (csv)"
// @Success 200 {object} dto.ProfitLossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /clients/{client_id}/reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("client_id")

	from, to, ok := parsePeriodQuery(c)
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("client_id", clientID),
		slog.String("fromDate", from.Format(dateLayout)),
		slog.String("toDate", to.Format(dateLayout)),
	)
	logger.Info("Received request to generate profit and loss report")

	report, err := h.profitLoss.Generate(c.Request.Context(), clientID, from, to)
	if err != nil {
		respondReportError(c, logger, err, "profit and loss report")
		return
	}

	logger.Info("Profit and loss report generated successfully")

	if c.Query("format") == "csv" {
		body, err := export.ProfitLossCSV(report)
		if err != nil {
			respondReportError(c, logger, err, "profit and loss CSV")
			return
		}
		serveCSV(c, fmt.Sprintf("profit_and_loss_%s_%s.csv", from.Format(dateLayout), to.Format(dateLayout)), body)
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitLossResponse(report))
}

// getComparativeProfitAndLoss godoc
// @Summary Generate comparative profit and loss report
// @Description Generates profit and loss statements for two periods with deltas
// @Tags reports
// @Produce json
// @Param client_id path string true "Client ID"
// @Param fromDate query string false "Current period start (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "Current period end (YYYY-MM-DD)" default(current date)
// @Param previousFromDate query string false "Previous period start (YYYY-MM-DD)" default(one year before fromDate)
// @Param previousToDate query string false "Previous period end (YYYY-MM-DD)" default(one year before toDate)
// @Success 200 {object} dto.ComparativeProfitLossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /clients/{client_id}/reports/profit-and-loss/comparative [get]
func (h *reportingHandler) getComparativeProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("client_id")

	from, to, ok := parsePeriodQuery(c)
	if !ok {
		return
	}
	previousFrom, ok := parseDateQuery(c, "previousFromDate", from.AddDate(-1, 0, 0))
	if !ok {
		return
	}
	previousTo, ok := parseDateQuery(c, "previousToDate", to.AddDate(-1, 0, 0))
	if !ok {
		return
	}
	if previousFrom.After(previousTo) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "previousFromDate must be before or equal to previousToDate"})
		return
	}

	logger = logger.With(
		slog.String("client_id", clientID),
		slog.String("fromDate", from.Format(dateLayout)),
		slog.String("toDate", to.Format(dateLayout)),
		slog.String("previousFromDate", previousFrom.Format(dateLayout)),
		slog.String("previousToDate", previousTo.Format(dateLayout)),
	)
	logger.Info("Received request to generate comparative profit and loss report")

	report, err := h.profitLoss.Comparative(c.Request.Context(), clientID, from, to, previousFrom, previousTo)
	if err != nil {
		respondReportError(c, logger, err, "comparative profit and loss report")
		return
	}

	logger.Info("Comparative profit and loss report generated successfully")
	c.JSON(http.StatusOK, dto.ToComparativeProfitLossResponse(report))
}

// getMonthlyProfitAndLoss godoc
// @Summary Generate monthly profit and loss summary
// @Description Generates a condensed month-by-month profit and loss summary for a year
// @Tags reports
// @Produce json
// @Param client_id path string true "Client ID"
// @Param year query int false "Calendar year" default(current year)
// @Success 200 {object} dto.MonthlyProfitLossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /clients/{client_id}/reports/profit-and-loss/monthly [get]
func (h *reportingHandler) getMonthlyProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("client_id")

	yearStr := c.DefaultQuery("year", strconv.Itoa(time.Now().Year()))
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1900 || year > 9999 {
		logger.Warn("Invalid year", slog.String("year", yearStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	logger = logger.With(
		slog.String("client_id", clientID),
		slog.Int("year", year),
	)
	logger.Info("Received request to generate monthly profit and loss summary")

	summary, err := h.profitLoss.MonthlySummary(c.Request.Context(), clientID, year)
	if err != nil {
		respondReportError(c, logger, err, "monthly profit and loss summary")
		return
	}

	logger.Info("Monthly profit and loss summary generated successfully")
	c.JSON(http.StatusOK, dto.ToMonthlyProfitLossResponse(summary))
}

// getCashFlow godoc
// @Summary Generate cash flow report
// @Description Generates a cash flow statement for a specific period
// @Tags reports
// @Produce json
// @Param client_id path string true "Client ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param format query string false "Response format (csv)"
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /clients/{client_id}/reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("client_id")

	from, to, ok := parsePeriodQuery(c)
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("client_id", clientID),
		slog.String("fromDate", from.Format(dateLayout)),
		slog.String("toDate", to.Format(dateLayout)),
	)
	logger.Info("Received request to generate cash flow report")

	report, err := h.cashFlow.Generate(c.Request.Context(), clientID, from, to)
	if err != nil {
		respondReportError(c, logger, err, "cash flow report")
		return
	}

	logger.Info("Cash flow report generated successfully")

	if c.Query("format") == "csv" {
		body, err := export.CashFlowCSV(report)
		if err != nil {
			respondReportError(c, logger, err, "cash flow CSV")
			return
		}
		serveCSV(c, fmt.Sprintf("cash_flow_%s_%s.csv", from.Format(dateLayout), to.Format(dateLayout)), body)
		return
	}
	c.JSON(http.StatusOK, dto.ToCashFlowResponse(report))
}
