package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	portssvc "github.com/bahikhata/bahikhata_backend/internal/core/ports/services"
	"github.com/bahikhata/bahikhata_backend/internal/dto"
	"github.com/bahikhata/bahikhata_backend/internal/export"
	"github.com/bahikhata/bahikhata_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// gstHandler handles HTTP requests for GST returns
type gstHandler struct {
	gstService portssvc.GSTService
}

// registerGSTRoutes registers routes related to GST returns
func registerGSTRoutes(rg *gin.RouterGroup, gstService portssvc.GSTService) {
	h := &gstHandler{gstService: gstService}

	gstGroup := rg.Group("/gst")
	{
		gstGroup.GET("/gstr1", h.getGSTR1)
		gstGroup.GET("/gstr3b", h.getGSTR3B)
		gstGroup.GET("/liability", h.getLiability)
	}
}

type returnPeriodQuery struct {
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  int `form:"year" binding:"omitempty,min=1900,max=9999"`
}

// parseReturnPeriod reads month/year query parameters, defaulting to the
// previous calendar month since a return covers a completed month.
func parseReturnPeriod(c *gin.Context) (time.Month, int, bool) {
	var q returnPeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Invalid value for %s", strings.ToLower(fieldErrs[0].Field())),
			})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month or year"})
		}
		return 0, 0, false
	}

	previous := time.Now().AddDate(0, -1, 0)
	if q.Month == 0 {
		q.Month = int(previous.Month())
	}
	if q.Year == 0 {
		q.Year = previous.Year()
	}
	return time.Month(q.Month), q.Year, true
}

// getGSTR1 godoc
// @Summary Generate GSTR-1 return
// @Description Generates the outward-supplies return for a calendar month
// @Tags gst
// @Produce json
// @Param client_id path string true "Client ID"
// @Param month query int false "Return month (1-12)" default(previous month)
// @Param year query int false "Return year" default(year of previous month)
// @Param format query string false "Response format (csv or portal)"
// @Success 200 {object} dto.GSTR1Response
// @Failure 400 {object} map[string]string "Invalid input or unregistered GSTIN"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to generate return"
// @Security BearerAuth
// @Router /clients/{client_id}/gst/gstr1 [get]
func (h *gstHandler) getGSTR1(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("client_id")

	month, year, ok := parseReturnPeriod(c)
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("client_id", clientID),
		slog.Int("month", int(month)),
		slog.Int("year", year),
	)
	logger.Info("Received request to generate GSTR-1 return")

	report, err := h.gstService.GenerateGSTR1(c.Request.Context(), clientID, month, year)
	if err != nil {
		respondReportError(c, logger, err, "GSTR-1 return")
		return
	}

	logger.Info("GSTR-1 return generated successfully",
		slog.Int("b2b_invoices", report.B2B.InvoiceCount),
		slog.Int("b2c_large_invoices", report.B2CLarge.InvoiceCount),
		slog.Int("b2c_small_invoices", report.B2CSmall.InvoiceCount))

	switch c.Query("format") {
	case "csv":
		body, err := export.GSTR1CSV(report)
		if err != nil {
			respondReportError(c, logger, err, "GSTR-1 CSV")
			return
		}
		serveCSV(c, fmt.Sprintf("gstr1_%02d_%04d.csv", int(month), year), body)
	case "portal":
		c.JSON(http.StatusOK, export.GSTR1Portal(report))
	default:
		c.JSON(http.StatusOK, dto.ToGSTR1Response(report))
	}
}

// getGSTR3B godoc
// @Summary Generate GSTR-3B return
// @Description Generates the monthly summary return with per-head tax payable
// @Tags gst
// @Produce json
// @Param client_id path string true "Client ID"
// @Param month query int false "Return month (1-12)" default(previous month)
// @Param year query int false "Return year" default(year of previous month)
// @Param format query string false "Response format (csv)"
// @Success 200 {object} dto.GSTR3BResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to generate return"
// @Security BearerAuth
// @Router /clients/{client_id}/gst/gstr3b [get]
func (h *gstHandler) getGSTR3B(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("client_id")

	month, year, ok := parseReturnPeriod(c)
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("client_id", clientID),
		slog.Int("month", int(month)),
		slog.Int("year", year),
	)
	logger.Info("Received request to generate GSTR-3B return")

	report, err := h.gstService.GenerateGSTR3B(c.Request.Context(), clientID, month, year)
	if err != nil {
		respondReportError(c, logger, err, "GSTR-3B return")
		return
	}

	logger.Info("GSTR-3B return generated successfully")

	if c.Query("format") == "csv" {
		body, err := export.GSTR3BCSV(report)
		if err != nil {
			respondReportError(c, logger, err, "GSTR-3B CSV")
			return
		}
		serveCSV(c, fmt.Sprintf("gstr3b_%02d_%04d.csv", int(month), year), body)
		return
	}
	c.JSON(http.StatusOK, dto.ToGSTR3BResponse(report))
}

// getLiability godoc
// @Summary Calculate GST liability
// @Description Calculates the net GST payable and its due date for a month
// @Tags gst
// @Produce json
// @Param client_id path string true "Client ID"
// @Param month query int false "Return month (1-12)" default(previous month)
// @Param year query int false "Return year" default(year of previous month)
// @Success 200 {object} dto.GSTLiabilityResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to calculate liability"
// @Security BearerAuth
// @Router /clients/{client_id}/gst/liability [get]
func (h *gstHandler) getLiability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("client_id")

	month, year, ok := parseReturnPeriod(c)
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("client_id", clientID),
		slog.Int("month", int(month)),
		slog.Int("year", year),
	)
	logger.Info("Received request to calculate GST liability")

	liability, err := h.gstService.CalculateLiability(c.Request.Context(), clientID, month, year)
	if err != nil {
		respondReportError(c, logger, err, "GST liability")
		return
	}

	logger.Info("GST liability calculated successfully")
	c.JSON(http.StatusOK, dto.ToGSTLiabilityResponse(liability))
}
