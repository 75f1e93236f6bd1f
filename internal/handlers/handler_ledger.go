package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/organic_store_accounting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/organic_store_accounting/internal/core/ports/services"
	"github.com/SscSPs/organic_store_accounting/internal/dto"
	"github.com/SscSPs/organic_store_accounting/internal/middleware"
)

type ledgerHandler struct {
	ledgerView portssvc.LedgerViewSvc
	aging      portssvc.AgingSvc
	overview   portssvc.OverviewSvc
	chart      portssvc.ChartSvc
}

func newLedgerHandler(ledgerView portssvc.LedgerViewSvc, aging portssvc.AgingSvc, overview portssvc.OverviewSvc, chart portssvc.ChartSvc) *ledgerHandler {
	return &ledgerHandler{ledgerView: ledgerView, aging: aging, overview: overview, chart: chart}
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerView portssvc.LedgerViewSvc, aging portssvc.AgingSvc, overview portssvc.OverviewSvc, chart portssvc.ChartSvc) {
	h := newLedgerHandler(ledgerView, aging, overview, chart)

	accounting := rg.Group("/accounting")
	{
		accounting.GET("/transactions", h.listTransactions)
		accounting.GET("/statistics", h.getStatistics)
		accounting.GET("/aging", h.getAging)
		accounting.GET("/overview", h.getOverview)
		accounting.GET("/chart", h.getChart)
	}
}

// listTransactions godoc
// @Summary List classified transactions
// @Description Returns one page of posted journal entries, each classified as income or expense with a display category
// @Tags accounting
// @Produce json
// @Param limit query int false "Page size (1-1000)"
// @Param nextToken query string false "Continuation token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Ledger API unavailable"
// @Security BearerAuth
// @Router /accounting/transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	listParams := portsrepo.ListEntriesParams{Limit: params.Limit}
	if token := strings.TrimSpace(params.NextToken); token != "" {
		listParams.NextToken = &token
	}

	page, err := h.ledgerView.ListTransactions(c.Request.Context(), listParams)
	if err != nil {
		status := statusForError(err)
		logger.Error("Failed to list transactions", slog.String("error", err.Error()), slog.Int("status", status))
		c.JSON(status, gin.H{"error": publicMessage(err, status)})
		return
	}

	logger.Debug("Transactions listed", slog.Int("count", len(page.Transactions)))
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(*page))
}

// getStatistics godoc
// @Summary Get summary statistics
// @Description Returns total income, total expense and balance over all posted entries. On failure the figures are zero and an error is included.
// @Tags accounting
// @Produce json
// @Success 200 {object} dto.StatisticsResponse
// @Failure 502 {object} map[string]interface{} "Ledger API unavailable; zeroed statistics included"
// @Security BearerAuth
// @Router /accounting/statistics [get]
func (h *ledgerHandler) getStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.ledgerView.Statistics(c.Request.Context())
	if err != nil {
		status := statusForError(err)
		logger.Error("Failed to compute statistics", slog.String("error", err.Error()))
		c.JSON(status, gin.H{
			"error":      publicMessage(err, status),
			"statistics": dto.ToStatisticsResponse(domain.ZeroStatistics()),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToStatisticsResponse(stats))
}

// getAging godoc
// @Summary Get receivables aging
// @Description Returns open receivables grouped into aging buckets. Uses the ledger's precomputed report when it is usable, otherwise ages the receivables locally.
// @Tags accounting
// @Produce json
// @Param asOf query string false "Age as of this business date (YYYY-MM-DD); defaults to today"
// @Success 200 {object} dto.AgingResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 502 {object} map[string]interface{} "Ledger API unavailable; empty aging included"
// @Security BearerAuth
// @Router /accounting/aging [get]
func (h *ledgerHandler) getAging(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var (
		result domain.AgingResult
		err    error
	)
	if asOf := strings.TrimSpace(c.Query("asOf")); asOf != "" {
		today, parseErr := domain.ParseDate(asOf)
		if parseErr != nil {
			logger.Warn("Invalid asOf date for aging", slog.String("asOf", asOf))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date: " + parseErr.Error()})
			return
		}
		result, err = h.aging.AgingAsOf(c.Request.Context(), today)
	} else {
		result, err = h.aging.Aging(c.Request.Context())
	}
	if err != nil {
		status := statusForError(err)
		logger.Error("Failed to compute aging", slog.String("error", err.Error()))
		c.JSON(status, gin.H{
			"error": publicMessage(err, status),
			"aging": dto.ToAgingResponse(result),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToAgingResponse(result))
}

// getOverview godoc
// @Summary Get all accounting views
// @Description Loads the transaction grid, statistics and aging concurrently. Views that failed are returned empty with their error listed under errors.
// @Tags accounting
// @Produce json
// @Success 200 {object} dto.OverviewResponse
// @Security BearerAuth
// @Router /accounting/overview [get]
func (h *ledgerHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	overview := h.overview.Overview(c.Request.Context())
	if len(overview.Errors) > 0 {
		logger.Warn("Overview loaded with failed views", slog.Int("failed", len(overview.Errors)))
	}

	c.JSON(http.StatusOK, dto.ToOverviewResponse(overview))
}

// getChart godoc
// @Summary Get chart-of-accounts families
// @Description Lists the account-code prefixes used to classify transactions
// @Tags accounting
// @Produce json
// @Success 200 {array} dto.ChartFamilyResponse
// @Security BearerAuth
// @Router /accounting/chart [get]
func (h *ledgerHandler) getChart(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToChartResponse(h.chart.ChartOfAccounts()))
}
