package handlers

import (
	"errors"
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

type postingHandler struct {
	posting  portssvc.PostingSvc
	overview portssvc.OverviewSvc
}

func newPostingHandler(posting portssvc.PostingSvc, overview portssvc.OverviewSvc) *postingHandler {
	return &postingHandler{posting: posting, overview: overview}
}

func registerPostingRoutes(rg *gin.RouterGroup, posting portssvc.PostingSvc, overview portssvc.OverviewSvc, postMiddleware ...gin.HandlerFunc) {
	h := newPostingHandler(posting, overview)
	createChain := append(append([]gin.HandlerFunc{}, postMiddleware...), h.createEntry)

	accounting := rg.Group("/accounting")
	{
		accounting.POST("/entries", createChain...)
		accounting.GET("/posting-attempts", h.listPostingAttempts)
	}
}

// createEntry godoc
// @Summary Post a journal entry
// @Description Submits a balanced entry to the ledger. If the reference number is already taken, one retry is made with a generated reference. The refreshed overview is returned on success.
// @Tags accounting
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Journal entry"
// @Success 201 {object} dto.CreateEntryResponse
// @Failure 400 {object} dto.PostingErrorResponse "Invalid entry"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} dto.PostingErrorResponse "Reference number and its replacement both in use"
// @Failure 422 {object} dto.PostingErrorResponse "Unbalanced entry or missing account"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} dto.PostingErrorResponse "Ledger API unavailable"
// @Security BearerAuth
// @Router /accounting/entries [post]
func (h *postingHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Logged-in user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.PostingErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("reference_no", req.ReferenceNo))
	logger.Info("Received request to post journal entry", slog.Int("lines", len(req.Lines)))

	result, err := h.posting.PostEntry(c.Request.Context(), req.ToDomain(), userID)
	if err != nil {
		status := statusForError(err)
		var rejection *domain.PostRejection
		if errors.As(err, &rejection) {
			body := dto.ToPostingErrorResponse(rejection)
			body.Error = err.Error()
			logger.Warn("Ledger rejected journal entry", slog.String("code", string(rejection.Code)), slog.Int("status", status))
			c.JSON(status, body)
			return
		}
		logger.Error("Failed to post journal entry", slog.String("error", err.Error()), slog.Int("status", status))
		c.JSON(status, dto.PostingErrorResponse{Error: publicMessage(err, status)})
		return
	}

	if result.ReplacedReference != nil {
		logger.Info("Journal entry posted under a replacement reference",
			slog.String("replacement", result.ReplacedReference.Replacement))
	}
	logger.Info("Journal entry posted", slog.String("entry_id", result.Entry.ID), slog.Int("attempts", result.Attempts))

	c.JSON(http.StatusCreated, dto.ToCreateEntryResponse(result, h.overview.Overview(c.Request.Context())))
}

// listPostingAttempts godoc
// @Summary List posting attempts
// @Description Returns audited submissions to the ledger, newest first
// @Tags accounting
// @Produce json
// @Param referenceNo query string false "Filter by reference number"
// @Param limit query int false "Maximum attempts to return (1-200)"
// @Param nextToken query string false "Continuation token from the previous page"
// @Success 200 {object} dto.ListPostingAttemptsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or token"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /accounting/posting-attempts [get]
func (h *postingHandler) listPostingAttempts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListPostingAttemptsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListPostingAttempts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	listParams := portsrepo.ListAttemptsParams{ReferenceNo: params.ReferenceNo, Limit: params.Limit}
	if token := strings.TrimSpace(params.NextToken); token != "" {
		listParams.NextToken = &token
	}

	attempts, next, err := h.posting.ListAttempts(c.Request.Context(), listParams)
	if err != nil {
		status := statusForError(err)
		logger.Error("Failed to list posting attempts", slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": publicMessage(err, status)})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPostingAttemptsResponse(attempts, next))
}
