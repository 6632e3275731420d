package handler

import (
	"encoding/json"
	"net/http"

	"reward-indexer/internal/adapter/http/dto"
	"reward-indexer/internal/core/domain"
	"reward-indexer/internal/core/ports"
	"reward-indexer/pkg/apperror"
	"reward-indexer/pkg/response"

	"github.com/gin-gonic/gin"
)

// LedgerHandler serves the read-only ledger endpoints.
type LedgerHandler struct {
	reportingSvc ports.ReportingService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(reportingSvc ports.ReportingService) *LedgerHandler {
	return &LedgerHandler{reportingSvc: reportingSvc}
}

// Leaderboard handles GET /leaderboard.
func (h *LedgerHandler) Leaderboard(c *gin.Context) {
	entries := h.reportingSvc.Leaderboard()

	resp := make([]dto.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.LeaderboardEntry{
			Address: e.Address.String(),
			Amount:  json.Number(e.Amount.String()),
		})
	}

	response.OK(c, resp)
}

// Total handles GET /total.
func (h *LedgerHandler) Total(c *gin.Context) {
	response.OK(c, dto.TotalResponse{
		TotalAmount: json.Number(h.reportingSvc.Total().String()),
	})
}

// Health handles GET /health. Starting answers 503 so load balancers hold
// traffic until the ledger is seeded and the subscription is live.
func (h *LedgerHandler) Health(c *gin.Context) {
	report := h.reportingSvc.Health(c.Request.Context())

	status := http.StatusOK
	if report.Status == domain.HealthStarting {
		status = http.StatusServiceUnavailable
	}

	response.JSON(c, status, dto.HealthResponse{
		Status:       string(report.Status),
		Dependencies: report.Checks,
	})
}

// NotFound answers every unmatched route.
func NotFound(c *gin.Context) {
	response.Error(c, apperror.ErrNotFound())
}
