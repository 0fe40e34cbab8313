package handlers

import (
	"net/http"

	"quotely/services/intake"
	"quotely/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IntakeHandler exposes the downstream intake surface's view of the handoff
// slot.
type IntakeHandler struct {
	Svc    intake.IntakeService
	Logger *zap.Logger
}

// NewIntakeHandler returns an IntakeHandler.
func NewIntakeHandler(svc intake.IntakeService, logger *zap.Logger) *IntakeHandler {
	return &IntakeHandler{Svc: svc, Logger: logger}
}

// GetPendingQuoteHandler handles GET /api/intake/quote. With no pending
// quote (or an unreadable slot) the intake flow proceeds with an empty
// summary.
func (h *IntakeHandler) GetPendingQuoteHandler(c *gin.Context) {
	summary, err := h.Svc.PendingQuote(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetPendingQuote failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "failed to read pending quote")
		return
	}
	if summary == nil {
		c.JSON(http.StatusOK, gin.H{"pending": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": true, "summary": summary})
}

// CompleteIntakeHandler handles POST /api/intake/complete. The slot is
// cleared once the downstream flow finished; an abandoned flow never calls
// this, leaving the quote available for a later visit.
func (h *IntakeHandler) CompleteIntakeHandler(c *gin.Context) {
	if err := h.Svc.Complete(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "failed to consume pending quote")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}
