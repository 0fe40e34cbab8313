package handlers

import (
	"errors"
	"net/http"

	"quotely/services/quote"
	"quotely/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler exposes the quoting wizard over HTTP.
type QuoteHandler struct {
	Svc    quote.QuoteSessionService
	Logger *zap.Logger
}

// NewQuoteHandler returns a QuoteHandler.
func NewQuoteHandler(svc quote.QuoteSessionService, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{Svc: svc, Logger: logger}
}

// respondQuoteError maps engine errors onto HTTP statuses: bad references
// are 400, illegal transitions 409, missing sessions 404.
func (h *QuoteHandler) respondQuoteError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, quote.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "quote session not found or expired", err.Error())
	case quote.IsValidationError(err):
		utils.JSONError(c, http.StatusBadRequest, "invalid reference", err.Error())
	case quote.IsStateError(err):
		utils.JSONError(c, http.StatusConflict, "illegal operation", err.Error())
	default:
		h.Logger.Error("Quote operation failed", zap.String("op", op), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "quote operation failed")
	}
}

// CreateSession handles POST /api/quote/session.
func (h *QuoteHandler) CreateSession(c *gin.Context) {
	view, err := h.Svc.CreateSession(c.Request.Context())
	if err != nil {
		h.respondQuoteError(c, "createSession", err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSession handles GET /api/quote/session/:sessionID.
func (h *QuoteHandler) GetSession(c *gin.Context) {
	view, err := h.Svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondQuoteError(c, "getSession", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleService handles POST /api/quote/session/:sessionID/services/:serviceID.
func (h *QuoteHandler) ToggleService(c *gin.Context) {
	view, err := h.Svc.ToggleService(c.Request.Context(), c.Param("sessionID"), c.Param("serviceID"))
	if err != nil {
		h.respondQuoteError(c, "toggleService", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type configureInput struct {
	GroupID  string `json:"groupId" binding:"required"`
	OptionID string `json:"optionId" binding:"required"`
}

// SetSingleChoice handles PUT /api/quote/session/:sessionID/services/:serviceID/choice.
func (h *QuoteHandler) SetSingleChoice(c *gin.Context) {
	var input configureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	view, err := h.Svc.SetSingleChoice(c.Request.Context(), c.Param("sessionID"), c.Param("serviceID"), input.GroupID, input.OptionID)
	if err != nil {
		h.respondQuoteError(c, "setSingleChoice", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleMultiOption handles PUT /api/quote/session/:sessionID/services/:serviceID/toggle.
func (h *QuoteHandler) ToggleMultiOption(c *gin.Context) {
	var input configureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	view, err := h.Svc.ToggleMultiOption(c.Request.Context(), c.Param("sessionID"), c.Param("serviceID"), input.GroupID, input.OptionID)
	if err != nil {
		h.respondQuoteError(c, "toggleMultiOption", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Advance handles POST /api/quote/session/:sessionID/advance.
func (h *QuoteHandler) Advance(c *gin.Context) {
	view, err := h.Svc.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondQuoteError(c, "advance", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Retreat handles POST /api/quote/session/:sessionID/retreat.
func (h *QuoteHandler) Retreat(c *gin.Context) {
	view, err := h.Svc.Retreat(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondQuoteError(c, "retreat", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GoTo handles POST /api/quote/session/:sessionID/goto.
func (h *QuoteHandler) GoTo(c *gin.Context) {
	var input struct {
		Step int `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	view, err := h.Svc.GoTo(c.Request.Context(), c.Param("sessionID"), input.Step)
	if err != nil {
		h.respondQuoteError(c, "goTo", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Finalize handles POST /api/quote/session/:sessionID/finalize.
func (h *QuoteHandler) Finalize(c *gin.Context) {
	q, err := h.Svc.Finalize(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondQuoteError(c, "finalize", err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// CancelSession handles DELETE /api/quote/session/:sessionID.
func (h *QuoteHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondQuoteError(c, "cancel", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
