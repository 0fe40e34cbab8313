package handlers

import (
	"net/http"

	catalogRepo "quotely/database/repository/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the static service catalog.
type CatalogHandler struct {
	Repo   catalogRepo.CatalogRepository
	Logger *zap.Logger
}

// NewCatalogHandler returns a CatalogHandler.
func NewCatalogHandler(repo catalogRepo.CatalogRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Repo: repo, Logger: logger}
}

// GetCatalogHandler handles GET /api/catalog.
func (h *CatalogHandler) GetCatalogHandler(c *gin.Context) {
	services, err := h.Repo.ListServices(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetCatalog: failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch services",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}
