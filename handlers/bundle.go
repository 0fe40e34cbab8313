package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints
	GetCatalogHandler gin.HandlerFunc

	// Quote wizard endpoints
	CreateSession     gin.HandlerFunc
	GetSession        gin.HandlerFunc
	ToggleService     gin.HandlerFunc
	SetSingleChoice   gin.HandlerFunc
	ToggleMultiOption gin.HandlerFunc
	Advance           gin.HandlerFunc
	Retreat           gin.HandlerFunc
	GoTo              gin.HandlerFunc
	Finalize          gin.HandlerFunc
	CancelSession     gin.HandlerFunc

	// Intake endpoints
	GetPendingQuote gin.HandlerFunc
	CompleteIntake  gin.HandlerFunc
}
