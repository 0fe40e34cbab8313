package routes

import (
	"net/http"
	"time"

	"quotely/handlers"
	"quotely/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the catalog endpoint.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("", hb.GetCatalogHandler)
	}
}

// RegisterQuoteRoutes sets up the endpoints for the quoting wizard.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	quoteGroup := r.Group("/api/quote")
	{
		quoteGroup.POST("/session", hb.CreateSession)
		quoteGroup.GET("/session/:sessionID", hb.GetSession)
		quoteGroup.POST("/session/:sessionID/services/:serviceID", hb.ToggleService)
		quoteGroup.PUT("/session/:sessionID/services/:serviceID/choice", hb.SetSingleChoice)
		quoteGroup.PUT("/session/:sessionID/services/:serviceID/toggle", hb.ToggleMultiOption)
		quoteGroup.POST("/session/:sessionID/advance", hb.Advance)
		quoteGroup.POST("/session/:sessionID/retreat", hb.Retreat)
		quoteGroup.POST("/session/:sessionID/goto", hb.GoTo)
		quoteGroup.POST("/session/:sessionID/finalize", hb.Finalize)
		quoteGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterIntakeRoutes sets up the downstream intake endpoints.
func RegisterIntakeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	intakeGroup := r.Group("/api/intake")
	{
		intakeGroup.GET("/quote", hb.GetPendingQuote)
		intakeGroup.POST("/complete", hb.CompleteIntake)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterQuoteRoutes(r, hb)
	RegisterIntakeRoutes(r, hb)
}
