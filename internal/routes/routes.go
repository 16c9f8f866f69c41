package routes

import (
	"net/http"

	"projectmart_backend/internal/config"
	"projectmart_backend/internal/forms"
	"projectmart_backend/internal/handlers"
	"projectmart_backend/internal/services"
	"projectmart_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every handler onto the router. Legacy paths the old
// frontends call are registered alongside the canonical ones.
func RegisterRoutes(router *gin.Engine, cfg *config.Config, v *validator.Validator, registry *forms.Registry, container *services.ServiceContainer) {
	submissionHandler := handlers.NewSubmissionHandler(v, registry, container.SubmissionService, cfg.Upload.MaxFormSize)
	listingHandler := handlers.NewListingHandler(v, container.ListingService)
	paymentHandler := handlers.NewPaymentHandler(v, container.PaymentGateway)
	authHandler := handlers.NewAuthHandler(v, container.AuthService)

	submissionHandler.RegisterRoutes(router)
	listingHandler.RegisterRoutes(router)
	paymentHandler.RegisterRoutes(router)
	authHandler.RegisterRoutes(router)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Stored uploads are public; the frontend links to them directly.
	router.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
}
