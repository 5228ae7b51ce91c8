package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/api/handler"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the router serves
type Handlers struct {
	Webhook *handler.WebhookHandler
	Intake  *handler.IntakeHandler
	Admin   *handler.AdminHandler
	Health  *handler.HealthHandler
}

// Paths holds the configurable route paths
type Paths struct {
	Check  string
	Pay    string
	Fail   string
	Intake string
}

// SetupRoutes configures all the routes for the API. Admin routes are only
// mounted when adminAccounts is non-empty.
func SetupRoutes(router *gin.Engine, handlers Handlers, paths Paths, adminAccounts gin.Accounts) {
	router.GET("/health", handlers.Health.Health)

	// Processor notifications
	router.POST(paths.Check, handlers.Webhook.Check)
	router.POST(paths.Pay, handlers.Webhook.Pay)
	router.POST(paths.Fail, handlers.Webhook.Fail)

	// Donation form
	router.POST(paths.Intake, handlers.Intake.Submit)
	router.GET(paths.Intake+"/options", handlers.Intake.Options)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		router.Handle(method, paths.Intake, handlers.Intake.MethodNotAllowed)
	}

	if len(adminAccounts) == 0 {
		return
	}

	adminRoutes := router.Group("/admin", gin.BasicAuth(adminAccounts))
	{
		// GET /admin/donations/:id
		adminRoutes.GET("/donations/:id", handlers.Admin.GetDonation)

		// POST /admin/donations/:id/refund
		adminRoutes.POST("/donations/:id/refund", handlers.Admin.RefundDonation)

		// PUT /admin/donations/:id/status
		adminRoutes.PUT("/donations/:id/status", handlers.Admin.OverrideStatus)

		// GET /admin/transactions/:id
		adminRoutes.GET("/transactions/:id", handlers.Admin.GetTransaction)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	allowedOrigins []string,
) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
}
