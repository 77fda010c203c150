package handlers

import (
	"github.com/duosplit/duo_expense_app/cmd/docs"
	"github.com/duosplit/duo_expense_app/internal/cache"
	portssvc "github.com/duosplit/duo_expense_app/internal/core/ports/services"
	"github.com/duosplit/duo_expense_app/internal/middleware"
	"github.com/duosplit/duo_expense_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service facades.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	ledgerSvc portssvc.LedgerSvcFacade,
	reportingSvc portssvc.ReportingSvcFacade,
	idemCache *cache.LRUCache[middleware.CachedResponse],
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1", middleware.Idempotency(idemCache))

	registerLedgerRoutes(v1, ledgerSvc, reportingSvc)
	registerReportingRoutes(v1, reportingSvc)
	registerAdminRoutes(v1, ledgerSvc, idemCache)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes serves the OpenAPI UI outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
