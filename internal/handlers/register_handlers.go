package handlers

import (
	"slices"

	"github.com/SscSPs/erp_backoffice/cmd/docs"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/middleware"
	"github.com/SscSPs/erp_backoffice/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// rateLimit guards the dispatch and relay routes and may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	relay SMSDeliverer,
	rateLimit gin.HandlerFunc,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	var limited []gin.HandlerFunc
	if rateLimit != nil {
		limited = append(limited, rateLimit)
	}

	if relay != nil {
		RegisterRelayRoutes(r, relay, chain([]gin.HandlerFunc{middleware.CORS(cfg.CORSAllowedOrigins)}, limited...)...)
	}

	setupAPIV1Routes(r, cfg, services, limited)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	dispatchMW []gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1", middleware.CORS(cfg.CORSAllowedOrigins))

	RegisterTransactionRoutes(v1, service.Ledger, service.Dispatch, dispatchMW...)
	RegisterBalanceRoutes(v1, service.Ledger)
	RegisterCounterpartyRoutes(v1, service.Counterparty, service.Import)
	RegisterSalaryRoutes(v1, service.Salary, service.Import, service.Dispatch, dispatchMW...)
	RegisterRenewalRoutes(v1, service.Renewal, service.Dispatch, dispatchMW...)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// chain returns a fresh slice of mw followed by handlers.
func chain(mw []gin.HandlerFunc, handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	return append(slices.Clone(mw), handlers...)
}
