package router

import (
	appaudit "github.com/backoffice/backend/internal/application/audit"
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/infrastructure/auth"
	"github.com/backoffice/backend/internal/infrastructure/config"
	"github.com/backoffice/backend/internal/infrastructure/logger"
	"github.com/backoffice/backend/internal/interfaces/http/dto"
	"github.com/backoffice/backend/internal/interfaces/http/handler"
	"github.com/backoffice/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies carries everything the HTTP surface needs
type Dependencies struct {
	Config         *config.Config
	Logger         *zap.Logger
	JWTService     *auth.JWTService
	TokenBlacklist auth.TokenBlacklist
	AuditService   *appaudit.Service

	AuthHandler    *handler.AuthHandler
	OrderHandler   *handler.OrderHandler
	PaymentHandler *handler.PaymentHandler
	ReturnHandler  *handler.ReturnHandler
	AuditHandler   *handler.AuditHandler
	SystemHandler  *handler.SystemHandler
}

// New builds the gin engine with all middleware and routes wired
func New(deps Dependencies) *gin.Engine {
	if deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	dto.RegisterValidations()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(deps.Logger))
	engine.Use(logger.Recovery(deps.Logger))
	engine.Use(middleware.BodyLimit(deps.Config.HTTP.MaxBodySize))

	engine.GET("/health", deps.SystemHandler.Health)

	api := engine.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     deps.JWTService,
		TokenBlacklist: deps.TokenBlacklist,
		SkipPaths: []string{
			"/health",
			"/api/v1/auth/login",
		},
		Logger: deps.Logger,
	}))
	if deps.Config.Audit.Enabled {
		api.Use(middleware.AuditTrail(deps.AuditService, middleware.AuditConfig{
			ExcludedPaths: deps.Config.Audit.ExcludedPaths,
		}))
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", deps.AuthHandler.Login)
		authGroup.POST("/logout", deps.AuthHandler.Logout)
	}

	orders := api.Group("/orders")
	{
		orders.POST("", middleware.RequireRoles(identity.RolesOrderWrite), deps.OrderHandler.Create)
		orders.GET("", deps.OrderHandler.List)
		orders.GET("/:id", deps.OrderHandler.Get)
		orders.PATCH("/:id", middleware.RequireRoles(identity.RolesOrderUpdate), deps.OrderHandler.Update)
	}

	payments := api.Group("/payments")
	{
		payments.POST("", middleware.RequireRoles(identity.RolesPaymentWrite), deps.PaymentHandler.Record)
		payments.GET("/order/:id", deps.PaymentHandler.ListByOrder)
		payments.GET("/order/:id/summary", deps.PaymentHandler.Summary)
		payments.GET("/:id", deps.PaymentHandler.Get)
	}

	returns := api.Group("/returns")
	returns.Use(middleware.RequireRoles(identity.RolesReturnWrite))
	{
		returns.POST("", deps.ReturnHandler.Create)
		returns.GET("", deps.ReturnHandler.List)
		returns.GET("/order/:id", deps.ReturnHandler.GetByOrder)
	}

	audit := api.Group("/audit")
	audit.Use(middleware.RequireRoles(identity.RolesAuditRead))
	{
		audit.GET("/logs", deps.AuditHandler.List)
		audit.GET("/users/:id/logs", deps.AuditHandler.ListByUser)
	}

	return engine
}
