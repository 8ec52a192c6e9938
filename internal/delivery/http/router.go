package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gdugdh24/rentscore-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/rentscore-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/rentscore-backend/internal/logger"
)

type Router struct {
	propertyHandler       *handler.PropertyHandler
	recommendationHandler *handler.RecommendationHandler
	ownerHandler          *handler.OwnerHandler
	authMiddleware        *middleware.AuthMiddleware
	log                   *zap.Logger
}

func NewRouter(
	propertyHandler *handler.PropertyHandler,
	recommendationHandler *handler.RecommendationHandler,
	ownerHandler *handler.OwnerHandler,
	authMiddleware *middleware.AuthMiddleware,
	log *zap.Logger,
) *Router {
	return &Router{
		propertyHandler:       propertyHandler,
		recommendationHandler: recommendationHandler,
		ownerHandler:          ownerHandler,
		authMiddleware:        authMiddleware,
		log:                   logger.OrNop(log),
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(r.log), middleware.Recovery(r.log))

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	v1 := router.Group("/api/v1")
	{
		properties := v1.Group("/properties/:id")
		{
			properties.GET("/score", r.propertyHandler.GetScore)
			properties.GET("/price-fairness", r.propertyHandler.GetPriceFairness)
			properties.POST("/match", r.propertyHandler.Match)
		}

		// Authenticated property routes
		protected := v1.Group("/properties/:id")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			protected.POST("/view", r.propertyHandler.RecordView)
			protected.POST("/contact", r.propertyHandler.RecordContact)
			protected.GET("/insights", r.propertyHandler.GetInsights)
		}

		v1.POST("/recommendations", r.recommendationHandler.Recommend)
		v1.GET("/owners/:id/trust-badge", r.ownerHandler.GetTrustBadge)
	}

	return router
}
