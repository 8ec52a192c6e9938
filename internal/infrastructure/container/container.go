package container

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gdugdh24/rentscore-backend/internal/config"
	"github.com/gdugdh24/rentscore-backend/internal/delivery/http"
	"github.com/gdugdh24/rentscore-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/rentscore-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/rentscore-backend/internal/infrastructure/cache"
	"github.com/gdugdh24/rentscore-backend/internal/infrastructure/database"
	"github.com/gdugdh24/rentscore-backend/internal/infrastructure/gemini"
	"github.com/gdugdh24/rentscore-backend/internal/infrastructure/server"
	"github.com/gdugdh24/rentscore-backend/internal/logger"
	"github.com/gdugdh24/rentscore-backend/internal/repository/postgres"
	"github.com/gdugdh24/rentscore-backend/internal/usecase/auth"
	"github.com/gdugdh24/rentscore-backend/internal/usecase/engagement"
	"github.com/gdugdh24/rentscore-backend/internal/usecase/insight"
	"github.com/gdugdh24/rentscore-backend/internal/usecase/rating"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.Client
	Log    *zap.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Container, error) {
	log = logger.OrNop(log)
	c := &Container{Config: cfg, Log: log}

	db, err := database.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	c.DB = db

	var responseCache cache.Cache
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		redisClient, err := database.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		c.Redis = redisClient
		responseCache = cache.NewRedisCache(redisClient, "")
	default:
		responseCache = cache.NewMemoryCache()
	}
	log.Info("response cache ready", zap.String("backend", cfg.Cache.Backend), zap.Duration("ttl", cfg.Cache.TTL))

	// Insights degrade to the canned narrative without a model
	var generator insight.Generator
	if cfg.Gemini.APIKey != "" {
		geminiClient, err := gemini.NewClient(ctx, cfg.Gemini, log)
		if err != nil {
			log.Warn("failed to initialize gemini client, insights use fallback text", zap.Error(err))
		} else {
			c.Gemini = geminiClient
			generator = geminiClient
			log.Info("gemini client ready", zap.String(logger.FieldModel, geminiClient.Model()))
		}
	} else {
		log.Info("gemini api key not set, insights use fallback text")
	}

	// Initialize repositories
	propertyRepo := postgres.NewPropertyRepository(db)
	ownerRepo := postgres.NewOwnerRepository(db)

	// Initialize use cases
	tokenUseCase := auth.NewTokenUseCase(cfg.JWT.AccessSecret)

	ratingUseCase := rating.NewRatingUseCase(
		propertyRepo,
		ownerRepo,
		rating.Limits{
			Candidates:   cfg.Ranking.CandidateLimit,
			DefaultLimit: cfg.Ranking.DefaultLimit,
			MaxLimit:     cfg.Ranking.MaxLimit,
		},
		log.Named("rating"),
	)

	insightUseCase := insight.NewInsightUseCase(
		propertyRepo,
		ownerRepo,
		responseCache,
		generator,
		cfg.Cache.TTL,
		log.Named("insight"),
	)

	engagementUseCase := engagement.NewEngagementUseCase(propertyRepo, log.Named("engagement"))

	// Initialize handlers
	if err := http.RegisterValidators(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}
	propertyHandler := handler.NewPropertyHandler(ratingUseCase, insightUseCase, engagementUseCase)
	recommendationHandler := handler.NewRecommendationHandler(ratingUseCase)
	ownerHandler := handler.NewOwnerHandler(ratingUseCase)

	authMiddleware := middleware.NewAuthMiddleware(tokenUseCase)

	gin.SetMode(ginMode(&cfg.Server))
	router := http.NewRouter(
		propertyHandler,
		recommendationHandler,
		ownerHandler,
		authMiddleware,
		log.Named("http"),
	)

	c.Server = server.NewServer(&cfg.Server, router.Setup(), log.Named("server"))

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	var errs []error

	if c.Gemini != nil {
		if err := c.Gemini.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close gemini client: %w", err))
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	return errors.Join(errs...)
}

func ginMode(cfg *config.ServerConfig) string {
	if cfg.IsProduction() {
		return gin.ReleaseMode
	}
	return gin.DebugMode
}
