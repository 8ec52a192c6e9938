package insight

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
	"github.com/gdugdh24/rentscore-backend/internal/infrastructure/cache"
	"github.com/gdugdh24/rentscore-backend/internal/logger"
	"github.com/gdugdh24/rentscore-backend/internal/repository"
	"github.com/gdugdh24/rentscore-backend/internal/scoring"
)

const (
	SourceModel    = "model"
	SourceCache    = "cache"
	SourceFallback = "fallback"
)

// Generator turns a prompt into free text
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type InsightUseCase struct {
	propertyRepo repository.PropertyRepository
	ownerRepo    repository.OwnerRepository
	cache        cache.Cache
	generator    Generator
	ttl          time.Duration
	log          *zap.Logger
}

// NewInsightUseCase wires the narrative generator. generator may be nil, in
// which case every insight is the canned narrative.
func NewInsightUseCase(
	propertyRepo repository.PropertyRepository,
	ownerRepo repository.OwnerRepository,
	c cache.Cache,
	generator Generator,
	ttl time.Duration,
	log *zap.Logger,
) *InsightUseCase {
	return &InsightUseCase{
		propertyRepo: propertyRepo,
		ownerRepo:    ownerRepo,
		cache:        c,
		generator:    generator,
		ttl:          ttl,
		log:          logger.OrNop(log),
	}
}

// Facts are the computed numbers an insight is written from
type Facts struct {
	Property      domain.PropertyFacts  `json:"property"`
	PriceFairness scoring.PriceFairness `json:"price_fairness"`
	MarketAverage float64               `json:"market_average"`
	AmenityScore  int                   `json:"amenity_score"`
	LocationScore int                   `json:"location_score"`
	PropertyScore int                   `json:"property_score"`
	TrustBadge    domain.TrustBadge     `json:"trust_badge"`
}

type InsightResponse struct {
	PropertyID uuid.UUID `json:"property_id"`
	Insight    string    `json:"insight"`
	Source     string    `json:"source"`
	Facts      Facts     `json:"facts"`
}

func computeFacts(p *domain.Property, owner *domain.Owner) Facts {
	facts := p.Facts()
	return Facts{
		Property:      facts,
		PriceFairness: scoring.EvaluatePriceFairness(facts),
		MarketAverage: scoring.MarketAverage(p.City, p.Type),
		AmenityScore:  scoring.ScoreAmenitiesSimple(p.Amenities),
		LocationScore: scoring.ScoreLocation(p.City, p.Area),
		PropertyScore: scoring.ComputePropertyScore(facts, owner.Facts()).TotalScore,
		TrustBadge:    scoring.DeriveTrustBadge(owner.Facts()),
	}
}

// cacheKey hashes the facts the narrative is written from. Raw view and
// contact counters are left out; they reach the key only through the
// property score bands.
func cacheKey(id uuid.UUID, facts Facts) (string, error) {
	facts.Property.ViewCount = 0
	facts.Property.ContactRequests = 0
	payload, err := json.Marshal(facts)
	if err != nil {
		return "", fmt.Errorf("marshal insight facts: %w", err)
	}
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("insight:%s:%s", id, hex.EncodeToString(sum[:])), nil
}

// PropertyInsights returns a short narrative about a listing's price and
// appeal. Generated text is cached; generator failures degrade to a canned
// narrative built from the same facts.
func (uc *InsightUseCase) PropertyInsights(ctx context.Context, id uuid.UUID) (*InsightResponse, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	owner, err := uc.ownerRepo.GetByID(ctx, property.OwnerID)
	if err != nil && !errors.Is(err, domain.ErrOwnerNotFound) {
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	facts := computeFacts(property, owner)
	resp := &InsightResponse{PropertyID: property.ID, Facts: facts}

	key, err := cacheKey(property.ID, facts)
	if err != nil {
		return nil, err
	}
	log := logger.WithFields(uc.log,
		zap.String(logger.FieldPropertyID, property.ID.String()),
		zap.String(logger.FieldCacheKey, key),
	)

	if uc.cache != nil {
		cached, ok, err := uc.cache.Get(ctx, key)
		switch {
		case err != nil:
			log.Warn("insight cache read failed", zap.Error(err))
		case ok:
			resp.Insight, resp.Source = cached, SourceCache
			return resp, nil
		}
	}

	if uc.generator != nil {
		text, err := uc.generator.GenerateText(ctx, buildPrompt(property, facts))
		if err == nil {
			resp.Insight, resp.Source = text, SourceModel
			if uc.cache != nil {
				if err := uc.cache.Set(ctx, key, text, uc.ttl); err != nil {
					log.Warn("insight cache write failed", zap.Error(err))
				}
			}
			return resp, nil
		}
		log.Warn("insight generation failed, using fallback", zap.Error(err))
	}

	resp.Insight, resp.Source = fallbackInsight(property, facts), SourceFallback
	return resp, nil
}
