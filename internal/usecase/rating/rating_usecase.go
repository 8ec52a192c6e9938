package rating

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
	"github.com/gdugdh24/rentscore-backend/internal/logger"
	"github.com/gdugdh24/rentscore-backend/internal/repository"
	"github.com/gdugdh24/rentscore-backend/internal/scoring"
)

// Limits bounds how many listings Recommend scores and returns
type Limits struct {
	Candidates   int
	DefaultLimit int
	MaxLimit     int
}

type RatingUseCase struct {
	propertyRepo repository.PropertyRepository
	ownerRepo    repository.OwnerRepository
	limits       Limits
	log          *zap.Logger
}

func NewRatingUseCase(
	propertyRepo repository.PropertyRepository,
	ownerRepo repository.OwnerRepository,
	limits Limits,
	log *zap.Logger,
) *RatingUseCase {
	if limits.DefaultLimit <= 0 {
		limits.DefaultLimit = 10
	}
	if limits.MaxLimit < limits.DefaultLimit {
		limits.MaxLimit = limits.DefaultLimit
	}
	if limits.Candidates < limits.MaxLimit {
		limits.Candidates = limits.MaxLimit
	}
	return &RatingUseCase{
		propertyRepo: propertyRepo,
		ownerRepo:    ownerRepo,
		limits:       limits,
		log:          logger.OrNop(log),
	}
}

// MatchRequest is a renter's preference payload
type MatchRequest struct {
	PreferredLocation string   `json:"preferred_location" binding:"omitempty,max=120"`
	BudgetMin         *float64 `json:"budget_min" binding:"omitempty,gte=0"`
	BudgetMax         *float64 `json:"budget_max" binding:"omitempty,gte=0"`
	PropertyType      string   `json:"property_type" binding:"omitempty,property_type"`
	Purpose           string   `json:"purpose" binding:"omitempty,purpose"`
	RequiredAmenities []string `json:"required_amenities" binding:"omitempty,max=30,dive,max=60"`
	UserProfile       string   `json:"user_profile" binding:"omitempty,persona"`
}

func (r *MatchRequest) Preferences() domain.PreferenceRequest {
	return domain.PreferenceRequest{
		PreferredLocation: r.PreferredLocation,
		BudgetMin:         r.BudgetMin,
		BudgetMax:         r.BudgetMax,
		PropertyType:      domain.ParsePropertyType(r.PropertyType),
		Purpose:           domain.ParsePurpose(r.Purpose),
		RequiredAmenities: r.RequiredAmenities,
		UserProfile:       domain.ParsePersona(r.UserProfile),
	}
}

// RecommendRequest adds paging to the preference payload
type RecommendRequest struct {
	MatchRequest
	City  string `json:"city" binding:"omitempty,max=80"`
	Limit int    `json:"limit" binding:"omitempty,min=1,max=100"`
}

type PropertyScoreResponse struct {
	PropertyID uuid.UUID                 `json:"property_id"`
	TotalScore int                       `json:"total_score"`
	Breakdown  scoring.PropertyBreakdown `json:"breakdown"`
	TrustBadge domain.TrustBadge         `json:"trust_badge"`
}

type PriceFairnessResponse struct {
	PropertyID    uuid.UUID `json:"property_id"`
	Price         float64   `json:"price"`
	MarketAverage float64   `json:"market_average"`
	scoring.PriceFairness
}

type MatchResponse struct {
	PropertyID uuid.UUID `json:"property_id"`
	scoring.Match
}

// RecommendationItem is one ranked listing
type RecommendationItem struct {
	Property   *domain.Property  `json:"property"`
	Match      scoring.Match     `json:"match"`
	TrustBadge domain.TrustBadge `json:"trust_badge"`
}

type RecommendResponse struct {
	Items      []RecommendationItem `json:"items"`
	Candidates int                  `json:"candidates"`
}

type TrustBadgeResponse struct {
	OwnerID    uuid.UUID         `json:"owner_id"`
	TrustBadge domain.TrustBadge `json:"trust_badge"`
	Rank       int               `json:"rank"`
}

// loadOwner fetches the listing owner; a missing owner is not an error
func (uc *RatingUseCase) loadOwner(ctx context.Context, id uuid.UUID) (*domain.Owner, error) {
	owner, err := uc.ownerRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrOwnerNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	return owner, nil
}

// PropertyScore computes the composite quality score of a listing
func (uc *RatingUseCase) PropertyScore(ctx context.Context, id uuid.UUID) (*PropertyScoreResponse, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	owner, err := uc.loadOwner(ctx, property.OwnerID)
	if err != nil {
		return nil, err
	}

	score := scoring.ComputePropertyScore(property.Facts(), owner.Facts())

	uc.log.Debug("property scored",
		zap.String(logger.FieldPropertyID, id.String()),
		zap.Int("total_score", score.TotalScore),
		zap.Bool("owner_known", owner != nil),
	)

	return &PropertyScoreResponse{
		PropertyID: property.ID,
		TotalScore: score.TotalScore,
		Breakdown:  score.Breakdown,
		TrustBadge: scoring.DeriveTrustBadge(owner.Facts()),
	}, nil
}

func (uc *RatingUseCase) PriceFairness(ctx context.Context, id uuid.UUID) (*PriceFairnessResponse, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return &PriceFairnessResponse{
		PropertyID:    property.ID,
		Price:         property.Price,
		MarketAverage: scoring.MarketAverage(property.City, property.Type),
		PriceFairness: scoring.EvaluatePriceFairness(property.Facts()),
	}, nil
}

func (uc *RatingUseCase) MatchProperty(ctx context.Context, id uuid.UUID, prefs domain.PreferenceRequest) (*MatchResponse, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return &MatchResponse{
		PropertyID: property.ID,
		Match:      scoring.MatchScore(property.Facts(), prefs),
	}, nil
}

// Recommend scores candidate listings against the preferences and returns
// the best ones, highest score first. Equal scores are ordered by id so the
// ranking is stable across calls.
func (uc *RatingUseCase) Recommend(ctx context.Context, prefs domain.PreferenceRequest, city string, limit int) (*RecommendResponse, error) {
	switch {
	case limit <= 0:
		limit = uc.limits.DefaultLimit
	case limit > uc.limits.MaxLimit:
		limit = uc.limits.MaxLimit
	}

	filter := prefs.Filter()
	filter.City = city

	candidates, err := uc.propertyRepo.Search(ctx, filter, uc.limits.Candidates, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}

	type scoredCandidate struct {
		property *domain.Property
		match    scoring.Match
	}
	scored := make([]scoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		scored = append(scored, scoredCandidate{
			property: candidate,
			match:    scoring.MatchScore(candidate.Facts(), prefs),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].match.TotalScore != scored[j].match.TotalScore {
			return scored[i].match.TotalScore > scored[j].match.TotalScore
		}
		return scored[i].property.ID.String() < scored[j].property.ID.String()
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	ownerIDs := make([]uuid.UUID, 0, len(scored))
	seen := make(map[uuid.UUID]struct{}, len(scored))
	for _, s := range scored {
		if _, ok := seen[s.property.OwnerID]; ok {
			continue
		}
		seen[s.property.OwnerID] = struct{}{}
		ownerIDs = append(ownerIDs, s.property.OwnerID)
	}

	owners, err := uc.ownerRepo.GetByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get owners: %w", err)
	}

	items := make([]RecommendationItem, 0, len(scored))
	for _, s := range scored {
		items = append(items, RecommendationItem{
			Property:   s.property,
			Match:      s.match,
			TrustBadge: scoring.DeriveTrustBadge(owners[s.property.OwnerID].Facts()),
		})
	}

	uc.log.Info("recommendations ranked",
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(items)),
	)

	return &RecommendResponse{Items: items, Candidates: len(candidates)}, nil
}

// OwnerTrustBadge derives the badge from the owner's current record
func (uc *RatingUseCase) OwnerTrustBadge(ctx context.Context, ownerID uuid.UUID) (*TrustBadgeResponse, error) {
	owner, err := uc.ownerRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	badge := scoring.DeriveTrustBadge(owner.Facts())
	uc.log.Debug("trust badge derived",
		zap.String(logger.FieldOwnerID, ownerID.String()),
		zap.Stringer("badge", badge),
	)
	return &TrustBadgeResponse{
		OwnerID:    owner.ID,
		TrustBadge: badge,
		Rank:       badge.Rank(),
	}, nil
}
