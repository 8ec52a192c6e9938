package engagement

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gdugdh24/rentscore-backend/internal/logger"
	"github.com/gdugdh24/rentscore-backend/internal/repository"
)

// EngagementUseCase records the demand signals that feed the listing score
type EngagementUseCase struct {
	propertyRepo repository.PropertyRepository
	log          *zap.Logger
}

func NewEngagementUseCase(propertyRepo repository.PropertyRepository, log *zap.Logger) *EngagementUseCase {
	return &EngagementUseCase{
		propertyRepo: propertyRepo,
		log:          logger.OrNop(log),
	}
}

type CounterResponse struct {
	PropertyID      uuid.UUID `json:"property_id"`
	ViewCount       *int      `json:"view_count,omitempty"`
	ContactRequests *int      `json:"contact_requests,omitempty"`
}

func (uc *EngagementUseCase) RecordView(ctx context.Context, propertyID, userID uuid.UUID) (*CounterResponse, error) {
	count, err := uc.propertyRepo.IncrementViewCount(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to record view: %w", err)
	}

	uc.log.Debug("view recorded",
		zap.String(logger.FieldPropertyID, propertyID.String()),
		zap.String(logger.FieldUserID, userID.String()),
		zap.Int("view_count", count),
	)
	return &CounterResponse{PropertyID: propertyID, ViewCount: &count}, nil
}

func (uc *EngagementUseCase) RecordContactRequest(ctx context.Context, propertyID, userID uuid.UUID) (*CounterResponse, error) {
	count, err := uc.propertyRepo.IncrementContactRequests(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to record contact request: %w", err)
	}

	uc.log.Info("contact request recorded",
		zap.String(logger.FieldPropertyID, propertyID.String()),
		zap.String(logger.FieldUserID, userID.String()),
		zap.Int("contact_requests", count),
	)
	return &CounterResponse{PropertyID: propertyID, ContactRequests: &count}, nil
}
