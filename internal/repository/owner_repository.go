package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
)

type OwnerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Owner, error)
	// GetByIDs returns the owners that exist, keyed by id; unknown ids are skipped
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Owner, error)
}
