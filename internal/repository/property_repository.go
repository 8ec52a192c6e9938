package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
)

type PropertyRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	Search(ctx context.Context, filter domain.PropertyFilter, limit, offset int) ([]*domain.Property, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) (int, error)
	IncrementContactRequests(ctx context.Context, id uuid.UUID) (int, error)
}
