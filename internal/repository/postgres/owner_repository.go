package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
	"github.com/gdugdh24/rentscore-backend/internal/repository"
)

const ownerColumns = `
	id, display_name, verified, is_google_login, email_verified, phone_verified,
	rating, successful_deals, created_at, updated_at`

type ownerRepository struct {
	db *sqlx.DB
}

func NewOwnerRepository(db *sqlx.DB) repository.OwnerRepository {
	return &ownerRepository{db: db}
}

func (r *ownerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Owner, error) {
	var owner domain.Owner
	query := `SELECT ` + ownerColumns + ` FROM owners WHERE id = $1`
	if err := r.db.GetContext(ctx, &owner, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("get owner %s: %w", id, err)
	}
	return &owner, nil
}

func (r *ownerRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Owner, error) {
	result := make(map[uuid.UUID]*domain.Owner, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}

	var owners []domain.Owner
	query := `SELECT ` + ownerColumns + ` FROM owners WHERE id = ANY($1::uuid[])`
	if err := r.db.SelectContext(ctx, &owners, query, pq.Array(keys)); err != nil {
		return nil, fmt.Errorf("get owners: %w", err)
	}

	for i := range owners {
		result[owners[i].ID] = &owners[i]
	}
	return result, nil
}
