package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
	"github.com/gdugdh24/rentscore-backend/internal/repository"
)

const propertyColumns = `
	id, owner_id, title, city, area, type, purpose, price, amenities,
	latitude, longitude, bhk, view_count, contact_requests,
	created_at, updated_at`

// propertyRow mirrors the properties table; amenities need pq's array type
type propertyRow struct {
	ID              uuid.UUID       `db:"id"`
	OwnerID         uuid.UUID       `db:"owner_id"`
	Title           string          `db:"title"`
	City            string          `db:"city"`
	Area            string          `db:"area"`
	Type            string          `db:"type"`
	Purpose         string          `db:"purpose"`
	Price           float64         `db:"price"`
	Amenities       pq.StringArray  `db:"amenities"`
	Latitude        sql.NullFloat64 `db:"latitude"`
	Longitude       sql.NullFloat64 `db:"longitude"`
	BHK             sql.NullInt32   `db:"bhk"`
	ViewCount       int             `db:"view_count"`
	ContactRequests int             `db:"contact_requests"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func (r propertyRow) toDomain() *domain.Property {
	p := &domain.Property{
		ID:              r.ID,
		OwnerID:         r.OwnerID,
		Title:           r.Title,
		City:            r.City,
		Area:            r.Area,
		Type:            domain.ParsePropertyType(r.Type),
		Purpose:         domain.ParsePurpose(r.Purpose),
		Price:           r.Price,
		Amenities:       []string(r.Amenities),
		ViewCount:       r.ViewCount,
		ContactRequests: r.ContactRequests,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.Latitude.Valid {
		lat := r.Latitude.Float64
		p.Latitude = &lat
	}
	if r.Longitude.Valid {
		lon := r.Longitude.Float64
		p.Longitude = &lon
	}
	if r.BHK.Valid {
		bhk := int(r.BHK.Int32)
		p.BHK = &bhk
	}
	return p
}

type propertyRepository struct {
	db *sqlx.DB
}

func NewPropertyRepository(db *sqlx.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	var row propertyRow
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("get property %s: %w", id, err)
	}
	return row.toDomain(), nil
}

// buildSearchQuery renders the filtered listing query and its arguments
func buildSearchQuery(filter domain.PropertyFilter, limit, offset int) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + propertyColumns + ` FROM properties WHERE 1=1`)
	args := []interface{}{}
	argCount := 1

	if city := strings.TrimSpace(filter.City); city != "" {
		sb.WriteString(fmt.Sprintf(" AND LOWER(city) = LOWER($%d)", argCount))
		args = append(args, city)
		argCount++
	}

	if filter.Type.Valid() {
		sb.WriteString(fmt.Sprintf(" AND type = $%d", argCount))
		args = append(args, string(filter.Type))
		argCount++
	}

	if filter.Purpose.Valid() {
		sb.WriteString(fmt.Sprintf(" AND purpose = $%d", argCount))
		args = append(args, string(filter.Purpose))
		argCount++
	}

	if filter.MinPrice != nil {
		sb.WriteString(fmt.Sprintf(" AND price >= $%d", argCount))
		args = append(args, *filter.MinPrice)
		argCount++
	}

	if filter.MaxPrice != nil {
		sb.WriteString(fmt.Sprintf(" AND price <= $%d", argCount))
		args = append(args, *filter.MaxPrice)
		argCount++
	}

	sb.WriteString(fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	return sb.String(), args
}

func (r *propertyRepository) Search(ctx context.Context, filter domain.PropertyFilter, limit, offset int) ([]*domain.Property, error) {
	query, args := buildSearchQuery(filter, limit, offset)

	var rows []propertyRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search properties: %w", err)
	}

	properties := make([]*domain.Property, 0, len(rows))
	for _, row := range rows {
		properties = append(properties, row.toDomain())
	}
	return properties, nil
}

func (r *propertyRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) (int, error) {
	return r.increment(ctx, id, "view_count")
}

func (r *propertyRepository) IncrementContactRequests(ctx context.Context, id uuid.UUID) (int, error) {
	return r.increment(ctx, id, "contact_requests")
}

// increment bumps one of the fixed counter columns and returns its new value
func (r *propertyRepository) increment(ctx context.Context, id uuid.UUID, column string) (int, error) {
	query := fmt.Sprintf(`
		UPDATE properties
		SET %[1]s = %[1]s + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING %[1]s
	`, column)

	var value int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrPropertyNotFound
		}
		return 0, fmt.Errorf("increment %s for %s: %w", column, id, err)
	}
	return value, nil
}
