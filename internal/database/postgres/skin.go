package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skinforge/lootbox/internal/domain"
	"github.com/skinforge/lootbox/internal/repository"
)

// SkinRepository implements repository.Skin for PostgreSQL
type SkinRepository struct {
	pool *pgxpool.Pool
}

// NewSkinRepository creates a new SkinRepository
func NewSkinRepository(pool *pgxpool.Pool) repository.Skin {
	return &SkinRepository{pool: pool}
}

const skinColumns = "id, name, base_price, available"

func scanSkins(rows pgx.Rows) ([]domain.Skin, error) {
	defer rows.Close()

	var skins []domain.Skin
	for rows.Next() {
		var s domain.Skin
		if err := rows.Scan(&s.ID, &s.Name, &s.BasePrice, &s.Available); err != nil {
			return nil, fmt.Errorf("failed to scan skin row: %w", err)
		}
		skins = append(skins, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skin rows: %w", err)
	}

	return skins, nil
}

// GetAllSkins retrieves a page of skins ordered by name
func (r *SkinRepository) GetAllSkins(ctx context.Context, limit, offset int) ([]domain.Skin, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+skinColumns+" FROM skins_reference ORDER BY name LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get all skins: %w", err)
	}

	return scanSkins(rows)
}

// GetAvailableSkins retrieves all skins currently flagged available
func (r *SkinRepository) GetAvailableSkins(ctx context.Context) ([]domain.Skin, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+skinColumns+" FROM skins_reference WHERE available ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to get available skins: %w", err)
	}

	return scanSkins(rows)
}

// GetFilteredSkins retrieves available skins within a price range, optionally
// matching a name substring, sorted by base price.
// The filter must already be validated; Order is interpolated into the
// statement and is restricted to the validated asc/desc values.
func (r *SkinRepository) GetFilteredSkins(ctx context.Context, filter domain.SkinFilter) ([]domain.Skin, error) {
	query := "SELECT " + skinColumns + " FROM skins_reference WHERE available AND base_price >= $1 AND base_price <= $2"
	args := []any{filter.MinPrice, filter.MaxPrice}

	if filter.NameContains != "" {
		query += " AND name ILIKE '%' || $3 || '%'"
		args = append(args, filter.NameContains)
	}

	direction := "ASC"
	if filter.Order == domain.OrderDesc {
		direction = "DESC"
	}
	query += " ORDER BY base_price " + direction

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get filtered skins: %w", err)
	}

	return scanSkins(rows)
}

// GetSkinByID retrieves a skin by ID. Returns (nil, nil) when absent.
func (r *SkinRepository) GetSkinByID(ctx context.Context, id string) (*domain.Skin, error) {
	skinID, err := parseSkinUUID(id)
	if err != nil {
		return nil, err
	}

	var s domain.Skin
	err = r.pool.QueryRow(ctx,
		"SELECT "+skinColumns+" FROM skins_reference WHERE id = $1", skinID).
		Scan(&s.ID, &s.Name, &s.BasePrice, &s.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skin by id: %w", err)
	}

	return &s, nil
}

// GetSkinByName retrieves a skin by exact, case-sensitive name.
// Returns (nil, nil) when absent.
func (r *SkinRepository) GetSkinByName(ctx context.Context, name string) (*domain.Skin, error) {
	var s domain.Skin
	err := r.pool.QueryRow(ctx,
		"SELECT "+skinColumns+" FROM skins_reference WHERE name = $1", name).
		Scan(&s.ID, &s.Name, &s.BasePrice, &s.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skin by name: %w", err)
	}

	return &s, nil
}
