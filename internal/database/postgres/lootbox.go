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

// LootboxRepository implements repository.Lootbox for PostgreSQL
type LootboxRepository struct {
	pool *pgxpool.Pool
}

// NewLootboxRepository creates a new LootboxRepository
func NewLootboxRepository(pool *pgxpool.Pool) repository.Lootbox {
	return &LootboxRepository{pool: pool}
}

const lootboxColumns = "lootbox_id, name, description, base_price"

// GetAllLootboxes retrieves a page of lootboxes ordered by id
func (r *LootboxRepository) GetAllLootboxes(ctx context.Context, limit, offset int) ([]domain.Lootbox, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+lootboxColumns+" FROM lootbox_reference ORDER BY lootbox_id LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get all lootboxes: %w", err)
	}
	defer rows.Close()

	var lootboxes []domain.Lootbox
	for rows.Next() {
		var lb domain.Lootbox
		if err := rows.Scan(&lb.ID, &lb.Name, &lb.Description, &lb.BasePrice); err != nil {
			return nil, fmt.Errorf("failed to scan lootbox row: %w", err)
		}
		lootboxes = append(lootboxes, lb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lootbox rows: %w", err)
	}

	return lootboxes, nil
}

// GetLootboxByName retrieves a lootbox by exact, case-sensitive name.
// Returns (nil, nil) when absent.
func (r *LootboxRepository) GetLootboxByName(ctx context.Context, name string) (*domain.Lootbox, error) {
	var lb domain.Lootbox
	err := r.pool.QueryRow(ctx,
		"SELECT "+lootboxColumns+" FROM lootbox_reference WHERE name = $1", name).
		Scan(&lb.ID, &lb.Name, &lb.Description, &lb.BasePrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lootbox by name: %w", err)
	}

	return &lb, nil
}

// InsertLootbox inserts a new lootbox and returns the stored record
func (r *LootboxRepository) InsertLootbox(ctx context.Context, name, description string) (*domain.Lootbox, error) {
	var lb domain.Lootbox
	err := r.pool.QueryRow(ctx,
		"INSERT INTO lootbox_reference (name, description) VALUES ($1, $2) RETURNING "+lootboxColumns,
		name, description).
		Scan(&lb.ID, &lb.Name, &lb.Description, &lb.BasePrice)
	if err != nil {
		return nil, fmt.Errorf("failed to insert lootbox: %w", err)
	}

	return &lb, nil
}

// UpdateLootboxPrice sets a lootbox's base price and returns the affected row count
func (r *LootboxRepository) UpdateLootboxPrice(ctx context.Context, lootboxID int64, price float64) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		"UPDATE lootbox_reference SET base_price = $1 WHERE lootbox_id = $2",
		price, lootboxID)
	if err != nil {
		return 0, fmt.Errorf("failed to update lootbox price: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeleteLootbox removes a lootbox record and returns the removed row count
func (r *LootboxRepository) DeleteLootbox(ctx context.Context, lootboxID int64) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		"DELETE FROM lootbox_reference WHERE lootbox_id = $1", lootboxID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete lootbox: %w", err)
	}

	return tag.RowsAffected(), nil
}

// GetLootboxSkins retrieves all membership edges for a lootbox
func (r *LootboxRepository) GetLootboxSkins(ctx context.Context, lootboxID int64) ([]domain.LootboxSkin, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT lootbox_id, skin_id, drop_rate FROM lootbox_skins WHERE lootbox_id = $1", lootboxID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lootbox skins: %w", err)
	}
	defer rows.Close()

	var edges []domain.LootboxSkin
	for rows.Next() {
		var e domain.LootboxSkin
		if err := rows.Scan(&e.LootboxID, &e.SkinID, &e.DropRate); err != nil {
			return nil, fmt.Errorf("failed to scan lootbox skin row: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lootbox skin rows: %w", err)
	}

	return edges, nil
}

// InsertLootboxSkins inserts membership edges in a single batched copy and
// returns the number of rows the store confirmed
func (r *LootboxRepository) InsertLootboxSkins(ctx context.Context, edges []domain.LootboxSkin) (int64, error) {
	if len(edges) == 0 {
		return 0, nil
	}

	copyRows := make([][]any, 0, len(edges))
	for _, e := range edges {
		skinID, err := parseSkinUUID(e.SkinID)
		if err != nil {
			return 0, err
		}
		copyRows = append(copyRows, []any{e.LootboxID, skinID, e.DropRate})
	}

	inserted, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"lootbox_skins"},
		[]string{"lootbox_id", "skin_id", "drop_rate"},
		pgx.CopyFromRows(copyRows))
	if err != nil {
		return 0, fmt.Errorf("failed to insert lootbox skins: %w", err)
	}

	return inserted, nil
}

// UpdateDropRate sets the drop rate on one membership edge and returns the
// affected row count
func (r *LootboxRepository) UpdateDropRate(ctx context.Context, lootboxID int64, skinID string, dropRate float64) (int64, error) {
	id, err := parseSkinUUID(skinID)
	if err != nil {
		return 0, err
	}

	tag, err := r.pool.Exec(ctx,
		"UPDATE lootbox_skins SET drop_rate = $1 WHERE lootbox_id = $2 AND skin_id = $3",
		dropRate, lootboxID, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update drop rate: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeleteLootboxSkins removes all membership edges for a lootbox and returns
// the removed row count
func (r *LootboxRepository) DeleteLootboxSkins(ctx context.Context, lootboxID int64) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		"DELETE FROM lootbox_skins WHERE lootbox_id = $1", lootboxID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete lootbox skins: %w", err)
	}

	return tag.RowsAffected(), nil
}
