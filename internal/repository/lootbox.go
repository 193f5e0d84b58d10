package repository

import (
	"context"

	"github.com/skinforge/lootbox/internal/domain"
)

// Lootbox defines the interface for lootbox and membership-edge persistence.
// Write operations return the number of rows the store confirmed so callers
// can distinguish "nothing matched" from a store failure signal.
type Lootbox interface {
	// Lootbox operations
	GetAllLootboxes(ctx context.Context, limit, offset int) ([]domain.Lootbox, error)
	GetLootboxByName(ctx context.Context, name string) (*domain.Lootbox, error)
	InsertLootbox(ctx context.Context, name, description string) (*domain.Lootbox, error)
	UpdateLootboxPrice(ctx context.Context, lootboxID int64, price float64) (int64, error)
	DeleteLootbox(ctx context.Context, lootboxID int64) (int64, error)

	// Membership edge operations
	GetLootboxSkins(ctx context.Context, lootboxID int64) ([]domain.LootboxSkin, error)
	InsertLootboxSkins(ctx context.Context, edges []domain.LootboxSkin) (int64, error)
	UpdateDropRate(ctx context.Context, lootboxID int64, skinID string, dropRate float64) (int64, error)
	DeleteLootboxSkins(ctx context.Context, lootboxID int64) (int64, error)
}
