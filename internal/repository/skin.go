package repository

import (
	"context"

	"github.com/skinforge/lootbox/internal/domain"
)

// Skin defines the interface for skin catalog reads.
// Single-row lookups return (nil, nil) when no matching row exists;
// an error always means the store call itself failed.
type Skin interface {
	GetAllSkins(ctx context.Context, limit, offset int) ([]domain.Skin, error)
	GetAvailableSkins(ctx context.Context) ([]domain.Skin, error)
	GetFilteredSkins(ctx context.Context, filter domain.SkinFilter) ([]domain.Skin, error)
	GetSkinByID(ctx context.Context, id string) (*domain.Skin, error)
	GetSkinByName(ctx context.Context, name string) (*domain.Skin, error)
}
