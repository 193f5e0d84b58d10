package skin

import (
	"context"
	"fmt"

	"github.com/skinforge/lootbox/internal/domain"
	"github.com/skinforge/lootbox/internal/logger"
	"github.com/skinforge/lootbox/internal/repository"
)

// Service defines the skin lookup interface
type Service interface {
	GetAll(ctx context.Context, limit, offset int) ([]domain.Skin, error)
	GetAvailable(ctx context.Context) ([]domain.Skin, error)
	GetFiltered(ctx context.Context, filter domain.SkinFilter) ([]domain.Skin, error)
	GetByID(ctx context.Context, id string) (*domain.Skin, error)
	GetByName(ctx context.Context, name string) (*domain.Skin, error)
}

type service struct {
	repo repository.Skin
}

// NewService creates a new skin service
func NewService(repo repository.Skin) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context, limit, offset int) ([]domain.Skin, error) {
	if err := domain.ValidatePageParams(limit, offset); err != nil {
		return nil, err
	}

	skins, err := s.repo.GetAllSkins(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list skins: %w", err)
	}
	if skins == nil {
		skins = []domain.Skin{}
	}
	return skins, nil
}

func (s *service) GetAvailable(ctx context.Context) ([]domain.Skin, error) {
	skins, err := s.repo.GetAvailableSkins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list available skins: %w", err)
	}
	if skins == nil {
		skins = []domain.Skin{}
	}
	return skins, nil
}

// GetFiltered returns available skins in the filter's price range, validated
// before any remote call is issued
func (s *service) GetFiltered(ctx context.Context, filter domain.SkinFilter) ([]domain.Skin, error) {
	log := logger.FromContext(ctx)

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	skins, err := s.repo.GetFilteredSkins(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list filtered skins: %w", err)
	}
	if skins == nil {
		skins = []domain.Skin{}
	}

	log.Info("Filtered skins retrieved",
		"min_price", filter.MinPrice, "max_price", filter.MaxPrice, "order", filter.Order, "count", len(skins))
	return skins, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*domain.Skin, error) {
	skin, err := s.repo.GetSkinByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get skin %s: %w", id, err)
	}
	if skin == nil {
		return nil, fmt.Errorf("%w: id %s", domain.ErrSkinNotFound, id)
	}
	return skin, nil
}

func (s *service) GetByName(ctx context.Context, name string) (*domain.Skin, error) {
	skin, err := s.repo.GetSkinByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get skin %q: %w", name, err)
	}
	if skin == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrSkinNotFound, name)
	}
	return skin, nil
}
