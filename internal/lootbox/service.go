package lootbox

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/skinforge/lootbox/internal/domain"
	"github.com/skinforge/lootbox/internal/logger"
	"github.com/skinforge/lootbox/internal/repository"
)

// AddSkinsResult reports the outcome of a batched add. Contents is the full
// up-to-date membership, so callers cannot tell newly added skins apart from
// pre-existing ones; the report lists carry the skipped names.
type AddSkinsResult struct {
	Contents   []domain.Skin `json:"contents"`
	NotFound   []string      `json:"not_found,omitempty"`
	Duplicates []string      `json:"duplicates,omitempty"`
}

// Service defines the lootbox composition interface
type Service interface {
	Create(ctx context.Context, name, description string) (*domain.Lootbox, error)
	GetAll(ctx context.Context, limit, offset int) ([]domain.Lootbox, error)
	GetContents(ctx context.Context, name string) ([]domain.Skin, error)
	AddSkins(ctx context.Context, name string, skinNames []string) (*AddSkinsResult, error)
	Remove(ctx context.Context, name string) error
	SetProbabilities(ctx context.Context, name string, probabilities map[string]float64) (*domain.Lootbox, error)
}

type service struct {
	repo  repository.Lootbox
	skins repository.Skin
}

// NewService creates a new lootbox composition service
func NewService(repo repository.Lootbox, skins repository.Skin) Service {
	return &service{repo: repo, skins: skins}
}

// resolveLootbox maps a name to its stored record, failing with
// domain.ErrLootboxNotFound when no such lootbox exists
func (s *service) resolveLootbox(ctx context.Context, name string) (*domain.Lootbox, error) {
	lb, err := s.repo.GetLootboxByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get lootbox %q: %w", name, err)
	}
	if lb == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrLootboxNotFound, name)
	}
	return lb, nil
}

// Create inserts a new, empty lootbox
func (s *service) Create(ctx context.Context, name, description string) (*domain.Lootbox, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, fmt.Errorf("%w: name and description are required", domain.ErrInvalidArgument)
	}

	existing, err := s.repo.GetLootboxByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check lootbox name %q: %w", name, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: lootbox %q", domain.ErrDuplicateName, name)
	}

	lb, err := s.repo.InsertLootbox(ctx, name, description)
	if err != nil {
		return nil, fmt.Errorf("failed to insert lootbox %q: %w", name, err)
	}
	if lb == nil {
		return nil, fmt.Errorf("%w: insert of lootbox %q returned no record", domain.ErrStoreFailure, name)
	}

	log.Info("Lootbox created", "lootbox", lb.Name, "id", lb.ID)
	return lb, nil
}

// GetAll retrieves a page of lootboxes
func (s *service) GetAll(ctx context.Context, limit, offset int) ([]domain.Lootbox, error) {
	if err := domain.ValidatePageParams(limit, offset); err != nil {
		return nil, err
	}

	lootboxes, err := s.repo.GetAllLootboxes(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list lootboxes: %w", err)
	}
	if lootboxes == nil {
		lootboxes = []domain.Lootbox{}
	}
	return lootboxes, nil
}

// GetContents resolves a lootbox's membership edges to full skin records.
// Edges whose skin no longer exists are skipped, not surfaced as errors.
func (s *service) GetContents(ctx context.Context, name string) ([]domain.Skin, error) {
	log := logger.FromContext(ctx)

	lb, err := s.resolveLootbox(ctx, name)
	if err != nil {
		return nil, err
	}

	edges, err := s.repo.GetLootboxSkins(ctx, lb.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get skins for lootbox %q: %w", name, err)
	}

	contents := make([]domain.Skin, 0, len(edges))
	for _, edge := range edges {
		skin, err := s.skins.GetSkinByID(ctx, edge.SkinID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve skin %s in lootbox %q: %w", edge.SkinID, name, err)
		}
		if skin == nil {
			log.Warn("Skipping dangling skin reference", "lootbox", name, "skin_id", edge.SkinID)
			continue
		}
		skin.DropRate = edge.DropRate
		contents = append(contents, *skin)
	}

	return contents, nil
}

// AddSkins stages and inserts membership edges for the named skins, skipping
// unknown names and existing members, then returns the full current contents.
// Idempotent by skin: re-adding a member reports it as a duplicate.
func (s *service) AddSkins(ctx context.Context, name string, skinNames []string) (*AddSkinsResult, error) {
	log := logger.FromContext(ctx)

	lb, err := s.resolveLootbox(ctx, name)
	if err != nil {
		return nil, err
	}

	edges, err := s.repo.GetLootboxSkins(ctx, lb.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get skins for lootbox %q: %w", name, err)
	}

	memberIDs := make(map[string]struct{}, len(edges))
	for _, edge := range edges {
		memberIDs[edge.SkinID] = struct{}{}
	}

	var staged []domain.LootboxSkin
	var notFound, duplicates []string
	for _, skinName := range skinNames {
		skin, err := s.skins.GetSkinByName(ctx, skinName)
		if err != nil {
			return nil, fmt.Errorf("failed to look up skin %q: %w", skinName, err)
		}
		if skin == nil || skin.ID == "" {
			notFound = append(notFound, skinName)
			continue
		}
		if _, ok := memberIDs[skin.ID]; ok {
			duplicates = append(duplicates, skinName)
			continue
		}

		memberIDs[skin.ID] = struct{}{}
		staged = append(staged, domain.LootboxSkin{
			LootboxID: lb.ID,
			SkinID:    skin.ID,
			DropRate:  0,
		})
	}

	// An empty stage is not an error; the insert is skipped entirely
	if len(staged) > 0 {
		inserted, err := s.repo.InsertLootboxSkins(ctx, staged)
		if err != nil {
			return nil, fmt.Errorf("failed to add skins to lootbox %q: %w", name, err)
		}
		if inserted != int64(len(staged)) {
			return nil, fmt.Errorf("%w: staged %d skins for lootbox %q, store confirmed %d",
				domain.ErrStoreFailure, len(staged), name, inserted)
		}
	}

	log.Info("Skins added to lootbox",
		"lootbox", name, "added", len(staged), "duplicates", len(duplicates), "not_found", len(notFound))

	contents, err := s.GetContents(ctx, name)
	if err != nil {
		return nil, err
	}

	return &AddSkinsResult{Contents: contents, NotFound: notFound, Duplicates: duplicates}, nil
}

// Remove deletes a lootbox's membership edges and then the lootbox itself.
// Removing zero pre-existing edges is fine; the store's failure signal is not.
func (s *service) Remove(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	lb, err := s.resolveLootbox(ctx, name)
	if err != nil {
		return err
	}

	if _, err := s.repo.DeleteLootboxSkins(ctx, lb.ID); err != nil {
		return fmt.Errorf("failed to delete skins for lootbox %q: %w", name, err)
	}

	removed, err := s.repo.DeleteLootbox(ctx, lb.ID)
	if err != nil {
		return fmt.Errorf("failed to delete lootbox %q: %w", name, err)
	}
	if removed == 0 {
		return fmt.Errorf("%w: delete of lootbox %q removed no rows", domain.ErrStoreFailure, name)
	}

	log.Info("Lootbox removed", "lootbox", name, "id", lb.ID)
	return nil
}

// SetProbabilities assigns a drop rate to every member and reprices the
// lootbox at expected value times the markup factor.
//
// The price is committed before the per-member drop-rate writes and is not
// rolled back if one of them fails; isolation is delegated entirely to the
// store. Re-running the operation converges both price and rates.
func (s *service) SetProbabilities(ctx context.Context, name string, probabilities map[string]float64) (*domain.Lootbox, error) {
	log := logger.FromContext(ctx)

	contents, err := s.GetContents(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(contents) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrLootboxEmpty, name)
	}

	memberNames := make(map[string]struct{}, len(contents))
	for _, skin := range contents {
		memberNames[skin.Name] = struct{}{}
	}

	if len(probabilities) != len(contents) {
		return nil, fmt.Errorf("%w: lootbox %q has %d skins, got %d probabilities",
			domain.ErrInvalidArgument, name, len(contents), len(probabilities))
	}
	for skinName := range probabilities {
		if _, ok := memberNames[skinName]; !ok {
			return nil, fmt.Errorf("%w: %q in lootbox %q", domain.ErrSkinNotInLootbox, skinName, name)
		}
	}

	var sum float64
	for _, p := range probabilities {
		sum += p
	}
	if math.Abs(sum-1.0) >= domain.DropRateSumEpsilon {
		return nil, fmt.Errorf("%w: current sum is %.12f", domain.ErrInvalidDropRateSum, sum)
	}

	var expectedValue float64
	for _, skin := range contents {
		expectedValue += skin.BasePrice * probabilities[skin.Name]
	}
	adjustedPrice := expectedValue * domain.PriceMarkupFactor

	lb, err := s.resolveLootbox(ctx, name)
	if err != nil {
		return nil, err
	}

	affected, err := s.repo.UpdateLootboxPrice(ctx, lb.ID, adjustedPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to update price for lootbox %q: %w", name, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: price update for lootbox %q affected no rows", domain.ErrStoreFailure, name)
	}

	for _, skin := range contents {
		affected, err := s.repo.UpdateDropRate(ctx, lb.ID, skin.ID, probabilities[skin.Name])
		if err != nil {
			return nil, fmt.Errorf("failed to update drop rate for skin %q in lootbox %q: %w", skin.Name, name, err)
		}
		if affected == 0 {
			return nil, fmt.Errorf("%w: drop rate update for skin %q in lootbox %q affected no rows",
				domain.ErrStoreFailure, skin.Name, name)
		}
	}

	log.Info("Lootbox repriced",
		"lootbox", name, "expected_value", expectedValue, "base_price", adjustedPrice, "skins", len(contents))

	lb.BasePrice = adjustedPrice
	return lb, nil
}
