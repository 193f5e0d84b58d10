package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/skinforge/lootbox/internal/database"
	"github.com/skinforge/lootbox/internal/database/schema"
	"github.com/skinforge/lootbox/internal/domain"
)

func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *pgcontainer.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = pgcontainer.Run(ctx,
			"postgres:15-alpine",
			pgcontainer.WithDatabase("testdb"),
			pgcontainer.WithUsername("testuser"),
			pgcontainer.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()

	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	if pgContainer == nil {
		return nil
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Fatalf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(connStr, 5, time.Minute, 5*time.Minute)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, schema.SchemaSQL); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	return pool
}

// insertTestSkin seeds a catalog row directly, the way the ingestion pipeline would
func insertTestSkin(t *testing.T, pool *pgxpool.Pool, name string, price float64, available bool) string {
	t.Helper()

	var id string
	err := pool.QueryRow(context.Background(),
		"INSERT INTO skins_reference (name, base_price, available) VALUES ($1, $2, $3) RETURNING id",
		name, price, available).Scan(&id)
	if err != nil {
		t.Fatalf("failed to insert test skin %q: %v", name, err)
	}
	return id
}

func TestSkinRepository_Integration(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()

	akID := insertTestSkin(t, pool, "AK-47 Redline", 10.0, true)
	insertTestSkin(t, pool, "AWP Asiimov", 30.0, true)
	insertTestSkin(t, pool, "Karambit Fade", 800.0, false)

	repo := NewSkinRepository(pool)

	t.Run("GetAllSkins pages by name", func(t *testing.T) {
		skins, err := repo.GetAllSkins(ctx, 2, 0)
		if err != nil {
			t.Fatalf("GetAllSkins failed: %v", err)
		}
		if len(skins) != 2 {
			t.Fatalf("expected 2 skins, got %d", len(skins))
		}
		if skins[0].Name != "AK-47 Redline" {
			t.Errorf("expected AK-47 Redline first, got %s", skins[0].Name)
		}

		rest, err := repo.GetAllSkins(ctx, 2, 2)
		if err != nil {
			t.Fatalf("GetAllSkins failed: %v", err)
		}
		if len(rest) != 1 {
			t.Errorf("expected 1 skin on second page, got %d", len(rest))
		}
	})

	t.Run("GetAvailableSkins excludes unavailable", func(t *testing.T) {
		skins, err := repo.GetAvailableSkins(ctx)
		if err != nil {
			t.Fatalf("GetAvailableSkins failed: %v", err)
		}
		if len(skins) != 2 {
			t.Fatalf("expected 2 available skins, got %d", len(skins))
		}
		for _, s := range skins {
			if !s.Available {
				t.Errorf("unavailable skin %s in available listing", s.Name)
			}
		}
	})

	t.Run("GetFilteredSkins applies range, substring and order", func(t *testing.T) {
		filter := domain.SkinFilter{MinPrice: 5, MaxPrice: 100, Order: domain.OrderDesc}
		skins, err := repo.GetFilteredSkins(ctx, filter)
		if err != nil {
			t.Fatalf("GetFilteredSkins failed: %v", err)
		}
		if len(skins) != 2 {
			t.Fatalf("expected 2 skins in range, got %d", len(skins))
		}
		if skins[0].Name != "AWP Asiimov" {
			t.Errorf("expected descending price order, got %s first", skins[0].Name)
		}

		filter.NameContains = "redline"
		skins, err = repo.GetFilteredSkins(ctx, filter)
		if err != nil {
			t.Fatalf("GetFilteredSkins failed: %v", err)
		}
		if len(skins) != 1 || skins[0].Name != "AK-47 Redline" {
			t.Errorf("expected case-insensitive match on AK-47 Redline, got %v", skins)
		}
	})

	t.Run("GetSkinByID round trip", func(t *testing.T) {
		s, err := repo.GetSkinByID(ctx, akID)
		if err != nil {
			t.Fatalf("GetSkinByID failed: %v", err)
		}
		if s == nil || s.Name != "AK-47 Redline" {
			t.Fatalf("expected AK-47 Redline, got %v", s)
		}
	})

	t.Run("GetSkinByID absent returns nil nil", func(t *testing.T) {
		s, err := repo.GetSkinByID(ctx, "00000000-0000-0000-0000-000000000000")
		if err != nil {
			t.Fatalf("GetSkinByID failed: %v", err)
		}
		if s != nil {
			t.Errorf("expected nil for absent skin, got %v", s)
		}
	})

	t.Run("GetSkinByID rejects malformed uuid", func(t *testing.T) {
		if _, err := repo.GetSkinByID(ctx, "not-a-uuid"); err == nil {
			t.Error("expected error for malformed uuid")
		}
	})

	t.Run("GetSkinByName is case sensitive", func(t *testing.T) {
		s, err := repo.GetSkinByName(ctx, "AWP Asiimov")
		if err != nil {
			t.Fatalf("GetSkinByName failed: %v", err)
		}
		if s == nil {
			t.Fatal("expected skin, got nil")
		}

		s, err = repo.GetSkinByName(ctx, "awp asiimov")
		if err != nil {
			t.Fatalf("GetSkinByName failed: %v", err)
		}
		if s != nil {
			t.Errorf("expected nil for wrong case, got %v", s)
		}
	})
}

func TestLootboxRepository_Integration(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()

	akID := insertTestSkin(t, pool, "AK-47 Redline", 10.0, true)
	awpID := insertTestSkin(t, pool, "AWP Asiimov", 30.0, true)

	repo := NewLootboxRepository(pool)

	t.Run("InsertLootbox returns the stored record", func(t *testing.T) {
		lb, err := repo.InsertLootbox(ctx, "Starter Case", "Entry level case")
		if err != nil {
			t.Fatalf("InsertLootbox failed: %v", err)
		}
		if lb.ID == 0 {
			t.Error("expected a generated id")
		}
		if lb.BasePrice != 0 {
			t.Errorf("expected zero base price on insert, got %g", lb.BasePrice)
		}

		retrieved, err := repo.GetLootboxByName(ctx, "Starter Case")
		if err != nil {
			t.Fatalf("GetLootboxByName failed: %v", err)
		}
		if retrieved == nil || retrieved.ID != lb.ID {
			t.Fatalf("expected stored lootbox back, got %v", retrieved)
		}
	})

	t.Run("GetLootboxByName absent returns nil nil", func(t *testing.T) {
		lb, err := repo.GetLootboxByName(ctx, "No Such Case")
		if err != nil {
			t.Fatalf("GetLootboxByName failed: %v", err)
		}
		if lb != nil {
			t.Errorf("expected nil for absent lootbox, got %v", lb)
		}
	})

	t.Run("duplicate name violates the unique constraint", func(t *testing.T) {
		if _, err := repo.InsertLootbox(ctx, "Starter Case", "again"); err == nil {
			t.Error("expected unique violation")
		}
	})

	t.Run("edge lifecycle", func(t *testing.T) {
		lb, err := repo.InsertLootbox(ctx, "Edge Case", "membership edges")
		if err != nil {
			t.Fatalf("InsertLootbox failed: %v", err)
		}

		inserted, err := repo.InsertLootboxSkins(ctx, []domain.LootboxSkin{
			{LootboxID: lb.ID, SkinID: akID, DropRate: 0},
			{LootboxID: lb.ID, SkinID: awpID, DropRate: 0},
		})
		if err != nil {
			t.Fatalf("InsertLootboxSkins failed: %v", err)
		}
		if inserted != 2 {
			t.Fatalf("expected 2 inserted edges, got %d", inserted)
		}

		edges, err := repo.GetLootboxSkins(ctx, lb.ID)
		if err != nil {
			t.Fatalf("GetLootboxSkins failed: %v", err)
		}
		if len(edges) != 2 {
			t.Fatalf("expected 2 edges, got %d", len(edges))
		}
		for _, e := range edges {
			if e.DropRate != 0 {
				t.Errorf("expected zero drop rate on fresh edge, got %g", e.DropRate)
			}
		}

		affected, err := repo.UpdateDropRate(ctx, lb.ID, akID, 0.25)
		if err != nil {
			t.Fatalf("UpdateDropRate failed: %v", err)
		}
		if affected != 1 {
			t.Errorf("expected 1 affected row, got %d", affected)
		}

		affected, err = repo.UpdateLootboxPrice(ctx, lb.ID, 24.0)
		if err != nil {
			t.Fatalf("UpdateLootboxPrice failed: %v", err)
		}
		if affected != 1 {
			t.Errorf("expected 1 affected row, got %d", affected)
		}

		removed, err := repo.DeleteLootboxSkins(ctx, lb.ID)
		if err != nil {
			t.Fatalf("DeleteLootboxSkins failed: %v", err)
		}
		if removed != 2 {
			t.Errorf("expected 2 removed edges, got %d", removed)
		}

		removed, err = repo.DeleteLootbox(ctx, lb.ID)
		if err != nil {
			t.Fatalf("DeleteLootbox failed: %v", err)
		}
		if removed != 1 {
			t.Errorf("expected 1 removed lootbox, got %d", removed)
		}
	})

	t.Run("updates against absent rows affect zero rows", func(t *testing.T) {
		affected, err := repo.UpdateLootboxPrice(ctx, 999999, 1.0)
		if err != nil {
			t.Fatalf("UpdateLootboxPrice failed: %v", err)
		}
		if affected != 0 {
			t.Errorf("expected 0 affected rows, got %d", affected)
		}

		affected, err = repo.UpdateDropRate(ctx, 999999, akID, 0.5)
		if err != nil {
			t.Fatalf("UpdateDropRate failed: %v", err)
		}
		if affected != 0 {
			t.Errorf("expected 0 affected rows, got %d", affected)
		}
	})

	t.Run("edges may reference skins missing from the catalog", func(t *testing.T) {
		lb, err := repo.InsertLootbox(ctx, "Dangling Case", "tolerant join")
		if err != nil {
			t.Fatalf("InsertLootbox failed: %v", err)
		}

		inserted, err := repo.InsertLootboxSkins(ctx, []domain.LootboxSkin{
			{LootboxID: lb.ID, SkinID: "11111111-2222-3333-4444-555555555555", DropRate: 0},
		})
		if err != nil {
			t.Fatalf("InsertLootboxSkins failed: %v", err)
		}
		if inserted != 1 {
			t.Fatalf("expected the dangling edge to insert, got %d rows", inserted)
		}
	})

	t.Run("empty edge batch is a no-op", func(t *testing.T) {
		inserted, err := repo.InsertLootboxSkins(ctx, nil)
		if err != nil {
			t.Fatalf("InsertLootboxSkins failed: %v", err)
		}
		if inserted != 0 {
			t.Errorf("expected 0 inserted rows, got %d", inserted)
		}
	})
}
