package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skinforge/lootbox/internal/domain"
	"github.com/skinforge/lootbox/internal/lootbox"
	"github.com/skinforge/lootbox/internal/testing/leaktest"
)

const testAPIKey = "test-api-key"

type stubPool struct {
	pingErr error
}

func (p *stubPool) Ping(ctx context.Context) error { return p.pingErr }
func (p *stubPool) Close()                         {}

type stubLootboxService struct{}

func (s *stubLootboxService) Create(ctx context.Context, name, description string) (*domain.Lootbox, error) {
	return &domain.Lootbox{ID: 1, Name: name, Description: description}, nil
}

func (s *stubLootboxService) GetAll(ctx context.Context, limit, offset int) ([]domain.Lootbox, error) {
	return []domain.Lootbox{}, nil
}

func (s *stubLootboxService) GetContents(ctx context.Context, name string) ([]domain.Skin, error) {
	return []domain.Skin{}, nil
}

func (s *stubLootboxService) AddSkins(ctx context.Context, name string, skinNames []string) (*lootbox.AddSkinsResult, error) {
	return &lootbox.AddSkinsResult{Contents: []domain.Skin{}}, nil
}

func (s *stubLootboxService) Remove(ctx context.Context, name string) error { return nil }

func (s *stubLootboxService) SetProbabilities(ctx context.Context, name string, probabilities map[string]float64) (*domain.Lootbox, error) {
	return &domain.Lootbox{ID: 1, Name: name}, nil
}

type stubSkinService struct{}

func (s *stubSkinService) GetAll(ctx context.Context, limit, offset int) ([]domain.Skin, error) {
	return []domain.Skin{}, nil
}

func (s *stubSkinService) GetAvailable(ctx context.Context) ([]domain.Skin, error) {
	return []domain.Skin{}, nil
}

func (s *stubSkinService) GetFiltered(ctx context.Context, filter domain.SkinFilter) ([]domain.Skin, error) {
	return []domain.Skin{}, nil
}

func (s *stubSkinService) GetByID(ctx context.Context, id string) (*domain.Skin, error) {
	return &domain.Skin{ID: id}, nil
}

func (s *stubSkinService) GetByName(ctx context.Context, name string) (*domain.Skin, error) {
	return &domain.Skin{Name: name}, nil
}

func newTestServer(pool *stubPool) *Server {
	return NewServer(0, testAPIKey, pool, &stubLootboxService{}, &stubSkinService{})
}

func TestRouting(t *testing.T) {
	handler := newTestServer(&stubPool{}).Handler()

	tests := []struct {
		name       string
		method     string
		path       string
		withKey    bool
		wantStatus int
	}{
		{"healthz is open", http.MethodGet, "/healthz", false, http.StatusOK},
		{"readyz is open", http.MethodGet, "/readyz", false, http.StatusOK},
		{"metrics is open", http.MethodGet, "/metrics", false, http.StatusOK},
		{"api requires key", http.MethodGet, "/api/v1/lootboxes", false, http.StatusUnauthorized},
		{"list lootboxes", http.MethodGet, "/api/v1/lootboxes", true, http.StatusOK},
		{"lootbox contents", http.MethodGet, "/api/v1/lootboxes/starter/contents", true, http.StatusOK},
		{"remove lootbox", http.MethodDelete, "/api/v1/lootboxes/starter", true, http.StatusNoContent},
		{"list skins", http.MethodGet, "/api/v1/skins", true, http.StatusOK},
		{"available skins", http.MethodGet, "/api/v1/skins/available", true, http.StatusOK},
		{"filtered skins", http.MethodGet, "/api/v1/skins/filtered", true, http.StatusOK},
		{"skin by name", http.MethodGet, "/api/v1/skins/by-name?name=x", true, http.StatusOK},
		{"unknown route", http.MethodGet, "/api/v1/nope", true, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.withKey {
				req.Header.Set(HeaderAPIKey, testAPIKey)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSecurityHeadersApplied(t *testing.T) {
	handler := newTestServer(&stubPool{}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
}

func TestReadyzReportsPoolFailure(t *testing.T) {
	handler := newTestServer(&stubPool{pingErr: context.DeadlineExceeded}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStartStop(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	srv := newTestServer(&stubPool{})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Give the listener a moment to come up before shutting down
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop in time")
	}

	checker.Check(2)
}
