package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/insightsphere/backend/internal/models"
	"github.com/insightsphere/backend/internal/repository"
	"github.com/insightsphere/backend/internal/service"
)

// stubInsightsService is a stub implementation of InsightsService
type stubInsightsService struct {
	insightsFn func(ctx context.Context, userID string) (*models.InsightsResponse, error)
	statsFn    func(ctx context.Context, userID string) (*models.StatsSnapshot, error)
	patternsFn func(ctx context.Context, userID string) ([]models.Pattern, error)
}

func (s *stubInsightsService) GetInsights(ctx context.Context, userID string) (*models.InsightsResponse, error) {
	return s.insightsFn(ctx, userID)
}

func (s *stubInsightsService) GetStats(ctx context.Context, userID string) (*models.StatsSnapshot, error) {
	return s.statsFn(ctx, userID)
}

func (s *stubInsightsService) GetPatterns(ctx context.Context, userID string) ([]models.Pattern, error) {
	return s.patternsFn(ctx, userID)
}

func newInsightsRouter(svc service.InsightsService, authenticated bool) *gin.Engine {
	h := NewInsightsHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if authenticated {
			c.Set("user_id", "user-1")
		}
		c.Set("request_id", "req-test")
		c.Next()
	})
	r.GET("/api/v1/insights", h.GetInsights)
	r.GET("/api/v1/insights/stats", h.GetStats)
	r.GET("/api/v1/insights/patterns", h.GetPatterns)
	return r
}

func TestGetInsightsHandler(t *testing.T) {
	svc := &stubInsightsService{
		insightsFn: func(ctx context.Context, userID string) (*models.InsightsResponse, error) {
			return &models.InsightsResponse{
				Stats:          &models.StatsSnapshot{AvgMood: 7.2, TotalEntries: 12},
				Patterns:       []models.Pattern{{Type: models.PatternTypeBooster, Title: "Exercise Boosts Your Mood"}},
				Trend:          []models.TrendPoint{{Date: "2024-03-15", Mood: 7}},
				DataSufficient: true,
				TotalEntries:   12,
			}, nil
		},
	}
	router := newInsightsRouter(svc, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp models.InsightsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Stats == nil || resp.Stats.AvgMood != 7.2 {
		t.Errorf("Unexpected stats: %+v", resp.Stats)
	}
	if len(resp.Patterns) != 1 || len(resp.Trend) != 1 {
		t.Errorf("Unexpected views: %+v", resp)
	}
}

func TestGetInsightsHandlerUnauthenticated(t *testing.T) {
	router := newInsightsRouter(&stubInsightsService{}, false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestGetInsightsHandlerStoreUnavailable(t *testing.T) {
	svc := &stubInsightsService{
		insightsFn: func(ctx context.Context, userID string) (*models.InsightsResponse, error) {
			return nil, fmt.Errorf("failed to load mood logs: %w", repository.ErrStoreUnavailable)
		},
	}
	router := newInsightsRouter(svc, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503, got %d", w.Code)
	}
	if retryAfter := w.Header().Get("Retry-After"); retryAfter != "30" {
		t.Errorf("Expected Retry-After 30, got %q", retryAfter)
	}
}

func TestGetStatsHandlerNoData(t *testing.T) {
	svc := &stubInsightsService{
		statsFn: func(ctx context.Context, userID string) (*models.StatsSnapshot, error) {
			return nil, nil
		},
	}
	router := newInsightsRouter(svc, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/insights/stats", nil))

	// No entries yet is the "start logging" state: 200 with a null body
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "null" {
		t.Errorf("Expected null body, got %s", body)
	}
}

func TestGetPatternsHandlerEmptyNeverNull(t *testing.T) {
	svc := &stubInsightsService{
		patternsFn: func(ctx context.Context, userID string) ([]models.Pattern, error) {
			return nil, nil
		},
	}
	router := newInsightsRouter(svc, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/insights/patterns", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Errorf("Expected empty array body, got %s", body)
	}
}
