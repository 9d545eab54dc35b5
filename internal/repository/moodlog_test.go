package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/insightsphere/backend/internal/models"
	"github.com/insightsphere/backend/pkg/supabase"
)

// newTestRepository points a repository at a stub PostgREST server
func newTestRepository(t *testing.T, handler http.HandlerFunc) MoodLogRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := supabase.NewClient(srv.URL, "test-key")
	return NewMoodLogRepository(client)
}

func TestGetByUserIDQueryShape(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string

	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.MoodLog{{ID: "a", UserID: "user-1", Mood: 7}})
	})

	logs, err := repo.GetByUserID(context.Background(), "user-1", 100, 20)
	if err != nil {
		t.Fatalf("GetByUserID failed: %v", err)
	}
	if len(logs) != 1 || logs[0].Mood != 7 {
		t.Errorf("Unexpected logs: %+v", logs)
	}

	if gotPath != "/rest/v1/mood_logs" {
		t.Errorf("Unexpected path: %s", gotPath)
	}
	if gotQuery["user_id"] != "eq.user-1" {
		t.Errorf("Expected user_id=eq.user-1, got %q", gotQuery["user_id"])
	}
	if gotQuery["order"] != "created_at.desc" {
		t.Errorf("Expected newest-first ordering, got %q", gotQuery["order"])
	}
	if gotQuery["limit"] != "100" || gotQuery["offset"] != "20" {
		t.Errorf("Expected limit=100 offset=20, got limit=%q offset=%q", gotQuery["limit"], gotQuery["offset"])
	}
}

func TestCreateSendsRepresentationPrefer(t *testing.T) {
	var gotPrefer string
	var gotBody map[string]interface{}

	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		gotPrefer = r.Header.Get("Prefer")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.MoodLog{{ID: "new-id", UserID: "user-1", Mood: 7}})
	})

	created, err := repo.Create(context.Background(), &models.MoodLog{
		UserID: "user-1",
		Date:   "2024-03-15",
		Mood:   7,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != "new-id" {
		t.Errorf("Expected the stored representation back, got %+v", created)
	}

	if gotPrefer != "return=representation" {
		t.Errorf("Expected Prefer return=representation, got %q", gotPrefer)
	}
	if gotBody["user_id"] != "user-1" || gotBody["date"] != "2024-03-15" {
		t.Errorf("Unexpected insert body: %v", gotBody)
	}
}

func TestGetByIDAbsentReturnsNil(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	})

	log, err := repo.GetByID(context.Background(), "missing-id")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if log != nil {
		t.Errorf("Expected nil for an absent row, got %+v", log)
	}
}

func TestStoreErrorsWrapSentinel(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"connection pool exhausted"}`, http.StatusServiceUnavailable)
	})

	if _, err := repo.GetByUserID(context.Background(), "user-1", 10, 0); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("GetByUserID: expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := repo.GetByID(context.Background(), "some-id"); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("GetByID: expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := repo.Create(context.Background(), &models.MoodLog{}); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Create: expected ErrStoreUnavailable, got %v", err)
	}
	if err := repo.Delete(context.Background(), "some-id"); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Delete: expected ErrStoreUnavailable, got %v", err)
	}
}
