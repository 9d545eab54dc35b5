package repository

import (
	"context"
	"errors"

	"github.com/insightsphere/backend/internal/models"
)

// ErrStoreUnavailable marks any failure to reach the backing store.
// Callers treat it as one retryable failure kind rather than a typed
// hierarchy; the analytics core is never invoked with partial data.
var ErrStoreUnavailable = errors.New("mood log store unavailable")

// MoodLogRepository defines the interface for mood log data access
type MoodLogRepository interface {
	Create(ctx context.Context, log *models.MoodLog) (*models.MoodLog, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.MoodLog, error)
	GetByID(ctx context.Context, id string) (*models.MoodLog, error)
	Delete(ctx context.Context, id string) error
}
