package service

import (
	"context"
	"errors"

	"github.com/insightsphere/backend/internal/models"
)

// ErrMoodLogNotFound indicates the mood log does not exist or is not
// owned by the requesting user
var ErrMoodLogNotFound = errors.New("mood log not found")

// MoodLogService defines the interface for mood log business logic
type MoodLogService interface {
	CreateMoodLog(ctx context.Context, userID string, req *models.CreateMoodLogRequest) (*models.MoodLog, error)
	GetUserMoodLogs(ctx context.Context, userID string, limit, offset int) ([]models.MoodLog, error)
	DeleteMoodLog(ctx context.Context, userID, logID string) error
}

// InsightsService defines the interface for the derived analytics over
// a user's mood log collection
type InsightsService interface {
	GetInsights(ctx context.Context, userID string) (*models.InsightsResponse, error)
	GetStats(ctx context.Context, userID string) (*models.StatsSnapshot, error)
	GetPatterns(ctx context.Context, userID string) ([]models.Pattern, error)
}
