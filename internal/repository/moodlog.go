package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/insightsphere/backend/internal/models"
	"github.com/insightsphere/backend/pkg/supabase"
)

const moodLogsTable = "mood_logs"

type moodLogRepository struct {
	client *supabase.Client
}

// NewMoodLogRepository creates a new mood log repository
func NewMoodLogRepository(client *supabase.Client) MoodLogRepository {
	return &moodLogRepository{client: client}
}

func (r *moodLogRepository) Create(ctx context.Context, log *models.MoodLog) (*models.MoodLog, error) {
	data := map[string]interface{}{
		"user_id":    log.UserID,
		"date":       log.Date,
		"mood":       log.Mood,
		"energy":     log.Energy,
		"anxiety":    log.Anxiety,
		"sleep":      log.Sleep,
		"activities": log.Activities,
		"notes":      log.Notes,
		"created_at": log.CreatedAt.Format(time.RFC3339),
	}

	body, err := r.client.Insert(moodLogsTable, data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create mood log: %v", ErrStoreUnavailable, err)
	}

	var logs []models.MoodLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(logs) == 0 {
		return nil, fmt.Errorf("no mood log returned")
	}

	return &logs[0], nil
}

func (r *moodLogRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.MoodLog, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
		"order":   "created_at.desc",
		"limit":   strconv.Itoa(limit),
		"offset":  strconv.Itoa(offset),
	}

	body, err := r.client.Query(moodLogsTable, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get mood logs: %v", ErrStoreUnavailable, err)
	}

	var logs []models.MoodLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return logs, nil
}

func (r *moodLogRepository) GetByID(ctx context.Context, id string) (*models.MoodLog, error) {
	query := map[string]string{
		"id":     fmt.Sprintf("eq.%s", id),
		"select": "*",
	}

	body, err := r.client.Query(moodLogsTable, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get mood log: %v", ErrStoreUnavailable, err)
	}

	var logs []models.MoodLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(logs) == 0 {
		return nil, nil
	}

	return &logs[0], nil
}

func (r *moodLogRepository) Delete(ctx context.Context, id string) error {
	query := map[string]string{
		"id": fmt.Sprintf("eq.%s", id),
	}

	if err := r.client.DeleteWhere(moodLogsTable, query); err != nil {
		return fmt.Errorf("%w: failed to delete mood log: %v", ErrStoreUnavailable, err)
	}

	return nil
}
