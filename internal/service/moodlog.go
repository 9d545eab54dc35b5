package service

import (
	"context"
	"fmt"
	"time"

	"github.com/insightsphere/backend/internal/models"
	"github.com/insightsphere/backend/internal/repository"
)

type moodLogService struct {
	moodLogRepo repository.MoodLogRepository
	now         func() time.Time
}

// NewMoodLogService creates a new mood log service
func NewMoodLogService(moodLogRepo repository.MoodLogRepository) MoodLogService {
	return &moodLogService{
		moodLogRepo: moodLogRepo,
		now:         time.Now,
	}
}

func (s *moodLogService) CreateMoodLog(ctx context.Context, userID string, req *models.CreateMoodLogRequest) (*models.MoodLog, error) {
	log := &models.MoodLog{
		UserID:     userID,
		Date:       req.Date,
		Mood:       *req.Mood,
		Energy:     *req.Energy,
		Anxiety:    *req.Anxiety,
		Sleep:      *req.Sleep,
		Activities: req.Activities,
		Notes:      req.Notes,
		CreatedAt:  s.now().UTC(),
	}

	created, err := s.moodLogRepo.Create(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood log: %w", err)
	}

	return created, nil
}

func (s *moodLogService) GetUserMoodLogs(ctx context.Context, userID string, limit, offset int) ([]models.MoodLog, error) {
	logs, err := s.moodLogRepo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood logs: %w", err)
	}

	return logs, nil
}

func (s *moodLogService) DeleteMoodLog(ctx context.Context, userID, logID string) error {
	log, err := s.moodLogRepo.GetByID(ctx, logID)
	if err != nil {
		return fmt.Errorf("failed to get mood log: %w", err)
	}

	// Ownership check: a log belonging to another user is reported as
	// not found, never as forbidden.
	if log == nil || log.UserID != userID {
		return ErrMoodLogNotFound
	}

	if err := s.moodLogRepo.Delete(ctx, logID); err != nil {
		return fmt.Errorf("failed to delete mood log: %w", err)
	}

	return nil
}
