package service

import (
	"context"
	"fmt"
	"time"

	"github.com/insightsphere/backend/internal/models"
	"github.com/insightsphere/backend/internal/repository"
)

// insightsLogLimit bounds how many recent entries feed the analytics
const insightsLogLimit = 100

type insightsService struct {
	moodLogRepo repository.MoodLogRepository
	patternCfg  PatternConfig
	trendLimit  int
	now         func() time.Time
}

// NewInsightsService creates a new insights service. The pattern
// configuration is fixed at construction; derived views are recomputed
// in full on every call, never cached. A non-positive trendLimit falls
// back to the default series length.
func NewInsightsService(moodLogRepo repository.MoodLogRepository, patternCfg PatternConfig, trendLimit int) InsightsService {
	if trendLimit <= 0 {
		trendLimit = trendSeriesLimit
	}
	return &insightsService{
		moodLogRepo: moodLogRepo,
		patternCfg:  patternCfg,
		trendLimit:  trendLimit,
		now:         time.Now,
	}
}

func (s *insightsService) GetInsights(ctx context.Context, userID string) (*models.InsightsResponse, error) {
	logs, err := s.loadLogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	stats := calculateStats(logs, now)

	return &models.InsightsResponse{
		Stats:          stats,
		Patterns:       detectPatterns(logs, s.patternCfg),
		Trend:          buildTrendSeries(logs, s.trendLimit),
		Balance:        buildBalance(stats),
		DataSufficient: len(logs) >= s.patternCfg.MinEntries,
		TotalEntries:   len(logs),
		ComputedAt:     now,
	}, nil
}

func (s *insightsService) GetStats(ctx context.Context, userID string) (*models.StatsSnapshot, error) {
	logs, err := s.loadLogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	return calculateStats(logs, s.now()), nil
}

func (s *insightsService) GetPatterns(ctx context.Context, userID string) ([]models.Pattern, error) {
	logs, err := s.loadLogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	return detectPatterns(logs, s.patternCfg), nil
}

func (s *insightsService) loadLogs(ctx context.Context, userID string) ([]models.MoodLog, error) {
	logs, err := s.moodLogRepo.GetByUserID(ctx, userID, insightsLogLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood logs: %w", err)
	}
	return logs, nil
}
