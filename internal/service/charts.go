package service

import (
	"sort"

	"github.com/insightsphere/backend/internal/models"
)

// trendSeriesLimit caps the trend chart at the most recent entries
const trendSeriesLimit = 30

// buildTrendSeries reshapes the log collection into a chronological
// series for trend plotting: the most recent entries (by creation
// time), oldest first. An empty collection yields an empty series.
func buildTrendSeries(logs []models.MoodLog, limit int) []models.TrendPoint {
	sorted := make([]models.MoodLog, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	if len(sorted) > limit {
		sorted = sorted[len(sorted)-limit:]
	}

	points := make([]models.TrendPoint, 0, len(sorted))
	for _, l := range sorted {
		points = append(points, models.TrendPoint{
			Date:    l.Date,
			Mood:    l.Mood,
			Energy:  l.Energy,
			Anxiety: l.Anxiety,
			Sleep:   l.Sleep,
		})
	}
	return points
}

// buildBalance derives the 6-axis balance snapshot from the last-7-days
// figures. Activity day counts are rescaled from days-out-of-7 to the
// 0-10 scale the other axes use. A nil snapshot yields a zeroed balance.
func buildBalance(stats *models.StatsSnapshot) models.BalanceSnapshot {
	if stats == nil {
		return models.BalanceSnapshot{}
	}
	return models.BalanceSnapshot{
		Mood:            stats.AvgMood,
		Energy:          stats.AvgEnergy,
		Sleep:           stats.AvgSleep,
		Exercise:        round1(float64(stats.ExerciseDays) / 7 * 10),
		Social:          round1(float64(stats.SocialDays) / 7 * 10),
		InvertedAnxiety: round1(10 - stats.AvgAnxiety),
	}
}
