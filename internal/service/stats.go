package service

import (
	"math"
	"sort"
	"time"

	"github.com/insightsphere/backend/internal/models"
)

// Recency windows. Entries are bucketed by age relative to the
// evaluation instant, judged by creation time rather than the
// user-chosen date field (a deliberate product decision).
const (
	last7Window  = 7 * 24 * time.Hour
	last30Window = 30 * 24 * time.Hour
)

// Wellness score weights. They sum to 1.0 over a 0-10 scale before the
// x10 rescale to 0-100. Anxiety contributes inverted (lower anxiety
// raises the score); meditation does not contribute at all.
const (
	weightMood     = 0.3
	weightEnergy   = 0.2
	weightCalm     = 0.2
	weightSleep    = 0.15
	weightExercise = 0.1
	weightSocial   = 0.05
)

const dateLayout = "2006-01-02"

// calculateStats reduces the full log collection into a StatsSnapshot.
// An empty collection yields nil: that is the expected "no data yet"
// state, not an error. Empty subsets average to 0 so every returned
// field stays finite regardless of how sparse the data is.
func calculateStats(logs []models.MoodLog, now time.Time) *models.StatsSnapshot {
	if len(logs) == 0 {
		return nil
	}

	var last7, prevWeek []models.MoodLog
	last30Count := 0
	for _, l := range logs {
		age := now.Sub(l.CreatedAt)
		if age < last7Window {
			last7 = append(last7, l)
		} else if age < 2*last7Window {
			prevWeek = append(prevWeek, l)
		}
		if age < last30Window {
			last30Count++
		}
	}

	avgMood := meanScore(last7, func(l models.MoodLog) int { return l.Mood })
	avgEnergy := meanScore(last7, func(l models.MoodLog) int { return l.Energy })
	avgAnxiety := meanScore(last7, func(l models.MoodLog) int { return l.Anxiety })
	avgSleep := meanScore(last7, func(l models.MoodLog) int { return l.Sleep })
	prevMood := meanScore(prevWeek, func(l models.MoodLog) int { return l.Mood })

	exerciseDays := 0
	socialDays := 0
	meditationDays := 0
	for _, l := range last7 {
		if l.Activities.Exercise {
			exerciseDays++
		}
		if l.Activities.Social {
			socialDays++
		}
		if l.Activities.Meditation {
			meditationDays++
		}
	}

	return &models.StatsSnapshot{
		AvgMood:        round1(avgMood),
		AvgEnergy:      round1(avgEnergy),
		AvgAnxiety:     round1(avgAnxiety),
		AvgSleep:       round1(avgSleep),
		ExerciseDays:   exerciseDays,
		SocialDays:     socialDays,
		MeditationDays: meditationDays,
		WellnessScore:  wellnessScore(avgMood, avgEnergy, avgAnxiety, avgSleep, exerciseDays, socialDays),
		StreakDays:     calculateStreak(logs, now),
		MoodChange:     round1(avgMood - prevMood),
		TotalEntries:   len(logs),
		Last7Days:      len(last7),
		Last30Days:     last30Count,
	}
}

// wellnessScore computes the 0-100 composite score from the unrounded
// last-7-days figures. Activity counts are rescaled from days-out-of-7
// to the 0-10 scale the other inputs use. Counts are per entry, so
// same-day duplicates can push an activity term past its nominal
// ceiling; the final clamp keeps the score in range regardless.
func wellnessScore(avgMood, avgEnergy, avgAnxiety, avgSleep float64, exerciseDays, socialDays int) int {
	raw := avgMood*weightMood +
		avgEnergy*weightEnergy +
		(10-avgAnxiety)*weightCalm +
		avgSleep*weightSleep +
		(float64(exerciseDays)/7*10)*weightExercise +
		(float64(socialDays)/7*10)*weightSocial
	score := int(math.Round(raw * 10))
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// calculateStreak counts consecutive calendar days with at least one
// entry, walking backward from today. Multiple entries on the same
// calendar day are collapsed to a single day of coverage before the
// walk so they cannot inflate the count.
func calculateStreak(logs []models.MoodLog, now time.Time) int {
	seen := make(map[string]bool, len(logs))
	dates := make([]string, 0, len(logs))
	for _, l := range logs {
		d := l.CreatedAt.Format(dateLayout)
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	streak := 0
	for i, d := range dates {
		if d != now.AddDate(0, 0, -i).Format(dateLayout) {
			break
		}
		streak++
	}
	return streak
}

// meanScore returns the arithmetic mean of one metric over the given
// entries, or 0 for an empty slice (never NaN).
func meanScore(logs []models.MoodLog, metric func(models.MoodLog) int) float64 {
	if len(logs) == 0 {
		return 0
	}
	sum := 0
	for _, l := range logs {
		sum += metric(l)
	}
	return float64(sum) / float64(len(logs))
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
