package service

import (
	"fmt"
	"math"
	"time"

	"github.com/insightsphere/backend/internal/models"
)

// PatternConfig holds the tuning knobs for pattern detection. The
// thresholds are heuristic, not statistically grounded, so they live in
// one table instead of being scattered through the detector logic.
type PatternConfig struct {
	MinEntries       int // total entries required before any detection runs
	MinActivityGroup int // activity-split groups must exceed this size
	MinSleepGroup    int // sleep comparison groups must exceed this size
	MinWeekdays      int // distinct weekdays required for the day-of-week check

	GoodSleepMin int // entries with sleep >= this form the well-rested group
	PoorSleepMax int // entries with sleep < this form the poorly-rested group

	ExerciseMoodDiff    float64 // mean mood lift required on exercise days
	SocialMoodDiff      float64 // mean mood lift required on social days
	SleepMoodDiff       float64 // mood gap required between sleep groups
	WeekdayMoodSpread   float64 // best-minus-worst weekday gap required
	MeditationCalmDiff  float64 // anxiety drop required on meditation days

	ExerciseConfidenceScale float64
	ExerciseConfidenceCap   int
	SocialConfidenceScale   float64
	SocialConfidenceCap     int
	SleepConfidenceScale    float64
	SleepConfidenceCap      int
	WeekdayConfidence       int
	MeditationConfidence    int
}

// DefaultPatternConfig returns the default detection thresholds
func DefaultPatternConfig() PatternConfig {
	return PatternConfig{
		MinEntries:       7,
		MinActivityGroup: 3,
		MinSleepGroup:    2,
		MinWeekdays:      5,

		GoodSleepMin: 7,
		PoorSleepMax: 5,

		ExerciseMoodDiff:   1.0,
		SocialMoodDiff:     0.8,
		SleepMoodDiff:      1.0,
		WeekdayMoodSpread:  1.5,
		MeditationCalmDiff: 1.0,

		ExerciseConfidenceScale: 15,
		ExerciseConfidenceCap:   95,
		SocialConfidenceScale:   12,
		SocialConfidenceCap:     90,
		SleepConfidenceScale:    15,
		SleepConfidenceCap:      95,
		WeekdayConfidence:       75,
		MeditationConfidence:    85,
	}
}

// detectPatterns runs the fixed battery of correlation heuristics over
// the full log collection. Output order follows evaluation order; there
// is no re-sorting by confidence. Fewer than MinEntries entries yields
// an empty list: patterns are "not yet available", not an error.
func detectPatterns(logs []models.MoodLog, cfg PatternConfig) []models.Pattern {
	patterns := make([]models.Pattern, 0)
	if len(logs) < cfg.MinEntries {
		return patterns
	}

	if p := detectExercisePattern(logs, cfg); p != nil {
		patterns = append(patterns, *p)
	}
	if p := detectSocialPattern(logs, cfg); p != nil {
		patterns = append(patterns, *p)
	}
	if p := detectSleepPattern(logs, cfg); p != nil {
		patterns = append(patterns, *p)
	}
	if p := detectWeekdayPattern(logs, cfg); p != nil {
		patterns = append(patterns, *p)
	}
	if p := detectMeditationPattern(logs, cfg); p != nil {
		patterns = append(patterns, *p)
	}

	return patterns
}

func detectExercisePattern(logs []models.MoodLog, cfg PatternConfig) *models.Pattern {
	withAvg, withCount := meanMoodWhere(logs, func(l models.MoodLog) bool { return l.Activities.Exercise })
	withoutAvg, withoutCount := meanMoodWhere(logs, func(l models.MoodLog) bool { return !l.Activities.Exercise })

	if withCount <= cfg.MinActivityGroup || withoutCount <= cfg.MinActivityGroup {
		return nil
	}

	diff := withAvg - withoutAvg
	if diff <= cfg.ExerciseMoodDiff {
		return nil
	}

	return &models.Pattern{
		Type:        models.PatternTypeBooster,
		Title:       "Exercise Boosts Your Mood",
		Description: fmt.Sprintf("Your mood averages %.1f points higher on days you exercise.", diff),
		Confidence:  scaledConfidence(diff, cfg.ExerciseConfidenceScale, cfg.ExerciseConfidenceCap),
		Metric:      models.MetricMood,
		Icon:        "activity",
	}
}

func detectSocialPattern(logs []models.MoodLog, cfg PatternConfig) *models.Pattern {
	withAvg, withCount := meanMoodWhere(logs, func(l models.MoodLog) bool { return l.Activities.Social })
	withoutAvg, withoutCount := meanMoodWhere(logs, func(l models.MoodLog) bool { return !l.Activities.Social })

	if withCount <= cfg.MinActivityGroup || withoutCount <= cfg.MinActivityGroup {
		return nil
	}

	diff := withAvg - withoutAvg
	if diff <= cfg.SocialMoodDiff {
		return nil
	}

	return &models.Pattern{
		Type:        models.PatternTypeBooster,
		Title:       "Social Time Lifts You Up",
		Description: fmt.Sprintf("Your mood averages %.1f points higher on days with social contact.", diff),
		Confidence:  scaledConfidence(diff, cfg.SocialConfidenceScale, cfg.SocialConfidenceCap),
		Metric:      models.MetricMood,
		Icon:        "users",
	}
}

// detectSleepPattern compares well-rested against poorly-rested days.
// The two groups are disjoint but not a full partition: entries with
// sleep in the middle band participate in neither.
func detectSleepPattern(logs []models.MoodLog, cfg PatternConfig) *models.Pattern {
	goodAvg, goodCount := meanMoodWhere(logs, func(l models.MoodLog) bool { return l.Sleep >= cfg.GoodSleepMin })
	poorAvg, poorCount := meanMoodWhere(logs, func(l models.MoodLog) bool { return l.Sleep < cfg.PoorSleepMax })

	if goodCount <= cfg.MinSleepGroup || poorCount <= cfg.MinSleepGroup {
		return nil
	}

	diff := goodAvg - poorAvg
	if diff <= cfg.SleepMoodDiff {
		return nil
	}

	return &models.Pattern{
		Type:        models.PatternTypeTrigger,
		Title:       "Poor Sleep Drags Your Mood Down",
		Description: fmt.Sprintf("Your mood runs %.1f points lower on poorly-rested days.", diff),
		Confidence:  scaledConfidence(diff, cfg.SleepConfidenceScale, cfg.SleepConfidenceCap),
		Metric:      models.MetricMood,
		Icon:        "moon",
	}
}

// detectWeekdayPattern groups entries by the weekday they were recorded
// on and flags the worst day when the best-to-worst gap is large enough.
func detectWeekdayPattern(logs []models.MoodLog, cfg PatternConfig) *models.Pattern {
	sums := make(map[time.Weekday]int)
	counts := make(map[time.Weekday]int)
	for _, l := range logs {
		wd := l.CreatedAt.Weekday()
		sums[wd] += l.Mood
		counts[wd]++
	}

	if len(counts) < cfg.MinWeekdays {
		return nil
	}

	// Fixed Sunday-first iteration keeps tie-breaking deterministic.
	var bestDay, worstDay time.Weekday
	bestAvg := math.Inf(-1)
	worstAvg := math.Inf(1)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		n, ok := counts[wd]
		if !ok {
			continue
		}
		avg := float64(sums[wd]) / float64(n)
		if avg > bestAvg {
			bestAvg = avg
			bestDay = wd
		}
		if avg < worstAvg {
			worstAvg = avg
			worstDay = wd
		}
	}

	_ = bestDay

	spread := bestAvg - worstAvg
	if spread <= cfg.WeekdayMoodSpread {
		return nil
	}

	return &models.Pattern{
		Type:        models.PatternTypeDay,
		Title:       fmt.Sprintf("%ss Are Tough for You", worstDay),
		Description: fmt.Sprintf("Your mood on %ss averages %.1f points below your best day.", worstDay, spread),
		Confidence:  cfg.WeekdayConfidence,
		Metric:      models.MetricMood,
		Icon:        "calendar",
	}
}

// detectMeditationPattern compares anxiety on meditation days against
// the overall population mean, not a disjoint non-meditation group.
func detectMeditationPattern(logs []models.MoodLog, cfg PatternConfig) *models.Pattern {
	medSum, medCount := 0, 0
	overallSum := 0
	for _, l := range logs {
		overallSum += l.Anxiety
		if l.Activities.Meditation {
			medSum += l.Anxiety
			medCount++
		}
	}

	if medCount <= cfg.MinActivityGroup {
		return nil
	}

	overallAvg := float64(overallSum) / float64(len(logs))
	medAvg := float64(medSum) / float64(medCount)

	diff := overallAvg - medAvg
	if diff <= cfg.MeditationCalmDiff {
		return nil
	}

	return &models.Pattern{
		Type:        models.PatternTypeBooster,
		Title:       "Meditation Calms Your Mind",
		Description: fmt.Sprintf("Your anxiety averages %.1f points lower on days you meditate.", diff),
		Confidence:  cfg.MeditationConfidence,
		Metric:      models.MetricAnxiety,
		Icon:        "wind",
	}
}

// meanMoodWhere returns the mean mood over entries matching the
// predicate, along with the group size. An empty group averages to 0.
func meanMoodWhere(logs []models.MoodLog, match func(models.MoodLog) bool) (float64, int) {
	sum, count := 0, 0
	for _, l := range logs {
		if match(l) {
			sum += l.Mood
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}
	return float64(sum) / float64(count), count
}

// scaledConfidence converts an effect size into a clamped confidence
// percentage
func scaledConfidence(diff, scale float64, limit int) int {
	conf := int(math.Round(diff * scale))
	if conf > limit {
		return limit
	}
	return conf
}
