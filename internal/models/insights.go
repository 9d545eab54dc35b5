package models

import "time"

// PatternType is the closed set of pattern kinds the detector can emit
type PatternType string

const (
	PatternTypeBooster PatternType = "booster"
	PatternTypeTrigger PatternType = "trigger"
	PatternTypeTime    PatternType = "time"
	PatternTypeDay     PatternType = "day"
)

// Metric names a pattern can relate to
const (
	MetricMood    = "mood"
	MetricAnxiety = "anxiety"
)

// Pattern represents one detected behavioral correlation
type Pattern struct {
	Type        PatternType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Confidence  int         `json:"confidence"`
	Metric      string      `json:"metric"`
	Icon        string      `json:"icon"`
}

// StatsSnapshot holds the derived statistics for the insights view.
// Averages cover the last 7 days and are rounded to one decimal place;
// activity counts are days-with-activity within the same window.
type StatsSnapshot struct {
	AvgMood        float64 `json:"avg_mood"`
	AvgEnergy      float64 `json:"avg_energy"`
	AvgAnxiety     float64 `json:"avg_anxiety"`
	AvgSleep       float64 `json:"avg_sleep"`
	ExerciseDays   int     `json:"exercise_days"`
	SocialDays     int     `json:"social_days"`
	MeditationDays int     `json:"meditation_days"`
	WellnessScore  int     `json:"wellness_score"`
	StreakDays     int     `json:"streak_days"`
	MoodChange     float64 `json:"mood_change"`
	TotalEntries   int     `json:"total_entries"`
	Last7Days      int     `json:"last_7_days"`
	Last30Days     int     `json:"last_30_days"`
}

// TrendPoint is one entry in the chronological trend series
type TrendPoint struct {
	Date    string `json:"date"`
	Mood    int    `json:"mood"`
	Energy  int    `json:"energy"`
	Anxiety int    `json:"anxiety"`
	Sleep   int    `json:"sleep"`
}

// BalanceSnapshot is the 6-axis wellness balance, each axis scaled to [0,10]
type BalanceSnapshot struct {
	Mood            float64 `json:"mood"`
	Energy          float64 `json:"energy"`
	Sleep           float64 `json:"sleep"`
	Exercise        float64 `json:"exercise"`
	Social          float64 `json:"social"`
	InvertedAnxiety float64 `json:"inverted_anxiety"`
}

// InsightsResponse is the combined API response for the insights view.
// Stats is null when the user has no logs yet; patterns stay empty until
// enough entries exist for the detector to run.
type InsightsResponse struct {
	Stats          *StatsSnapshot  `json:"stats"`
	Patterns       []Pattern       `json:"patterns"`
	Trend          []TrendPoint    `json:"trend"`
	Balance        BalanceSnapshot `json:"balance"`
	DataSufficient bool            `json:"data_sufficient"`
	TotalEntries   int             `json:"total_entries"`
	ComputedAt     time.Time       `json:"computed_at"`
}
