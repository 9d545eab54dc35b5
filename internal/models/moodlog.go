package models

import "time"

// User represents an authenticated user in the system
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Activities captures the daily activity checkboxes on a mood log
type Activities struct {
	Exercise   bool `json:"exercise"`
	Social     bool `json:"social"`
	Meditation bool `json:"meditation"`
}

// MoodLog represents one daily self-report.
// Date is the calendar day the entry belongs to (YYYY-MM-DD, as chosen
// by the user); CreatedAt is the instant the entry was recorded and is
// what recency windows and streaks are computed from.
type MoodLog struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Date       string     `json:"date"`
	Mood       int        `json:"mood"`
	Energy     int        `json:"energy"`
	Anxiety    int        `json:"anxiety"`
	Sleep      int        `json:"sleep"`
	Activities Activities `json:"activities"`
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CreateMoodLogRequest represents the request to create a mood log.
// Scores are pointers so that a missing field can be distinguished from
// a legitimate zero during validation.
type CreateMoodLogRequest struct {
	Date       string     `json:"date"`
	Mood       *int       `json:"mood"`
	Energy     *int       `json:"energy"`
	Anxiety    *int       `json:"anxiety"`
	Sleep      *int       `json:"sleep"`
	Activities Activities `json:"activities"`
	Notes      string     `json:"notes"`
}

// MoodLogListResponse is the payload for GET /api/v1/mood-logs
type MoodLogListResponse struct {
	MoodLogs []MoodLog `json:"mood_logs"`
}
