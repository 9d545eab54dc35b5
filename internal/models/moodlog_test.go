package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestMoodLogJSONRoundTrip(t *testing.T) {
	original := MoodLog{
		ID:      "550e8400-e29b-41d4-a716-446655440000",
		UserID:  "user-1",
		Date:    "2024-03-15",
		Mood:    7,
		Energy:  6,
		Anxiety: 3,
		Sleep:   8,
		Activities: Activities{
			Exercise:   true,
			Social:     false,
			Meditation: true,
		},
		Notes:     "long walk",
		CreatedAt: time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded MoodLog
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded != original {
		t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", decoded, original)
	}
}

func TestMoodLogJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(MoodLog{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	for _, field := range []string{
		`"id"`, `"user_id"`, `"date"`, `"mood"`, `"energy"`, `"anxiety"`,
		`"sleep"`, `"activities"`, `"notes"`, `"created_at"`,
	} {
		if !strings.Contains(string(data), field) {
			t.Errorf("Expected field %s in %s", field, data)
		}
	}
}

func TestCreateMoodLogRequestMissingVersusZero(t *testing.T) {
	// A score of 0 is valid input; only an absent field should decode
	// to a nil pointer
	var req CreateMoodLogRequest
	payload := `{"date":"2024-03-15","mood":0,"energy":5,"sleep":7}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if req.Mood == nil || *req.Mood != 0 {
		t.Errorf("Expected mood pointer to 0, got %v", req.Mood)
	}
	if req.Anxiety != nil {
		t.Errorf("Expected nil anxiety for an absent field, got %d", *req.Anxiety)
	}
	if req.Energy == nil || *req.Energy != 5 {
		t.Errorf("Expected energy 5, got %v", req.Energy)
	}
}

func TestInsightsResponseNullStats(t *testing.T) {
	data, err := json.Marshal(InsightsResponse{
		Patterns: []Pattern{},
		Trend:    []TrendPoint{},
	})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	body := string(data)
	if !strings.Contains(body, `"stats":null`) {
		t.Errorf("Expected null stats in %s", body)
	}
	// Empty, not null: clients iterate these without a nil check
	if !strings.Contains(body, `"patterns":[]`) {
		t.Errorf("Expected empty patterns array in %s", body)
	}
	if !strings.Contains(body, `"trend":[]`) {
		t.Errorf("Expected empty trend array in %s", body)
	}
}

func TestMoodLogListResponseShape(t *testing.T) {
	data, err := json.Marshal(MoodLogListResponse{MoodLogs: []MoodLog{}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"mood_logs":[]}` {
		t.Errorf("Unexpected list payload: %s", data)
	}
}
