package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/insightsphere/backend/internal/apierror"
	"github.com/insightsphere/backend/internal/models"
	"github.com/insightsphere/backend/internal/service"
)

const (
	defaultLogLimit = 100
	maxLogLimit     = 500
	dateLayout      = "2006-01-02"
)

type MoodLogHandler struct {
	moodLogService service.MoodLogService
}

// NewMoodLogHandler creates a new mood log handler
func NewMoodLogHandler(moodLogService service.MoodLogService) *MoodLogHandler {
	return &MoodLogHandler{
		moodLogService: moodLogService,
	}
}

// CreateMoodLog handles POST /api/v1/mood-logs
func (h *MoodLogHandler) CreateMoodLog(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	var req models.CreateMoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// JSON syntax error (not field-level)
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid JSON format"))
		return
	}

	if fieldErrors := validateCreateMoodLog(&req); len(fieldErrors) > 0 {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors))
		return
	}

	created, err := h.moodLogService.CreateMoodLog(c.Request.Context(), userID.(string), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// validateCreateMoodLog aggregates all field-level problems so the
// client gets one complete validation response
func validateCreateMoodLog(req *models.CreateMoodLogRequest) []apierror.FieldError {
	var fieldErrors []apierror.FieldError

	if req.Date == "" {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field:   "date",
			Message: "is required",
			Code:    "required",
		})
	} else if _, err := time.Parse(dateLayout, req.Date); err != nil {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field:   "date",
			Message: "must be a date in YYYY-MM-DD format",
			Code:    "invalid_format",
		})
	}

	scores := []struct {
		name  string
		value *int
	}{
		{"mood", req.Mood},
		{"energy", req.Energy},
		{"anxiety", req.Anxiety},
		{"sleep", req.Sleep},
	}
	for _, s := range scores {
		if s.value == nil {
			fieldErrors = append(fieldErrors, apierror.FieldError{
				Field:   s.name,
				Message: "is required",
				Code:    "required",
			})
			continue
		}
		if *s.value < 0 || *s.value > 10 {
			fieldErrors = append(fieldErrors, apierror.FieldError{
				Field:   s.name,
				Message: "must be between 0 and 10",
				Code:    "out_of_range",
			})
		}
	}

	return fieldErrors
}

// GetMoodLogs handles GET /api/v1/mood-logs
func (h *MoodLogHandler) GetMoodLogs(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	limit, err := parseBoundedQueryInt(c, "limit", defaultLogLimit, maxLogLimit)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid limit parameter"))
		return
	}
	skip, err := parseBoundedQueryInt(c, "skip", 0, 1<<30)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid skip parameter"))
		return
	}

	logs, err := h.moodLogService.GetUserMoodLogs(c.Request.Context(), userID.(string), limit, skip)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if logs == nil {
		logs = []models.MoodLog{}
	}

	c.JSON(http.StatusOK, models.MoodLogListResponse{MoodLogs: logs})
}

// DeleteMoodLog handles DELETE /api/v1/mood-logs/:id
func (h *MoodLogHandler) DeleteMoodLog(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	logID := c.Param("id")
	if _, err := uuid.Parse(logID); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInvalidUUIDError(requestID, "id", logID))
		return
	}

	if err := h.moodLogService.DeleteMoodLog(c.Request.Context(), userID.(string), logID); err != nil {
		if errors.Is(err, service.ErrMoodLogNotFound) {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Mood log", logID))
			return
		}
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseBoundedQueryInt parses a non-negative integer query parameter,
// falling back to def when absent and clamping to max
func parseBoundedQueryInt(c *gin.Context, name string, def, max int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("query parameter %q must be a non-negative integer", name)
	}
	if v > max {
		v = max
	}
	return v, nil
}
