package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/insightsphere/backend/internal/apierror"
	"github.com/insightsphere/backend/internal/logger"
	"github.com/insightsphere/backend/internal/repository"
)

// storeRetryAfterSeconds is the Retry-After hint when the store is down
const storeRetryAfterSeconds = 30

// writeServiceError maps service-layer failures to problem responses.
// An unreachable store is the single retryable failure kind and maps to
// 503 with a Retry-After hint; anything else is an opaque 500.
func writeServiceError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)
	log := logger.Ctx(c.Request.Context())

	if errors.Is(err, repository.ErrStoreUnavailable) {
		log.Warn("mood log store unavailable", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewUnavailableError(requestID, storeRetryAfterSeconds))
		return
	}

	log.Error("request failed", logger.Err(err))
	apierror.WriteProblem(c, apierror.NewInternalError(requestID))
}
