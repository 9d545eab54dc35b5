package apierror

// Error type URIs following the urn:insight:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:insight:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:insight:error:not_found"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:insight:error:rate_limit"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:insight:error:unauthorized"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:insight:error:internal"

	// TypeUnavailable indicates the backing store could not be reached (503)
	TypeUnavailable = "urn:insight:error:unavailable"

	// TypeInvalidUUID indicates an invalid UUID format in request (400)
	TypeInvalidUUID = "urn:insight:error:invalid_uuid"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:insight:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation   = "Validation Error"
	TitleNotFound     = "Resource Not Found"
	TitleRateLimit    = "Rate Limit Exceeded"
	TitleUnauthorized = "Authentication Required"
	TitleInternal     = "Internal Server Error"
	TitleUnavailable  = "Service Unavailable"
	TitleInvalidUUID  = "Invalid UUID Format"
	TitleBadRequest   = "Bad Request"
)
