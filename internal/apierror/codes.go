package apierror

// Error type URIs following the urn:feeldiary:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:feeldiary:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:feeldiary:error:not_found"

	// TypeConflict indicates a resource conflict (409)
	TypeConflict = "urn:feeldiary:error:conflict"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:feeldiary:error:rate_limit"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:feeldiary:error:unauthorized"

	// TypeForbidden indicates insufficient permissions (403)
	TypeForbidden = "urn:feeldiary:error:forbidden"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:feeldiary:error:internal"

	// TypeInvalidDate indicates a date parameter that is not YYYY-MM-DD (400)
	TypeInvalidDate = "urn:feeldiary:error:invalid_date"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:feeldiary:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation   = "Validation Error"
	TitleNotFound     = "Resource Not Found"
	TitleConflict     = "Resource Conflict"
	TitleRateLimit    = "Rate Limit Exceeded"
	TitleUnauthorized = "Authentication Required"
	TitleForbidden    = "Permission Denied"
	TitleInternal     = "Internal Server Error"
	TitleInvalidDate  = "Invalid Date Format"
	TitleBadRequest   = "Bad Request"
)
