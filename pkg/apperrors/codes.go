package apperrors

// ErrorCode identifies a class of failure in API responses.
type ErrorCode string

const (
	// Submissions
	CodeUnknownSubmissionKind ErrorCode = "UNKNOWN_SUBMISSION_KIND"
	CodeValidationFailed      ErrorCode = "VALIDATION_FAILED"
	CodeAssetWriteFailed      ErrorCode = "ASSET_WRITE_FAILED"
	CodePersistenceFailed     ErrorCode = "PERSISTENCE_FAILED"

	// Read path
	CodeNotFound ErrorCode = "NOT_FOUND"

	// External collaborators
	CodeGatewayError       ErrorCode = "GATEWAY_ERROR"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
