package errs

// Sentinels shared across layers. Feature-specific errors live next to
// the usecase that raises them.
var (
	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Idempotency errors
	ErrIdempotencyInProgress = New("request with this idempotency key is in progress")
	ErrIdempotencyKeyReused  = New("idempotency key reused with a different request")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
	ErrUpstreamUnavailable     = New("upstream service unavailable")
)
