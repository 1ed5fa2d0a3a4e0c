package api

const (
	// Generic request/server errors
	CodeInvalidRequest   = "E_INVALID_REQUEST"    // bad or invalid request
	CodeNotFound         = "E_NOT_FOUND"          // no route matched the request path
	CodeMethodNotAllowed = "E_METHOD_NOT_ALLOWED" // route exists but the method does not
	CodeRateLimited      = "E_RATE_LIMITED"       // rate limit exceeded
	CodeInternalError    = "E_INTERNAL_ERROR"     // internal server error
)
