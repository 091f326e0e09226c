package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failure.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes.
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeDecodeError     = "DECODE_ERROR"
	CodeTimeout         = "TIMEOUT"
	CodeInternal        = "INTERNAL"
)
