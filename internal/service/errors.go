package service

type ErrorCode string

const (
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrorCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrorCodeUnspecified  ErrorCode = "UNSPECIFIED"
)

// Error is the only sanctioned way a service signals a client-facing
// failure with a specific status. Anything else reaching the transport
// layer is rendered as a generic internal error.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func (e *Error) Error() string {
	return e.Message
}
