package api

// Response is the envelope every endpoint replies with, success or failure,
// so clients parse one contract.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

func NewResponse(statusCode int, data any, message string) *Response {
	return &Response{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}
