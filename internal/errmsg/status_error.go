package errmsg

var EmptyStatusError = NewStatusError(0, "")

// StatusError is an API error carrying the HTTP status it is served with.
type StatusError struct {
	StatusCode int
	Message    string
}

func NewStatusError(statusCode int, message string) StatusError {
	return StatusError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func (se StatusError) Error() string {
	return se.Message
}

// IsEmpty reports whether se is the zero "no error" value.
func (se StatusError) IsEmpty() bool {
	return se == EmptyStatusError
}
