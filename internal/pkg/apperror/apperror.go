package apperror

// AppError is an error carrying the HTTP status it should surface as.
// Message is safe to show to clients; Err is internal context only.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New returns a sentinel AppError. Domain packages declare these as package
// vars so handlers can match them with errors.Is.
func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap attaches a status and client message to an underlying error while
// keeping the cause reachable through Unwrap.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
