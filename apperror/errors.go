package apperror

import "errors"

// Error is a failure the caller can act on. Code decides the HTTP status and
// errors.Is matching; Metadata names the ids or values that were rejected.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error with the same code, so a validation failure carrying
// ids still compares equal to the bare sentinel below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithMetadata is New plus the offending values, e.g. {"product_id": "7"}.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{Code: code, Message: message, Metadata: metadata}
}

// Wrap tags a storage or library error with a code. The cause stays reachable
// through errors.Is and errors.As.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf returns the code of the first *Error in err's chain, or CodeUnknown.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

var (
	ErrInvalidPrice            = New(CodeInvalidPrice, "price is invalid")
	ErrUnknownMenuGroup        = New(CodeUnknownMenuGroup, "menu group does not exist")
	ErrUnknownProduct          = New(CodeUnknownProduct, "product does not exist")
	ErrPriceExceedsComposition = New(CodePriceExceedsComposition, "menu price exceeds the price of its products")
	ErrInsufficientTables      = New(CodeInsufficientTables, "a table group needs at least two tables")
	ErrUnresolvableTables      = New(CodeUnresolvableTables, "some requested tables do not exist")
	ErrNotFound                = New(CodeNotFound, "record not found")
	ErrInvalidArgument         = New(CodeInvalidArgument, "invalid argument")
	ErrConflict                = New(CodeConflict, "conflict")
	ErrUnauthenticated         = New(CodeUnauthenticated, "unauthenticated")
	ErrPermissionDenied        = New(CodePermissionDenied, "permission denied")
)
