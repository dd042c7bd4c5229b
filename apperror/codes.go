// Package apperror provides coded errors shared by services and handlers.
package apperror

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown is reported for errors that carry no code.
	CodeUnknown Code = "UNKNOWN"

	// Menu composition errors
	CodeInvalidPrice            Code = "INVALID_PRICE"
	CodeUnknownMenuGroup        Code = "UNKNOWN_MENU_GROUP"
	CodeUnknownProduct          Code = "UNKNOWN_PRODUCT"
	CodePriceExceedsComposition Code = "PRICE_EXCEEDS_COMPOSITION"

	// Table group errors
	CodeInsufficientTables Code = "INSUFFICIENT_TABLES"
	CodeUnresolvableTables Code = "UNRESOLVABLE_TABLES"

	// Generic errors
	CodeNotFound         Code = "NOT_FOUND"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeConflict         Code = "CONFLICT"
	CodeUnauthenticated  Code = "UNAUTHENTICATED"
	CodePermissionDenied Code = "PERMISSION_DENIED"
)

// HTTPStatus maps the code to the status handlers respond with.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidPrice, CodeInsufficientTables, CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeUnknownMenuGroup, CodeUnknownProduct, CodeUnresolvableTables, CodeNotFound:
		return http.StatusNotFound
	case CodePriceExceedsComposition:
		return http.StatusUnprocessableEntity
	case CodeConflict:
		return http.StatusConflict
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodePermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
