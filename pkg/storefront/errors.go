package storefront

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	ErrMsgProductIDRequired = "Product ID is required"
	ErrMsgProductNotFound   = "Product not found"
	ErrMsgQuantityRequired  = "Quantity is required"
	ErrMsgQuantityPositive  = "Quantity must be at least 1"
	ErrMsgItemNotInCart     = "Item is not in the cart"
	ErrMsgInvalidLimit      = "Limit must be a positive integer"
)

// StatusCode represents the category of a rejected storefront request.
type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
	StatusNotFound
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	case StatusNotFound:
		return "NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// Error is returned when a request is rejected before it reaches the cart or catalog.
type Error struct {
	Code    StatusCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewInvalidArgument reports a client input error.
func NewInvalidArgument(message string) *Error {
	return &Error{Code: StatusInvalidArgument, Message: message}
}

// NewInvalidArgumentf is NewInvalidArgument with formatting.
func NewInvalidArgumentf(format string, args ...any) *Error {
	return &Error{Code: StatusInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound reports a missing product or cart entry.
func NewNotFound(message string) *Error {
	return &Error{Code: StatusNotFound, Message: message}
}

// HTTPStatus maps err to the response status shared by the gin and Lambda surfaces.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Code {
	case StatusInvalidArgument:
		return http.StatusBadRequest
	case StatusNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
