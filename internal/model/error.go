package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// ErrorKind classifies a domain error for transport mapping.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindInternal
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeInvalidID         = "INVALID_ID"
	ErrCodeInvalidFilter     = "INVALID_FILTER"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeItemNotFound      = "ITEM_NOT_FOUND"
	ErrCodeCategoryNotFound  = "CATEGORY_NOT_FOUND"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
	ErrCodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	ErrCodeRouteNotFound     = "ROUTE_NOT_FOUND"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_MEDIA_TYPE"
)

// DomainError is the single error type surfaced by the service layer.
type DomainError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches domain errors by value so copies made with WithCause still
// compare equal to the catalogue sentinels.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code && e.Message == t.Message
}

// NewDomainError creates a new domain error
func NewDomainError(kind ErrorKind, code string, key MessageKey) *DomainError {
	return &DomainError{
		Kind:    kind,
		Code:    code,
		Message: Message(key),
	}
}

// NewInternalError wraps an unexpected failure. The cause is kept for logging only.
func NewInternalError(cause error) *DomainError {
	return &DomainError{
		Kind:    KindInternal,
		Code:    ErrCodeInternalError,
		Message: Message(MsgInternalError),
		Err:     cause,
	}
}

// WithCause returns a copy of e carrying cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	c := *e
	c.Err = cause
	return &c
}

// AsDomainError extracts a *DomainError from err.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Common domain errors
var (
	ErrPriceRequired     = NewDomainError(KindValidation, ErrCodeValidation, MsgPriceRequired)
	ErrPriceLessThanZero = NewDomainError(KindValidation, ErrCodeValidation, MsgPriceLessThanZero)
	ErrPriceTooLarge     = NewDomainError(KindValidation, ErrCodeValidation, MsgPriceTooLarge)
	ErrPriceScale        = NewDomainError(KindValidation, ErrCodeValidation, MsgPriceScale)
	ErrStockLessThanZero = NewDomainError(KindValidation, ErrCodeValidation, MsgStockLessThanZero)
	ErrStockTooLarge     = NewDomainError(KindValidation, ErrCodeValidation, MsgStockTooLarge)
	ErrNameRequired      = NewDomainError(KindValidation, ErrCodeValidation, MsgNameRequired)
	ErrCategoryRequired  = NewDomainError(KindValidation, ErrCodeValidation, MsgCategoryRequired)
	ErrInvalidImageURL   = NewDomainError(KindValidation, ErrCodeValidation, MsgInvalidImageURL)
	ErrInvalidFilter     = NewDomainError(KindValidation, ErrCodeInvalidFilter, MsgInvalidFilter)
	ErrInvalidSortField  = NewDomainError(KindValidation, ErrCodeInvalidFilter, MsgInvalidSortField)
	ErrInvalidPriceRange = NewDomainError(KindValidation, ErrCodeInvalidFilter, MsgInvalidPriceRange)
	ErrCategoryNotFound  = NewDomainError(KindValidation, ErrCodeCategoryNotFound, MsgCategoryNotFound)
	ErrConstraintFailed  = NewDomainError(KindValidation, ErrCodeValidation, MsgConstraintViolated)
	ErrItemNotFound      = NewDomainError(KindNotFound, ErrCodeItemNotFound, MsgItemNotFound)
)
