package model

import "errors"

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeInvalidCategory = "INVALID_CATEGORY"
	ErrCodeInvalidPrice    = "INVALID_PRICE"
	ErrCodeUnknownBrand    = "UNKNOWN_BRAND"
	ErrCodeDuplicateBrand  = "DUPLICATE_BRAND"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeEmptyCategory   = "EMPTY_CATEGORY"
	ErrCodeConflict        = "CONFLICT"
	ErrCodeUnauthorised    = "UNAUTHORIZED"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// DomainError is a business-rule violation that maps to a structured
// {success:false, message} payload at the HTTP boundary.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is makes errors.Is match any two domain errors with the same code, so
// sentinel comparisons keep working for errors built with custom messages.
func (e *DomainError) Is(target error) bool {
	var de *DomainError
	if !errors.As(target, &de) {
		return false
	}
	return e.Code == de.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidCategory = NewDomainError(ErrCodeInvalidCategory, "Category is not part of the catalogue")
	ErrInvalidPrice    = NewDomainError(ErrCodeInvalidPrice, "Price must be greater than zero")
	ErrUnknownBrand    = NewDomainError(ErrCodeUnknownBrand, "Brand is not registered")
	ErrDuplicateBrand  = NewDomainError(ErrCodeDuplicateBrand, "Brand is already registered")
	ErrProductNotFound = NewDomainError(ErrCodeNotFound, "Product not found")
	ErrEmptyCategory   = NewDomainError(ErrCodeEmptyCategory, "Category has no products")
	ErrInvalidInput    = NewDomainError(ErrCodeInvalidInput, "Request is missing required fields")
)

// EmptyCategoryError reports which category had no live products; it
// matches ErrEmptyCategory under errors.Is.
func EmptyCategoryError(category string) *DomainError {
	return NewDomainError(ErrCodeEmptyCategory, "No products registered for category: "+category)
}

// InvalidCategoryError reports which label failed catalogue validation; it
// matches ErrInvalidCategory under errors.Is.
func InvalidCategoryError(label string) *DomainError {
	return NewDomainError(ErrCodeInvalidCategory, "Unknown category: "+label)
}

// ErrorCode extracts the domain error code from an error chain, falling
// back to INTERNAL_ERROR for unexpected faults.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ErrCodeInternalError
}
