package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data or a report precondition failed
// validation checks (e.g. generating a GST return for an unregistered client).
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates a missing or invalid authentication token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the authenticated caller may not access the resource.
var ErrForbidden = errors.New("forbidden")
