package domain

import "errors"

// ErrNotFound is returned by repository operations when the requested
// entity does not exist in the relevant collection.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. missing required field, unparseable calendar date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrParse is returned when stored or imported content is not valid JSON
// or does not match any recognised interchange shape.
// Handlers should map this to HTTP 400.
var ErrParse = errors.New("parse error")
