package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates a customization state that does not satisfy
	// the catalog (missing required setting, unknown option, bad cardinality).
	ErrValidation = errors.New("validation failed")
	// ErrConfiguration indicates a deployment defect such as an unknown
	// market or a missing currency rate. Never defaulted around.
	ErrConfiguration = errors.New("configuration error")
	// ErrInvalidOrder indicates an assembled order that fails its total
	// invariant and must not be created.
	ErrInvalidOrder = errors.New("invalid order")
)
