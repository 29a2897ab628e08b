package domain

import "errors"

// Errores que pueden devolver los use cases hacia la capa REST.
var (
	ErrListingNotFound = errors.New("listing not found")
)
