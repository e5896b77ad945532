package models

import "errors"

var (
	// ErrGameNotFound is returned by the query layer when a slug matches no
	// game. Repositories report the same case as a nil result.
	ErrGameNotFound = errors.New("game not found")

	// ErrConstraintViolation covers duplicate slugs, missing referenced rows,
	// missing required fields and deletes blocked by dependent scores.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrTypeCoercion means a caller value could not be converted to the
	// column type. Nothing is written when it is returned.
	ErrTypeCoercion = errors.New("type coercion failure")

	// ErrStoreUnavailable means the database could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)
